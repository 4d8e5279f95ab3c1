package httpapi

import "net/http"

func registerSystemRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /healthz", handler.Healthz)
}

func registerDeriveRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("POST /v1/matches/derive", handler.DeriveMatch)
	mux.HandleFunc("POST /v1/matches/derive:batch", handler.DeriveMatchBatch)
}
