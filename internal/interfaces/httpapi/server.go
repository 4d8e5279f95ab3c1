package httpapi

import (
	"net/http"

	"github.com/danurahman/matchlens/internal/platform/id"
	"github.com/danurahman/matchlens/internal/platform/logging"
)

func NewRouter(handler *Handler, logger *logging.Logger, corsAllowedOrigins []string) http.Handler {
	if logger == nil {
		logger = logging.Default()
	}

	mux := http.NewServeMux()
	registerSystemRoutes(mux, handler)
	registerDeriveRoutes(mux, handler)

	chain := recoverPanic(logger, mux)
	chain = CORS(corsAllowedOrigins, chain)
	chain = RequestID(id.NewRandomGenerator(), chain)
	return RequestTracing(RequestLogging(logger, chain))
}

func recoverPanic(logger *logging.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx, span := startSpan(r.Context(), "httpapi.recoverPanic")
		defer span.End()

		defer func() {
			if rec := recover(); rec != nil {
				logger.ErrorContext(ctx, "panic recovered", "panic", rec)
				writeInternalError(ctx, w)
			}
		}()
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
