package app

import (
	"fmt"
	"net/http"

	"github.com/danurahman/matchlens/internal/config"
	"github.com/danurahman/matchlens/internal/domain/scoring"
	"github.com/danurahman/matchlens/internal/interfaces/httpapi"
	"github.com/danurahman/matchlens/internal/platform/cache"
	"github.com/danurahman/matchlens/internal/platform/logging"
	"github.com/danurahman/matchlens/internal/usecase"
)

// NewHTTPServer assembles the derivation pipeline behind the HTTP surface.
func NewHTTPServer(cfg config.Config, logger *logging.Logger) (*http.Server, error) {
	weights := scoring.Weights{
		Goal:         cfg.ScoreGoalWeight,
		Assist:       cfg.ScoreAssistWeight,
		SecondYellow: cfg.ScoreSecondYellow,
	}

	derivation := usecase.NewDerivationService(weights, cfg.BatchWorkerCount, cfg.BatchMaxItems, logger)

	var reports *cache.Store
	if cfg.CacheEnabled {
		reports = cache.NewStore(cfg.CacheTTL)
	}

	handler := httpapi.NewHandler(derivation, reports, logger)
	router := httpapi.NewRouter(handler, logger, cfg.CORSAllowedOrigins)

	server := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	if server.Addr == "" {
		return nil, fmt.Errorf("http server addr cannot be empty")
	}

	return server, nil
}
