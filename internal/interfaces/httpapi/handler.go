package httpapi

import (
	"context"
	"fmt"
	"hash/fnv"
	"io"
	"net/http"

	"github.com/bytedance/sonic"
	"github.com/go-playground/validator/v10"

	"github.com/danurahman/matchlens/internal/platform/cache"
	"github.com/danurahman/matchlens/internal/platform/extract"
	"github.com/danurahman/matchlens/internal/platform/logging"
	"github.com/danurahman/matchlens/internal/usecase"
)

// Request bodies are provider payloads and can be large, but never this large.
const maxRequestBodyBytes = 8 << 20

type Handler struct {
	derivation *usecase.DerivationService
	reports    *cache.Store
	logger     *logging.Logger
	validator  *validator.Validate
}

// NewHandler wires the derivation service behind the HTTP surface. A nil
// reports store disables response caching.
func NewHandler(derivation *usecase.DerivationService, reports *cache.Store, logger *logging.Logger) *Handler {
	if logger == nil {
		logger = logging.Default()
	}

	return &Handler{
		derivation: derivation,
		reports:    reports,
		logger:     logger,
		validator:  validator.New(),
	}
}

type deriveRequest struct {
	Match        map[string]any   `json:"match" validate:"required"`
	PlayersHome  []map[string]any `json:"players_home"`
	PlayersAway  []map[string]any `json:"players_away"`
	Probability  map[string]any   `json:"probability"`
	HomeTeam     string           `json:"home_team" validate:"omitempty,max=120"`
	AwayTeam     string           `json:"away_team" validate:"omitempty,max=120"`
	VenueCountry string           `json:"venue_country" validate:"omitempty,max=80"`
}

type deriveBatchRequest struct {
	Items []deriveRequest `json:"items" validate:"required,min=1,dive"`
}

func (r deriveRequest) toInput() usecase.DeriveInput {
	return usecase.DeriveInput{
		Match:        r.Match,
		PlayersHome:  recordSlice(r.PlayersHome),
		PlayersAway:  recordSlice(r.PlayersAway),
		Probability:  r.Probability,
		HomeTeam:     r.HomeTeam,
		AwayTeam:     r.AwayTeam,
		VenueCountry: r.VenueCountry,
	}
}

func recordSlice(items []map[string]any) []extract.Record {
	out := make([]extract.Record, 0, len(items))
	for _, item := range items {
		out = append(out, item)
	}
	return out
}

func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Healthz")
	defer span.End()

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) DeriveMatch(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.DeriveMatch")
	defer span.End()

	body, req, err := h.decodeDerive(ctx, r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	input := req.toInput()
	if h.reports == nil {
		writeSuccess(ctx, w, http.StatusOK, h.derivation.Derive(ctx, input))
		return
	}

	report, err := h.reports.GetOrLoad(ctx, reportCacheKey(body), func(ctx context.Context) (any, error) {
		return h.derivation.Derive(ctx, input), nil
	})
	if err != nil {
		h.logger.ErrorContext(ctx, "derive match failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, report)
}

func (h *Handler) DeriveMatchBatch(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.DeriveMatchBatch")
	defer span.End()

	body, err := readBody(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	var req deriveBatchRequest
	if err := sonic.Unmarshal(body, &req); err != nil {
		writeError(ctx, w, fmt.Errorf("%w: decode request body: %v", usecase.ErrInvalidInput, err))
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	inputs := make([]usecase.DeriveInput, 0, len(req.Items))
	for _, item := range req.Items {
		inputs = append(inputs, item.toInput())
	}

	reports, err := h.derivation.DeriveBatch(ctx, inputs)
	if err != nil {
		h.logger.ErrorContext(ctx, "derive batch failed", "items", len(inputs), "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, reports)
}

func (h *Handler) decodeDerive(ctx context.Context, r *http.Request) ([]byte, deriveRequest, error) {
	var req deriveRequest

	body, err := readBody(r)
	if err != nil {
		return nil, req, err
	}
	if err := sonic.Unmarshal(body, &req); err != nil {
		return nil, req, fmt.Errorf("%w: decode request body: %v", usecase.ErrInvalidInput, err)
	}
	if err := h.validateRequest(ctx, req); err != nil {
		return nil, req, err
	}
	return body, req, nil
}

func (h *Handler) validateRequest(ctx context.Context, payload any) error {
	ctx, span := startSpan(ctx, "httpapi.Handler.validateRequest")
	defer span.End()

	if err := h.validator.StructCtx(ctx, payload); err != nil {
		return fmt.Errorf("%w: validation failed: %v", usecase.ErrInvalidInput, err)
	}

	return nil
}

func readBody(r *http.Request) ([]byte, error) {
	body, err := io.ReadAll(io.LimitReader(r.Body, maxRequestBodyBytes))
	if err != nil {
		return nil, fmt.Errorf("%w: read request body: %v", usecase.ErrInvalidInput, err)
	}
	if len(body) == 0 {
		return nil, fmt.Errorf("%w: empty request body", usecase.ErrInvalidInput)
	}
	return body, nil
}

// reportCacheKey digests the raw request body, so identical payloads share a
// cache slot.
func reportCacheKey(body []byte) string {
	digest := fnv.New64a()
	_, _ = digest.Write(body)
	return fmt.Sprintf("derive:%x", digest.Sum64())
}
