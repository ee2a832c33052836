package handler

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"rutkit/internal/rut/service"
	"rutkit/pkg/platform/httputil"
	"rutkit/pkg/requestcontext"
	"rutkit/pkg/rut"
)

// Service defines the RUT operations the handler exposes.
type Service interface {
	Validate(ctx context.Context, input string) service.ValidateResult
	ValidateBatch(ctx context.Context, inputs []string) ([]service.ValidateResult, error)
	CheckDigit(ctx context.Context, body string) (string, error)
	Format(ctx context.Context, input string, zeroPad bool) (string, error)
	Unformat(ctx context.Context, input string, zeroPad bool) (string, error)
	Generate(ctx context.Context, quantity int, r rut.Range) ([]string, error)
	EstimateAge(ctx context.Context, input string) (rut.AgeEstimate, error)
}

// Handler wires RUT endpoints to the service.
type Handler struct {
	service Service
	logger  *slog.Logger
}

// New constructs a RUT handler with its dependencies.
func New(service Service, logger *slog.Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Register mounts RUT endpoints on the router.
func (h *Handler) Register(r chi.Router) {
	r.Route("/rut", func(r chi.Router) {
		r.Post("/validate", h.HandleValidate)
		r.Post("/validate/batch", h.HandleValidateBatch)
		r.Get("/check-digit/{body}", h.HandleCheckDigit)
		r.Post("/format", h.HandleFormat)
		r.Post("/unformat", h.HandleUnformat)
		r.Post("/generate", h.HandleGenerate)
		r.Post("/age", h.HandleEstimateAge)
	})
}

// HandleValidate handles POST /rut/validate.
func (h *Handler) HandleValidate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)

	req, ok := httputil.DecodeAndPrepare[RUTRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}

	res := h.service.Validate(ctx, req.RUT)
	httputil.WriteJSON(w, http.StatusOK, fromValidateResult(res))
}

// HandleValidateBatch handles POST /rut/validate/batch.
func (h *Handler) HandleValidateBatch(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)
	start := time.Now()

	req, ok := httputil.DecodeAndPrepare[BatchValidateRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}

	results, err := h.service.ValidateBatch(ctx, req.RUTs)
	if err != nil {
		h.logger.WarnContext(ctx, "batch validation rejected",
			"request_id", requestID,
			"size", len(req.RUTs),
			"error", err,
		)
		httputil.WriteError(w, err)
		return
	}

	resp := BatchValidateResponse{Results: make([]ValidateResponse, 0, len(results))}
	for _, res := range results {
		if res.Valid {
			resp.ValidCount++
		}
		resp.Results = append(resp.Results, fromValidateResult(res))
	}

	h.logger.InfoContext(ctx, "batch validated",
		"request_id", requestID,
		"size", len(results),
		"valid", resp.ValidCount,
		"duration_ms", time.Since(start).Milliseconds(),
	)
	httputil.WriteJSON(w, http.StatusOK, resp)
}

// HandleCheckDigit handles GET /rut/check-digit/{body}.
func (h *Handler) HandleCheckDigit(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	body := chi.URLParam(r, "body")

	dv, err := h.service.CheckDigit(ctx, body)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, CheckDigitResponse{Body: body, CheckDigit: dv})
}

// HandleFormat handles POST /rut/format.
func (h *Handler) HandleFormat(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)

	req, ok := httputil.DecodeAndPrepare[FormatRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}

	formatted, err := h.service.Format(ctx, req.RUT, req.ZeroPad)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, FormatResponse{Formatted: formatted})
}

// HandleUnformat handles POST /rut/unformat.
func (h *Handler) HandleUnformat(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)

	req, ok := httputil.DecodeAndPrepare[FormatRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}

	canonical, err := h.service.Unformat(ctx, req.RUT, req.ZeroPad)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, UnformatResponse{Canonical: canonical})
}

// HandleGenerate handles POST /rut/generate.
func (h *Handler) HandleGenerate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)

	req, ok := httputil.DecodeAndPrepare[GenerateRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}

	ruts, err := h.service.Generate(ctx, req.ParsedQuantity(), req.ParsedRange())
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	h.logger.InfoContext(ctx, "identifiers generated",
		"request_id", requestID,
		"quantity", len(ruts),
	)
	httputil.WriteJSON(w, http.StatusOK, GenerateResponse{RUTs: ruts})
}

// HandleEstimateAge handles POST /rut/age.
func (h *Handler) HandleEstimateAge(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)

	req, ok := httputil.DecodeAndPrepare[RUTRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}

	est, err := h.service.EstimateAge(ctx, req.RUT)
	if err != nil {
		h.logger.WarnContext(ctx, "age estimate rejected",
			"request_id", requestID,
			"error", err,
		)
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, fromAgeEstimate(est, requestcontext.Now(ctx)))
}
