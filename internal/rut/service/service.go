package service

import (
	"context"
	"errors"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"rutkit/internal/platform/config"
	"rutkit/internal/rut/metrics"
	dErrors "rutkit/pkg/domain-errors"
	pstrings "rutkit/pkg/platform/strings"
	"rutkit/pkg/requestcontext"
	"rutkit/pkg/rut"
)

const tracerName = "rutkit/internal/rut/service"

// ValidateResult is the outcome of validating one input.
type ValidateResult struct {
	Input     string
	Canonical string
	Valid     bool
}

// Service applies request limits, metrics and tracing around the rut package.
type Service struct {
	generator *rut.Generator
	limits    config.Limits
	logger    *slog.Logger
	metrics   *metrics.Metrics
	tracer    trace.Tracer
}

type Option func(s *Service)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Service) {
		s.metrics = m
	}
}

// WithRandSource replaces the generator's random source, for deterministic tests.
func WithRandSource(src rut.RandSource) Option {
	return func(s *Service) {
		s.generator = rut.NewGenerator(src)
	}
}

func WithLimits(limits config.Limits) Option {
	return func(s *Service) {
		s.limits = limits
	}
}

func WithTracer(tracer trace.Tracer) Option {
	return func(s *Service) {
		s.tracer = tracer
	}
}

// New constructs a Service.
func New(opts ...Option) *Service {
	s := &Service{
		generator: rut.NewGenerator(nil),
		limits:    config.DefaultLimits(),
		logger:    slog.Default(),
		tracer:    otel.Tracer(tracerName),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Validate reports whether input is a valid identifier.
func (s *Service) Validate(ctx context.Context, input string) ValidateResult {
	_, span := s.tracer.Start(ctx, "rut.Validate")
	defer span.End()
	defer s.observe("validate", time.Now())

	res := s.validate(input)
	span.SetAttributes(attribute.Bool("rut.valid", res.Valid))
	return res
}

func (s *Service) validate(input string) ValidateResult {
	valid := rut.Validate(input)
	s.metrics.IncrementValidation(valid)
	res := ValidateResult{Input: input, Valid: valid}
	if valid {
		res.Canonical = canonical(input)
	}
	return res
}

// ValidateBatch validates many inputs. Inputs are trimmed and blank entries
// dropped; inputs with the same canonical form are reported once, first seen
// first.
func (s *Service) ValidateBatch(ctx context.Context, inputs []string) ([]ValidateResult, error) {
	ctx, span := s.tracer.Start(ctx, "rut.ValidateBatch")
	defer span.End()
	defer s.observe("validate_batch", time.Now())

	inputs = pstrings.DedupeAndTrimBy(inputs, canonical)
	if len(inputs) == 0 {
		return nil, s.fail(span, dErrors.New(dErrors.CodeValidation, "at least one identifier is required"))
	}
	if len(inputs) > s.limits.MaxBatch {
		return nil, s.fail(span, dErrors.New(dErrors.CodeValidation,
			"batch exceeds the limit of "+strconv.Itoa(s.limits.MaxBatch)+" identifiers"))
	}

	results := make([]ValidateResult, 0, len(inputs))
	validCount := 0
	for _, in := range inputs {
		res := s.validate(in)
		if res.Valid {
			validCount++
		}
		results = append(results, res)
	}
	span.SetAttributes(
		attribute.Int("rut.batch_size", len(results)),
		attribute.Int("rut.valid_count", validCount),
	)
	s.logger.DebugContext(ctx, "batch validated",
		"request_id", requestcontext.RequestID(ctx),
		"size", len(results),
		"valid", validCount,
	)
	return results, nil
}

// CheckDigit returns the check character for body.
func (s *Service) CheckDigit(ctx context.Context, body string) (string, error) {
	_, span := s.tracer.Start(ctx, "rut.CheckDigit")
	defer span.End()
	defer s.observe("check_digit", time.Now())

	body = strings.TrimSpace(body)
	if body == "" {
		return "", s.fail(span, dErrors.New(dErrors.CodeValidation, "body is required"))
	}
	dv := rut.CheckDigit(body)
	if dv == "" {
		return "", s.fail(span, dErrors.New(dErrors.CodeValidation, "body must contain only digits and dots"))
	}
	return dv, nil
}

// Format renders input in display form.
func (s *Service) Format(ctx context.Context, input string, zeroPad bool) (string, error) {
	_, span := s.tracer.Start(ctx, "rut.Format")
	defer span.End()
	defer s.observe("format", time.Now())

	if strings.TrimSpace(input) == "" {
		return "", s.fail(span, dErrors.New(dErrors.CodeValidation, "rut is required"))
	}
	return rut.Format(strings.TrimSpace(input), zeroPad), nil
}

// Unformat renders input in canonical form.
func (s *Service) Unformat(ctx context.Context, input string, zeroPad bool) (string, error) {
	_, span := s.tracer.Start(ctx, "rut.Unformat")
	defer span.End()
	defer s.observe("unformat", time.Now())

	if strings.TrimSpace(input) == "" {
		return "", s.fail(span, dErrors.New(dErrors.CodeValidation, "rut is required"))
	}
	return rut.Unformat(strings.TrimSpace(input), zeroPad), nil
}

// Generate produces quantity random identifiers with a leading segment in r.
func (s *Service) Generate(ctx context.Context, quantity int, r rut.Range) ([]string, error) {
	ctx, span := s.tracer.Start(ctx, "rut.Generate")
	defer span.End()
	defer s.observe("generate", time.Now())

	switch {
	case quantity < 1 || quantity > s.limits.MaxGenerate:
		return nil, s.fail(span, dErrors.New(dErrors.CodeValidation,
			"quantity must be between 1 and "+strconv.Itoa(s.limits.MaxGenerate)))
	case r.Min < 0 || r.Max < 0:
		return nil, s.fail(span, dErrors.New(dErrors.CodeValidation, "range bounds must not be negative"))
	case r.Min > r.Max:
		return nil, s.fail(span, dErrors.New(dErrors.CodeValidation, "range min must not exceed max"))
	case r.Max > rut.MaxLeadingSegment:
		return nil, s.fail(span, dErrors.New(dErrors.CodeValidation,
			"range max must not exceed "+strconv.Itoa(rut.MaxLeadingSegment)))
	}

	out := s.generator.Generate(quantity, r)
	s.metrics.AddGenerated(len(out))
	span.SetAttributes(attribute.Int("rut.quantity", len(out)))
	s.logger.DebugContext(ctx, "identifiers generated",
		"request_id", requestcontext.RequestID(ctx),
		"quantity", len(out),
		"min", r.Min,
		"max", r.Max,
	)
	return out, nil
}

// EstimateAge estimates birth year, month and age relative to the request
// time carried by ctx.
func (s *Service) EstimateAge(ctx context.Context, input string) (rut.AgeEstimate, error) {
	ctx, span := s.tracer.Start(ctx, "rut.EstimateAge")
	defer span.End()
	defer s.observe("estimate_age", time.Now())

	input = strings.TrimSpace(input)
	if input == "" {
		s.metrics.IncrementAgeEstimate("rejected")
		return rut.AgeEstimate{}, s.fail(span, dErrors.New(dErrors.CodeValidation, "rut is required"))
	}

	est, err := rut.EstimateAgeAt(input, requestcontext.Now(ctx))
	if err != nil {
		s.metrics.IncrementAgeEstimate("rejected")
		switch {
		case errors.Is(err, rut.ErrNonNumericBody):
			return rut.AgeEstimate{}, s.fail(span, dErrors.Wrap(err, dErrors.CodeValidation, "rut body must be numeric"))
		case errors.Is(err, rut.ErrBodyOutOfRange):
			return rut.AgeEstimate{}, s.fail(span, dErrors.Wrap(err, dErrors.CodeValidation, "rut body is too large to estimate"))
		}
		return rut.AgeEstimate{}, s.fail(span, dErrors.Wrap(err, dErrors.CodeInternal, "age estimation failed"))
	}

	s.metrics.IncrementAgeEstimate("ok")
	span.SetAttributes(attribute.Int("rut.estimated_year", est.Year))
	if parsed, err := rut.Parse(input); err == nil {
		s.logger.DebugContext(ctx, "age estimated",
			"rut", parsed.Mask(),
			"year", est.Year,
			"month", est.Month,
		)
	}
	return est, nil
}

func canonical(input string) string {
	return rut.Unformat(input, false)
}

func (s *Service) observe(operation string, start time.Time) {
	s.metrics.ObserveOperation(operation, time.Since(start))
}

func (s *Service) fail(span trace.Span, err error) error {
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
	return err
}
