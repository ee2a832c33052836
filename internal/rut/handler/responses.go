package handler

import (
	"time"

	"rutkit/internal/rut/service"
	"rutkit/pkg/rut"
)

// ValidateResponse is the HTTP response for POST /rut/validate.
type ValidateResponse struct {
	RUT       string `json:"rut"`
	Canonical string `json:"canonical,omitempty"`
	Valid     bool   `json:"valid"`
}

// BatchValidateResponse is the HTTP response for POST /rut/validate/batch.
type BatchValidateResponse struct {
	Results    []ValidateResponse `json:"results"`
	ValidCount int                `json:"valid_count"`
}

// CheckDigitResponse is the HTTP response for GET /rut/check-digit/{body}.
type CheckDigitResponse struct {
	Body       string `json:"body"`
	CheckDigit string `json:"check_digit"`
}

// FormatResponse is the HTTP response for POST /rut/format.
type FormatResponse struct {
	Formatted string `json:"formatted"`
}

// UnformatResponse is the HTTP response for POST /rut/unformat.
type UnformatResponse struct {
	Canonical string `json:"canonical"`
}

// GenerateResponse is the HTTP response for POST /rut/generate.
type GenerateResponse struct {
	RUTs []string `json:"ruts"`
}

// AgeResponse is the HTTP response for POST /rut/age.
type AgeResponse struct {
	Age         int       `json:"age"`
	Year        int       `json:"year"`
	Month       int       `json:"month"`
	EstimatedAt time.Time `json:"estimated_at"`
}

func fromValidateResult(res service.ValidateResult) ValidateResponse {
	return ValidateResponse{
		RUT:       res.Input,
		Canonical: res.Canonical,
		Valid:     res.Valid,
	}
}

func fromAgeEstimate(est rut.AgeEstimate, at time.Time) AgeResponse {
	return AgeResponse{
		Age:         est.Age,
		Year:        est.Year,
		Month:       est.Month,
		EstimatedAt: at.UTC(),
	}
}
