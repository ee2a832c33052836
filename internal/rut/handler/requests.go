package handler

import (
	"strings"

	dErrors "rutkit/pkg/domain-errors"
	"rutkit/pkg/rut"
)

// maxRUTLength bounds a single identifier field. Generous: a zero-padded
// display form is 14 characters.
const maxRUTLength = 64

// RUTRequest is the body for POST /rut/validate and POST /rut/age.
type RUTRequest struct {
	RUT string `json:"rut"`
}

// Validate implements httputil.Validatable.
func (r *RUTRequest) Validate() error {
	if r == nil {
		return dErrors.New(dErrors.CodeBadRequest, "request body is required")
	}
	if len(r.RUT) > maxRUTLength {
		return dErrors.New(dErrors.CodeValidation, "rut must be at most 64 characters")
	}
	r.RUT = strings.TrimSpace(r.RUT)
	if r.RUT == "" {
		return dErrors.New(dErrors.CodeValidation, "rut is required")
	}
	return nil
}

// BatchValidateRequest is the body for POST /rut/validate/batch.
type BatchValidateRequest struct {
	RUTs []string `json:"ruts"`
}

// Validate implements httputil.Validatable. Batch size limits are enforced
// by the service.
func (r *BatchValidateRequest) Validate() error {
	if r == nil {
		return dErrors.New(dErrors.CodeBadRequest, "request body is required")
	}
	if len(r.RUTs) == 0 {
		return dErrors.New(dErrors.CodeValidation, "ruts is required")
	}
	for _, v := range r.RUTs {
		if len(v) > maxRUTLength {
			return dErrors.New(dErrors.CodeValidation, "each rut must be at most 64 characters")
		}
	}
	return nil
}

// FormatRequest is the body for POST /rut/format and POST /rut/unformat.
type FormatRequest struct {
	RUT     string `json:"rut"`
	ZeroPad bool   `json:"zero_pad"`
}

// Validate implements httputil.Validatable.
func (r *FormatRequest) Validate() error {
	if r == nil {
		return dErrors.New(dErrors.CodeBadRequest, "request body is required")
	}
	if len(r.RUT) > maxRUTLength {
		return dErrors.New(dErrors.CodeValidation, "rut must be at most 64 characters")
	}
	r.RUT = strings.TrimSpace(r.RUT)
	if r.RUT == "" {
		return dErrors.New(dErrors.CodeValidation, "rut is required")
	}
	return nil
}

// GenerateRequest is the body for POST /rut/generate. Every field is
// optional; omitted fields take the generator defaults.
type GenerateRequest struct {
	Quantity *int `json:"quantity"`
	Min      *int `json:"min"`
	Max      *int `json:"max"`

	// Parsed values (populated by Validate)
	parsedQuantity int
	parsedRange    rut.Range
}

// Validate implements httputil.Validatable. Quantity and range limits are
// enforced by the service.
func (r *GenerateRequest) Validate() error {
	if r == nil {
		return dErrors.New(dErrors.CodeBadRequest, "request body is required")
	}

	r.parsedQuantity = 1
	if r.Quantity != nil {
		r.parsedQuantity = *r.Quantity
	}

	r.parsedRange = rut.DefaultRange
	if r.Min != nil {
		r.parsedRange.Min = *r.Min
	}
	if r.Max != nil {
		r.parsedRange.Max = *r.Max
	}
	return nil
}

// ParsedQuantity returns the requested quantity, defaulting to one.
func (r *GenerateRequest) ParsedQuantity() int {
	return r.parsedQuantity
}

// ParsedRange returns the requested range, defaulting to rut.DefaultRange.
func (r *GenerateRequest) ParsedRange() rut.Range {
	return r.parsedRange
}
