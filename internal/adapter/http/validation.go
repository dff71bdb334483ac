package http

import (
	"fmt"
	"math"

	uc "loanpool-backend/internal/usecase/loan"
	"loanpool-backend/pkg/optional"

	"github.com/go-playground/validator/v10"
)

// Reusable error payload
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}
type ErrorResponse struct {
	Error   string       `json:"error"`
	Details []FieldError `json:"details,omitempty"`
}

type CustomValidator struct{ v *validator.Validate }

func NewValidator() *CustomValidator {
	v := validator.New()

	// max 2 decimal places, the precision of the monetary columns
	_ = v.RegisterValidation("dec2", func(fl validator.FieldLevel) bool {
		f := fl.Field().Float()
		return math.Abs(f-(math.Round(f*100)/100)) < 1e-9
	})

	return &CustomValidator{v: v}
}

func (cv *CustomValidator) Validate(i any) error { return cv.v.Struct(i) }

// ValidateLoanUpdates checks a PUT /loans/ batch: ids must be set, explicit
// JSON nulls are rejected, monetary values must be non-negative with at
// most 2 decimals. Rate strings are not validated here; an unparseable
// rate is a non-fatal per-record condition handled by the usecase.
func (cv *CustomValidator) ValidateLoanUpdates(reqs []uc.UpdateLoanInput) []FieldError {
	var out []FieldError
	for i, r := range reqs {
		field := func(name string) string { return fmt.Sprintf("[%d].%s", i, name) }
		if r.ID == 0 {
			out = append(out, FieldError{Field: field("id"), Message: "is required"})
		}
		money := func(name string, f optional.Field[float64]) {
			if !f.Present {
				return
			}
			if f.Null {
				out = append(out, FieldError{Field: field(name), Message: "must not be null"})
				return
			}
			if err := cv.v.Var(f.Value, "gte=0"); err != nil {
				out = append(out, FieldError{Field: field(name), Message: "must be greater than or equal to 0"})
				return
			}
			if err := cv.v.Var(f.Value, "dec2"); err != nil {
				out = append(out, FieldError{Field: field(name), Message: "must have at most 2 decimal places"})
			}
		}
		money("current_principal", r.CurrentPrincipal)
		money("property_value", r.PropertyValue)
		money("payment", r.Payment)
		if r.InterestRate.Present && r.InterestRate.Null {
			out = append(out, FieldError{Field: field("interest_rate"), Message: "must not be null"})
		}
	}
	return out
}
