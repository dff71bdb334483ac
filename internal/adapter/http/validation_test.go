package http

import (
	"testing"

	uc "loanpool-backend/internal/usecase/loan"
	"loanpool-backend/pkg/optional"
	"loanpool-backend/pkg/rate"
)

func TestValidateLoanUpdates_Valid(t *testing.T) {
	cv := NewValidator()
	fes := cv.ValidateLoanUpdates([]uc.UpdateLoanInput{
		{ID: 1, CurrentPrincipal: optional.Set(79_000.50)},
		{ID: 2, InterestRate: optional.Set(rate.Input{Raw: "4.5%"})},
		{ID: 3}, // no fields at all is still a valid entry
	})
	if len(fes) != 0 {
		t.Fatalf("unexpected errors: %+v", fes)
	}
}

func TestValidateLoanUpdates_MissingID(t *testing.T) {
	cv := NewValidator()
	fes := cv.ValidateLoanUpdates([]uc.UpdateLoanInput{
		{Payment: optional.Set(100.00)},
	})
	if !containsFieldMsg(fes, "[0].id", "required") {
		t.Fatalf("errors = %+v", fes)
	}
}

func TestValidateLoanUpdates_NullRejected(t *testing.T) {
	cv := NewValidator()
	nullMoney := optional.Field[float64]{Present: true, Null: true}
	nullRate := optional.Field[rate.Input]{Present: true, Null: true}
	fes := cv.ValidateLoanUpdates([]uc.UpdateLoanInput{
		{ID: 1, Payment: nullMoney, InterestRate: nullRate},
	})
	if !containsFieldMsg(fes, "[0].payment", "must not be null") {
		t.Fatalf("errors = %+v", fes)
	}
	if !containsFieldMsg(fes, "[0].interest_rate", "must not be null") {
		t.Fatalf("errors = %+v", fes)
	}
}

func TestValidateLoanUpdates_MoneyRules(t *testing.T) {
	cv := NewValidator()
	fes := cv.ValidateLoanUpdates([]uc.UpdateLoanInput{
		{ID: 1, CurrentPrincipal: optional.Set(-1.00)},
		{ID: 2, PropertyValue: optional.Set(100.555)},
	})
	if !containsFieldMsg(fes, "[0].current_principal", "greater than or equal to 0") {
		t.Fatalf("errors = %+v", fes)
	}
	if !containsFieldMsg(fes, "[1].property_value", "at most 2 decimal places") {
		t.Fatalf("errors = %+v", fes)
	}
}
