package loan

import (
	"loanpool-backend/pkg/optional"
	"loanpool-backend/pkg/rate"
)

// UpdateLoanInput is one entry of a PUT /loans/ batch. Every updatable
// field is a tri-state slot: absent means "leave unchanged", an explicit
// null is rejected upstream, a value overwrites the stored column.
// InterestRate accepts "4.5%", "4.5" or a bare number.
type UpdateLoanInput struct {
	ID               uint64                     `json:"id"`
	CurrentPrincipal optional.Field[float64]    `json:"current_principal"`
	PropertyValue    optional.Field[float64]    `json:"property_value"`
	Payment          optional.Field[float64]    `json:"payment"`
	InterestRate     optional.Field[rate.Input] `json:"interest_rate"`
}

// LoanDTO is the caller-facing projection of a loan row. LoanDate is an
// ISO-8601 date, InterestRate a formatted percentage string, Borrower the
// joined "FIRST LAST" name.
type LoanDTO struct {
	ID                uint64  `json:"id"`
	PoolID            uint64  `json:"pool_id"`
	PoolName          string  `json:"pool_name"`
	LoanDate          string  `json:"loan_date"`
	OriginalPrincipal float64 `json:"original_principal"`
	InterestRate      string  `json:"interest_rate"`
	Payment           float64 `json:"payment"`
	CurrentPrincipal  float64 `json:"current_principal"`
	Borrower          string  `json:"borrower"`
	Address           string  `json:"address"`
	City              string  `json:"city"`
	State             string  `json:"state"`
	Zip               string  `json:"zip"`
	PropertyValue     float64 `json:"property_value"`
}
