package loan

import (
	"time"

	"loanpool-backend/internal/domain/pool"
)

// Loan is a single loan record. The primary key is the external loan
// number from the source spreadsheets, not an auto-generated id.
// InterestRate is stored as a fraction (0.0450 = 4.50%); monetary columns
// are fixed-point with 2 decimal places.
type Loan struct {
	ID                uint64    `gorm:"primaryKey;column:id;autoIncrement:false" json:"id"`
	PoolID            uint64    `gorm:"column:pool_id;not null;index:idx_loans_pool_id" json:"pool_id"`
	LoanDate          time.Time `gorm:"column:loan_date;type:date;not null" json:"loan_date"`
	OriginalPrincipal float64   `gorm:"column:original_principal;type:decimal(12,2);not null" json:"original_principal"`
	InterestRate      float64   `gorm:"column:interest_rate;not null" json:"interest_rate"`
	Payment           float64   `gorm:"column:payment;type:decimal(12,2);not null" json:"payment"`
	CurrentPrincipal  float64   `gorm:"column:current_principal;type:decimal(12,2);not null" json:"current_principal"`
	BorrowerFirstName string    `gorm:"column:borrower_first_name;not null" json:"borrower_first_name"`
	BorrowerLastName  string    `gorm:"column:borrower_last_name;not null" json:"borrower_last_name"`
	Address           string    `gorm:"column:address;not null" json:"address"`
	City              string    `gorm:"column:city;not null" json:"city"`
	State             string    `gorm:"column:state;not null" json:"state"`
	Zip               string    `gorm:"column:zip;size:16;not null" json:"zip"`
	PropertyValue     float64   `gorm:"column:property_value;type:decimal(12,2);not null" json:"property_value"`

	Pool pool.Pool `gorm:"foreignKey:PoolID;references:ID" json:"-"`
}

func (Loan) TableName() string { return "loans" }
