package mysql

import (
	"context"
	"errors"
	"math"
	"testing"
	"time"

	loanDomain "loanpool-backend/internal/domain/loan"
	poolDomain "loanpool-backend/internal/domain/pool"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// openTestDB creates an in-memory sqlite DB with both tables migrated.
// sqlite's loose column affinity accepts the decimal/date column types,
// so the domain models migrate as-is.
func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(&poolDomain.Pool{}, &loanDomain.Loan{}); err != nil {
		t.Fatalf("auto-migrate: %v", err)
	}
	return db
}

func makePool(t *testing.T, db *gorm.DB, name string) *poolDomain.Pool {
	t.Helper()
	p := &poolDomain.Pool{PoolName: name}
	if err := NewPoolRepository(db).Create(context.Background(), p); err != nil {
		t.Fatalf("create pool %s: %v", name, err)
	}
	return p
}

func makeLoan(id, poolID uint64) *loanDomain.Loan {
	return &loanDomain.Loan{
		ID:                id,
		PoolID:            poolID,
		LoanDate:          time.Date(2023, 1, 15, 0, 0, 0, 0, time.UTC),
		OriginalPrincipal: 100_000.00,
		InterestRate:      0.0450,
		Payment:           506.69,
		CurrentPrincipal:  80_000.00,
		BorrowerFirstName: "JANE",
		BorrowerLastName:  "DOE",
		Address:           "12 ELM ST",
		City:              "DENVER",
		State:             "Colorado",
		Zip:               "80202",
		PropertyValue:     150_000.00,
	}
}

func approx(a, b float64) bool { return math.Abs(a-b) < 1e-9 }

func TestCreateAndGetByID(t *testing.T) {
	db := openTestDB(t)
	repo := NewLoanRepository(db)
	ctx := context.Background()

	p := makePool(t, db, "ALPHA")
	if err := repo.Create(ctx, makeLoan(1001, p.ID)); err != nil {
		t.Fatalf("Create: %v", err)
	}

	got, err := repo.GetByID(ctx, 1001)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got.PoolID != p.ID || got.BorrowerLastName != "DOE" {
		t.Errorf("unexpected loan: %+v", got)
	}
	if !approx(got.InterestRate, 0.0450) {
		t.Errorf("InterestRate = %v, want 0.0450", got.InterestRate)
	}
}

func TestGetByID_NotFound(t *testing.T) {
	db := openTestDB(t)
	repo := NewLoanRepository(db)

	_, err := repo.GetByID(context.Background(), 999999)
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("expected ErrRecordNotFound, got %v", err)
	}
}

func TestSave_UpdatesFields(t *testing.T) {
	db := openTestDB(t)
	repo := NewLoanRepository(db)
	ctx := context.Background()

	p := makePool(t, db, "ALPHA")
	l := makeLoan(1001, p.ID)
	if err := repo.Create(ctx, l); err != nil {
		t.Fatalf("Create: %v", err)
	}

	l.CurrentPrincipal = 75_000.00
	l.InterestRate = 0.0525
	if err := repo.Save(ctx, l); err != nil {
		t.Fatalf("Save: %v", err)
	}

	got, err := repo.GetByID(ctx, 1001)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if !approx(got.CurrentPrincipal, 75_000.00) || !approx(got.InterestRate, 0.0525) {
		t.Errorf("update not persisted: %+v", got)
	}
	// untouched columns stay put
	if !approx(got.PropertyValue, 150_000.00) || got.City != "DENVER" {
		t.Errorf("unrelated fields changed: %+v", got)
	}
}

func TestList_LimitAndPoolPreload(t *testing.T) {
	db := openTestDB(t)
	repo := NewLoanRepository(db)
	ctx := context.Background()

	p := makePool(t, db, "ALPHA")
	for id := uint64(1); id <= 5; id++ {
		if err := repo.Create(ctx, makeLoan(id, p.ID)); err != nil {
			t.Fatalf("Create %d: %v", id, err)
		}
	}

	got, err := repo.List(ctx, 3)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("len = %d, want 3", len(got))
	}
	if got[0].ID != 1 || got[2].ID != 3 {
		t.Errorf("unexpected order: %v %v", got[0].ID, got[2].ID)
	}
	if got[0].Pool.PoolName != "ALPHA" {
		t.Errorf("pool not preloaded: %+v", got[0].Pool)
	}
}

func TestPortfolioSummary_EmptyIsZero(t *testing.T) {
	db := openTestDB(t)
	repo := NewLoanRepository(db)

	s, err := repo.PortfolioSummary(context.Background())
	if err != nil {
		t.Fatalf("PortfolioSummary: %v", err)
	}
	zero := loanDomain.PortfolioSummary{}
	if *s != zero {
		t.Fatalf("expected all-zero summary on empty table, got %+v", s)
	}
}

func TestPortfolioSummary_Aggregates(t *testing.T) {
	db := openTestDB(t)
	repo := NewLoanRepository(db)
	ctx := context.Background()

	p := makePool(t, db, "ALPHA")

	l1 := makeLoan(1, p.ID)
	l1.OriginalPrincipal, l1.CurrentPrincipal, l1.PropertyValue = 100_000, 80_000, 150_000
	l1.Payment, l1.InterestRate = 500, 0.04

	l2 := makeLoan(2, p.ID)
	l2.OriginalPrincipal, l2.CurrentPrincipal, l2.PropertyValue = 200_000, 160_000, 250_000
	l2.Payment, l2.InterestRate = 700, 0.06

	for _, l := range []*loanDomain.Loan{l1, l2} {
		if err := repo.Create(ctx, l); err != nil {
			t.Fatalf("Create: %v", err)
		}
	}

	s, err := repo.PortfolioSummary(ctx)
	if err != nil {
		t.Fatalf("PortfolioSummary: %v", err)
	}
	checks := []struct {
		name string
		got  float64
		want float64
	}{
		{"total_original_principal", s.TotalOriginalPrincipal, 300_000},
		{"avg_original_principal", s.AvgOriginalPrincipal, 150_000},
		{"total_current_principal", s.TotalCurrentPrincipal, 240_000},
		{"avg_current_principal", s.AvgCurrentPrincipal, 120_000},
		{"total_property_value", s.TotalPropertyValue, 400_000},
		{"avg_property_value", s.AvgPropertyValue, 200_000},
		{"avg_payment", s.AvgPayment, 600},
		{"avg_interest_rate", s.AvgInterestRate, 0.05},
	}
	for _, c := range checks {
		if !approx(c.got, c.want) {
			t.Errorf("%s = %v, want %v", c.name, c.got, c.want)
		}
	}
}
