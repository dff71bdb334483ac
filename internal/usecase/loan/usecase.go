package loan

import (
	"context"
	"errors"

	domain "loanpool-backend/internal/domain/loan"
	"loanpool-backend/internal/domain/uow"
	"loanpool-backend/pkg/rate"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// listLimit caps the unpaginated loan listing, same as the read contract.
const listLimit = 100

type Usecase struct {
	repo domain.Repository
	uow  uow.UnitOfWork
	log  *logrus.Logger
}

func NewUsecase(repo domain.Repository, tx uow.UnitOfWork, log *logrus.Logger) *Usecase {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Usecase{repo: repo, uow: tx, log: log}
}

func (u *Usecase) List(ctx context.Context) ([]LoanDTO, error) {
	loans, err := u.repo.List(ctx, listLimit)
	if err != nil {
		return nil, err
	}
	out := make([]LoanDTO, 0, len(loans))
	for _, l := range loans {
		out = append(out, project(l))
	}
	return out, nil
}

func (u *Usecase) PortfolioSummary(ctx context.Context) (*domain.PortfolioSummary, error) {
	return u.repo.PortfolioSummary(ctx)
}

// UpdateBatch applies partial updates in input order inside one transaction.
// Unknown ids are skipped; an unparseable interest rate leaves the stored
// value alone and is only logged. Any other store error rolls the whole
// batch back and nothing is persisted.
func (u *Usecase) UpdateBatch(ctx context.Context, inputs []UpdateLoanInput) ([]uint64, error) {
	updated := make([]uint64, 0, len(inputs))
	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		for _, in := range inputs {
			l, err := r.Loans.GetByID(ctx, in.ID)
			if err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					continue
				}
				return err
			}
			if in.CurrentPrincipal.Present {
				l.CurrentPrincipal = in.CurrentPrincipal.Value
			}
			if in.PropertyValue.Present {
				l.PropertyValue = in.PropertyValue.Value
			}
			if in.Payment.Present {
				l.Payment = in.Payment.Value
			}
			if in.InterestRate.Present {
				if f, perr := rate.Parse(in.InterestRate.Value.Raw); perr != nil {
					u.log.WithError(perr).WithField("loan_id", in.ID).
						Warn("unparseable interest rate, keeping stored value")
				} else {
					l.InterestRate = f
				}
			}
			if err := r.Loans.Save(ctx, l); err != nil {
				return err
			}
			updated = append(updated, l.ID)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func project(l domain.Loan) LoanDTO {
	return LoanDTO{
		ID:                l.ID,
		PoolID:            l.PoolID,
		PoolName:          l.Pool.PoolName,
		LoanDate:          l.LoanDate.Format("2006-01-02"),
		OriginalPrincipal: l.OriginalPrincipal,
		InterestRate:      rate.Format(l.InterestRate),
		Payment:           l.Payment,
		CurrentPrincipal:  l.CurrentPrincipal,
		Borrower:          l.BorrowerFirstName + " " + l.BorrowerLastName,
		Address:           l.Address,
		City:              l.City,
		State:             l.State,
		Zip:               l.Zip,
		PropertyValue:     l.PropertyValue,
	}
}
