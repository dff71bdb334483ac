package http

import (
	"net/http"

	"loanpool-backend/internal/usecase/loan"

	"github.com/labstack/echo/v4"
)

type LoanHandler struct {
	uc *loan.Usecase
	cv *CustomValidator
}

func NewLoanHandler(uc *loan.Usecase) *LoanHandler {
	return &LoanHandler{uc: uc, cv: NewValidator()}
}

func (h *LoanHandler) GetLoans(c echo.Context) error {
	dtos, err := h.uc.List(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "failed to list loans"})
	}
	return c.JSON(http.StatusOK, dtos)
}

// UpdateLoans applies a batch of partial updates. The response carries the
// ids that were found and processed; ids that don't exist are skipped and
// simply missing from the list.
func (h *LoanHandler) UpdateLoans(c echo.Context) error {
	var reqs []loan.UpdateLoanInput
	if err := c.Bind(&reqs); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if fes := h.cv.ValidateLoanUpdates(reqs); len(fes) > 0 {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid update", Details: fes})
	}
	ids, err := h.uc.UpdateBatch(c.Request().Context(), reqs)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "failed to update loans"})
	}
	return c.JSON(http.StatusOK, map[string][]uint64{"updated_ids": ids})
}

func (h *LoanHandler) PortfolioSummary(c echo.Context) error {
	s, err := h.uc.PortfolioSummary(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "failed to generate summary"})
	}
	return c.JSON(http.StatusOK, s)
}
