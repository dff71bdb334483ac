package http

import (
	"net/http"

	"loanpool-backend/internal/usecase/pool"

	"github.com/labstack/echo/v4"
)

type PoolHandler struct{ uc *pool.Usecase }

func NewPoolHandler(uc *pool.Usecase) *PoolHandler { return &PoolHandler{uc: uc} }

func (h *PoolHandler) GetPools(c echo.Context) error {
	dtos, err := h.uc.List(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "failed to list pools"})
	}
	return c.JSON(http.StatusOK, dtos)
}

func (h *PoolHandler) PoolSummary(c echo.Context) error {
	rows, err := h.uc.Summary(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "failed to generate summary"})
	}
	return c.JSON(http.StatusOK, rows)
}
