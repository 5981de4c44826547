package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/IT22898920/GYM-App-sub004/internal/middleware/auth"
	"github.com/IT22898920/GYM-App-sub004/internal/usecase"
)

type PaymentHandler struct {
	payments *usecase.PaymentService
	logger   *zap.Logger
}

func NewPaymentHandler(payments *usecase.PaymentService, logger *zap.Logger) *PaymentHandler {
	return &PaymentHandler{payments: payments, logger: logger}
}

// List returns the payment ledger of the caller's gym.
func (h *PaymentHandler) List(c echo.Context) error {
	user, err := auth.RequireAuth(c)
	if err != nil {
		return err
	}

	payments, err := h.payments.ListByGym(c.Request().Context(), user.GymID, paginationFromQuery(c))
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, payments)
}

// ListByMember returns every ledger entry recorded for one member.
func (h *PaymentHandler) ListByMember(c echo.Context) error {
	if _, err := auth.RequireAuth(c); err != nil {
		return err
	}

	payments, err := h.payments.ListByMember(c.Request().Context(), c.Param("id"))
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, payments)
}
