package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/IT22898920/GYM-App-sub004/internal/middleware/auth"
	"github.com/IT22898920/GYM-App-sub004/internal/usecase"
)

type GymHandler struct {
	gyms   *usecase.GymService
	logger *zap.Logger
}

func NewGymHandler(gyms *usecase.GymService, logger *zap.Logger) *GymHandler {
	return &GymHandler{gyms: gyms, logger: logger}
}

func (h *GymHandler) Create(c echo.Context) error {
	user, err := auth.RequireAuth(c)
	if err != nil {
		return err
	}

	var input usecase.GymInput
	if err := c.Bind(&input); err != nil {
		return c.JSON(http.StatusBadRequest, errorBody{Error: "invalid request body"})
	}
	if err := c.Validate(&input); err != nil {
		return c.JSON(http.StatusBadRequest, errorBody{Error: err.Error()})
	}

	gym, err := h.gyms.Create(c.Request().Context(), user.UserID, input)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusCreated, gym)
}

func (h *GymHandler) Get(c echo.Context) error {
	gym, err := h.gyms.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, gym)
}

func (h *GymHandler) List(c echo.Context) error {
	gyms, err := h.gyms.List(c.Request().Context(), paginationFromQuery(c))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, gyms)
}

// Mine returns the gym owned by the authenticated account.
func (h *GymHandler) Mine(c echo.Context) error {
	user, err := auth.RequireAuth(c)
	if err != nil {
		return err
	}

	gym, err := h.gyms.GetByOwner(c.Request().Context(), user.UserID)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, gym)
}

func (h *GymHandler) Update(c echo.Context) error {
	user, err := auth.RequireAuth(c)
	if err != nil {
		return err
	}

	var input usecase.GymInput
	if err := c.Bind(&input); err != nil {
		return c.JSON(http.StatusBadRequest, errorBody{Error: "invalid request body"})
	}
	if err := c.Validate(&input); err != nil {
		return c.JSON(http.StatusBadRequest, errorBody{Error: err.Error()})
	}

	gym, err := h.gyms.Update(c.Request().Context(), c.Param("id"), user.UserID, input)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, gym)
}
