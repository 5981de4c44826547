package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/IT22898920/GYM-App-sub004/internal/middleware/auth"
	"github.com/IT22898920/GYM-App-sub004/internal/usecase"
)

type WorkoutPlanHandler struct {
	plans  *usecase.WorkoutPlanService
	logger *zap.Logger
}

func NewWorkoutPlanHandler(plans *usecase.WorkoutPlanService, logger *zap.Logger) *WorkoutPlanHandler {
	return &WorkoutPlanHandler{plans: plans, logger: logger}
}

func (h *WorkoutPlanHandler) Create(c echo.Context) error {
	user, err := auth.RequireAuth(c)
	if err != nil {
		return err
	}

	var input usecase.WorkoutPlanInput
	if err := c.Bind(&input); err != nil {
		return c.JSON(http.StatusBadRequest, errorBody{Error: "invalid request body"})
	}
	if err := c.Validate(&input); err != nil {
		return c.JSON(http.StatusBadRequest, errorBody{Error: err.Error()})
	}

	plan, err := h.plans.Create(c.Request().Context(), user.GymID, user.UserID, input)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusCreated, plan)
}

func (h *WorkoutPlanHandler) Get(c echo.Context) error {
	plan, err := h.plans.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, plan)
}

// ListByGym returns the plans of the gym named in the route. Browsing is
// public so prospective members can compare programs.
func (h *WorkoutPlanHandler) ListByGym(c echo.Context) error {
	plans, err := h.plans.ListByGym(c.Request().Context(), c.Param("gymId"), paginationFromQuery(c))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, plans)
}

func (h *WorkoutPlanHandler) Update(c echo.Context) error {
	user, err := auth.RequireAuth(c)
	if err != nil {
		return err
	}

	var input usecase.WorkoutPlanInput
	if err := c.Bind(&input); err != nil {
		return c.JSON(http.StatusBadRequest, errorBody{Error: "invalid request body"})
	}
	if err := c.Validate(&input); err != nil {
		return c.JSON(http.StatusBadRequest, errorBody{Error: err.Error()})
	}

	plan, err := h.plans.Update(c.Request().Context(), c.Param("id"), user.GymID, input)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, plan)
}

func (h *WorkoutPlanHandler) Delete(c echo.Context) error {
	user, err := auth.RequireAuth(c)
	if err != nil {
		return err
	}

	if err := h.plans.Delete(c.Request().Context(), c.Param("id"), user.GymID); err != nil {
		return writeError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}
