package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/jobtrackr/jobtracker/internal/core/ports"
)

// DashboardHandler serves the read-only aggregate views.
type DashboardHandler struct {
	service ports.DashboardService
}

func NewDashboardHandler(service ports.DashboardService) *DashboardHandler {
	return &DashboardHandler{service: service}
}

// KPIs returns the headline counters.
//
// @Summary      Dashboard KPIs
// @Tags         dashboard
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  ports.KPIs
// @Failure      401  {object}  map[string]string
// @Router       /api/v1/dashboard/kpis [get]
func (h *DashboardHandler) KPIs(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	kpis, err := h.service.KPIs(c.Request().Context(), userID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, kpis)
}

// WeeklySubmissions returns the last six Monday-anchored weekly buckets.
//
// @Summary      Weekly submission counts
// @Tags         dashboard
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   ports.WeeklySubmission
// @Failure      401  {object}  map[string]string
// @Router       /api/v1/dashboard/weekly [get]
func (h *DashboardHandler) WeeklySubmissions(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	weeks, err := h.service.WeeklySubmissions(c.Request().Context(), userID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, weeks)
}

// StageFunnel returns per-stage counts, including zero-count stages.
//
// @Summary      Stage funnel
// @Tags         dashboard
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   ports.StageFunnelEntry
// @Failure      401  {object}  map[string]string
// @Router       /api/v1/dashboard/funnel [get]
func (h *DashboardHandler) StageFunnel(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	funnel, err := h.service.StageFunnel(c.Request().Context(), userID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, funnel)
}

// Overview combines every dashboard view into one payload.
//
// @Summary      Dashboard overview
// @Tags         dashboard
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  ports.Dashboard
// @Failure      401  {object}  map[string]string
// @Router       /api/v1/dashboard [get]
func (h *DashboardHandler) Overview(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	dashboard, err := h.service.Overview(c.Request().Context(), userID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, dashboard)
}
