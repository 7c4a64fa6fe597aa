package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/jobtrackr/jobtracker/internal/core/domain"
	"github.com/jobtrackr/jobtracker/internal/core/ports"
)

// TimelineHandler serves the read-only event history.
type TimelineHandler struct {
	service ports.TimelineService
}

func NewTimelineHandler(service ports.TimelineService) *TimelineHandler {
	return &TimelineHandler{service: service}
}

type timelineResponse struct {
	Data  []*domain.TimelineEvent `json:"data"`
	Total int                     `json:"total"`
}

// List returns an application's full event history, newest first.
//
// @Summary      Get an application's timeline
// @Tags         timeline
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Application id"
// @Success      200  {object}  timelineResponse
// @Failure      404  {object}  map[string]string
// @Router       /api/v1/applications/{id}/timeline [get]
func (h *TimelineHandler) List(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}
	appID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	result, err := h.service.ListByApplication(c.Request().Context(), userID, appID)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, timelineResponse{
		Data:  result.Events,
		Total: result.Total,
	})
}
