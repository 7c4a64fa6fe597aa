package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/jobtrackr/jobtracker/internal/core/domain"
	"github.com/jobtrackr/jobtracker/internal/core/ports"
)

// ApplicationHandler handles HTTP requests for application operations.
type ApplicationHandler struct {
	service ports.ApplicationService
}

func NewApplicationHandler(service ports.ApplicationService) *ApplicationHandler {
	return &ApplicationHandler{service: service}
}

// List returns a filtered, sorted page of the caller's applications.
//
// @Summary      List applications
// @Tags         applications
// @Produce      json
// @Security     BearerAuth
// @Param        search      query     string  false  "Substring match on role title or company"
// @Param        stage       query     string  false  "Filter by stage"
// @Param        priority    query     string  false  "Filter by priority"
// @Param        source      query     string  false  "Filter by source"
// @Param        sort_by     query     string  false  "Sort column (default created_at)"
// @Param        sort_order  query     string  false  "asc or desc (default desc)"
// @Param        page        query     int     false  "Page number (default 1)"
// @Param        page_size   query     int     false  "Page size (default 20, max 100)"
// @Success      200         {object}  listApplicationsResponse
// @Failure      401         {object}  map[string]string
// @Router       /api/v1/applications [get]
func (h *ApplicationHandler) List(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	page, _ := strconv.Atoi(c.QueryParam("page"))
	pageSize, _ := strconv.Atoi(c.QueryParam("page_size"))

	result, err := h.service.List(c.Request().Context(), userID, ports.ListApplicationsInput{
		Search:    c.QueryParam("search"),
		Stage:     c.QueryParam("stage"),
		Priority:  c.QueryParam("priority"),
		Source:    c.QueryParam("source"),
		SortBy:    c.QueryParam("sort_by"),
		SortOrder: c.QueryParam("sort_order"),
		Page:      page,
		PageSize:  pageSize,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, listApplicationsResponse{
		Data: result.Applications,
		Pagination: paginationResponse{
			Total:      result.Total,
			Page:       result.Page,
			PageSize:   result.PageSize,
			TotalPages: result.TotalPages,
		},
	})
}

// Create adds a new application.
//
// @Summary      Create an application
// @Tags         applications
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createApplicationRequest  true  "Application details"
// @Success      201   {object}  domain.Application
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Router       /api/v1/applications [post]
func (h *ApplicationHandler) Create(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	var req createApplicationRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	in, err := applicationInputFromRequest(req)
	if err != nil {
		return err
	}

	app, err := h.service.Create(c.Request().Context(), userID, in)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, app)
}

// Get returns one application by id.
//
// @Summary      Get an application
// @Tags         applications
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Application id"
// @Success      200  {object}  domain.Application
// @Failure      404  {object}  map[string]string
// @Router       /api/v1/applications/{id} [get]
func (h *ApplicationHandler) Get(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	app, err := h.service.Get(c.Request().Context(), userID, id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, app)
}

// Update patches the supplied fields of an application.
//
// @Summary      Update an application
// @Tags         applications
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string                    true  "Application id"
// @Param        body  body      updateApplicationRequest  true  "Fields to update"
// @Success      200   {object}  domain.Application
// @Failure      400   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /api/v1/applications/{id} [put]
func (h *ApplicationHandler) Update(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var req updateApplicationRequest
	present, err := presentKeys(c, &req)
	if err != nil {
		return err
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	patch, err := applicationPatchFromRequest(req, present)
	if err != nil {
		return err
	}

	app, err := h.service.Update(c.Request().Context(), userID, id, patch)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, app)
}

// UpdateStage moves an application to a new stage. The board UI calls this
// on every drop, so the transition is recorded even when the stage is
// unchanged.
//
// @Summary      Update an application's stage
// @Tags         applications
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string              true  "Application id"
// @Param        body  body      updateStageRequest  true  "New stage"
// @Success      200   {object}  domain.Application
// @Failure      400   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /api/v1/applications/{id}/stage [patch]
func (h *ApplicationHandler) UpdateStage(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var req updateStageRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	stage, ok := domain.ParseStage(req.Stage)
	if !ok {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid stage")
	}

	app, err := h.service.UpdateStage(c.Request().Context(), userID, id, stage)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, app)
}

// Delete removes an application and its dependents.
//
// @Summary      Delete an application
// @Tags         applications
// @Security     BearerAuth
// @Param        id  path  string  true  "Application id"
// @Success      204  "deleted"
// @Failure      404  {object}  map[string]string
// @Router       /api/v1/applications/{id} [delete]
func (h *ApplicationHandler) Delete(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	if err := h.service.Delete(c.Request().Context(), userID, id); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
