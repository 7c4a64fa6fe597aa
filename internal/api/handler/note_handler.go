package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/jobtrackr/jobtracker/internal/core/domain"
	"github.com/jobtrackr/jobtracker/internal/core/ports"
)

// NoteHandler handles HTTP requests for note operations.
type NoteHandler struct {
	service ports.NoteService
}

func NewNoteHandler(service ports.NoteService) *NoteHandler {
	return &NoteHandler{service: service}
}

type noteRequest struct {
	Content string `json:"content" validate:"required"`
}

type listNotesResponse struct {
	Data       []*domain.Note     `json:"data"`
	Pagination paginationResponse `json:"pagination"`
}

// List returns a page of an application's notes, newest first.
//
// @Summary      List an application's notes
// @Tags         notes
// @Produce      json
// @Security     BearerAuth
// @Param        id         path      string  true   "Application id"
// @Param        page       query     int     false  "Page number (default 1)"
// @Param        page_size  query     int     false  "Page size (default 20, max 100)"
// @Success      200        {object}  listNotesResponse
// @Failure      404        {object}  map[string]string
// @Router       /api/v1/applications/{id}/notes [get]
func (h *NoteHandler) List(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}
	appID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	page, _ := strconv.Atoi(c.QueryParam("page"))
	pageSize, _ := strconv.Atoi(c.QueryParam("page_size"))

	result, err := h.service.ListByApplication(c.Request().Context(), userID, appID, page, pageSize)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, listNotesResponse{
		Data: result.Notes,
		Pagination: paginationResponse{
			Total:      result.Total,
			Page:       result.Page,
			PageSize:   result.PageSize,
			TotalPages: result.TotalPages,
		},
	})
}

// Create appends a note to an application.
//
// @Summary      Create a note
// @Tags         notes
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string       true  "Application id"
// @Param        body  body      noteRequest  true  "Note content"
// @Success      201   {object}  domain.Note
// @Failure      400   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /api/v1/applications/{id}/notes [post]
func (h *NoteHandler) Create(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}
	appID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var req noteRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	note, err := h.service.Create(c.Request().Context(), userID, appID, req.Content)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, note)
}

// Get returns one note by id.
//
// @Summary      Get a note
// @Tags         notes
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Note id"
// @Success      200  {object}  domain.Note
// @Failure      404  {object}  map[string]string
// @Router       /api/v1/notes/{id} [get]
func (h *NoteHandler) Get(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	note, err := h.service.Get(c.Request().Context(), userID, id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, note)
}

// Update replaces a note's content.
//
// @Summary      Update a note
// @Tags         notes
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string       true  "Note id"
// @Param        body  body      noteRequest  true  "New content"
// @Success      200   {object}  domain.Note
// @Failure      400   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /api/v1/notes/{id} [put]
func (h *NoteHandler) Update(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var req noteRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	note, err := h.service.Update(c.Request().Context(), userID, id, req.Content)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, note)
}

// Delete removes a note.
//
// @Summary      Delete a note
// @Tags         notes
// @Security     BearerAuth
// @Param        id  path  string  true  "Note id"
// @Success      204  "deleted"
// @Failure      404  {object}  map[string]string
// @Router       /api/v1/notes/{id} [delete]
func (h *NoteHandler) Delete(c echo.Context) error {
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
