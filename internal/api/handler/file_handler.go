package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/jobtrackr/jobtracker/internal/core/domain"
	"github.com/jobtrackr/jobtracker/internal/core/ports"
)

// FileHandler manages attachment metadata. Byte storage is external; these
// routes only register and list the records.
type FileHandler struct {
	service ports.FileService
}

func NewFileHandler(service ports.FileService) *FileHandler {
	return &FileHandler{service: service}
}

type createFileRequest struct {
	Filename    string `json:"filename"     validate:"required,max=255"`
	Path        string `json:"path"         validate:"required,max=500"`
	SizeBytes   int64  `json:"size_bytes"   validate:"min=0"`
	ContentType string `json:"content_type" validate:"omitempty,max=100"`
}

type listFilesResponse struct {
	Data  []*domain.File `json:"data"`
	Total int            `json:"total"`
}

// List returns an application's registered files.
//
// @Summary      List an application's files
// @Tags         files
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Application id"
// @Success      200  {object}  listFilesResponse
// @Failure      404  {object}  map[string]string
// @Router       /api/v1/applications/{id}/files [get]
func (h *FileHandler) List(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}
	appID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	files, err := h.service.ListByApplication(c.Request().Context(), userID, appID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, listFilesResponse{Data: files, Total: len(files)})
}

// Create registers attachment metadata against an application.
//
// @Summary      Register a file
// @Tags         files
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string             true  "Application id"
// @Param        body  body      createFileRequest  true  "File metadata"
// @Success      201   {object}  domain.File
// @Failure      400   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /api/v1/applications/{id}/files [post]
func (h *FileHandler) Create(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}
	appID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var req createFileRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	file, err := h.service.Create(c.Request().Context(), userID, appID, ports.FileInput{
		Filename:    req.Filename,
		Path:        req.Path,
		SizeBytes:   req.SizeBytes,
		ContentType: req.ContentType,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, file)
}

// Delete removes a file record.
//
// @Summary      Delete a file
// @Tags         files
// @Security     BearerAuth
// @Param        id  path  string  true  "File id"
// @Success      204  "deleted"
// @Failure      404  {object}  map[string]string
// @Router       /api/v1/files/{id} [delete]
func (h *FileHandler) Delete(c echo.Context) error {
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
