package handler

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/jobtrackr/jobtracker/internal/core/ports"
)

// CSVHandler imports and exports applications as CSV.
type CSVHandler struct {
	service ports.CSVService
}

func NewCSVHandler(service ports.CSVService) *CSVHandler {
	return &CSVHandler{service: service}
}

// Import parses an uploaded CSV file. Bad rows are reported per row and
// never fail the request.
//
// @Summary      Import applications from CSV
// @Tags         csv
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        file  formData  file  true  "CSV file with a header row"
// @Success      200   {object}  ports.ImportReport
// @Failure      400   {object}  map[string]string
// @Router       /api/v1/applications/import [post]
func (h *CSVHandler) Import(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "missing file upload")
	}
	if !strings.HasSuffix(strings.ToLower(fileHeader.Filename), ".csv") {
		return echo.NewHTTPError(http.StatusBadRequest, "file must be a CSV")
	}

	src, err := fileHeader.Open()
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "unable to read file upload")
	}
	defer src.Close()

	report, err := h.service.Import(c.Request().Context(), userID, src)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return c.JSON(http.StatusOK, report)
}

// Export streams the caller's applications as a CSV download. The list
// filters apply; pagination does not.
//
// @Summary      Export applications to CSV
// @Tags         csv
// @Produce      text/csv
// @Security     BearerAuth
// @Param        search    query  string  false  "Substring match on role title or company"
// @Param        stage     query  string  false  "Filter by stage"
// @Param        priority  query  string  false  "Filter by priority"
// @Param        source    query  string  false  "Filter by source"
// @Success      200  {string}  string  "CSV content"
// @Failure      401  {object}  map[string]string
// @Router       /api/v1/applications/export [get]
func (h *CSVHandler) Export(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	content, err := h.service.Export(c.Request().Context(), userID, ports.ExportFilter{
		Search:   c.QueryParam("search"),
		Stage:    c.QueryParam("stage"),
		Priority: c.QueryParam("priority"),
		Source:   c.QueryParam("source"),
	})
	if err != nil {
		return err
	}

	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="applications.csv"`)
	return c.Blob(http.StatusOK, "text/csv", []byte(content))
}
