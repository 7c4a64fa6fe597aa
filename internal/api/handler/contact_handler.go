package handler

import (
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/jobtrackr/jobtracker/internal/core/domain"
	"github.com/jobtrackr/jobtracker/internal/core/ports"
)

// ContactHandler handles HTTP requests for contact operations.
type ContactHandler struct {
	service ports.ContactService
}

func NewContactHandler(service ports.ContactService) *ContactHandler {
	return &ContactHandler{service: service}
}

type createContactRequest struct {
	ApplicationID *string `json:"application_id" validate:"omitempty,uuid"`
	Name          string  `json:"name"           validate:"required,max=100"`
	Role          string  `json:"role"           validate:"omitempty,max=100"`
	Email         string  `json:"email"          validate:"omitempty,email"`
	Phone         string  `json:"phone"          validate:"omitempty,max=50"`
	LinkedIn      string  `json:"linkedin"       validate:"omitempty,max=255"`
	Notes         string  `json:"notes"`
}

type updateContactRequest struct {
	ApplicationID *string `json:"application_id" validate:"omitempty,uuid"`
	Name          *string `json:"name"           validate:"omitempty,max=100"`
	Role          *string `json:"role"           validate:"omitempty,max=100"`
	Email         *string `json:"email"          validate:"omitempty,email"`
	Phone         *string `json:"phone"          validate:"omitempty,max=50"`
	LinkedIn      *string `json:"linkedin"       validate:"omitempty,max=255"`
	Notes         *string `json:"notes"`
}

type listContactsResponse struct {
	Data       []*domain.Contact  `json:"data"`
	Pagination paginationResponse `json:"pagination"`
}

// List returns a page of the caller's contacts.
//
// @Summary      List contacts
// @Tags         contacts
// @Produce      json
// @Security     BearerAuth
// @Param        application_id  query     string  false  "Only contacts linked to this application"
// @Param        search          query     string  false  "Substring match on name, role or email"
// @Param        page            query     int     false  "Page number (default 1)"
// @Param        page_size       query     int     false  "Page size (default 20, max 100)"
// @Success      200             {object}  listContactsResponse
// @Failure      401             {object}  map[string]string
// @Router       /api/v1/contacts [get]
func (h *ContactHandler) List(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	in := ports.ListContactsInput{
		Search: c.QueryParam("search"),
	}
	in.Page, _ = strconv.Atoi(c.QueryParam("page"))
	in.PageSize, _ = strconv.Atoi(c.QueryParam("page_size"))

	if raw := c.QueryParam("application_id"); raw != "" {
		appID, err := uuid.Parse(raw)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid application_id")
		}
		in.ApplicationID = &appID
	}

	result, err := h.service.List(c.Request().Context(), userID, in)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, listContactsResponse{
		Data: result.Contacts,
		Pagination: paginationResponse{
			Total:      result.Total,
			Page:       result.Page,
			PageSize:   result.PageSize,
			TotalPages: result.TotalPages,
		},
	})
}

// Create adds a contact, optionally linked to one of the caller's
// applications.
//
// @Summary      Create a contact
// @Tags         contacts
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createContactRequest  true  "Contact details"
// @Success      201   {object}  domain.Contact
// @Failure      400   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /api/v1/contacts [post]
func (h *ContactHandler) Create(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	var req createContactRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	in := ports.ContactInput{
		Name:     req.Name,
		Role:     req.Role,
		Email:    req.Email,
		Phone:    req.Phone,
		LinkedIn: req.LinkedIn,
		Notes:    req.Notes,
	}
	if req.ApplicationID != nil {
		appID, err := uuid.Parse(*req.ApplicationID)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid application_id")
		}
		in.ApplicationID = &appID
	}

	contact, err := h.service.Create(c.Request().Context(), userID, in)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, contact)
}

// Get returns one contact by id.
//
// @Summary      Get a contact
// @Tags         contacts
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Contact id"
// @Success      200  {object}  domain.Contact
// @Failure      404  {object}  map[string]string
// @Router       /api/v1/contacts/{id} [get]
func (h *ContactHandler) Get(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	contact, err := h.service.Get(c.Request().Context(), userID, id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, contact)
}

// Update patches the supplied fields of a contact. An explicit null
// application_id unlinks the contact.
//
// @Summary      Update a contact
// @Tags         contacts
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string                true  "Contact id"
// @Param        body  body      updateContactRequest  true  "Fields to update"
// @Success      200   {object}  domain.Contact
// @Failure      400   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /api/v1/contacts/{id} [put]
func (h *ContactHandler) Update(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var req updateContactRequest
	present, err := presentKeys(c, &req)
	if err != nil {
		return err
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	patch := ports.ContactPatch{
		Name:     req.Name,
		Role:     req.Role,
		Email:    req.Email,
		Phone:    req.Phone,
		LinkedIn: req.LinkedIn,
		Notes:    req.Notes,
	}
	if present["application_id"] {
		if req.ApplicationID == nil {
			var cleared *uuid.UUID
			patch.ApplicationID = &cleared
		} else {
			appID, err := uuid.Parse(*req.ApplicationID)
			if err != nil {
				return echo.NewHTTPError(http.StatusBadRequest, "invalid application_id")
			}
			ptr := &appID
			patch.ApplicationID = &ptr
		}
	}

	contact, err := h.service.Update(c.Request().Context(), userID, id, patch)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, contact)
}

// Delete removes a contact.
//
// @Summary      Delete a contact
// @Tags         contacts
// @Security     BearerAuth
// @Param        id  path  string  true  "Contact id"
// @Success      204  "deleted"
// @Failure      404  {object}  map[string]string
// @Router       /api/v1/contacts/{id} [delete]
func (h *ContactHandler) Delete(c echo.Context) error {
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
