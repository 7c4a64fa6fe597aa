package handler

import (
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/jobtrackr/jobtracker/internal/core/domain"
	"github.com/jobtrackr/jobtracker/internal/core/ports"
)

// dueDateLayout is the wire format for next_action_due.
const dueDateLayout = "2006-01-02"

// presentKeys decodes the request body twice: once into dst and once into a
// key set. The key set tells explicit nulls apart from absent fields, which
// plain pointer binding cannot do.
func presentKeys(c echo.Context, dst any) (map[string]bool, error) {
	body, err := io.ReadAll(c.Request().Body)
	if err != nil {
		return nil, echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := json.Unmarshal(body, dst); err != nil {
		return nil, echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	keys := make(map[string]bool, len(raw))
	for k := range raw {
		keys[k] = true
	}
	return keys, nil
}

// applicationInputFromRequest validates enum and date strings and builds the
// service input. Unknown enum values are a caller error here, unlike the CSV
// import path where they fall back to defaults.
func applicationInputFromRequest(req createApplicationRequest) (ports.ApplicationInput, error) {
	in := ports.ApplicationInput{
		RoleTitle:   req.RoleTitle,
		Company:     req.Company,
		Location:    req.Location,
		SalaryRange: req.SalaryRange,
		NextAction:  req.NextAction,
	}

	if req.EmploymentType != "" {
		v, ok := domain.ParseEmploymentType(req.EmploymentType)
		if !ok {
			return in, echo.NewHTTPError(http.StatusBadRequest, "invalid employment_type")
		}
		in.EmploymentType = &v
	}
	if req.Source != "" {
		v, ok := domain.ParseSource(req.Source)
		if !ok {
			return in, echo.NewHTTPError(http.StatusBadRequest, "invalid source")
		}
		in.Source = v
	}
	if req.Stage != "" {
		v, ok := domain.ParseStage(req.Stage)
		if !ok {
			return in, echo.NewHTTPError(http.StatusBadRequest, "invalid stage")
		}
		in.Stage = v
	}
	if req.Priority != "" {
		v, ok := domain.ParsePriority(req.Priority)
		if !ok {
			return in, echo.NewHTTPError(http.StatusBadRequest, "invalid priority")
		}
		in.Priority = v
	}
	if req.NextActionDue != "" {
		t, err := time.Parse(dueDateLayout, req.NextActionDue)
		if err != nil {
			return in, echo.NewHTTPError(http.StatusBadRequest, "invalid next_action_due date format")
		}
		in.NextActionDue = &t
	}

	return in, nil
}

// applicationPatchFromRequest builds the partial update. present marks keys
// that appeared in the body, so an explicit null clears a nullable field.
func applicationPatchFromRequest(req updateApplicationRequest, present map[string]bool) (ports.ApplicationPatch, error) {
	var patch ports.ApplicationPatch

	patch.RoleTitle = req.RoleTitle
	patch.Company = req.Company
	patch.Location = req.Location
	patch.SalaryRange = req.SalaryRange
	patch.NextAction = req.NextAction

	if present["employment_type"] {
		if req.EmploymentType == nil {
			var cleared *domain.EmploymentType
			patch.EmploymentType = &cleared
		} else {
			v, ok := domain.ParseEmploymentType(*req.EmploymentType)
			if !ok {
				return patch, echo.NewHTTPError(http.StatusBadRequest, "invalid employment_type")
			}
			ptr := &v
			patch.EmploymentType = &ptr
		}
	}
	if req.Source != nil {
		v, ok := domain.ParseSource(*req.Source)
		if !ok {
			return patch, echo.NewHTTPError(http.StatusBadRequest, "invalid source")
		}
		patch.Source = &v
	}
	if req.Stage != nil {
		v, ok := domain.ParseStage(*req.Stage)
		if !ok {
			return patch, echo.NewHTTPError(http.StatusBadRequest, "invalid stage")
		}
		patch.Stage = &v
	}
	if req.Priority != nil {
		v, ok := domain.ParsePriority(*req.Priority)
		if !ok {
			return patch, echo.NewHTTPError(http.StatusBadRequest, "invalid priority")
		}
		patch.Priority = &v
	}
	if present["next_action_due"] {
		if req.NextActionDue == nil {
			var cleared *time.Time
			patch.NextActionDue = &cleared
		} else {
			t, err := time.Parse(dueDateLayout, *req.NextActionDue)
			if err != nil {
				return patch, echo.NewHTTPError(http.StatusBadRequest, "invalid next_action_due date format")
			}
			ptr := &t
			patch.NextActionDue = &ptr
		}
	}

	return patch, nil
}
