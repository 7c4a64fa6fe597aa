package handler

import (
	"github.com/jobtrackr/jobtracker/internal/core/domain"
)

// --- Request / Response types ---

type createApplicationRequest struct {
	RoleTitle      string `json:"role_title"      validate:"required,max=255"`
	Company        string `json:"company"         validate:"required,max=255"`
	Location       string `json:"location"        validate:"omitempty,max=255"`
	EmploymentType string `json:"employment_type"`
	SalaryRange    string `json:"salary_range"    validate:"omitempty,max=100"`
	Source         string `json:"source"`
	Stage          string `json:"stage"`
	Priority       string `json:"priority"`
	NextAction     string `json:"next_action"`
	NextActionDue  string `json:"next_action_due"`
}

// updateApplicationRequest uses pointers so absent fields are left
// untouched. Whether a nullable field was explicitly set to null is decided
// by the raw key set captured at bind time (see presentKeys).
type updateApplicationRequest struct {
	RoleTitle      *string `json:"role_title"      validate:"omitempty,max=255"`
	Company        *string `json:"company"         validate:"omitempty,max=255"`
	Location       *string `json:"location"        validate:"omitempty,max=255"`
	EmploymentType *string `json:"employment_type"`
	SalaryRange    *string `json:"salary_range"    validate:"omitempty,max=100"`
	Source         *string `json:"source"`
	Stage          *string `json:"stage"`
	Priority       *string `json:"priority"`
	NextAction     *string `json:"next_action"`
	NextActionDue  *string `json:"next_action_due"`
}

type updateStageRequest struct {
	Stage string `json:"stage" validate:"required"`
}

type paginationResponse struct {
	Total      int64 `json:"total"`
	Page       int   `json:"page"`
	PageSize   int   `json:"page_size"`
	TotalPages int   `json:"total_pages"`
}

type listApplicationsResponse struct {
	Data       []*domain.Application `json:"data"`
	Pagination paginationResponse    `json:"pagination"`
}
