package domain

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Stage represents the lifecycle state of a job application.
type Stage string

const (
	StageDraft     Stage = "Draft"
	StageApplied   Stage = "Applied"
	StageInterview Stage = "Interview"
	StageOffer     Stage = "Offer"
	StageRejected  Stage = "Rejected"
)

// Stages lists every stage in funnel order.
var Stages = []Stage{StageDraft, StageApplied, StageInterview, StageOffer, StageRejected}

// Priority represents how urgent an application is to the user.
type Priority string

const (
	PriorityLow    Priority = "Low"
	PriorityMedium Priority = "Medium"
	PriorityHigh   Priority = "High"
)

var Priorities = []Priority{PriorityLow, PriorityMedium, PriorityHigh}

// Source records where the user found the opening.
type Source string

const (
	SourceReferral       Source = "Referral"
	SourceLinkedIn       Source = "LinkedIn"
	SourceCompanyWebsite Source = "Company Website"
	SourceJobBoard       Source = "Job Board"
	SourceRecruiter      Source = "Recruiter"
	SourceOther          Source = "Other"
)

var Sources = []Source{SourceReferral, SourceLinkedIn, SourceCompanyWebsite, SourceJobBoard, SourceRecruiter, SourceOther}

// EmploymentType describes the contract kind of the opening.
type EmploymentType string

const (
	EmploymentFullTime   EmploymentType = "Full-time"
	EmploymentPartTime   EmploymentType = "Part-time"
	EmploymentContract   EmploymentType = "Contract"
	EmploymentInternship EmploymentType = "Internship"
	EmploymentFreelance  EmploymentType = "Freelance"
)

var EmploymentTypes = []EmploymentType{EmploymentFullTime, EmploymentPartTime, EmploymentContract, EmploymentInternship, EmploymentFreelance}

// ParseStage matches s against the known stages, case-insensitively.
func ParseStage(s string) (Stage, bool) {
	for _, v := range Stages {
		if strings.EqualFold(strings.TrimSpace(s), string(v)) {
			return v, true
		}
	}
	return "", false
}

// ParsePriority matches s against the known priorities, case-insensitively.
func ParsePriority(s string) (Priority, bool) {
	for _, v := range Priorities {
		if strings.EqualFold(strings.TrimSpace(s), string(v)) {
			return v, true
		}
	}
	return "", false
}

// ParseSource matches s against the known sources, case-insensitively.
func ParseSource(s string) (Source, bool) {
	for _, v := range Sources {
		if strings.EqualFold(strings.TrimSpace(s), string(v)) {
			return v, true
		}
	}
	return "", false
}

// ParseEmploymentType matches s against the known employment types,
// case-insensitively.
func ParseEmploymentType(s string) (EmploymentType, bool) {
	for _, v := range EmploymentTypes {
		if strings.EqualFold(strings.TrimSpace(s), string(v)) {
			return v, true
		}
	}
	return "", false
}

var ErrApplicationNotFound = errors.New("application not found")

// Application is the core aggregate: one tracked job opening owned by one user.
type Application struct {
	ID     uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	UserID uuid.UUID `json:"user_id" gorm:"type:uuid;not null;index"`

	RoleTitle      string          `json:"role_title" gorm:"size:255;not null"`
	Company        string          `json:"company" gorm:"size:255;not null"`
	Location       string          `json:"location,omitempty" gorm:"size:255"`
	EmploymentType *EmploymentType `json:"employment_type,omitempty" gorm:"size:50"`
	SalaryRange    string          `json:"salary_range,omitempty" gorm:"size:100"`

	Source   Source   `json:"source" gorm:"size:50;default:'Other'"`
	Stage    Stage    `json:"stage" gorm:"size:50;default:'Draft';index"`
	Priority Priority `json:"priority" gorm:"size:50;default:'Medium';index"`

	NextAction    string     `json:"next_action,omitempty" gorm:"type:text"`
	NextActionDue *time.Time `json:"next_action_due,omitempty" gorm:"type:date"`

	CreatedAt time.Time `json:"created_at" gorm:"index"`
	UpdatedAt time.Time `json:"updated_at"`

	Contacts       []Contact       `json:"-" gorm:"constraint:OnDelete:CASCADE"`
	Notes          []Note          `json:"-" gorm:"constraint:OnDelete:CASCADE"`
	TimelineEvents []TimelineEvent `json:"-" gorm:"constraint:OnDelete:CASCADE"`
	Files          []File          `json:"-" gorm:"constraint:OnDelete:CASCADE"`
}

// sortableColumns guards the list endpoint's sort_by parameter against
// arbitrary column injection.
var sortableColumns = map[string]struct{}{
	"role_title": {}, "company": {}, "location": {}, "employment_type": {},
	"salary_range": {}, "source": {}, "stage": {}, "priority": {},
	"next_action_due": {}, "created_at": {}, "updated_at": {},
}

// SortColumn returns the column to sort applications by, falling back to
// created_at when the requested name is unknown.
func SortColumn(name string) string {
	if _, ok := sortableColumns[name]; ok {
		return name
	}
	return "created_at"
}
