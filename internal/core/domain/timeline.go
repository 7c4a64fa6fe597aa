package domain

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// EventType tags a timeline event with the mutation that produced it.
type EventType string

const (
	EventCreated      EventType = "created"
	EventUpdated      EventType = "updated"
	EventStageChanged EventType = "stage_changed"
	EventNoteAdded    EventType = "note_added"
	EventContactAdded EventType = "contact_added"
	EventFileAdded    EventType = "file_added"
)

// TimelineEvent is an append-only audit row on an application. Events are
// never updated or deleted directly; they disappear only when the parent
// application is deleted (cascade).
type TimelineEvent struct {
	ID            uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	ApplicationID uuid.UUID `json:"application_id" gorm:"type:uuid;not null;index"`

	Type    EventType         `json:"type" gorm:"size:50;not null"`
	Payload datatypes.JSONMap `json:"payload"`

	CreatedAt time.Time `json:"created_at" gorm:"index"`
}

// NewTimelineEvent builds an event ready for insertion alongside the
// triggering write.
func NewTimelineEvent(applicationID uuid.UUID, eventType EventType, payload map[string]interface{}) *TimelineEvent {
	if payload == nil {
		payload = map[string]interface{}{}
	}
	return &TimelineEvent{
		ID:            uuid.New(),
		ApplicationID: applicationID,
		Type:          eventType,
		Payload:       payload,
	}
}
