package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/jobtrackr/jobtracker/internal/api/metrics"
	"github.com/jobtrackr/jobtracker/internal/core/domain"
	"github.com/jobtrackr/jobtracker/internal/core/ports"
)

// ContactService implements the contact use cases. Linking a contact to an
// application requires that application to belong to the caller.
type ContactService struct {
	repo ports.ContactRepository
	apps ports.ApplicationRepository
	log  zerolog.Logger
}

func NewContactService(repo ports.ContactRepository, apps ports.ApplicationRepository, log zerolog.Logger) *ContactService {
	return &ContactService{repo: repo, apps: apps, log: log}
}

func (s *ContactService) List(ctx context.Context, userID uuid.UUID, in ports.ListContactsInput) (*ports.ContactPage, error) {
	page, pageSize := normalizePage(in.Page, in.PageSize)

	contacts, total, err := s.repo.List(ctx, ports.ListContactsFilter{
		UserID:        userID,
		ApplicationID: in.ApplicationID,
		Search:        in.Search,
		Page:          page,
		PageSize:      pageSize,
	})
	if err != nil {
		return nil, err
	}

	return &ports.ContactPage{
		Contacts:   contacts,
		Total:      total,
		Page:       page,
		PageSize:   pageSize,
		TotalPages: totalPages(total, pageSize),
	}, nil
}

func (s *ContactService) Create(ctx context.Context, userID uuid.UUID, in ports.ContactInput) (*domain.Contact, error) {
	if in.ApplicationID != nil {
		if _, err := s.apps.FindByID(ctx, *in.ApplicationID, userID); err != nil {
			return nil, err
		}
	}

	contact := &domain.Contact{
		ID:            uuid.New(),
		UserID:        userID,
		ApplicationID: in.ApplicationID,
		Name:          in.Name,
		Role:          in.Role,
		Email:         in.Email,
		Phone:         in.Phone,
		LinkedIn:      in.LinkedIn,
		Notes:         in.Notes,
	}

	// Only a linked contact leaves a trace on the application's timeline.
	var event *domain.TimelineEvent
	if contact.ApplicationID != nil {
		event = domain.NewTimelineEvent(*contact.ApplicationID, domain.EventContactAdded, map[string]interface{}{
			"contact_name": contact.Name,
			"contact_role": contact.Role,
		})
	}

	if err := s.repo.Create(ctx, contact, event); err != nil {
		return nil, err
	}
	if event != nil {
		metrics.TimelineEventsTotal.WithLabelValues(string(domain.EventContactAdded)).Inc()
	}
	return contact, nil
}

func (s *ContactService) Get(ctx context.Context, userID, id uuid.UUID) (*domain.Contact, error) {
	return s.repo.FindByID(ctx, id, userID)
}

// Update merges supplied fields. Unlike Create, it never appends a timeline
// event, not even when the application link changes.
func (s *ContactService) Update(ctx context.Context, userID, id uuid.UUID, patch ports.ContactPatch) (*domain.Contact, error) {
	contact, err := s.repo.FindByID(ctx, id, userID)
	if err != nil {
		return nil, err
	}

	if patch.ApplicationID != nil {
		if *patch.ApplicationID != nil {
			if _, err := s.apps.FindByID(ctx, **patch.ApplicationID, userID); err != nil {
				return nil, err
			}
		}
		contact.ApplicationID = *patch.ApplicationID
	}
	if patch.Name != nil {
		contact.Name = *patch.Name
	}
	if patch.Role != nil {
		contact.Role = *patch.Role
	}
	if patch.Email != nil {
		contact.Email = *patch.Email
	}
	if patch.Phone != nil {
		contact.Phone = *patch.Phone
	}
	if patch.LinkedIn != nil {
		contact.LinkedIn = *patch.LinkedIn
	}
	if patch.Notes != nil {
		contact.Notes = *patch.Notes
	}

	if err := s.repo.Update(ctx, contact); err != nil {
		return nil, err
	}
	return contact, nil
}

func (s *ContactService) Delete(ctx context.Context, userID, id uuid.UUID) error {
	return s.repo.Delete(ctx, id, userID)
}
