package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/jobtrackr/jobtracker/internal/core/domain"
	"github.com/jobtrackr/jobtracker/internal/core/ports"
)

// ApplicationRepository implements ports.ApplicationRepository.
type ApplicationRepository struct {
	db *gorm.DB
}

func NewApplicationRepository(db *gorm.DB) *ApplicationRepository {
	return &ApplicationRepository{db: db}
}

// Create inserts the application and its created event in one transaction.
func (r *ApplicationRepository) Create(ctx context.Context, app *domain.Application, event *domain.TimelineEvent) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Create(app).Error; err != nil {
			return err
		}
		if event != nil {
			if err := tx.Create(event).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// CreateBatch inserts every application atomically; a failure rolls back
// the whole batch.
func (r *ApplicationRepository) CreateBatch(ctx context.Context, apps []*domain.Application) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Omit(clause.Associations).Create(&apps).Error
	})
}

func (r *ApplicationRepository) FindByID(ctx context.Context, id, userID uuid.UUID) (*domain.Application, error) {
	var app domain.Application
	err := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		First(&app).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrApplicationNotFound
		}
		return nil, err
	}
	return &app, nil
}

func (r *ApplicationRepository) List(ctx context.Context, f ports.ListApplicationsFilter) ([]*domain.Application, int64, error) {
	q := r.db.WithContext(ctx).Model(&domain.Application{}).Where("user_id = ?", f.UserID)

	if f.Search != "" {
		pattern := "%" + f.Search + "%"
		q = q.Where("role_title ILIKE ? OR company ILIKE ?", pattern, pattern)
	}
	if f.Stage != "" {
		q = q.Where("stage = ?", f.Stage)
	}
	if f.Priority != "" {
		q = q.Where("priority = ?", f.Priority)
	}
	if f.Source != "" {
		q = q.Where("source = ?", f.Source)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	dir := "ASC"
	if f.SortDesc {
		dir = "DESC"
	}
	// SortBy has been validated against the sortable column list upstream.
	q = q.Order(fmt.Sprintf("%s %s", f.SortBy, dir))

	if !f.NoPaging {
		q = q.Offset((f.Page - 1) * f.PageSize).Limit(f.PageSize)
	}

	var apps []*domain.Application
	if err := q.Find(&apps).Error; err != nil {
		return nil, 0, err
	}
	return apps, total, nil
}

// Update saves the full row and appends the audit event in one transaction.
func (r *ApplicationRepository) Update(ctx context.Context, app *domain.Application, event *domain.TimelineEvent) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Save(app).Error; err != nil {
			return err
		}
		if event != nil {
			if err := tx.Create(event).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// Delete removes the row; contacts links, notes, timeline events and files
// go with it through the FK cascades.
func (r *ApplicationRepository) Delete(ctx context.Context, id, userID uuid.UUID) error {
	res := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&domain.Application{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrApplicationNotFound
	}
	return nil
}

func (r *ApplicationRepository) CountByStage(ctx context.Context, userID uuid.UUID) (map[domain.Stage]int64, error) {
	var rows []struct {
		Stage domain.Stage
		Count int64
	}
	err := r.db.WithContext(ctx).Model(&domain.Application{}).
		Select("stage, COUNT(id) AS count").
		Where("user_id = ?", userID).
		Group("stage").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	counts := make(map[domain.Stage]int64, len(rows))
	for _, row := range rows {
		counts[row.Stage] = row.Count
	}
	return counts, nil
}

func (r *ApplicationRepository) CreationTimesSince(ctx context.Context, userID uuid.UUID, since time.Time) ([]time.Time, error) {
	var times []time.Time
	err := r.db.WithContext(ctx).Model(&domain.Application{}).
		Where("user_id = ? AND created_at >= ?", userID, since).
		Pluck("created_at", &times).Error
	if err != nil {
		return nil, err
	}
	return times, nil
}

func (r *ApplicationRepository) ListDueActions(ctx context.Context, userID uuid.UUID, due time.Time) ([]*domain.Application, error) {
	var apps []*domain.Application
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND next_action_due IS NOT NULL AND next_action_due <= ? AND next_action <> ''", userID, due).
		Order("next_action_due ASC").
		Find(&apps).Error
	if err != nil {
		return nil, err
	}
	return apps, nil
}
