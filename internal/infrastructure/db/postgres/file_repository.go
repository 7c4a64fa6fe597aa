package postgres

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/jobtrackr/jobtracker/internal/core/domain"
)

// FileRepository implements ports.FileRepository. Files carry no user_id of
// their own; ownership checks go through the parent application.
type FileRepository struct {
	db *gorm.DB
}

func NewFileRepository(db *gorm.DB) *FileRepository {
	return &FileRepository{db: db}
}

// Create inserts the metadata row and its file_added event in one
// transaction.
func (r *FileRepository) Create(ctx context.Context, file *domain.File, event *domain.TimelineEvent) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(file).Error; err != nil {
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

func (r *FileRepository) FindByID(ctx context.Context, id, userID uuid.UUID) (*domain.File, error) {
	var file domain.File
	err := r.db.WithContext(ctx).
		Joins("JOIN applications ON applications.id = files.application_id").
		Where("files.id = ? AND applications.user_id = ?", id, userID).
		First(&file).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrFileNotFound
		}
		return nil, err
	}
	return &file, nil
}

func (r *FileRepository) ListByApplication(ctx context.Context, applicationID uuid.UUID) ([]*domain.File, error) {
	var files []*domain.File
	err := r.db.WithContext(ctx).
		Where("application_id = ?", applicationID).
		Order("created_at DESC").
		Find(&files).Error
	if err != nil {
		return nil, err
	}
	return files, nil
}

func (r *FileRepository) Delete(ctx context.Context, id, userID uuid.UUID) error {
	res := r.db.WithContext(ctx).
		Where("id = ? AND application_id IN (SELECT id FROM applications WHERE user_id = ?)", id, userID).
		Delete(&domain.File{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrFileNotFound
	}
	return nil
}
