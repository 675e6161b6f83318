// internal/repository/journey_repository.go
package repository

import (
	"context"
	"encoding/json"
	"errors"

	"aprovapp/internal/model"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// uniqueViolation is the postgres error code for unique-constraint failures.
const uniqueViolation = "23505"

type JourneyRepository interface {
	Create(ctx context.Context, tx *gorm.DB, journey *model.Journey) error
	FindByID(ctx context.Context, db *gorm.DB, userID, journeyID uuid.UUID) (*model.Journey, error)
	FindByUser(ctx context.Context, db *gorm.DB, userID uuid.UUID) ([]*model.Journey, error)
	UpdateStudyData(ctx context.Context, tx *gorm.DB, journey *model.Journey) error
}

type gormJourneyRepository struct{}

func NewGormJourneyRepository() JourneyRepository {
	return &gormJourneyRepository{}
}

func (r *gormJourneyRepository) Create(ctx context.Context, tx *gorm.DB, journey *model.Journey) error {
	result := tx.WithContext(ctx).Create(journey)
	if result.Error != nil {
		var pgErr *pgconn.PgError
		if errors.As(result.Error, &pgErr) && pgErr.Code == uniqueViolation {
			return model.ErrConflict
		}
		return result.Error
	}
	return nil
}

func (r *gormJourneyRepository) FindByID(ctx context.Context, db *gorm.DB, userID, journeyID uuid.UUID) (*model.Journey, error) {
	var journey model.Journey
	result := db.WithContext(ctx).
		Where("user_id = ? AND journey_id = ?", userID, journeyID).
		First(&journey)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		return nil, result.Error
	}
	return &journey, nil
}

func (r *gormJourneyRepository) FindByUser(ctx context.Context, db *gorm.DB, userID uuid.UUID) ([]*model.Journey, error) {
	var journeys []*model.Journey
	result := db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at ASC").
		Find(&journeys)
	if result.Error != nil {
		return nil, result.Error
	}
	return journeys, nil
}

// UpdateStudyData writes the study-data document back with a compare-and-swap
// on the version column. Two concurrent writers on the same journey would
// otherwise silently lose one writer's generated revisions; the loser gets
// ErrConflict and must re-read and recompute.
func (r *gormJourneyRepository) UpdateStudyData(ctx context.Context, tx *gorm.DB, journey *model.Journey) error {
	raw, err := json.Marshal(journey.StudyData)
	if err != nil {
		return err
	}

	result := tx.WithContext(ctx).Model(&model.Journey{}).
		Where("journey_id = ? AND version = ?", journey.JourneyID, journey.Version).
		Updates(map[string]interface{}{
			"study_data": string(raw),
			"version":    journey.Version + 1,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return model.ErrConflict
	}
	journey.Version++
	return nil
}
