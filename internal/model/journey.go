// internal/model/journey.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Journey is one active study plan: an edital plus its study-data document.
// Edital and StudyData are stored as JSON document columns; the whole
// StudyData document is read and written as a unit, guarded by Version.
type Journey struct {
	JourneyID uuid.UUID      `gorm:"type:uuid;primaryKey" json:"journey_id"`
	UserID    uuid.UUID      `gorm:"type:uuid;not null;index" json:"-"`
	Edital    Edital         `gorm:"serializer:json" json:"edital"`
	StudyData StudyData      `gorm:"serializer:json" json:"study_data"`
	Version   int64          `gorm:"not null;default:1" json:"-"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (Journey) TableName() string {
	return "journeys"
}

// ContextKey is the type for values stored in the request context.
type ContextKey string

// UserIDKey carries the authenticated user's ID through the request context.
const UserIDKey ContextKey = "userID"
