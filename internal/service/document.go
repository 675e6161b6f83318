// internal/service/document.go
package service

import (
	"context"
	"errors"

	"aprovapp/internal/middleware"
	"aprovapp/internal/model"
	"aprovapp/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// documentStore is the shared read-modify-write cycle over the journey
// document. mutate re-reads the document and re-applies fn on every
// optimistic-lock conflict; fn must therefore be a pure computation over the
// journey (the scheduler operations are).
type documentStore struct {
	db          *gorm.DB
	journeyRepo repository.JourneyRepository
	retries     int
}

func (s *documentStore) mutate(ctx context.Context, userID, journeyID uuid.UUID, fn func(j *model.Journey) error) (*model.Journey, error) {
	logger := middleware.GetLogger(ctx).With("journey_id", journeyID)

	for attempt := 0; attempt < s.retries; attempt++ {
		journey, err := s.journeyRepo.FindByID(ctx, s.db, userID, journeyID)
		if err != nil {
			if errors.Is(err, model.ErrNotFound) {
				return nil, model.NewAppError("NOT_FOUND", "Jornada não encontrada.", "", err)
			}
			logger.Error("Failed to load journey document", "error", err)
			return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "Não foi possível carregar a jornada.", "", model.ErrInternalServer)
		}

		if err := fn(journey); err != nil {
			return nil, err
		}

		err = s.journeyRepo.UpdateStudyData(ctx, s.db, journey)
		if err == nil {
			return journey, nil
		}
		if !errors.Is(err, model.ErrConflict) {
			logger.Error("Failed to write journey document", "error", err)
			return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "Não foi possível salvar a jornada.", "", model.ErrInternalServer)
		}
		logger.Warn("Journey document changed concurrently, retrying", "attempt", attempt+1)
	}

	return nil, model.NewAppError("CONFLICT", "A jornada foi alterada por outra sessão. Tente novamente.", "", model.ErrConflict)
}
