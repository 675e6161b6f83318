// internal/service/revision_service.go
package service

import (
	"context"
	"errors"
	"time"

	"aprovapp/internal/config"
	"aprovapp/internal/middleware"
	"aprovapp/internal/model"
	"aprovapp/internal/repository"
	"aprovapp/internal/scheduler"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type RevisionService interface {
	ListPending(ctx context.Context, userID, journeyID uuid.UUID) ([]model.Revision, error)
	ListUpcoming(ctx context.Context, userID, journeyID uuid.UUID) ([]model.Revision, error)
	CompleteRevision(ctx context.Context, userID, journeyID uuid.UUID, revisionID string) error
}

type revisionService struct {
	documentStore
	cfg *config.Config
	now func() time.Time
}

// errNoChange signals that CompleteRevision found nothing to update, so the
// document write is skipped.
var errNoChange = errors.New("revision already completed or not found")

func NewRevisionService(db *gorm.DB, journeyRepo repository.JourneyRepository, cfg *config.Config) RevisionService {
	return &revisionService{
		documentStore: documentStore{db: db, journeyRepo: journeyRepo, retries: cfg.App.WriteRetries},
		cfg:           cfg,
		now:           time.Now,
	}
}

func (s *revisionService) ListPending(ctx context.Context, userID, journeyID uuid.UUID) ([]model.Revision, error) {
	journey, err := s.loadJourney(ctx, userID, journeyID)
	if err != nil {
		return nil, err
	}
	return scheduler.PendingRevisions(journey.StudyData.Revisions, s.now()), nil
}

func (s *revisionService) ListUpcoming(ctx context.Context, userID, journeyID uuid.UUID) ([]model.Revision, error) {
	journey, err := s.loadJourney(ctx, userID, journeyID)
	if err != nil {
		return nil, err
	}
	return scheduler.UpcomingRevisions(journey.StudyData.Revisions, s.now(), s.cfg.App.UpcomingLimit), nil
}

// CompleteRevision marks a revision done. Unknown or already-completed IDs
// are a silent no-op so that UI double-clicks never surface an error.
func (s *revisionService) CompleteRevision(ctx context.Context, userID, journeyID uuid.UUID, revisionID string) error {
	logger := middleware.GetLogger(ctx).With("journey_id", journeyID, "revision_id", revisionID)

	_, err := s.mutate(ctx, userID, journeyID, func(j *model.Journey) error {
		if !scheduler.CompleteRevision(&j.StudyData, revisionID) {
			return errNoChange
		}
		return nil
	})
	if errors.Is(err, errNoChange) {
		logger.Info("Revision completion was a no-op")
		return nil
	}
	if err != nil {
		return err
	}

	logger.Info("Revision completed")
	return nil
}

func (s *revisionService) loadJourney(ctx context.Context, userID, journeyID uuid.UUID) (*model.Journey, error) {
	logger := middleware.GetLogger(ctx).With("journey_id", journeyID)

	journey, err := s.journeyRepo.FindByID(ctx, s.db, userID, journeyID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return nil, model.NewAppError("NOT_FOUND", "Jornada não encontrada.", "", err)
		}
		logger.Error("Failed to load journey", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "Não foi possível carregar a jornada.", "", model.ErrInternalServer)
	}
	return journey, nil
}
