// internal/service/journey_service.go
package service

import (
	"context"
	"errors"

	"aprovapp/internal/config"
	"aprovapp/internal/middleware"
	"aprovapp/internal/model"
	"aprovapp/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type JourneyService interface {
	CreateJourney(ctx context.Context, userID uuid.UUID, req *model.CreateJourneyRequest) (*model.Journey, error)
	ListJourneys(ctx context.Context, userID uuid.UUID) ([]*model.Journey, error)
	GetJourney(ctx context.Context, userID, journeyID uuid.UUID) (*model.Journey, error)
}

type journeyService struct {
	db          *gorm.DB
	journeyRepo repository.JourneyRepository
	cfg         *config.Config
}

func NewJourneyService(db *gorm.DB, journeyRepo repository.JourneyRepository, cfg *config.Config) JourneyService {
	return &journeyService{
		db:          db,
		journeyRepo: journeyRepo,
		cfg:         cfg,
	}
}

// CreateJourney builds the edital with server-generated IDs and the initial
// study-data document: every topic pending, no sessions, no revisions.
func (s *journeyService) CreateJourney(ctx context.Context, userID uuid.UUID, req *model.CreateJourneyRequest) (*model.Journey, error) {
	logger := middleware.GetLogger(ctx).With("user_id", userID)

	edital := model.Edital{
		ID:   uuid.NewString(),
		Name: req.Edital.Name,
	}
	for _, d := range req.Edital.Disciplines {
		discipline := model.Discipline{
			ID:   uuid.NewString(),
			Name: d.Name,
		}
		for _, topicName := range d.Topics {
			discipline.Topics = append(discipline.Topics, model.Topic{
				ID:   uuid.NewString(),
				Name: topicName,
			})
		}
		edital.Disciplines = append(edital.Disciplines, discipline)
	}

	journey := &model.Journey{
		JourneyID: uuid.New(),
		UserID:    userID,
		Edital:    edital,
		StudyData: model.NewStudyData(edital),
		Version:   1,
	}

	if err := s.journeyRepo.Create(ctx, s.db, journey); err != nil {
		if errors.Is(err, model.ErrConflict) {
			return nil, model.NewAppError("CONFLICT", "Já existe uma jornada com esses dados.", "", err)
		}
		logger.Error("Failed to create journey", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "Não foi possível criar a jornada.", "", model.ErrInternalServer)
	}

	logger.Info("Journey created", "journey_id", journey.JourneyID, "topics", edital.TopicCount())
	return journey, nil
}

func (s *journeyService) ListJourneys(ctx context.Context, userID uuid.UUID) ([]*model.Journey, error) {
	logger := middleware.GetLogger(ctx).With("user_id", userID)

	journeys, err := s.journeyRepo.FindByUser(ctx, s.db, userID)
	if err != nil {
		logger.Error("Failed to list journeys", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "Não foi possível listar as jornadas.", "", model.ErrInternalServer)
	}
	return journeys, nil
}

func (s *journeyService) GetJourney(ctx context.Context, userID, journeyID uuid.UUID) (*model.Journey, error) {
	logger := middleware.GetLogger(ctx).With("user_id", userID, "journey_id", journeyID)

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
