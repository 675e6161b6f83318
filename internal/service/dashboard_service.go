// internal/service/dashboard_service.go
package service

import (
	"context"
	"errors"
	"time"

	"aprovapp/internal/middleware"
	"aprovapp/internal/model"
	"aprovapp/internal/repository"
	"aprovapp/internal/scheduler"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DashboardResponse aggregates the journey's headline statistics.
type DashboardResponse struct {
	OverallProgress  scheduler.Progress       `json:"overall_progress"`
	Disciplines      []DisciplineProgressItem `json:"disciplines"`
	StudyHours       float64                  `json:"study_hours"`
	TotalQuestions   int                      `json:"total_questions"`
	OverallAccuracy  float64                  `json:"overall_accuracy"`
	PendingRevisions int                      `json:"pending_revisions"`
}

type DisciplineProgressItem struct {
	DisciplineID string             `json:"discipline_id"`
	Name         string             `json:"name"`
	Progress     scheduler.Progress `json:"progress"`
}

type DashboardService interface {
	GetDashboard(ctx context.Context, userID, journeyID uuid.UUID) (*DashboardResponse, error)
}

type dashboardService struct {
	db          *gorm.DB
	journeyRepo repository.JourneyRepository
	now         func() time.Time
}

func NewDashboardService(db *gorm.DB, journeyRepo repository.JourneyRepository) DashboardService {
	return &dashboardService{
		db:          db,
		journeyRepo: journeyRepo,
		now:         time.Now,
	}
}

// GetDashboard is a pure read: every figure is computed on demand from the
// document, never cached or ticked by a background process.
func (s *dashboardService) GetDashboard(ctx context.Context, userID, journeyID uuid.UUID) (*DashboardResponse, error) {
	logger := middleware.GetLogger(ctx).With("journey_id", journeyID)

	journey, err := s.journeyRepo.FindByID(ctx, s.db, userID, journeyID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return nil, model.NewAppError("NOT_FOUND", "Jornada não encontrada.", "", err)
		}
		logger.Error("Failed to load journey for dashboard", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "Não foi possível carregar o dashboard.", "", model.ErrInternalServer)
	}

	data := journey.StudyData
	disciplines := make([]DisciplineProgressItem, 0, len(journey.Edital.Disciplines))
	for _, d := range journey.Edital.Disciplines {
		disciplines = append(disciplines, DisciplineProgressItem{
			DisciplineID: d.ID,
			Name:         d.Name,
			Progress:     scheduler.DisciplineProgress(d, data.TopicStatus),
		})
	}

	return &DashboardResponse{
		OverallProgress:  scheduler.OverallProgress(journey.Edital, data.TopicStatus),
		Disciplines:      disciplines,
		StudyHours:       scheduler.StudyHours(data.Sessions),
		TotalQuestions:   scheduler.TotalQuestions(data.Questions),
		OverallAccuracy:  scheduler.Accuracy(data.Questions),
		PendingRevisions: len(scheduler.PendingRevisions(data.Revisions, s.now())),
	}, nil
}
