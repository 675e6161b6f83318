// internal/service/study_service.go
package service

import (
	"context"
	"time"

	"aprovapp/internal/config"
	"aprovapp/internal/middleware"
	"aprovapp/internal/model"
	"aprovapp/internal/repository"
	"aprovapp/internal/scheduler"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type StudyService interface {
	RegisterStudy(ctx context.Context, userID, journeyID uuid.UUID, req *model.RegisterStudyRequest) (*model.StudyRegistrationResponse, error)
	RegisterSession(ctx context.Context, userID, journeyID uuid.UUID, req *model.RegisterSessionRequest) (*model.StudyRegistrationResponse, error)
	AddQuestionLog(ctx context.Context, userID, journeyID uuid.UUID, req *model.QuestionLogRequest) (*model.QuestionLog, error)
}

type studyService struct {
	documentStore
	cfg *config.Config

	// now is injectable for tests; defaults to time.Now.
	now func() time.Time
}

func NewStudyService(db *gorm.DB, journeyRepo repository.JourneyRepository, cfg *config.Config) StudyService {
	return &studyService{
		documentStore: documentStore{db: db, journeyRepo: journeyRepo, retries: cfg.App.WriteRetries},
		cfg:           cfg,
		now:           time.Now,
	}
}

// RegisterStudy is the manual registration path: the user ticks one or more
// method checkboxes on the edital view.
func (s *studyService) RegisterStudy(ctx context.Context, userID, journeyID uuid.UUID, req *model.RegisterStudyRequest) (*model.StudyRegistrationResponse, error) {
	logger := middleware.GetLogger(ctx).With("journey_id", journeyID, "topic_id", req.TopicID)

	if req.Methods.Empty() {
		return nil, model.NewAppError("VALIDATION_ERROR", "Informe pelo menos um método de estudo.", "methods", model.ErrInvalidInput)
	}

	var resp *model.StudyRegistrationResponse
	_, err := s.mutate(ctx, userID, journeyID, func(j *model.Journey) error {
		status, revisions, err := scheduler.RegisterStudy(j.Edital, &j.StudyData, req.TopicID, req.Methods, s.now())
		if err != nil {
			return wrapSchedulerError(err)
		}
		resp = &model.StudyRegistrationResponse{TopicID: req.TopicID, Status: status, Revisions: revisions}
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.Info("Study registered", "revisions_scheduled", len(resp.Revisions))
	return resp, nil
}

// RegisterSession is the stopwatch path: a timed session is appended to the
// history and then produces the same status and revision effects.
func (s *studyService) RegisterSession(ctx context.Context, userID, journeyID uuid.UUID, req *model.RegisterSessionRequest) (*model.StudyRegistrationResponse, error) {
	logger := middleware.GetLogger(ctx).With("journey_id", journeyID, "topic_id", req.TopicID)

	now := s.now()
	date := now
	if req.Date != nil {
		date = *req.Date
	}
	session := model.StudySession{
		ID:           uuid.NewString(),
		DisciplineID: req.DisciplineID,
		TopicID:      req.TopicID,
		Duration:     req.Duration,
		Date:         date,
		Type:         req.Type,
	}

	var resp *model.StudyRegistrationResponse
	_, err := s.mutate(ctx, userID, journeyID, func(j *model.Journey) error {
		status, revisions, err := scheduler.RegisterSession(j.Edital, &j.StudyData, session, now)
		if err != nil {
			return wrapSchedulerError(err)
		}
		resp = &model.StudyRegistrationResponse{TopicID: req.TopicID, Status: status, Revisions: revisions}
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.Info("Session registered", "type", session.Type, "duration_s", session.Duration)
	return resp, nil
}

// AddQuestionLog appends one practice-question batch. Invalid quantities are
// rejected before anything is written.
func (s *studyService) AddQuestionLog(ctx context.Context, userID, journeyID uuid.UUID, req *model.QuestionLogRequest) (*model.QuestionLog, error) {
	logger := middleware.GetLogger(ctx).With("journey_id", journeyID, "topic_id", req.TopicID)

	log := model.QuestionLog{
		ID:           uuid.NewString(),
		DisciplineID: req.DisciplineID,
		TopicID:      req.TopicID,
		Total:        req.Total,
		Correct:      *req.Correct,
		Date:         s.now(),
	}

	_, err := s.mutate(ctx, userID, journeyID, func(j *model.Journey) error {
		if err := scheduler.AppendQuestionLog(j.Edital, &j.StudyData, log); err != nil {
			return wrapSchedulerError(err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.Info("Question log added", "total", log.Total, "correct", log.Correct)
	return &log, nil
}

// wrapSchedulerError attaches client-facing messages to the scheduler's
// validation errors.
func wrapSchedulerError(err error) error {
	switch err {
	case model.ErrTopicNotFound:
		return model.NewAppError("TOPIC_NOT_FOUND", "O tópico informado não pertence ao edital.", "topic_id", err)
	case model.ErrInvalidQuantity:
		return model.NewAppError("INVALID_QUANTITY", "Quantidade de questões inválida: acertos não podem exceder o total.", "correct", err)
	case model.ErrInvalidInput:
		return model.NewAppError("VALIDATION_ERROR", "Dados de entrada inválidos.", "", err)
	default:
		return err
	}
}
