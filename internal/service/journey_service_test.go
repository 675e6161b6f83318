// internal/service/journey_service_test.go
package service

import (
	"context"
	"testing"

	"aprovapp/internal/model"
	"aprovapp/internal/repository/mocks"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func Test_journeyService_CreateJourney(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	req := &model.CreateJourneyRequest{
		Edital: model.EditalRequest{
			Name: "Concurso TRF",
			Disciplines: []model.DisciplineRequest{
				{Name: "Matemática", Topics: []string{"Juros Compostos", "Porcentagem"}},
				{Name: "Português", Topics: []string{"Crase"}},
			},
		},
	}

	t.Run("generates ids and seeds every topic as pending", func(t *testing.T) {
		var created *model.Journey
		mockRepo := mocks.NewJourneyRepository(t)
		mockRepo.On("Create", mock.Anything, mock.Anything, mock.AnythingOfType("*model.Journey")).
			Run(func(args mock.Arguments) {
				created = args.Get(2).(*model.Journey)
			}).
			Return(nil).Once()

		svc := NewJourneyService(nil, mockRepo, testConfig())
		journey, err := svc.CreateJourney(ctx, userID, req)
		require.NoError(t, err)
		require.Same(t, created, journey)

		assert.Equal(t, userID, journey.UserID)
		assert.NotEqual(t, uuid.Nil, journey.JourneyID)
		assert.Equal(t, int64(1), journey.Version)
		assert.Equal(t, "Concurso TRF", journey.Edital.Name)
		require.Len(t, journey.Edital.Disciplines, 2)
		assert.Equal(t, 3, journey.Edital.TopicCount())

		seen := map[string]bool{}
		for _, d := range journey.Edital.Disciplines {
			assert.NotEmpty(t, d.ID)
			for _, topic := range d.Topics {
				assert.NotEmpty(t, topic.ID)
				assert.False(t, seen[topic.ID], "topic ids must be unique")
				seen[topic.ID] = true

				status, ok := journey.StudyData.TopicStatus[topic.ID]
				require.True(t, ok, "every topic gets an initial status")
				assert.True(t, status.Pending)
			}
		}
		assert.Empty(t, journey.StudyData.Sessions)
		assert.Empty(t, journey.StudyData.Revisions)
	})

	t.Run("conflict from the repository", func(t *testing.T) {
		mockRepo := mocks.NewJourneyRepository(t)
		mockRepo.On("Create", mock.Anything, mock.Anything, mock.AnythingOfType("*model.Journey")).
			Return(model.ErrConflict).Once()

		svc := NewJourneyService(nil, mockRepo, testConfig())
		_, err := svc.CreateJourney(ctx, userID, req)

		var appErr *model.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, "CONFLICT", appErr.Code)
	})
}

func Test_journeyService_GetJourney(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	t.Run("found", func(t *testing.T) {
		journey := testJourney(userID)
		mockRepo := mocks.NewJourneyRepository(t)
		mockRepo.On("FindByID", mock.Anything, mock.Anything, userID, journey.JourneyID).Return(journey, nil).Once()

		svc := NewJourneyService(nil, mockRepo, testConfig())
		found, err := svc.GetJourney(ctx, userID, journey.JourneyID)
		require.NoError(t, err)
		assert.Same(t, journey, found)
	})

	t.Run("not found", func(t *testing.T) {
		journeyID := uuid.New()
		mockRepo := mocks.NewJourneyRepository(t)
		mockRepo.On("FindByID", mock.Anything, mock.Anything, userID, journeyID).Return(nil, model.ErrNotFound).Once()

		svc := NewJourneyService(nil, mockRepo, testConfig())
		_, err := svc.GetJourney(ctx, userID, journeyID)

		var appErr *model.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, "NOT_FOUND", appErr.Code)
	})
}

func Test_journeyService_ListJourneys(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	journeys := []*model.Journey{testJourney(userID), testJourney(userID)}
	mockRepo := mocks.NewJourneyRepository(t)
	mockRepo.On("FindByUser", mock.Anything, mock.Anything, userID).Return(journeys, nil).Once()

	svc := NewJourneyService(nil, mockRepo, testConfig())
	found, err := svc.ListJourneys(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, journeys, found)
}
