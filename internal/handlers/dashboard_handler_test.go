// internal/handlers/dashboard_handler_test.go
package handlers_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"aprovapp/internal/handlers"
	"aprovapp/internal/middleware"
	"aprovapp/internal/model"
	"aprovapp/internal/scheduler"
	"aprovapp/internal/service"
	"aprovapp/internal/service/mocks"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func setupDashboardRouter(mockService *mocks.DashboardService) *chi.Mux {
	h := handlers.NewDashboardHandler(mockService)
	r := chi.NewRouter()
	r.Route("/api/v1/journeys/{journey_id}", func(r chi.Router) {
		r.Use(middleware.DevUserContextMiddleware)
		r.Get("/dashboard", h.GetDashboard)
	})
	return r
}

func TestDashboardHandler_GetDashboard(t *testing.T) {
	userID := uuid.New()
	journeyID := uuid.New()

	t.Run("200 with the aggregated figures", func(t *testing.T) {
		mockService := mocks.NewDashboardService(t)
		mockService.On("GetDashboard", mock.Anything, userID, journeyID).
			Return(&service.DashboardResponse{
				OverallProgress: scheduler.Progress{Completed: 1, Total: 2, Percent: 50},
				Disciplines: []service.DisciplineProgressItem{
					{DisciplineID: "disc-1", Name: "Matemática", Progress: scheduler.Progress{Completed: 1, Total: 2, Percent: 50}},
				},
				StudyHours:       2,
				TotalQuestions:   15,
				OverallAccuracy:  80,
				PendingRevisions: 1,
			}, nil).Once()

		router := setupDashboardRouter(mockService)
		rec := doJSONRequest(t, router, http.MethodGet, fmt.Sprintf("/api/v1/journeys/%s/dashboard", journeyID), userID, nil)

		require.Equal(t, http.StatusOK, rec.Code)
		var dashboard service.DashboardResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &dashboard))
		assert.InDelta(t, 50.0, dashboard.OverallProgress.Percent, 1e-9)
		assert.Equal(t, 15, dashboard.TotalQuestions)
		assert.Equal(t, 1, dashboard.PendingRevisions)
	})

	t.Run("404 for an unknown journey", func(t *testing.T) {
		mockService := mocks.NewDashboardService(t)
		mockService.On("GetDashboard", mock.Anything, userID, journeyID).
			Return(nil, model.NewAppError("NOT_FOUND", "Jornada não encontrada.", "", model.ErrNotFound)).Once()

		router := setupDashboardRouter(mockService)
		rec := doJSONRequest(t, router, http.MethodGet, fmt.Sprintf("/api/v1/journeys/%s/dashboard", journeyID), userID, nil)

		require.Equal(t, http.StatusNotFound, rec.Code)
	})
}
