// internal/handlers/revision_handler_test.go
package handlers_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"
	"time"

	"aprovapp/internal/handlers"
	"aprovapp/internal/middleware"
	"aprovapp/internal/model"
	"aprovapp/internal/service/mocks"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func setupRevisionRouter(mockService *mocks.RevisionService) *chi.Mux {
	h := handlers.NewRevisionHandler(mockService)
	r := chi.NewRouter()
	r.Route("/api/v1/journeys/{journey_id}/revisions", func(r chi.Router) {
		r.Use(middleware.DevUserContextMiddleware)
		r.Get("/pending", h.ListPending)
		r.Get("/upcoming", h.ListUpcoming)
		r.Put("/{revision_id}/complete", h.CompleteRevision)
	})
	return r
}

func TestRevisionHandler_ListPending(t *testing.T) {
	userID := uuid.New()
	journeyID := uuid.New()
	now := time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)

	t.Run("200 with the pending list", func(t *testing.T) {
		mockService := mocks.NewRevisionService(t)
		mockService.On("ListPending", mock.Anything, userID, journeyID).
			Return([]model.Revision{
				{ID: "r1", TopicID: "t1", DueDate: now.AddDate(0, 0, -2), Label: "24h"},
				{ID: "r2", TopicID: "t1", DueDate: now.AddDate(0, 0, -1), Label: "7 dias"},
			}, nil).Once()

		router := setupRevisionRouter(mockService)
		rec := doJSONRequest(t, router, http.MethodGet, fmt.Sprintf("/api/v1/journeys/%s/revisions/pending", journeyID), userID, nil)

		require.Equal(t, http.StatusOK, rec.Code)
		var revisions []model.Revision
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &revisions))
		require.Len(t, revisions, 2)
		assert.Equal(t, "r1", revisions[0].ID)
	})

	t.Run("200 with an empty JSON array, never null", func(t *testing.T) {
		mockService := mocks.NewRevisionService(t)
		mockService.On("ListPending", mock.Anything, userID, journeyID).Return(nil, nil).Once()

		router := setupRevisionRouter(mockService)
		rec := doJSONRequest(t, router, http.MethodGet, fmt.Sprintf("/api/v1/journeys/%s/revisions/pending", journeyID), userID, nil)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `[]`, rec.Body.String())
	})

	t.Run("404 when the journey does not exist", func(t *testing.T) {
		mockService := mocks.NewRevisionService(t)
		mockService.On("ListPending", mock.Anything, userID, journeyID).
			Return(nil, model.NewAppError("NOT_FOUND", "Jornada não encontrada.", "", model.ErrNotFound)).Once()

		router := setupRevisionRouter(mockService)
		rec := doJSONRequest(t, router, http.MethodGet, fmt.Sprintf("/api/v1/journeys/%s/revisions/pending", journeyID), userID, nil)

		require.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestRevisionHandler_ListUpcoming(t *testing.T) {
	userID := uuid.New()
	journeyID := uuid.New()

	mockService := mocks.NewRevisionService(t)
	mockService.On("ListUpcoming", mock.Anything, userID, journeyID).
		Return([]model.Revision{{ID: "r3", TopicID: "t1", Label: "14 dias"}}, nil).Once()

	router := setupRevisionRouter(mockService)
	rec := doJSONRequest(t, router, http.MethodGet, fmt.Sprintf("/api/v1/journeys/%s/revisions/upcoming", journeyID), userID, nil)

	require.Equal(t, http.StatusOK, rec.Code)
	var revisions []model.Revision
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &revisions))
	require.Len(t, revisions, 1)
	assert.Equal(t, "r3", revisions[0].ID)
}

func TestRevisionHandler_CompleteRevision(t *testing.T) {
	userID := uuid.New()
	journeyID := uuid.New()

	t.Run("204 on success and on repeat completion", func(t *testing.T) {
		mockService := mocks.NewRevisionService(t)
		mockService.On("CompleteRevision", mock.Anything, userID, journeyID, "rev-t1-1d-1").Return(nil).Twice()

		router := setupRevisionRouter(mockService)
		target := fmt.Sprintf("/api/v1/journeys/%s/revisions/rev-t1-1d-1/complete", journeyID)

		rec := doJSONRequest(t, router, http.MethodPut, target, userID, nil)
		require.Equal(t, http.StatusNoContent, rec.Code)

		rec = doJSONRequest(t, router, http.MethodPut, target, userID, nil)
		require.Equal(t, http.StatusNoContent, rec.Code)
	})

	t.Run("409 when the document write keeps conflicting", func(t *testing.T) {
		mockService := mocks.NewRevisionService(t)
		mockService.On("CompleteRevision", mock.Anything, userID, journeyID, "rev-t1-1d-1").
			Return(model.NewAppError("CONFLICT", "A jornada foi alterada por outra sessão. Tente novamente.", "", model.ErrConflict)).Once()

		router := setupRevisionRouter(mockService)
		rec := doJSONRequest(t, router, http.MethodPut, fmt.Sprintf("/api/v1/journeys/%s/revisions/rev-t1-1d-1/complete", journeyID), userID, nil)

		require.Equal(t, http.StatusConflict, rec.Code)
		var resp model.APIErrorResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "CONFLICT", resp.Error.Code)
	})
}
