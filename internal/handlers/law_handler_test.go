// internal/handlers/law_handler_test.go
package handlers_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

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

func setupLawRouter(mockService *mocks.LawService) *chi.Mux {
	h := handlers.NewLawHandler(mockService)
	r := chi.NewRouter()
	r.Route("/api/v1/journeys/{journey_id}/laws", func(r chi.Router) {
		r.Use(middleware.DevUserContextMiddleware)
		r.Post("/", h.AddLaw)
		r.Put("/{law_id}/articles/{article_id}", h.UpdateArticle)
	})
	return r
}

func TestLawHandler_AddLaw(t *testing.T) {
	userID := uuid.New()
	journeyID := uuid.New()

	t.Run("201 with the created law", func(t *testing.T) {
		mockService := mocks.NewLawService(t)
		mockService.On("AddLaw", mock.Anything, userID, journeyID, mock.AnythingOfType("*model.AddLawRequest")).
			Return(&model.Law{
				ID:   "law-1",
				Name: "Lei 8.112/90",
				Articles: []model.Article{
					{ID: "art-law-1-1", Number: 1},
					{ID: "art-law-1-2", Number: 2},
				},
			}, nil).Once()

		router := setupLawRouter(mockService)
		rec := doJSONRequest(t, router, http.MethodPost, fmt.Sprintf("/api/v1/journeys/%s/laws", journeyID), userID, map[string]any{
			"name":           "Lei 8.112/90",
			"total_articles": 2,
		})

		require.Equal(t, http.StatusCreated, rec.Code)
		var law model.Law
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &law))
		assert.Len(t, law.Articles, 2)
	})

	t.Run("400 for a non-positive article count", func(t *testing.T) {
		mockService := mocks.NewLawService(t)

		router := setupLawRouter(mockService)
		rec := doJSONRequest(t, router, http.MethodPost, fmt.Sprintf("/api/v1/journeys/%s/laws", journeyID), userID, map[string]any{
			"name":           "Lei 8.112/90",
			"total_articles": 0,
		})

		require.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestLawHandler_UpdateArticle(t *testing.T) {
	userID := uuid.New()
	journeyID := uuid.New()

	t.Run("204 on success", func(t *testing.T) {
		mockService := mocks.NewLawService(t)
		mockService.On("SetArticleRead", mock.Anything, userID, journeyID, "law-1", "art-law-1-1", true).Return(nil).Once()

		router := setupLawRouter(mockService)
		rec := doJSONRequest(t, router, http.MethodPut, fmt.Sprintf("/api/v1/journeys/%s/laws/law-1/articles/art-law-1-1", journeyID), userID, map[string]any{
			"read": true,
		})

		require.Equal(t, http.StatusNoContent, rec.Code)
	})

	t.Run("404 for an unknown article", func(t *testing.T) {
		mockService := mocks.NewLawService(t)
		mockService.On("SetArticleRead", mock.Anything, userID, journeyID, "law-1", "art-missing", false).
			Return(model.NewAppError("NOT_FOUND", "Lei ou artigo não encontrado.", "", model.ErrNotFound)).Once()

		router := setupLawRouter(mockService)
		rec := doJSONRequest(t, router, http.MethodPut, fmt.Sprintf("/api/v1/journeys/%s/laws/law-1/articles/art-missing", journeyID), userID, map[string]any{
			"read": false,
		})

		require.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("400 when the read flag is missing", func(t *testing.T) {
		mockService := mocks.NewLawService(t)

		router := setupLawRouter(mockService)
		rec := doJSONRequest(t, router, http.MethodPut, fmt.Sprintf("/api/v1/journeys/%s/laws/law-1/articles/art-law-1-1", journeyID), userID, map[string]any{})

		require.Equal(t, http.StatusBadRequest, rec.Code)
	})
}
