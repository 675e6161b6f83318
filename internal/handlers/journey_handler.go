// internal/handlers/journey_handler.go
package handlers

import (
	"net/http"

	"aprovapp/internal/middleware"
	"aprovapp/internal/model"
	"aprovapp/internal/service"
	"aprovapp/internal/webutil"
)

type JourneyHandler struct {
	service service.JourneyService
}

func NewJourneyHandler(s service.JourneyService) *JourneyHandler {
	return &JourneyHandler{service: s}
}

func (h *JourneyHandler) CreateJourney(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context())

	userID, err := middleware.GetUserIDFromContext(r.Context())
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	var req model.CreateJourneyRequest
	if err := webutil.DecodeAndValidate(r, &req); err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	journey, err := h.service.CreateJourney(r.Context(), userID, &req)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	webutil.RespondWithJSON(w, http.StatusCreated, journey)
}

func (h *JourneyHandler) ListJourneys(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context())

	userID, err := middleware.GetUserIDFromContext(r.Context())
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	journeys, err := h.service.ListJourneys(r.Context(), userID)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	if journeys == nil {
		journeys = []*model.Journey{}
	}
	webutil.RespondWithJSON(w, http.StatusOK, journeys)
}

func (h *JourneyHandler) GetJourney(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context())

	userID, err := middleware.GetUserIDFromContext(r.Context())
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	journeyID, err := journeyIDFromRequest(r)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	journey, err := h.service.GetJourney(r.Context(), userID, journeyID)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	webutil.RespondWithJSON(w, http.StatusOK, journey)
}
