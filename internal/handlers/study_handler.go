// internal/handlers/study_handler.go
package handlers

import (
	"net/http"

	"aprovapp/internal/middleware"
	"aprovapp/internal/model"
	"aprovapp/internal/service"
	"aprovapp/internal/webutil"
)

type StudyHandler struct {
	service service.StudyService
}

func NewStudyHandler(s service.StudyService) *StudyHandler {
	return &StudyHandler{service: s}
}

// RegisterStudy handles the manual "mark topic as studied" action.
func (h *StudyHandler) RegisterStudy(w http.ResponseWriter, r *http.Request) {
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

	var req model.RegisterStudyRequest
	if err := webutil.DecodeAndValidate(r, &req); err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	resp, err := h.service.RegisterStudy(r.Context(), userID, journeyID, &req)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	webutil.RespondWithJSON(w, http.StatusCreated, resp)
}

// RegisterSession handles the stopwatch-driven session log.
func (h *StudyHandler) RegisterSession(w http.ResponseWriter, r *http.Request) {
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

	var req model.RegisterSessionRequest
	if err := webutil.DecodeAndValidate(r, &req); err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	if !req.Type.Valid() {
		webutil.HandleError(w, logger, model.NewAppError("INVALID_STUDY_TYPE", "Tipo de estudo desconhecido.", "type", model.ErrInvalidInput))
		return
	}

	resp, err := h.service.RegisterSession(r.Context(), userID, journeyID, &req)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	webutil.RespondWithJSON(w, http.StatusCreated, resp)
}

// AddQuestionLog records a practice-question batch.
func (h *StudyHandler) AddQuestionLog(w http.ResponseWriter, r *http.Request) {
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

	var req model.QuestionLogRequest
	if err := webutil.DecodeAndValidate(r, &req); err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	log, err := h.service.AddQuestionLog(r.Context(), userID, journeyID, &req)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	webutil.RespondWithJSON(w, http.StatusCreated, log)
}
