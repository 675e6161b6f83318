// internal/handlers/law_handler.go
package handlers

import (
	"net/http"

	"aprovapp/internal/middleware"
	"aprovapp/internal/model"
	"aprovapp/internal/service"
	"aprovapp/internal/webutil"

	"github.com/go-chi/chi/v5"
)

type LawHandler struct {
	service service.LawService
}

func NewLawHandler(s service.LawService) *LawHandler {
	return &LawHandler{service: s}
}

func (h *LawHandler) AddLaw(w http.ResponseWriter, r *http.Request) {
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

	var req model.AddLawRequest
	if err := webutil.DecodeAndValidate(r, &req); err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	law, err := h.service.AddLaw(r.Context(), userID, journeyID, &req)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	webutil.RespondWithJSON(w, http.StatusCreated, law)
}

func (h *LawHandler) UpdateArticle(w http.ResponseWriter, r *http.Request) {
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

	lawID := chi.URLParam(r, "law_id")
	articleID := chi.URLParam(r, "article_id")
	if lawID == "" || articleID == "" {
		webutil.HandleError(w, logger, model.NewAppError("INVALID_INPUT", "Identificador de lei ou artigo inválido.", "", model.ErrInvalidInput))
		return
	}

	var req model.UpdateArticleRequest
	if err := webutil.DecodeAndValidate(r, &req); err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	if err := h.service.SetArticleRead(r.Context(), userID, journeyID, lawID, articleID, *req.Read); err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
