// internal/handlers/revision_handler.go
package handlers

import (
	"net/http"

	"aprovapp/internal/middleware"
	"aprovapp/internal/model"
	"aprovapp/internal/service"
	"aprovapp/internal/webutil"

	"github.com/go-chi/chi/v5"
)

type RevisionHandler struct {
	service service.RevisionService
}

func NewRevisionHandler(s service.RevisionService) *RevisionHandler {
	return &RevisionHandler{service: s}
}

// ListPending returns the revisions already due, soonest-overdue first.
func (h *RevisionHandler) ListPending(w http.ResponseWriter, r *http.Request) {
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

	revisions, err := h.service.ListPending(r.Context(), userID, journeyID)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	if revisions == nil {
		revisions = []model.Revision{}
	}
	webutil.RespondWithJSON(w, http.StatusOK, revisions)
}

// ListUpcoming returns the next revisions not yet due.
func (h *RevisionHandler) ListUpcoming(w http.ResponseWriter, r *http.Request) {
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

	revisions, err := h.service.ListUpcoming(r.Context(), userID, journeyID)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	if revisions == nil {
		revisions = []model.Revision{}
	}
	webutil.RespondWithJSON(w, http.StatusOK, revisions)
}

// CompleteRevision marks a revision done. The operation is idempotent: a
// second click on the same revision still answers 204.
func (h *RevisionHandler) CompleteRevision(w http.ResponseWriter, r *http.Request) {
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

	revisionID := chi.URLParam(r, "revision_id")
	if revisionID == "" {
		webutil.HandleError(w, logger, model.NewAppError("INVALID_REVISION_ID", "Identificador de revisão inválido.", "revision_id", model.ErrInvalidInput))
		return
	}

	if err := h.service.CompleteRevision(r.Context(), userID, journeyID, revisionID); err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
