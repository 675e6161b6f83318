// internal/handlers/dashboard_handler.go
package handlers

import (
	"net/http"

	"aprovapp/internal/middleware"
	"aprovapp/internal/service"
	"aprovapp/internal/webutil"
)

type DashboardHandler struct {
	service service.DashboardService
}

func NewDashboardHandler(s service.DashboardService) *DashboardHandler {
	return &DashboardHandler{service: s}
}

func (h *DashboardHandler) GetDashboard(w http.ResponseWriter, r *http.Request) {
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

	dashboard, err := h.service.GetDashboard(r.Context(), userID, journeyID)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	webutil.RespondWithJSON(w, http.StatusOK, dashboard)
}
