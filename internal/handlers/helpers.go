// internal/handlers/helpers.go
package handlers

import (
	"net/http"

	"aprovapp/internal/model"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// journeyIDFromRequest parses the journey_id URL parameter.
func journeyIDFromRequest(r *http.Request) (uuid.UUID, error) {
	journeyID, err := uuid.Parse(chi.URLParam(r, "journey_id"))
	if err != nil {
		return uuid.Nil, model.NewAppError("INVALID_JOURNEY_ID", "Identificador de jornada inválido.", "journey_id", model.ErrInvalidInput)
	}
	return journeyID, nil
}
