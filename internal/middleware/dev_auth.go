// internal/middleware/dev_auth.go
package middleware

import (
	"context"
	"net/http"

	"aprovapp/internal/model"
	"aprovapp/internal/webutil"

	"github.com/google/uuid"
)

// DevUserContextMiddleware is the development-mode replacement for the JWT
// middleware: it takes the user id straight from the X-User-ID header with no
// token validation. Never enable it in production.
func DevUserContextMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := GetLogger(r.Context())

		userIDStr := r.Header.Get("X-User-ID")
		if userIDStr == "" {
			logger.Warn("[DEV AUTH] Failed: X-User-ID header missing")
			appErr := model.NewAppError("UNAUTHORIZED", "[DEV] O cabeçalho X-User-ID é obrigatório.", "", model.ErrForbidden)
			webutil.HandleError(w, logger, appErr)
			return
		}

		userID, err := uuid.Parse(userIDStr)
		if err != nil {
			logger.Warn("[DEV AUTH] Failed: Invalid X-User-ID format", "value", userIDStr)
			appErr := model.NewAppError("UNAUTHORIZED", "[DEV] Formato inválido do cabeçalho X-User-ID.", "", model.ErrForbidden)
			webutil.HandleError(w, logger, appErr)
			return
		}

		ctx := context.WithValue(r.Context(), model.UserIDKey, userID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
