package middlewares

import (
	"context"
	"mado-service/internal/pkg/constvars"
	"net/http"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// SessionCookie makes sure every request carries a drafts session id, issuing
// a new one when the browser has none and refreshing the cookie's expiry.
func (m *Middlewares) SessionCookie(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sessionID := ""
		if cookie, err := r.Cookie(constvars.SessionCookieName); err == nil {
			if _, err := uuid.Parse(cookie.Value); err == nil {
				sessionID = cookie.Value
			}
		}

		if sessionID == "" {
			sessionID = uuid.NewString()
			m.Log.Info("New drafts session issued",
				zap.String(constvars.LoggingSessionIDKey, sessionID),
				zap.String(constvars.LoggingRemoteAddrKey, r.RemoteAddr),
			)
		}

		// Reissued on every request so the cookie expires with the same idle
		// window the registry uses, not a fixed time after the first visit.
		http.SetCookie(w, &http.Cookie{
			Name:     constvars.SessionCookieName,
			Value:    sessionID,
			Path:     "/",
			HttpOnly: true,
			SameSite: http.SameSiteLaxMode,
			Secure:   m.InternalConfig.App.Env == "production",
			MaxAge:   int((time.Duration(m.InternalConfig.App.SessionIdleTimeoutInMinutes) * time.Minute).Seconds()),
		})

		ctx := context.WithValue(r.Context(), constvars.CONTEXT_SESSION_ID_KEY, sessionID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
