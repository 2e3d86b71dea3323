package middleware

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"gigdesk/internal/gigapi"
	"gigdesk/internal/pkg/jwt"
	"gigdesk/internal/pkg/response"
	"gigdesk/internal/session"
)

// CookieName is the dashboard session cookie.
const CookieName = "gigdesk_session"

// Context keys populated by the guard for downstream handlers.
const (
	CtxAPIToken  = "api_token"
	CtxSessionID = "session_id"
	CtxOrganizer = "organizer"
)

// SessionStore is the slice of the session store the guard needs.
type SessionStore interface {
	Get(ctx context.Context, id string) (*session.Session, error)
	Touch(ctx context.Context, id string) error
	Delete(ctx context.Context, id string) error
}

// ProfileProbe validates a bearer token against the platform by fetching the
// organizer profile with it.
type ProfileProbe func(ctx context.Context, token string) (gigapi.Profile, error)

// SessionGuard gates protected routes. A missing or malformed cookie is
// rejected without touching the network; a present session is validated by a
// profile probe, and any probe failure revokes the session. Expired tokens
// and transient upstream errors are deliberately not distinguished: both
// mean "must re-authenticate".
func SessionGuard(jwtSvc *jwt.Service, store SessionStore, probe ProfileProbe, cookieSecure bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		raw, err := c.Cookie(CookieName)
		if err != nil || raw == "" {
			response.AbortError(c, http.StatusUnauthorized, "UNAUTHORIZED", "Authentication required")
			return
		}

		claims, err := jwtSvc.ValidateToken(raw)
		if err != nil {
			clearSessionCookie(c, cookieSecure)
			response.AbortError(c, http.StatusUnauthorized, "UNAUTHORIZED", "Invalid session")
			return
		}

		sess, err := store.Get(c.Request.Context(), claims.SessionID)
		if err != nil {
			clearSessionCookie(c, cookieSecure)
			response.AbortError(c, http.StatusUnauthorized, "UNAUTHORIZED", "Invalid session")
			return
		}

		profile, err := probe(c.Request.Context(), sess.Token)
		if err != nil {
			_ = store.Delete(c.Request.Context(), sess.ID)
			clearSessionCookie(c, cookieSecure)
			response.AbortError(c, http.StatusUnauthorized, "SESSION_EXPIRED", "Session is no longer valid")
			return
		}

		_ = store.Touch(c.Request.Context(), sess.ID)

		c.Set(CtxAPIToken, sess.Token)
		c.Set(CtxSessionID, sess.ID)
		c.Set(CtxOrganizer, profile)

		c.Next()
	}
}

// SetSessionCookie installs the signed session cookie after sign-in/sign-up.
func SetSessionCookie(c *gin.Context, signed string, maxAge int, secure bool) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(CookieName, signed, maxAge, "/", "", secure, true)
}

func clearSessionCookie(c *gin.Context, secure bool) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(CookieName, "", -1, "/", "", secure, true)
}

// ClearSessionCookie is the exported form used by the sign-out handler.
func ClearSessionCookie(c *gin.Context, secure bool) {
	clearSessionCookie(c, secure)
}
