package session

import (
	"context"
	"net/http"
	"strings"

	"github.com/gofrs/uuid"
)

// CookieName is the browser cookie carrying the session ID.
const CookieName = "session"

// CookieOptions control the session cookie.
type CookieOptions struct {
	Secure bool
	MaxAge int
}

type contextKey struct{}

// IDFromContext returns the session ID set by Middleware.
func IDFromContext(ctx context.Context) string {
	sessionID, _ := ctx.Value(contextKey{}).(string)
	return sessionID
}

// WithID attaches a session ID to ctx.
func WithID(ctx context.Context, sessionID string) context.Context {
	return context.WithValue(ctx, contextKey{}, sessionID)
}

// Middleware makes sure every request carries a session ID, issuing a new
// cookie when the browser has none or an unusable one.
func (provider *Provider) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(responseWriter http.ResponseWriter, request *http.Request) {
		sessionID := sessionIDFromCookie(request)
		if sessionID == "" {
			var err error
			if sessionID, err = provider.Renew(responseWriter); err != nil {
				provider.logger.Error("session_id_failed", "error", err)
				http.Error(responseWriter, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
				return
			}
		}

		next.ServeHTTP(responseWriter, request.WithContext(WithID(request.Context(), sessionID)))
	})
}

// Renew sets a cookie for a brand-new session and returns its ID. The old
// session, if any, is left to expire.
func (provider *Provider) Renew(responseWriter http.ResponseWriter) (string, error) {
	newID, err := uuid.NewV4()
	if err != nil {
		return "", err
	}
	http.SetCookie(responseWriter, provider.newCookie(newID.String()))
	return newID.String(), nil
}

func (provider *Provider) newCookie(value string) *http.Cookie {
	return &http.Cookie{
		Name:     CookieName,
		Value:    value,
		Path:     "/",
		MaxAge:   provider.cookie.MaxAge,
		HttpOnly: true,
		Secure:   provider.cookie.Secure,
		SameSite: http.SameSiteLaxMode,
	}
}

func sessionIDFromCookie(request *http.Request) string {
	cookie, err := request.Cookie(CookieName)
	if err == http.ErrNoCookie {
		return ""
	}
	parsed, err := uuid.FromString(strings.TrimSpace(cookie.Value))
	if err != nil || parsed == uuid.Nil {
		return ""
	}
	return parsed.String()
}
