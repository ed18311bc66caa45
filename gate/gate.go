// Package gate decides whether a browser session may open a page.
package gate

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/Foysal-Munsy/EventBuddy-Frontend/session"
)

// Kind selects the rule a page is guarded by.
type Kind int

const (
	// Admin pages need a signed-in admin.
	Admin Kind = iota
	// User pages need a signed-in user; admins are sent to the admin area.
	User
	// SignedOut pages (sign-in, sign-up) are only for anonymous visitors.
	SignedOut
)

func (kind Kind) String() string {
	switch kind {
	case Admin:
		return "admin"
	case User:
		return "user"
	case SignedOut:
		return "signedout"
	}
	return fmt.Sprintf("Kind(%d)", int(kind))
}

// ParseKind is the inverse of Kind.String.
func ParseKind(value string) (Kind, bool) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "admin":
		return Admin, true
	case "user":
		return User, true
	case "signedout":
		return SignedOut, true
	}
	return 0, false
}

type Status int

const (
	Checking Status = iota
	Allowed
	Denied
)

func (status Status) String() string {
	switch status {
	case Checking:
		return "checking"
	case Allowed:
		return "allowed"
	case Denied:
		return "denied"
	}
	return fmt.Sprintf("Status(%d)", int(status))
}

// Paths are the redirect targets of denied decisions.
type Paths struct {
	SignIn string
	Admin  string
	Home   string
}

var DefaultPaths = Paths{SignIn: "/signin", Admin: "/admin", Home: "/"}

// Decision is the outcome of evaluating a gate.
type Decision struct {
	Kind     Kind   `json:"-"`
	Status   Status `json:"-"`
	Redirect string `json:"redirect,omitempty"`
	Message  string `json:"message,omitempty"`
}

const (
	MessageChecking        = "Validating access..."
	MessageRedirectSignIn  = "Redirecting to sign in..."
	MessageAdminOnUserPage = "Admins cannot open the user dashboard."
	MessageNeedsUserRole   = "User dashboard requires a user account."
	MessageAlreadySignedIn = "Already signed in."
)

// Evaluate applies the rule of kind to state. It never returns Checking.
func Evaluate(kind Kind, state session.AuthState, paths Paths) Decision {
	decision := Decision{Kind: kind, Status: Denied}
	switch kind {
	case Admin:
		if state.IsAuthenticated && state.IsAdmin {
			decision.Status = Allowed
			return decision
		}
		decision.Redirect, decision.Message = paths.SignIn, MessageRedirectSignIn

	case User:
		switch {
		case state.IsAuthenticated && state.IsUser:
			decision.Status = Allowed
		case !state.IsAuthenticated:
			decision.Redirect, decision.Message = paths.SignIn, MessageRedirectSignIn
		case state.IsAdmin:
			decision.Redirect, decision.Message = paths.Admin, MessageAdminOnUserPage
		default:
			decision.Redirect, decision.Message = paths.SignIn, MessageNeedsUserRole
		}

	case SignedOut:
		if !state.IsAuthenticated {
			decision.Status = Allowed
			return decision
		}
		decision.Redirect, decision.Message = paths.Home, MessageAlreadySignedIn
	}
	return decision
}

// StateSource is the part of session.Provider gates depend on.
type StateSource interface {
	State(ctx context.Context, sessionID string) session.AuthState
	Subscribe(ctx context.Context, sessionID string) (*session.Subscription, error)
}

// Gate evaluates gates against live session state.
type Gate struct {
	source StateSource
	paths  Paths
	logger *slog.Logger
}

func New(source StateSource, paths Paths, logger *slog.Logger) *Gate {
	if logger == nil {
		logger = slog.Default()
	}
	return &Gate{source: source, paths: paths, logger: logger}
}

// Check evaluates kind for one session.
func (gate *Gate) Check(ctx context.Context, sessionID string, kind Kind) Decision {
	return Evaluate(kind, gate.source.State(ctx, sessionID), gate.paths)
}

// Require is middleware redirecting denied requests. The session ID must
// already be in the request context.
func (gate *Gate) Require(kind Kind) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(responseWriter http.ResponseWriter, request *http.Request) {
			decision := gate.Check(request.Context(), session.IDFromContext(request.Context()), kind)
			if decision.Status != Allowed {
				gate.logger.Info("gate_denied",
					"gate", kind.String(),
					"path", request.URL.Path,
					"redirect", decision.Redirect,
				)
				http.Redirect(responseWriter, request, decision.Redirect, http.StatusSeeOther)
				return
			}
			next.ServeHTTP(responseWriter, request)
		})
	}
}
