package gate_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/Foysal-Munsy/EventBuddy-Frontend/data"
	"github.com/Foysal-Munsy/EventBuddy-Frontend/gate"
	"github.com/Foysal-Munsy/EventBuddy-Frontend/session"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func signedIn(role string) session.AuthState {
	return session.AuthState{
		IsAuthenticated: true,
		Role:            role,
		IsAdmin:         role == session.RoleAdmin,
		IsUser:          role == session.RoleUser,
		Token:           "abc",
	}
}

func TestEvaluate_AdminGate(t *testing.T) {
	allowed := gate.Evaluate(gate.Admin, signedIn("admin"), gate.DefaultPaths)
	assert.Equal(t, gate.Allowed, allowed.Status)

	asUser := gate.Evaluate(gate.Admin, signedIn("user"), gate.DefaultPaths)
	assert.Equal(t, gate.Denied, asUser.Status)
	assert.Equal(t, "/signin", asUser.Redirect)

	anonymous := gate.Evaluate(gate.Admin, session.AuthState{}, gate.DefaultPaths)
	assert.Equal(t, gate.Denied, anonymous.Status)
	assert.Equal(t, "/signin", anonymous.Redirect)
	assert.Equal(t, gate.MessageRedirectSignIn, anonymous.Message)
}

func TestEvaluate_UserGate(t *testing.T) {
	allowed := gate.Evaluate(gate.User, signedIn("user"), gate.DefaultPaths)
	assert.Equal(t, gate.Allowed, allowed.Status)

	asAdmin := gate.Evaluate(gate.User, signedIn("admin"), gate.DefaultPaths)
	assert.Equal(t, gate.Denied, asAdmin.Status)
	assert.Equal(t, "/admin", asAdmin.Redirect)
	assert.Equal(t, gate.MessageAdminOnUserPage, asAdmin.Message)

	otherRole := gate.Evaluate(gate.User, signedIn("organizer"), gate.DefaultPaths)
	assert.Equal(t, "/signin", otherRole.Redirect)
	assert.Equal(t, gate.MessageNeedsUserRole, otherRole.Message)

	anonymous := gate.Evaluate(gate.User, session.AuthState{}, gate.DefaultPaths)
	assert.Equal(t, "/signin", anonymous.Redirect)
}

func TestEvaluate_SignedOutGate(t *testing.T) {
	assert.Equal(t, gate.Allowed, gate.Evaluate(gate.SignedOut, session.AuthState{}, gate.DefaultPaths).Status)

	for _, role := range []string{"admin", "user", ""} {
		decision := gate.Evaluate(gate.SignedOut, signedIn(role), gate.DefaultPaths)
		assert.Equal(t, gate.Denied, decision.Status, role)
		assert.Equal(t, "/", decision.Redirect, role)
	}
}

func TestParseKind(t *testing.T) {
	for _, kind := range []gate.Kind{gate.Admin, gate.User, gate.SignedOut} {
		parsed, ok := gate.ParseKind(kind.String())
		require.True(t, ok)
		assert.Equal(t, kind, parsed)
	}
	_, ok := gate.ParseKind("root")
	assert.False(t, ok)
}

func TestMachine_Transitions(t *testing.T) {
	machine := gate.NewMachine(gate.Admin, gate.DefaultPaths)
	assert.Equal(t, gate.Checking, machine.Current().Status)
	assert.Equal(t, gate.MessageChecking, machine.Current().Message)

	decision, changed := machine.Apply(signedIn("admin"))
	assert.True(t, changed)
	assert.Equal(t, gate.Allowed, decision.Status)

	_, changed = machine.Apply(signedIn("admin"))
	assert.False(t, changed)

	decision, changed = machine.Apply(session.AuthState{})
	assert.True(t, changed)
	assert.Equal(t, gate.Denied, decision.Status)
}

func newProvider(t *testing.T) *session.Provider {
	store, err := session.OpenBolt(filepath.Join(t.TempDir(), "sessions.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return session.NewProvider(store, nil, session.CookieOptions{})
}

func TestRequire_RedirectsDeniedRequests(t *testing.T) {
	provider := newProvider(t)
	ctx := context.Background()
	require.NoError(t, provider.SignIn(ctx, "admin-sid", data.User{Email: "a@x.io", Role: "admin"}, "abc", ""))
	require.NoError(t, provider.SignIn(ctx, "user-sid", data.User{Email: "u@x.io", Role: "user"}, "abc", ""))

	guarded := gate.New(provider, gate.DefaultPaths, nil)
	handler := guarded.Require(gate.User)(http.HandlerFunc(func(responseWriter http.ResponseWriter, request *http.Request) {
		responseWriter.WriteHeader(http.StatusTeapot)
	}))

	serve := func(sessionID string) *httptest.ResponseRecorder {
		request := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
		request = request.WithContext(session.WithID(request.Context(), sessionID))
		recorder := httptest.NewRecorder()
		handler.ServeHTTP(recorder, request)
		return recorder
	}

	assert.Equal(t, http.StatusTeapot, serve("user-sid").Code)

	asAdmin := serve("admin-sid")
	assert.Equal(t, http.StatusSeeOther, asAdmin.Code)
	assert.Equal(t, "/admin", asAdmin.Header().Get("Location"))

	anonymous := serve("")
	assert.Equal(t, http.StatusSeeOther, anonymous.Code)
	assert.Equal(t, "/signin", anonymous.Header().Get("Location"))
}

func nextDecision(t *testing.T, decisions <-chan gate.Decision) gate.Decision {
	t.Helper()
	select {
	case decision, ok := <-decisions:
		require.True(t, ok, "decision stream closed")
		return decision
	case <-time.After(2 * time.Second):
		t.Fatal("no decision received")
	}
	return gate.Decision{}
}

func TestWatch_ReevaluatesOnAuthChanges(t *testing.T) {
	provider := newProvider(t)
	guarded := gate.New(provider, gate.DefaultPaths, nil)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	require.NoError(t, provider.SignIn(ctx, "sid", data.User{Email: "a@x.io", Role: "admin"}, "abc", ""))

	decisions, err := guarded.Watch(ctx, "sid", gate.Admin)
	require.NoError(t, err)
	assert.Equal(t, gate.Allowed, nextDecision(t, decisions).Status)

	provider.PushFlash(ctx, "sid", session.Flash{Title: "unrelated"})
	require.NoError(t, provider.SignOut(ctx, "sid"))

	denied := nextDecision(t, decisions)
	assert.Equal(t, gate.Denied, denied.Status)
	assert.Equal(t, "/signin", denied.Redirect)

	cancel()
	assert.Eventually(t, func() bool {
		select {
		case _, ok := <-decisions:
			return !ok
		default:
			return false
		}
	}, 2*time.Second, 10*time.Millisecond)
}
