package session

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"github.com/Foysal-Munsy/EventBuddy-Frontend/data"
)

const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

// AuthState is what a browser session says about its user. A session is
// authenticated only when it holds both a token and a readable user.
type AuthState struct {
	IsAuthenticated bool
	Role            string
	IsAdmin         bool
	IsUser          bool
	Token           string
	User            data.User
}

// Read inspects the auth keys of a session. Any failure to read them means
// "signed out".
func Read(ctx context.Context, store Store, sessionID string) AuthState {
	if sessionID == "" {
		return AuthState{}
	}
	values, err := store.Get(ctx, sessionID)
	if err != nil {
		return AuthState{}
	}
	return stateOf(values)
}

func stateOf(values map[string]string) AuthState {
	token := strings.TrimSpace(values[KeyAuthToken])
	rawUser := values[KeyUser]
	if token == "" || rawUser == "" {
		return AuthState{}
	}

	var blob any
	if err := json.Unmarshal([]byte(rawUser), &blob); err != nil {
		return AuthState{}
	}
	user, err := data.DeriveUser(blob)
	if err != nil {
		return AuthState{}
	}

	role := strings.ToLower(strings.TrimSpace(user.Role))
	return AuthState{
		IsAuthenticated: true,
		Role:            role,
		IsAdmin:         role == RoleAdmin,
		IsUser:          role == RoleUser,
		Token:           token,
		User:            user,
	}
}

// Credentials are forwarded to the booking API on behalf of a browser.
type Credentials struct {
	Token  string
	Cookie string
}

// Bearer returns the token to send as Authorization header, if any.
func (credentials Credentials) Bearer() string {
	if credentials.Token == TokenSession {
		return ""
	}
	return credentials.Token
}

// Flash is a one-shot notification shown on the next rendered page.
type Flash struct {
	Kind    string `json:"kind"`
	Title   string `json:"title"`
	Message string `json:"message"`
}

const (
	FlashSuccess = "success"
	FlashError   = "error"
	FlashInfo    = "info"
)

// Provider is the single entry point pages use to read and change auth
// state. It is safe for concurrent use.
type Provider struct {
	store  Store
	logger *slog.Logger
	cookie CookieOptions
}

func NewProvider(store Store, logger *slog.Logger, cookie CookieOptions) *Provider {
	if logger == nil {
		logger = slog.Default()
	}
	return &Provider{store: store, logger: logger, cookie: cookie}
}

// State reads the auth state of a session.
func (provider *Provider) State(ctx context.Context, sessionID string) AuthState {
	if sessionID == "" {
		return AuthState{}
	}
	values, err := provider.store.Get(ctx, sessionID)
	if err != nil {
		provider.logger.Warn("session_read_failed", "session", shortID(sessionID), "error", err)
		return AuthState{}
	}
	return stateOf(values)
}

// Credentials returns what the booking API needs to act for the session.
func (provider *Provider) Credentials(ctx context.Context, sessionID string) Credentials {
	if sessionID == "" {
		return Credentials{}
	}
	values, err := provider.store.Get(ctx, sessionID)
	if err != nil {
		provider.logger.Warn("session_read_failed", "session", shortID(sessionID), "error", err)
		return Credentials{}
	}
	return Credentials{Token: values[KeyAuthToken], Cookie: values[KeyAPICookie]}
}

// SignIn stores user and token. An empty token is stored as TokenSession.
func (provider *Provider) SignIn(ctx context.Context, sessionID string, user data.User, token, apiCookie string) error {
	rawUser, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("encode user: %w", err)
	}
	if token == "" {
		token = TokenSession
	}

	values := map[string]string{
		KeyUser:      string(rawUser),
		KeyAuthToken: token,
	}
	if apiCookie != "" {
		values[KeyAPICookie] = apiCookie
	} else if err := provider.store.Delete(ctx, sessionID, KeyAPICookie); err != nil {
		return err
	}

	if err := provider.store.Set(ctx, sessionID, values); err != nil {
		return err
	}
	provider.logger.Info("signed_in", "session", shortID(sessionID), "role", user.Role)
	return nil
}

// SignOut removes every auth key of the session.
func (provider *Provider) SignOut(ctx context.Context, sessionID string) error {
	if err := provider.store.Delete(ctx, sessionID, KeyUser, KeyAuthToken, KeyAPICookie); err != nil {
		return err
	}
	provider.logger.Info("signed_out", "session", shortID(sessionID))
	return nil
}

// Subscribe streams changes of one session; see Store.Subscribe.
func (provider *Provider) Subscribe(ctx context.Context, sessionID string) (*Subscription, error) {
	return provider.store.Subscribe(ctx, sessionID)
}

// PushFlash replaces the pending notification.
func (provider *Provider) PushFlash(ctx context.Context, sessionID string, flash Flash) {
	rawFlash, err := json.Marshal(flash)
	if err == nil {
		err = provider.store.Set(ctx, sessionID, map[string]string{KeyFlash: string(rawFlash)})
	}
	if err != nil {
		provider.logger.Warn("flash_store_failed", "session", shortID(sessionID), "error", err)
	}
}

// PopFlash returns and clears the pending notification.
func (provider *Provider) PopFlash(ctx context.Context, sessionID string) (Flash, bool) {
	if sessionID == "" {
		return Flash{}, false
	}
	values, err := provider.store.Get(ctx, sessionID)
	if err != nil || values[KeyFlash] == "" {
		return Flash{}, false
	}
	if err := provider.store.Delete(ctx, sessionID, KeyFlash); err != nil {
		provider.logger.Warn("flash_clear_failed", "session", shortID(sessionID), "error", err)
	}

	var flash Flash
	if err := json.Unmarshal([]byte(values[KeyFlash]), &flash); err != nil {
		return Flash{}, false
	}
	return flash, true
}

func shortID(sessionID string) string {
	if len(sessionID) > 8 {
		return sessionID[:8]
	}
	return sessionID
}
