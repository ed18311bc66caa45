package api

import (
	"context"
	"net/http"
	"strings"

	"github.com/Foysal-Munsy/EventBuddy-Frontend/data"
)

// Session is the outcome of a successful sign-in or sign-up.
type Session struct {
	User    data.User
	HasUser bool
	// Token is empty when the service authenticates by cookie only.
	Token string
	// Cookie holds the cookies the service set, as a Cookie header value.
	Cookie string
}

type credentialsBody struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type registerBody struct {
	FullName string `json:"fullName"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login signs in with email and password.
func (client *Client) Login(ctx context.Context, email, password string) (Session, error) {
	result, err := client.do(ctx, "login", http.MethodPost, "/auth/login", Auth{}, credentialsBody{Email: email, Password: password})
	if err != nil {
		return Session{}, err
	}
	if !result.ok() {
		return Session{}, result.failure("Invalid credentials", "detail", "message")
	}
	return sessionOf(result), nil
}

// Register creates an account. The service may or may not sign the new
// user in; callers fall back to the submitted details when HasUser is false.
func (client *Client) Register(ctx context.Context, fullName, email, password string) (Session, error) {
	body := registerBody{FullName: fullName, Email: email, Password: password}
	result, err := client.do(ctx, "register", http.MethodPost, "/auth/register", Auth{}, body)
	if err != nil {
		return Session{}, err
	}
	if !result.ok() {
		return Session{}, result.failure("Registration failed", "detail", "message")
	}
	return sessionOf(result), nil
}

// Logout ends the upstream session.
func (client *Client) Logout(ctx context.Context, auth Auth) error {
	result, err := client.do(ctx, "logout", http.MethodPost, "/auth/logout", auth, nil)
	if err != nil {
		return err
	}
	if !result.ok() {
		return result.failure("Logout failed", "detail", "message")
	}
	return nil
}

func sessionOf(result *response) Session {
	session := Session{
		Token:  data.ExtractToken(result.payload),
		Cookie: cookieHeader(result.header),
	}
	if user, err := data.DeriveUserFromResponse(result.payload); err == nil {
		session.User, session.HasUser = user, true
	}
	return session
}

func cookieHeader(header http.Header) string {
	cookies := (&http.Response{Header: header}).Cookies()
	pairs := make([]string, 0, len(cookies))
	for _, cookie := range cookies {
		if cookie.MaxAge < 0 || cookie.Value == "" {
			continue
		}
		pairs = append(pairs, cookie.Name+"="+cookie.Value)
	}
	return strings.Join(pairs, "; ")
}
