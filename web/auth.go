package web

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5/middleware"

	"github.com/Foysal-Munsy/EventBuddy-Frontend/api"
	"github.com/Foysal-Munsy/EventBuddy-Frontend/data"
	"github.com/Foysal-Munsy/EventBuddy-Frontend/gate"
	"github.com/Foysal-Munsy/EventBuddy-Frontend/session"
	"github.com/Foysal-Munsy/EventBuddy-Frontend/views"
)

var signedOutWatch = gate.SignedOut.String()

func (server *Server) signInForm(responseWriter http.ResponseWriter, request *http.Request) {
	server.render(responseWriter, http.StatusOK, &views.SignInPage{}, server.layout(request, signedOutWatch))
}

func (server *Server) signIn(responseWriter http.ResponseWriter, request *http.Request) {
	ctx := request.Context()
	email := strings.TrimSpace(request.PostFormValue("email"))
	password := request.PostFormValue("password")
	page := &views.SignInPage{Email: email}

	result, err := server.api.Login(ctx, email, password)
	if err != nil {
		server.logUpstream(request, "login", err)
		page.Error = api.UserMessage(err, "Login failed")
		server.render(responseWriter, http.StatusUnprocessableEntity, page, server.layout(request, signedOutWatch))
		return
	}

	// A token without a user record still signs in; a user record without
	// a token means the service keeps its own cookie session.
	user := result.User
	if !result.HasUser {
		if result.Token == "" {
			page.Error = "Login failed"
			server.render(responseWriter, http.StatusBadGateway, page, server.layout(request, signedOutWatch))
			return
		}
		user = data.User{Email: email}
	}

	sessionID, err := server.startSession(responseWriter, request, user, result)
	if err != nil {
		server.storeFailed(responseWriter, request, err)
		return
	}

	title := "Signed in"
	if user.FullName != "" {
		title = "Signed in as " + user.FullName
	}
	message := user.Email
	if message == "" {
		message = "Welcome back"
	}
	server.flashTo(ctx, sessionID, session.FlashSuccess, title, message)
	redirect(responseWriter, request, gate.DefaultPaths.Home)
}

func (server *Server) registerForm(responseWriter http.ResponseWriter, request *http.Request) {
	server.render(responseWriter, http.StatusOK, &views.RegisterPage{}, server.layout(request, signedOutWatch))
}

func (server *Server) register(responseWriter http.ResponseWriter, request *http.Request) {
	ctx := request.Context()
	fullName := strings.TrimSpace(request.PostFormValue("fullName"))
	email := strings.TrimSpace(request.PostFormValue("email"))
	password := request.PostFormValue("password")
	page := &views.RegisterPage{FullName: fullName, Email: email}

	result, err := server.api.Register(ctx, fullName, email, password)
	if err != nil {
		server.logUpstream(request, "register", err)
		page.Error = api.UserMessage(err, "Registration failed")
		server.render(responseWriter, http.StatusUnprocessableEntity, page, server.layout(request, signedOutWatch))
		return
	}

	user := result.User
	if !result.HasUser {
		user = data.User{FullName: fullName, Email: email, Role: session.RoleUser}
	}
	sessionID, err := server.startSession(responseWriter, request, user, result)
	if err != nil {
		server.storeFailed(responseWriter, request, err)
		return
	}

	title := "Welcome!"
	if user.FullName != "" {
		title = "Welcome, " + user.FullName + "!"
	}
	server.flashTo(ctx, sessionID, session.FlashSuccess, title, "Your account was created successfully")
	redirect(responseWriter, request, gate.DefaultPaths.Home)
}

// startSession signs user in under a freshly issued session ID. The ID the
// browser arrived with is never promoted to an authenticated session.
func (server *Server) startSession(responseWriter http.ResponseWriter, request *http.Request, user data.User, result api.Session) (string, error) {
	sessionID, err := server.provider.Renew(responseWriter)
	if err != nil {
		return "", err
	}
	if err := server.provider.SignIn(request.Context(), sessionID, user, result.Token, result.Cookie); err != nil {
		return "", err
	}
	return sessionID, nil
}

// signOut ends the upstream session when possible, clears the local one and
// moves the browser to a fresh session ID.
func (server *Server) signOut(responseWriter http.ResponseWriter, request *http.Request) {
	ctx := request.Context()
	sessionID := session.IDFromContext(ctx)

	if credentials := server.credentials(request); credentials.Token != "" || credentials.Cookie != "" {
		if err := server.api.Logout(ctx, credentials); err != nil {
			server.logUpstream(request, "logout", err)
		}
	}
	if err := server.provider.SignOut(ctx, sessionID); err != nil {
		server.storeFailed(responseWriter, request, err)
		return
	}

	freshID, err := server.provider.Renew(responseWriter)
	if err != nil {
		server.storeFailed(responseWriter, request, err)
		return
	}
	server.flashTo(ctx, freshID, session.FlashSuccess, "Signed out", "Come back anytime!")
	redirect(responseWriter, request, gate.DefaultPaths.Home)
}

func (server *Server) storeFailed(responseWriter http.ResponseWriter, request *http.Request, err error) {
	server.logger.Error("session_store_failed",
		"path", request.URL.Path,
		"error", err,
		"request_id", middleware.GetReqID(request.Context()),
	)
	http.Error(responseWriter, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
}
