// Package views holds the server-rendered pages. The *.qtpl.go files are
// generated from the *.qtpl templates by qtc.
package views

import (
	"net/url"

	"github.com/Foysal-Munsy/EventBuddy-Frontend/data"
	"github.com/Foysal-Munsy/EventBuddy-Frontend/session"
)

// CSRFFieldName must match the field name the CSRF middleware reads.
const CSRFFieldName = "gorilla.csrf.Token"

// Layout is the per-request data shared by every page.
type Layout struct {
	Auth      session.AuthState
	Flash     *session.Flash
	CSRFToken string
	// Watch is the gate the page is rendered under ("admin", "user",
	// "signedout"); empty pages only reload on auth changes.
	Watch string
	Path  string
}

func (layout *Layout) user() data.User {
	return layout.Auth.User
}

func eventPath(id string) string {
	return "/events/" + url.PathEscape(id)
}

func duplicatePath(id string) string {
	return "/admin?from=" + url.QueryEscape(id) + "#create-event"
}

func watchURL(gate string) string {
	if gate == "" {
		return "/auth/watch"
	}
	return "/auth/watch?gate=" + url.QueryEscape(gate)
}

func navClass(layout *Layout, path string) string {
	if layout.Path == path {
		return "nav-link active"
	}
	return "nav-link"
}
