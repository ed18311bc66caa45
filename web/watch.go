package web

import (
	"net/http"
	"time"

	"github.com/gin-contrib/sse"

	"github.com/Foysal-Munsy/EventBuddy-Frontend/gate"
	"github.com/Foysal-Munsy/EventBuddy-Frontend/session"
)

const (
	eventDecision = "decision"
	eventAuth     = "auth"
)

// authEvent is sent to ungated pages when the browser signs in or out.
type authEvent struct {
	Authenticated bool   `json:"authenticated"`
	Role          string `json:"role,omitempty"`
}

// watch streams auth changes of the browser session as server-sent events.
// With ?gate= every changed gate decision is sent, starting with the
// current one; without it an "auth" event is sent whenever the signed-in
// state differs from what the page was rendered with.
func (server *Server) watch(responseWriter http.ResponseWriter, request *http.Request) {
	ctx := request.Context()
	sessionID := session.IDFromContext(ctx)

	var kind gate.Kind
	gated := request.URL.Query().Has("gate")
	if gated {
		var ok bool
		if kind, ok = gate.ParseKind(request.URL.Query().Get("gate")); !ok {
			http.Error(responseWriter, "unknown gate", http.StatusBadRequest)
			return
		}
	}

	controller := http.NewResponseController(responseWriter)
	// Streams outlive the server's write timeout.
	_ = controller.SetWriteDeadline(time.Time{})

	header := responseWriter.Header()
	header.Set("Content-Type", sse.ContentType)
	header.Set("Cache-Control", "no-cache")
	header.Set("Connection", "keep-alive")
	header.Set("X-Accel-Buffering", "no")

	send := func(event sse.Event) bool {
		if err := sse.Encode(responseWriter, event); err != nil {
			return false
		}
		return controller.Flush() == nil
	}

	if gated {
		decisions, err := server.gate.Watch(ctx, sessionID, kind)
		if err != nil {
			server.storeFailed(responseWriter, request, err)
			return
		}
		responseWriter.WriteHeader(http.StatusOK)
		for decision := range decisions {
			if !send(sse.Event{Event: eventDecision, Data: decision}) {
				return
			}
		}
		return
	}

	subscription, err := server.provider.Subscribe(ctx, sessionID)
	if err != nil {
		server.storeFailed(responseWriter, request, err)
		return
	}
	defer subscription.Unsubscribe()

	last := server.provider.State(ctx, sessionID)
	responseWriter.WriteHeader(http.StatusOK)
	if err := controller.Flush(); err != nil {
		return
	}
	for {
		select {
		case <-ctx.Done():
			return
		case change, ok := <-subscription.C:
			if !ok {
				return
			}
			if !change.Has(session.KeyUser) && !change.Has(session.KeyAuthToken) {
				continue
			}
			state := server.provider.State(ctx, sessionID)
			if state == last {
				continue
			}
			last = state
			if !send(sse.Event{Event: eventAuth, Data: authEvent{Authenticated: state.IsAuthenticated, Role: state.Role}}) {
				return
			}
		}
	}
}
