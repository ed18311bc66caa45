package web

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/gorilla/csrf"

	"github.com/Foysal-Munsy/EventBuddy-Frontend/api"
	"github.com/Foysal-Munsy/EventBuddy-Frontend/data"
	"github.com/Foysal-Munsy/EventBuddy-Frontend/gate"
	"github.com/Foysal-Munsy/EventBuddy-Frontend/seats"
	"github.com/Foysal-Munsy/EventBuddy-Frontend/session"
	"github.com/Foysal-Munsy/EventBuddy-Frontend/views"
)

// layout collects the per-request page data and consumes the pending flash.
// watch names the gate the page is served under, if any.
func (server *Server) layout(request *http.Request, watch string) *views.Layout {
	ctx := request.Context()
	sessionID := session.IDFromContext(ctx)
	layout := &views.Layout{
		Auth:      server.provider.State(ctx, sessionID),
		CSRFToken: csrf.Token(request),
		Watch:     watch,
		Path:      request.URL.Path,
	}
	if flash, ok := server.provider.PopFlash(ctx, sessionID); ok {
		layout.Flash = &flash
	}
	return layout
}

func (server *Server) render(responseWriter http.ResponseWriter, status int, page views.Page, layout *views.Layout) {
	responseWriter.Header().Set("Content-Type", "text/html; charset=utf-8")
	responseWriter.WriteHeader(status)
	views.WritePageTemplate(responseWriter, page, layout)
}

func (server *Server) credentials(request *http.Request) api.Auth {
	credentials := server.provider.Credentials(request.Context(), session.IDFromContext(request.Context()))
	return api.Auth{Token: credentials.Token, Cookie: credentials.Cookie}
}

func (server *Server) flash(request *http.Request, kind, title, message string) {
	server.flashTo(request.Context(), session.IDFromContext(request.Context()), kind, title, message)
}

func (server *Server) flashTo(ctx context.Context, sessionID, kind, title, message string) {
	server.provider.PushFlash(ctx, sessionID, session.Flash{
		Kind:    kind,
		Title:   title,
		Message: message,
	})
}

func (server *Server) logUpstream(request *http.Request, operation string, err error) {
	server.logger.Warn("upstream_failed",
		"operation", operation,
		"error", err,
		"request_id", middleware.GetReqID(request.Context()),
	)
}

func redirect(responseWriter http.ResponseWriter, request *http.Request, target string) {
	http.Redirect(responseWriter, request, target, http.StatusSeeOther)
}

func eventPath(id string) string {
	return "/events/" + url.PathEscape(id)
}

// pageNumber reads a 1-based page number; anything unusable is page 1.
func pageNumber(request *http.Request, param string) int {
	number, err := strconv.Atoi(request.URL.Query().Get(param))
	if err != nil || number < 1 {
		return 1
	}
	return number
}

func (server *Server) index(responseWriter http.ResponseWriter, request *http.Request) {
	ctx := request.Context()
	page := &views.IndexPage{}

	upcoming, err := server.api.UpcomingEvents(ctx)
	if err != nil {
		server.logUpstream(request, "upcoming_events", err)
		page.UpcomingError = api.UserMessage(err, "Unable to load upcoming events.")
	}
	previous, err := server.api.PreviousEvents(ctx)
	if err != nil {
		server.logUpstream(request, "previous_events", err)
		page.PreviousError = api.UserMessage(err, "Unable to load previous events.")
	}

	query := request.URL.Query()
	page.Upcoming = upcoming
	page.UpcomingPager = views.Paginate(len(upcoming), pageNumber(request, "page"), IndexPageSize, "page", query)
	page.Previous = previous
	page.PreviousPager = views.Paginate(len(previous), pageNumber(request, "prev"), IndexPageSize, "prev", query)

	server.render(responseWriter, http.StatusOK, page, server.layout(request, ""))
}

// loadEvent fetches the event of the {id} route parameter. On failure it has
// already written the response.
func (server *Server) loadEvent(responseWriter http.ResponseWriter, request *http.Request) (data.Event, bool) {
	id := chi.URLParam(request, "id")
	event, err := server.api.Event(request.Context(), id)
	if err == nil {
		return event, true
	}

	if errors.Is(err, api.ErrNotFound) {
		server.render(responseWriter, http.StatusNotFound, &views.NotFoundPage{}, server.layout(request, ""))
		return data.Event{}, false
	}
	server.logUpstream(request, "get_event", err)
	page := &views.NotFoundPage{Message: api.UserMessage(err, "Unable to load this event right now.")}
	server.render(responseWriter, http.StatusBadGateway, page, server.layout(request, ""))
	return data.Event{}, false
}

func (server *Server) eventPage(event data.Event, previous int) *views.EventPage {
	selection := seats.Compute(float64(event.TotalSeats), float64(event.BookedSeats))
	return &views.EventPage{
		Event:     event,
		Selection: selection,
		Selected:  selection.Reselect(previous),
		Closed:    event.BookingClosed(server.now()),
	}
}

func (server *Server) event(responseWriter http.ResponseWriter, request *http.Request) {
	event, ok := server.loadEvent(responseWriter, request)
	if !ok {
		return
	}
	previous, _ := strconv.Atoi(request.URL.Query().Get("seats"))
	server.render(responseWriter, http.StatusOK, server.eventPage(event, previous), server.layout(request, ""))
}

// book submits one booking. Availability is re-read from the service so the
// seat count is validated against current numbers.
func (server *Server) book(responseWriter http.ResponseWriter, request *http.Request) {
	ctx := request.Context()
	id := chi.URLParam(request, "id")

	if state := server.provider.State(ctx, session.IDFromContext(ctx)); !state.IsAuthenticated {
		server.flash(request, session.FlashInfo, "Sign in required", "You need to be signed in to book seats.")
		redirect(responseWriter, request, gate.DefaultPaths.SignIn)
		return
	}

	event, ok := server.loadEvent(responseWriter, request)
	if !ok {
		return
	}
	if event.BookingClosed(server.now()) {
		server.flash(request, session.FlashError, "Booking unavailable", "This event is no longer accepting new bookings.")
		redirect(responseWriter, request, eventPath(id))
		return
	}

	count, err := strconv.Atoi(strings.TrimSpace(request.PostFormValue("seats")))
	page := server.eventPage(event, count)
	if err == nil {
		err = page.Selection.Validate(count)
	}
	if err != nil {
		if !page.Selection.Unavailable() {
			page.SeatError = fmt.Sprintf("Enter a number between 1 and %d.", page.Selection.MaxSelectable())
		}
		server.render(responseWriter, http.StatusUnprocessableEntity, page, server.layout(request, ""))
		return
	}

	message, err := server.api.Book(ctx, server.credentials(request), id, count)
	if err != nil {
		server.logUpstream(request, "book_event", err)
		server.flash(request, session.FlashError, "Booking failed", api.UserMessage(err, fmt.Sprintf("Unable to book %d seat(s).", count)))
		redirect(responseWriter, request, eventPath(id))
		return
	}

	if message == "" {
		message = fmt.Sprintf("Successfully booked %d seat", count)
		if count != 1 {
			message += "s"
		}
	}
	server.logger.Info("booked", "event", id, "seats", count, "request_id", middleware.GetReqID(ctx))
	server.flash(request, session.FlashSuccess, "Booking confirmed", message)
	redirect(responseWriter, request, eventPath(id))
}

func (server *Server) dashboard(responseWriter http.ResponseWriter, request *http.Request) {
	page := &views.DashboardPage{}
	bookings, err := server.api.MyBookings(request.Context(), server.credentials(request))
	if err != nil {
		server.logUpstream(request, "my_bookings", err)
		page.Error = api.UserMessage(err, "Unable to load your registrations.")
	}
	page.Bookings = bookings
	server.render(responseWriter, http.StatusOK, page, server.layout(request, gate.User.String()))
}
