package web

import (
	"math"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/Foysal-Munsy/EventBuddy-Frontend/api"
	"github.com/Foysal-Munsy/EventBuddy-Frontend/data"
	"github.com/Foysal-Munsy/EventBuddy-Frontend/gate"
	"github.com/Foysal-Munsy/EventBuddy-Frontend/session"
	"github.com/Foysal-Munsy/EventBuddy-Frontend/views"
)

const adminPath = "/admin"

var adminWatch = gate.Admin.String()

func (server *Server) admin(responseWriter http.ResponseWriter, request *http.Request) {
	page := &views.AdminPage{}
	if from := request.URL.Query().Get("from"); from != "" {
		page.Form = server.duplicateForm(request, from)
	}
	server.renderAdmin(responseWriter, request, http.StatusOK, page)
}

// duplicateForm prefills the create form from an existing event.
func (server *Server) duplicateForm(request *http.Request, id string) views.EventForm {
	event, err := server.api.Event(request.Context(), id)
	if err != nil {
		server.logUpstream(request, "get_event", err)
		return views.EventForm{}
	}
	date, clock := data.SplitDateTimeFields(event.Date)
	form := views.EventForm{
		Title:       event.Title,
		Description: event.Description,
		Location:    event.Location,
		Date:        date,
		Time:        clock,
		ImageURL:    event.ImageURL,
	}
	if event.TotalSeats > 0 {
		form.TotalSeats = strconv.Itoa(event.TotalSeats)
	}
	return form
}

func (server *Server) renderAdmin(responseWriter http.ResponseWriter, request *http.Request, status int, page *views.AdminPage) {
	events, err := server.api.Events(request.Context(), server.credentials(request))
	if err != nil {
		server.logUpstream(request, "list_events", err)
		page.Error = api.UserMessage(err, "Unable to load events")
	}
	page.Events = events
	server.render(responseWriter, status, page, server.layout(request, adminWatch))
}

func eventFormOf(request *http.Request) views.EventForm {
	return views.EventForm{
		Title:       strings.TrimSpace(request.PostFormValue("title")),
		Description: strings.TrimSpace(request.PostFormValue("description")),
		Location:    strings.TrimSpace(request.PostFormValue("location")),
		Date:        strings.TrimSpace(request.PostFormValue("date")),
		Time:        strings.TrimSpace(request.PostFormValue("time")),
		TotalSeats:  strings.TrimSpace(request.PostFormValue("totalSeats")),
		ImageURL:    strings.TrimSpace(request.PostFormValue("imageUrl")),
	}
}

// formProblem is a validation failure worded for the admin.
type formProblem string

func (problem formProblem) Error() string { return string(problem) }

const (
	problemSignedOut    formProblem = "You must be signed in to create an event."
	problemTitle        formProblem = "Title is required."
	problemDate         formProblem = "Please provide a valid date (and optional time)."
	problemSeatsMissing formProblem = "Total seats is required."
	problemSeatsNumber  formProblem = "Total seats must be a number."
)

func newEventOf(form views.EventForm, credentials api.Auth) (api.NewEvent, error) {
	if credentials.Token == "" {
		return api.NewEvent{}, problemSignedOut
	}
	if form.Title == "" {
		return api.NewEvent{}, problemTitle
	}
	date, ok := data.CombineDateTime(form.Date, form.Time)
	if !ok {
		return api.NewEvent{}, problemDate
	}
	if form.TotalSeats == "" {
		return api.NewEvent{}, problemSeatsMissing
	}
	totalSeats, err := strconv.ParseFloat(form.TotalSeats, 64)
	if err != nil || math.IsNaN(totalSeats) || math.IsInf(totalSeats, 0) {
		return api.NewEvent{}, problemSeatsNumber
	}

	return api.NewEvent{
		Title:       form.Title,
		Description: form.Description,
		Location:    form.Location,
		Date:        date,
		TotalSeats:  int(totalSeats),
		ImageURL:    form.ImageURL,
	}, nil
}

func (server *Server) createEvent(responseWriter http.ResponseWriter, request *http.Request) {
	form := eventFormOf(request)
	credentials := server.credentials(request)

	event, err := newEventOf(form, credentials)
	if err == nil {
		if err = server.api.CreateEvent(request.Context(), credentials, event); err != nil {
			server.logUpstream(request, "create_event", err)
			err = formProblem(api.UserMessage(err, "Failed to create event"))
		}
	}
	if err != nil {
		page := &views.AdminPage{Form: form, FormError: err.Error()}
		server.renderAdmin(responseWriter, request, http.StatusUnprocessableEntity, page)
		return
	}

	server.logger.Info("event_created", "title", event.Title, "date", event.Date)
	server.flash(request, session.FlashSuccess, "Event created", "Your event has been added successfully.")
	redirect(responseWriter, request, adminPath)
}

func (server *Server) deleteEvent(responseWriter http.ResponseWriter, request *http.Request) {
	id := chi.URLParam(request, "id")
	if err := server.api.DeleteEvent(request.Context(), server.credentials(request), id); err != nil {
		server.logUpstream(request, "delete_event", err)
		server.flash(request, session.FlashError, "Delete failed", api.UserMessage(err, "Failed to delete event"))
		redirect(responseWriter, request, adminPath)
		return
	}

	server.logger.Info("event_deleted", "event", id)
	server.flash(request, session.FlashSuccess, "Event deleted", "The event was removed.")
	redirect(responseWriter, request, adminPath)
}
