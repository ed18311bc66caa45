package views

import (
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Foysal-Munsy/EventBuddy-Frontend/data"
	"github.com/Foysal-Munsy/EventBuddy-Frontend/seats"
	"github.com/Foysal-Munsy/EventBuddy-Frontend/session"
)

func TestPaginateClampsPage(t *testing.T) {
	pager := Paginate(7, 10, 3, "page", nil)
	assert.Equal(t, 3, pager.Pages)
	assert.Equal(t, 3, pager.Page)
	start, end := pager.Bounds()
	assert.Equal(t, 6, start)
	assert.Equal(t, 7, end)

	pager = Paginate(0, -1, 3, "page", nil)
	assert.Equal(t, 1, pager.Pages)
	assert.Equal(t, 1, pager.Page)
	assert.False(t, pager.Visible())
}

func TestPageOf(t *testing.T) {
	items := []int{1, 2, 3, 4, 5}
	assert.Equal(t, []int{4, 5}, PageOf(items, Paginate(len(items), 2, 3, "page", nil)))
	assert.Equal(t, []int{1, 2, 3}, PageOf(items, Paginate(len(items), 1, 3, "page", nil)))
}

func TestPagerHrefKeepsOtherParams(t *testing.T) {
	query := url.Values{"prev": {"2"}}
	pager := Paginate(9, 1, 3, "page", query)
	assert.Equal(t, "?page=3&prev=2", pager.Href(3))
	assert.Equal(t, "2", query.Get("prev"))
	assert.Empty(t, query.Get("page"))
}

func TestMarkdownEscapesRawHTML(t *testing.T) {
	rendered := Markdown("**Bring** a laptop\n<script>alert(1)</script>")
	assert.Contains(t, rendered, "<strong>Bring</strong>")
	assert.NotContains(t, rendered, "<script>")
}

func signedIn(role string) *Layout {
	return &Layout{
		Auth: session.AuthState{
			IsAuthenticated: true,
			Role:            role,
			IsAdmin:         role == session.RoleAdmin,
			IsUser:          role == session.RoleUser,
			Token:           "token",
			User:            data.User{FullName: "Jane Doe", Email: "jane@example.com", Role: role},
		},
		CSRFToken: "csrf-token",
	}
}

func TestPageTemplateAnonymous(t *testing.T) {
	page := &IndexPage{UpcomingPager: Paginate(0, 1, 3, "page", nil), PreviousPager: Paginate(0, 1, 3, "prev", nil)}
	html := PageTemplate(page, &Layout{Path: "/"})

	assert.Contains(t, html, "<title>Discover Amazing Events | EventBuddy</title>")
	assert.Contains(t, html, `href="/signin"`)
	assert.Contains(t, html, "No upcoming events.")
	assert.Contains(t, html, "No previous events.")
	assert.Contains(t, html, `new EventSource("/auth/watch")`)
	assert.NotContains(t, html, "Sign out")
}

func TestPageTemplateUserMenu(t *testing.T) {
	html := PageTemplate(&DashboardPage{}, signedIn(session.RoleUser))

	assert.Contains(t, html, `<span class="avatar">JD</span>`)
	assert.Contains(t, html, "Jane Doe")
	assert.Contains(t, html, `action="/signout"`)
	assert.Contains(t, html, `value="csrf-token"`)
	assert.Contains(t, html, "Welcome back, Jane Doe!")
	assert.Contains(t, html, "You have no registrations yet.")
	assert.NotContains(t, html, "Admin dashboard")
}

func TestPageTemplateFlash(t *testing.T) {
	layout := &Layout{Flash: &session.Flash{Kind: session.FlashError, Title: "Booking failed", Message: "<b>no</b>"}}
	html := PageTemplate(&NotFoundPage{}, layout)

	assert.Contains(t, html, `class="flash flash-error"`)
	assert.Contains(t, html, "Booking failed")
	assert.Contains(t, html, "&lt;b&gt;no&lt;/b&gt;")
}

func TestIndexPagePaginates(t *testing.T) {
	events := make([]data.Event, 0, 5)
	for _, title := range []string{"One", "Two", "Three", "Four", "Five"} {
		events = append(events, data.Event{ID: strings.ToLower(title), Title: title, TotalSeats: 10, BookedSeats: 12})
	}
	page := &IndexPage{
		Upcoming:      events,
		UpcomingPager: Paginate(len(events), 2, 3, "page", nil),
		PreviousPager: Paginate(0, 1, 3, "prev", nil),
	}
	html := page.Body(&Layout{})

	assert.Contains(t, html, `href="/events/four"`)
	assert.NotContains(t, html, `href="/events/one"`)
	assert.Contains(t, html, "0 Spots Left")
	assert.Contains(t, html, `<span class="page current">2</span>`)
	assert.Contains(t, html, "Location to be announced")
}

func TestEventPageBookingStates(t *testing.T) {
	event := data.Event{ID: "42", Title: "Go Meetup", TotalSeats: 10, BookedSeats: 8, Description: "Talks *and* pizza"}
	selection := seats.Compute(float64(event.TotalSeats), float64(event.BookedSeats))

	anonymous := (&EventPage{Event: event, Selection: selection, Selected: 1}).Body(&Layout{})
	assert.Contains(t, anonymous, "Sign in required")
	assert.Contains(t, anonymous, "<em>and</em>")
	assert.Contains(t, anonymous, "(8 registered)")
	assert.Contains(t, anonymous, "No image available")

	member := (&EventPage{Event: event, Selection: selection, Selected: 2}).Body(signedIn(session.RoleUser))
	assert.Contains(t, member, `action="/events/42/book"`)
	assert.Contains(t, member, `value="2" checked`)
	assert.NotContains(t, member, `value="3"`)

	closed := (&EventPage{Event: event, Selection: selection, Closed: true}).Body(signedIn(session.RoleUser))
	assert.Contains(t, closed, "This event is no longer accepting new bookings.")

	soldOut := (&EventPage{Event: event, Selection: seats.Compute(2, 2)}).Body(signedIn(session.RoleUser))
	assert.Contains(t, soldOut, "All seats for this event are booked. Please check back later.")
}

func TestAdminPageRows(t *testing.T) {
	page := &AdminPage{
		Events: []data.Event{{ID: "7", Title: "Launch", BookedSeats: 3}},
		Form:   EventForm{Title: "Draft"},
	}
	html := page.Body(signedIn(session.RoleAdmin))

	require.Contains(t, html, `action="/admin/events/7/delete"`)
	assert.Contains(t, html, "3/&mdash;")
	assert.Contains(t, html, `value="Draft"`)

	empty := (&AdminPage{}).Body(signedIn(session.RoleAdmin))
	assert.Contains(t, empty, "No events to display yet.")
}
