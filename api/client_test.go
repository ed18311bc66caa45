package api_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Foysal-Munsy/EventBuddy-Frontend/api"
	"github.com/Foysal-Munsy/EventBuddy-Frontend/data"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newServer(t *testing.T, handler http.HandlerFunc) *api.Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return api.NewClient(server.URL+"/", api.Options{Timeout: 2 * time.Second})
}

func writeJSON(responseWriter http.ResponseWriter, status int, body string) {
	responseWriter.Header().Set("Content-Type", "application/json")
	responseWriter.WriteHeader(status)
	io.WriteString(responseWriter, body)
}

func TestLogin_StoresTokenUserAndCookies(t *testing.T) {
	client := newServer(t, func(responseWriter http.ResponseWriter, request *http.Request) {
		assert.Equal(t, http.MethodPost, request.Method)
		assert.Equal(t, "/auth/login", request.URL.Path)
		assert.Equal(t, "application/json", request.Header.Get("Content-Type"))
		assert.Empty(t, request.Header.Get("Authorization"))

		var body map[string]string
		require.NoError(t, json.NewDecoder(request.Body).Decode(&body))
		assert.Equal(t, map[string]string{"email": "j@x.com", "password": "pw"}, body)

		http.SetCookie(responseWriter, &http.Cookie{Name: "sid", Value: "up-1", Path: "/"})
		http.SetCookie(responseWriter, &http.Cookie{Name: "gone", Value: "x", MaxAge: -1})
		writeJSON(responseWriter, http.StatusOK, `{"access_token":"tok","user":{"firstName":"Jane","lastName":"Doe","email":"j@x.com","role":"admin"}}`)
	})

	result, err := client.Login(context.Background(), "j@x.com", "pw")
	require.NoError(t, err)
	assert.Equal(t, "tok", result.Token)
	assert.True(t, result.HasUser)
	assert.Equal(t, data.User{FullName: "Jane Doe", Email: "j@x.com", Role: "admin"}, result.User)
	assert.Equal(t, "sid=up-1", result.Cookie)
}

func TestLogin_ErrorMessage(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{"detail first", `{"detail":"Wrong password","message":"other"}`, "Wrong password"},
		{"message", `{"message":"Locked"}`, "Locked"},
		{"validation list", `{"detail":[{"loc":["body","email"],"msg":"field required"}]}`, "field required"},
		{"fallback", `not json`, "Invalid credentials"},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			client := newServer(t, func(responseWriter http.ResponseWriter, request *http.Request) {
				writeJSON(responseWriter, http.StatusUnauthorized, test.body)
			})

			_, err := client.Login(context.Background(), "a", "b")
			var apiErr *api.Error
			require.ErrorAs(t, err, &apiErr)
			assert.Equal(t, http.StatusUnauthorized, apiErr.Status)
			assert.Equal(t, test.want, apiErr.Message)
			assert.Equal(t, test.want, api.UserMessage(err, "unused"))
		})
	}
}

func TestRegister_WithoutUserInResponse(t *testing.T) {
	client := newServer(t, func(responseWriter http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "/auth/register", request.URL.Path)
		var body map[string]string
		require.NoError(t, json.NewDecoder(request.Body).Decode(&body))
		assert.Equal(t, "Jane Doe", body["fullName"])
		writeJSON(responseWriter, http.StatusCreated, `{"message":"created"}`)
	})

	result, err := client.Register(context.Background(), "Jane Doe", "j@x.com", "pw")
	require.NoError(t, err)
	assert.False(t, result.HasUser)
	assert.Empty(t, result.Token)
}

func TestAuthHeaders(t *testing.T) {
	var seen http.Header
	client := newServer(t, func(responseWriter http.ResponseWriter, request *http.Request) {
		seen = request.Header.Clone()
		writeJSON(responseWriter, http.StatusOK, `[]`)
	})
	ctx := context.Background()

	_, err := client.MyBookings(ctx, api.Auth{Token: "abc", Cookie: "sid=1"})
	require.NoError(t, err)
	assert.Equal(t, "Bearer abc", seen.Get("Authorization"))
	assert.Equal(t, "sid=1", seen.Get("Cookie"))

	_, err = client.MyBookings(ctx, api.Auth{Token: "session", Cookie: "sid=2"})
	require.NoError(t, err)
	assert.Empty(t, seen.Get("Authorization"))
	assert.Equal(t, "sid=2", seen.Get("Cookie"))
}

func TestEventLists(t *testing.T) {
	client := newServer(t, func(responseWriter http.ResponseWriter, request *http.Request) {
		switch request.URL.Path {
		case "/events":
			writeJSON(responseWriter, http.StatusOK, `[{"id":"1","title":"All"}]`)
		case "/events/upcoming":
			writeJSON(responseWriter, http.StatusOK, `{"data":[{"_id":"2","title":"Soon","totalSeats":10,"bookedSeats":12}]}`)
		case "/events/previous":
			writeJSON(responseWriter, http.StatusOK, `{"data":[]}`)
		default:
			http.NotFound(responseWriter, request)
		}
	})
	ctx := context.Background()

	all, err := client.Events(ctx, api.Auth{})
	require.NoError(t, err)
	require.Len(t, all, 1)

	upcoming, err := client.UpcomingEvents(ctx)
	require.NoError(t, err)
	require.Len(t, upcoming, 1)
	assert.Equal(t, "2", upcoming[0].ID)
	assert.Equal(t, 0, upcoming[0].SpotsLeft())

	previous, err := client.PreviousEvents(ctx)
	require.NoError(t, err)
	assert.Empty(t, previous)
}

func TestEventList_Failure(t *testing.T) {
	client := newServer(t, func(responseWriter http.ResponseWriter, request *http.Request) {
		writeJSON(responseWriter, http.StatusBadGateway, ``)
	})
	_, err := client.UpcomingEvents(context.Background())
	assert.EqualError(t, err, "booking api: Failed to fetch events (502) (status 502)")
}

func TestEventList_MalformedPayload(t *testing.T) {
	client := newServer(t, func(responseWriter http.ResponseWriter, request *http.Request) {
		writeJSON(responseWriter, http.StatusOK, `{"data":{"not":"a list"}}`)
	})
	_, err := client.UpcomingEvents(context.Background())
	assert.ErrorIs(t, err, data.ErrMalformedPayload)
}

func TestEvent_DetailAndNotFound(t *testing.T) {
	client := newServer(t, func(responseWriter http.ResponseWriter, request *http.Request) {
		switch request.URL.EscapedPath() {
		case "/events/abc":
			writeJSON(responseWriter, http.StatusOK, `{"data":{"title":"Go Day","capacity":"50"}}`)
		case "/events/a%2Fb":
			writeJSON(responseWriter, http.StatusOK, `{"id":"a/b"}`)
		case "/events/empty":
			responseWriter.WriteHeader(http.StatusOK)
		default:
			writeJSON(responseWriter, http.StatusNotFound, `{"detail":"Event not found"}`)
		}
	})
	ctx := context.Background()

	event, err := client.Event(ctx, "abc")
	require.NoError(t, err)
	assert.Equal(t, "abc", event.ID)
	assert.Equal(t, "Go Day", event.Title)
	assert.Equal(t, 50, event.TotalSeats)

	escaped, err := client.Event(ctx, "a/b")
	require.NoError(t, err)
	assert.Equal(t, "a/b", escaped.ID)

	_, err = client.Event(ctx, "missing")
	assert.ErrorIs(t, err, api.ErrNotFound)

	_, err = client.Event(ctx, "empty")
	assert.ErrorIs(t, err, api.ErrNotFound)
}

func TestBook(t *testing.T) {
	var gotSeats int
	client := newServer(t, func(responseWriter http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "/events/e1/book", request.URL.Path)
		var body struct {
			Seats int `json:"seats"`
		}
		require.NoError(t, json.NewDecoder(request.Body).Decode(&body))
		gotSeats = body.Seats
		if body.Seats > 2 {
			writeJSON(responseWriter, http.StatusBadRequest, `{}`)
			return
		}
		writeJSON(responseWriter, http.StatusOK, `{"message":"See you there"}`)
	})
	ctx := context.Background()

	message, err := client.Book(ctx, api.Auth{Token: "abc"}, "e1", 2)
	require.NoError(t, err)
	assert.Equal(t, 2, gotSeats)
	assert.Equal(t, "See you there", message)

	_, err = client.Book(ctx, api.Auth{Token: "abc"}, "e1", 3)
	assert.Equal(t, "Unable to book 3 seat(s).", api.UserMessage(err, ""))
}

func TestCreateAndDeleteEvent(t *testing.T) {
	var created api.NewEvent
	var deleted string
	client := newServer(t, func(responseWriter http.ResponseWriter, request *http.Request) {
		switch {
		case request.Method == http.MethodPost && request.URL.Path == "/events/create":
			require.NoError(t, json.NewDecoder(request.Body).Decode(&created))
			writeJSON(responseWriter, http.StatusCreated, `{"id":"new"}`)
		case request.Method == http.MethodDelete:
			deleted = request.URL.Path
			if request.URL.Path == "/events/locked" {
				writeJSON(responseWriter, http.StatusForbidden, `{"message":"Forbidden"}`)
				return
			}
			responseWriter.WriteHeader(http.StatusNoContent)
		default:
			http.NotFound(responseWriter, request)
		}
	})
	ctx := context.Background()
	auth := api.Auth{Token: "admin-token"}

	event := api.NewEvent{Title: "Go Day", Date: "2025-04-14T15:00:00.000Z", TotalSeats: 40}
	require.NoError(t, client.CreateEvent(ctx, auth, event))
	assert.Equal(t, event, created)

	require.NoError(t, client.DeleteEvent(ctx, auth, "e1"))
	assert.Equal(t, "/events/e1", deleted)

	err := client.DeleteEvent(ctx, auth, "locked")
	assert.Equal(t, "Forbidden", api.UserMessage(err, "fallback"))
}

func TestLogout(t *testing.T) {
	client := newServer(t, func(responseWriter http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "/auth/logout", request.URL.Path)
		assert.Equal(t, "Bearer abc", request.Header.Get("Authorization"))
		responseWriter.WriteHeader(http.StatusOK)
	})
	assert.NoError(t, client.Logout(context.Background(), api.Auth{Token: "abc"}))
}

func TestUnreachableService(t *testing.T) {
	client := api.NewClient("http://127.0.0.1:1", api.Options{Timeout: time.Second})
	_, err := client.UpcomingEvents(context.Background())
	require.Error(t, err)

	var apiErr *api.Error
	assert.False(t, errors.As(err, &apiErr))
	assert.Equal(t, "Unable to load events", api.UserMessage(err, "Unable to load events"))
}

func TestRateLimitHonoursContext(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(responseWriter http.ResponseWriter, request *http.Request) {
		writeJSON(responseWriter, http.StatusOK, `[]`)
	}))
	defer server.Close()
	client := api.NewClient(server.URL, api.Options{RateLimit: 0.001, Burst: 1})

	_, err := client.UpcomingEvents(context.Background())
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	_, err = client.UpcomingEvents(ctx)
	assert.Error(t, err)
}
