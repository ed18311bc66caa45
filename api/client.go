// Package api talks to the EventBuddy booking service.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/Foysal-Munsy/EventBuddy-Frontend/data"
	"golang.org/x/time/rate"
)

const (
	DefaultTimeout = 15 * time.Second
	maxBodyBytes   = 4 << 20
)

// ErrNotFound is matched by errors for 404 responses.
var ErrNotFound = errors.New("not found")

// Error is a non-2xx response of the booking service.
type Error struct {
	Status  int
	Message string
}

func (err *Error) Error() string {
	return fmt.Sprintf("booking api: %s (status %d)", err.Message, err.Status)
}

func (err *Error) Is(target error) bool {
	return target == ErrNotFound && err.Status == http.StatusNotFound
}

// UserMessage returns the text to show for err, or fallback when err did
// not come from the booking service.
func UserMessage(err error, fallback string) string {
	var apiErr *Error
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	return fallback
}

// Auth identifies the browser on whose behalf a request is made. Token may
// be the "session" sentinel, in which case only Cookie is sent.
type Auth struct {
	Token  string
	Cookie string
}

const tokenSession = "session"

// Options configure a Client. Zero values mean defaults.
type Options struct {
	Timeout    time.Duration
	RateLimit  float64
	Burst      int
	HTTPClient *http.Client
	Logger     *slog.Logger
}

// Client calls the booking service.
type Client struct {
	baseURL    string
	httpClient *http.Client
	limiter    *rate.Limiter
	logger     *slog.Logger
}

// NewClient creates a client for the service at baseURL.
func NewClient(baseURL string, options Options) *Client {
	httpClient := options.HTTPClient
	if httpClient == nil {
		timeout := options.Timeout
		if timeout <= 0 {
			timeout = DefaultTimeout
		}
		httpClient = &http.Client{Timeout: timeout}
	}

	logger := options.Logger
	if logger == nil {
		logger = slog.Default()
	}

	var limiter *rate.Limiter
	if options.RateLimit > 0 {
		burst := options.Burst
		if burst < 1 {
			burst = 1
		}
		limiter = rate.NewLimiter(rate.Limit(options.RateLimit), burst)
	}

	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: httpClient,
		limiter:    limiter,
		logger:     logger,
	}
}

// response is a decoded reply of the booking service.
type response struct {
	status  int
	header  http.Header
	payload any
}

func (client *Client) do(ctx context.Context, operation, method, path string, auth Auth, body any) (*response, error) {
	if client.limiter != nil {
		if err := client.limiter.Wait(ctx); err != nil {
			return nil, fmt.Errorf("%s: rate limit: %w", operation, err)
		}
	}

	var reader io.Reader
	if body != nil {
		rawBody, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("%s: encode body: %w", operation, err)
		}
		reader = bytes.NewReader(rawBody)
	}

	request, err := http.NewRequestWithContext(ctx, method, client.baseURL+path, reader)
	if err != nil {
		return nil, fmt.Errorf("%s: create request: %w", operation, err)
	}
	request.Header.Set("Accept", "application/json")
	if body != nil {
		request.Header.Set("Content-Type", "application/json")
	}
	if auth.Token != "" && auth.Token != tokenSession {
		request.Header.Set("Authorization", "Bearer "+auth.Token)
	}
	if auth.Cookie != "" {
		request.Header.Set("Cookie", auth.Cookie)
	}

	start := time.Now()
	httpResponse, err := client.httpClient.Do(request)
	if err != nil {
		client.logger.Warn("upstream_failed", "op", operation, "error", err)
		return nil, fmt.Errorf("%s: upstream request failed: %w", operation, err)
	}
	defer httpResponse.Body.Close()

	rawPayload, err := io.ReadAll(io.LimitReader(httpResponse.Body, maxBodyBytes))
	if err != nil {
		return nil, fmt.Errorf("%s: read body: %w", operation, err)
	}
	client.logger.Debug("upstream_call",
		"op", operation,
		"method", method,
		"path", path,
		"status", httpResponse.StatusCode,
		"duration_ms", time.Since(start).Milliseconds(),
	)

	// Error bodies are often not JSON; their message falls back instead.
	payload, decodeErr := data.DecodeBytes(rawPayload)
	result := &response{status: httpResponse.StatusCode, header: httpResponse.Header, payload: payload}
	if httpResponse.StatusCode < 200 || httpResponse.StatusCode > 299 {
		return result, nil
	}
	if decodeErr != nil {
		return nil, fmt.Errorf("%s: %w", operation, decodeErr)
	}
	return result, nil
}

func (result *response) ok() bool {
	return result.status >= 200 && result.status <= 299
}

// failure builds an Error from the payload's message fields, tried in
// order, or from fallback.
func (result *response) failure(fallback string, keys ...string) *Error {
	message := messageOf(result.payload, keys...)
	if message == "" {
		message = fallback
	}
	return &Error{Status: result.status, Message: message}
}

// messageOf reads the first usable message. FastAPI style "detail" lists
// contribute their first "msg".
func messageOf(payload any, keys ...string) string {
	object, ok := data.AsObject(payload)
	if !ok {
		return ""
	}
	for _, key := range keys {
		switch value := object[key].(type) {
		case string:
			if strings.TrimSpace(value) != "" {
				return value
			}
		case []any:
			if len(value) == 0 {
				continue
			}
			if first, ok := data.AsObject(value[0]); ok {
				if text := first.String("msg", "message"); text != "" {
					return text
				}
			}
			if text, ok := value[0].(string); ok && text != "" {
				return text
			}
		}
	}
	return ""
}
