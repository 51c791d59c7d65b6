package binder

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"net/url"
	"strings"

	"github.com/google/uuid"

	"github.com/dmitrymomot/commandhttp/core/command"
	"github.com/dmitrymomot/commandhttp/core/dispatch"
	"github.com/dmitrymomot/commandhttp/core/problem"
)

// DefaultMaxBodyBytes is the default maximum size for command bodies (1MB).
const DefaultMaxBodyBytes = 1 << 20 // 1 MB

// DefaultPathParam is the path wildcard holding the command id.
const DefaultPathParam = "id"

// MaxCommandNameLength bounds the command name accepted from a media type.
const MaxCommandNameLength = 128

// StatusClientClosedRequest is reported when the client goes away before the
// command is decoded. The response is never seen by the client; the status
// keeps the failure out of the server error class.
const StatusClientClosedRequest = 499

const (
	mediaTypePrefix = "application/vnd."
	mediaTypeSuffix = "+json"
)

// Types looks up command payload types by name.
// *command.Registry implements it.
type Types interface {
	Names() []string
	Unmarshal(name string, data []byte) (any, error)
}

// Config holds command decoding settings.
type Config struct {
	MaxBodyBytes int64
	PathParam    string
}

// Option configures the command decoder.
type Option func(*Config)

// WithMaxBodyBytes sets the maximum accepted body size.
func WithMaxBodyBytes(n int64) Option {
	return func(c *Config) {
		if n > 0 {
			c.MaxBodyBytes = n
		}
	}
}

// WithPathParam sets the path wildcard name holding the command id.
func WithPathParam(name string) Option {
	return func(c *Config) {
		if name != "" {
			c.PathParam = name
		}
	}
}

// Command creates a decoder for commands sent as
//
//	PUT /commands/{id}
//	Content-Type: application/vnd.<command name>+json
//
// The id must be a UUID. The media type selects the command type, matched
// case-insensitively against the registered names. Command names are limited
// to MaxCommandNameLength characters of [a-z0-9._-]; other media types are
// rejected with 415. Media types naming an unregistered command decode to a
// command without payload, which the dispatcher answers with 404. Requests
// without the id path value are not commands. A request whose context has
// already ended is reported as StatusClientClosedRequest (canceled) or 503
// (deadline exceeded).
//
// Example:
//
//	mux.Handle("PUT /commands/{id}", d.Handler(binder.Command(registry)))
func Command(types Types, opts ...Option) dispatch.Decoder {
	cfg := Config{
		MaxBodyBytes: DefaultMaxBodyBytes,
		PathParam:    DefaultPathParam,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	index := make(map[string]string)
	for _, name := range types.Names() {
		index[strings.ToLower(name)] = name
	}

	return func(r *http.Request) (command.Command, error) {
		rawID := r.PathValue(cfg.PathParam)
		if rawID == "" {
			return command.Command{}, dispatch.ErrNotCommand
		}

		if err := r.Context().Err(); err != nil {
			return command.Command{}, canceled(err)
		}

		id, err := uuid.Parse(rawID)
		if err != nil {
			return command.Command{}, problem.Wrap(
				fmt.Errorf("%w: %q", ErrInvalidCommandID, rawID),
				problem.New(http.StatusBadRequest).WithDetail("command id must be a UUID"),
			)
		}

		requested, err := commandName(r.Header.Get("Content-Type"))
		if err != nil {
			return command.Command{}, problem.Wrap(err,
				problem.New(http.StatusUnsupportedMediaType).
					WithDetail("expected content type "+mediaTypePrefix+"<command>"+mediaTypeSuffix),
			)
		}

		name, ok := index[strings.ToLower(requested)]
		if !ok {
			return command.Command{ID: id.String(), Name: requested}, nil
		}

		body, err := readBody(r.Body, cfg.MaxBodyBytes)
		if err != nil {
			return command.Command{}, err
		}

		payload, err := types.Unmarshal(name, body)
		if err != nil {
			return command.Command{}, problem.Wrap(
				fmt.Errorf("%w: %v", ErrInvalidBody, err),
				problem.New(http.StatusBadRequest).WithDetail("invalid command body"),
			)
		}

		return command.Command{ID: id.String(), Name: name, Payload: payload}, nil
	}
}

// commandName extracts the command name from a command media type.
func commandName(contentType string) (string, error) {
	if contentType == "" {
		return "", ErrMissingContentType
	}

	// Parameters such as charset are accepted and ignored
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUnsupportedMediaType, err)
	}

	name, ok := strings.CutPrefix(mediaType, mediaTypePrefix)
	if ok {
		name, ok = strings.CutSuffix(name, mediaTypeSuffix)
	}
	if !ok || !validCommandName(name) {
		return "", fmt.Errorf("%w: %.64q", ErrUnsupportedMediaType, mediaType)
	}
	return name, nil
}

// validCommandName accepts lowercase ASCII identifiers with dots, dashes and
// underscores, so an unknown name can be echoed back safely.
func validCommandName(name string) bool {
	if name == "" || len(name) > MaxCommandNameLength {
		return false
	}
	for _, c := range name {
		switch {
		case c >= 'a' && c <= 'z', c >= '0' && c <= '9', c == '.', c == '-', c == '_':
		default:
			return false
		}
	}
	return true
}

// canceled reports a request whose context ended before decoding.
func canceled(err error) error {
	d := problem.New(http.StatusServiceUnavailable).WithDetail("request deadline exceeded")
	if errors.Is(err, context.Canceled) {
		d = problem.New(StatusClientClosedRequest).
			WithTitle("Client Closed Request").
			WithDetail("request canceled by the client")
	}
	return problem.Wrap(err, d)
}

func readBody(body io.Reader, limit int64) ([]byte, error) {
	if body == nil {
		return nil, problem.Wrap(
			fmt.Errorf("%w: empty body", ErrInvalidBody),
			problem.New(http.StatusBadRequest).WithDetail("invalid command body"),
		)
	}

	// Read entire body with +1 byte to detect oversized requests efficiently
	data, err := io.ReadAll(io.LimitReader(body, limit+1))
	if err != nil {
		return nil, problem.Wrap(
			fmt.Errorf("%w: failed to read request body: %v", ErrInvalidBody, err),
			problem.New(http.StatusBadRequest).WithDetail("invalid command body"),
		)
	}

	if int64(len(data)) > limit {
		return nil, problem.Wrap(
			fmt.Errorf("%w: max %d bytes", ErrBodyTooLarge, limit),
			problem.New(http.StatusRequestEntityTooLarge).
				WithDetail(fmt.Sprintf("command body exceeds %d bytes", limit)),
		)
	}

	return data, nil
}

// ContentType returns the media type clients use to send the named command.
func ContentType(name string) string {
	return mediaTypePrefix + strings.ToLower(name) + mediaTypeSuffix
}

// NewRequest builds a client request sending cmd to baseURL.
// The command name is derived from the type of cmd.
//
// Example:
//
//	req, err := binder.NewRequest(ctx, "http://localhost:8080", uuid.New(), CreateUser{Email: "jane@example.com"})
func NewRequest(ctx context.Context, baseURL string, id uuid.UUID, cmd any) (*http.Request, error) {
	body, err := json.Marshal(cmd)
	if err != nil {
		return nil, fmt.Errorf("failed to encode command: %w", err)
	}

	target, err := url.JoinPath(baseURL, "commands", id.String())
	if err != nil {
		return nil, fmt.Errorf("invalid base url: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPut, target, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", ContentType(command.NameOf(cmd)))
	return req, nil
}
