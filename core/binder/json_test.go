package binder_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/commandhttp/core/binder"
	"github.com/dmitrymomot/commandhttp/core/command"
	"github.com/dmitrymomot/commandhttp/core/dispatch"
	"github.com/dmitrymomot/commandhttp/core/problem"
)

type CreateUser struct {
	Email string
	Name  string
}

type DeleteUser struct {
	ID string
}

func newRegistry(t *testing.T, received chan<- any) *command.Registry {
	t.Helper()

	m := command.NewModule()
	require.NoError(t, command.For[CreateUser](m).Handle(func(cmd CreateUser) error {
		received <- cmd
		return nil
	}))
	require.NoError(t, command.For[*DeleteUser](m).Handle(func(cmd *DeleteUser) error {
		received <- cmd
		return nil
	}))
	return m.Build()
}

// decodeWithMux runs the decoder behind a ServeMux so path values are populated.
func decodeWithMux(t *testing.T, decode dispatch.Decoder, req *http.Request) (command.Command, error) {
	t.Helper()

	var (
		cmd command.Command
		err error
	)
	mux := http.NewServeMux()
	mux.HandleFunc("PUT /commands/{id}", func(w http.ResponseWriter, r *http.Request) {
		cmd, err = decode(r)
	})
	mux.ServeHTTP(httptest.NewRecorder(), req)
	return cmd, err
}

func newRequest(id, contentType, body string) *http.Request {
	req := httptest.NewRequest(http.MethodPut, "/commands/"+id, strings.NewReader(body))
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	return req
}

func statusOf(t *testing.T, err error) int {
	t.Helper()

	var perr *problem.Error
	require.True(t, errors.As(err, &perr), "expected a problem error, got %v", err)
	return perr.Status
}

func TestCommandDecoder(t *testing.T) {
	t.Parallel()

	received := make(chan any, 1)
	decode := binder.Command(newRegistry(t, received))
	id := uuid.New()

	t.Run("decodes value command", func(t *testing.T) {
		t.Parallel()

		cmd, err := decodeWithMux(t, decode, newRequest(id.String(), "application/vnd.createuser+json", `{"Email":"jane@example.com","Name":"Jane"}`))

		require.NoError(t, err)
		assert.Equal(t, id.String(), cmd.ID)
		assert.Equal(t, "CreateUser", cmd.Name)
		assert.Equal(t, CreateUser{Email: "jane@example.com", Name: "Jane"}, cmd.Payload)
	})

	t.Run("decodes pointer command", func(t *testing.T) {
		t.Parallel()

		cmd, err := decodeWithMux(t, decode, newRequest(id.String(), "application/vnd.deleteuser+json", `{"ID":"42"}`))

		require.NoError(t, err)
		assert.Equal(t, "DeleteUser", cmd.Name)
		assert.Equal(t, &DeleteUser{ID: "42"}, cmd.Payload)
	})

	t.Run("media type is case insensitive and ignores parameters", func(t *testing.T) {
		t.Parallel()

		cmd, err := decodeWithMux(t, decode, newRequest(id.String(), "Application/Vnd.CreateUser+JSON; charset=utf-8", `{}`))

		require.NoError(t, err)
		assert.Equal(t, "CreateUser", cmd.Name)
	})

	t.Run("unknown command passes through without payload", func(t *testing.T) {
		t.Parallel()

		cmd, err := decodeWithMux(t, decode, newRequest(id.String(), "application/vnd.renameuser+json", `{}`))

		require.NoError(t, err)
		assert.Equal(t, "renameuser", cmd.Name)
		assert.Nil(t, cmd.Payload)
	})

	t.Run("request without id is not a command", func(t *testing.T) {
		t.Parallel()

		_, err := decode(newRequest(id.String(), "application/vnd.createuser+json", `{}`))
		assert.ErrorIs(t, err, dispatch.ErrNotCommand)
	})

	tests := []struct {
		name        string
		id          string
		contentType string
		body        string
		wantErr     error
		wantStatus  int
	}{
		{
			name:        "invalid id",
			id:          "not-a-uuid",
			contentType: "application/vnd.createuser+json",
			body:        `{}`,
			wantErr:     binder.ErrInvalidCommandID,
			wantStatus:  http.StatusBadRequest,
		},
		{
			name:       "missing content type",
			id:         id.String(),
			body:       `{}`,
			wantErr:    binder.ErrMissingContentType,
			wantStatus: http.StatusUnsupportedMediaType,
		},
		{
			name:        "plain json",
			id:          id.String(),
			contentType: "application/json",
			body:        `{}`,
			wantErr:     binder.ErrUnsupportedMediaType,
			wantStatus:  http.StatusUnsupportedMediaType,
		},
		{
			name:        "vendor type without command",
			id:          id.String(),
			contentType: "application/vnd.+json",
			body:        `{}`,
			wantErr:     binder.ErrUnsupportedMediaType,
			wantStatus:  http.StatusUnsupportedMediaType,
		},
		{
			name:        "command name too long",
			id:          id.String(),
			contentType: "application/vnd." + strings.Repeat("a", binder.MaxCommandNameLength+1) + "+json",
			body:        `{}`,
			wantErr:     binder.ErrUnsupportedMediaType,
			wantStatus:  http.StatusUnsupportedMediaType,
		},
		{
			name:        "command name with markup",
			id:          id.String(),
			contentType: "application/vnd.<script>+json",
			body:        `{}`,
			wantErr:     binder.ErrUnsupportedMediaType,
			wantStatus:  http.StatusUnsupportedMediaType,
		},
		{
			name:        "malformed json",
			id:          id.String(),
			contentType: "application/vnd.createuser+json",
			body:        `{"Email":`,
			wantErr:     binder.ErrInvalidBody,
			wantStatus:  http.StatusBadRequest,
		},
		{
			name:        "wrong field type",
			id:          id.String(),
			contentType: "application/vnd.createuser+json",
			body:        `{"Email":42}`,
			wantErr:     binder.ErrInvalidBody,
			wantStatus:  http.StatusBadRequest,
		},
		{
			name:        "trailing data",
			id:          id.String(),
			contentType: "application/vnd.createuser+json",
			body:        `{} {}`,
			wantErr:     binder.ErrInvalidBody,
			wantStatus:  http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := decodeWithMux(t, decode, newRequest(tt.id, tt.contentType, tt.body))

			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Equal(t, tt.wantStatus, statusOf(t, err))
		})
	}

	t.Run("canceled request", func(t *testing.T) {
		t.Parallel()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		req := newRequest(id.String(), "application/vnd.createuser+json", `{}`).WithContext(ctx)

		_, err := decodeWithMux(t, decode, req)

		assert.ErrorIs(t, err, context.Canceled)
		assert.Equal(t, binder.StatusClientClosedRequest, statusOf(t, err))
	})

	t.Run("expired request deadline", func(t *testing.T) {
		t.Parallel()

		ctx, cancel := context.WithTimeout(context.Background(), 0)
		defer cancel()
		req := newRequest(id.String(), "application/vnd.createuser+json", `{}`).WithContext(ctx)

		_, err := decodeWithMux(t, decode, req)

		assert.ErrorIs(t, err, context.DeadlineExceeded)
		assert.Equal(t, http.StatusServiceUnavailable, statusOf(t, err))
	})

	t.Run("body size limit", func(t *testing.T) {
		t.Parallel()

		limited := binder.Command(newRegistry(t, make(chan any, 1)), binder.WithMaxBodyBytes(16))
		body := `{"Email":"` + strings.Repeat("a", 32) + `"}`

		_, err := decodeWithMux(t, limited, newRequest(id.String(), "application/vnd.createuser+json", body))

		assert.ErrorIs(t, err, binder.ErrBodyTooLarge)
		assert.Equal(t, http.StatusRequestEntityTooLarge, statusOf(t, err))
	})

	t.Run("custom path param", func(t *testing.T) {
		t.Parallel()

		custom := binder.Command(newRegistry(t, make(chan any, 1)), binder.WithPathParam("commandId"))

		var got command.Command
		mux := http.NewServeMux()
		mux.HandleFunc("PUT /api/{commandId}", func(w http.ResponseWriter, r *http.Request) {
			var err error
			got, err = custom(r)
			assert.NoError(t, err)
		})
		req := httptest.NewRequest(http.MethodPut, "/api/"+id.String(), strings.NewReader(`{}`))
		req.Header.Set("Content-Type", binder.ContentType("CreateUser"))
		mux.ServeHTTP(httptest.NewRecorder(), req)

		assert.Equal(t, "CreateUser", got.Name)
	})
}

func TestContentType(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "application/vnd.createuser+json", binder.ContentType("CreateUser"))
}

func TestNewRequest(t *testing.T) {
	t.Parallel()

	id := uuid.New()
	req, err := binder.NewRequest(context.Background(), "http://localhost:8080/", id, CreateUser{Email: "jane@example.com"})
	require.NoError(t, err)

	assert.Equal(t, http.MethodPut, req.Method)
	assert.Equal(t, "http://localhost:8080/commands/"+id.String(), req.URL.String())
	assert.Equal(t, "application/vnd.createuser+json", req.Header.Get("Content-Type"))

	body, err := io.ReadAll(req.Body)
	require.NoError(t, err)
	assert.JSONEq(t, `{"Email":"jane@example.com","Name":""}`, string(body))
}

// TestEndToEnd sends commands through a real server using the client helpers.
func TestEndToEnd(t *testing.T) {
	t.Parallel()

	received := make(chan any, 1)
	registry := newRegistry(t, received)

	settings, err := dispatch.NewSettings(registry, dispatch.WithLogger(slog.New(slog.DiscardHandler)))
	require.NoError(t, err)
	d, err := dispatch.New(settings)
	require.NoError(t, err)

	mux := http.NewServeMux()
	mux.Handle("PUT /commands/{id}", d.Handler(binder.Command(registry)))
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)

	t.Run("accepted command", func(t *testing.T) {
		req, err := binder.NewRequest(context.Background(), srv.URL, uuid.New(), CreateUser{Email: "jane@example.com"})
		require.NoError(t, err)

		resp, err := srv.Client().Do(req)
		require.NoError(t, err)
		defer resp.Body.Close()

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, CreateUser{Email: "jane@example.com"}, <-received)
	})

	t.Run("unknown command", func(t *testing.T) {
		type RenameUser struct{ Name string }

		req, err := binder.NewRequest(context.Background(), srv.URL, uuid.New(), RenameUser{Name: "x"})
		require.NoError(t, err)

		resp, err := srv.Client().Do(req)
		require.NoError(t, err)
		defer resp.Body.Close()

		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
		assert.Equal(t, problem.ContentType, resp.Header.Get("Content-Type"))

		var body map[string]any
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		assert.Equal(t, "no handler registered for command renameuser", body["detail"])
	})

	t.Run("bad id", func(t *testing.T) {
		req, err := http.NewRequest(http.MethodPut, srv.URL+"/commands/42", strings.NewReader(`{}`))
		require.NoError(t, err)
		req.Header.Set("Content-Type", binder.ContentType("CreateUser"))

		resp, err := srv.Client().Do(req)
		require.NoError(t, err)
		defer resp.Body.Close()

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})
}
