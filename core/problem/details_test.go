package problem_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/commandhttp/core/problem"
)

func TestDetailsWire(t *testing.T) {
	t.Parallel()

	t.Run("omits empty optional members", func(t *testing.T) {
		t.Parallel()

		wire := problem.Details{Status: http.StatusBadRequest}.Wire()

		assert.Equal(t, map[string]any{"status": http.StatusBadRequest}, wire)
	})

	t.Run("includes all standard members", func(t *testing.T) {
		t.Parallel()

		d := problem.Details{
			Status:   http.StatusBadRequest,
			Type:     "http://localhost/type",
			Title:    "Jimmies Rustled",
			Detail:   "You done goof'd",
			Instance: "http://localhost/errors/1",
		}

		assert.Equal(t, map[string]any{
			"status":   http.StatusBadRequest,
			"type":     "http://localhost/type",
			"title":    "Jimmies Rustled",
			"detail":   "You done goof'd",
			"instance": "http://localhost/errors/1",
		}, d.Wire())
	})

	t.Run("merges extensions at the top level", func(t *testing.T) {
		t.Parallel()

		d := problem.New(http.StatusBadRequest).With("extension", "Some more data")

		wire := d.Wire()
		assert.Equal(t, "Some more data", wire["extension"])
		assert.Equal(t, http.StatusBadRequest, wire["status"])
		assert.Equal(t, "Bad Request", wire["title"])
		assert.NotContains(t, wire, "extensions")
	})

	t.Run("extensions cannot override standard members", func(t *testing.T) {
		t.Parallel()

		d := problem.Details{
			Status:     http.StatusConflict,
			Extensions: map[string]any{"status": 200, "title": "hijacked"},
		}

		wire := d.Wire()
		assert.Equal(t, http.StatusConflict, wire["status"])
		assert.NotContains(t, wire, "title")
		assert.False(t, d.Extended())
	})
}

func TestDetailsJSON(t *testing.T) {
	t.Parallel()

	t.Run("serializes a flat object", func(t *testing.T) {
		t.Parallel()

		d := problem.New(http.StatusBadRequest).
			WithType("http://localhost/type").
			WithDetail("You done goof'd").
			With("extension", "Some more data")

		data, err := json.Marshal(d)
		require.NoError(t, err)

		assert.JSONEq(t, `{
			"status": 400,
			"type": "http://localhost/type",
			"title": "Bad Request",
			"detail": "You done goof'd",
			"extension": "Some more data"
		}`, string(data))
	})

	t.Run("decodes unknown members into extensions", func(t *testing.T) {
		t.Parallel()

		var d problem.Details
		err := json.Unmarshal([]byte(`{"status":409,"title":"Conflict","balance":30,"accounts":["a","b"]}`), &d)
		require.NoError(t, err)

		assert.Equal(t, http.StatusConflict, d.Status)
		assert.Equal(t, "Conflict", d.Title)
		assert.Equal(t, float64(30), d.Extensions["balance"])
		assert.Equal(t, []any{"a", "b"}, d.Extensions["accounts"])
		assert.True(t, d.Extended())
	})

	t.Run("rejects non-numeric status", func(t *testing.T) {
		t.Parallel()

		var d problem.Details
		err := json.Unmarshal([]byte(`{"status":"400"}`), &d)
		assert.ErrorIs(t, err, problem.ErrInvalidDocument)
	})
}

func TestDetailsWith(t *testing.T) {
	t.Parallel()

	base := problem.New(http.StatusBadRequest).With("a", 1)
	derived := base.With("b", 2)

	assert.Equal(t, map[string]any{"a": 1}, base.Extensions)
	assert.Equal(t, map[string]any{"a": 1, "b": 2}, derived.Extensions)
}

func TestDetailsValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		status  int
		wantErr bool
	}{
		{name: "unset", status: 0, wantErr: true},
		{name: "below range", status: 99, wantErr: true},
		{name: "lower bound", status: 100},
		{name: "bad request", status: http.StatusBadRequest},
		{name: "upper bound", status: 599},
		{name: "above range", status: 600, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := problem.Details{Status: tt.status}.Validate()
			if tt.wantErr {
				assert.ErrorIs(t, err, problem.ErrInvalidStatus)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestDetailsWithDefaults(t *testing.T) {
	t.Parallel()

	t.Run("fills unset status and title", func(t *testing.T) {
		t.Parallel()

		d := problem.Details{}.WithDefaults(http.StatusInternalServerError)

		assert.Equal(t, http.StatusInternalServerError, d.Status)
		assert.Equal(t, "Internal Server Error", d.Title)
	})

	t.Run("keeps explicit values", func(t *testing.T) {
		t.Parallel()

		d := problem.Details{Status: http.StatusBadRequest, Title: "X"}.WithDefaults(http.StatusInternalServerError)

		assert.Equal(t, http.StatusBadRequest, d.Status)
		assert.Equal(t, "X", d.Title)
	})

	t.Run("does not invent a title for typed problems", func(t *testing.T) {
		t.Parallel()

		d := problem.Details{Type: "urn:problem:custom"}.WithDefaults(http.StatusBadRequest)

		assert.Equal(t, http.StatusBadRequest, d.Status)
		assert.Empty(t, d.Title)
	})
}

func TestWrite(t *testing.T) {
	t.Parallel()

	w := httptest.NewRecorder()
	err := problem.Write(w, problem.New(http.StatusNotFound).WithDetail("no such thing"))
	require.NoError(t, err)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, problem.ContentType, w.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"status":404,"title":"Not Found","detail":"no such thing"}`, w.Body.String())
}

func TestWriteUnencodableExtension(t *testing.T) {
	t.Parallel()

	w := httptest.NewRecorder()
	err := problem.Write(w, problem.New(http.StatusBadRequest).
		WithDetail("bad input").
		With("callback", func() {}))
	assert.ErrorIs(t, err, problem.ErrEncodeDocument)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, problem.ContentType, w.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"status":400,"title":"Bad Request","detail":"bad input"}`, w.Body.String())
}
