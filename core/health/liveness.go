package health

import (
	"io"
	"net/http"
)

// Liveness reports that the process is running. It performs no dependency checks.
func Liveness(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = io.WriteString(w, "ALIVE")
}

// NoContent returns 204 for minimal overhead probes.
func NoContent(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusNoContent)
}
