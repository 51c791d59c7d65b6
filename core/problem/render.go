package problem

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// ContentType is the media type of a JSON problem document.
const ContentType = "application/problem+json"

// Write renders the problem document as the HTTP response.
// An unset or invalid status is written as 500.
//
// The document is encoded before anything is sent. If the extensions cannot be
// encoded, the standard members are written without them and the encoding
// error is returned wrapped in ErrEncodeDocument.
func Write(w http.ResponseWriter, d Details) error {
	d = d.WithDefaults(http.StatusInternalServerError)

	body, encErr := json.Marshal(d)
	if encErr != nil {
		d.Extensions = nil
		var err error
		if body, err = json.Marshal(d); err != nil {
			return fmt.Errorf("%w: %v", ErrEncodeDocument, err)
		}
		encErr = fmt.Errorf("%w: %v", ErrEncodeDocument, encErr)
	}

	w.Header().Set("Content-Type", ContentType)
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.WriteHeader(d.Status)

	if _, err := w.Write(append(body, '\n')); err != nil {
		return err
	}
	return encErr
}
