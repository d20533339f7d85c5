package utils

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

// ErrEncodeResponse is returned by WriteJSON when data has no JSON form.
var ErrEncodeResponse = errors.New("cannot encode response")

// WriteJSON writes data as a JSON body with the given status code and
// returns the number of body bytes written.
//
// HTML characters are not escaped, so URL values stored in list items come
// back exactly as they were imported. On an encoding failure the client gets
// a plain 500 and nothing of data is sent.
func WriteJSON(w http.ResponseWriter, data any, statusCode int) (int, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(data); err != nil {
		http.Error(w, ErrEncodeResponse.Error(), http.StatusInternalServerError)
		return 0, fmt.Errorf("%w: %w", ErrEncodeResponse, err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.WriteHeader(statusCode)

	return w.Write(bytes.TrimSuffix(buf.Bytes(), []byte("\n")))
}
