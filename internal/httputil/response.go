package httputil

import (
	"bytes"
	"encoding/json"
	"net/http"
)

// errorBody is the contractual shape of 400/404 responses:
// {"error":{"message":"..."}}. 500-class responses reuse it but callers
// should not rely on the body beyond the status code.
type errorBody struct {
	Error errorMessage `json:"error"`
}

type errorMessage struct {
	Message string `json:"message"`
}

// RespondJSON writes a JSON response with the given status code.
// It encodes into a buffer first so an encoding failure cannot produce a
// partial response after headers are sent. HTML escaping is disabled: the
// sanitizer already escaped markup-significant characters, and re-encoding
// them as \uXXXX sequences would obscure the contract.
func RespondJSON(w http.ResponseWriter, status int, data interface{}) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(data); err != nil {
		RespondError(w, http.StatusInternalServerError, "failed to encode response")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(buf.Bytes())
}

// RespondError writes a structured error response with a single
// error.message string.
func RespondError(w http.ResponseWriter, status int, message string) {
	payload, err := json.Marshal(errorBody{Error: errorMessage{Message: message}})
	if err != nil {
		w.Header().Set("Content-Type", "text/plain")
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte("internal server error"))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(payload)
}
