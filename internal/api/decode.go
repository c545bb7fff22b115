package api

import (
	"encoding/json"
	"io"
	"net/http"
	"strings"
)

// decodeObject reads the request body as a JSON object. An empty body is
// treated as an empty object so bodyless POSTs (run creation, resolution)
// work. On failure it writes the 400 response itself and returns ok=false.
func decodeObject(w http.ResponseWriter, r *http.Request) (map[string]any, bool) {
	r.Body = http.MaxBytesReader(w, r.Body, maxRequestBodySize)
	defer r.Body.Close()

	data, err := io.ReadAll(r.Body)
	if err != nil {
		writeErrorCode(w, http.StatusBadRequest, "invalid_request_body")
		return nil, false
	}
	if strings.TrimSpace(string(data)) == "" {
		return map[string]any{}, true
	}

	var obj map[string]any
	if err := json.Unmarshal(data, &obj); err != nil {
		writeErrorCode(w, http.StatusBadRequest, "invalid_request_body")
		return nil, false
	}
	return obj, true
}

// stringValue returns v as a string. ok is false when v is absent, null, or
// not a string.
func stringValue(v any) (string, bool) {
	s, ok := v.(string)
	return s, ok
}

// optionalString returns a pointer to v when it is a present, non-null
// string. The second result is false when v is present but not a string.
func optionalString(v any, present bool) (*string, bool) {
	if !present || v == nil {
		return nil, true
	}
	s, ok := v.(string)
	if !ok {
		return nil, false
	}
	return &s, true
}
