package api

import (
	"net/http"

	"github.com/google/uuid"
)

// invocationURLBase is where a real capability gateway would host
// invocations. The endpoint is a mock: it mints identifiers and returns a
// pending handle without calling anything.
const invocationURLBase = "https://capabilities.weave.local/invocations/"

func handleRequestInvocation(deps Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		body, ok := decodeObject(w, r)
		if !ok {
			return
		}

		capabilityID, ok := stringValue(body["capability_id"])
		if !ok || capabilityID == "" {
			writeErrorCode(w, http.StatusBadRequest, "capability_id_required")
			return
		}

		payloadRaw, present := body["payload"]
		if !present || payloadRaw == nil {
			writeErrorCode(w, http.StatusBadRequest, "payload_must_be_object")
			return
		}
		if _, ok := payloadRaw.(map[string]any); !ok {
			writeErrorCode(w, http.StatusBadRequest, "payload_must_be_object")
			return
		}

		invocationID := uuid.New().String()
		writeJSON(w, http.StatusOK, map[string]any{
			"invocation_id":   invocationID,
			"invocation_url":  invocationURLBase + invocationID,
			"idempotency_key": uuid.New().String(),
			"capability_id":   capabilityID,
			"status":          "pending",
		})
	}
}
