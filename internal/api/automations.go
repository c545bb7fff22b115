package api

import (
	"net/http"

	"github.com/homeweave/weave/internal/household"
)

func handleCreateAutomation(deps Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		// Replay wins before any validation: a retried request returns
		// the frozen first response even if its body is now malformed.
		idemKey := r.Header.Get(headerIdempotencyKey)
		if idemKey != "" {
			if automation, ok := deps.State.ReplayedAutomation(idemKey); ok {
				writeJSON(w, http.StatusCreated, map[string]any{"automation": automation})
				return
			}
		}

		body, ok := decodeObject(w, r)
		if !ok {
			return
		}

		ritualKey, _ := stringValue(body["ritual_key"])
		trigger, _ := stringValue(body["trigger"])

		callRaw, present := body["call"]
		if !present || callRaw == nil {
			writeErrorCode(w, http.StatusBadRequest, "call_required")
			return
		}
		callObj, ok := callRaw.(map[string]any)
		if !ok {
			writeErrorCode(w, http.StatusBadRequest, "call_required")
			return
		}

		capabilityID, _ := stringValue(callObj["capability_id"])

		// payload_template must be a plain JSON object; arrays and
		// scalars are rejected.
		templateRaw, present := callObj["payload_template"]
		if !present || templateRaw == nil {
			writeErrorCode(w, http.StatusBadRequest, "payload_template_must_be_object")
			return
		}
		template, ok := templateRaw.(map[string]any)
		if !ok {
			writeErrorCode(w, http.StatusBadRequest, "payload_template_must_be_object")
			return
		}

		connectionID, _ := stringValue(callObj["connection_id"])
		targetID, _ := stringValue(callObj["target_id"])

		automation, _, err := deps.State.CreateAutomation(household.AutomationParams{
			RitualKey: ritualKey,
			Trigger:   household.TriggerType(trigger),
			Call: household.CapabilityCall{
				CapabilityID:    capabilityID,
				PayloadTemplate: template,
				ConnectionID:    connectionID,
				TargetID:        targetID,
			},
		}, idemKey)
		if err != nil {
			writeDomainError(w, deps.Log, err)
			return
		}
		writeJSON(w, http.StatusCreated, map[string]any{"automation": automation})
	}
}
