package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/homeweave/weave/internal/household"
)

func handleCreateRitual(deps Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		body, ok := decodeObject(w, r)
		if !ok {
			return
		}

		key, ok := stringValue(body["ritual_key"])
		if !ok || key == "" {
			writeErrorCode(w, http.StatusBadRequest, "ritual_key_required")
			return
		}

		// A non-string name falls through as empty and fails the
		// name check in the store.
		name, _ := stringValue(body["name"])

		instantRuns := false
		if v, present := body["instant_runs"]; present && v != nil {
			b, ok := v.(bool)
			if !ok {
				writeErrorCode(w, http.StatusBadRequest, "instant_runs_must_be_boolean")
				return
			}
			instantRuns = b
		}

		cadenceRaw, cadencePresent := body["cadence"]
		cadence, ok := optionalString(cadenceRaw, cadencePresent)
		if !ok {
			writeErrorCode(w, http.StatusBadRequest, "cadence_must_be_string")
			return
		}

		inputs, code := parseInputs(body["inputs"])
		if code != "" {
			writeErrorCode(w, http.StatusBadRequest, code)
			return
		}

		ritual, err := deps.State.CreateRitual(household.RitualParams{
			Key:         key,
			Name:        name,
			InstantRuns: instantRuns,
			Cadence:     cadence,
			Inputs:      inputs,
		})
		if err != nil {
			writeDomainError(w, deps.Log, err)
			return
		}
		writeJSON(w, http.StatusCreated, map[string]any{"ritual": ritual})
	}
}

// parseInputs validates the raw inputs value and converts it to typed
// entries. Returns a non-empty error code on the first malformed element.
// Semantic checks (supported type, non-empty value) stay in the store.
func parseInputs(v any) ([]household.Input, string) {
	if v == nil {
		return []household.Input{}, ""
	}
	list, ok := v.([]any)
	if !ok {
		return nil, "inputs_must_be_array"
	}

	inputs := make([]household.Input, 0, len(list))
	for _, entry := range list {
		obj, ok := entry.(map[string]any)
		if !ok {
			return nil, "invalid_input_entry"
		}

		typ, ok := stringValue(obj["type"])
		if !ok {
			return nil, "invalid_input_entry"
		}

		valueRaw, present := obj["value"]
		if !present || valueRaw == nil {
			return nil, "input_value_required"
		}
		value, ok := stringValue(valueRaw)
		if !ok {
			return nil, "invalid_input_entry"
		}

		label, ok := optionalString(obj["label"], true)
		if !ok {
			return nil, "invalid_input_entry"
		}

		in := household.Input{Type: typ, Value: value}
		if label != nil {
			in.Label = *label
		}
		inputs = append(inputs, in)
	}
	return inputs, ""
}

func handleListRituals(deps Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{"rituals": deps.State.Rituals()})
	}
}

func handleGetRitual(deps Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ritual, err := deps.State.Ritual(chi.URLParam(r, "key"))
		if err != nil {
			writeDomainError(w, deps.Log, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"ritual": ritual})
	}
}
