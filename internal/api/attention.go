package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/homeweave/weave/internal/household"
)

// Headers consumed by attention resolution.
const (
	headerHouseholdRole  = "X-Household-Role"
	headerIdempotencyKey = "Idempotency-Key"
)

func handleCreateAttention(deps Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		body, ok := decodeObject(w, r)
		if !ok {
			return
		}

		runKey, ok := stringValue(body["run_key"])
		if !ok || runKey == "" {
			writeErrorCode(w, http.StatusBadRequest, "run_key_required")
			return
		}

		// Non-string type/message fall through as empty and fail the
		// store's own checks.
		typ, _ := stringValue(body["type"])
		message, _ := stringValue(body["message"])

		item, err := deps.State.CreateAttention(runKey, household.AttentionType(typ), message)
		if err != nil {
			writeDomainError(w, deps.Log, err)
			return
		}
		writeJSON(w, http.StatusCreated, map[string]any{"attention": item})
	}
}

func handleResolveAttention(deps Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		role, err := household.ParseRole(r.Header.Get(headerHouseholdRole))
		if err != nil {
			writeDomainError(w, deps.Log, err)
			return
		}

		idemKey := r.Header.Get(headerIdempotencyKey)
		item, _, err := deps.State.ResolveAttention(chi.URLParam(r, "id"), role, idemKey)
		if err != nil {
			writeDomainError(w, deps.Log, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"attention": item})
	}
}
