package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

func handleCreateRun(deps Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		body, ok := decodeObject(w, r)
		if !ok {
			return
		}

		// Callers may pin a run key; otherwise one is derived from the
		// ritual key and creation time.
		runKey, _ := stringValue(body["run_key"])

		run, err := deps.State.CreateRun(chi.URLParam(r, "key"), runKey)
		if err != nil {
			writeDomainError(w, deps.Log, err)
			return
		}
		writeJSON(w, http.StatusCreated, map[string]any{"run": run})
	}
}

func handleGetRun(deps Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		detail, err := deps.State.RunDetail(chi.URLParam(r, "key"))
		if err != nil {
			writeDomainError(w, deps.Log, err)
			return
		}
		writeJSON(w, http.StatusOK, detail)
	}
}

func handleListAttention(deps Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := deps.State.AttentionForRun(chi.URLParam(r, "key"))
		if err != nil {
			writeDomainError(w, deps.Log, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"attention_items": items})
	}
}
