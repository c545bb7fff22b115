package api

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/homeweave/weave/internal/household"
)

const maxRequestBodySize = 1 << 20 // 1MB

// Deps bundles everything the HTTP surface needs. The state is injected,
// never global, so tests run against isolated instances.
type Deps struct {
	State     *household.State
	PublicDir string
	Log       *slog.Logger
}

// NewHandler returns the weave HTTP handler: the JSON API plus static asset
// serving for everything the API does not claim.
func NewHandler(deps Deps) http.Handler {
	if deps.Log == nil {
		deps.Log = slog.Default()
	}

	r := chi.NewRouter()
	r.Use(recoverer(deps.Log))

	r.Get("/health", handleHealth)

	r.Post("/rituals", handleCreateRitual(deps))
	r.Get("/rituals", handleListRituals(deps))
	r.Get("/rituals/{key}", handleGetRitual(deps))
	r.Post("/rituals/{key}/runs", handleCreateRun(deps))

	r.Get("/runs/{key}", handleGetRun(deps))
	r.Get("/runs/{key}/attention", handleListAttention(deps))
	r.Get("/runs/{key}/artifacts", handleNotImplemented)

	r.Post("/attention", handleCreateAttention(deps))
	r.Post("/attention/{id}/resolve", handleResolveAttention(deps))

	r.Post("/automations", handleCreateAutomation(deps))
	r.Post("/invocations/request", handleRequestInvocation(deps))
	r.Post("/artifacts", handleNotImplemented)

	r.NotFound(handleStaticOrNotFound(deps))

	return r
}

func handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(`{"status":"ok"}`))
}

// handleNotImplemented marks routes that are reserved but deliberately
// unbuilt (artifacts), as opposed to failures.
func handleNotImplemented(w http.ResponseWriter, r *http.Request) {
	writeErrorCode(w, http.StatusNotImplemented, "not_implemented")
}

// recoverer converts a panicking handler into the generic 500 envelope.
func recoverer(log *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rec := recover(); rec != nil {
					log.Error("panic in handler", "method", r.Method, "path", r.URL.Path, "panic", rec)
					writeInternalError(w)
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}

// domainErrorCode maps a store error to its HTTP status and snake_case code.
var domainErrorCodes = []struct {
	err    error
	status int
	code   string
}{
	{household.ErrRitualNotFound, http.StatusNotFound, "ritual_not_found"},
	{household.ErrRitualExists, http.StatusConflict, "ritual_already_exists"},
	{household.ErrRunNotFound, http.StatusNotFound, "run_not_found"},
	{household.ErrRunExists, http.StatusConflict, "run_already_exists"},
	{household.ErrAttentionNotFound, http.StatusNotFound, "attention_item_not_found"},
	{household.ErrAttentionResolved, http.StatusConflict, "attention_already_resolved"},
	{household.ErrForbiddenRole, http.StatusForbidden, "forbidden_for_role"},
	{household.ErrRoleRequired, http.StatusBadRequest, "household_role_required"},
	{household.ErrInvalidRole, http.StatusBadRequest, "invalid_household_role"},
	{household.ErrNameRequired, http.StatusBadRequest, "name_required"},
	{household.ErrUnsupportedInputType, http.StatusBadRequest, "unsupported_input_type"},
	{household.ErrInputValueRequired, http.StatusBadRequest, "input_value_required"},
	{household.ErrInvalidAttentionType, http.StatusBadRequest, "invalid_attention_type"},
	{household.ErrMessageRequired, http.StatusBadRequest, "message_required"},
	{household.ErrInvalidTrigger, http.StatusBadRequest, "invalid_trigger_type"},
	{household.ErrCapabilityRequired, http.StatusBadRequest, "capability_id_required"},
	{household.ErrPayloadTemplateRequired, http.StatusBadRequest, "payload_template_must_be_object"},
}

func writeDomainError(w http.ResponseWriter, log *slog.Logger, err error) {
	for _, m := range domainErrorCodes {
		if errors.Is(err, m.err) {
			writeErrorCode(w, m.status, m.code)
			return
		}
	}
	log.Error("unexpected store error", "error", err)
	writeInternalError(w)
}
