package api

import (
	"net/http"
	"strings"
	"testing"
)

func createRitual(t *testing.T, h http.Handler, body string) {
	t.Helper()
	rr := doReq(h, jsonReq(http.MethodPost, "/rituals", body))
	if rr.Code != http.StatusCreated {
		t.Fatalf("create ritual: status = %d; body = %s", rr.Code, rr.Body.String())
	}
}

func createRun(t *testing.T, h http.Handler, ritualKey, body string) map[string]any {
	t.Helper()
	rr := doReq(h, jsonReq(http.MethodPost, "/rituals/"+ritualKey+"/runs", body))
	if rr.Code != http.StatusCreated {
		t.Fatalf("create run: status = %d; body = %s", rr.Code, rr.Body.String())
	}
	run, ok := decodeBody(t, rr)["run"].(map[string]any)
	if !ok {
		t.Fatal("response missing run object")
	}
	return run
}

func TestCreateRunEndpoint_Planned(t *testing.T) {
	h, _ := setupHandler(t)
	createRitual(t, h, `{"ritual_key": "garden", "name": "Garden", "cadence": "weekly"}`)

	run := createRun(t, h, "garden", `{"run_key": "garden-w23"}`)
	if run["run_key"] != "garden-w23" {
		t.Errorf("run_key = %v, want garden-w23", run["run_key"])
	}
	if run["status"] != "planned" {
		t.Errorf("status = %v, want planned", run["status"])
	}
	if run["created_at"] != run["updated_at"] {
		t.Errorf("created_at %v != updated_at %v for a planned run", run["created_at"], run["updated_at"])
	}
	log, ok := run["activity_log"].([]any)
	if !ok || len(log) != 0 {
		t.Errorf("activity_log = %v, want empty array", run["activity_log"])
	}
}

// Mirrors the instant-run flow end to end: an instant ritual's run arrives
// already complete, with a branded derived key and a single completed
// trigger in the projection.
func TestInstantRunFlow(t *testing.T) {
	h, _ := setupHandler(t)
	createRitual(t, h, `{"ritual_key": "trash-day", "name": "Trash Day", "instant_runs": true}`)

	run := createRun(t, h, "trash-day", "")
	runKey, _ := run["run_key"].(string)
	if !strings.HasPrefix(runKey, "weave-run-trash-day-") {
		t.Errorf("run_key = %q, want weave-run-trash-day- prefix", runKey)
	}
	if run["status"] != "complete" {
		t.Errorf("status = %v, want complete", run["status"])
	}

	rr := doReq(h, jsonReq(http.MethodGet, "/runs/"+runKey, ""))
	if rr.Code != http.StatusOK {
		t.Fatalf("get run: status = %d; body = %s", rr.Code, rr.Body.String())
	}
	detail := decodeBody(t, rr)

	got := detail["run"].(map[string]any)
	if got["status"] != "complete" {
		t.Errorf("detail run status = %v, want complete", got["status"])
	}
	ritual := detail["ritual"].(map[string]any)
	if ritual["ritual_key"] != "trash-day" {
		t.Errorf("detail ritual = %v, want trash-day summary", ritual["ritual_key"])
	}
	items := detail["attention_items"].([]any)
	if len(items) != 0 {
		t.Errorf("attention_items = %v, want empty", items)
	}
	triggers := detail["next_triggers"].([]any)
	if len(triggers) != 1 {
		t.Fatalf("next_triggers has %d entries, want 1", len(triggers))
	}
	tr := triggers[0].(map[string]any)
	if tr["event"] != "on_run_complete" || tr["status"] != "complete" {
		t.Errorf("trigger = %v, want on_run_complete/complete", tr)
	}
}

func TestRunDetail_PlannedTriggers(t *testing.T) {
	h, _ := setupHandler(t)
	createRitual(t, h, `{"ritual_key": "garden", "name": "Garden"}`)
	run := createRun(t, h, "garden", "")
	runKey := run["run_key"].(string)

	rr := doReq(h, jsonReq(http.MethodGet, "/runs/"+runKey, ""))
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d", rr.Code)
	}
	triggers := decodeBody(t, rr)["next_triggers"].([]any)
	if len(triggers) != 3 {
		t.Fatalf("next_triggers has %d entries, want 3", len(triggers))
	}
	wantEvents := []string{"on_run_planned", "before_run_start", "on_run_start"}
	wantStates := []string{"active", "pending", "queued"}
	for i := range wantEvents {
		tr := triggers[i].(map[string]any)
		if tr["event"] != wantEvents[i] || tr["status"] != wantStates[i] {
			t.Errorf("triggers[%d] = %v, want %s/%s", i, tr, wantEvents[i], wantStates[i])
		}
	}
}

func TestCreateRun_Errors(t *testing.T) {
	h, _ := setupHandler(t)
	createRitual(t, h, `{"ritual_key": "garden", "name": "Garden"}`)
	createRun(t, h, "garden", `{"run_key": "taken"}`)

	rr := doReq(h, jsonReq(http.MethodPost, "/rituals/missing/runs", ""))
	if rr.Code != http.StatusNotFound || errorCode(t, rr) != "ritual_not_found" {
		t.Errorf("unknown ritual: status = %d, body = %s", rr.Code, rr.Body.String())
	}

	rr = doReq(h, jsonReq(http.MethodPost, "/rituals/garden/runs", `{"run_key": "taken"}`))
	if rr.Code != http.StatusConflict || errorCode(t, rr) != "run_already_exists" {
		t.Errorf("duplicate run key: status = %d, body = %s", rr.Code, rr.Body.String())
	}
}

func TestGetRun_NotFound(t *testing.T) {
	h, _ := setupHandler(t)

	rr := doReq(h, jsonReq(http.MethodGet, "/runs/missing", ""))
	if rr.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusNotFound)
	}
	if code := errorCode(t, rr); code != "run_not_found" {
		t.Errorf("error = %q, want run_not_found", code)
	}
}
