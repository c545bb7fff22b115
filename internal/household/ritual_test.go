package household

import (
	"errors"
	"testing"
	"time"
)

func newTestState(t *testing.T) *State {
	t.Helper()
	return NewState(nil)
}

// setClock pins the state's clock to a fixed instant.
func setClock(s *State, at time.Time) {
	s.now = func() time.Time { return at }
}

func mustCreateRitual(t *testing.T, s *State, p RitualParams) *Ritual {
	t.Helper()
	ritual, err := s.CreateRitual(p)
	if err != nil {
		t.Fatalf("CreateRitual(%q) failed: %v", p.Key, err)
	}
	return ritual
}

func TestCreateRitual(t *testing.T) {
	s := newTestState(t)
	setClock(s, time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC))

	cadence := "Fridays 7am"
	inputs := []Input{{Type: InputTypeExternalLink, Value: "https://city.local/trash", Label: "City schedule"}}
	ritual := mustCreateRitual(t, s, RitualParams{
		Key:         "trash-day",
		Name:        "Trash Day",
		InstantRuns: true,
		Cadence:     &cadence,
		Inputs:      inputs,
	})

	if ritual.RitualKey != "trash-day" {
		t.Errorf("RitualKey = %q, want %q", ritual.RitualKey, "trash-day")
	}
	if !ritual.InstantRuns {
		t.Error("InstantRuns = false, want true")
	}
	if ritual.Cadence == nil || *ritual.Cadence != cadence {
		t.Errorf("Cadence = %v, want %q", ritual.Cadence, cadence)
	}
	if got := ritual.CreatedAt.String(); got != "2024-06-01T12:00:00.000Z" {
		t.Errorf("CreatedAt = %q, want %q", got, "2024-06-01T12:00:00.000Z")
	}
	if !ritual.CreatedAt.Equal(ritual.UpdatedAt.Time) {
		t.Errorf("UpdatedAt = %v, want CreatedAt %v", ritual.UpdatedAt, ritual.CreatedAt)
	}
	if len(ritual.Runs) != 0 {
		t.Errorf("Runs has %d entries, want 0", len(ritual.Runs))
	}

	// The caller's slice must not alias stored state.
	inputs[0].Value = "https://city.local/recycling"
	stored, err := s.Ritual("trash-day")
	if err != nil {
		t.Fatalf("Ritual() failed: %v", err)
	}
	if stored.Inputs[0].Value != "https://city.local/trash" {
		t.Errorf("stored input value = %q after caller mutation, want original", stored.Inputs[0].Value)
	}
}

func TestCreateRitual_DuplicateKey(t *testing.T) {
	s := newTestState(t)
	mustCreateRitual(t, s, RitualParams{Key: "laundry", Name: "Laundry"})

	_, err := s.CreateRitual(RitualParams{Key: "laundry", Name: "Laundry again"})
	if !errors.Is(err, ErrRitualExists) {
		t.Fatalf("err = %v, want ErrRitualExists", err)
	}
}

func TestCreateRitual_Validation(t *testing.T) {
	tests := []struct {
		name    string
		params  RitualParams
		wantErr error
	}{
		{
			name:    "empty name",
			params:  RitualParams{Key: "r1"},
			wantErr: ErrNameRequired,
		},
		{
			name: "unsupported input type",
			params: RitualParams{
				Key: "r2", Name: "R2",
				Inputs: []Input{{Type: "attachment", Value: "x"}},
			},
			wantErr: ErrUnsupportedInputType,
		},
		{
			name: "empty input value",
			params: RitualParams{
				Key: "r3", Name: "R3",
				Inputs: []Input{{Type: InputTypeExternalLink, Value: ""}},
			},
			wantErr: ErrInputValueRequired,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestState(t)
			_, err := s.CreateRitual(tt.params)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("err = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestRituals_PreservesStoreOrder(t *testing.T) {
	s := newTestState(t)
	keys := []string{"c-ritual", "a-ritual", "b-ritual"}
	for _, key := range keys {
		mustCreateRitual(t, s, RitualParams{Key: key, Name: key})
	}

	rituals := s.Rituals()
	if len(rituals) != len(keys) {
		t.Fatalf("len = %d, want %d", len(rituals), len(keys))
	}
	for i, key := range keys {
		if rituals[i].RitualKey != key {
			t.Errorf("rituals[%d] = %q, want %q", i, rituals[i].RitualKey, key)
		}
	}
}

func TestRitual_SnapshotsDoNotAliasStore(t *testing.T) {
	s := newTestState(t)
	mustCreateRitual(t, s, RitualParams{
		Key: "weekly-review", Name: "Weekly Review",
		Inputs: []Input{{Type: InputTypeExternalLink, Value: "https://family.local/plan"}},
	})
	if _, err := s.CreateRun("weekly-review", "run-123"); err != nil {
		t.Fatalf("CreateRun failed: %v", err)
	}

	snapshot, err := s.Ritual("weekly-review")
	if err != nil {
		t.Fatalf("Ritual() failed: %v", err)
	}
	snapshot.Inputs[0].Value = "https://changed.local"
	snapshot.Runs[0].Status = RunComplete
	snapshot.Runs[0].Inputs[0].Value = "https://altered.local"

	stored, _ := s.Ritual("weekly-review")
	if stored.Inputs[0].Value != "https://family.local/plan" {
		t.Errorf("stored input = %q, want original", stored.Inputs[0].Value)
	}
	if stored.Runs[0].Status != RunPlanned {
		t.Errorf("stored run status = %q, want planned", stored.Runs[0].Status)
	}
	if stored.Runs[0].Inputs[0].Value != "https://family.local/plan" {
		t.Errorf("stored run input = %q, want original", stored.Runs[0].Inputs[0].Value)
	}
}

func TestRitual_NotFound(t *testing.T) {
	s := newTestState(t)
	if _, err := s.Ritual("nope"); !errors.Is(err, ErrRitualNotFound) {
		t.Fatalf("err = %v, want ErrRitualNotFound", err)
	}
}
