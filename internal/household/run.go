package household

// runKeyPrefix brands derived run keys.
const runKeyPrefix = "weave-run-"

// CreateRun creates a run under the ritual identified by ritualKey. When
// runKey is empty a key is derived from the ritual key and the creation
// timestamp. Rituals with instant runs skip planned/in_progress entirely
// and the run is stored already complete.
func (s *State) CreateRun(ritualKey, runKey string) (*Run, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ritual, ok := s.rituals[ritualKey]
	if !ok {
		return nil, ErrRitualNotFound
	}

	created := s.timestamp()
	key := runKey
	if key == "" {
		key = runKeyPrefix + ritualKey + "-" + created.String()
	}
	if _, exists := s.runs[key]; exists {
		return nil, ErrRunExists
	}

	run := &Run{
		RunKey:      key,
		RitualKey:   ritualKey,
		Status:      RunPlanned,
		CreatedAt:   created,
		UpdatedAt:   created,
		Inputs:      cloneInputs(ritual.Inputs),
		ActivityLog: []ActivityEntry{},
	}

	completedImmediately := false
	if ritual.InstantRuns {
		run.Status = RunComplete
		run.UpdatedAt = s.timestamp()
		completedImmediately = true
	}

	ritual.Runs = append(ritual.Runs, run)
	ritual.UpdatedAt = run.UpdatedAt
	s.runs[key] = run

	s.log.Info("run created",
		"event", "run.created",
		"run_id", run.RunKey,
		"ritual_id", ritual.RitualKey,
		"status", run.Status,
		"instant_run", ritual.InstantRuns,
		"completed_immediately", completedImmediately,
	)
	return cloneRun(run), nil
}

// Run returns a deep snapshot of the run for key.
func (s *State) Run(key string) (*Run, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	run, ok := s.runs[key]
	if !ok {
		return nil, ErrRunNotFound
	}
	return cloneRun(run), nil
}

// RunDetail returns the run together with its owning ritual summary, its
// attention items (newest first) and the derived next triggers, all read
// under one lock so the views are consistent with each other.
func (s *State) RunDetail(key string) (*RunDetail, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	run, ok := s.runs[key]
	if !ok {
		return nil, ErrRunNotFound
	}

	detail := &RunDetail{
		Run:            cloneRun(run),
		AttentionItems: s.attentionForRunLocked(key),
		NextTriggers:   BuildNextTriggers(run),
	}
	if ritual, ok := s.rituals[run.RitualKey]; ok {
		detail.Ritual = RitualSummary{
			RitualKey:   ritual.RitualKey,
			Name:        ritual.Name,
			InstantRuns: ritual.InstantRuns,
		}
		if ritual.Cadence != nil {
			c := *ritual.Cadence
			detail.Ritual.Cadence = &c
		}
	}
	return detail, nil
}
