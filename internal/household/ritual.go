package household

// RitualParams carries the validated request fields for ritual creation.
type RitualParams struct {
	Key         string
	Name        string
	InstantRuns bool
	Cadence     *string
	Inputs      []Input
}

// CreateRitual stores a new ritual and returns a snapshot of it. The key
// must be unused; inputs are deep-cloned so the caller's slice cannot alias
// stored state.
func (s *State) CreateRitual(p RitualParams) (*Ritual, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if p.Name == "" {
		return nil, ErrNameRequired
	}
	for _, in := range p.Inputs {
		if in.Type != InputTypeExternalLink {
			return nil, ErrUnsupportedInputType
		}
		if in.Value == "" {
			return nil, ErrInputValueRequired
		}
	}
	if _, ok := s.rituals[p.Key]; ok {
		return nil, ErrRitualExists
	}

	now := s.timestamp()
	ritual := &Ritual{
		RitualKey:   p.Key,
		Name:        p.Name,
		InstantRuns: p.InstantRuns,
		Cadence:     p.Cadence,
		Inputs:      cloneInputs(p.Inputs),
		CreatedAt:   now,
		UpdatedAt:   now,
		Runs:        []*Run{},
	}
	s.rituals[p.Key] = ritual
	s.ritualOrder = append(s.ritualOrder, p.Key)

	s.log.Info("ritual created",
		"event", "ritual.created",
		"ritual_id", ritual.RitualKey,
		"instant_runs", ritual.InstantRuns,
	)
	return cloneRitual(ritual), nil
}

// Ritual returns a deep snapshot of the ritual for key, including its runs.
func (s *State) Ritual(key string) (*Ritual, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ritual, ok := s.rituals[key]
	if !ok {
		return nil, ErrRitualNotFound
	}
	return cloneRitual(ritual), nil
}

// Rituals returns deep snapshots of all rituals in store order.
func (s *State) Rituals() []*Ritual {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]*Ritual, 0, len(s.ritualOrder))
	for _, key := range s.ritualOrder {
		out = append(out, cloneRitual(s.rituals[key]))
	}
	return out
}
