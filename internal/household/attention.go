package household

import (
	"sort"

	"github.com/google/uuid"
)

// CreateAttention flags a new attention item on an existing run.
func (s *State) CreateAttention(runKey string, typ AttentionType, message string) (*AttentionItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	run, ok := s.runs[runKey]
	if !ok {
		return nil, ErrRunNotFound
	}
	if !ValidAttentionType(typ) {
		return nil, ErrInvalidAttentionType
	}
	if message == "" {
		return nil, ErrMessageRequired
	}

	item := &AttentionItem{
		AttentionID: uuid.New().String(),
		RunKey:      runKey,
		Type:        typ,
		Message:     message,
		Resolved:    false,
		CreatedAt:   s.timestamp(),
		seq:         s.nextSeq(),
	}
	s.attention[item.AttentionID] = item

	s.log.Info("attention created",
		"event", "attention.created",
		"run_id", run.RunKey,
		"ritual_id", run.RitualKey,
		"status", run.Status,
		"attention_id", item.AttentionID,
		"attention_type", item.Type,
	)
	return cloneAttention(item), nil
}

// AttentionForRun lists the run's attention items sorted by created_at
// descending. Most-recent-first ordering is load-bearing for the UI.
func (s *State) AttentionForRun(runKey string) ([]*AttentionItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.runs[runKey]; !ok {
		return nil, ErrRunNotFound
	}
	return s.attentionForRunLocked(runKey), nil
}

func (s *State) attentionForRunLocked(runKey string) []*AttentionItem {
	items := []*AttentionItem{}
	for _, item := range s.attention {
		if item.RunKey == runKey {
			items = append(items, cloneAttention(item))
		}
	}
	sort.Slice(items, func(i, j int) bool {
		if !items[i].CreatedAt.Equal(items[j].CreatedAt.Time) {
			return items[i].CreatedAt.After(items[j].CreatedAt.Time)
		}
		return items[i].seq > items[j].seq
	})
	return items
}

// ResolveAttention marks an attention item resolved on behalf of role and
// appends the resolution to the owning run's activity log.
//
// When idemKey is non-empty and a prior resolution was recorded under the
// same (attention, key) pair, the frozen first result is returned with
// replayed=true and no mutation happens, so retries are effectively
// exactly-once. The replay check runs before the already-resolved check:
// the first call with a given key still performs the resolution, and later
// different-key attempts conflict as usual.
//
// Items of type auth_needed may only be resolved by the Owner role.
func (s *State) ResolveAttention(attentionID string, role Role, idemKey string) (item *AttentionItem, replayed bool, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if idemKey != "" {
		if rec, ok := s.ledger[resolveLedgerKey(attentionID, idemKey)]; ok {
			return cloneAttention(rec.Attention), true, nil
		}
	}

	stored, ok := s.attention[attentionID]
	if !ok {
		return nil, false, ErrAttentionNotFound
	}
	if stored.Resolved {
		return nil, false, ErrAttentionResolved
	}
	run, ok := s.runs[stored.RunKey]
	if !ok {
		// Defensive: runs are never deleted, so a dangling run_key
		// indicates corrupted state rather than a normal miss.
		return nil, false, ErrRunNotFound
	}
	if stored.Type == AttentionAuthNeeded && role != RoleOwner {
		return nil, false, ErrForbiddenRole
	}

	now := s.timestamp()
	stored.Resolved = true
	stored.ResolvedAt = &now

	run.ActivityLog = append(run.ActivityLog, ActivityEntry{
		Timestamp: now,
		Event:     TriggerAttentionResolved,
		Message:   "Attention item resolved: " + string(stored.Type),
		Metadata: map[string]string{
			"attention_id":     stored.AttentionID,
			"attention_type":   string(stored.Type),
			"original_message": stored.Message,
		},
	})
	run.UpdatedAt = now
	if ritual, ok := s.rituals[run.RitualKey]; ok {
		ritual.UpdatedAt = now
	}

	s.log.Info("attention resolved",
		"event", "attention.resolved",
		"run_id", run.RunKey,
		"ritual_id", run.RitualKey,
		"status", run.Status,
		"attention_id", stored.AttentionID,
		"attention_type", stored.Type,
		"resolved_at", now.String(),
		"resolved_by", role,
	)

	result := cloneAttention(stored)
	if idemKey != "" {
		s.ledger[resolveLedgerKey(attentionID, idemKey)] = ledgerRecord{
			Status:    200,
			Attention: cloneAttention(stored),
		}
	}
	return result, false, nil
}
