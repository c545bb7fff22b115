package household

import "github.com/google/uuid"

// ReplayedAutomation returns the frozen automation recorded under idemKey,
// if a prior registration used that key.
func (s *State) ReplayedAutomation(idemKey string) (*Automation, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.ledger[automationLedgerKey(idemKey)]
	if !ok {
		return nil, false
	}
	return cloneAutomation(rec.Automation), true
}

// AutomationParams carries the validated request fields for automation
// registration. An empty RitualKey registers a global automation.
type AutomationParams struct {
	RitualKey string
	Trigger   TriggerType
	Call      CapabilityCall
}

// CreateAutomation registers a trigger-to-capability binding. Automations
// are registration-only: there is no update, delete, or execution engine.
//
// Supports the same idempotent-replay contract as attention resolution: a
// non-empty idemKey that matches a prior successful registration returns
// the frozen first result with replayed=true, skipping validation and
// mutation entirely.
func (s *State) CreateAutomation(p AutomationParams, idemKey string) (a *Automation, replayed bool, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if idemKey != "" {
		if rec, ok := s.ledger[automationLedgerKey(idemKey)]; ok {
			return cloneAutomation(rec.Automation), true, nil
		}
	}

	if !ValidTriggerType(p.Trigger) {
		return nil, false, ErrInvalidTrigger
	}
	if p.RitualKey != "" {
		if _, ok := s.rituals[p.RitualKey]; !ok {
			return nil, false, ErrRitualNotFound
		}
	}
	if p.Call.CapabilityID == "" {
		return nil, false, ErrCapabilityRequired
	}
	if p.Call.PayloadTemplate == nil {
		return nil, false, ErrPayloadTemplateRequired
	}

	now := s.timestamp()
	automation := &Automation{
		AutomationID: uuid.New().String(),
		RitualKey:    p.RitualKey,
		Trigger:      p.Trigger,
		Call:         cloneCall(p.Call),
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	s.automations[automation.AutomationID] = automation

	s.log.Info("automation registered",
		"event", "automation.registered",
		"automation_id", automation.AutomationID,
		"ritual_id", automation.RitualKey,
		"trigger", automation.Trigger,
		"capability_id", automation.Call.CapabilityID,
	)

	result := cloneAutomation(automation)
	if idemKey != "" {
		s.ledger[automationLedgerKey(idemKey)] = ledgerRecord{
			Status:     201,
			Automation: cloneAutomation(automation),
		}
	}
	return result, false, nil
}
