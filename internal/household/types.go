package household

// RunStatus is the lifecycle state of a single run.
//
// Runs start as "planned" unless the owning ritual has instant runs, in
// which case they are created already "complete". The "in_progress" state
// exists in the model but no public endpoint currently moves a run into it;
// it is reachable only by direct manipulation in tests.
type RunStatus string

const (
	RunPlanned    RunStatus = "planned"
	RunInProgress RunStatus = "in_progress"
	RunComplete   RunStatus = "complete"
)

// AttentionType classifies what kind of human intervention a run needs.
type AttentionType string

const (
	AttentionAuthNeeded       AttentionType = "auth_needed"
	AttentionMissingDraft     AttentionType = "missing_draft"
	AttentionDecisionRequired AttentionType = "decision_required"
	AttentionOther            AttentionType = "other"
)

var attentionTypes = map[AttentionType]bool{
	AttentionAuthNeeded:       true,
	AttentionMissingDraft:     true,
	AttentionDecisionRequired: true,
	AttentionOther:            true,
}

// ValidAttentionType reports whether t is one of the enumerated attention types.
func ValidAttentionType(t AttentionType) bool {
	return attentionTypes[t]
}

// TriggerType names a lifecycle event an automation can bind to.
type TriggerType string

const (
	TriggerRunPlanned        TriggerType = "on_run_planned"
	TriggerBeforeRunStart    TriggerType = "before_run_start"
	TriggerRunStart          TriggerType = "on_run_start"
	TriggerRunComplete       TriggerType = "on_run_complete"
	TriggerAttentionCreated  TriggerType = "on_attention_created"
	TriggerAttentionResolved TriggerType = "on_attention_resolved"
)

var triggerTypes = map[TriggerType]bool{
	TriggerRunPlanned:        true,
	TriggerBeforeRunStart:    true,
	TriggerRunStart:          true,
	TriggerRunComplete:       true,
	TriggerAttentionCreated:  true,
	TriggerAttentionResolved: true,
}

// ValidTriggerType reports whether t is one of the six enumerated triggers.
func ValidTriggerType(t TriggerType) bool {
	return triggerTypes[t]
}

// InputTypeExternalLink is the only supported ritual input type.
const InputTypeExternalLink = "external_link"

// Input is a typed reference attached to a ritual, snapshotted onto each run.
type Input struct {
	Type  string `json:"type"`
	Value string `json:"value"`
	Label string `json:"label,omitempty"`
}

// ActivityEntry is one immutable event in a run's append-only activity log.
type ActivityEntry struct {
	Timestamp Timestamp         `json:"timestamp"`
	Event     TriggerType       `json:"event"`
	Message   string            `json:"message"`
	Metadata  map[string]string `json:"metadata,omitempty"`
}

// Ritual is a named recurring household task template. A ritual owns its
// runs: list membership and lifetime.
type Ritual struct {
	RitualKey   string    `json:"ritual_key"`
	Name        string    `json:"name"`
	InstantRuns bool      `json:"instant_runs"`
	Cadence     *string   `json:"cadence"`
	Inputs      []Input   `json:"inputs"`
	CreatedAt   Timestamp `json:"created_at"`
	UpdatedAt   Timestamp `json:"updated_at"`
	Runs        []*Run    `json:"runs"`
}

// Run is one concrete execution of a ritual. Inputs are a deep copy of the
// ritual's inputs at creation time; later ritual edits do not reach back.
type Run struct {
	RunKey      string          `json:"run_key"`
	RitualKey   string          `json:"ritual_key"`
	Status      RunStatus       `json:"status"`
	CreatedAt   Timestamp       `json:"created_at"`
	UpdatedAt   Timestamp       `json:"updated_at"`
	Inputs      []Input         `json:"inputs"`
	ActivityLog []ActivityEntry `json:"activity_log"`
}

// AttentionItem flags a condition on a run that needs a household member to
// act. Resolved is one-way: once true it never reverts.
type AttentionItem struct {
	AttentionID string        `json:"attention_id"`
	RunKey      string        `json:"run_key"`
	Type        AttentionType `json:"type"`
	Message     string        `json:"message"`
	Resolved    bool          `json:"resolved"`
	CreatedAt   Timestamp     `json:"created_at"`
	ResolvedAt  *Timestamp    `json:"resolved_at,omitempty"`

	// seq breaks created_at ties so listings stay newest-first even when
	// two items land in the same millisecond.
	seq int
}

// CapabilityCall describes the external capability an automation would
// invoke. Nothing here is executed; automations are registration-only.
type CapabilityCall struct {
	CapabilityID    string         `json:"capability_id"`
	PayloadTemplate map[string]any `json:"payload_template"`
	ConnectionID    string         `json:"connection_id,omitempty"`
	TargetID        string         `json:"target_id,omitempty"`
}

// Automation binds a lifecycle trigger to a capability call template. An
// empty RitualKey means the automation is global across rituals.
type Automation struct {
	AutomationID string         `json:"automation_id"`
	RitualKey    string         `json:"ritual_key,omitempty"`
	Trigger      TriggerType    `json:"trigger"`
	Call         CapabilityCall `json:"call"`
	CreatedAt    Timestamp      `json:"created_at"`
	UpdatedAt    Timestamp      `json:"updated_at"`
}

// RitualSummary is the joined ritual view returned alongside a run.
type RitualSummary struct {
	RitualKey   string  `json:"ritual_key"`
	Name        string  `json:"name"`
	InstantRuns bool    `json:"instant_runs"`
	Cadence     *string `json:"cadence"`
}

// RunDetail is the full run view: the run, its owning ritual summary, the
// run's attention items (newest first) and the derived next triggers.
type RunDetail struct {
	Run            *Run             `json:"run"`
	Ritual         RitualSummary    `json:"ritual"`
	AttentionItems []*AttentionItem `json:"attention_items"`
	NextTriggers   []Trigger        `json:"next_triggers"`
}
