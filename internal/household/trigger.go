package household

// TriggerState is the presentation state of a projected trigger.
type TriggerState string

const (
	TriggerActive   TriggerState = "active"
	TriggerPending  TriggerState = "pending"
	TriggerQueued   TriggerState = "queued"
	TriggerComplete TriggerState = "complete"
)

// Trigger is one entry in the next-triggers projection shown on a run page.
// Label and Description are presentation copy; the event/status pairs and
// their ordering are the contract.
type Trigger struct {
	Event       TriggerType  `json:"event"`
	Status      TriggerState `json:"status"`
	Label       string       `json:"label"`
	Description string       `json:"description"`
}

// BuildNextTriggers derives the upcoming lifecycle triggers for a run from
// its current status. Pure projection: no stored state, recomputed per read.
func BuildNextTriggers(run *Run) []Trigger {
	switch run.Status {
	case RunComplete:
		return []Trigger{
			{
				Event:       TriggerRunComplete,
				Status:      TriggerComplete,
				Label:       "Run complete",
				Description: "This run has finished. Completion automations have fired.",
			},
		}
	case RunInProgress:
		return []Trigger{
			{
				Event:       TriggerRunStart,
				Status:      TriggerActive,
				Label:       "Run started",
				Description: "The run is in progress. Start automations are firing now.",
			},
			{
				Event:       TriggerRunComplete,
				Status:      TriggerQueued,
				Label:       "Run complete",
				Description: "Fires once the run finishes.",
			},
		}
	default: // RunPlanned
		return []Trigger{
			{
				Event:       TriggerRunPlanned,
				Status:      TriggerActive,
				Label:       "Run planned",
				Description: "The run is on the schedule and waiting to start.",
			},
			{
				Event:       TriggerBeforeRunStart,
				Status:      TriggerPending,
				Label:       "Before run start",
				Description: "Preparation automations fire just before the run starts.",
			},
			{
				Event:       TriggerRunStart,
				Status:      TriggerQueued,
				Label:       "Run start",
				Description: "Fires when the run moves into progress.",
			},
		}
	}
}
