package entity

type RunState string

const (
	StateIdle          RunState = "idle"
	StateNavigated     RunState = "navigated"
	StateDiscovering   RunState = "discovering"
	StatePerAffordance RunState = "per_affordance"
	StateDone          RunState = "done"
)

type OutcomeKind string

const (
	OutcomeCaptured      OutcomeKind = "captured"
	OutcomeTriggerFailed OutcomeKind = "trigger_failed"
	OutcomeCaptureFailed OutcomeKind = "capture_failed"
)

// AffordanceOutcome — итог обработки одного элемента.
type AffordanceOutcome struct {
	Order    int         `json:"order"`
	Text     string      `json:"text"`
	Kind     OutcomeKind `json:"kind"`
	Selector string      `json:"selector,omitempty"`
	Error    string      `json:"error,omitempty"`
}

type RunReport struct {
	URL        string              `json:"url"`
	Timestamp  string              `json:"timestamp"`
	State      RunState            `json:"state"`
	Discovered int                 `json:"discovered"`
	Captured   int                 `json:"captured"`
	Outcomes   []AffordanceOutcome `json:"outcomes"`
}

func (r *RunReport) Failed() int {
	return r.Discovered - r.Captured
}
