package model

// DecisionOutput accumulates the desired workflow state for one triage pass.
// It is created fresh per pull request and discarded once the action set has
// been produced.
type DecisionOutput struct {
	// DesiredLabels holds label names and alias keys in the order the engine
	// decided on them. Alias keys are resolved against the taxonomy during
	// reconciliation, not here.
	DesiredLabels *LabelSet

	// DesiredComments holds boilerplate keys queued directly by the engine
	// (escalation warnings, acknowledgments), deduplicated by key.
	DesiredComments []string

	// UnlabelingForced marks that a human action (shipit, needs_revision,
	// ready_for_review, merge conflict) authorizes removing otherwise-sticky
	// labels this pass.
	UnlabelingForced bool
}

// NewDecisionOutput returns an empty DecisionOutput ready for one pass.
func NewDecisionOutput() *DecisionOutput {
	return &DecisionOutput{DesiredLabels: NewLabelSet()}
}

// AddComment queues a boilerplate key if it is not already queued.
func (d *DecisionOutput) AddComment(key string) {
	if key == "" {
		return
	}
	for _, existing := range d.DesiredComments {
		if existing == key {
			return
		}
	}
	d.DesiredComments = append(d.DesiredComments, key)
}
