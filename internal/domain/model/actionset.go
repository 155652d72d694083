package model

// ActionSet is the reconciler's output: the minimal ordered mutations that
// bring a pull request's labels and comments to the desired state. It is
// consumed exactly once by the executor and then discarded.
type ActionSet struct {
	AddLabels    []string
	RemoveLabels []string
	PostComments []string
}

// IsEmpty reports whether the set contains no mutations. A converged PR
// produces an empty ActionSet.
func (a ActionSet) IsEmpty() bool {
	return len(a.AddLabels) == 0 && len(a.RemoveLabels) == 0 && len(a.PostComments) == 0
}
