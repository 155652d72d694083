package application

import (
	"github.com/ericfisherdev/prtriage/internal/domain/model"
	"github.com/ericfisherdev/prtriage/internal/domain/taxonomy"
)

// BuildActions diffs the desired state against the PR's current labels and
// produces the minimal ordered action set. Comment entries in the result are
// boilerplate keys, not rendered bodies; rendering is the executor side's
// concern.
//
// Labels already present are never re-added. Static labels are never removed.
// Sticky labels are removed only when unlabeling was forced this pass.
func BuildActions(pr model.PullRequestState, out *model.DecisionOutput) model.ActionSet {
	var actions model.ActionSet

	// Every literal a desired key resolves to counts as still wanted, whether
	// or not it needed queueing.
	stillWanted := model.NewLabelSet()

	for _, key := range out.DesiredLabels.Names() {
		resolved := taxonomy.Resolve(key)
		stillWanted.Add(resolved.Literal)

		if pr.HasLabel(resolved.Literal) {
			continue
		}
		actions.AddLabels = append(actions.AddLabels, resolved.Literal)
		if resolved.CommentKey != "" {
			// Alias members carry a paired comment obligation: the label
			// addition announces itself.
			actions.PostComments = appendUniqueComment(actions.PostComments, resolved.CommentKey)
		}
	}

	for _, current := range pr.CurrentLabels {
		if taxonomy.IsStatic(current) {
			continue
		}
		if !out.UnlabelingForced && taxonomy.IsSticky(current) {
			continue
		}
		if !stillWanted.Has(current) {
			actions.RemoveLabels = append(actions.RemoveLabels, current)
		}
	}

	for _, key := range out.DesiredComments {
		actions.PostComments = appendUniqueComment(actions.PostComments, key)
	}

	return actions
}

func appendUniqueComment(comments []string, key string) []string {
	for _, existing := range comments {
		if existing == key {
			return comments
		}
	}
	return append(comments, key)
}
