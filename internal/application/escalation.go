package application

import (
	"strings"
	"time"

	"github.com/ericfisherdev/prtriage/internal/domain/model"
	"github.com/ericfisherdev/prtriage/internal/domain/taxonomy"
)

// reminderThresholdDays is how many whole days a bot comment must have aged
// before the next reminder stage is owed. Day 14 exactly is still too soon.
const reminderThresholdDays = 14

// pendingMarker in a prior bot comment's body is the only persisted signal
// distinguishing first-warning from second-warning state; the engine carries
// nothing across runs beyond what is visible in the comment thread.
const pendingMarker = "pending"

// ReconcileComments walks the PR's comments from most recent to oldest and
// expands out with any escalation the thread calls for. The walk stops at the
// first comment that triggers a decision; a bot comment always stops the walk
// whether or not it triggers one, and a comment from an unrecognized author
// stops it immediately ("nothing new since last look").
func ReconcileComments(pr model.PullRequestState, out *model.DecisionOutput, moduleMaintainers []string, now time.Time) {
	for i := len(pr.Comments) - 1; i >= 0; i-- {
		c := pr.Comments[i]

		if taxonomy.IsBot(c.AuthorHandle) {
			escalateBotComment(pr, out, c, now)
			return
		}

		if model.Contains(moduleMaintainers, c.AuthorHandle) {
			if strings.Contains(c.Body, "shipit") {
				out.UnlabelingForced = true
				out.DesiredLabels.Add(taxonomy.LabelShipit)
				out.AddComment(taxonomy.KeyShipit)
				return
			}
			if strings.Contains(c.Body, taxonomy.LabelNeedsRevision) {
				out.UnlabelingForced = true
				out.DesiredLabels.Add(taxonomy.LabelNeedsRevision)
				return
			}
		} else if c.AuthorHandle != pr.SubmitterHandle {
			// Foreign author: no state change since the last pass.
			return
		}

		if c.AuthorHandle == pr.SubmitterHandle && strings.Contains(c.Body, "ready_for_review") {
			out.UnlabelingForced = true
			out.DesiredLabels.Add(routeReview(moduleMaintainers))
			return
		}

		// Non-triggering maintainer or submitter chatter: keep scanning.
	}
}

// escalateBotComment decides which reminder, if any, a prior bot comment owes
// once it has aged past the threshold. Core-routed PRs are exempt from the
// nag cycle entirely.
func escalateBotComment(pr model.PullRequestState, out *model.DecisionOutput, c model.Comment, now time.Time) {
	ageDays := int(now.Sub(c.CreatedAt).Hours() / 24)
	if ageDays <= reminderThresholdDays {
		return
	}

	if desiresLiteral(out, taxonomy.LabelCoreReview) {
		return
	}

	if !strings.Contains(c.Body, pendingMarker) {
		if pr.HasAnyLabel(taxonomy.ManualInteractionLabels) {
			out.AddComment(taxonomy.KeySubmitterFirstWarning)
			return
		}
		if desiresLiteral(out, taxonomy.LabelCommunityReview) && !pr.ContainsNewFile() {
			out.AddComment(taxonomy.KeyMaintainerFirstWarning)
		}
		return
	}

	// The prior reminder carried the pending marker: second stage.
	if pr.HasAnyLabel(taxonomy.ManualInteractionLabels) {
		out.AddComment(taxonomy.KeySubmitterSecondWarning)
		out.DesiredLabels.Add(taxonomy.LabelPendingAction)
		return
	}
	if desiresLiteral(out, taxonomy.LabelCommunityReview) && !out.DesiredLabels.Has(taxonomy.LabelNewPlugin) {
		out.AddComment(taxonomy.KeyMaintainerSecondWarning)
		out.DesiredLabels.Add(taxonomy.LabelPendingAction)
	}
}

// desiresLiteral reports whether any desired key alias-resolves to literal.
// Desired state holds alias members (community_review_new and friends), so
// membership tests on the resolved label have to look through the alias
// table.
func desiresLiteral(out *model.DecisionOutput, literal string) bool {
	for _, key := range out.DesiredLabels.Names() {
		if taxonomy.Resolve(key).Literal == literal {
			return true
		}
	}
	return false
}
