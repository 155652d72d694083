// Package application contains the triage core: the decision engine that
// derives a pull request's desired workflow labels, the escalation tracker
// that schedules time-boxed reminders, the reconciler that diffs desired
// against current state, and the service that wires them to the driven ports.
// The core is pure: it performs no I/O and reads the clock exactly once per
// pass, via the now argument threaded through from the caller.
package application

import (
	"strings"

	"github.com/ericfisherdev/prtriage/internal/domain/model"
	"github.com/ericfisherdev/prtriage/internal/domain/taxonomy"
)

// DeriveDesiredState computes the workflow label set a PR should have from
// its observed facts alone. A merge conflict is terminal: the PR gets exactly
// the needs_rebase label with unlabeling forced, and no other rule runs.
func DeriveDesiredState(pr model.PullRequestState, maintainers *model.MaintainerDirectory) *model.DecisionOutput {
	out := model.NewDecisionOutput()

	if pr.MergeableStatus == model.MergeableConflicted {
		out.UnlabelingForced = true
		out.DesiredLabels.Add(taxonomy.LabelNeedsRebase)
		return out
	}

	addNamespaceLabels(pr, out)
	addBackportLabels(pr, out)
	addMaintainerRouting(pr, maintainers, out)

	return out
}

// addNamespaceLabels adds a topic label for every changed file whose first
// path segment exactly matches a configured namespace. Files outside any
// namespace contribute nothing.
func addNamespaceLabels(pr model.PullRequestState, out *model.DecisionOutput) {
	for _, f := range pr.ChangedFiles {
		namespace, _, _ := strings.Cut(f.Path, "/")
		if label, ok := taxonomy.NamespaceLabels[namespace]; ok {
			out.DesiredLabels.Add(label)
		}
	}
}

// addBackportLabels marks PRs targeting a stable branch for core review.
func addBackportLabels(pr model.PullRequestState, out *model.DecisionOutput) {
	if strings.Contains(pr.BaseRef, "stable") {
		out.DesiredLabels.Add(taxonomy.LabelCoreReview)
		out.DesiredLabels.Add(taxonomy.LabelBackport)
	}
}

// addMaintainerRouting picks the review-routing label. The branches are
// evaluated in strict order and each return is a true early exit.
func addMaintainerRouting(pr model.PullRequestState, maintainers *model.MaintainerDirectory, out *model.DecisionOutput) {
	moduleMaintainers := maintainers.ModuleMaintainers(pr.ChangedFiles)
	containsNewFile := pr.ContainsNewFile()

	if containsNewFile {
		out.DesiredLabels.Add(taxonomy.LabelNewPlugin)
	}

	// Core-team-owned modules always route to core review.
	if model.Contains(moduleMaintainers, taxonomy.CoreTeamHandle) {
		out.DesiredLabels.Add(taxonomy.KeyCoreReviewExisting)
		return
	}

	// A pending revision request is never overridden by re-routing.
	if pr.HasLabel(taxonomy.LabelNeedsRevision) {
		return
	}

	// Self-certified ownership short-circuits community review.
	if model.Contains(moduleMaintainers, pr.SubmitterHandle) {
		out.DesiredLabels.Add(taxonomy.LabelOwnerPR)
		out.DesiredLabels.Add(taxonomy.KeyShipitOwnerPR)
		return
	}

	// An existing approval is not re-litigated.
	if pr.HasLabel(taxonomy.LabelShipit) {
		return
	}

	if len(moduleMaintainers) == 0 && containsNewFile {
		out.DesiredLabels.Add(taxonomy.KeyCommunityReviewNew)
		return
	}
	out.DesiredLabels.Add(taxonomy.KeyCommunityReviewExisting)
}

// routeReview is the routing tail shared by the ready_for_review re-route:
// core-team modules go to core review, unowned modules to community review
// for new modules, everything else to community review for existing modules.
func routeReview(moduleMaintainers []string) string {
	if model.Contains(moduleMaintainers, taxonomy.CoreTeamHandle) {
		return taxonomy.KeyCoreReviewExisting
	}
	if len(moduleMaintainers) == 0 {
		return taxonomy.KeyCommunityReviewNew
	}
	return taxonomy.KeyCommunityReviewExisting
}
