package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/ericfisherdev/prtriage/internal/domain/model"
	"github.com/ericfisherdev/prtriage/internal/domain/port/driven"
	"github.com/ericfisherdev/prtriage/internal/domain/taxonomy"
)

// Decision is the caller's verdict on a proposed action set.
type Decision int

const (
	Proceed Decision = iota // apply the actions
	Skip                    // leave this PR untouched, continue the run
	Abort                   // stop the whole run
)

// ConfirmFunc lets the caller gate mutations behind a prompt (or auto-approve
// them). The core never performs console I/O itself.
type ConfirmFunc func(pr model.PullRequestState, moduleMaintainers []string, actions model.ActionSet) Decision

// ErrAborted is returned when the confirm function asks to stop the run.
var ErrAborted = errors.New("triage run aborted")

// PlanActions runs one full, side-effect-free triage pass: decision engine,
// escalation tracker (skipped on the terminal merge-conflict branch), and
// reconciler. The returned action set carries boilerplate keys as comments;
// callers render them before posting. now is the single clock reading for the
// pass.
func PlanActions(pr model.PullRequestState, maintainers *model.MaintainerDirectory, now time.Time) (model.ActionSet, []string) {
	moduleMaintainers := maintainers.ModuleMaintainers(pr.ChangedFiles)

	out := DeriveDesiredState(pr, maintainers)
	if pr.MergeableStatus != model.MergeableConflicted {
		ReconcileComments(pr, out, moduleMaintainers, now)
	}

	return BuildActions(pr, out), moduleMaintainers
}

// RenderComments replaces boilerplate keys in the action set with rendered
// comment bodies. Unknown keys pass through untouched so hand-queued bodies
// survive.
func RenderComments(actions model.ActionSet, submitter string, moduleMaintainers []string) model.ActionSet {
	if len(actions.PostComments) == 0 {
		return actions
	}
	rendered := make([]string, 0, len(actions.PostComments))
	for _, key := range actions.PostComments {
		if body, ok := taxonomy.Render(key, submitter, moduleMaintainers); ok {
			rendered = append(rendered, body)
			continue
		}
		rendered = append(rendered, key)
	}
	actions.PostComments = rendered
	return actions
}

// TriageService orchestrates triage passes: it fetches snapshots through the
// SnapshotSource port, plans actions with the pure core, asks the confirm
// function for a verdict, and applies approved actions through the
// ActionExecutor port.
type TriageService struct {
	source      driven.SnapshotSource
	executor    driven.ActionExecutor
	maintainers *model.MaintainerDirectory
	confirm     ConfirmFunc
	alwaysPause bool
	logger      *slog.Logger
}

// NewTriageService creates a TriageService. When alwaysPause is set, the
// confirm function is consulted even for PRs with an empty action set.
func NewTriageService(
	source driven.SnapshotSource,
	executor driven.ActionExecutor,
	maintainers *model.MaintainerDirectory,
	confirm ConfirmFunc,
	alwaysPause bool,
) *TriageService {
	return &TriageService{
		source:      source,
		executor:    executor,
		maintainers: maintainers,
		confirm:     confirm,
		alwaysPause: alwaysPause,
		logger:      slog.Default(),
	}
}

// TriagePR runs one pass over a single pull request. It returns ErrAborted
// when the confirm function stops the run; a skip is not an error.
func (s *TriageService) TriagePR(ctx context.Context, number int, now time.Time) error {
	pr, err := s.source.FetchPullRequest(ctx, number)
	if err != nil {
		return fmt.Errorf("fetching PR #%d: %w", number, err)
	}

	actions, moduleMaintainers := PlanActions(pr, s.maintainers, now)
	actions = RenderComments(actions, pr.SubmitterHandle, moduleMaintainers)

	s.logger.Info("triaged pull request",
		"pr", pr.Number,
		"title", pr.Title,
		"submitter", pr.SubmitterHandle,
		"maintainers", moduleMaintainers,
		"current_labels", pr.CurrentLabels,
		"add", actions.AddLabels,
		"remove", actions.RemoveLabels,
		"comments", len(actions.PostComments),
	)

	if actions.IsEmpty() {
		if s.alwaysPause && s.confirm != nil {
			if s.confirm(pr, moduleMaintainers, actions) == Abort {
				return ErrAborted
			}
		}
		return nil
	}

	if s.confirm != nil {
		switch s.confirm(pr, moduleMaintainers, actions) {
		case Abort:
			return ErrAborted
		case Skip:
			s.logger.Info("skipped pull request", "pr", pr.Number)
			return nil
		}
	}

	return s.execute(ctx, pr.Number, actions)
}

// TriageAll runs passes over every open pull request, most recent first.
// When startAt is positive, PRs with a higher number are skipped. The run
// stops at the first error or abort.
func (s *TriageService) TriageAll(ctx context.Context, startAt int, now time.Time) error {
	numbers, err := s.source.ListOpenPullRequests(ctx)
	if err != nil {
		return fmt.Errorf("listing open PRs: %w", err)
	}

	for _, number := range numbers {
		if startAt > 0 && number > startAt {
			continue
		}
		if err := s.TriagePR(ctx, number, now); err != nil {
			return err
		}
	}
	return nil
}

// execute applies the action set in order: label additions, then removals,
// then comments.
func (s *TriageService) execute(ctx context.Context, number int, actions model.ActionSet) error {
	if len(actions.AddLabels) > 0 {
		if err := s.executor.AddLabels(ctx, number, actions.AddLabels); err != nil {
			return fmt.Errorf("adding labels to PR #%d: %w", number, err)
		}
	}
	for _, label := range actions.RemoveLabels {
		if err := s.executor.RemoveLabel(ctx, number, label); err != nil {
			return fmt.Errorf("removing label %q from PR #%d: %w", label, number, err)
		}
	}
	for _, body := range actions.PostComments {
		if err := s.executor.PostComment(ctx, number, body); err != nil {
			return fmt.Errorf("commenting on PR #%d: %w", number, err)
		}
	}

	s.logger.Info("applied actions",
		"pr", number,
		"added", len(actions.AddLabels),
		"removed", len(actions.RemoveLabels),
		"commented", len(actions.PostComments),
	)
	return nil
}
