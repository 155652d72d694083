package driven

import (
	"context"

	"github.com/ericfisherdev/prtriage/internal/domain/model"
)

// SnapshotSource defines the driven port for reading pull request state from
// the hosting API. Implementations must return fully materialized snapshots;
// the triage engine performs no I/O of its own.
type SnapshotSource interface {
	// FetchPullRequest returns the complete observed state of one PR:
	// changed files, current labels, and chronological comments included.
	FetchPullRequest(ctx context.Context, number int) (model.PullRequestState, error)

	// ListOpenPullRequests returns the numbers of all open PRs, most
	// recently created first.
	ListOpenPullRequests(ctx context.Context) ([]int, error)
}
