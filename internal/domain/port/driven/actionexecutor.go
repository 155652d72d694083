package driven

import "context"

// ActionExecutor defines the driven port for applying a reconciled action set
// to the hosting API. It is intentionally separate from SnapshotSource
// (read operations) following the Interface Segregation Principle.
type ActionExecutor interface {
	// AddLabels attaches the given labels to a pull request.
	AddLabels(ctx context.Context, number int, labels []string) error

	// RemoveLabel detaches one label from a pull request.
	RemoveLabel(ctx context.Context, number int, label string) error

	// PostComment creates a top-level comment on a pull request.
	PostComment(ctx context.Context, number int, body string) error
}
