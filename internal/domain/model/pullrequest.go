package model

import "time"

// ChangedFile is one entry of a pull request's file list.
type ChangedFile struct {
	Path   string
	Status FileStatus
}

// Comment is a PR-level general comment (from the GitHub Issues API, not the
// review comments API). Comments are kept in chronological order.
type Comment struct {
	AuthorHandle string
	Body         string
	CreatedAt    time.Time
}

// PullRequestState is the read-only snapshot of one pull request that a
// triage pass operates on. It is fully materialized before the engine runs
// and never mutated by it; everything the engine derives is recomputed from
// these fields.
type PullRequestState struct {
	Number          int
	Title           string
	SubmitterHandle string
	BaseRef         string
	MergeableStatus MergeableStatus
	ChangedFiles    []ChangedFile
	CurrentLabels   []string
	Comments        []Comment
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// ContainsNewFile reports whether any changed file was newly added (as
// opposed to modified or removed).
func (pr PullRequestState) ContainsNewFile() bool {
	for _, f := range pr.ChangedFiles {
		if f.Status == FileAdded {
			return true
		}
	}
	return false
}

// HasLabel reports whether the named label is currently attached.
func (pr PullRequestState) HasLabel(name string) bool {
	for _, l := range pr.CurrentLabels {
		if l == name {
			return true
		}
	}
	return false
}

// HasAnyLabel reports whether any of the given labels is currently attached.
func (pr PullRequestState) HasAnyLabel(names []string) bool {
	for _, n := range names {
		if pr.HasLabel(n) {
			return true
		}
	}
	return false
}

// LatestComment returns the most recent comment and true, or a zero Comment
// and false when the PR has no comments.
func (pr PullRequestState) LatestComment() (Comment, bool) {
	if len(pr.Comments) == 0 {
		return Comment{}, false
	}
	return pr.Comments[len(pr.Comments)-1], true
}
