package model

// MergeableStatus is the tri-state mergeability signal reported for a pull
// request. Only MergeableConflicted blocks triage; MergeableUnknown is
// treated the same as clean because GitHub computes mergeability lazily.
type MergeableStatus string

const (
	MergeableClean      MergeableStatus = "clean"
	MergeableConflicted MergeableStatus = "conflicted"
	MergeableUnknown    MergeableStatus = "unknown"
)

// FileStatus represents the per-file change kind within a pull request.
type FileStatus string

const (
	FileAdded    FileStatus = "added"
	FileModified FileStatus = "modified"
	FileRemoved  FileStatus = "removed"
)
