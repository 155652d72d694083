// Package taxonomy holds the fixed review-workflow vocabulary: the label
// names the triage engine may emit, the alias table that maps comment-coupled
// keys to literal labels, the label classes that constrain reconciliation
// (sticky, static, manual-interaction), the bot identity list, and the
// namespace-to-topic-label map. The vocabulary is a closed set; nothing here
// is configurable at runtime.
package taxonomy

// Literal workflow labels.
const (
	LabelNeedsRebase     = "needs_rebase"
	LabelNeedsRevision   = "needs_revision"
	LabelNeedsInfo       = "needs_info"
	LabelShipit          = "shipit"
	LabelOwnerPR         = "owner_pr"
	LabelNewPlugin       = "new_plugin"
	LabelBackport        = "backport"
	LabelCoreReview      = "core_review"
	LabelCommunityReview = "community_review"
	LabelPendingAction   = "pending_action"
)

// Boilerplate keys. The alias members double as desired-label keys: when the
// engine emits one, reconciliation resolves it to its literal label and posts
// the boilerplate comment alongside the label addition.
const (
	KeyShipit                  = "shipit"
	KeyBackport                = "backport"
	KeyCommunityReviewExisting = "community_review_existing"
	KeyCoreReviewExisting      = "core_review_existing"
	KeyCommunityReviewNew      = "community_review_new"
	KeyShipitOwnerPR           = "shipit_owner_pr"
	KeyNeedsRebase             = "needs_rebase"
	KeyNeedsRevision           = "needs_revision"
	KeyMaintainerFirstWarning  = "maintainer_first_warning"
	KeyMaintainerSecondWarning = "maintainer_second_warning"
	KeySubmitterFirstWarning   = "submitter_first_warning"
	KeySubmitterSecondWarning  = "submitter_second_warning"
)

// CoreTeamHandle is the reserved maintainer identity that routes a module to
// core review regardless of any other rule.
const CoreTeamHandle = "ansible"

// aliasTargets maps each alias member key to the literal label it resolves
// to. Every key here also has a boilerplate entry, which is the comment
// obligation coupled to the label addition.
var aliasTargets = map[string]string{
	KeyCoreReviewExisting:      LabelCoreReview,
	KeyCommunityReviewExisting: LabelCommunityReview,
	KeyCommunityReviewNew:      LabelCommunityReview,
	KeyShipitOwnerPR:           LabelShipit,
}

// ResolvedLabel is the result of resolving a desired-label key. CommentKey is
// non-empty only when the key was an alias member, in which case adding the
// literal label also obligates posting the boilerplate comment for the key.
type ResolvedLabel struct {
	Literal    string
	CommentKey string
}

// Resolve maps a desired-label key to its literal label. Alias members
// resolve to their target and carry their comment obligation; anything else
// resolves to itself with no obligation.
func Resolve(key string) ResolvedLabel {
	if literal, ok := aliasTargets[key]; ok {
		return ResolvedLabel{Literal: literal, CommentKey: key}
	}
	return ResolvedLabel{Literal: key}
}

// stickyLabels are never removed during reconciliation unless unlabeling was
// explicitly forced in the same pass.
var stickyLabels = map[string]struct{}{
	LabelShipit:        {},
	LabelNeedsRevision: {},
	LabelNeedsInfo:     {},
}

// IsSticky reports whether label is exempt from automatic removal.
func IsSticky(label string) bool {
	_, ok := stickyLabels[label]
	return ok
}

// staticLabels are managed by humans only; the engine never adds or removes
// them and ignores them when computing removals.
var staticLabels = map[string]struct{}{
	"feature_pull_request": {},
	"bugfix_pull_request":  {},
	"in progress":          {},
}

// IsStatic reports whether label is outside the engine's control.
func IsStatic(label string) bool {
	_, ok := staticLabels[label]
	return ok
}

// ManualInteractionLabels mark a PR as waiting on its submitter; they select
// the submitter branch of the escalation warnings.
var ManualInteractionLabels = []string{
	LabelNeedsRevision,
	LabelNeedsInfo,
}

// BotIdentities are the automation accounts whose comments are treated as
// prior-pass markers rather than human feedback.
var BotIdentities = []string{"gregdek", "robynbergeron"}

// IsBot reports whether handle is a recognized automation identity.
func IsBot(handle string) bool {
	for _, b := range BotIdentities {
		if b == handle {
			return true
		}
	}
	return false
}

// NamespaceLabels maps a changed file's first path segment to the topic label
// it contributes.
var NamespaceLabels = map[string]string{
	"cloud":   "cloud",
	"windows": "windows",
	"network": "networking",
}

// MaintainerFiles names the maintainer directory source per target repo.
var MaintainerFiles = map[string]string{
	"core":   "MAINTAINERS-CORE.txt",
	"extras": "MAINTAINERS-EXTRAS.txt",
}
