package taxonomy

import "strings"

// boilerplates holds the comment bodies the bot posts, keyed by boilerplate
// key. "{s}" is replaced with the submitter handle and "{m}" with the
// maintainer handle list at render time.
var boilerplates = map[string]string{
	KeyShipit:                  "Thanks again to @{s} for this PR, and thanks @{m} for reviewing. Marking for inclusion.",
	KeyBackport:                "Thanks @{s}. All backport requests must be reviewed by the core team, and this can take time. We appreciate your patience.",
	KeyCommunityReviewExisting: "Thanks @{s}. @{m} please review according to guidelines (http://docs.ansible.com/ansible/developing_modules.html#module-checklist) and comment with text 'shipit' or 'needs_revision' as appropriate.",
	KeyCoreReviewExisting:      "Thanks @{s} for this PR. This module is maintained by the Ansible core team, so it can take a while for patches to be reviewed. Thanks for your patience.",
	KeyCommunityReviewNew:      "Thanks @{s} for this new module. When this module receives 'shipit' comments from two community members and any 'needs_revision' comments have been resolved, we will mark for inclusion.",
	KeyShipitOwnerPR:           "Thanks @{s}. Since you are a maintainer of this module, we are marking this PR for inclusion.",
	KeyNeedsRebase:             "Thanks @{s} for this PR. Unfortunately, it is not mergeable in its current state due to merge conflicts. Please rebase your PR. When you are done, please comment with text 'ready_for_review' and we will put this PR back into review.",
	KeyNeedsRevision:           "Thanks @{s} for this PR. A maintainer of this module has asked for revisions to this PR. Please make the suggested revisions. When you are done, please comment with text 'ready_for_review' and we will put this PR back into review.",
	KeyMaintainerFirstWarning:  "@{m} This change is still pending your review; do you have time to take a look and comment? Please comment with text 'shipit' or 'needs_revision' as appropriate.",
	KeyMaintainerSecondWarning: "@{m} still waiting on your review. Please comment with text 'shipit' or 'needs_revision' as appropriate. If we don't hear from you within 14 days, we will start to look for additional maintainers for this module.",
	KeySubmitterFirstWarning:   "@{s} A friendly reminder: this pull request has been marked as needing your action. If you still believe that this PR applies, and you intend to address the issues with this PR, just let us know in the PR itself and we will keep it open pending your changes.",
	KeySubmitterSecondWarning:  "@{s} Another friendly reminder: this pull request has been marked as needing your action. If you still believe that this PR applies, and you intend to address the issues with this PR, just let us know in the PR itself and we will keep it open. If we don't hear from you within another 14 days, we will close this pull request.",
}

// IsBoilerplateKey reports whether key has a comment body in the table.
func IsBoilerplateKey(key string) bool {
	_, ok := boilerplates[key]
	return ok
}

// Render produces the comment body for key with the submitter and maintainer
// placeholders substituted. Multiple maintainers are joined so each gets an
// @-mention. Returns false for an unknown key.
func Render(key, submitter string, maintainers []string) (string, bool) {
	tpl, ok := boilerplates[key]
	if !ok {
		return "", false
	}
	body := strings.ReplaceAll(tpl, "{s}", submitter)
	body = strings.ReplaceAll(body, "{m}", strings.Join(maintainers, " @"))
	return body, true
}
