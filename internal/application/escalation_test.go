package application_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/ericfisherdev/prtriage/internal/application"
	"github.com/ericfisherdev/prtriage/internal/domain/model"
)

var passNow = time.Date(2016, 3, 1, 12, 0, 0, 0, time.UTC)

// botComment returns a bot-authored comment the given number of days old.
func botComment(daysOld int, body string) model.Comment {
	return model.Comment{
		AuthorHandle: "gregdek",
		Body:         body,
		CreatedAt:    passNow.Add(-time.Duration(daysOld) * 24 * time.Hour),
	}
}

func desiredWith(keys ...string) *model.DecisionOutput {
	out := model.NewDecisionOutput()
	for _, k := range keys {
		out.DesiredLabels.Add(k)
	}
	return out
}

func TestReconcileComments_BotReminderStaging(t *testing.T) {
	t.Run("14 days old is still too soon", func(t *testing.T) {
		pr := model.PullRequestState{
			SubmitterHandle: "alice",
			CurrentLabels:   []string{"needs_revision"},
			Comments:        []model.Comment{botComment(14, "friendly reminder")},
		}
		out := desiredWith("community_review_existing")

		application.ReconcileComments(pr, out, nil, passNow)

		assert.Empty(t, out.DesiredComments)
		assert.False(t, out.UnlabelingForced)
	})

	t.Run("aged comment without pending on interaction-labeled PR gives submitter first warning", func(t *testing.T) {
		pr := model.PullRequestState{
			SubmitterHandle: "alice",
			CurrentLabels:   []string{"needs_revision"},
			Comments:        []model.Comment{botComment(20, "please revise")},
		}
		out := desiredWith()
		before := out.DesiredLabels.Names()

		application.ReconcileComments(pr, out, nil, passNow)

		assert.Equal(t, []string{"submitter_first_warning"}, out.DesiredComments)
		assert.Equal(t, before, out.DesiredLabels.Names(), "first warning changes no labels")
	})

	t.Run("aged comment with pending marker gives submitter second warning plus pending_action", func(t *testing.T) {
		pr := model.PullRequestState{
			SubmitterHandle: "alice",
			CurrentLabels:   []string{"needs_info"},
			Comments:        []model.Comment{botComment(20, "this PR is pending your action")},
		}
		out := desiredWith()

		application.ReconcileComments(pr, out, nil, passNow)

		assert.Equal(t, []string{"submitter_second_warning"}, out.DesiredComments)
		assert.True(t, out.DesiredLabels.Has("pending_action"))
	})

	t.Run("community-routed PR without new file gives maintainer first warning", func(t *testing.T) {
		pr := model.PullRequestState{
			SubmitterHandle: "alice",
			ChangedFiles: []model.ChangedFile{
				{Path: "cloud/aws/ec2.py", Status: model.FileModified},
			},
			Comments: []model.Comment{botComment(20, "please review")},
		}
		out := desiredWith("community_review_existing")

		application.ReconcileComments(pr, out, []string{"bob"}, passNow)

		assert.Equal(t, []string{"maintainer_first_warning"}, out.DesiredComments)
	})

	t.Run("new file suppresses maintainer first warning", func(t *testing.T) {
		pr := model.PullRequestState{
			SubmitterHandle: "alice",
			ChangedFiles: []model.ChangedFile{
				{Path: "cloud/aws/ec2.py", Status: model.FileAdded},
			},
			Comments: []model.Comment{botComment(20, "please review")},
		}
		out := desiredWith("community_review_new", "new_plugin")

		application.ReconcileComments(pr, out, nil, passNow)

		assert.Empty(t, out.DesiredComments)
	})

	t.Run("community-routed pending stage gives maintainer second warning", func(t *testing.T) {
		pr := model.PullRequestState{
			SubmitterHandle: "alice",
			ChangedFiles: []model.ChangedFile{
				{Path: "cloud/aws/ec2.py", Status: model.FileModified},
			},
			Comments: []model.Comment{botComment(20, "still pending review")},
		}
		out := desiredWith("community_review_existing")

		application.ReconcileComments(pr, out, []string{"bob"}, passNow)

		assert.Equal(t, []string{"maintainer_second_warning"}, out.DesiredComments)
		assert.True(t, out.DesiredLabels.Has("pending_action"))
	})

	t.Run("desired new_plugin suppresses maintainer second warning", func(t *testing.T) {
		pr := model.PullRequestState{
			SubmitterHandle: "alice",
			Comments:        []model.Comment{botComment(20, "still pending review")},
		}
		out := desiredWith("community_review_new", "new_plugin")

		application.ReconcileComments(pr, out, nil, passNow)

		assert.Empty(t, out.DesiredComments)
		assert.False(t, out.DesiredLabels.Has("pending_action"))
	})

	t.Run("core-routed PRs are exempt from the nag cycle", func(t *testing.T) {
		pr := model.PullRequestState{
			SubmitterHandle: "alice",
			CurrentLabels:   []string{"needs_revision"},
			Comments:        []model.Comment{botComment(30, "pending")},
		}
		out := desiredWith("core_review")

		application.ReconcileComments(pr, out, nil, passNow)

		assert.Empty(t, out.DesiredComments)

		// The alias member resolving to core_review is equally exempt.
		out = desiredWith("core_review_existing")
		application.ReconcileComments(pr, out, nil, passNow)
		assert.Empty(t, out.DesiredComments)
	})

	t.Run("bot comment stops the scan even without action", func(t *testing.T) {
		// An older maintainer shipit must not be reconsidered once a newer
		// bot comment has been seen.
		pr := model.PullRequestState{
			SubmitterHandle: "alice",
			Comments: []model.Comment{
				{AuthorHandle: "bob", Body: "shipit", CreatedAt: passNow.Add(-40 * 24 * time.Hour)},
				botComment(2, "thanks for the PR"),
			},
		}
		out := desiredWith("community_review_existing")

		application.ReconcileComments(pr, out, []string{"bob"}, passNow)

		assert.False(t, out.DesiredLabels.Has("shipit"))
		assert.False(t, out.UnlabelingForced)
	})
}

func TestReconcileComments_MaintainerVerdicts(t *testing.T) {
	t.Run("shipit forces unlabeling and acknowledges", func(t *testing.T) {
		pr := model.PullRequestState{
			SubmitterHandle: "alice",
			Comments: []model.Comment{
				{AuthorHandle: "bob", Body: "LGTM, shipit!", CreatedAt: passNow.Add(-time.Hour)},
			},
		}
		out := desiredWith("community_review_existing")

		application.ReconcileComments(pr, out, []string{"bob"}, passNow)

		assert.True(t, out.UnlabelingForced)
		assert.True(t, out.DesiredLabels.Has("shipit"))
		assert.Equal(t, []string{"shipit"}, out.DesiredComments)
	})

	t.Run("needs_revision forces unlabeling", func(t *testing.T) {
		pr := model.PullRequestState{
			SubmitterHandle: "alice",
			Comments: []model.Comment{
				{AuthorHandle: "bob", Body: "needs_revision: fix the error handling", CreatedAt: passNow.Add(-time.Hour)},
			},
		}
		out := desiredWith("community_review_existing")

		application.ReconcileComments(pr, out, []string{"bob"}, passNow)

		assert.True(t, out.UnlabelingForced)
		assert.True(t, out.DesiredLabels.Has("needs_revision"))
		assert.Empty(t, out.DesiredComments)
	})

	t.Run("maintainer chatter falls through to older comments", func(t *testing.T) {
		pr := model.PullRequestState{
			SubmitterHandle: "alice",
			Comments: []model.Comment{
				{AuthorHandle: "bob", Body: "shipit", CreatedAt: passNow.Add(-2 * time.Hour)},
				{AuthorHandle: "bob", Body: "nice work on the tests", CreatedAt: passNow.Add(-time.Hour)},
			},
		}
		out := desiredWith("community_review_existing")

		application.ReconcileComments(pr, out, []string{"bob"}, passNow)

		assert.True(t, out.DesiredLabels.Has("shipit"))
	})
}

func TestReconcileComments_SubmitterReadyForReview(t *testing.T) {
	readyComment := model.Comment{
		AuthorHandle: "alice",
		Body:         "rebased, ready_for_review",
		CreatedAt:    passNow.Add(-time.Hour),
	}

	t.Run("core-team module reroutes to core review", func(t *testing.T) {
		pr := model.PullRequestState{SubmitterHandle: "alice", Comments: []model.Comment{readyComment}}
		out := desiredWith()

		application.ReconcileComments(pr, out, []string{"ansible", "bob"}, passNow)

		assert.True(t, out.UnlabelingForced)
		assert.True(t, out.DesiredLabels.Has("core_review_existing"))
	})

	t.Run("unowned module reroutes to community new", func(t *testing.T) {
		pr := model.PullRequestState{SubmitterHandle: "alice", Comments: []model.Comment{readyComment}}
		out := desiredWith()

		application.ReconcileComments(pr, out, nil, passNow)

		assert.True(t, out.UnlabelingForced)
		assert.True(t, out.DesiredLabels.Has("community_review_new"))
	})

	t.Run("owned module reroutes to community existing", func(t *testing.T) {
		pr := model.PullRequestState{SubmitterHandle: "alice", Comments: []model.Comment{readyComment}}
		out := desiredWith()

		application.ReconcileComments(pr, out, []string{"bob"}, passNow)

		assert.True(t, out.UnlabelingForced)
		assert.True(t, out.DesiredLabels.Has("community_review_existing"))
	})
}

func TestReconcileComments_ForeignCommentStopsScan(t *testing.T) {
	pr := model.PullRequestState{
		SubmitterHandle: "alice",
		Comments: []model.Comment{
			{AuthorHandle: "bob", Body: "shipit", CreatedAt: passNow.Add(-2 * time.Hour)},
			{AuthorHandle: "drive-by-user", Body: "+1", CreatedAt: passNow.Add(-time.Hour)},
		},
	}
	out := desiredWith("community_review_existing")

	application.ReconcileComments(pr, out, []string{"bob"}, passNow)

	assert.False(t, out.DesiredLabels.Has("shipit"))
	assert.False(t, out.UnlabelingForced)
	assert.Empty(t, out.DesiredComments)
}

func TestReconcileComments_NoComments(t *testing.T) {
	out := desiredWith("community_review_existing")
	application.ReconcileComments(model.PullRequestState{SubmitterHandle: "alice"}, out, nil, passNow)
	assert.Empty(t, out.DesiredComments)
	assert.False(t, out.UnlabelingForced)
}
