package github

import (
	"context"
	"fmt"

	gh "github.com/google/go-github/v82/github"
)

// AddLabels attaches the given labels to a pull request. GitHub creates any
// label that does not exist in the repository yet.
func (c *Client) AddLabels(ctx context.Context, number int, labels []string) error {
	_, _, err := c.gh.Issues.AddLabelsToIssue(ctx, c.owner, c.repo, number, labels)
	if err != nil {
		return fmt.Errorf("adding labels %v to PR #%d: %w", labels, number, err)
	}
	return nil
}

// RemoveLabel detaches one label from a pull request.
func (c *Client) RemoveLabel(ctx context.Context, number int, label string) error {
	_, err := c.gh.Issues.RemoveLabelForIssue(ctx, c.owner, c.repo, number, label)
	if err != nil {
		return fmt.Errorf("removing label %q from PR #%d: %w", label, number, err)
	}
	return nil
}

// PostComment creates a top-level (non-diff) comment on a pull request.
func (c *Client) PostComment(ctx context.Context, number int, body string) error {
	_, _, err := c.gh.Issues.CreateComment(ctx, c.owner, c.repo, number, &gh.IssueComment{
		Body: gh.Ptr(body),
	})
	if err != nil {
		return fmt.Errorf("commenting on PR #%d: %w", number, err)
	}
	return nil
}
