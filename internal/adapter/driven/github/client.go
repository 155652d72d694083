// Package github implements the SnapshotSource and ActionExecutor ports
// using the go-github library.
package github

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"

	gh "github.com/google/go-github/v82/github"
	"github.com/gregjones/httpcache"

	"github.com/gofri/go-github-ratelimit/v2/github_ratelimit"

	"github.com/ericfisherdev/prtriage/internal/domain/model"
	"github.com/ericfisherdev/prtriage/internal/domain/port/driven"
)

// Compile-time interface satisfaction checks.
var (
	_ driven.SnapshotSource = (*Client)(nil)
	_ driven.ActionExecutor = (*Client)(nil)
)

// Client implements the driven ports against one GitHub repository.
type Client struct {
	gh    *gh.Client
	owner string
	repo  string
}

// NewClient creates a GitHub API client for owner/repo with the following
// transport stack:
//  1. httpcache (ETag-based conditional request caching)
//  2. go-github-ratelimit (secondary rate limit middleware, sleeps on 429)
//  3. go-github (GitHub REST API client with PAT auth)
func NewClient(token, owner, repo string) *Client {
	cacheTransport := httpcache.NewMemoryCacheTransport()
	rateLimitClient := github_ratelimit.NewClient(cacheTransport)
	client := gh.NewClient(rateLimitClient).WithAuthToken(token)

	return &Client{
		gh:    client,
		owner: owner,
		repo:  repo,
	}
}

// NewClientWithHTTPClient creates a Client with a custom http.Client and base
// URL. This constructor is intended for testing, allowing injection of an
// httptest server.
func NewClientWithHTTPClient(httpClient *http.Client, baseURL, owner, repo string) (*Client, error) {
	client := gh.NewClient(httpClient)

	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("parsing base URL: %w", err)
	}
	client.BaseURL = u

	return &Client{
		gh:    client,
		owner: owner,
		repo:  repo,
	}, nil
}

// FetchPullRequest retrieves the complete observed state of one pull request:
// metadata, changed files, current labels (via the Issues API, which is where
// GitHub keeps PR labels), and chronological comments. All list endpoints are
// paginated to exhaustion so the snapshot handed to the engine is complete.
func (c *Client) FetchPullRequest(ctx context.Context, number int) (model.PullRequestState, error) {
	pr, resp, err := c.gh.PullRequests.Get(ctx, c.owner, c.repo, number)
	if err != nil {
		return model.PullRequestState{}, fmt.Errorf("fetching PR %s/%s#%d: %w", c.owner, c.repo, number, err)
	}
	logRateLimit(resp, number)

	files, err := c.fetchChangedFiles(ctx, number)
	if err != nil {
		return model.PullRequestState{}, err
	}

	labels, err := c.fetchLabels(ctx, number)
	if err != nil {
		return model.PullRequestState{}, err
	}

	comments, err := c.fetchComments(ctx, number)
	if err != nil {
		return model.PullRequestState{}, err
	}

	return model.PullRequestState{
		Number:          pr.GetNumber(),
		Title:           pr.GetTitle(),
		SubmitterHandle: pr.GetUser().GetLogin(),
		BaseRef:         pr.GetBase().GetRef(),
		MergeableStatus: mapMergeableState(pr.GetMergeableState()),
		ChangedFiles:    files,
		CurrentLabels:   labels,
		Comments:        comments,
		CreatedAt:       pr.GetCreatedAt().Time,
		UpdatedAt:       pr.GetUpdatedAt().Time,
	}, nil
}

// ListOpenPullRequests returns the numbers of all open pull requests, newest
// first. It handles pagination automatically.
func (c *Client) ListOpenPullRequests(ctx context.Context) ([]int, error) {
	opts := &gh.PullRequestListOptions{
		State:     "open",
		Sort:      "created",
		Direction: "desc",
		ListOptions: gh.ListOptions{
			PerPage: 100,
		},
	}

	var numbers []int
	for {
		prs, resp, err := c.gh.PullRequests.List(ctx, c.owner, c.repo, opts)
		if err != nil {
			return nil, fmt.Errorf("listing open PRs for %s/%s (page %d): %w", c.owner, c.repo, opts.Page, err)
		}
		for _, pr := range prs {
			numbers = append(numbers, pr.GetNumber())
		}
		if resp.NextPage == 0 {
			break
		}
		opts.Page = resp.NextPage
	}

	return numbers, nil
}

func (c *Client) fetchChangedFiles(ctx context.Context, number int) ([]model.ChangedFile, error) {
	opts := &gh.ListOptions{PerPage: 100}

	var files []model.ChangedFile
	for {
		commitFiles, resp, err := c.gh.PullRequests.ListFiles(ctx, c.owner, c.repo, number, opts)
		if err != nil {
			return nil, fmt.Errorf("listing files for PR #%d (page %d): %w", number, opts.Page, err)
		}
		for _, f := range commitFiles {
			files = append(files, model.ChangedFile{
				Path:   f.GetFilename(),
				Status: mapFileStatus(f.GetStatus()),
			})
		}
		if resp.NextPage == 0 {
			break
		}
		opts.Page = resp.NextPage
	}

	return files, nil
}

func (c *Client) fetchLabels(ctx context.Context, number int) ([]string, error) {
	opts := &gh.ListOptions{PerPage: 100}

	var labels []string
	for {
		issueLabels, resp, err := c.gh.Issues.ListLabelsByIssue(ctx, c.owner, c.repo, number, opts)
		if err != nil {
			return nil, fmt.Errorf("listing labels for PR #%d (page %d): %w", number, opts.Page, err)
		}
		for _, l := range issueLabels {
			labels = append(labels, l.GetName())
		}
		if resp.NextPage == 0 {
			break
		}
		opts.Page = resp.NextPage
	}

	return labels, nil
}

func (c *Client) fetchComments(ctx context.Context, number int) ([]model.Comment, error) {
	opts := &gh.IssueListCommentsOptions{
		Sort:      gh.Ptr("created"),
		Direction: gh.Ptr("asc"),
		ListOptions: gh.ListOptions{
			PerPage: 100,
		},
	}

	var comments []model.Comment
	for {
		issueComments, resp, err := c.gh.Issues.ListComments(ctx, c.owner, c.repo, number, opts)
		if err != nil {
			return nil, fmt.Errorf("listing comments for PR #%d (page %d): %w", number, opts.Page, err)
		}
		for _, ic := range issueComments {
			comments = append(comments, model.Comment{
				AuthorHandle: ic.GetUser().GetLogin(),
				Body:         ic.GetBody(),
				CreatedAt:    ic.GetCreatedAt().Time,
			})
		}
		if resp.NextPage == 0 {
			break
		}
		opts.Page = resp.NextPage
	}

	return comments, nil
}

// mapMergeableState maps GitHub's mergeable_state string to the domain
// tri-state. Only "dirty" means an actual merge conflict; an empty or
// "unknown" value means GitHub has not computed mergeability yet.
func mapMergeableState(state string) model.MergeableStatus {
	switch state {
	case "dirty":
		return model.MergeableConflicted
	case "", "unknown":
		return model.MergeableUnknown
	default:
		return model.MergeableClean
	}
}

func mapFileStatus(status string) model.FileStatus {
	switch status {
	case "added":
		return model.FileAdded
	case "removed":
		return model.FileRemoved
	default:
		// "modified", "renamed", "changed", "copied" all count as touching
		// an existing file.
		return model.FileModified
	}
}

// logRateLimit emits a debug line with the remaining API quota after a call.
func logRateLimit(resp *gh.Response, number int) {
	if resp == nil {
		return
	}
	slog.Debug("github api call",
		"pr", number,
		"rate_remaining", resp.Rate.Remaining,
		"rate_limit", resp.Rate.Limit,
	)
}
