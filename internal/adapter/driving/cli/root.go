// Package cli wires the cobra command tree that drives triage runs.
package cli

import (
	"errors"
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	githubadapter "github.com/ericfisherdev/prtriage/internal/adapter/driven/github"
	"github.com/ericfisherdev/prtriage/internal/adapter/driven/maintainersfile"
	"github.com/ericfisherdev/prtriage/internal/application"
	"github.com/ericfisherdev/prtriage/internal/config"
)

// Options carries the dependencies shared by all commands.
type Options struct {
	Config *config.Config
	Logger *slog.Logger
}

// Execute parses args and runs the root command.
func Execute(args []string, opts *Options) error {
	root := newRootCommand(opts)
	root.SetArgs(args)
	return root.Execute()
}

// newRootCommand creates the "prtriage" root command. The single positional
// argument selects which modules repository to triage.
func newRootCommand(opts *Options) *cobra.Command {
	var (
		prNumber    int
		startAt     int
		alwaysPause bool
		autoYes     bool
	)

	cmd := &cobra.Command{
		Use:   "prtriage [core|extras]",
		Short: "Triage pull request review-workflow labels and reminders",
		Long: "prtriage reviews the state of pull requests against the fixed review-workflow\n" +
			"label taxonomy, proposes the minimal label and comment changes, and applies\n" +
			"them after confirmation.",
		ValidArgs:     []string{"core", "extras"},
		Args:          cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("pr") && cmd.Flags().Changed("start-at") {
				return errors.New("--pr and --start-at are mutually exclusive")
			}
			return runTriage(cmd, opts, args[0], prNumber, startAt, alwaysPause, autoYes)
		},
	}

	cmd.Flags().IntVar(&prNumber, "pr", 0, "triage only the specified PR")
	cmd.Flags().IntVar(&startAt, "start-at", 0, "start triage at the specified PR number")
	cmd.Flags().BoolVarP(&alwaysPause, "pause", "p", false, "always pause between PRs, even without actions")
	cmd.Flags().BoolVarP(&autoYes, "yes", "y", false, "apply recommended actions without prompting")

	return cmd
}

func runTriage(cmd *cobra.Command, opts *Options, repo string, prNumber, startAt int, alwaysPause, autoYes bool) error {
	maintainers, err := maintainersfile.LoadForRepo(opts.Config.MaintainersDir, repo)
	if err != nil {
		return err
	}
	opts.Logger.Info("maintainer directory loaded",
		"repo", repo,
		"namespaces", len(maintainers.Namespaces()),
	)

	client := githubadapter.NewClient(
		opts.Config.GitHubToken,
		opts.Config.GitHubOwner,
		"ansible-modules-"+repo,
	)

	confirm := newPromptConfirm(cmd.InOrStdin(), cmd.OutOrStdout())
	if autoYes {
		confirm = autoConfirm(cmd.OutOrStdout())
	}

	service := application.NewTriageService(client, client, maintainers, confirm, alwaysPause)

	ctx := cmd.Context()
	now := time.Now()

	if prNumber > 0 {
		err = service.TriagePR(ctx, prNumber, now)
	} else {
		err = service.TriageAll(ctx, startAt, now)
	}
	if errors.Is(err, application.ErrAborted) {
		opts.Logger.Info("run aborted by operator")
		return nil
	}
	return err
}
