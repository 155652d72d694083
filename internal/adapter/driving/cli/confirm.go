package cli

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/ericfisherdev/prtriage/internal/application"
	"github.com/ericfisherdev/prtriage/internal/domain/model"
)

// newPromptConfirm returns a ConfirmFunc that renders the PR and its proposed
// actions and reads an interactive verdict: y applies, a aborts the whole
// run, anything else skips. For an empty action set (always-pause mode) the
// default flips to continue and n also aborts.
func newPromptConfirm(in io.Reader, out io.Writer) application.ConfirmFunc {
	reader := bufio.NewReader(in)

	return func(pr model.PullRequestState, moduleMaintainers []string, actions model.ActionSet) application.Decision {
		renderPR(out, pr, moduleMaintainers, actions)

		if actions.IsEmpty() {
			fmt.Fprint(out, "No actions. Continue (Y/n/a)? ")
			switch readAnswer(reader) {
			case "n", "a":
				return application.Abort
			default:
				return application.Skip
			}
		}

		fmt.Fprint(out, "Take recommended actions (y/N/a)? ")
		switch readAnswer(reader) {
		case "y":
			return application.Proceed
		case "a":
			return application.Abort
		default:
			return application.Skip
		}
	}
}

// autoConfirm returns a ConfirmFunc that renders the proposal and proceeds
// without prompting.
func autoConfirm(out io.Writer) application.ConfirmFunc {
	return func(pr model.PullRequestState, moduleMaintainers []string, actions model.ActionSet) application.Decision {
		renderPR(out, pr, moduleMaintainers, actions)
		return application.Proceed
	}
}

func readAnswer(reader *bufio.Reader) string {
	line, err := reader.ReadString('\n')
	if err != nil && line == "" {
		// EOF on stdin: treat as the default answer.
		return ""
	}
	return strings.ToLower(strings.TrimSpace(line))
}

func renderPR(out io.Writer, pr model.PullRequestState, moduleMaintainers []string, actions model.ActionSet) {
	fmt.Fprintf(out, "\nPR #%d: %s\n", pr.Number, pr.Title)
	fmt.Fprintf(out, "Submitter: %s\n", pr.SubmitterHandle)
	fmt.Fprintf(out, "Maintainers: %s\n", orNone(moduleMaintainers))
	fmt.Fprintf(out, "Current labels: %s\n", orNone(pr.CurrentLabels))

	for _, label := range actions.AddLabels {
		fmt.Fprintf(out, "  + label %s\n", label)
	}
	for _, label := range actions.RemoveLabels {
		fmt.Fprintf(out, "  - label %s\n", label)
	}
	for _, body := range actions.PostComments {
		fmt.Fprintf(out, "  > comment: %s\n", truncate(body, 96))
	}
}

func orNone(values []string) string {
	if len(values) == 0 {
		return "(none)"
	}
	return strings.Join(values, ", ")
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-1] + "…"
}
