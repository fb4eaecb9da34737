package format

import (
	"fmt"
	"strings"

	"github.com/simeg/git-x-sub001/internal/branchsync"
	"github.com/simeg/git-x-sub001/internal/ui/styles"
)

// Plural returns "1 branch" or "n branches".
func Plural(n int) string {
	if n == 1 {
		return "1 branch"
	}
	return fmt.Sprintf("%d branches", n)
}

// StatusText renders a status with its symbol, e.g. "↓ 3 behind".
func StatusText(s branchsync.Status) string {
	return styles.StatusStyle(s.Kind).Render(styles.StatusSymbol(s.Kind) + " " + s.String())
}

// BranchLine renders one entry of the upstream status listing.
func BranchLine(st branchsync.BranchState) string {
	indicator := "  "
	branch := st.Branch
	if st.Current {
		indicator = "* "
		branch = styles.AccentStyle.Render(branch)
	}
	if st.Upstream == "" {
		return fmt.Sprintf("%s%s -> %s", indicator, branch, styles.MutedStyle.Render("(no upstream)"))
	}
	return fmt.Sprintf("%s%s -> %s (%s)", indicator, branch, st.Upstream, StatusText(st.Status))
}

// StatusListing renders the listing of all local branches.
func StatusListing(states []branchsync.BranchState) string {
	if len(states) == 0 {
		return "No local branches found\n"
	}
	var b strings.Builder
	for _, st := range states {
		b.WriteString(BranchLine(st))
		b.WriteString("\n")
	}
	return b.String()
}

// StatusHeaders are the column headers of the tabular status listing.
var StatusHeaders = []string{"BRANCH", "UPSTREAM", "STATUS"}

// StatusRows returns table rows for the status listing and the index of the
// current branch, or -1.
func StatusRows(states []branchsync.BranchState) ([][]string, int) {
	rows := make([][]string, 0, len(states))
	current := -1
	for i, st := range states {
		if st.Current {
			current = i
		}
		if st.Upstream == "" {
			rows = append(rows, []string{st.Branch, "-", styles.MutedStyle.Render("no upstream")})
			continue
		}
		rows = append(rows, []string{st.Branch, st.Upstream, StatusText(st.Status)})
	}
	return rows, current
}

// verb names the reconciling action, e.g. "rebase" or "merged".
func verb(strategy string, past bool) string {
	switch {
	case strategy == branchsync.StrategyMerge && past:
		return "merged"
	case strategy == branchsync.StrategyMerge:
		return "merge"
	case past:
		return "rebased"
	default:
		return "rebase"
	}
}

// OutcomeLine renders the terminal state of one branch in the same
// "branch -> upstream" shape as BranchLine.
func OutcomeLine(o branchsync.Outcome, strategy string) string {
	if o.NoUpstream {
		sym := styles.CurrentSymbols().NoUpstream
		return styles.MutedStyle.Render(fmt.Sprintf("%s %s -> (no upstream configured)", sym, o.Branch))
	}

	var detail string
	switch o.Result.Kind {
	case branchsync.ResultUpToDate:
		detail = "up-to-date"
	case branchsync.ResultSynced:
		detail = fmt.Sprintf("%s (was %s)", verb(strategy, true), o.Status)
	case branchsync.ResultWouldSync:
		detail = fmt.Sprintf("would %s (%s)", verb(strategy, false), o.Status)
	case branchsync.ResultAhead:
		detail = fmt.Sprintf("%d ahead (skipped)", o.Status.Ahead)
	default:
		detail = o.Result.Reason
	}

	head := o.Branch
	if o.Upstream != "" {
		head += " -> " + o.Upstream
	}

	style := styles.ResultStyle(o.Result.Kind)
	return style.Render(styles.ResultSymbol(o.Result.Kind)) + " " + head + ": " + detail
}

// StartMessage announces a batch run over pending branches.
func StartMessage(pending int, strategy string, dryRun bool) string {
	if dryRun {
		return fmt.Sprintf("(dry run) Would sync %s with upstream using %s:", Plural(pending), strategy)
	}
	return fmt.Sprintf("Syncing %s with upstream using %s:", Plural(pending), strategy)
}

// Report renders every outcome of a batch followed by its summary.
func Report(r branchsync.Report) string {
	var b strings.Builder
	for _, o := range r.Outcomes {
		b.WriteString("  ")
		b.WriteString(OutcomeLine(o, r.Strategy))
		b.WriteString("\n")
	}
	if len(r.Outcomes) > 0 {
		b.WriteString("\n")
	}
	b.WriteString(Summary(r))
	b.WriteString("\n")
	return b.String()
}

// Summary renders the closing count of a batch run. It is produced for every
// report, including one with no branches.
func Summary(r branchsync.Report) string {
	var details []string
	add := func(n int, what string) {
		if n > 0 {
			details = append(details, fmt.Sprintf("%d %s", n, what))
		}
	}
	add(r.UpToDate(), "up-to-date")
	add(r.Ahead(), "ahead (skipped)")
	add(r.Failed(), "failed")
	add(r.NoUpstream, "without upstream")
	add(r.Excluded, "excluded")

	var head string
	if r.DryRun {
		head = "Would sync " + Plural(r.WouldSync())
	} else {
		head = "Synced " + Plural(r.Synced())
	}
	if len(details) > 0 {
		head += " (" + strings.Join(details, ", ") + ")"
	}
	head += "."
	if r.DryRun {
		head += " Run without --dry-run to apply changes."
	}

	switch {
	case r.Failed() > 0:
		return styles.ErrorStyle.Render(head)
	case r.DryRun:
		return styles.WarningStyle.Render(head)
	default:
		return styles.SuccessStyle.Render(head)
	}
}

// UpstreamSet confirms a new upstream assignment.
func UpstreamSet(branch, upstream string) string {
	return styles.SuccessStyle.Render(styles.CurrentSymbols().Synced) +
		fmt.Sprintf(" Upstream for '%s' set to '%s'", branch, upstream)
}
