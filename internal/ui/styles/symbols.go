package styles

import (
	"charm.land/lipgloss/v2"

	"github.com/simeg/git-x-sub001/internal/branchsync"
)

// Symbols holds the icon/symbol set based on nerdfont configuration
type Symbols struct {
	UpToDate   string
	Behind     string
	Ahead      string
	Diverged   string
	Unknown    string
	Synced     string
	WouldSync  string
	Failed     string
	NoUpstream string
}

// Default symbols (no special font required)
var defaultSymbols = Symbols{
	UpToDate:   "✓",
	Behind:     "↓",
	Ahead:      "↑",
	Diverged:   "↕",
	Unknown:    "?",
	Synced:     "✓",
	WouldSync:  "→",
	Failed:     "✗",
	NoUpstream: "-",
}

// Nerd font symbols
var nerdfontSymbols = Symbols{
	UpToDate:   "\uf00c", // nf-fa-check
	Behind:     "\uf063", // nf-fa-arrow_down
	Ahead:      "\uf062", // nf-fa-arrow_up
	Diverged:   "\ue728", // nf-dev-git_compare
	Unknown:    "\uf128", // nf-fa-question
	Synced:     "\ue727", // nf-dev-git_merge
	WouldSync:  "\uf061", // nf-fa-arrow_right
	Failed:     "\uf00d", // nf-fa-times
	NoUpstream: "\uf127", // nf-fa-chain_broken
}

// useNerdfont tracks whether nerd font symbols are enabled
var useNerdfont bool

// currentSymbols holds the active symbol set
var currentSymbols = defaultSymbols

// SetNerdfont enables or disables nerd font symbols
func SetNerdfont(enabled bool) {
	useNerdfont = enabled
	if enabled {
		currentSymbols = nerdfontSymbols
	} else {
		currentSymbols = defaultSymbols
	}
}

// NerdfontEnabled returns whether nerd font symbols are enabled
func NerdfontEnabled() bool {
	return useNerdfont
}

// CurrentSymbols returns the current symbol set
func CurrentSymbols() Symbols {
	return currentSymbols
}

// StatusSymbol returns the symbol for a sync status
func StatusSymbol(kind branchsync.StatusKind) string {
	switch kind {
	case branchsync.StatusUpToDate:
		return currentSymbols.UpToDate
	case branchsync.StatusBehind:
		return currentSymbols.Behind
	case branchsync.StatusAhead:
		return currentSymbols.Ahead
	case branchsync.StatusDiverged:
		return currentSymbols.Diverged
	default:
		return currentSymbols.Unknown
	}
}

// StatusStyle returns the style used to render a sync status
func StatusStyle(kind branchsync.StatusKind) lipgloss.Style {
	switch kind {
	case branchsync.StatusUpToDate:
		return SuccessStyle
	case branchsync.StatusBehind, branchsync.StatusDiverged:
		return WarningStyle
	case branchsync.StatusAhead:
		return InfoStyle
	default:
		return MutedStyle
	}
}

// ResultSymbol returns the symbol for a reconciliation result
func ResultSymbol(kind branchsync.ResultKind) string {
	switch kind {
	case branchsync.ResultUpToDate:
		return currentSymbols.UpToDate
	case branchsync.ResultSynced:
		return currentSymbols.Synced
	case branchsync.ResultWouldSync:
		return currentSymbols.WouldSync
	case branchsync.ResultAhead:
		return currentSymbols.Ahead
	default:
		return currentSymbols.Failed
	}
}

// ResultStyle returns the style used to render a reconciliation result
func ResultStyle(kind branchsync.ResultKind) lipgloss.Style {
	switch kind {
	case branchsync.ResultUpToDate, branchsync.ResultSynced:
		return SuccessStyle
	case branchsync.ResultWouldSync:
		return WarningStyle
	case branchsync.ResultAhead:
		return InfoStyle
	default:
		return ErrorStyle
	}
}
