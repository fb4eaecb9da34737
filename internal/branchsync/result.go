package branchsync

// ResultKind identifies which case of [Result] holds.
type ResultKind int

const (
	ResultUpToDate ResultKind = iota
	ResultSynced
	ResultWouldSync
	ResultAhead
	ResultError
)

func (k ResultKind) String() string {
	switch k {
	case ResultUpToDate:
		return "up-to-date"
	case ResultSynced:
		return "synced"
	case ResultWouldSync:
		return "would-sync"
	case ResultAhead:
		return "ahead"
	default:
		return "error"
	}
}

// Result is the outcome of reconciling one branch.
// Reason is set only for ResultError.
type Result struct {
	Kind   ResultKind
	Reason string
}

// Failed returns an error result carrying reason.
func Failed(reason string) Result {
	return Result{Kind: ResultError, Reason: reason}
}

// passiveResult is the result for a status that needs no action.
func passiveResult(s Status) Result {
	switch s.Kind {
	case StatusUpToDate:
		return Result{Kind: ResultUpToDate}
	case StatusAhead:
		return Result{Kind: ResultAhead}
	default:
		return Failed("unknown sync status")
	}
}
