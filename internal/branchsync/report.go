package branchsync

// Outcome is the terminal state of one branch in either mode.
type Outcome struct {
	Branch     string
	Upstream   string
	NoUpstream bool // skipped: no upstream configured
	Status     Status
	Result     Result
}

// Report aggregates the outcomes of a batch run.
type Report struct {
	DryRun   bool
	Strategy string
	Outcomes []Outcome

	// Branches left out of the batch entirely.
	NoUpstream int
	Excluded   int
}

// Count returns how many outcomes ended with kind.
func (r Report) Count(kind ResultKind) int {
	n := 0
	for _, o := range r.Outcomes {
		if o.Result.Kind == kind {
			n++
		}
	}
	return n
}

// Synced counts branches that were reconciled.
func (r Report) Synced() int { return r.Count(ResultSynced) }

// WouldSync counts branches a dry run would reconcile.
func (r Report) WouldSync() int { return r.Count(ResultWouldSync) }

// Ahead counts branches skipped for being ahead of their upstream.
func (r Report) Ahead() int { return r.Count(ResultAhead) }

// UpToDate counts branches that needed nothing.
func (r Report) UpToDate() int { return r.Count(ResultUpToDate) }

// Failed counts branches that ended in an error.
func (r Report) Failed() int { return r.Count(ResultError) }

// Classified returns the number of branches that went through the pipeline.
func (r Report) Classified() int { return len(r.Outcomes) }
