package branchsync

// Reconciliation strategies.
const (
	StrategyRebase = "rebase"
	StrategyMerge  = "merge"
)

// Policy controls how pending branches are reconciled.
type Policy struct {
	UseMerge bool // merge upstream in instead of rebasing onto it
	DryRun   bool // report what would happen without touching the repository
}

// Strategy returns StrategyMerge or StrategyRebase.
func (p Policy) Strategy() string {
	if p.UseMerge {
		return StrategyMerge
	}
	return StrategyRebase
}
