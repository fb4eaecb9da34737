package branchsync

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/m-mizutani/goerr/v2"
)

// StatusKind identifies which case of [Status] holds.
type StatusKind int

const (
	StatusUnknown StatusKind = iota
	StatusUpToDate
	StatusBehind
	StatusAhead
	StatusDiverged
)

func (k StatusKind) String() string {
	switch k {
	case StatusUpToDate:
		return "up-to-date"
	case StatusBehind:
		return "behind"
	case StatusAhead:
		return "ahead"
	case StatusDiverged:
		return "diverged"
	default:
		return "unknown"
	}
}

// Status describes how a branch relates to its upstream.
// Behind and Ahead are only meaningful for the kinds that carry them;
// the zero value is StatusUnknown.
type Status struct {
	Kind   StatusKind
	Behind uint32
	Ahead  uint32
}

// Unknown returns the status used when counts could not be determined.
func Unknown() Status {
	return Status{Kind: StatusUnknown}
}

// StatusFromCounts maps commit counts to a status.
// Diverged is used iff both counts are positive.
func StatusFromCounts(behind, ahead uint32) Status {
	switch {
	case behind == 0 && ahead == 0:
		return Status{Kind: StatusUpToDate}
	case ahead == 0:
		return Status{Kind: StatusBehind, Behind: behind}
	case behind == 0:
		return Status{Kind: StatusAhead, Ahead: ahead}
	default:
		return Status{Kind: StatusDiverged, Behind: behind, Ahead: ahead}
	}
}

// Classify parses a "<behind> <ahead>" record and returns the matching status.
func Classify(raw string) (Status, error) {
	fields := strings.Fields(raw)
	if len(fields) != 2 {
		return Status{}, goerr.Wrap(ErrInvalidCounts, "expected exactly two fields",
			goerr.V("raw", raw),
			goerr.V("fields", len(fields)),
		)
	}

	behind, err := parseCount(fields[0])
	if err != nil {
		return Status{}, goerr.Wrap(ErrInvalidCounts, "invalid behind count", goerr.V("raw", raw))
	}
	ahead, err := parseCount(fields[1])
	if err != nil {
		return Status{}, goerr.Wrap(ErrInvalidCounts, "invalid ahead count", goerr.V("raw", raw))
	}

	return StatusFromCounts(behind, ahead), nil
}

// parseCount accepts unsigned base-10 integers only; ParseUint rejects signs.
func parseCount(s string) (uint32, error) {
	n, err := strconv.ParseUint(s, 10, 32)
	if err != nil {
		return 0, err
	}
	return uint32(n), nil
}

// NeedsReconcile reports whether the branch is missing upstream commits.
func (s Status) NeedsReconcile() bool {
	return s.Kind == StatusBehind || s.Kind == StatusDiverged
}

func (s Status) String() string {
	switch s.Kind {
	case StatusBehind:
		return fmt.Sprintf("%d behind", s.Behind)
	case StatusAhead:
		return fmt.Sprintf("%d ahead", s.Ahead)
	case StatusDiverged:
		return fmt.Sprintf("%d behind, %d ahead", s.Behind, s.Ahead)
	default:
		return s.Kind.String()
	}
}
