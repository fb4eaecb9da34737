// Package format renders sync outcomes, branch status listings and batch
// summaries as terminal text.
//
// Every terminal condition of a branch renders as one "branch -> upstream"
// line:
//
//	✓ main -> origin/main: rebased (was 3 behind)
//	→ dev -> origin/dev: would rebase (2 behind, 4 ahead)
//	↑ topic -> upstream/topic: 1 ahead (skipped)
//	✗ release -> origin/release: rebase failed: CONFLICT (content): ...
//	- feature -> (no upstream configured)
//
// Status listings use the same shape, "branch -> upstream (status)", with
// "*" marking the current branch. Batch runs end with [Summary], which is
// produced for every report, including empty ones.
//
// Colors come from the styles package; output written through an
// output.Printer is downsampled to plain text when stdout is not a terminal.
package format
