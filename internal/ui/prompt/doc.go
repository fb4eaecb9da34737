// Package prompt provides simple interactive prompts.
//
// Available prompts:
//   - [Confirm]: Yes/No confirmation prompt, asked before
//     "upstream sync-all" rewrites branches when sync.confirm is set
package prompt
