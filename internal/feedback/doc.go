// Package feedback persists user feedback on translations. The canonical
// store is an append-only plain-text log; records are appended, never
// mutated and never deleted. A derived SQLite index powers the web UI's
// recent-feedback listing and duplicate suppression when building
// fine-tuning data.
package feedback
