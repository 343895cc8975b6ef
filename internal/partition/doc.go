// Package partition turns the feedback log into a JSONL knowledge base,
// partitioned by date. Feedback text is chunked into word-bounded pieces
// so downstream tooling can index it.
package partition
