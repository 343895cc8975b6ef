// Package finetune turns accumulated feedback into fine-tuning runs via
// the OpenAI fine-tuning API. It builds chat-format JSONL datasets from
// feedback records, runs and polls fine-tuning jobs, and records the
// resulting model ID in a state file that translation prefers over the
// base model. Runs are serialized so feedback writes and training reads
// do not race.
package finetune
