// Package models provides functionality for listing and categorizing
// available OpenAI models. It helps users discover which chat models can
// serve as translation backends and which fine-tuned models their API key
// already owns.
package models
