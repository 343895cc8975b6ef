// Package translation provides Irish to English translation services
// behind a common provider interface, with OpenAI, Gemini and Anthropic
// backends. It includes a translation cache for the web server and batch
// operations, and a circuit breaker wrapper for flaky upstream APIs.
package translation
