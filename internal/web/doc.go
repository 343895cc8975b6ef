// Package web serves the translation user interface over HTTP: a text
// input form, a translate action and a feedback submission action, plus a
// recent-feedback listing. It is a plain net/http server with embedded
// html/template pages and zap request logging.
package web
