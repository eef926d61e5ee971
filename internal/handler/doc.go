// Package handler adapts raw invocation payloads, drives the scrape
// pipelines, and renders the response envelopes.
//
// Handler serves team schedules and ScoresHandler serves per-game scores.
// Both accept their parameters from query string parameters, path
// parameters, a JSON body, or direct top-level keys; the schedule handler
// additionally falls back to a default team when none is supplied. Every
// pipeline failure is rendered as a uniform 502 error envelope; the caller
// never sees a raw internal error.
package handler
