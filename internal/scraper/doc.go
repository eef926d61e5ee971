// Package scraper implements the scrape-and-normalize pipeline for ESPN NFL
// team schedule pages.
//
// The pipeline has three stages: an HTTP fetcher with browser-like headers,
// a bounded timeout, and one retry on transient failures; an extractor that
// locates the upcoming-games table by its header vocabulary (a TIME column
// without a RESULT column) rather than a fixed CSS path; and a normalizer
// that turns each raw row into a canonical six-field game record, skipping
// bye weeks, repeated headers, and already-played games.
package scraper
