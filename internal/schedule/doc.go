// Package schedule defines the canonical data model for scraped NFL team
// schedules: the team reference, the six-field game record with its fixed
// JSON shape, and the normalized result envelope returned to callers.
package schedule
