package entities

import "time"

// RunSummary is the recorded outcome of one check run.
type RunSummary struct {
	ID        string    `json:"id"`
	StartedAt time.Time `json:"started_at"`
	Failed    bool      `json:"failed"`
	Errors    int       `json:"errors"`
	Warnings  int       `json:"warnings"`
	Skipped   []string  `json:"skipped,omitempty"`
}
