package models

import "time"

// LookupOutcome records how far a click pipeline got.
type LookupOutcome string

const (
	OutcomeResolved         LookupOutcome = "resolved"
	OutcomeResolutionFailed LookupOutcome = "resolution_failed"
	OutcomeFetchFailed      LookupOutcome = "fetch_failed"
	OutcomeRenderFailed     LookupOutcome = "render_failed"
)

// Lookup is one journal row describing a single click, kept for diagnostics only.
type Lookup struct {
	ID          int64         `json:"id"`
	Latitude    float64       `json:"latitude"`
	Longitude   float64       `json:"longitude"`
	CountryCode string        `json:"country_code,omitempty"`
	CountryName string        `json:"country_name,omitempty"`
	Outcome     LookupOutcome `json:"outcome"`
	CreatedAt   time.Time     `json:"created_at"`
}
