package models

import (
	"fmt"
	"math"
	"time"
)

// ListSummary aggregates the items of one collection.
type ListSummary struct {
	CollectionID         string     `json:"collection_id"`
	ItemCount            int        `json:"item_count"`
	RequiredFieldsTotal  int        `json:"required_fields_total"`
	RequiredFieldsFilled int        `json:"required_fields_filled"`
	URLCount             int        `json:"url_count"`
	LatestExecutedAt     *time.Time `json:"latest_executed_at,omitempty"`
	LatestUpdatedAt      *time.Time `json:"latest_updated_at,omitempty"`
}

// CompletionRate returns the share of filled required fields in [0, 1].
// The second value is false when there are no required fields at all.
func (s ListSummary) CompletionRate() (float64, bool) {
	if s.RequiredFieldsTotal == 0 {
		return 0, false
	}
	return float64(s.RequiredFieldsFilled) / float64(s.RequiredFieldsTotal), true
}

// CompletionText renders the completion rate as a rounded percentage, or
// "N/A" when the collection has no required values to fill.
func (s ListSummary) CompletionText() string {
	rate, ok := s.CompletionRate()
	if !ok {
		return "N/A"
	}
	return fmt.Sprintf("%d%%", int(math.Round(rate*100)))
}

// CollectionOverview is a collection as listed to the user, without its
// stored template bytes.
type CollectionOverview struct {
	ID        string      `json:"id"`
	Title     string      `json:"title"`
	Subtitle  string      `json:"subtitle,omitempty"`
	Symbol    string      `json:"symbol"`
	CreatedAt time.Time   `json:"created_at"`
	UpdatedAt time.Time   `json:"updated_at"`
	Summary   ListSummary `json:"summary"`
}
