package models

import (
	"fmt"
	"strings"
)

// ConsistencyReport is a read-only diagnosis of the local dataset.
type ConsistencyReport struct {
	Collections            int `json:"collections"`
	Items                  int `json:"items"`
	DuplicateCollectionIDs int `json:"duplicate_collection_ids"`
	DuplicateItemIDs       int `json:"duplicate_item_ids"`
	OrphanItems            int `json:"orphan_items"`
	InvalidTemplates       int `json:"invalid_templates"`
	InvalidItemPayloads    int `json:"invalid_item_payloads"`
}

// HasIssues reports whether any of the problem counters is non-zero.
func (r ConsistencyReport) HasIssues() bool {
	return r.DuplicateCollectionIDs > 0 || r.DuplicateItemIDs > 0 || r.OrphanItems > 0 ||
		r.InvalidTemplates > 0 || r.InvalidItemPayloads > 0
}

// String renders the report as shown to the user.
func (r ConsistencyReport) String() string {
	lines := []string{
		"Consistency Check",
		fmt.Sprintf("Collections: %d", r.Collections),
		fmt.Sprintf("Items: %d", r.Items),
		fmt.Sprintf("Duplicate Collection IDs: %d", r.DuplicateCollectionIDs),
		fmt.Sprintf("Duplicate Item IDs: %d", r.DuplicateItemIDs),
		fmt.Sprintf("Orphan Items: %d", r.OrphanItems),
		fmt.Sprintf("Invalid Templates: %d", r.InvalidTemplates),
		fmt.Sprintf("Invalid Item Payloads: %d", r.InvalidItemPayloads),
	}
	return strings.Join(lines, "\n")
}
