package service

import (
	"strings"

	"github.com/MKhiriev/anything-list/internal/codec"
	"github.com/MKhiriev/anything-list/models"
)

// BuildListSummary aggregates the items of collection. An undecodable
// payload counts as an item with no values; an undecodable template as one
// without fields.
func BuildListSummary(collection models.Collection, items []models.Item) models.ListSummary {
	template, err := codec.Decode[models.TemplateDocument](collection.TemplateData)
	if err != nil {
		template = models.TemplateDocument{}
	}

	required := template.RequiredFields()
	urlKeys := template.FieldKeysOfKind(models.FieldKindURL)

	updatedAt := collection.UpdatedAt
	summary := models.ListSummary{
		CollectionID:    collection.ID,
		ItemCount:       len(items),
		LatestUpdatedAt: &updatedAt,
	}

	for _, item := range items {
		values, err := codec.DecodePayload(item.PayloadData)
		if err != nil {
			values = map[string]string{}
		}

		for _, field := range required {
			summary.RequiredFieldsTotal++
			if isFilled(values[field.Key]) {
				summary.RequiredFieldsFilled++
			}
		}
		for _, key := range urlKeys {
			if isFilled(values[key]) {
				summary.URLCount++
			}
		}

		if item.LastExecutedAt != nil &&
			(summary.LatestExecutedAt == nil || item.LastExecutedAt.After(*summary.LatestExecutedAt)) {
			executed := *item.LastExecutedAt
			summary.LatestExecutedAt = &executed
		}
	}

	return summary
}

func isFilled(value string) bool {
	return strings.TrimSpace(value) != ""
}
