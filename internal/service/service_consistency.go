package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/anything-list/internal/store"
	"github.com/MKhiriev/anything-list/internal/validators"
	"github.com/MKhiriev/anything-list/models"
)

type consistencyService struct {
	dataset   store.DatasetStore
	validator validators.Validator
}

func NewConsistencyService(dataset store.DatasetStore, validator validators.Validator) ConsistencyService {
	return &consistencyService{dataset: dataset, validator: validator}
}

func (s *consistencyService) Check(ctx context.Context) (models.ConsistencyReport, error) {
	collections, err := s.dataset.ListCollections(ctx)
	if err != nil {
		return models.ConsistencyReport{}, fmt.Errorf("%w: %w", ErrPersistence, err)
	}

	items, err := s.dataset.ListItems(ctx)
	if err != nil {
		return models.ConsistencyReport{}, fmt.Errorf("%w: %w", ErrPersistence, err)
	}

	return BuildConsistencyReport(ctx, s.validator, collections, items), nil
}

// BuildConsistencyReport diagnoses collections and items. A stored template
// that does not decode counts as invalid.
func BuildConsistencyReport(
	ctx context.Context,
	validator validators.Validator,
	collections []models.Collection,
	items []models.Item,
) models.ConsistencyReport {
	report := models.ConsistencyReport{
		Collections: len(collections),
		Items:       len(items),
	}

	collectionIDs := make(map[string]struct{}, len(collections))
	for _, collection := range collections {
		collectionIDs[collection.ID] = struct{}{}
		if validator.Validate(ctx, collection, validators.FieldTemplate) != nil {
			report.InvalidTemplates++
		}
	}
	report.DuplicateCollectionIDs = len(collections) - len(collectionIDs)

	itemIDs := make(map[string]struct{}, len(items))
	for _, item := range items {
		itemIDs[item.ID] = struct{}{}
		if _, ok := collectionIDs[item.CollectionID]; !ok {
			report.OrphanItems++
		}
		if validator.Validate(ctx, item, validators.FieldPayload) != nil {
			report.InvalidItemPayloads++
		}
	}
	report.DuplicateItemIDs = len(items) - len(itemIDs)

	return report
}
