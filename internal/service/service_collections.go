package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/anything-list/internal/logger"
	"github.com/MKhiriev/anything-list/internal/store"
	"github.com/MKhiriev/anything-list/models"
)

type collectionService struct {
	dataset    store.DatasetStore
	reconciler *Reconciler
}

func NewCollectionService(dataset store.DatasetStore, reconciler *Reconciler) CollectionService {
	return &collectionService{dataset: dataset, reconciler: reconciler}
}

func (s *collectionService) CreateFromTemplate(ctx context.Context, doc models.TemplateDocument) (string, error) {
	plan, err := s.reconciler.PlanTemplateImport(ctx, doc)
	if err != nil {
		return "", err
	}

	if err = s.dataset.Commit(ctx, plan.Batch); err != nil {
		return "", fmt.Errorf("%w: %w", ErrPersistence, err)
	}
	return *plan.SelectedCollectionID, nil
}

func (s *collectionService) CreateFromLibrary(ctx context.Context, index int) (string, error) {
	doc, err := LibraryTemplate(index)
	if err != nil {
		return "", err
	}
	return s.CreateFromTemplate(ctx, doc)
}

func (s *collectionService) List(ctx context.Context) ([]models.CollectionOverview, error) {
	collections, err := s.dataset.ListCollections(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPersistence, err)
	}

	items, err := s.dataset.ListItems(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPersistence, err)
	}

	byCollection := make(map[string][]models.Item, len(collections))
	for _, item := range items {
		byCollection[item.CollectionID] = append(byCollection[item.CollectionID], item)
	}

	overviews := make([]models.CollectionOverview, 0, len(collections))
	for _, collection := range collections {
		overviews = append(overviews, models.CollectionOverview{
			ID:        collection.ID,
			Title:     collection.Title,
			Subtitle:  collection.Subtitle,
			Symbol:    collection.Symbol,
			CreatedAt: collection.CreatedAt,
			UpdatedAt: collection.UpdatedAt,
			Summary:   BuildListSummary(collection, byCollection[collection.ID]),
		})
	}
	return overviews, nil
}

func (s *collectionService) Delete(ctx context.Context, collectionID string) error {
	collection, err := getCollection(ctx, s.dataset, collectionID)
	if err != nil {
		return err
	}

	items, err := s.dataset.ListItemsByCollection(ctx, collection.ID)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrPersistence, err)
	}

	batch := models.Batch{
		DeleteCollectionIDs: []string{collection.ID},
		DeleteItemIDs:       make([]string, 0, len(items)),
	}
	for _, item := range items {
		batch.DeleteItemIDs = append(batch.DeleteItemIDs, item.ID)
	}

	if err = s.dataset.Commit(ctx, batch); err != nil {
		return fmt.Errorf("%w: %w", ErrPersistence, err)
	}

	logger.FromContext(ctx).Info().
		Str("func", "collectionService.Delete").
		Str("collection_id", collection.ID).
		Int("items", len(items)).
		Msg("collection deleted")
	return nil
}

func (s *collectionService) ClearAll(ctx context.Context) error {
	if err := s.dataset.Commit(ctx, models.Batch{WipeAll: true}); err != nil {
		return fmt.Errorf("%w: %w", ErrPersistence, err)
	}

	logger.FromContext(ctx).Info().Str("func", "collectionService.ClearAll").Msg("local data cleared")
	return nil
}
