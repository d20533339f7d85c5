package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/anything-list/internal/codec"
	"github.com/MKhiriev/anything-list/internal/logger"
	"github.com/MKhiriev/anything-list/internal/store"
	"github.com/MKhiriev/anything-list/models"
)

type exportService struct {
	dataset store.DatasetStore
	now     func() time.Time
}

func NewExportService(dataset store.DatasetStore) ExportService {
	return &exportService{
		dataset: dataset,
		now:     func() time.Time { return time.Now().UTC() },
	}
}

func (s *exportService) ExportTemplate(ctx context.Context, collectionID string) (models.TemplateDocument, error) {
	collection, err := getCollection(ctx, s.dataset, collectionID)
	if err != nil {
		return models.TemplateDocument{}, err
	}
	return decodeStoredTemplate(collection)
}

func (s *exportService) ExportSnapshot(ctx context.Context, collectionID string) (models.SnapshotDocument, error) {
	collection, err := getCollection(ctx, s.dataset, collectionID)
	if err != nil {
		return models.SnapshotDocument{}, err
	}

	template, err := decodeStoredTemplate(collection)
	if err != nil {
		return models.SnapshotDocument{}, err
	}

	items, err := s.dataset.ListItemsByCollection(ctx, collection.ID)
	if err != nil {
		return models.SnapshotDocument{}, fmt.Errorf("%w: %w", ErrPersistence, err)
	}

	snapshotItems := make([]models.SnapshotItem, 0, len(items))
	for _, item := range items {
		values, ok := decodeStoredPayload(ctx, "exportService.ExportSnapshot", item)
		if !ok {
			continue
		}
		snapshotItems = append(snapshotItems, models.SnapshotItem{
			Values:         values,
			CreatedAt:      item.CreatedAt,
			UpdatedAt:      item.UpdatedAt,
			LastExecutedAt: item.LastExecutedAt,
		})
	}

	return models.SnapshotDocument{
		Version: models.DefaultDocumentVersion,
		Collection: models.SnapshotCollection{
			Title:     collection.Title,
			Subtitle:  collection.Subtitle,
			Symbol:    collection.Symbol,
			Template:  template,
			CreatedAt: collection.CreatedAt,
			UpdatedAt: collection.UpdatedAt,
		},
		Items:      snapshotItems,
		ExportedAt: s.now(),
	}, nil
}

// ExportBackup writes every collection with its items. Items whose
// collection does not exist are not exported.
func (s *exportService) ExportBackup(ctx context.Context) (models.BackupDocument, error) {
	collections, err := s.dataset.ListCollections(ctx)
	if err != nil {
		return models.BackupDocument{}, fmt.Errorf("%w: %w", ErrPersistence, err)
	}

	items, err := s.dataset.ListItems(ctx)
	if err != nil {
		return models.BackupDocument{}, fmt.Errorf("%w: %w", ErrPersistence, err)
	}

	byCollection := make(map[string][]models.BackupItem, len(collections))
	for _, item := range items {
		values, ok := decodeStoredPayload(ctx, "exportService.ExportBackup", item)
		if !ok {
			continue
		}
		byCollection[item.CollectionID] = append(byCollection[item.CollectionID], models.BackupItem{
			ID:             item.ID,
			Values:         values,
			CreatedAt:      item.CreatedAt,
			UpdatedAt:      item.UpdatedAt,
			LastExecutedAt: item.LastExecutedAt,
		})
	}

	doc := models.BackupDocument{
		Version:     models.DefaultDocumentVersion,
		ExportedAt:  s.now(),
		Collections: make([]models.BackupCollection, 0, len(collections)),
	}
	for _, collection := range collections {
		template, err := decodeStoredTemplate(collection)
		if err != nil {
			return models.BackupDocument{}, err
		}

		backupItems := byCollection[collection.ID]
		if backupItems == nil {
			backupItems = []models.BackupItem{}
		}

		doc.Collections = append(doc.Collections, models.BackupCollection{
			ID:        collection.ID,
			Title:     collection.Title,
			Subtitle:  collection.Subtitle,
			Symbol:    collection.Symbol,
			Template:  template,
			CreatedAt: collection.CreatedAt,
			UpdatedAt: collection.UpdatedAt,
			Items:     backupItems,
		})
	}

	return doc, nil
}

func getCollection(ctx context.Context, dataset store.DatasetStore, id string) (models.Collection, error) {
	collection, err := dataset.GetCollection(ctx, id)
	if errors.Is(err, store.ErrCollectionNotFound) {
		return models.Collection{}, fmt.Errorf("%w: %s", ErrCollectionNotFound, id)
	}
	if err != nil {
		return models.Collection{}, fmt.Errorf("%w: %w", ErrPersistence, err)
	}
	return collection, nil
}

func decodeStoredTemplate(collection models.Collection) (models.TemplateDocument, error) {
	template, err := codec.Decode[models.TemplateDocument](collection.TemplateData)
	if err != nil {
		return models.TemplateDocument{}, fmt.Errorf("%w: template of collection %s: %w", ErrCodec, collection.ID, err)
	}
	return template, nil
}

// decodeStoredPayload reports false, after logging, when the payload of item
// cannot be decoded.
func decodeStoredPayload(ctx context.Context, funcName string, item models.Item) (map[string]string, bool) {
	values, err := codec.DecodePayload(item.PayloadData)
	if err != nil {
		logger.FromContext(ctx).Warn().Err(err).
			Str("func", funcName).
			Str("item_id", item.ID).
			Str("collection_id", item.CollectionID).
			Msg("skipping item with undecodable payload")
		return nil, false
	}
	return values, true
}
