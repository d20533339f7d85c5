package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/anything-list/internal/codec"
	"github.com/MKhiriev/anything-list/internal/logger"
	"github.com/MKhiriev/anything-list/internal/store"
	"github.com/MKhiriev/anything-list/models"
)

type importService struct {
	dataset    store.DatasetStore
	reconciler *Reconciler
}

func NewImportService(dataset store.DatasetStore, reconciler *Reconciler) ImportService {
	return &importService{dataset: dataset, reconciler: reconciler}
}

func (s *importService) ImportTemplate(ctx context.Context, data []byte, format codec.Format) (models.ImportResult, error) {
	doc, err := codec.DecodeTemplate(data, format)
	if err != nil {
		return models.ImportResult{}, fmt.Errorf("%w: %w", ErrCodec, err)
	}

	plan, err := s.reconciler.PlanTemplateImport(ctx, doc)
	if err != nil {
		return models.ImportResult{}, err
	}
	return s.apply(ctx, "importService.ImportTemplate", plan)
}

func (s *importService) ImportSnapshot(ctx context.Context, data []byte) (models.ImportResult, error) {
	doc, err := codec.Decode[models.SnapshotDocument](data)
	if err != nil {
		return models.ImportResult{}, fmt.Errorf("%w: %w", ErrCodec, err)
	}

	plan, err := s.reconciler.PlanSnapshotImport(ctx, doc)
	if err != nil {
		return models.ImportResult{}, err
	}
	return s.apply(ctx, "importService.ImportSnapshot", plan)
}

func (s *importService) RestoreBackup(ctx context.Context, data []byte) (models.ImportResult, error) {
	doc, err := codec.Decode[models.BackupDocument](data)
	if err != nil {
		return models.ImportResult{}, fmt.Errorf("%w: %w", ErrCodec, err)
	}

	plan, err := s.reconciler.PlanBackupRestore(ctx, doc)
	if err != nil {
		return models.ImportResult{}, err
	}

	// the wipe must not be interrupted half way
	return s.apply(context.WithoutCancel(ctx), "importService.RestoreBackup", plan)
}

func (s *importService) apply(ctx context.Context, funcName string, plan models.ReconcilePlan) (models.ImportResult, error) {
	if err := s.dataset.Commit(ctx, plan.Batch); err != nil {
		return models.ImportResult{}, fmt.Errorf("%w: %w", ErrPersistence, err)
	}

	result := plan.Result()
	logger.FromContext(ctx).Info().
		Str("func", funcName).
		Int("collections", result.Collections).
		Int("items", result.Items).
		Int("skipped_collections", result.SkippedCollections).
		Int("skipped_items", result.SkippedItems).
		Msg("import committed")

	return result, nil
}
