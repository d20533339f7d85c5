package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/anything-list/internal/codec"
	"github.com/MKhiriev/anything-list/internal/logger"
	"github.com/MKhiriev/anything-list/internal/validators"
	"github.com/MKhiriev/anything-list/models"
)

// Reconciler plans how an external document is merged into the local
// dataset. Planning is pure: nothing is written until the returned batch is
// committed.
type Reconciler struct {
	ids           IDGenerator
	validator     validators.Validator
	now           func() time.Time
	encodePayload func(map[string]string) ([]byte, error)
}

func NewReconciler(ids IDGenerator, validator validators.Validator) *Reconciler {
	return &Reconciler{
		ids:           ids,
		validator:     validator,
		now:           func() time.Time { return time.Now().UTC() },
		encodePayload: codec.EncodePayload,
	}
}

// PlanTemplateImport creates one empty collection owning doc, stamped now.
func (r *Reconciler) PlanTemplateImport(ctx context.Context, doc models.TemplateDocument) (models.ReconcilePlan, error) {
	templateData, err := r.validTemplateData(ctx, doc)
	if err != nil {
		return models.ReconcilePlan{}, err
	}

	now := r.now()
	collection := models.Collection{
		ID:           r.ids.Generate(),
		Title:        doc.Title,
		Subtitle:     doc.Subtitle,
		Symbol:       doc.Symbol,
		TemplateData: templateData,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	return models.ReconcilePlan{
		Batch:                models.Batch{Collections: []models.Collection{collection}},
		SelectedCollectionID: &collection.ID,
	}, nil
}

// PlanSnapshotImport creates one collection and its items under fresh ids.
// Timestamps are copied from the snapshot. Items whose payload cannot be
// encoded are skipped.
func (r *Reconciler) PlanSnapshotImport(ctx context.Context, doc models.SnapshotDocument) (models.ReconcilePlan, error) {
	log := logger.FromContext(ctx)

	templateData, err := r.validTemplateData(ctx, doc.Collection.Template)
	if err != nil {
		return models.ReconcilePlan{}, err
	}

	collection := models.Collection{
		ID:           r.ids.Generate(),
		Title:        doc.Collection.Title,
		Subtitle:     doc.Collection.Subtitle,
		Symbol:       doc.Collection.Symbol,
		TemplateData: templateData,
		CreatedAt:    doc.Collection.CreatedAt,
		UpdatedAt:    doc.Collection.UpdatedAt,
	}

	plan := models.ReconcilePlan{SelectedCollectionID: &collection.ID}
	plan.Batch.Collections = []models.Collection{collection}
	plan.Batch.Items = make([]models.Item, 0, len(doc.Items))

	for i, snapshotItem := range doc.Items {
		payload, err := r.encodePayload(snapshotItem.Values)
		if err != nil {
			log.Warn().Err(err).
				Str("func", "Reconciler.PlanSnapshotImport").
				Int("item_index", i).
				Msg("skipping item with unencodable payload")
			plan.SkippedItems++
			continue
		}

		plan.Batch.Items = append(plan.Batch.Items, models.Item{
			ID:             r.ids.Generate(),
			CollectionID:   collection.ID,
			PayloadData:    payload,
			CreatedAt:      snapshotItem.CreatedAt,
			UpdatedAt:      snapshotItem.UpdatedAt,
			LastExecutedAt: snapshotItem.LastExecutedAt,
		})
	}

	return plan, nil
}

// PlanBackupRestore wipes the dataset and recreates it from doc in document
// order. Supplied ids are kept unless blank or already taken earlier in the
// same pass; collections and items keep separate id sets. Collections with an
// invalid template are skipped with their items. The first accepted
// collection becomes the selection.
func (r *Reconciler) PlanBackupRestore(ctx context.Context, doc models.BackupDocument) (models.ReconcilePlan, error) {
	log := logger.FromContext(ctx)

	plan := models.ReconcilePlan{
		Batch: models.Batch{
			WipeAll:     true,
			Collections: make([]models.Collection, 0, len(doc.Collections)),
			Items:       make([]models.Item, 0),
		},
	}

	usedCollectionIDs := make(map[string]struct{}, len(doc.Collections))
	usedItemIDs := make(map[string]struct{})

	for i, backupCollection := range doc.Collections {
		templateData, err := r.validTemplateData(ctx, backupCollection.Template)
		if err != nil {
			log.Warn().Err(err).
				Str("func", "Reconciler.PlanBackupRestore").
				Int("collection_index", i).
				Str("collection_id", backupCollection.ID).
				Msg("skipping collection with invalid template")
			plan.SkippedCollections++
			continue
		}

		collectionID := assignCollisionSafeID(backupCollection.ID, usedCollectionIDs, r.ids)
		plan.Batch.Collections = append(plan.Batch.Collections, models.Collection{
			ID:           collectionID,
			Title:        backupCollection.Title,
			Subtitle:     backupCollection.Subtitle,
			Symbol:       backupCollection.Symbol,
			TemplateData: templateData,
			CreatedAt:    backupCollection.CreatedAt,
			UpdatedAt:    backupCollection.UpdatedAt,
		})
		if plan.SelectedCollectionID == nil {
			selected := collectionID
			plan.SelectedCollectionID = &selected
		}

		for _, backupItem := range backupCollection.Items {
			payload, err := r.encodePayload(backupItem.Values)
			if err != nil {
				log.Warn().Err(err).
					Str("func", "Reconciler.PlanBackupRestore").
					Str("collection_id", collectionID).
					Str("item_id", backupItem.ID).
					Msg("skipping item with unencodable payload")
				plan.SkippedItems++
				continue
			}

			plan.Batch.Items = append(plan.Batch.Items, models.Item{
				ID:             assignCollisionSafeID(backupItem.ID, usedItemIDs, r.ids),
				CollectionID:   collectionID,
				PayloadData:    payload,
				CreatedAt:      backupItem.CreatedAt,
				UpdatedAt:      backupItem.UpdatedAt,
				LastExecutedAt: backupItem.LastExecutedAt,
			})
		}
	}

	return plan, nil
}

// validTemplateData validates doc and returns its stored form.
func (r *Reconciler) validTemplateData(ctx context.Context, doc models.TemplateDocument) ([]byte, error) {
	if err := r.validator.Validate(ctx, doc); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidTemplate, err)
	}

	data, err := codec.EncodeTemplate(doc)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCodec, err)
	}
	return data, nil
}

// assignCollisionSafeID keeps the trimmed candidate unless it is blank or
// already in used, in which case a fresh id is generated. The chosen id is
// recorded in used.
func assignCollisionSafeID(candidate string, used map[string]struct{}, ids IDGenerator) string {
	id := strings.TrimSpace(candidate)
	for {
		if _, taken := used[id]; id != "" && !taken {
			used[id] = struct{}{}
			return id
		}
		id = ids.Generate()
	}
}
