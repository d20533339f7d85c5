package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/anything-list/internal/logger"
	"github.com/MKhiriev/anything-list/models"
)

// execer is satisfied by both *sql.DB and *sql.Tx.
type execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

// datasetRepository is the SQL implementation of [DatasetStore].
//
// Every public method obtains a context-scoped logger via
// [logger.FromContext] so that failures are traced with the affected ids.
type datasetRepository struct {
	*DB
}

// NewDatasetRepository constructs a [DatasetStore] backed by db.
func NewDatasetRepository(db *DB) DatasetStore {
	return &datasetRepository{DB: db}
}

func (r *datasetRepository) CreateCollection(ctx context.Context, collection models.Collection) error {
	if err := r.insertCollection(ctx, r.DB.DB, collection); err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "datasetRepository.CreateCollection").
			Str("collection_id", collection.ID).
			Bool("retryable", r.classify(err)).
			Msg("failed to insert collection")
		return err
	}
	return nil
}

func (r *datasetRepository) DeleteCollection(ctx context.Context, id string) error {
	return r.deleteOne(ctx, collectionsTable, id, ErrCollectionNotFound, "datasetRepository.DeleteCollection")
}

func (r *datasetRepository) GetCollection(ctx context.Context, id string) (models.Collection, error) {
	collections, err := r.selectCollections(ctx, "datasetRepository.GetCollection", id)
	if err != nil {
		return models.Collection{}, err
	}
	if len(collections) == 0 {
		return models.Collection{}, fmt.Errorf("%w: %s", ErrCollectionNotFound, id)
	}
	return collections[0], nil
}

func (r *datasetRepository) ListCollections(ctx context.Context) ([]models.Collection, error) {
	return r.selectCollections(ctx, "datasetRepository.ListCollections")
}

func (r *datasetRepository) CreateItem(ctx context.Context, item models.Item) error {
	if err := r.insertItem(ctx, r.DB.DB, item); err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "datasetRepository.CreateItem").
			Str("item_id", item.ID).
			Str("collection_id", item.CollectionID).
			Bool("retryable", r.classify(err)).
			Msg("failed to insert item")
		return err
	}
	return nil
}

func (r *datasetRepository) DeleteItem(ctx context.Context, id string) error {
	return r.deleteOne(ctx, itemsTable, id, ErrItemNotFound, "datasetRepository.DeleteItem")
}

func (r *datasetRepository) ListItems(ctx context.Context) ([]models.Item, error) {
	return r.selectItems(ctx, "datasetRepository.ListItems", "")
}

func (r *datasetRepository) ListItemsByCollection(ctx context.Context, collectionID string) ([]models.Item, error) {
	return r.selectItems(ctx, "datasetRepository.ListItemsByCollection", collectionID)
}

// Commit applies batch inside one transaction: wipe, deletions (items
// before collections), then insertions (collections before items). Any
// failure rolls the transaction back.
func (r *datasetRepository) Commit(ctx context.Context, batch models.Batch) (err error) {
	log := logger.FromContext(ctx)

	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "datasetRepository.Commit").Msg("failed to begin transaction")
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer func() {
		if err == nil {
			return
		}
		if rbErr := tx.Rollback(); rbErr != nil && !errors.Is(rbErr, sql.ErrTxDone) {
			log.Err(rbErr).Str("func", "datasetRepository.Commit").Msg("failed to roll back transaction")
		}
		log.Err(err).
			Str("func", "datasetRepository.Commit").
			Bool("wipe_all", batch.WipeAll).
			Int("collections", len(batch.Collections)).
			Int("items", len(batch.Items)).
			Bool("retryable", r.classify(err)).
			Msg("batch was rolled back")
	}()

	b := r.builder()

	if batch.WipeAll {
		for _, table := range []string{itemsTable, collectionsTable} {
			query, args, buildErr := buildDeleteAllQuery(b, table)
			if buildErr != nil {
				return buildErr
			}
			if _, err = tx.ExecContext(ctx, query, args...); err != nil {
				return fmt.Errorf("%w: wipe %s: %w", ErrExecutingStatement, table, err)
			}
		}
	}

	deletions := []struct {
		table string
		ids   []string
	}{
		{itemsTable, batch.DeleteItemIDs},
		{collectionsTable, batch.DeleteCollectionIDs},
	}
	for _, d := range deletions {
		if len(d.ids) == 0 {
			continue
		}
		query, args, buildErr := buildDeleteByIDsQuery(b, d.table, d.ids)
		if buildErr != nil {
			return buildErr
		}
		if _, err = tx.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("%w: delete from %s: %w", ErrExecutingStatement, d.table, err)
		}
	}

	for _, collection := range batch.Collections {
		if err = r.insertCollection(ctx, tx, collection); err != nil {
			return err
		}
	}
	for _, item := range batch.Items {
		if err = r.insertItem(ctx, tx, item); err != nil {
			return err
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	log.Debug().
		Str("func", "datasetRepository.Commit").
		Bool("wipe_all", batch.WipeAll).
		Int("collections", len(batch.Collections)).
		Int("items", len(batch.Items)).
		Msg("batch committed")
	return nil
}

func (r *datasetRepository) insertCollection(ctx context.Context, ex execer, collection models.Collection) error {
	query, args, err := buildInsertCollectionQuery(r.builder(), collection)
	if err != nil {
		return err
	}
	if _, err = ex.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: insert collection %s: %w", ErrExecutingStatement, collection.ID, err)
	}
	return nil
}

func (r *datasetRepository) insertItem(ctx context.Context, ex execer, item models.Item) error {
	query, args, err := buildInsertItemQuery(r.builder(), item)
	if err != nil {
		return err
	}
	if _, err = ex.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: insert item %s: %w", ErrExecutingStatement, item.ID, err)
	}
	return nil
}

func (r *datasetRepository) deleteOne(ctx context.Context, table, id string, notFound error, funcName string) error {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteByIDsQuery(r.builder(), table, []string{id})
	if err != nil {
		return err
	}

	res, err := r.DB.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", funcName).Str("id", id).Bool("retryable", r.classify(err)).Msg("failed to delete row")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return fmt.Errorf("%w: %s", notFound, id)
	}
	return nil
}

func (r *datasetRepository) selectCollections(ctx context.Context, funcName string, ids ...string) ([]models.Collection, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectCollectionsQuery(r.builder(), ids...)
	if err != nil {
		return nil, err
	}

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", funcName).Bool("retryable", r.classify(err)).Msg("failed to query collections")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	collections := make([]models.Collection, 0)
	for rows.Next() {
		var (
			c            models.Collection
			templateData string
		)
		if err = rows.Scan(&c.ID, &c.Title, &c.Subtitle, &c.Symbol, &templateData, &c.CreatedAt, &c.UpdatedAt); err != nil {
			log.Err(err).Str("func", funcName).Msg("failed to scan collection row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		c.TemplateData = []byte(templateData)
		collections = append(collections, c)
	}

	if err = rows.Err(); err != nil {
		log.Err(err).Str("func", funcName).Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return collections, nil
}

func (r *datasetRepository) selectItems(ctx context.Context, funcName, collectionID string) ([]models.Item, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectItemsQuery(r.builder(), collectionID)
	if err != nil {
		return nil, err
	}

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", funcName).Str("collection_id", collectionID).
			Bool("retryable", r.classify(err)).Msg("failed to query items")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	items := make([]models.Item, 0)
	for rows.Next() {
		var (
			item           models.Item
			payloadData    string
			lastExecutedAt sql.NullTime
		)
		if err = rows.Scan(&item.ID, &item.CollectionID, &payloadData, &item.CreatedAt, &item.UpdatedAt, &lastExecutedAt); err != nil {
			log.Err(err).Str("func", funcName).Msg("failed to scan item row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		item.PayloadData = []byte(payloadData)
		if lastExecutedAt.Valid {
			t := lastExecutedAt.Time
			item.LastExecutedAt = &t
		}
		items = append(items, item)
	}

	if err = rows.Err(); err != nil {
		log.Err(err).Str("func", funcName).Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return items, nil
}
