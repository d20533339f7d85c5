// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/MKhiriev/anything-list/models"
)

const (
	collectionsTable = "collections"
	itemsTable       = "items"
)

var collectionColumns = []string{
	"id",
	"title",
	"subtitle",
	"symbol",
	"template_data",
	"created_at",
	"updated_at",
}

var itemColumns = []string{
	"id",
	"collection_id",
	"payload_data",
	"created_at",
	"updated_at",
	"last_executed_at",
}

func newBuilder(format sq.PlaceholderFormat) sq.StatementBuilderType {
	return sq.StatementBuilder.PlaceholderFormat(format)
}

func buildInsertCollectionQuery(b sq.StatementBuilderType, c models.Collection) (string, []any, error) {
	query, args, err := b.Insert(collectionsTable).
		Columns(collectionColumns...).
		Values(
			c.ID,
			c.Title,
			c.Subtitle,
			c.Symbol,
			string(c.TemplateData),
			c.CreatedAt.UTC(),
			c.UpdatedAt.UTC(),
		).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildInsertItemQuery(b sq.StatementBuilderType, item models.Item) (string, []any, error) {
	var lastExecutedAt any
	if item.LastExecutedAt != nil {
		lastExecutedAt = item.LastExecutedAt.UTC()
	}

	query, args, err := b.Insert(itemsTable).
		Columns(itemColumns...).
		Values(
			item.ID,
			item.CollectionID,
			string(item.PayloadData),
			item.CreatedAt.UTC(),
			item.UpdatedAt.UTC(),
			lastExecutedAt,
		).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

// buildSelectCollectionsQuery selects collections, narrowed to ids when any
// are given.
func buildSelectCollectionsQuery(b sq.StatementBuilderType, ids ...string) (string, []any, error) {
	q := b.Select(collectionColumns...).From(collectionsTable)
	if len(ids) > 0 {
		q = q.Where(sq.Eq{"id": ids})
	}

	query, args, err := q.OrderBy("created_at", "id").ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

// buildSelectItemsQuery selects items, narrowed to one collection when
// collectionID is not empty.
func buildSelectItemsQuery(b sq.StatementBuilderType, collectionID string) (string, []any, error) {
	q := b.Select(itemColumns...).From(itemsTable)
	if collectionID != "" {
		q = q.Where(sq.Eq{"collection_id": collectionID})
	}

	query, args, err := q.OrderBy("created_at", "id").ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

// buildDeleteByIDsQuery deletes the rows of table whose id is in ids.
func buildDeleteByIDsQuery(b sq.StatementBuilderType, table string, ids []string) (string, []any, error) {
	query, args, err := b.Delete(table).Where(sq.Eq{"id": ids}).ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

// buildDeleteAllQuery empties table.
func buildDeleteAllQuery(b sq.StatementBuilderType, table string) (string, []any, error) {
	query, args, err := b.Delete(table).ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}
