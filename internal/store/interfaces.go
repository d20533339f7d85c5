// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package store holds the persistence layer: the SQL-backed local dataset
// store of collections and items, and the JSON settings file that keeps the
// bound account.
package store

import (
	"context"

	"github.com/MKhiriev/anything-list/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/dataset_store_mock.go -package=mock

// DatasetStore is the local dataset of collections and items keyed by
// string identifier.
type DatasetStore interface {
	CreateCollection(ctx context.Context, collection models.Collection) error
	// DeleteCollection removes the collection row only. Items referencing it
	// are left untouched.
	DeleteCollection(ctx context.Context, id string) error
	GetCollection(ctx context.Context, id string) (models.Collection, error)
	ListCollections(ctx context.Context) ([]models.Collection, error)

	CreateItem(ctx context.Context, item models.Item) error
	DeleteItem(ctx context.Context, id string) error
	ListItems(ctx context.Context) ([]models.Item, error)
	ListItemsByCollection(ctx context.Context, collectionID string) ([]models.Item, error)

	// Commit applies the whole batch in a single transaction. On failure
	// nothing of the batch is visible.
	Commit(ctx context.Context, batch models.Batch) error
}

// ErrorClassificator decides whether a failed database operation could
// succeed if attempted again.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
