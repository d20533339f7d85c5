// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/anything-list/internal/codec"
	"github.com/MKhiriev/anything-list/models"
)

// AccountBindingService is the account binding gate. It decides whether the
// device may synchronize with the signed-in cloud account and performs the
// explicit rebind.
type AccountBindingService interface {
	// FetchBindingState queries the account status source and the persisted
	// bound account. It never mutates anything.
	// Returns an error wrapping ErrAccountProvider if the source fails.
	FetchBindingState(ctx context.Context) (models.BindingState, error)

	// PreviewSwitchToCurrentAccount describes what rebinding to the current
	// account would change, without writing it. A preview with no current
	// account is returned normally with WillEnableSync false.
	PreviewSwitchToCurrentAccount(ctx context.Context) (models.SwitchPreview, error)

	// SwitchBindingToCurrentAccount persists the current account (as read at
	// call time) as the bound account and returns the preview computed from
	// the state before the write.
	SwitchBindingToCurrentAccount(ctx context.Context) (models.SwitchPreview, error)
}

// ImportService decodes external documents, plans their reconciliation with
// the local dataset and commits the result atomically.
type ImportService interface {
	// ImportTemplate creates one empty collection owning the template.
	ImportTemplate(ctx context.Context, data []byte, format codec.Format) (models.ImportResult, error)

	// ImportSnapshot creates one collection with the snapshot's items under
	// fresh identifiers.
	ImportSnapshot(ctx context.Context, data []byte) (models.ImportResult, error)

	// RestoreBackup replaces the whole local dataset with the backup.
	RestoreBackup(ctx context.Context, data []byte) (models.ImportResult, error)
}

// ExportService builds the documents that ImportService consumes.
type ExportService interface {
	ExportTemplate(ctx context.Context, collectionID string) (models.TemplateDocument, error)
	ExportSnapshot(ctx context.Context, collectionID string) (models.SnapshotDocument, error)
	ExportBackup(ctx context.Context) (models.BackupDocument, error)
}

// CollectionService manages collections as a whole.
type CollectionService interface {
	// CreateFromTemplate validates doc and creates an empty collection owning
	// it. Returns the new collection id.
	CreateFromTemplate(ctx context.Context, doc models.TemplateDocument) (string, error)

	// CreateFromLibrary creates a collection from the built-in template at
	// index.
	CreateFromLibrary(ctx context.Context, index int) (string, error)

	// List returns every collection with its summary, oldest first.
	List(ctx context.Context) ([]models.CollectionOverview, error)

	// Delete removes the collection together with its items.
	Delete(ctx context.Context, collectionID string) error

	// ClearAll removes every collection and item.
	ClearAll(ctx context.Context) error
}

// ConsistencyService diagnoses the local dataset without repairing it.
type ConsistencyService interface {
	Check(ctx context.Context) (models.ConsistencyReport, error)
}

// IDGenerator produces fresh record identifiers.
type IDGenerator interface {
	Generate() string
}
