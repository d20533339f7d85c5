// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/json"
	"time"
)

// SnapshotCollection is the collection header of a single-list snapshot.
type SnapshotCollection struct {
	Title     string           `json:"title"`
	Subtitle  string           `json:"subtitle,omitempty"`
	Symbol    string           `json:"symbol"`
	Template  TemplateDocument `json:"template"`
	CreatedAt time.Time        `json:"createdAt"`
	UpdatedAt time.Time        `json:"updatedAt"`
}

func (c *SnapshotCollection) UnmarshalJSON(data []byte) error {
	var wire struct {
		Title     *string           `json:"title"`
		Subtitle  *string           `json:"subtitle"`
		Symbol    *string           `json:"symbol"`
		Template  *TemplateDocument `json:"template"`
		CreatedAt *time.Time        `json:"createdAt"`
		UpdatedAt *time.Time        `json:"updatedAt"`
	}
	if err := json.Unmarshal(data, &wire); err != nil {
		return err
	}

	switch {
	case wire.Title == nil:
		return missingMember("collection.title")
	case wire.Template == nil:
		return missingMember("collection.template")
	case wire.CreatedAt == nil:
		return missingMember("collection.createdAt")
	case wire.UpdatedAt == nil:
		return missingMember("collection.updatedAt")
	}

	*c = SnapshotCollection{
		Title:     *wire.Title,
		Subtitle:  valueOr(wire.Subtitle, ""),
		Symbol:    valueOr(wire.Symbol, DefaultSymbol),
		Template:  *wire.Template,
		CreatedAt: *wire.CreatedAt,
		UpdatedAt: *wire.UpdatedAt,
	}
	return nil
}

// SnapshotItem is one item of a snapshot. Identifiers are not carried:
// importing a snapshot always assigns fresh ones.
type SnapshotItem struct {
	Values         map[string]string `json:"values"`
	CreatedAt      time.Time         `json:"createdAt"`
	UpdatedAt      time.Time         `json:"updatedAt"`
	LastExecutedAt *time.Time        `json:"lastExecutedAt,omitempty"`
}

func (i *SnapshotItem) UnmarshalJSON(data []byte) error {
	var wire struct {
		Values         map[string]string `json:"values"`
		CreatedAt      *time.Time        `json:"createdAt"`
		UpdatedAt      *time.Time        `json:"updatedAt"`
		LastExecutedAt *time.Time        `json:"lastExecutedAt"`
	}
	if err := json.Unmarshal(data, &wire); err != nil {
		return err
	}
	if wire.CreatedAt == nil {
		return missingMember("item.createdAt")
	}
	if wire.UpdatedAt == nil {
		return missingMember("item.updatedAt")
	}
	if wire.Values == nil {
		wire.Values = map[string]string{}
	}

	*i = SnapshotItem{
		Values:         wire.Values,
		CreatedAt:      *wire.CreatedAt,
		UpdatedAt:      *wire.UpdatedAt,
		LastExecutedAt: wire.LastExecutedAt,
	}
	return nil
}

// SnapshotDocument is the export format of a single collection with its items.
type SnapshotDocument struct {
	Version    string             `json:"version"`
	Collection SnapshotCollection `json:"collection"`
	Items      []SnapshotItem     `json:"items"`
	ExportedAt time.Time          `json:"exportedAt"`
}

// UnmarshalJSON requires the collection; exportedAt defaults to the Unix epoch.
func (d *SnapshotDocument) UnmarshalJSON(data []byte) error {
	var wire struct {
		Version    *string             `json:"version"`
		Collection *SnapshotCollection `json:"collection"`
		Items      []SnapshotItem      `json:"items"`
		ExportedAt *time.Time          `json:"exportedAt"`
	}
	if err := json.Unmarshal(data, &wire); err != nil {
		return err
	}
	if wire.Collection == nil {
		return missingMember("collection")
	}
	if wire.Items == nil {
		wire.Items = []SnapshotItem{}
	}

	*d = SnapshotDocument{
		Version:    valueOr(wire.Version, DefaultDocumentVersion),
		Collection: *wire.Collection,
		Items:      wire.Items,
		ExportedAt: valueOr(wire.ExportedAt, time.Unix(0, 0).UTC()),
	}
	return nil
}

// BackupItem is one item inside a backup collection.
type BackupItem struct {
	ID             string            `json:"id"`
	Values         map[string]string `json:"values"`
	CreatedAt      time.Time         `json:"createdAt"`
	UpdatedAt      time.Time         `json:"updatedAt"`
	LastExecutedAt *time.Time        `json:"lastExecutedAt,omitempty"`
}

func (i *BackupItem) UnmarshalJSON(data []byte) error {
	var wire struct {
		ID             *string           `json:"id"`
		Values         map[string]string `json:"values"`
		CreatedAt      *time.Time        `json:"createdAt"`
		UpdatedAt      *time.Time        `json:"updatedAt"`
		LastExecutedAt *time.Time        `json:"lastExecutedAt"`
	}
	if err := json.Unmarshal(data, &wire); err != nil {
		return err
	}
	if wire.CreatedAt == nil {
		return missingMember("item.createdAt")
	}
	if wire.UpdatedAt == nil {
		return missingMember("item.updatedAt")
	}
	if wire.Values == nil {
		wire.Values = map[string]string{}
	}

	*i = BackupItem{
		ID:             valueOr(wire.ID, ""),
		Values:         wire.Values,
		CreatedAt:      *wire.CreatedAt,
		UpdatedAt:      *wire.UpdatedAt,
		LastExecutedAt: wire.LastExecutedAt,
	}
	return nil
}

// BackupCollection is one collection of a full backup, items included.
type BackupCollection struct {
	ID        string           `json:"id"`
	Title     string           `json:"title"`
	Subtitle  string           `json:"subtitle,omitempty"`
	Symbol    string           `json:"symbol"`
	Template  TemplateDocument `json:"template"`
	CreatedAt time.Time        `json:"createdAt"`
	UpdatedAt time.Time        `json:"updatedAt"`
	Items     []BackupItem     `json:"items"`
}

func (c *BackupCollection) UnmarshalJSON(data []byte) error {
	var wire struct {
		ID        *string           `json:"id"`
		Title     *string           `json:"title"`
		Subtitle  *string           `json:"subtitle"`
		Symbol    *string           `json:"symbol"`
		Template  *TemplateDocument `json:"template"`
		CreatedAt *time.Time        `json:"createdAt"`
		UpdatedAt *time.Time        `json:"updatedAt"`
		Items     []BackupItem      `json:"items"`
	}
	if err := json.Unmarshal(data, &wire); err != nil {
		return err
	}

	switch {
	case wire.Title == nil:
		return missingMember("collection.title")
	case wire.Template == nil:
		return missingMember("collection.template")
	case wire.CreatedAt == nil:
		return missingMember("collection.createdAt")
	case wire.UpdatedAt == nil:
		return missingMember("collection.updatedAt")
	}
	if wire.Items == nil {
		wire.Items = []BackupItem{}
	}

	*c = BackupCollection{
		ID:        valueOr(wire.ID, ""),
		Title:     *wire.Title,
		Subtitle:  valueOr(wire.Subtitle, ""),
		Symbol:    valueOr(wire.Symbol, DefaultSymbol),
		Template:  *wire.Template,
		CreatedAt: *wire.CreatedAt,
		UpdatedAt: *wire.UpdatedAt,
		Items:     wire.Items,
	}
	return nil
}

// BackupDocument is the whole-store backup format.
type BackupDocument struct {
	Version     string             `json:"version"`
	ExportedAt  time.Time          `json:"exportedAt"`
	Collections []BackupCollection `json:"collections"`
}

func (d *BackupDocument) UnmarshalJSON(data []byte) error {
	var wire struct {
		Version     *string            `json:"version"`
		ExportedAt  *time.Time         `json:"exportedAt"`
		Collections []BackupCollection `json:"collections"`
	}
	if err := json.Unmarshal(data, &wire); err != nil {
		return err
	}
	if wire.ExportedAt == nil {
		return missingMember("exportedAt")
	}
	if wire.Collections == nil {
		wire.Collections = []BackupCollection{}
	}

	*d = BackupDocument{
		Version:     valueOr(wire.Version, DefaultDocumentVersion),
		ExportedAt:  *wire.ExportedAt,
		Collections: wire.Collections,
	}
	return nil
}
