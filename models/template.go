// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/json"
	"fmt"
)

// Defaults applied when optional document members are missing.
const (
	DefaultDocumentVersion = "1.0"
	DefaultSymbol          = "list.bullet"
)

// FieldKind is the semantic kind of a template field. Value formatting per
// kind is a presentation concern; the core only carries the tag.
type FieldKind string

const (
	FieldKindText     FieldKind = "text"
	FieldKindLongText FieldKind = "longText"
	FieldKindURL      FieldKind = "url"
	FieldKindNumber   FieldKind = "number"
	FieldKindToggle   FieldKind = "toggle"
	FieldKindDate     FieldKind = "date"
	FieldKindDateTime FieldKind = "dateTime"
)

// FieldKinds lists every supported kind in declaration order.
var FieldKinds = []FieldKind{
	FieldKindText,
	FieldKindLongText,
	FieldKindURL,
	FieldKindNumber,
	FieldKindToggle,
	FieldKindDate,
	FieldKindDateTime,
}

// IsKnown reports whether k is one of [FieldKinds].
func (k FieldKind) IsKnown() bool {
	for _, known := range FieldKinds {
		if k == known {
			return true
		}
	}
	return false
}

// UnmarshalJSON rejects kinds outside of [FieldKinds].
func (k *FieldKind) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	kind := FieldKind(raw)
	if !kind.IsKnown() {
		return fmt.Errorf("%w: %q", ErrUnknownFieldKind, raw)
	}

	*k = kind
	return nil
}

// FieldCondition gates the visibility of a field: the field is shown only
// when the value stored under Key equals Equals.
type FieldCondition struct {
	Key    string `json:"key"`
	Equals string `json:"equals"`
}

// UnmarshalJSON requires both members to be present.
func (c *FieldCondition) UnmarshalJSON(data []byte) error {
	var wire struct {
		Key    *string `json:"key"`
		Equals *string `json:"equals"`
	}
	if err := json.Unmarshal(data, &wire); err != nil {
		return err
	}
	if wire.Key == nil {
		return missingMember("visibleIf.key")
	}
	if wire.Equals == nil {
		return missingMember("visibleIf.equals")
	}

	*c = FieldCondition{Key: *wire.Key, Equals: *wire.Equals}
	return nil
}

// TemplateField describes one entry of a list template.
type TemplateField struct {
	ID          string          `json:"id"`
	Key         string          `json:"key"`
	Title       string          `json:"title"`
	Kind        FieldKind       `json:"kind"`
	IsRequired  bool            `json:"isRequired"`
	Placeholder string          `json:"placeholder,omitempty"`
	HelperText  string          `json:"helperText,omitempty"`
	VisibleIf   *FieldCondition `json:"visibleIf,omitempty"`
}

// UnmarshalJSON applies field defaults: empty id, kind text, required true.
// Key and title are mandatory.
func (f *TemplateField) UnmarshalJSON(data []byte) error {
	var wire struct {
		ID          *string         `json:"id"`
		Key         *string         `json:"key"`
		Title       *string         `json:"title"`
		Kind        *FieldKind      `json:"kind"`
		IsRequired  *bool           `json:"isRequired"`
		Placeholder *string         `json:"placeholder"`
		HelperText  *string         `json:"helperText"`
		VisibleIf   *FieldCondition `json:"visibleIf"`
	}
	if err := json.Unmarshal(data, &wire); err != nil {
		return err
	}
	if wire.Key == nil {
		return missingMember("field.key")
	}
	if wire.Title == nil {
		return missingMember("field.title")
	}

	*f = TemplateField{
		ID:          valueOr(wire.ID, ""),
		Key:         *wire.Key,
		Title:       *wire.Title,
		Kind:        valueOr(wire.Kind, FieldKindText),
		IsRequired:  valueOr(wire.IsRequired, true),
		Placeholder: valueOr(wire.Placeholder, ""),
		HelperText:  valueOr(wire.HelperText, ""),
		VisibleIf:   wire.VisibleIf,
	}
	return nil
}

// IsVisible reports whether the field should be shown for the given values.
func (f TemplateField) IsVisible(values map[string]string) bool {
	if f.VisibleIf == nil {
		return true
	}
	return values[f.VisibleIf.Key] == f.VisibleIf.Equals
}

// TemplateDocument is the structured field schema owned by a collection.
// It is also the standalone template import/export document.
type TemplateDocument struct {
	Version  string          `json:"version"`
	Title    string          `json:"title"`
	Subtitle string          `json:"subtitle,omitempty"`
	Symbol   string          `json:"symbol"`
	Fields   []TemplateField `json:"fields"`
}

// UnmarshalJSON applies document defaults. Only the title is mandatory.
func (t *TemplateDocument) UnmarshalJSON(data []byte) error {
	var wire struct {
		Version  *string          `json:"version"`
		Title    *string          `json:"title"`
		Subtitle *string          `json:"subtitle"`
		Symbol   *string          `json:"symbol"`
		Fields   *[]TemplateField `json:"fields"`
	}
	if err := json.Unmarshal(data, &wire); err != nil {
		return err
	}
	if wire.Title == nil {
		return missingMember("title")
	}

	*t = TemplateDocument{
		Version:  valueOr(wire.Version, DefaultDocumentVersion),
		Title:    *wire.Title,
		Subtitle: valueOr(wire.Subtitle, ""),
		Symbol:   valueOr(wire.Symbol, DefaultSymbol),
		Fields:   valueOr(wire.Fields, []TemplateField{}),
	}
	if t.Fields == nil {
		t.Fields = []TemplateField{}
	}
	return nil
}

// RequiredFields returns the fields flagged as required, in template order.
func (t TemplateDocument) RequiredFields() []TemplateField {
	required := make([]TemplateField, 0, len(t.Fields))
	for _, f := range t.Fields {
		if f.IsRequired {
			required = append(required, f)
		}
	}
	return required
}

// FieldKeysOfKind returns the keys of every field with the given kind.
func (t TemplateDocument) FieldKeysOfKind(kind FieldKind) []string {
	keys := make([]string, 0)
	for _, f := range t.Fields {
		if f.Kind == kind {
			keys = append(keys, f.Key)
		}
	}
	return keys
}
