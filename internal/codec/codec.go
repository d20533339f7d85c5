// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package codec converts list documents between their in-memory form and
// the JSON or YAML bytes that are stored, imported and exported.
//
// JSON output is indented, map keys are sorted and timestamps use RFC 3339.
// YAML input is normalized to JSON before decoding so that the defaulting
// rules of the document types apply to both formats identically.
package codec

import (
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/MKhiriev/anything-list/models"
	"gopkg.in/yaml.v3"
)

var (
	ErrDecode = errors.New("document decoding failed")
	ErrEncode = errors.New("document encoding failed")
)

// Format is the serialization of an external document.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// FormatFromPath picks the format from a file extension. Anything that is
// not .yaml or .yml is treated as JSON.
func FormatFromPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatJSON
	}
}

// Decode unmarshals JSON data into a T.
func Decode[T any](data []byte) (T, error) {
	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		return v, fmt.Errorf("%w: %w", ErrDecode, err)
	}
	return v, nil
}

// DecodeAs unmarshals data written in the given format into a T.
func DecodeAs[T any](data []byte, format Format) (T, error) {
	if format != FormatYAML {
		return Decode[T](data)
	}

	normalized, err := yamlToJSON(data)
	if err != nil {
		var zero T
		return zero, fmt.Errorf("%w: %w", ErrDecode, err)
	}
	return Decode[T](normalized)
}

// Encode marshals v as indented JSON.
func Encode(v any) ([]byte, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrEncode, err)
	}
	return data, nil
}

// EncodeAs marshals v in the given format.
func EncodeAs(v any, format Format) ([]byte, error) {
	data, err := Encode(v)
	if err != nil || format != FormatYAML {
		return data, err
	}

	// round trip through a generic value so that YAML keys follow the JSON tags
	var generic any
	if err = json.Unmarshal(data, &generic); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrEncode, err)
	}
	out, err := yaml.Marshal(generic)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrEncode, err)
	}
	return out, nil
}

// DecodeTemplate decodes a standalone template document.
func DecodeTemplate(data []byte, format Format) (models.TemplateDocument, error) {
	return DecodeAs[models.TemplateDocument](data, format)
}

// EncodePayload encodes item values into the stored payload shape
// {"values": {...}}.
func EncodePayload(values map[string]string) ([]byte, error) {
	if values == nil {
		values = map[string]string{}
	}
	data, err := json.Marshal(models.ItemPayload{Values: values})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrEncode, err)
	}
	return data, nil
}

// DecodePayload decodes a stored item payload into its value map.
func DecodePayload(data []byte) (map[string]string, error) {
	payload, err := Decode[models.ItemPayload](data)
	if err != nil {
		return nil, err
	}
	return payload.Values, nil
}

// EncodeTemplate encodes a template for storage inside a collection.
func EncodeTemplate(doc models.TemplateDocument) ([]byte, error) {
	data, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrEncode, err)
	}
	return data, nil
}

func yamlToJSON(data []byte) ([]byte, error) {
	var generic any
	if err := yaml.Unmarshal(data, &generic); err != nil {
		return nil, err
	}
	return json.Marshal(generic)
}
