// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"errors"
	"fmt"
)

// Decoding errors returned by the custom JSON unmarshalers of the document
// types. Callers should match them with [errors.Is].
var (
	// ErrMissingMember is returned when a required JSON member is absent or null.
	ErrMissingMember = errors.New("required member is missing")

	// ErrUnknownFieldKind is returned when a template field declares a kind
	// outside of the supported set.
	ErrUnknownFieldKind = errors.New("unknown template field kind")
)

func missingMember(name string) error {
	return fmt.Errorf("%w: %s", ErrMissingMember, name)
}

// valueOr dereferences p, falling back to def when p is nil.
func valueOr[T any](p *T, def T) T {
	if p == nil {
		return def
	}
	return *p
}
