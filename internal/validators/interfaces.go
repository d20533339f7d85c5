// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators provides abstractions for input validation and
// enforcement of business rules across the application.
//
// The "valid template" rule lives here: a template is valid when its title is
// not blank and its field keys are non-blank and pairwise distinct. Stored
// collections and items are checked by decoding their raw template and
// payload bytes.
package validators

import "context"

// Validator defines a generic validation interface for arbitrary input values.
// Optional field names restrict validation to a subset of rules.
type Validator interface {

	// Validate validates the provided input and optionally
	// restricts validation to specific named fields.
	Validate(context.Context, any, ...string) error
}
