// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import "context"

// Client defines the lifecycle contract of the assembled application.
type Client interface {
	// Serve runs the local HTTP API, and the binding watcher when
	// watchBinding is set, until ctx is cancelled or a termination signal
	// arrives.
	Serve(ctx context.Context, watchBinding bool) error

	// Close releases the dataset store.
	Close() error
}
