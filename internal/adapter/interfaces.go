// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides access to the account status source: the external
// provider that reports which cloud account is currently signed in on the
// device.
//
// The primary abstraction is [AccountStatusSource]. The package ships an
// HTTP/REST implementation ([NewHTTPAccountStatusSource]) and a static one
// ([NewStaticAccountStatusSource]) used when no endpoint is configured.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] regardless of transport.
package adapter

import (
	"context"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/account_status_source_mock.go -package=mock

// AccountStatusSource reports the account signed in for a cloud container.
type AccountStatusSource interface {
	// CurrentAccountID returns the identifier of the signed-in account, or
	// nil when no account is signed in. An error means the provider could not
	// be queried; it never stands for "no account".
	CurrentAccountID(ctx context.Context, containerID string) (*string, error)
}
