// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// anything-list CLI and the local settings API.
//
// All Msg* constants are human-readable message strings shown to the user
// (CLI stderr, HTTP response bodies) to describe why an operation failed.
// Every failure maps to exactly one of them.
package app

const (
	// MsgInvalidDataProvided is returned when a request body or argument
	// cannot be used at all.
	MsgInvalidDataProvided = "invalid data provided"

	// MsgInternalServerError is returned for failures the user cannot
	// resolve.
	MsgInternalServerError = "internal server error"

	// MsgInvalidTemplate is returned when a template has a blank title, a
	// blank field key or duplicate field keys.
	MsgInvalidTemplate = "template is invalid"

	// MsgUnreadableDocument is returned when an imported document or stored
	// record cannot be decoded.
	MsgUnreadableDocument = "document could not be read"

	// MsgAccountProviderFailed is returned when the account status source
	// could not be queried.
	MsgAccountProviderFailed = "could not determine the signed-in account"

	// MsgNoCurrentAccount is returned when rebinding is requested while no
	// account is signed in.
	MsgNoCurrentAccount = "no account is signed in on this device"

	// MsgCollectionNotFound is returned when a list id matches nothing.
	MsgCollectionNotFound = "list not found"

	// MsgTemplateNotFound is returned for a template library index out of
	// range.
	MsgTemplateNotFound = "template not found"

	// MsgPersistenceFailed is returned when local data could not be saved.
	// Nothing of the failed operation has been applied.
	MsgPersistenceFailed = "failed to save local data"
)
