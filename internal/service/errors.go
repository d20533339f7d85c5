package service

import (
	"errors"

	"github.com/MKhiriev/anything-list/internal/app"
)

var (
	// ErrAccountProvider wraps any failure of the account status source. It
	// never stands for "no account".
	ErrAccountProvider = errors.New("account status provider failed")

	// ErrInvalidTemplate is returned when a template breaks the valid
	// template rule.
	ErrInvalidTemplate = errors.New("invalid template")

	// ErrCodec is returned when a document or a stored record cannot be
	// decoded or encoded.
	ErrCodec = errors.New("codec error")

	// ErrPersistence is returned when the dataset store rejects a read or a
	// commit.
	ErrPersistence = errors.New("persistence error")

	ErrNoCurrentAccount   = errors.New("no current account")
	ErrCollectionNotFound = errors.New("collection not found")
	ErrTemplateNotFound   = errors.New("template not found")
)

// UserMessage maps err to the single human-readable message shown to the
// user.
func UserMessage(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrInvalidTemplate):
		return app.MsgInvalidTemplate
	case errors.Is(err, ErrCodec):
		return app.MsgUnreadableDocument
	case errors.Is(err, ErrAccountProvider):
		return app.MsgAccountProviderFailed
	case errors.Is(err, ErrNoCurrentAccount):
		return app.MsgNoCurrentAccount
	case errors.Is(err, ErrCollectionNotFound):
		return app.MsgCollectionNotFound
	case errors.Is(err, ErrTemplateNotFound):
		return app.MsgTemplateNotFound
	case errors.Is(err, ErrPersistence):
		return app.MsgPersistenceFailed
	default:
		return app.MsgInternalServerError
	}
}
