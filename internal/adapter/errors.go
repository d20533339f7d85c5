package adapter

import "errors"

var (
	ErrUnauthorized       = errors.New("account source rejected credentials")
	ErrNotFound           = errors.New("account source endpoint not found")
	ErrUnavailable        = errors.New("account source unavailable")
	ErrUnexpectedResponse = errors.New("unexpected account source response")
)
