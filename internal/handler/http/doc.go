// Package http implements the local settings API of anything-list.
//
// It exposes the account binding gate, import, restore, export and
// diagnostics over a small REST surface bound to localhost. Request tracing,
// access logging and response compression are handled here before requests
// are delegated to the service layer.
package http
