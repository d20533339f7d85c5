// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/MKhiriev/anything-list/internal/config"
	"github.com/MKhiriev/anything-list/internal/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestSource creates an httpAccountStatusSource pointed at the test server.
func newTestSource(t *testing.T, serverURL string) AccountStatusSource {
	t.Helper()
	src, err := NewHTTPAccountStatusSource(config.Adapter{
		HTTPAddress:    serverURL,
		RequestTimeout: 2 * time.Second,
		Token:          "secret",
	})
	require.NoError(t, err)
	return src
}

// ── CurrentAccountID ────────────────────────────────────────────────────────

func TestCurrentAccountID_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/account/current", r.URL.Path)
		assert.Equal(t, "iCloud.anything.lists", r.URL.Query().Get("container"))
		assert.Equal(t, "Bearer secret", r.Header.Get("Authorization"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"account_id":"acct-A"}`))
	}))
	defer srv.Close()

	got, err := newTestSource(t, srv.URL).CurrentAccountID(context.Background(), "iCloud.anything.lists")

	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "acct-A", *got)
}

func TestCurrentAccountID_ForwardsTraceID(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "trace-7", r.Header.Get("X-Trace-ID"))
		_, _ = w.Write([]byte(`{"account_id":"acct-A"}`))
	}))
	defer srv.Close()

	ctx := utils.WithTraceID(context.Background(), "trace-7")
	_, err := newTestSource(t, srv.URL).CurrentAccountID(ctx, "c")

	require.NoError(t, err)
}

func TestCurrentAccountID_NoAccount(t *testing.T) {
	for _, body := range []string{`{"account_id":null}`, `{}`, `{"account_id":"  "}`} {
		t.Run(body, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(body))
			}))
			defer srv.Close()

			got, err := newTestSource(t, srv.URL).CurrentAccountID(context.Background(), "c")

			require.NoError(t, err)
			assert.Nil(t, got)
		})
	}
}

func TestCurrentAccountID_StatusErrors(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		wantErr error
	}{
		{name: "unauthorized", status: http.StatusUnauthorized, wantErr: ErrUnauthorized},
		{name: "forbidden", status: http.StatusForbidden, wantErr: ErrUnauthorized},
		{name: "not found", status: http.StatusNotFound, wantErr: ErrNotFound},
		{name: "internal", status: http.StatusInternalServerError, wantErr: ErrUnavailable},
		{name: "unavailable", status: http.StatusServiceUnavailable, wantErr: ErrUnavailable},
		{name: "teapot", status: http.StatusTeapot, wantErr: ErrUnexpectedResponse},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte("nope"))
			}))
			defer srv.Close()

			got, err := newTestSource(t, srv.URL).CurrentAccountID(context.Background(), "c")

			require.ErrorIs(t, err, tt.wantErr)
			assert.Nil(t, got)
		})
	}
}

func TestCurrentAccountID_DoesNotRetry(t *testing.T) {
	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	_, err := newTestSource(t, srv.URL).CurrentAccountID(context.Background(), "c")

	require.ErrorIs(t, err, ErrUnavailable)
	assert.Equal(t, 1, calls)
}

func TestCurrentAccountID_MalformedBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`<html>`))
	}))
	defer srv.Close()

	_, err := newTestSource(t, srv.URL).CurrentAccountID(context.Background(), "c")

	require.ErrorIs(t, err, ErrUnexpectedResponse)
}

func TestCurrentAccountID_ServerDown(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	_, err := newTestSource(t, url).CurrentAccountID(context.Background(), "c")

	require.ErrorIs(t, err, ErrUnavailable)
}

// ── constructors ────────────────────────────────────────────────────────────

func TestNewHTTPAccountStatusSource_InvalidAddress(t *testing.T) {
	_, err := NewHTTPAccountStatusSource(config.Adapter{HTTPAddress: "   "})
	require.Error(t, err)

	_, err = NewHTTPAccountStatusSource(config.Adapter{HTTPAddress: "http://"})
	require.Error(t, err)
}

func TestNormalizeBaseURL(t *testing.T) {
	got, err := normalizeBaseURL("localhost:8080/")
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:8080", got)
}

func TestNewAccountStatusSource_PicksImplementation(t *testing.T) {
	static, err := NewAccountStatusSource(config.Adapter{StaticAccountID: "acct-A"})
	require.NoError(t, err)
	assert.IsType(t, &staticAccountStatusSource{}, static)

	remote, err := NewAccountStatusSource(config.Adapter{HTTPAddress: "localhost:1", RequestTimeout: time.Second})
	require.NoError(t, err)
	assert.IsType(t, &httpAccountStatusSource{}, remote)
}

func TestStaticAccountStatusSource(t *testing.T) {
	got, err := NewStaticAccountStatusSource(" acct-A ").CurrentAccountID(context.Background(), "c")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "acct-A", *got)

	none, err := NewStaticAccountStatusSource("").CurrentAccountID(context.Background(), "c")
	require.NoError(t, err)
	assert.Nil(t, none)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = NewStaticAccountStatusSource("acct-A").CurrentAccountID(ctx, "c")
	require.ErrorIs(t, err, context.Canceled)
}
