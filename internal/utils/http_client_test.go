package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewHTTPClient_Independence(t *testing.T) {
	first := NewHTTPClient()
	second := NewHTTPClient()

	require.NotNil(t, first.Client)
	assert.NotSame(t, first.Client, second.Client)
}

func TestHTTPClient_Configure(t *testing.T) {
	tests := []struct {
		name      string
		baseURL   string
		token     string
		wantURL   string
		wantToken string
	}{
		{name: "trims slash and token", baseURL: "http://accounts.local/", token: " secret ", wantURL: "http://accounts.local", wantToken: "secret"},
		{name: "blank token", baseURL: "http://accounts.local", token: "  ", wantURL: "http://accounts.local"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := NewHTTPClient().Configure(tt.baseURL, 2*time.Second, tt.token)

			assert.Equal(t, tt.wantURL, client.BaseURL)
			assert.Equal(t, 2*time.Second, client.GetClient().Timeout)
			assert.Equal(t, tt.wantToken, client.Token)
			assert.Equal(t, "application/json", client.Header.Get("Accept"))
		})
	}
}
