package client

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/anything-list/internal/config"
	"github.com/MKhiriev/anything-list/internal/logger"
	"github.com/MKhiriev/anything-list/models"
)

var _ Client = (*App)(nil)

func testConfig(t *testing.T) *config.StructuredConfig {
	t.Helper()
	dir := t.TempDir()
	return &config.StructuredConfig{
		App: config.App{ContainerID: config.DefaultContainerID},
		Storage: config.Storage{
			DB:           config.DB{Driver: config.DriverSQLite, DSN: filepath.Join(dir, "lists.sqlite")},
			SettingsPath: filepath.Join(dir, "settings.json"),
		},
		Adapter: config.Adapter{RequestTimeout: time.Second, StaticAccountID: "acct-A"},
		Server:  config.Server{HTTPAddress: "127.0.0.1:0", RequestTimeout: time.Second},
		Workers: config.Workers{BindingPollInterval: 10 * time.Millisecond},
		Log:     config.Log{Level: "info"},
	}
}

func TestNewApp_WiresServices(t *testing.T) {
	app, err := NewApp(context.Background(), testConfig(t), models.NewAppBuildInfo("", "", ""), logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = app.Close() })

	state, err := app.Services.BindingService.FetchBindingState(context.Background())
	require.NoError(t, err)
	require.NotNil(t, state.CurrentAccountID)
	assert.Equal(t, "acct-A", *state.CurrentAccountID)
	assert.Nil(t, state.BoundAccountID)

	lists, err := app.Services.CollectionService.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, lists)
}

func TestNewApp_InvalidAdapterAddress(t *testing.T) {
	cfg := testConfig(t)
	cfg.Adapter.HTTPAddress = "http://"

	_, err := NewApp(context.Background(), cfg, models.NewAppBuildInfo("", "", ""), logger.Nop())

	assert.Error(t, err)
}

func TestNewApp_StorageFailure(t *testing.T) {
	cfg := testConfig(t)
	cfg.Storage.DB.Driver = "mysql"

	_, err := NewApp(context.Background(), cfg, models.NewAppBuildInfo("", "", ""), logger.Nop())

	assert.Error(t, err)
}

func TestServe_StopsOnCancel(t *testing.T) {
	app, err := NewApp(context.Background(), testConfig(t), models.NewAppBuildInfo("", "", ""), logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = app.Close() })

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- app.Serve(ctx, true) }()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err = <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("Serve did not return")
	}
}
