package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// Default values applied before any other configuration source.
const (
	DefaultContainerID           = "iCloud.anything.lists"
	DefaultServerAddress         = "localhost:8088"
	DefaultServerRequestTimeout  = 30 * time.Second
	DefaultAdapterRequestTimeout = 10 * time.Second
	DefaultBindingPollInterval   = time.Minute
	DefaultLogLevel              = "info"

	// HomeEnv overrides the data directory.
	HomeEnv = "ANYTHING_HOME"

	dataDirName      = ".anything-list"
	databaseFileName = "lists.sqlite"
	settingsFileName = "settings.json"
)

// DataDir returns the directory holding the local database and settings:
// $ANYTHING_HOME when set, otherwise ~/.anything-list. The directory is not
// created here.
func DataDir() (string, error) {
	if dir := os.Getenv(HomeEnv); dir != "" {
		return dir, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("error resolving home directory: %w", err)
	}
	return filepath.Join(home, dataDirName), nil
}

func defaultConfig() (*StructuredConfig, error) {
	dir, err := DataDir()
	if err != nil {
		return nil, err
	}

	return &StructuredConfig{
		App: App{
			ContainerID: DefaultContainerID,
		},
		Storage: Storage{
			DB: DB{
				Driver: DriverSQLite,
				DSN:    filepath.Join(dir, databaseFileName),
			},
			SettingsPath: filepath.Join(dir, settingsFileName),
		},
		Adapter: Adapter{
			RequestTimeout: DefaultAdapterRequestTimeout,
		},
		Server: Server{
			HTTPAddress:    DefaultServerAddress,
			RequestTimeout: DefaultServerRequestTimeout,
		},
		Workers: Workers{
			BindingPollInterval: DefaultBindingPollInterval,
		},
		Log: Log{
			Level: DefaultLogLevel,
		},
	}, nil
}
