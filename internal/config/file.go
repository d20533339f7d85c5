package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// fileConfig is the on-disk shape of a configuration file. The same keys
// are accepted in JSON and YAML.
type fileConfig struct {
	App struct {
		ContainerID string `json:"container_id" yaml:"container_id"`
	} `json:"app" yaml:"app"`

	Storage struct {
		DB struct {
			Driver string `json:"driver" yaml:"driver"`
			DSN    string `json:"dsn" yaml:"dsn"`
		} `json:"db" yaml:"db"`

		SettingsPath string `json:"settings_path" yaml:"settings_path"`
	} `json:"storage" yaml:"storage"`

	Adapter struct {
		HTTPAddress     string   `json:"http_address" yaml:"http_address"`
		RequestTimeout  Duration `json:"request_timeout" yaml:"request_timeout"`
		Token           string   `json:"token" yaml:"token"`
		StaticAccountID string   `json:"static_account_id" yaml:"static_account_id"`
	} `json:"adapter" yaml:"adapter"`

	Server struct {
		HTTPAddress    string   `json:"http_address" yaml:"http_address"`
		RequestTimeout Duration `json:"request_timeout" yaml:"request_timeout"`
	} `json:"server" yaml:"server"`

	Workers struct {
		BindingPollInterval Duration `json:"binding_poll_interval" yaml:"binding_poll_interval"`
	} `json:"workers" yaml:"workers"`

	Log struct {
		Level string `json:"level" yaml:"level"`
		File  string `json:"file" yaml:"file"`
	} `json:"log" yaml:"log"`
}

// parseFile reads a configuration file. Files ending in .yaml or .yml are
// read as YAML, anything else as JSON.
func parseFile(path string) (*StructuredConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	var fc fileConfig
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &fc)
	default:
		err = json.Unmarshal(data, &fc)
	}
	if err != nil {
		return nil, fmt.Errorf("error decoding config file %s: %w", filepath.Base(path), err)
	}

	return fc.toConfig(), nil
}

func (fc *fileConfig) toConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{ContainerID: fc.App.ContainerID},
		Storage: Storage{
			DB:           DB{Driver: fc.Storage.DB.Driver, DSN: fc.Storage.DB.DSN},
			SettingsPath: fc.Storage.SettingsPath,
		},
		Adapter: Adapter{
			HTTPAddress:     fc.Adapter.HTTPAddress,
			RequestTimeout:  time.Duration(fc.Adapter.RequestTimeout),
			Token:           fc.Adapter.Token,
			StaticAccountID: fc.Adapter.StaticAccountID,
		},
		Server: Server{
			HTTPAddress:    fc.Server.HTTPAddress,
			RequestTimeout: time.Duration(fc.Server.RequestTimeout),
		},
		Workers: Workers{BindingPollInterval: time.Duration(fc.Workers.BindingPollInterval)},
		Log:     Log{Level: fc.Log.Level, File: fc.Log.File},
	}
}

// Duration reads "1h30m" style strings. JSON numbers are taken as
// nanoseconds.
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		return d.parse(value)
	default:
		return fmt.Errorf("invalid duration: %s", string(b))
	}
}

func (d *Duration) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("invalid duration at line %d", node.Line)
	}
	return d.parse(node.Value)
}

func (d *Duration) parse(s string) error {
	parsed, err := time.ParseDuration(strings.TrimSpace(s))
	if err != nil {
		return err
	}
	*d = Duration(parsed)
	return nil
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
