package config

import (
	"errors"
	"net"
	"strconv"
	"strings"

	"github.com/spf13/pflag"
)

// Flags holds the values of the global command-line flags. The CLI binds
// them to its persistent flag set with [Flags.Register].
type Flags struct {
	ConfigPath    string
	DBDriver      string
	DSN           string
	SettingsPath  string
	AccountSource string
	LogLevel      string
	LogFile       string
	ServerAddress NetAddress
}

// Register binds every flag to fs.
//
// Flags:
//
//	-c/--config      JSON or YAML config file path
//	--db-driver      dataset store driver (sqlite3|pgx)
//	-d/--dsn         dataset store DSN
//	--settings       settings file path
//	--account-source account status endpoint URL
//	--log-level      log level
//	--log-file       log file path
//	-a/--address     local API address in format [host]:[port]
func (f *Flags) Register(fs *pflag.FlagSet) {
	fs.StringVarP(&f.ConfigPath, "config", "c", "", "JSON or YAML config file path")
	fs.StringVar(&f.DBDriver, "db-driver", "", "Dataset store driver (sqlite3|pgx)")
	fs.StringVarP(&f.DSN, "dsn", "d", "", "Dataset store DSN")
	fs.StringVar(&f.SettingsPath, "settings", "", "Settings file path")
	fs.StringVar(&f.AccountSource, "account-source", "", "Account status endpoint URL")
	fs.StringVar(&f.LogLevel, "log-level", "", "Log level (debug, info, warn, error)")
	fs.StringVar(&f.LogFile, "log-file", "", "Log file path")
	fs.VarP(&f.ServerAddress, "address", "a", "Local API address host:port")
}

func (f *Flags) toConfig() *StructuredConfig {
	return &StructuredConfig{
		Storage: Storage{
			DB: DB{
				Driver: f.DBDriver,
				DSN:    f.DSN,
			},
			SettingsPath: f.SettingsPath,
		},
		Adapter: Adapter{
			HTTPAddress: f.AccountSource,
		},
		Server: Server{
			HTTPAddress: f.ServerAddress.String(),
		},
		Log: Log{
			Level: f.LogLevel,
			File:  f.LogFile,
		},
		FilePath: f.ConfigPath,
	}
}

// NetAddress holds structured network address data for host and port.
// It implements the pflag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// String returns a canonical host:port string, or "" when unset.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// It validates the port range, checks IP correctness unless host is "localhost",
// and returns an error if the format or values are invalid.
func (a *NetAddress) Set(s string) error {
	hostAndPort := strings.Split(s, ":")
	if len(hostAndPort) != 2 {
		return errors.New("need address in a form `host:port`")
	}

	host := hostAndPort[0]
	port, err := strconv.Atoi(hostAndPort[1])
	if err != nil {
		return err
	}

	if port < 1 || port > 65535 {
		return errors.New("port number must be in range 1-65535")
	}

	if host != "localhost" {
		ip := net.ParseIP(host)
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}

// Type implements pflag.Value.
func (a *NetAddress) Type() string {
	return "host:port"
}
