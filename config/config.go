// Package config loads the runtime configuration of the outro HTTP service.
package config

import (
	"encoding/json"
	"fmt"
	"net"
	"os"
	"path/filepath"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config represents the service configuration
type Config struct {
	Server struct {
		Host string `yaml:"host" toml:"host" json:"host" env:"OUTRO_HOST"`
		Port int    `yaml:"port" toml:"port" json:"port" env:"OUTRO_PORT"`

		// ShutdownTimeout is a duration string such as "10s"
		ShutdownTimeout string `yaml:"shutdown_timeout" toml:"shutdown_timeout" json:"shutdown_timeout" env:"OUTRO_SHUTDOWN_TIMEOUT"`
	} `yaml:"server" toml:"server" json:"server"`

	Log struct {
		Requests bool `yaml:"requests" toml:"requests" json:"requests" env:"OUTRO_LOG_REQUESTS"`
	} `yaml:"log" toml:"log" json:"log"`

	Metrics struct {
		Enabled bool   `yaml:"enabled" toml:"enabled" json:"enabled" env:"OUTRO_METRICS_ENABLED"`
		Path    string `yaml:"path" toml:"path" json:"path" env:"OUTRO_METRICS_PATH"`
	} `yaml:"metrics" toml:"metrics" json:"metrics"`

	// Source is the file the configuration was read from, if any
	Source string `yaml:"-" toml:"-" json:"-"`
}

// Default returns a Config with the built-in defaults
func Default() *Config {
	cfg := &Config{}
	cfg.Server.Host = "127.0.0.1"
	cfg.Server.Port = 8080
	cfg.Server.ShutdownTimeout = "10s"
	cfg.Log.Requests = true
	cfg.Metrics.Enabled = true
	cfg.Metrics.Path = "/metrics"
	return cfg
}

// Load builds the configuration from defaults, the optional file at source
// and OUTRO_* environment overrides, in that order.
func Load(source string) (*Config, error) {
	cfg := Default()

	if source != "" {
		if err := cfg.loadFromFile(source); err != nil {
			return nil, err
		}
	}

	applyEnvOverrides(cfg)

	if _, err := cfg.ShutdownTimeout(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// loadFromFile loads configuration from a file, choosing the format by extension
func (c *Config) loadFromFile(source string) error {
	data, err := os.ReadFile(source)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}

	switch strings.ToLower(filepath.Ext(source)) {
	case ".toml":
		err = toml.Unmarshal(data, c)
	case ".json":
		err = json.Unmarshal(data, c)
	default:
		// YAML for .yaml, .yml and anything else
		err = yaml.Unmarshal(data, c)
	}
	if err != nil {
		return fmt.Errorf("failed to parse config %s: %w", source, err)
	}

	c.Source = source
	return nil
}

// ListenAddress returns the host:port the server binds to
func (c *Config) ListenAddress() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}

// SetListenAddress sets the host and port from a host:port string.
// An empty host, as in ":8080", binds all interfaces.
func (c *Config) SetListenAddress(addr string) error {
	host, portStr, err := net.SplitHostPort(addr)
	if err != nil {
		return fmt.Errorf("invalid listen address %q: %w", addr, err)
	}
	port, err := strconv.Atoi(portStr)
	if err != nil || port < 0 || port > 65535 {
		return fmt.Errorf("invalid port in listen address %q", addr)
	}
	c.Server.Host = host
	c.Server.Port = port
	return nil
}

// ShutdownTimeout parses Server.ShutdownTimeout
func (c *Config) ShutdownTimeout() (time.Duration, error) {
	d, err := time.ParseDuration(c.Server.ShutdownTimeout)
	if err != nil {
		return 0, fmt.Errorf("invalid shutdown_timeout %q: %w", c.Server.ShutdownTimeout, err)
	}
	return d, nil
}

// LoadEnvFiles loads every file called name found in the working directory
// and its parents. Files closer to the working directory take precedence.
// It returns the paths that were loaded.
func LoadEnvFiles(name string) ([]string, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("failed to get working directory: %w", err)
	}

	paths := findUpward(cwd, name)
	if len(paths) == 0 {
		return nil, nil
	}

	// godotenv.Load never overrides a variable that is already set, so the
	// first file in the list wins.
	if err := godotenv.Load(paths...); err != nil {
		return nil, fmt.Errorf("failed to load env files: %w", err)
	}
	return paths, nil
}

// findUpward collects dir/name for dir and each of its parents
func findUpward(dir, name string) []string {
	var found []string
	for {
		path := filepath.Join(dir, name)
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			found = append(found, path)
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return found
}

// applyEnvOverrides applies environment variable overrides to the configuration
func applyEnvOverrides(cfg *Config) {
	applyEnvOverridesRecursive(reflect.ValueOf(cfg).Elem())
}

func applyEnvOverridesRecursive(v reflect.Value) {
	t := v.Type()

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		fieldValue := v.Field(i)

		// Skip unexported fields
		if field.PkgPath != "" {
			continue
		}

		if envTag := field.Tag.Get("env"); envTag != "" {
			if envValue, exists := os.LookupEnv(envTag); exists {
				setFieldFromEnv(fieldValue, envValue)
			}
		} else if field.Type.Kind() == reflect.Struct {
			applyEnvOverridesRecursive(fieldValue)
		}
	}
}

// setFieldFromEnv sets a field's value from an environment variable.
// Values that do not parse leave the field unchanged.
func setFieldFromEnv(field reflect.Value, envValue string) {
	switch field.Kind() {
	case reflect.String:
		field.SetString(envValue)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		var n int64
		if _, err := fmt.Sscanf(envValue, "%d", &n); err == nil {
			field.SetInt(n)
		}
	case reflect.Bool:
		field.SetBool(parseBool(envValue))
	}
}

func parseBool(s string) bool {
	s = strings.ToLower(strings.TrimSpace(s))
	return s == "true" || s == "1" || s == "yes" || s == "y"
}
