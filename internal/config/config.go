package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"time"

	"github.com/aretw0/hpgl2dxf/pkg/dxf"
	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"
)

// DefaultPath is the config file looked up when --config is not given.
const DefaultPath = "hpgl2dxf.yaml"

// EnvPrefix prefixes every environment override (e.g. HPGL2DXF_DEBUG).
const EnvPrefix = "HPGL2DXF_"

// Config holds the settings shared by every command.
type Config struct {
	// Header and Footer frame the entity stream.
	Header string `mapstructure:"header"`
	Footer string `mapstructure:"footer"`

	Debug    bool   `mapstructure:"debug"`
	LogLevel string `mapstructure:"log_level"`

	// Server settings (serve command).
	Port      string        `mapstructure:"port"`
	RedisAddr string        `mapstructure:"redis_addr"`
	CacheTTL  time.Duration `mapstructure:"cache_ttl"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Header:   dxf.DefaultHeader,
		Footer:   dxf.DefaultFooter,
		LogLevel: "info",
		Port:     "8080",
		CacheTTL: time.Hour,
	}
}

// Document returns the DXF framing described by the config.
func (c Config) Document() dxf.Document {
	return dxf.Document{Header: c.Header, Footer: c.Footer}
}

// Load reads a configuration file (YAML or JSON), applies environment overrides,
// and decodes the result on top of Default.
// A missing file is not an error when path is DefaultPath; an explicitly named
// file must exist.
func Load(path string) (Config, error) {
	raw := map[string]any{}

	if path == "" {
		path = DefaultPath
	}

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := unmarshal(path, data, &raw); err != nil {
			return Config{}, err
		}
	case os.IsNotExist(err) && path == DefaultPath:
		// No config file: defaults plus environment.
	default:
		return Config{}, fmt.Errorf("failed to read config: %w", err)
	}

	for key, value := range envOverrides(os.Environ()) {
		raw[key] = value
	}

	return decode(raw)
}

func unmarshal(path string, data []byte, out *map[string]any) error {
	ext := strings.ToLower(filepath.Ext(path))
	if ext == ".json" {
		if err := json.Unmarshal(data, out); err != nil {
			return fmt.Errorf("failed to parse %s: %w", filepath.Base(path), err)
		}
	} else if err := yaml.Unmarshal(data, out); err != nil {
		return fmt.Errorf("failed to parse %s: %w", filepath.Base(path), err)
	}
	// An empty or null document decodes to a nil map.
	if *out == nil {
		*out = map[string]any{}
	}
	return nil
}

// envOverrides picks HPGL2DXF_* variables and maps them to config keys.
func envOverrides(environ []string) map[string]any {
	out := map[string]any{}
	for _, kv := range environ {
		key, value, ok := strings.Cut(kv, "=")
		if !ok || !strings.HasPrefix(key, EnvPrefix) {
			continue
		}
		name := strings.ToLower(strings.TrimPrefix(key, EnvPrefix))
		switch name {
		case "header", "footer":
			// Allow escaped newlines, which are awkward to put in an env var.
			out[name] = strings.ReplaceAll(value, `\n`, "\n")
		case "debug", "log_level", "port", "redis_addr", "cache_ttl":
			out[name] = value
		}
	}
	return out
}

func decode(raw map[string]any) (Config, error) {
	cfg := Default()

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           &cfg,
		WeaklyTypedInput: true,
		DecodeHook: mapstructure.ComposeDecodeHookFunc(
			numberToSecondsHookFunc(),
			mapstructure.StringToTimeDurationHookFunc(),
		),
		ErrorUnused: true,
	})
	if err != nil {
		return Config{}, err
	}
	if err := decoder.Decode(raw); err != nil {
		return Config{}, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// numberToSecondsHookFunc reads bare numeric durations (cache_ttl: 3600) as seconds.
// Strings still go through time.ParseDuration.
func numberToSecondsHookFunc() mapstructure.DecodeHookFuncType {
	return func(from reflect.Type, to reflect.Type, data any) (any, error) {
		if to != reflect.TypeOf(time.Duration(0)) {
			return data, nil
		}
		switch from.Kind() {
		case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
			return time.Duration(reflect.ValueOf(data).Int()) * time.Second, nil
		case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
			return time.Duration(reflect.ValueOf(data).Uint()) * time.Second, nil
		case reflect.Float32, reflect.Float64:
			return time.Duration(reflect.ValueOf(data).Float() * float64(time.Second)), nil
		}
		return data, nil
	}
}
