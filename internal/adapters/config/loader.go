// Package config provides the configuration loader for compass.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"go.trai.ch/compass/internal/core/domain"
	"go.trai.ch/compass/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// Environment variables that override file settings.
const (
	EnvBackendURL      = "COMPASS_BACKEND_URL"
	EnvMapsKey         = "COMPASS_MAPS_KEY"
	EnvTimeout         = "COMPASS_TIMEOUT"
	EnvPageSize        = "COMPASS_PAGE_SIZE"
	EnvCacheMaxEntries = "COMPASS_CACHE_MAX_ENTRIES"
	EnvOutput          = "COMPASS_OUTPUT"
	EnvTracing         = "COMPASS_TRACING"
)

// DotEnvFileName is the file of local environment overrides read from the working directory.
const DotEnvFileName = ".env"

// Loader implements ports.ConfigLoader using a YAML file and the environment.
type Loader struct {
	Logger ports.Logger
	FS     FileSystem
	// LookupEnv reads the process environment. Variables from .env apply only when
	// it reports a variable unset.
	LookupEnv func(key string) (string, bool)
}

// NewLoader creates a new Loader with the given logger.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{
		Logger:    logger,
		FS:        NewOSFS(),
		LookupEnv: os.LookupEnv,
	}
}

// Load resolves settings for cwd: defaults, then the first compass.yaml found from cwd
// upwards or in the user config directory, then environment overrides.
func (l *Loader) Load(cwd string) (*domain.Config, error) {
	cfg := domain.DefaultConfig()
	env := l.environment(cwd)

	configPath := l.findConfiguration(cwd, env)
	if configPath != "" {
		var file Configfile
		if err := l.readAndUnmarshalYAML(configPath, &file); err != nil {
			return nil, err
		}
		if err := applyFile(cfg, &file); err != nil {
			return nil, zerr.With(err, "file", configPath)
		}
		cfg.Source = configPath
		l.Logger.Debug(fmt.Sprintf("using configuration from %s", configPath))
	}

	if err := applyEnv(cfg, env); err != nil {
		return nil, err
	}
	if err := validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// environment returns a lookup over the process environment with .env as fallback.
func (l *Loader) environment(cwd string) func(string) (string, bool) {
	dotenv := map[string]string{}
	path := filepath.Join(cwd, DotEnvFileName)
	if data, err := l.FS.ReadFile(path); err == nil {
		parsed, parseErr := godotenv.Parse(bytes.NewReader(data))
		if parseErr != nil {
			l.Logger.Warn(fmt.Sprintf("ignoring %s: %v", path, parseErr))
		} else {
			dotenv = parsed
		}
	}

	return func(key string) (string, bool) {
		if v, ok := l.LookupEnv(key); ok {
			return v, true
		}
		v, ok := dotenv[key]
		return v, ok
	}
}

func (l *Loader) findConfiguration(cwd string, env func(string) (string, bool)) string {
	currentDir := cwd
	for {
		candidate := filepath.Join(currentDir, domain.ConfigFileName)
		if _, err := l.FS.Stat(candidate); err == nil {
			return candidate
		}

		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			break
		}
		currentDir = parentDir
	}

	configHome, ok := env("XDG_CONFIG_HOME")
	if !ok || configHome == "" {
		home, hasHome := env("HOME")
		if !hasHome || home == "" {
			return ""
		}
		configHome = filepath.Join(home, ".config")
	}
	candidate := filepath.Join(configHome, "compass", domain.ConfigFileName)
	if _, err := l.FS.Stat(candidate); err == nil {
		return candidate
	}
	return ""
}

func (l *Loader) readAndUnmarshalYAML(configPath string, target *Configfile) error {
	data, err := l.FS.ReadFile(configPath)
	if err != nil {
		return zerr.With(domain.WrapKind(domain.ErrConfigReadFailed, err), "file", configPath)
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(target); err != nil && !errors.Is(err, io.EOF) {
		return zerr.With(domain.WrapKind(domain.ErrConfigParseFailed, err), "file", configPath)
	}
	return nil
}

func applyFile(cfg *domain.Config, f *Configfile) error {
	if f.Backend.URL != "" {
		cfg.BackendURL = f.Backend.URL
	}
	if f.Backend.Timeout != "" {
		d, err := time.ParseDuration(f.Backend.Timeout)
		if err != nil {
			return invalid("backend.timeout", f.Backend.Timeout, err)
		}
		cfg.Timeout = d
	}
	if f.Maps.Key != "" {
		cfg.MapsKey = f.Maps.Key
	}
	if f.Maps.GeocodeURL != "" {
		cfg.GeocodeURL = f.Maps.GeocodeURL
	}
	if f.Search.PageSize != nil {
		cfg.PageSize = *f.Search.PageSize
	}
	if f.Search.Radius.Hotels != nil {
		cfg.HotelRadiusKm = *f.Search.Radius.Hotels
	}
	if f.Search.Radius.Flights != nil {
		cfg.AirportRadiusKm = *f.Search.Radius.Flights
	}
	if f.Cache.MaxEntries != nil {
		cfg.CacheMaxEntries = *f.Cache.MaxEntries
	}
	if f.Output != "" {
		cfg.Output = f.Output
	}
	if f.Tracing != nil {
		cfg.Tracing = *f.Tracing
	}
	return nil
}

func applyEnv(cfg *domain.Config, env func(string) (string, bool)) error {
	if v, ok := env(EnvBackendURL); ok && v != "" {
		cfg.BackendURL = v
	}
	if v, ok := env(EnvMapsKey); ok && v != "" {
		cfg.MapsKey = v
	}
	if v, ok := env(EnvTimeout); ok && v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return invalid(EnvTimeout, v, err)
		}
		cfg.Timeout = d
	}
	if v, ok := env(EnvPageSize); ok && v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return invalid(EnvPageSize, v, err)
		}
		cfg.PageSize = n
	}
	if v, ok := env(EnvCacheMaxEntries); ok && v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return invalid(EnvCacheMaxEntries, v, err)
		}
		cfg.CacheMaxEntries = n
	}
	if v, ok := env(EnvOutput); ok && v != "" {
		cfg.Output = v
	}
	if v, ok := env(EnvTracing); ok && v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return invalid(EnvTracing, v, err)
		}
		cfg.Tracing = b
	}
	return nil
}

func validate(cfg *domain.Config) error {
	u, err := url.Parse(cfg.BackendURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return invalid("backend.url", cfg.BackendURL, err)
	}
	if cfg.Timeout <= 0 {
		return invalid("backend.timeout", cfg.Timeout.String(), nil)
	}
	if cfg.PageSize < 1 {
		return invalid("search.page_size", strconv.Itoa(cfg.PageSize), nil)
	}
	if cfg.HotelRadiusKm < 1 {
		return invalid("search.radius.hotels", strconv.Itoa(cfg.HotelRadiusKm), nil)
	}
	if cfg.AirportRadiusKm < 1 {
		return invalid("search.radius.flights", strconv.Itoa(cfg.AirportRadiusKm), nil)
	}
	if cfg.CacheMaxEntries < 0 {
		return invalid("cache.max_entries", strconv.Itoa(cfg.CacheMaxEntries), nil)
	}
	switch cfg.Output {
	case domain.OutputAuto, domain.OutputTUI, domain.OutputLinear:
	default:
		return invalid("output", cfg.Output, nil)
	}
	return nil
}

func invalid(setting, value string, cause error) error {
	err := zerr.With(domain.WrapKind(domain.ErrInvalidConfig, cause), "setting", setting)
	return zerr.With(err, "value", value)
}
