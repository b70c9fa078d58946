package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/compass/internal/adapters/config"
	"go.trai.ch/compass/internal/core/domain"
	"go.trai.ch/compass/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func newTestLoader(t *testing.T, fsys fstest.MapFS, env map[string]string) *config.Loader {
	t.Helper()
	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)
	mockLogger.EXPECT().Debug(gomock.Any()).AnyTimes()
	mockLogger.EXPECT().Warn(gomock.Any()).AnyTimes()

	loader := config.NewLoader(mockLogger)
	loader.FS = config.NewMapFSAdapter("/", fsys)
	loader.LookupEnv = func(key string) (string, bool) {
		v, ok := env[key]
		return v, ok
	}
	return loader
}

func TestLoader_Defaults(t *testing.T) {
	loader := newTestLoader(t, fstest.MapFS{}, nil)

	cfg, err := loader.Load("/work/trip")

	require.NoError(t, err)
	assert.Equal(t, domain.DefaultConfig(), cfg)
	assert.Empty(t, cfg.Source)
}

func TestLoader_FileFoundUpwards(t *testing.T) {
	fsys := fstest.MapFS{
		"work/compass.yaml": &fstest.MapFile{Data: []byte(`
backend:
  url: https://trips.example.com/api
  timeout: 30s
maps:
  key: maps-key
search:
  page_size: 5
  radius:
    hotels: 10
    flights: 100
cache:
  max_entries: 64
output: linear
tracing: true
`)},
		"work/trip/notes.txt": &fstest.MapFile{Data: []byte("x")},
	}
	loader := newTestLoader(t, fsys, nil)

	cfg, err := loader.Load("/work/trip")

	require.NoError(t, err)
	assert.Equal(t, "/work/compass.yaml", cfg.Source)
	assert.Equal(t, "https://trips.example.com/api", cfg.BackendURL)
	assert.Equal(t, 30*time.Second, cfg.Timeout)
	assert.Equal(t, "maps-key", cfg.MapsKey)
	assert.Equal(t, 5, cfg.PageSize)
	assert.Equal(t, 10, cfg.HotelRadiusKm)
	assert.Equal(t, 100, cfg.AirportRadiusKm)
	assert.Equal(t, 64, cfg.CacheMaxEntries)
	assert.Equal(t, domain.OutputLinear, cfg.Output)
	assert.True(t, cfg.Tracing)
	assert.Equal(t, 10, cfg.RadiusFor(domain.ModeHotels))
	assert.Equal(t, 100, cfg.RadiusFor(domain.ModeTrip))
}

func TestLoader_NearestFileWins(t *testing.T) {
	fsys := fstest.MapFS{
		"work/compass.yaml":      &fstest.MapFile{Data: []byte("output: tui\n")},
		"work/trip/compass.yaml": &fstest.MapFile{Data: []byte("output: linear\n")},
	}
	cfg, err := newTestLoader(t, fsys, nil).Load("/work/trip")

	require.NoError(t, err)
	assert.Equal(t, domain.OutputLinear, cfg.Output)
}

func TestLoader_XDGConfigHome(t *testing.T) {
	fsys := fstest.MapFS{
		"home/ada/.config/compass/compass.yaml": &fstest.MapFile{Data: []byte("search:\n  page_size: 7\n")},
	}

	t.Run("HomeFallback", func(t *testing.T) {
		cfg, err := newTestLoader(t, fsys, map[string]string{"HOME": "/home/ada"}).Load("/work")
		require.NoError(t, err)
		assert.Equal(t, 7, cfg.PageSize)
	})

	t.Run("ExplicitConfigHome", func(t *testing.T) {
		cfg, err := newTestLoader(t, fsys, map[string]string{
			"HOME":            "/nowhere",
			"XDG_CONFIG_HOME": "/home/ada/.config",
		}).Load("/work")
		require.NoError(t, err)
		assert.Equal(t, "/home/ada/.config/compass/compass.yaml", cfg.Source)
	})
}

func TestLoader_EnvironmentOverrides(t *testing.T) {
	fsys := fstest.MapFS{
		"work/compass.yaml": &fstest.MapFile{Data: []byte("backend:\n  url: http://file:8080\n")},
	}
	env := map[string]string{
		config.EnvBackendURL:      "http://env:9090",
		config.EnvMapsKey:         "env-key",
		config.EnvTimeout:         "2s",
		config.EnvPageSize:        "4",
		config.EnvCacheMaxEntries: "10",
		config.EnvOutput:          "tui",
		config.EnvTracing:         "true",
	}

	cfg, err := newTestLoader(t, fsys, env).Load("/work")

	require.NoError(t, err)
	assert.Equal(t, "http://env:9090", cfg.BackendURL)
	assert.Equal(t, "env-key", cfg.MapsKey)
	assert.Equal(t, 2*time.Second, cfg.Timeout)
	assert.Equal(t, 4, cfg.PageSize)
	assert.Equal(t, 10, cfg.CacheMaxEntries)
	assert.Equal(t, domain.OutputTUI, cfg.Output)
	assert.True(t, cfg.Tracing)
}

func TestLoader_DotEnv(t *testing.T) {
	fsys := fstest.MapFS{
		"work/.env": &fstest.MapFile{Data: []byte("COMPASS_BACKEND_URL=http://dotenv:8080\nCOMPASS_MAPS_KEY=\"from dotenv\"\n")},
	}

	cfg, err := newTestLoader(t, fsys, map[string]string{config.EnvMapsKey: "from process"}).Load("/work")

	require.NoError(t, err)
	assert.Equal(t, "http://dotenv:8080", cfg.BackendURL)
	assert.Equal(t, "from process", cfg.MapsKey, "process environment wins over .env")
}

func TestLoader_Errors(t *testing.T) {
	tests := []struct {
		name string
		file string
		env  map[string]string
		want error
	}{
		{name: "MalformedYAML", file: "backend: [", want: domain.ErrConfigParseFailed},
		{name: "UnknownField", file: "backend:\n  uri: http://x\n", want: domain.ErrConfigParseFailed},
		{name: "BadTimeout", file: "backend:\n  timeout: soon\n", want: domain.ErrInvalidConfig},
		{name: "RelativeURL", file: "backend:\n  url: localhost\n", want: domain.ErrInvalidConfig},
		{name: "ZeroPageSize", file: "search:\n  page_size: 0\n", want: domain.ErrInvalidConfig},
		{name: "NegativeCache", file: "cache:\n  max_entries: -1\n", want: domain.ErrInvalidConfig},
		{name: "UnknownOutput", file: "output: html\n", want: domain.ErrInvalidConfig},
		{name: "BadEnvNumber", env: map[string]string{config.EnvPageSize: "three"}, want: domain.ErrInvalidConfig},
		{name: "BadEnvBool", env: map[string]string{config.EnvTracing: "maybe"}, want: domain.ErrInvalidConfig},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fsys := fstest.MapFS{}
			if tt.file != "" {
				fsys["work/compass.yaml"] = &fstest.MapFile{Data: []byte(tt.file)}
			}

			_, err := newTestLoader(t, fsys, tt.env).Load("/work")

			require.Error(t, err)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestLoader_OSFS(t *testing.T) {
	dir := t.TempDir()
	nested := filepath.Join(dir, "a", "b")
	require.NoError(t, os.MkdirAll(nested, 0o750))
	require.NoError(t, os.WriteFile(filepath.Join(dir, domain.ConfigFileName), []byte("output: linear\n"), 0o600))

	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)
	mockLogger.EXPECT().Debug(gomock.Any()).AnyTimes()

	loader := config.NewLoader(mockLogger)
	loader.LookupEnv = func(string) (string, bool) { return "", false }

	cfg, err := loader.Load(nested)

	require.NoError(t, err)
	assert.Equal(t, domain.OutputLinear, cfg.Output)
	assert.Equal(t, filepath.Join(dir, domain.ConfigFileName), cfg.Source)
}
