package domain

import "time"

// ConfigFileName is the name of the configuration file looked up from the working directory.
const ConfigFileName = "compass.yaml"

// Output modes accepted in configuration and on the command line.
const (
	OutputAuto   = "auto"
	OutputTUI    = "tui"
	OutputLinear = "linear"
)

// Config holds the resolved settings of a session.
type Config struct {
	BackendURL      string
	Timeout         time.Duration
	MapsKey         string
	GeocodeURL      string
	PageSize        int
	HotelRadiusKm   int
	AirportRadiusKm int
	CacheMaxEntries int
	Output          string
	Tracing         bool
	// Source is the file the settings were read from, empty when only defaults apply.
	Source string
}

// DefaultConfig returns the settings used when nothing is configured.
func DefaultConfig() *Config {
	return &Config{
		BackendURL:      "http://localhost:8080",
		Timeout:         15 * time.Second,
		GeocodeURL:      "https://maps.googleapis.com/maps/api/geocode/json",
		PageSize:        DefaultPageSize,
		HotelRadiusKm:   DefaultHotelRadiusKm,
		AirportRadiusKm: DefaultAirportRadiusKm,
		Output:          OutputAuto,
	}
}

// RadiusFor returns the configured default radius for mode.
func (c *Config) RadiusFor(mode Mode) int {
	if mode == ModeHotels {
		return c.HotelRadiusKm
	}
	return c.AirportRadiusKm
}
