package config

// Configfile represents the structure of the compass.yaml configuration file.
type Configfile struct {
	Backend BackendDTO `yaml:"backend"`
	Maps    MapsDTO    `yaml:"maps"`
	Search  SearchDTO  `yaml:"search"`
	Cache   CacheDTO   `yaml:"cache"`
	Output  string     `yaml:"output"`
	Tracing *bool      `yaml:"tracing"`
}

// BackendDTO configures the trip-planning service.
type BackendDTO struct {
	URL     string `yaml:"url"`
	Timeout string `yaml:"timeout"`
}

// MapsDTO configures geocoding.
type MapsDTO struct {
	Key        string `yaml:"key"`
	GeocodeURL string `yaml:"geocode_url"`
}

// SearchDTO holds search defaults.
type SearchDTO struct {
	PageSize *int      `yaml:"page_size"`
	Radius   RadiusDTO `yaml:"radius"`
}

// RadiusDTO holds the default radius per search kind, in kilometers.
type RadiusDTO struct {
	Hotels  *int `yaml:"hotels"`
	Flights *int `yaml:"flights"`
}

// CacheDTO configures the session result cache.
type CacheDTO struct {
	MaxEntries *int `yaml:"max_entries"`
}
