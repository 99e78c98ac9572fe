// Package tools provides the built-in utility tools: a constrained
// calculator, weather lookups, earthquake reports, arXiv search, and
// currency conversion. Every tool reports its result as a single string
// observation; HTTP and argument failures come back as errors, which the
// registry folds into observation text.
package tools

import (
	"net/http"
	"time"

	"github.com/prathyushnallamothu/reactagent"
)

// Config carries the HTTP client and service endpoints the tools talk to.
// Endpoints are injectable so tests can point them at local servers.
type Config struct {
	HTTPClient    *http.Client
	GeocodingURL  string
	ForecastURL   string
	EarthquakeURL string
	ArxivURL      string
	CurrencyURL   string
}

// DefaultConfig returns a config pointing at the public service endpoints
func DefaultConfig() *Config {
	return &Config{
		HTTPClient:    &http.Client{Timeout: 10 * time.Second},
		GeocodingURL:  "https://geocoding-api.open-meteo.com/v1/search",
		ForecastURL:   "https://api.open-meteo.com/v1/forecast",
		EarthquakeURL: "https://earthquake.usgs.gov/earthquakes/feed/v1.0/summary/all_day.geojson",
		ArxivURL:      "http://export.arxiv.org/api/query",
		CurrencyURL:   "https://api.frankfurter.app/latest",
	}
}

// NewRegistry builds a registry holding all built-in tools
func NewRegistry(cfg *Config) *reactagent.Registry {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	return reactagent.NewRegistry(
		Calculator(),
		Weather(cfg),
		Earthquakes(cfg),
		ArxivSearch(cfg),
		CurrencyExchange(cfg),
	)
}
