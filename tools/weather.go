package tools

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/prathyushnallamothu/reactagent"
)

type geocodeResponse struct {
	Results []struct {
		Name      string  `json:"name"`
		Latitude  float64 `json:"latitude"`
		Longitude float64 `json:"longitude"`
	} `json:"results"`
}

type forecastResponse struct {
	Current struct {
		Temperature float64 `json:"temperature_2m"`
		Humidity    float64 `json:"relative_humidity_2m"`
	} `json:"current"`
}

// Weather returns the weather lookup tool backed by Open-Meteo, which is
// free and unauthenticated. The location is geocoded first, then the
// current conditions are fetched for the resolved coordinates.
func Weather(cfg *Config) reactagent.Tool {
	return reactagent.Tool{
		Name:        "get_weather",
		Description: "Gets current weather for a location",
		Params:      []string{"location"},
		Example:     `get_weather("Boise")`,
		Execute: func(ctx context.Context, args []any) (string, error) {
			location, err := stringArg(args, 0, "location")
			if err != nil {
				return "", err
			}

			params := url.Values{}
			params.Set("name", location)
			params.Set("count", "1")
			params.Set("language", "en")
			params.Set("format", "json")

			var geo geocodeResponse
			if err := getJSON(ctx, cfg.HTTPClient, cfg.GeocodingURL+"?"+params.Encode(), &geo); err != nil {
				return "", fmt.Errorf("weather error: %w", err)
			}
			if len(geo.Results) == 0 {
				return "", fmt.Errorf("weather error: could not find location %q", location)
			}
			place := geo.Results[0]

			params = url.Values{}
			params.Set("latitude", strconv.FormatFloat(place.Latitude, 'f', -1, 64))
			params.Set("longitude", strconv.FormatFloat(place.Longitude, 'f', -1, 64))
			params.Set("current", "temperature_2m,relative_humidity_2m,weather_code")
			params.Set("temperature_unit", "fahrenheit")
			params.Set("timezone", "auto")

			var forecast forecastResponse
			if err := getJSON(ctx, cfg.HTTPClient, cfg.ForecastURL+"?"+params.Encode(), &forecast); err != nil {
				return "", fmt.Errorf("weather error: %w", err)
			}

			return fmt.Sprintf("Weather in %s: Temperature: %.1f°F, Humidity: %.0f%%",
				place.Name, forecast.Current.Temperature, forecast.Current.Humidity), nil
		},
	}
}

// getJSON performs a GET request and decodes the JSON response body
func getJSON(ctx context.Context, client *http.Client, rawURL string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return err
	}
	resp, err := client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("HTTP %d from %s", resp.StatusCode, req.URL.Host)
	}
	return json.NewDecoder(resp.Body).Decode(out)
}
