package tools

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/prathyushnallamothu/reactagent"
)

type quakeFeed struct {
	Features []struct {
		Properties struct {
			Mag   float64 `json:"mag"`
			Place string  `json:"place"`
			Time  int64   `json:"time"`
		} `json:"properties"`
	} `json:"features"`
}

// Earthquakes returns the USGS earthquake report tool. It reads the
// all-day summary feed and filters by minimum magnitude and, unless the
// region is "all", by a case-insensitive substring match on the place name.
func Earthquakes(cfg *Config) reactagent.Tool {
	return reactagent.Tool{
		Name:        "get_earthquake_data",
		Description: "Gets recent earthquake data from USGS",
		Params:      []string{"region", "min_magnitude"},
		Example:     `get_earthquake_data("California", 4.0)`,
		Execute: func(ctx context.Context, args []any) (string, error) {
			region, err := optionalStringArg(args, 0, "region", "all")
			if err != nil {
				return "", err
			}
			minMag, err := optionalNumberArg(args, 1, "min_magnitude", 4.5)
			if err != nil {
				return "", err
			}

			var feed quakeFeed
			if err := getJSON(ctx, cfg.HTTPClient, cfg.EarthquakeURL, &feed); err != nil {
				return "", fmt.Errorf("earthquake error: %w", err)
			}

			type quake struct {
				mag   float64
				place string
			}
			var quakes []quake
			for _, f := range feed.Features {
				if f.Properties.Mag < minMag {
					continue
				}
				if region != "" && !strings.EqualFold(region, "all") &&
					!strings.Contains(strings.ToLower(f.Properties.Place), strings.ToLower(region)) {
					continue
				}
				quakes = append(quakes, quake{mag: f.Properties.Mag, place: f.Properties.Place})
			}

			if len(quakes) == 0 {
				return fmt.Sprintf("No earthquakes with magnitude >= %s found in the last 24 hours for region %q",
					FormatNumber(minMag), region), nil
			}

			sort.Slice(quakes, func(i, j int) bool { return quakes[i].mag > quakes[j].mag })

			var b strings.Builder
			fmt.Fprintf(&b, "Found %d earthquake(s) with magnitude >= %s in the last 24 hours:",
				len(quakes), FormatNumber(minMag))
			for i, q := range quakes {
				if i == 5 {
					break
				}
				fmt.Fprintf(&b, "\n  - Magnitude %s: %s", FormatNumber(q.mag), q.place)
			}
			return b.String(), nil
		},
	}
}
