package weather

import "strings"

type Coordinates struct {
	Latitude  float64
	Longitude float64
}

var knownCities = map[string]Coordinates{
	"seattle":       {47.6062, -122.3321},
	"redmond":       {47.6740, -122.1215},
	"new york":      {40.7128, -74.0060},
	"los angeles":   {34.0522, -118.2437},
	"chicago":       {41.8781, -87.6298},
	"san francisco": {37.7749, -122.4194},
	"miami":         {25.7617, -80.1918},
	"boston":        {42.3601, -71.0589},
	"denver":        {39.7392, -104.9903},
	"portland":      {45.5152, -122.6784},
	"austin":        {30.2672, -97.7431},
	"phoenix":       {33.4484, -112.0740},
	"atlanta":       {33.7490, -84.3880},
	"dallas":        {32.7767, -96.7970},
	"houston":       {29.7604, -95.3698},
}

// cityKey keeps the part before the first comma, so "Seattle, WA" and
// "seattle" share an entry.
func cityKey(city string) string {
	city, _, _ = strings.Cut(city, ",")
	return strings.ToLower(strings.TrimSpace(city))
}

func lookupKnown(city string) (Coordinates, bool) {
	c, ok := knownCities[cityKey(city)]
	return c, ok
}
