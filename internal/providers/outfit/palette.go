package outfit

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/tabitha-dev/weather-outfit-advisor/pkg/keyword"
)

type Palette string

const (
	PaletteNeutral Palette = "neutral"
	PaletteBlues   Palette = "blues"
	PaletteEarth   Palette = "earth"
)

type shade int

const (
	plain shade = iota
	light
	dark
	accent
)

var shades = map[Palette][4]string{
	PaletteNeutral: {"", "white", "black", "gray"},
	PaletteBlues:   {"", "light blue", "navy", "blue"},
	PaletteEarth:   {"", "tan", "brown", "olive"},
}

// PrimaryPalette picks neutral over blues over earth, whatever order the
// user listed them in.
func PrimaryPalette(colors []string) Palette {
	joined := strings.ToLower(strings.Join(colors, "\x00"))
	switch {
	case strings.Contains(joined, "neutral"):
		return PaletteNeutral
	case strings.Contains(joined, "blue"):
		return PaletteBlues
	case strings.Contains(joined, "earth"):
		return PaletteEarth
	default:
		return PaletteNeutral
	}
}

// capitalize upper-cases the first letter and lower-cases the rest.
func capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + strings.ToLower(s[size:])
}

type Category string

const (
	CategoryHotHumid  Category = "hot_humid"
	CategorySunnyWarm Category = "sunny_warm"
	CategorySnowy     Category = "snowy"
	CategoryRainy     Category = "rainy"
	CategoryWindy     Category = "windy"
	CategoryCold      Category = "cold"
	CategoryMild      Category = "mild"
)

// WeatherCategory buckets temperature and condition text. Heat is checked
// before anything else, so a hot rainy day is still sunny_warm.
func WeatherCategory(tempF float64, condition string) Category {
	switch {
	case tempF > 80:
		if keyword.Contains(condition, "humid", "muggy", "sticky") {
			return CategoryHotHumid
		}
		return CategorySunnyWarm
	case keyword.Contains(condition, "snow") || tempF < 32:
		return CategorySnowy
	case keyword.Contains(condition, "rain", "drizzle", "shower", "precipitation"):
		return CategoryRainy
	case keyword.Contains(condition, "wind", "gust", "breezy"):
		return CategoryWindy
	case tempF < 45:
		return CategoryCold
	case tempF > 70:
		return CategorySunnyWarm
	default:
		return CategoryMild
	}
}
