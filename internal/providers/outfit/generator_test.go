package outfit

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tabitha-dev/weather-outfit-advisor/internal/core"
)

func names(items []core.GarmentItem) []string {
	out := make([]string, len(items))
	for i, it := range items {
		out[i] = it.Name
	}
	return out
}

func TestWeatherCategory(t *testing.T) {
	tests := []struct {
		name      string
		temp      float64
		condition string
		want      Category
	}{
		{"hot and humid", 88, "Humid and hazy", CategoryHotHumid},
		{"hot dry", 95, "Clear sky", CategorySunnyWarm},
		{"hot beats rain", 85, "Rain showers", CategorySunnyWarm},
		{"snow text", 40, "Light snow", CategorySnowy},
		{"freezing", 20, "Clear sky", CategorySnowy},
		{"rain", 55, "Moderate rain", CategoryRainy},
		{"drizzle", 60, "Light drizzle", CategoryRainy},
		{"windy", 60, "Breezy", CategoryWindy},
		{"cold", 40, "Overcast", CategoryCold},
		{"warm", 75, "Partly cloudy", CategorySunnyWarm},
		{"mild", 65, "partly cloudy", CategoryMild},
		{"boundary 80 is not hot", 80, "Humid", CategorySunnyWarm},
		{"boundary 45 is mild", 45, "Overcast", CategoryMild},
		{"boundary 32 is not snowy", 32, "Clear", CategoryCold},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, WeatherCategory(tt.temp, tt.condition))
		})
	}
}

func TestPrimaryPalette(t *testing.T) {
	assert.Equal(t, PaletteNeutral, PrimaryPalette([]string{"Blues", "Neutral"}))
	assert.Equal(t, PaletteBlues, PrimaryPalette([]string{"Earth tones", "Navy Blue"}))
	assert.Equal(t, PaletteEarth, PrimaryPalette([]string{"Earth"}))
	assert.Equal(t, PaletteNeutral, PrimaryPalette(nil))
	assert.Equal(t, PaletteNeutral, PrimaryPalette([]string{"Pastels"}))
}

func TestCapitalize(t *testing.T) {
	assert.Equal(t, "Light blue", capitalize("light blue"))
	assert.Equal(t, "Navy", capitalize("NAVY"))
	assert.Equal(t, "", capitalize(""))
}

func TestCompose_WeatherOnly(t *testing.T) {
	items := Compose(65, "partly cloudy", "", PaletteBlues)

	assert.Equal(t, []string{"Long-Sleeve Shirt", "Jeans", "Sneakers", "Light Jacket", "Watch", "Socks", "Belt"}, names(items))
	assert.Equal(t, core.GarmentItem{Name: "Jeans", Category: "Bottoms", Description: "Navy comfortable jeans"}, items[1])
	assert.Equal(t, "Light blue casual sneakers", items[2].Description)
}

func TestCompose_ColdHasNineItems(t *testing.T) {
	items := Compose(40, "Overcast", "", PaletteNeutral)
	require.Len(t, items, 9)
	assert.Equal(t, "Black thermal undershirt", items[0].Description)
	assert.Equal(t, "Gray wool beanie", items[8].Description)
}

func TestCompose_ActivityMerge(t *testing.T) {
	items := Compose(65, "partly cloudy", "Hiking trip", PaletteEarth)

	require.Len(t, items, 10)
	assert.Equal(t, []string{
		"Long-Sleeve Shirt", "Jeans", "Sneakers", "Light Jacket", "Watch", "Socks",
		"Moisture-Wicking Shirt", "Trail Boots", "Trekking Pants", "Backpack",
	}, names(items))
	assert.Equal(t, "Olive breathable long-sleeve", items[6].Description)
}

func TestCompose_ActivityCappedAtTen(t *testing.T) {
	items := Compose(75, "Clear sky", "beach day", PaletteNeutral)

	assert.Equal(t, []string{
		"Light Cotton Shirt", "Shorts", "Breathable Sneakers", "Sunglasses", "Sun Hat", "Sunscreen",
		"Swimsuit", "Light Cover-Up", "Flip-Flops", "Beach Hat",
	}, names(items))
}

func TestCompose_RainyWithCommute(t *testing.T) {
	items := Compose(55, "Moderate rain", "commuting to work", PaletteNeutral)

	assert.Equal(t, []string{
		"Waterproof Jacket", "Quick-Dry Pants", "Water-Resistant Shoes", "Umbrella", "Waterproof Hat", "Backpack Rain Cover",
		"Comfortable Walking Shoes", "Weather Layer", "Commute Bag", "Compact Umbrella",
	}, names(items))
}

func TestCompose_ActivitySkipsDuplicates(t *testing.T) {
	items := render(weatherPieces[CategoryHotHumid][:coreWeatherItems], PaletteNeutral)
	require.Len(t, items, 6)

	// travel adds a Water Bottle, which hot_humid only lists seventh
	got := Compose(90, "Humid", "travel", PaletteNeutral)
	require.Len(t, got, 10)
	assert.Equal(t, items, got[:6])

	seen := map[string]bool{}
	for _, it := range got {
		key := it.Category + "/" + it.Name
		assert.False(t, seen[key], "duplicate %s", key)
		seen[key] = true
	}
}

func TestCompose_UnknownActivityKeepsSixWeatherItems(t *testing.T) {
	items := Compose(65, "partly cloudy", "knitting", PaletteNeutral)
	assert.Len(t, items, 6)
}

func TestCompose_Formal(t *testing.T) {
	tests := []struct {
		name      string
		temp      float64
		condition string
		first     string
	}{
		{"cold", 45, "Clear sky", "Wool Suit"},
		{"rain", 60, "Light rain", "Water-Resistant Coat"},
		{"warm", 75, "Overcast", "Light-Colored Suit"},
		{"sunny mild", 60, "Sunny", "Light-Colored Suit"},
		{"mild", 60, "Overcast", "Lightweight Suit"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			items := Compose(tt.temp, tt.condition, "Formal dinner", PaletteNeutral)
			require.NotEmpty(t, items)
			assert.Equal(t, tt.first, items[0].Name)
		})
	}
}

func TestGenerator_Suggest(t *testing.T) {
	items, err := NewGenerator().Suggest(context.Background(), core.OutfitRequest{
		City:         "Denver",
		TemperatureF: 28,
		Condition:    "Heavy snow",
		Preferences:  core.PreferenceSet{ColorPalette: []string{"Blues"}},
	})
	require.NoError(t, err)
	require.Len(t, items, 8)
	assert.Equal(t, "Navy heavy winter coat", items[0].Description)
}
