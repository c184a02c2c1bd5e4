package advice

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tabitha-dev/weather-outfit-advisor/internal/core"
)

func TestResolveIcon(t *testing.T) {
	tests := []struct {
		name string
		item core.GarmentItem
		want Icon
	}{
		{
			name: "name wins over category",
			item: core.GarmentItem{Name: "waterproof hiking boots", Category: "footwear"},
			want: IconHiking,
		},
		{
			name: "unknown item uses default",
			item: core.GarmentItem{Name: "xyz123", Category: "xyz123"},
			want: IconGarment,
		},
		{
			name: "category fallback",
			item: core.GarmentItem{Name: "Mystery Item", Category: "Bottoms"},
			want: IconBottoms,
		},
		{
			name: "sneakers",
			item: core.GarmentItem{Name: "Breathable Sneakers", Category: "Footwear"},
			want: IconWalk,
		},
		{
			name: "earlier keyword in name wins",
			item: core.GarmentItem{Name: "Thermal Top", Category: "Base Layer"},
			want: IconGarment,
		},
		{
			name: "boots declared before snow boots",
			item: core.GarmentItem{Name: "Snow Boots", Category: "Footwear"},
			want: IconHiking,
		},
		{
			name: "umbrella",
			item: core.GarmentItem{Name: "Compact Umbrella", Category: "Accessory"},
			want: IconUmbrella,
		},
		{
			name: "gloves",
			item: core.GarmentItem{Name: "Gloves", Category: "Accessory"},
			want: IconGloves,
		},
		{
			name: "empty item",
			item: core.GarmentItem{},
			want: IconGarment,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ResolveIcon(tt.item))
		})
	}
}

func TestDecorateOutfit_PreservesOrder(t *testing.T) {
	items := []core.GarmentItem{
		{Name: "Umbrella", Category: "Accessory"},
		{Name: "Jeans", Category: "Bottoms"},
		{Name: "Sunscreen", Category: "Accessory"},
	}

	got := DecorateOutfit(items)
	require.Len(t, got, 3)
	assert.Equal(t, "Umbrella", got[0].Name)
	assert.Equal(t, IconUmbrella, got[0].Icon)
	assert.Equal(t, "Jeans", got[1].Name)
	assert.Equal(t, IconBottoms, got[1].Icon)
	assert.Equal(t, "Sunscreen", got[2].Name)
	assert.Equal(t, IconSunny, got[2].Icon)
}
