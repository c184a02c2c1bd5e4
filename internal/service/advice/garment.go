package advice

import (
	"github.com/tabitha-dev/weather-outfit-advisor/internal/core"
	"github.com/tabitha-dev/weather-outfit-advisor/pkg/keyword"
)

var garmentIcons = keyword.NewTable(IconGarment,
	// outerwear
	keyword.Rules(IconGarment, "outerwear", "jacket", "coat", "overcoat", "blazer", "cardigan"),
	keyword.Rules(IconWind, "windbreaker"),
	// suits
	keyword.Rules(IconGarment, "suit", "wool suit", "lightweight suit", "light-colored suit"),
	// tops
	keyword.Rules(IconGarment, "top", "shirt", "t-shirt", "sweater", "sleeveless", "tank"),
	keyword.Rules(IconFitness, "athletic shirt"),
	// layers
	keyword.Rules(IconLayers, "layer", "base layer", "thermal"),
	// bottoms
	keyword.Rules(IconBottoms, "bottom", "jeans", "pants", "shorts"),
	keyword.Rules(IconGarment, "skirt"),
	keyword.Rules(IconSnow, "snow pants"),
	// footwear
	keyword.Rules(IconWalk, "footwear", "sneakers", "shoes"),
	keyword.Rules(IconHiking, "boots"),
	keyword.Rules(IconBeach, "sandals", "flip-flops"),
	keyword.Rules(IconHiking, "trail boots"),
	keyword.Rules(IconSnow, "snow boots"),
	// weather accessories
	keyword.Rules(IconSunny, "sunglasses", "sun hat"),
	keyword.Rules(IconUmbrella, "umbrella", "rain cover"),
	keyword.Rules(IconWaterDrop, "waterproof"),
	// cold weather
	keyword.Rules(IconHeadwear, "hat", "winter hat", "warm hat", "beanie"),
	keyword.Rules(IconWind, "scarf"),
	keyword.Rules(IconGloves, "gloves"),
	keyword.Rules(IconMask, "face covering"),
	keyword.Rules(IconGoggles, "goggles"),
	// general accessories
	keyword.Rules(IconWatch, "accessory", "watch", "bracelet"),
	keyword.Rules(IconJewelry, "jewelry"),
	keyword.Rules(IconBelt, "belt"),
	keyword.Rules(IconGarment, "socks"),
	// bags
	keyword.Rules(IconBag, "bag"),
	keyword.Rules(IconBackpack, "backpack"),
	keyword.Rules(IconBag, "tote"),
	keyword.Rules(IconWaterDrop, "reservoir"),
	// sports
	keyword.Rules(IconSunny, "visor"),
	keyword.Rules(IconFitness, "sweatband"),
	keyword.Rules(IconSports, "sports"),
	// beach
	keyword.Rules(IconPool, "swimwear", "swim"),
	keyword.Rules(IconBeach, "cover-up", "towel"),
	// travel and tech
	keyword.Rules(IconPillow, "pillow"),
	keyword.Rules(IconMask, "mask"),
	keyword.Rules(IconToiletries, "toiletries"),
	keyword.Rules(IconPowerBank, "power bank"),
	keyword.Rules(IconDocuments, "documents"),
	// health and safety
	keyword.Rules(IconSunny, "sunscreen"),
	keyword.Rules(IconBugSpray, "bug spray"),
	keyword.Rules(IconBag, "lip balm"),
	keyword.Rules(IconWaterDrop, "water bottle"),
	keyword.Rules(IconSnacks, "snacks"),
	// misc
	keyword.Rules(IconSnow, "cooling towel"),
)

// ResolveIcon matches the item name first and falls back to its category.
func ResolveIcon(item core.GarmentItem) Icon {
	if icon, ok := garmentIcons.Lookup(item.Name); ok {
		return icon
	}
	return garmentIcons.Match(item.Category)
}

type DecoratedItem struct {
	core.GarmentItem
	Icon Icon `json:"icon"`
}

// DecorateOutfit resolves icons without reordering items.
func DecorateOutfit(items []core.GarmentItem) []DecoratedItem {
	out := make([]DecoratedItem, len(items))
	for i, item := range items {
		out[i] = DecoratedItem{GarmentItem: item, Icon: ResolveIcon(item)}
	}
	return out
}
