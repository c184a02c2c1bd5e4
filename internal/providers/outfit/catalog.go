package outfit

import (
	"github.com/tabitha-dev/weather-outfit-advisor/internal/core"
)

// piece is a catalog entry whose description may start with a palette
// colour.
type piece struct {
	category string
	name     string
	shade    shade
	text     string
}

func (p piece) render(palette Palette) core.GarmentItem {
	desc := p.text
	if p.shade != plain {
		desc = capitalize(shades[palette][p.shade]) + " " + p.text
	}
	return core.GarmentItem{Name: p.name, Category: p.category, Description: desc}
}

func render(pieces []piece, palette Palette) []core.GarmentItem {
	items := make([]core.GarmentItem, 0, len(pieces))
	for _, p := range pieces {
		items = append(items, p.render(palette))
	}
	return items
}

var weatherPieces = map[Category][]piece{
	CategorySunnyWarm: {
		{"Top", "Light Cotton Shirt", light, "breathable cotton"},
		{"Bottoms", "Shorts", dark, "cotton shorts"},
		{"Footwear", "Breathable Sneakers", light, "mesh sneakers or sandals"},
		{"Accessory", "Sunglasses", plain, "UV protection sunglasses"},
		{"Accessory", "Sun Hat", accent, "wide-brim hat"},
		{"Accessory", "Sunscreen", plain, "SPF 30+ light sunscreen"},
		{"Accessory", "Water Bottle", plain, "Reusable insulated bottle"},
	},
	CategoryHotHumid: {
		{"Top", "Sleeveless Top", light, "moisture-wicking tank"},
		{"Bottoms", "Loose Shorts", dark, "lightweight shorts"},
		{"Footwear", "Open Sandals", dark, "comfortable sandals"},
		{"Accessory", "Sweat-Resistant Sunscreen", plain, "SPF 50+ sport sunscreen"},
		{"Accessory", "Light Hat", accent, "breathable cap"},
		{"Accessory", "Cooling Towel", plain, "Microfiber cooling towel"},
		{"Accessory", "Water Bottle", plain, "Large hydration bottle"},
	},
	CategoryCold: {
		{"Base Layer", "Thermal Top", dark, "thermal undershirt"},
		{"Top", "Wool Sweater", accent, "warm sweater"},
		{"Outerwear", "Thick Jacket", dark, "insulated jacket"},
		{"Bottoms", "Warm Pants", dark, "lined pants"},
		{"Footwear", "Insulated Boots", dark, "winter boots"},
		{"Accessory", "Wool Socks", dark, "thick wool socks"},
		{"Accessory", "Gloves", dark, "insulated gloves"},
		{"Accessory", "Scarf", accent, "warm scarf"},
		{"Accessory", "Warm Hat", accent, "wool beanie"},
	},
	CategoryRainy: {
		{"Outerwear", "Waterproof Jacket", dark, "rain jacket with hood"},
		{"Bottoms", "Quick-Dry Pants", dark, "water-resistant pants"},
		{"Footwear", "Water-Resistant Shoes", dark, "waterproof boots"},
		{"Accessory", "Umbrella", plain, "Compact windproof umbrella"},
		{"Accessory", "Waterproof Hat", accent, "rain hat"},
		{"Accessory", "Backpack Rain Cover", plain, "Waterproof pack cover"},
	},
	CategorySnowy: {
		{"Outerwear", "Insulated Coat", dark, "heavy winter coat"},
		{"Base Layer", "Thermal Layers", dark, "full thermal set"},
		{"Bottoms", "Snow Pants", dark, "waterproof snow pants"},
		{"Footwear", "Snow Boots", dark, "insulated snow boots"},
		{"Accessory", "Waterproof Gloves", dark, "ski gloves"},
		{"Accessory", "Warm Hat", accent, "lined winter hat"},
		{"Accessory", "Face Covering", dark, "neck warmer or balaclava"},
		{"Accessory", "Snow Goggles", plain, "UV protection snow goggles"},
	},
	CategoryWindy: {
		{"Outerwear", "Wind-Resistant Jacket", dark, "windbreaker"},
		{"Base Layer", "Windproof Base Layer", dark, "thermal layer"},
		{"Bottoms", "Secure Pants", dark, "fitted pants"},
		{"Footwear", "Closed Shoes", dark, "secure sneakers"},
		{"Accessory", "Secure Hat", accent, "fitted cap or headband"},
		{"Accessory", "Windproof Sunglasses", plain, "Secure wrap-around eyewear"},
		{"Accessory", "Lip Balm", plain, "Moisturizing lip protection"},
	},
	CategoryMild: {
		{"Top", "Long-Sleeve Shirt", accent, "cotton shirt"},
		{"Bottoms", "Jeans", dark, "comfortable jeans"},
		{"Footwear", "Sneakers", light, "casual sneakers"},
		{"Outerwear", "Light Jacket", accent, "versatile jacket"},
		{"Accessory", "Watch", accent, "timepiece"},
		{"Accessory", "Socks", dark, "cotton socks"},
		{"Accessory", "Belt", dark, "casual belt"},
	},
}

var (
	formalCold = []piece{
		{"Suit", "Wool Suit", dark, "wool suit"},
		{"Top", "Long-Sleeve Button Shirt", light, "dress shirt"},
		{"Base Layer", "Knit Sweater", accent, "thin thermal layer"},
		{"Outerwear", "Overcoat", dark, "thick overcoat"},
		{"Accessory", "Warm Scarf", accent, "formal scarf"},
		{"Accessory", "Leather Gloves", dark, "dress gloves"},
		{"Footwear", "Dress Shoes", dark, "leather with warm socks"},
	}
	formalRain = []piece{
		{"Outerwear", "Water-Resistant Coat", dark, "formal raincoat"},
		{"Footwear", "Water-Resistant Dress Shoes", dark, "waterproof leather"},
		{"Accessory", "Compact Umbrella", plain, "Professional black umbrella"},
		{"Bottoms", "Quick-Dry Dress Pants", dark, "water-resistant"},
		{"Top", "Button Shirt", light, "formal shirt"},
		{"Outerwear", "Blazer", dark, "smooth finish blazer"},
	}
	formalSunny = []piece{
		{"Suit", "Light-Colored Suit", light, "linen or cotton"},
		{"Top", "Cotton Shirt", light, "breathable dress shirt"},
		{"Outerwear", "Light Blazer", accent, "breathable blazer"},
		{"Accessory", "Polarized Sunglasses", plain, "Professional eyewear"},
		{"Footwear", "Dress Shoes", dark, "with breathable socks"},
		{"Accessory", "Dress Hat", accent, "optional formal hat"},
	}
	formalMild = []piece{
		{"Suit", "Lightweight Suit", dark, "breathable fabric"},
		{"Top", "Cotton Button Shirt", light, "dress shirt"},
		{"Base Layer", "Moisture-Wicking Undershirt", plain, "Thin breathable layer"},
		{"Outerwear", "Light Blazer", accent, "versatile jacket"},
		{"Footwear", "Dress Shoes", dark, "with thin socks"},
		{"Accessory", "Watch", plain, "Classic dress watch"},
	}
)

type activityKind int

const (
	activityNone activityKind = iota
	activityHiking
	activityFormal
	activityTravel
	activitySport
	activityBeach
	activityCommute
)

var activityPieces = map[activityKind][]piece{
	activityHiking: {
		{"Top", "Moisture-Wicking Shirt", accent, "breathable long-sleeve"},
		{"Footwear", "Trail Boots", dark, "sturdy hiking boots"},
		{"Bottoms", "Trekking Pants", dark, "light hiking pants"},
		{"Accessory", "Backpack", accent, "20L day pack"},
		{"Accessory", "Water Reservoir", plain, "2L hydration bladder"},
		{"Accessory", "Trail Hat", accent, "sun protection hat"},
		{"Accessory", "Bug Spray", plain, "DEET insect repellent"},
		{"Accessory", "Trail Gloves", dark, "light gloves"},
		{"Accessory", "Trail Snacks", plain, "Energy bars and nuts"},
	},
	activityFormal: {
		{"Top", "Button Shirt", light, "dress shirt"},
		{"Bottoms", "Tailored Pants", dark, "dress pants"},
		{"Outerwear", "Blazer", dark, "suit jacket"},
		{"Footwear", "Formal Shoes", dark, "leather shoes"},
	},
	activityTravel: {
		{"Top", "Comfortable Travel Top", accent, "soft cotton"},
		{"Bottoms", "Stretch Pants", dark, "flexible travel pants"},
		{"Outerwear", "Light Travel Jacket", accent, "packable jacket"},
		{"Footwear", "Slip-On Shoes", dark, "easy security shoes"},
		{"Accessory", "Neck Pillow", plain, "Travel comfort pillow"},
		{"Accessory", "Eye Mask", plain, "Sleep mask"},
		{"Accessory", "Compact Toiletries", plain, "TSA-approved kit"},
		{"Accessory", "Water Bottle", plain, "Collapsible bottle"},
		{"Accessory", "Day Bag", dark, "lightweight backpack"},
		{"Accessory", "Document Holder", plain, "Travel organizer"},
	},
	activitySport: {
		{"Top", "Athletic Shirt", accent, "moisture-wicking top"},
		{"Bottoms", "Sport Shorts", dark, "flexible athletic shorts"},
		{"Footwear", "Sport Shoes", accent, "activity-specific shoes"},
		{"Accessory", "Sports Visor", accent, "sun visor"},
		{"Accessory", "Sweatband", accent, "moisture control band"},
		{"Accessory", "Sports Sunglasses", plain, "Wrap-around protection"},
		{"Accessory", "Hydration Bottle", plain, "Sports water bottle"},
	},
	activityBeach: {
		{"Swimwear", "Swimsuit", accent, "swim attire"},
		{"Top", "Light Cover-Up", light, "beach cover"},
		{"Footwear", "Flip-Flops", accent, "beach sandals"},
		{"Accessory", "Beach Hat", accent, "straw sun hat"},
		{"Accessory", "Sunscreen", plain, "SPF 50+ waterproof"},
		{"Accessory", "Sunglasses", plain, "Polarized beach glasses"},
		{"Accessory", "Beach Towel", accent, "large towel"},
		{"Accessory", "Waterproof Bag", plain, "Beach tote"},
	},
	activityCommute: {
		{"Footwear", "Comfortable Walking Shoes", dark, "supportive shoes"},
		{"Outerwear", "Weather Layer", accent, "appropriate outer layer"},
		{"Accessory", "Commute Bag", dark, "light tote or backpack"},
		{"Accessory", "Compact Umbrella", plain, "Travel umbrella"},
		{"Accessory", "Phone Power Bank", plain, "Portable charger"},
		{"Accessory", "Reusable Bottle", plain, "Eco-friendly bottle"},
	},
}
