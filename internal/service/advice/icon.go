// Package advice holds the rule engine that classifies weather and garment
// text, derives quick-action prompts and renders quick-action replies.
// Every function is a pure function of its arguments.
package advice

// Icon is a Material Symbols identifier.
type Icon string

const (
	IconSunny        Icon = "wb_sunny"
	IconRain         Icon = "rainy"
	IconSnow         Icon = "ac_unit"
	IconStorm        Icon = "thunderstorm"
	IconFog          Icon = "foggy"
	IconCloud        Icon = "cloud"
	IconPartlyCloudy Icon = "partly_cloudy_day"

	IconGarment      Icon = "checkroom"
	IconWind         Icon = "air"
	IconFitness      Icon = "fitness_center"
	IconLayers       Icon = "layers"
	IconBottoms      Icon = "dry_cleaning"
	IconWalk         Icon = "directions_walk"
	IconHiking       Icon = "hiking"
	IconBeach        Icon = "beach_access"
	IconUmbrella     Icon = "umbrella"
	IconWaterDrop    Icon = "water_drop"
	IconHeadwear     Icon = "health_and_safety"
	IconGloves       Icon = "back_hand"
	IconMask         Icon = "masks"
	IconGoggles      Icon = "visibility"
	IconWatch        Icon = "watch"
	IconJewelry      Icon = "diamond"
	IconBelt         Icon = "straighten"
	IconBag          Icon = "shopping_bag"
	IconBackpack     Icon = "backpack"
	IconSports       Icon = "sports_soccer"
	IconPool         Icon = "pool"
	IconPillow       Icon = "hotel"
	IconToiletries   Icon = "wash"
	IconPowerBank    Icon = "battery_charging_full"
	IconDocuments    Icon = "description"
	IconBugSpray     Icon = "pest_control"
	IconSnacks       Icon = "fastfood"
)

func (i Icon) String() string {
	return string(i)
}
