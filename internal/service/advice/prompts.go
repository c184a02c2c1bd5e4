package advice

import (
	"github.com/tabitha-dev/weather-outfit-advisor/pkg/keyword"
)

const (
	promptFormal      = "Any formal options?"
	promptColder      = "What if it gets colder?"
	promptRainOngoing = "Will rain continue?"
	promptSnow        = "Snow activities?"

	mountainSnowBelowF = 35
	beachAboveF        = 75
)

// Context is the weather context the prompt and reply rules read.
type Context struct {
	City         string
	TemperatureF float64
	Condition    string
}

type Region string

const (
	RegionDefault   Region = "default"
	RegionNorthwest Region = "pacific_northwest"
	RegionMountain  Region = "mountain"
	RegionBeach     Region = "beach"
	RegionMajorCity Region = "major_city"
)

type regionRule struct {
	region Region
	cities []string
	words  []string
	// weather widens the match beyond city names.
	weather func(c Context) bool
	prompts func(c Context) []string
}

func fixed(prompts ...string) func(Context) []string {
	return func(Context) []string { return prompts }
}

func snowy(c Context) bool {
	return keyword.Contains(c.Condition, "snow") || c.TemperatureF < mountainSnowBelowF
}

var regionRules = []regionRule{
	{
		region:  RegionNorthwest,
		cities:  []string{"seattle", "tacoma", "redmond", "bellevue", "portland", "vancouver", "washington", "oregon"},
		words:   []string{"wa"},
		prompts: fixed("Good for hiking?", "Camping tonight?", "Rain gear needed?"),
	},
	{
		region:  RegionMountain,
		cities:  []string{"denver", "aspen", "boulder", "colorado", "utah", "tahoe"},
		weather: snowy,
		prompts: func(c Context) []string {
			if snowy(c) {
				return []string{"Snow activities?", "Skiing outfit?", "What about snowboarding?"}
			}
			return []string{"Mountain hiking?", "Cold weather gear?", "What if it snows?"}
		},
	},
	{
		region:  RegionBeach,
		cities:  []string{"miami", "los angeles", "san diego", "austin", "phoenix", "tampa", "california", "florida"},
		words:   []string{"la"},
		weather: func(c Context) bool { return c.TemperatureF > beachAboveF },
		prompts: fixed("Beach ready?", "Pool party?", "Outdoor activities?"),
	},
	{
		region:  RegionMajorCity,
		cities:  []string{"new york", "nyc", "manhattan", "chicago", "boston", "philadelphia"},
		prompts: fixed("City walking?", "Any formal options?", "What about layering?"),
	},
}

func (r regionRule) matches(c Context) bool {
	if keyword.Contains(c.City, r.cities...) {
		return true
	}
	for _, w := range r.words {
		if keyword.ContainsWord(c.City, w) {
			return true
		}
	}
	return r.weather != nil && r.weather(c)
}

type promptOverride struct {
	condition string
	slot      int
	prompt    string
}

// Only the first matching override applies.
var promptOverrides = []promptOverride{
	{condition: "rain", slot: 2, prompt: promptRainOngoing},
	{condition: "snow", slot: 0, prompt: promptSnow},
}

// SelectRegion returns the first region whose rule matches.
func SelectRegion(c Context) Region {
	if r, ok := matchRegion(c); ok {
		return r.region
	}
	return RegionDefault
}

func matchRegion(c Context) (regionRule, bool) {
	for _, r := range regionRules {
		if r.matches(c) {
			return r, true
		}
	}
	return regionRule{}, false
}

// GeneratePrompts returns the quick-action prompts for a context. A region
// match replaces the two defaults with three prompts. Overrides that target
// a slot the list does not have are skipped.
func GeneratePrompts(c Context) []string {
	prompts := []string{promptFormal, promptColder}
	if r, ok := matchRegion(c); ok {
		prompts = append([]string(nil), r.prompts(c)...)
	}

	for _, o := range promptOverrides {
		if !keyword.Contains(c.Condition, o.condition) {
			continue
		}
		if o.slot < len(prompts) {
			prompts[o.slot] = o.prompt
		}
		break
	}
	return prompts
}
