package advice

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/tabitha-dev/weather-outfit-advisor/pkg/keyword"
)

type chatTopic int

const (
	chatGeneral chatTopic = iota
	chatHiking
	chatBeach
	chatFormal
	chatTravel
	chatSports
	chatCommute
	chatCold
	chatRain
	chatSnow
	chatJacket
)

var chatTopics = keyword.NewTable(chatGeneral,
	keyword.Rules(chatHiking, "hiking", "trail", "camping"),
	keyword.Rules(chatBeach, "beach", "pool", "swim"),
	keyword.Rules(chatFormal, "formal"),
	keyword.Rules(chatTravel, "travel", "flight", "airport"),
	keyword.Rules(chatSports, "sport", "exercise", "gym", "workout"),
	keyword.Rules(chatCommute, "commute", "work", "office"),
	keyword.Rules(chatCold, "cold"),
	keyword.Rules(chatRain, "rain"),
	keyword.Rules(chatSnow, "snow"),
	keyword.Rules(chatJacket, "jacket"),
)

// ChatReply answers free text without a conversational provider. It is used
// when none is configured; style is the user's primary style.
func ChatReply(message string, c Context, style string) string {
	temp := strconv.FormatFloat(c.TemperatureF, 'f', -1, 64)
	style = strings.ToLower(style)
	if style == "" {
		style = "casual"
	}

	switch chatTopics.Match(message) {
	case chatHiking:
		return fmt.Sprintf("For hiking in %s, I recommend moisture-wicking layers, sturdy trail boots, a backpack, water bottle, trail hat, and bug spray. Don't forget energy snacks!", c.City)
	case chatBeach:
		return "For the beach, pack swimwear, a light cover-up, flip-flops, beach hat, SPF 50+ waterproof sunscreen, sunglasses, a beach towel, and a waterproof bag!"
	case chatFormal:
		switch {
		case c.TemperatureF < 50:
			return fmt.Sprintf("For formal occasions in %s (%s°F), wear a wool suit, button shirt with knit sweater underneath, thick overcoat, warm scarf, leather gloves, and dress shoes with warm socks.", c.City, temp)
		case keyword.Contains(message, "rain") || keyword.Contains(c.Condition, "rain"):
			return "For formal events in rainy weather, I recommend a water-resistant coat, waterproof dress shoes, compact umbrella, quick-dry dress pants, button shirt, and a smooth-finish blazer."
		case c.TemperatureF > 70:
			return fmt.Sprintf("For formal occasions in warm weather (%s°F), choose a light-colored linen or cotton suit, breathable cotton shirt, light blazer, polarized sunglasses, and dress shoes with breathable socks.", temp)
		default:
			return fmt.Sprintf("For formal occasions (%s°F), I suggest a lightweight breathable suit, cotton button shirt, moisture-wicking undershirt, light blazer, and dress shoes with thin socks.", temp)
		}
	case chatTravel:
		return "For travel, wear comfortable layers, stretch pants, slip-on shoes for security, and bring a neck pillow, eye mask, compact toiletries, water bottle, and document holder!"
	case chatSports:
		return "For sports, wear moisture-wicking athletic shirt, flexible shorts or pants, activity-specific shoes, sports visor, sweatband, and bring a hydration bottle!"
	case chatCommute:
		return fmt.Sprintf("For commuting in %s, wear comfortable walking shoes, weather-appropriate layers, bring a light bag, compact umbrella, phone charger, and reusable bottle!", c.City)
	case chatCold:
		return "If it gets colder, add a warm sweater or thermal layer. Below 45°F, bring a scarf and gloves. Below 32°F, you'll need a thick insulated jacket!"
	case chatRain:
		return "For rainy weather, I recommend a waterproof jacket with hood, quick-dry pants, water-resistant shoes, an umbrella, and a backpack rain cover!"
	case chatSnow:
		return "For snowy weather, wear an insulated coat, thermal layers, snow pants, snow boots, waterproof gloves, warm hat, face covering, and snow goggles if windy!"
	case chatJacket:
		if c.TemperatureF < 60 {
			return "Of course. A wind-resistant jacket or warm fleece would work well today."
		}
		return "It's warm today, so a light cardigan or windbreaker would be perfect if you prefer an extra layer."
	}

	switch {
	case c.TemperatureF < 50:
		return fmt.Sprintf("Based on the current %s°F in %s, I recommend layering with a jacket, long sleeves, and comfortable pants. Your %s style will look great with these layers!", temp, c.City, style)
	case c.TemperatureF < 70:
		return fmt.Sprintf("The weather in %s is pleasant at %s°F. Perfect for your %s style - a light jacket, comfortable shirt, and jeans would work perfectly!", c.City, temp, style)
	default:
		return fmt.Sprintf("It's warm in %s at %s°F! Light, breathable clothing like shorts and a cotton shirt would be ideal for your %s style.", c.City, temp, style)
	}
}
