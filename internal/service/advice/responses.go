package advice

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/tabitha-dev/weather-outfit-advisor/pkg/keyword"
)

// ErrUnhandled means no reply rule matched the prompt and the caller should
// hand the prompt to the conversational provider.
var ErrUnhandled = errors.New("quick action not handled")

type Topic string

const (
	TopicHiking   Topic = "hiking"
	TopicCamping  Topic = "camping"
	TopicSnow     Topic = "snow"
	TopicBeach    Topic = "beach"
	TopicOutdoor  Topic = "outdoor"
	TopicRain     Topic = "rain"
	TopicCity     Topic = "city"
	TopicLayering Topic = "layering"
	TopicFormal   Topic = "formal"
	TopicColder   Topic = "colder"
	TopicMountain Topic = "mountain"
	TopicNone     Topic = ""
)

var replyTopics = keyword.NewTable(TopicNone,
	keyword.Rules(TopicHiking, "hiking"),
	keyword.Rules(TopicCamping, "camping"),
	keyword.Rules(TopicSnow, "snow", "skiing", "snowboarding"),
	keyword.Rules(TopicBeach, "beach", "pool"),
	keyword.Rules(TopicOutdoor, "outdoor"),
	keyword.Rules(TopicRain, "rain"),
	keyword.Rules(TopicCity, "city", "walking"),
	keyword.Rules(TopicLayering, "layer"),
	keyword.Rules(TopicFormal, "formal"),
	keyword.Rules(TopicColder, "colder"),
	keyword.Rules(TopicMountain, "mountain"),
)

var replyTemplates = map[Topic]func(v replyVars) string{
	TopicHiking:   hikingReply,
	TopicCamping:  campingReply,
	TopicSnow:     snowReply,
	TopicBeach:    beachReply,
	TopicOutdoor:  outdoorReply,
	TopicRain:     rainReply,
	TopicCity:     cityReply,
	TopicLayering: layeringReply,
	TopicFormal:   formalReply,
	TopicColder:   colderReply,
	TopicMountain: mountainReply,
}

// replyVars carries temp rounded for display; thresholds compare tempF.
type replyVars struct {
	city  string
	temp  int
	tempF float64
	rain  bool
}

// roundHalfUp rounds .5 toward positive infinity.
func roundHalfUp(v float64) int {
	return int(math.Floor(v + 0.5))
}

// PromptTopic reports which reply rule a prompt dispatches to.
func PromptTopic(prompt string) Topic {
	return replyTopics.Match(prompt)
}

// Synthesize renders the reply for a quick-action prompt. It returns
// ErrUnhandled when the prompt matches no topic.
func Synthesize(prompt string, c Context) (string, error) {
	render, ok := replyTemplates[PromptTopic(prompt)]
	if !ok {
		return "", ErrUnhandled
	}
	return render(replyVars{
		city:  c.City,
		temp:  roundHalfUp(c.TemperatureF),
		tempF: c.TemperatureF,
		rain:  keyword.Contains(c.Condition, "rain"),
	}), nil
}

func bullets(lines ...string) string {
	var sb strings.Builder
	for _, l := range lines {
		sb.WriteString("• ")
		sb.WriteString(l)
		sb.WriteString("\n")
	}
	return sb.String()
}

func hikingReply(v replyVars) string {
	var extra, rain string
	if v.tempF < 60 {
		extra = "\n• Extra layer (temperature might drop on the trail)"
	}
	if v.rain {
		rain = "\n• Rain jacket and waterproof pack cover essential!"
	}
	return fmt.Sprintf("Great for hiking in %s (%d°F)!\n\n", v.city, v.temp) +
		bullets(
			"Moisture-wicking base layer",
			"Lightweight hiking pants or athletic joggers",
			"Waterproof hiking boots",
			"Fleece or windbreaker jacket",
			"Backpack with water and snacks",
		) +
		extra + "\n" + rain +
		"\n\nStay safe and enjoy the trail!"
}

func campingReply(v replyVars) string {
	return fmt.Sprintf("For camping in %s tonight (%d°F):\n\n", v.city, v.temp) +
		bullets(
			"Warm layering system (base + fleece + jacket)",
			"Insulated pants or thermal leggings",
			"Warm socks and sturdy boots",
			"Beanie and gloves",
			"Waterproof outer layer",
			fmt.Sprintf("Don't forget: headlamp, sleeping bag rated for %d°F", v.temp-10),
		) +
		"\nTemperature drops at night - dress warmer than daytime!"
}

func snowReply(v replyVars) string {
	return fmt.Sprintf("For snow activities in %s (%d°F):\n\n", v.city, v.temp) +
		bullets(
			"Waterproof snow jacket and pants",
			"Thermal base layers (top and bottom)",
			"Insulated gloves and warm socks",
			"Winter hat and neck gaiter",
			"Goggles and sunglasses",
			"Hand warmers recommended!",
		) +
		"\nStay warm and have fun in the snow!"
}

func beachReply(v replyVars) string {
	return fmt.Sprintf("Beach ready for %s (%d°F)!\n\n", v.city, v.temp) +
		bullets(
			"Swimsuit",
			"Light cover-up or tank top",
			"Flip flops or sandals",
			"Sunglasses and sun hat",
			"Sunscreen (SPF 30+)",
			"Beach bag with towel",
		) +
		"\nStay hydrated and enjoy the sun!"
}

func outdoorReply(v replyVars) string {
	var water string
	if v.tempF > 75 {
		water = "\n• Stay hydrated - bring water!"
	}
	return fmt.Sprintf("For outdoor activities in %s (%d°F):\n\n", v.city, v.temp) +
		bullets(
			"Breathable athletic wear",
			"Comfortable sneakers",
			"Light jacket (can tie around waist)",
			"Sunglasses",
			"Hat for sun protection",
		) +
		water +
		"\n\nPerfect weather to be outside!"
}

func rainReply(v replyVars) string {
	if !v.rain {
		return fmt.Sprintf("No rain expected in %s right now, but weather can change!\n\n", v.city) +
			"Bring a compact umbrella just in case. Better safe than soggy!"
	}
	return fmt.Sprintf("Yes, rain gear needed in %s!\n\n", v.city) +
		bullets(
			"Waterproof jacket with hood",
			"Umbrella",
			"Water-resistant pants or jeans",
			"Waterproof boots",
		) +
		"\nRain is expected - stay dry!"
}

func cityReply(v replyVars) string {
	var scarf string
	if v.tempF < 60 {
		scarf = "\n• Light scarf for style and warmth"
	}
	return fmt.Sprintf("Perfect for city walking in %s (%d°F)!\n\n", v.city, v.temp) +
		bullets(
			"Comfortable jeans or casual pants",
			"Layered top (t-shirt + light jacket)",
			"Comfortable walking shoes",
			"Crossbody bag or backpack",
		) +
		scarf +
		"\n\nEnjoy exploring the city!"
}

func layeringReply(v replyVars) string {
	return fmt.Sprintf("Layering tips for %s (%d°F):\n\n", v.city, v.temp) +
		"1. Base: Moisture-wicking t-shirt\n" +
		"2. Mid: Long-sleeve shirt or light sweater\n" +
		"3. Outer: Jacket you can remove\n\n" +
		"This way you can adjust as temperature changes throughout the day!"
}

func formalReply(v replyVars) string {
	if v.tempF < 60 {
		return fmt.Sprintf("For formal occasions in %s (%d°F), I recommend:\n\n", v.city, v.temp) +
			bullets(
				"Dress shirt with a blazer",
				"Dress pants",
				"Leather dress shoes",
				"A light overcoat would complete the look nicely",
			) +
			"\nWould you like me to adjust for a specific time of day?"
	}
	return fmt.Sprintf("For a formal setting in %s (%d°F):\n\n", v.city, v.temp) +
		bullets(
			"Dress shirt (you can skip the jacket since it's warm)",
			"Dress pants",
			"Leather shoes",
			"Optional: lightweight blazer for indoors",
		) +
		"\nLet me know if you need accessories suggestions!"
}

func colderReply(v replyVars) string {
	return fmt.Sprintf("If it gets colder in %s:\n\n", v.city) +
		bullets(
			"Add a warm sweater or fleece layer",
			"Consider a thermal undershirt",
			"Bring a scarf and gloves if temp drops below 45°F",
			"Swap to warmer boots if available",
		) +
		"\nI'll keep monitoring the forecast for you!"
}

func mountainReply(v replyVars) string {
	return fmt.Sprintf("For mountain activities in %s (%d°F):\n\n", v.city, v.temp) +
		bullets(
			"Layered clothing system",
			"Hiking boots with good traction",
			"Windproof jacket",
			"Sun protection (altitude = stronger UV)",
			"Extra layers (gets colder at elevation)",
		) +
		"\nTemperature drops about 3°F per 1000ft elevation!"
}
