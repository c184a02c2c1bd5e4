package advice

import (
	"strings"

	"github.com/tabitha-dev/weather-outfit-advisor/pkg/keyword"
)

type RiskLevel string

const (
	RiskNone   RiskLevel = "none"
	RiskLow    RiskLevel = "low"
	RiskMedium RiskLevel = "medium"
	RiskHigh   RiskLevel = "high"
)

type SafetyReport struct {
	Risk     RiskLevel `json:"risk_level"`
	Warnings []string  `json:"warnings"`
}

func (r SafetyReport) HasWarnings() bool {
	return len(r.Warnings) > 0
}

func (r SafetyReport) Message() string {
	return strings.Join(r.Warnings, " ")
}

// CheckSafety evaluates temperature, wind, rain chance and condition in
// that order. Later checks can raise the risk level but never lower it.
func CheckSafety(temperatureF, windMph, rainChance float64, condition string) SafetyReport {
	report := SafetyReport{Risk: RiskNone}
	warn := func(level RiskLevel, msg string) {
		if riskRank[level] > riskRank[report.Risk] {
			report.Risk = level
		}
		report.Warnings = append(report.Warnings, msg)
	}

	switch {
	case temperatureF < 20:
		warn(RiskHigh, "⚠️ Extreme cold warning: Protect your ears, hands, and face. Limit outdoor exposure.")
	case temperatureF < 32:
		warn(RiskMedium, "❄️ Freezing temperatures: Wear warm layers and watch for ice on walkways.")
	}

	switch {
	case temperatureF > 95:
		warn(RiskHigh, "🌡️ Extreme heat warning: Stay hydrated, wear light colors, and avoid prolonged sun exposure.")
	case temperatureF > 85:
		warn(RiskMedium, "☀️ Hot weather: Drink plenty of water and take breaks in shade.")
	}

	switch {
	case windMph > 25:
		warn(RiskHigh, "💨 Strong winds: Secure loose items and avoid using umbrellas.")
	case windMph > 15:
		warn(RiskLow, "🌬️ Windy conditions: Consider a windproof jacket.")
	}

	switch {
	case rainChance > 70 || keyword.Contains(condition, "storm", "thunder"):
		warn(RiskHigh, "⛈️ Storm warning: Carry rain gear and avoid open areas during lightning.")
	case rainChance > 50:
		warn(RiskLow, "🌧️ High chance of rain: Bring an umbrella or rain jacket.")
	}

	if keyword.Contains(condition, "snow") {
		level := RiskHigh
		if report.Risk == RiskNone {
			level = RiskMedium
		}
		warn(level, "🌨️ Snow expected: Dress warmly and watch for slippery conditions.")
	}

	return report
}

var riskRank = map[RiskLevel]int{
	RiskNone:   0,
	RiskLow:    1,
	RiskMedium: 2,
	RiskHigh:   3,
}
