package advice

import (
	"github.com/tabitha-dev/weather-outfit-advisor/pkg/keyword"
)

const (
	coldAlertBelowF = 40
	heatAlertAboveF = 85
)

var conditionIcons = keyword.NewTable(IconPartlyCloudy,
	keyword.Rules(IconSunny, "clear", "sunny"),
	keyword.Rules(IconRain, "rain", "drizzle"),
	keyword.Rules(IconSnow, "snow"),
	keyword.Rules(IconStorm, "storm", "thunder"),
	keyword.Rules(IconFog, "fog", "mist"),
	keyword.Rules(IconCloud, "overcast"),
	keyword.Rules(IconPartlyCloudy, "partly", "partial"),
	keyword.Rules(IconCloud, "cloud"),
)

type AlertKind string

const (
	AlertNone AlertKind = "none"
	AlertCold AlertKind = "cold"
	AlertHeat AlertKind = "heat"
	AlertRain AlertKind = "rain"
	AlertSnow AlertKind = "snow"
)

var alertMessages = map[AlertKind]string{
	AlertCold: "❄️ ALERT: Very cold weather - dress warmly with layers!",
	AlertHeat: "☀️ ALERT: Very hot - stay hydrated and wear light clothing!",
	AlertRain: "🌧️ ALERT: Rain expected - bring waterproof gear!",
	AlertSnow: "❄️ ALERT: Snow conditions - wear warm waterproof clothing!",
}

// Message is the user-facing alert text, empty for AlertNone.
func (k AlertKind) Message() string {
	return alertMessages[k]
}

type Classification struct {
	Icon  Icon      `json:"icon"`
	Alert AlertKind `json:"alert"`
}

// ConditionIcon maps a condition description to a weather icon.
func ConditionIcon(condition string) Icon {
	return conditionIcons.Match(condition)
}

// ConditionIcons lists every icon ConditionIcon can return.
func ConditionIcons() []Icon {
	seen := map[Icon]bool{conditionIcons.Default(): true}
	out := []Icon{conditionIcons.Default()}
	for _, r := range conditionIcons.All() {
		if !seen[r.Result] {
			seen[r.Result] = true
			out = append(out, r.Result)
		}
	}
	return out
}

// ClassifyAlert checks temperature thresholds before condition text.
func ClassifyAlert(temperatureF float64, condition string) AlertKind {
	switch {
	case temperatureF < coldAlertBelowF:
		return AlertCold
	case temperatureF > heatAlertAboveF:
		return AlertHeat
	case keyword.Contains(condition, "rain"):
		return AlertRain
	case keyword.Contains(condition, "snow"):
		return AlertSnow
	default:
		return AlertNone
	}
}

func Classify(condition string, temperatureF float64) Classification {
	return Classification{
		Icon:  ConditionIcon(condition),
		Alert: ClassifyAlert(temperatureF, condition),
	}
}
