package weather

// conditionByCode maps WMO weather interpretation codes to display text.
var conditionByCode = map[int]string{
	0:  "Clear sky",
	1:  "Partly cloudy",
	2:  "Overcast",
	3:  "Overcast",
	45: "Foggy",
	48: "Foggy",
	51: "Light drizzle",
	53: "Moderate drizzle",
	55: "Dense drizzle",
	61: "Slight rain",
	63: "Moderate rain",
	65: "Heavy rain",
	71: "Slight snow",
	73: "Moderate snow",
	75: "Heavy snow",
	80: "Slight rain showers",
	81: "Moderate rain showers",
	82: "Violent rain showers",
	85: "Slight snow showers",
	86: "Heavy snow showers",
	95: "Thunderstorm",
	96: "Thunderstorm with hail",
	99: "Thunderstorm with hail",
}

const unknownCondition = "Partly cloudy"

func ConditionForCode(code int) string {
	if c, ok := conditionByCode[code]; ok {
		return c
	}
	return unknownCondition
}
