package advice

import (
	"github.com/tabitha-dev/weather-outfit-advisor/pkg/keyword"
)

type Activity struct {
	Category  string `json:"category"`
	Formality string `json:"formality_level"`
	Movement  string `json:"movement_level"`
	Notes     string `json:"notes"`
}

var (
	activityWork = Activity{
		Category: "work", Formality: "business_casual", Movement: "low",
		Notes: "Balance comfort and professionalism",
	}
	activitySports = Activity{
		Category: "sports", Formality: "casual", Movement: "high",
		Notes: "Recommend flexible, breathable clothing",
	}
	activityFormal = Activity{
		Category: "formal", Formality: "formal", Movement: "low",
		Notes: "Prioritize style and appearance",
	}
	activityCasual = Activity{
		Category: "casual", Formality: "casual", Movement: "medium",
		Notes: "General outdoor activity",
	}
)

var activities = keyword.NewTable(activityCasual,
	keyword.Rules(activityWork, "work", "office", "meeting", "presentation", "business"),
	keyword.Rules(activitySports, "hike", "hiking", "bike", "biking", "cycling", "run", "running", "gym", "workout", "exercise"),
	keyword.Rules(activityFormal, "date", "dinner", "restaurant", "party", "event", "wedding", "formal"),
	keyword.Rules(activityCasual, "walk", "walking", "shopping", "errands", "casual", "coffee", "hanging out"),
)

// ClassifyActivity maps free text such as "office meeting" to an activity
// profile. Unrecognized text is casual.
func ClassifyActivity(text string) Activity {
	return activities.Match(text)
}
