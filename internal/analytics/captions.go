package analytics

import "strings"

// Per-ingredient sentiment captions are display copy, not computed insight.
// They live in a lookup table keyed by the ingredient's base name.
var ingredientCaptions = map[string]string{
	"lutemax 2020": "Highly positive sentiment, driven by FDA and EU approvals reinforcing trust and market leadership.",
	"curcuwin":     "Positive sentiment, with strong clinical validation and awards for joint health benefits.",
	"capsimax":     "Moderately positive sentiment; innovation awards raised awareness but competition remains intense.",
	"bioperine":    "Positive sentiment from sustained market presence and formulation versatility.",
	"oligopin":     "Positive sentiment after improved supply stability and quality perception.",
	"sabeet":       "Positive sentiment following endurance study results in sports nutrition.",
	"forslean":     "Positive sentiment as regulatory clarity improved its metabolic health positioning.",
}

const defaultIngredientCaption = "Neutral sentiment with limited new mentions or steady market perception."

// IngredientCaption looks up display copy for an ingredient. Names are matched
// on their base form, so "Lutemax 2020 (Lutein + Zeaxanthin)" still resolves.
func IngredientCaption(ingredient string) string {
	lower := strings.ToLower(ingredient)
	if c, ok := ingredientCaptions[lower]; ok {
		return c
	}
	for base, c := range ingredientCaptions {
		if strings.HasPrefix(lower, base) {
			return c
		}
	}
	return defaultIngredientCaption
}

// overallSentimentCaption bands the mean sentiment score into reader-facing
// copy for the summary widget.
func overallSentimentCaption(avg float64) string {
	switch {
	case avg >= 4.0:
		return "Customers express very positive opinions overall."
	case avg >= 3.0:
		return "Sentiment is moderately positive with some mixed feedback."
	case avg >= 2.0:
		return "Average sentiment; some customers are neutral or unsatisfied."
	default:
		return "Sentiment is generally negative; improvement may be needed."
	}
}
