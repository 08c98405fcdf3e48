package model

import "time"

const (
	SentimentPositive = "positive"
	SentimentNeutral  = "neutral"
	SentimentNegative = "negative"
)

// Sentiment labels map to fixed scores on a 5-point scale.
const (
	PositiveScore = 4.5
	NeutralScore  = 3.0
	NegativeScore = 2.2
)

type UsageRecord struct {
	ID             int64
	CompanyName    string
	Website        string
	Ingredient     string
	ProductCount   int
	MarketRegion   string
	UsageType      string
	AnnualVolumeKg int
	SentimentScore float64
	LastUpdated    time.Time
	DataSource     string
}

type Mention struct {
	Title          string
	URL            string
	Source         string
	Ingredient     string
	Sentiment      string
	SentimentScore float64
	Date           string
	Snippet        string
	Category       string
}

type MarketRecord struct {
	Ingredient         string
	MarketSharePercent float64
	GrowthRatePercent  float64
	KeyApplications    string
	TotalMarketSizeUSD int64
	LastUpdated        time.Time
}

type Metadata struct {
	LastUpdated        string `json:"last_updated"`
	TotalCompanies     int    `json:"total_companies"`
	TotalMentions      int    `json:"total_mentions"`
	IngredientsTracked int    `json:"ingredients_tracked"`
	DataQuality        string `json:"data_quality"`
}

// ScoreForSentiment returns the fixed score for a sentiment label.
// Unknown labels are treated as neutral.
func ScoreForSentiment(label string) float64 {
	switch label {
	case SentimentPositive:
		return PositiveScore
	case SentimentNegative:
		return NegativeScore
	default:
		return NeutralScore
	}
}
