package analytics

import (
	"math"
	"sort"

	"nutraintel/internal/model"
)

// Summary is the executive-summary block over a (filtered) usage table.
type Summary struct {
	Companies        int     `json:"companies"`
	TotalProducts    int     `json:"total_products"`
	TotalVolumeKg    int     `json:"total_volume_kg"`
	AvgSentiment     float64 `json:"avg_sentiment"`
	SentimentCaption string  `json:"sentiment_caption"`
}

func Summarize(records []model.UsageRecord) Summary {
	companies := make(map[string]bool)
	var products, volume int
	var sentiment float64

	for _, r := range records {
		companies[r.CompanyName] = true
		products += r.ProductCount
		volume += r.AnnualVolumeKg
		sentiment += r.SentimentScore
	}

	var avg float64
	if len(records) > 0 {
		avg = round2(sentiment / float64(len(records)))
	}

	return Summary{
		Companies:        len(companies),
		TotalProducts:    products,
		TotalVolumeKg:    volume,
		AvgSentiment:     avg,
		SentimentCaption: overallSentimentCaption(avg),
	}
}

// CompanyUsage is one row of the per-company usage overview.
type CompanyUsage struct {
	Company         string  `json:"company"`
	TotalProducts   int     `json:"total_products"`
	TotalVolumeKg   int     `json:"total_volume_kg"`
	IngredientsUsed int     `json:"ingredients_used"`
	AvgSentiment    float64 `json:"avg_sentiment"`
}

// GroupByCompany aggregates per company, sorted by product count descending.
// Ties fall back to company name so output order is stable.
func GroupByCompany(records []model.UsageRecord) []CompanyUsage {
	type acc struct {
		products, volume, rows int
		sentiment              float64
	}
	grouped := make(map[string]*acc)
	var order []string

	for _, r := range records {
		a, ok := grouped[r.CompanyName]
		if !ok {
			a = &acc{}
			grouped[r.CompanyName] = a
			order = append(order, r.CompanyName)
		}
		a.products += r.ProductCount
		a.volume += r.AnnualVolumeKg
		a.rows++
		a.sentiment += r.SentimentScore
	}

	out := make([]CompanyUsage, 0, len(order))
	for _, name := range order {
		a := grouped[name]
		out = append(out, CompanyUsage{
			Company:         name,
			TotalProducts:   a.products,
			TotalVolumeKg:   a.volume,
			IngredientsUsed: a.rows,
			AvgSentiment:    round2(a.sentiment / float64(a.rows)),
		})
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].TotalProducts != out[j].TotalProducts {
			return out[i].TotalProducts > out[j].TotalProducts
		}
		return out[i].Company < out[j].Company
	})
	return out
}

// TopCompaniesByVolume returns at most n companies ordered by annual volume.
func TopCompaniesByVolume(records []model.UsageRecord, n int) []CompanyUsage {
	out := GroupByCompany(records)
	sort.Slice(out, func(i, j int) bool {
		if out[i].TotalVolumeKg != out[j].TotalVolumeKg {
			return out[i].TotalVolumeKg > out[j].TotalVolumeKg
		}
		return out[i].Company < out[j].Company
	})
	if n > 0 && len(out) > n {
		out = out[:n]
	}
	return out
}

// RegionCount counts distinct companies per market region.
type RegionCount struct {
	Region    string `json:"region"`
	Companies int    `json:"companies"`
}

func CompaniesByRegion(records []model.UsageRecord) []RegionCount {
	grouped := make(map[string]map[string]bool)
	var order []string

	for _, r := range records {
		if _, ok := grouped[r.MarketRegion]; !ok {
			grouped[r.MarketRegion] = make(map[string]bool)
			order = append(order, r.MarketRegion)
		}
		grouped[r.MarketRegion][r.CompanyName] = true
	}

	out := make([]RegionCount, 0, len(order))
	for _, region := range order {
		out = append(out, RegionCount{Region: region, Companies: len(grouped[region])})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Companies != out[j].Companies {
			return out[i].Companies > out[j].Companies
		}
		return out[i].Region < out[j].Region
	})
	return out
}

// UsageTypeCount is the product total for one ingredient × usage-type pair.
type UsageTypeCount struct {
	Ingredient string `json:"ingredient"`
	UsageType  string `json:"usage_type"`
	Products   int    `json:"products"`
}

func GroupByUsageType(records []model.UsageRecord) []UsageTypeCount {
	type key struct{ ingredient, usageType string }
	grouped := make(map[key]int)
	var order []key

	for _, r := range records {
		k := key{r.Ingredient, r.UsageType}
		if _, ok := grouped[k]; !ok {
			order = append(order, k)
		}
		grouped[k] += r.ProductCount
	}

	out := make([]UsageTypeCount, 0, len(order))
	for _, k := range order {
		out = append(out, UsageTypeCount{Ingredient: k.ingredient, UsageType: k.usageType, Products: grouped[k]})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Ingredient != out[j].Ingredient {
			return out[i].Ingredient < out[j].Ingredient
		}
		return out[i].UsageType < out[j].UsageType
	})
	return out
}

// IngredientVolume is an ingredient's annual volume and its share of the
// filtered total.
type IngredientVolume struct {
	Ingredient   string  `json:"ingredient"`
	VolumeKg     int     `json:"volume_kg"`
	SharePercent float64 `json:"share_percent"`
}

// VolumeShareByIngredient computes per-ingredient volume and the volume-based
// market share within the filtered table.
func VolumeShareByIngredient(records []model.UsageRecord) []IngredientVolume {
	grouped := make(map[string]int)
	var order []string
	var total int

	for _, r := range records {
		if _, ok := grouped[r.Ingredient]; !ok {
			order = append(order, r.Ingredient)
		}
		grouped[r.Ingredient] += r.AnnualVolumeKg
		total += r.AnnualVolumeKg
	}

	out := make([]IngredientVolume, 0, len(order))
	for _, ingredient := range order {
		v := IngredientVolume{Ingredient: ingredient, VolumeKg: grouped[ingredient]}
		if total > 0 {
			v.SharePercent = round1(float64(grouped[ingredient]) / float64(total) * 100)
		}
		out = append(out, v)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].VolumeKg != out[j].VolumeKg {
			return out[i].VolumeKg > out[j].VolumeKg
		}
		return out[i].Ingredient < out[j].Ingredient
	})
	return out
}

// PerformanceCell relates adoption to market position for one ingredient.
type PerformanceCell struct {
	Ingredient   string  `json:"ingredient"`
	CompanyCount int     `json:"company_count"`
	MarketShare  float64 `json:"market_share_percent"`
	GrowthRate   float64 `json:"growth_rate_percent"`
}

// PerformanceMatrix joins the usage table with the market table on ingredient.
// Ingredients absent from the market table are dropped.
func PerformanceMatrix(records []model.UsageRecord, market []model.MarketRecord) []PerformanceCell {
	companies := make(map[string]map[string]bool)
	for _, r := range records {
		if companies[r.Ingredient] == nil {
			companies[r.Ingredient] = make(map[string]bool)
		}
		companies[r.Ingredient][r.CompanyName] = true
	}

	var out []PerformanceCell
	for _, m := range market {
		set, ok := companies[m.Ingredient]
		if !ok {
			continue
		}
		out = append(out, PerformanceCell{
			Ingredient:   m.Ingredient,
			CompanyCount: len(set),
			MarketShare:  m.MarketSharePercent,
			GrowthRate:   m.GrowthRatePercent,
		})
	}
	return out
}

// Insights are the headline call-outs shown next to the matrix.
type Insights struct {
	MarketLeader     string  `json:"market_leader"`
	LeaderShare      float64 `json:"leader_share_percent"`
	FastestGrowing   string  `json:"fastest_growing"`
	FastestRate      float64 `json:"fastest_rate_percent"`
	MostAdopted      string  `json:"most_adopted"`
	AdopterCount     int     `json:"adopter_count"`
	TopVolumePartner string  `json:"top_volume_partner"`
}

func KeyInsights(records []model.UsageRecord, market []model.MarketRecord) Insights {
	var out Insights

	cells := PerformanceMatrix(records, market)
	for _, c := range cells {
		if c.MarketShare > out.LeaderShare {
			out.MarketLeader = c.Ingredient
			out.LeaderShare = c.MarketShare
		}
		if c.GrowthRate > out.FastestRate {
			out.FastestGrowing = c.Ingredient
			out.FastestRate = c.GrowthRate
		}
		if c.CompanyCount > out.AdopterCount {
			out.MostAdopted = c.Ingredient
			out.AdopterCount = c.CompanyCount
		}
	}

	if top := TopCompaniesByVolume(records, 1); len(top) > 0 {
		out.TopVolumePartner = top[0].Company
	}
	return out
}

// MentionOverview summarizes curated mention sentiment for one ingredient.
type MentionOverview struct {
	Ingredient      string  `json:"ingredient"`
	Positive        int     `json:"positive"`
	Neutral         int     `json:"neutral"`
	Negative        int     `json:"negative"`
	Total           int     `json:"total"`
	PositivePercent float64 `json:"positive_percent"`
	AvgScore        float64 `json:"avg_score"`
	Caption         string  `json:"caption"`
}

func SummarizeMentions(mentions []model.Mention) []MentionOverview {
	grouped := make(map[string]*MentionOverview)
	scores := make(map[string]float64)
	var order []string

	for _, m := range mentions {
		o, ok := grouped[m.Ingredient]
		if !ok {
			o = &MentionOverview{Ingredient: m.Ingredient}
			grouped[m.Ingredient] = o
			order = append(order, m.Ingredient)
		}
		switch m.Sentiment {
		case model.SentimentPositive:
			o.Positive++
		case model.SentimentNegative:
			o.Negative++
		default:
			o.Neutral++
		}
		o.Total++
		scores[m.Ingredient] += m.SentimentScore
	}

	out := make([]MentionOverview, 0, len(order))
	for _, ingredient := range order {
		o := grouped[ingredient]
		o.PositivePercent = round1(float64(o.Positive) / float64(o.Total) * 100)
		o.AvgScore = round2(scores[ingredient] / float64(o.Total))
		o.Caption = IngredientCaption(ingredient)
		out = append(out, *o)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].AvgScore > out[j].AvgScore })
	return out
}

func round1(v float64) float64 { return math.Round(v*10) / 10 }
func round2(v float64) float64 { return math.Round(v*100) / 100 }
