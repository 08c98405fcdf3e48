package chat

import (
	"fmt"
	"sort"
	"strings"

	"nutraintel/internal/analytics"
	"nutraintel/internal/model"
)

const (
	// matchCutoff is the minimum similarity for a row to join the context.
	matchCutoff = 0.6
	// maxMatches caps matched rows per table.
	maxMatches = 5
)

const noMatchSentence = "No closely matching company records were found."

// BuildContext assembles the text block interpolated into the prompt: rows
// from both tables whose company or ingredient name approximately matches the
// question, followed by an aggregate summary of the full usage table. It
// always returns a non-empty string.
func BuildContext(question string, usage []model.UsageRecord, suppliers []model.Supplier) string {
	var sb strings.Builder

	matchedUsage := matchUsage(question, usage)
	matchedSuppliers := matchSuppliers(question, suppliers)

	if len(matchedUsage) == 0 && len(matchedSuppliers) == 0 {
		sb.WriteString(noMatchSentence)
		sb.WriteString("\n")
	}

	if len(matchedUsage) > 0 {
		sb.WriteString("Ingredient usage records:\n")
		for _, u := range matchedUsage {
			fmt.Fprintf(&sb, "- %s uses %s in %d products (%s, %s, %d kg/yr, sentiment %.1f/5)\n",
				u.CompanyName, u.Ingredient, u.ProductCount, u.MarketRegion, u.UsageType, u.AnnualVolumeKg, u.SentimentScore)
		}
	}

	if len(matchedSuppliers) > 0 {
		sb.WriteString("Peer supplier records:\n")
		for _, s := range matchedSuppliers {
			fmt.Fprintf(&sb, "- %s (%s): revenue %s, growth %s, products %s, rating %s, patents %s\n",
				s.CompanyName, s.Type, s.AnnualRevenue, s.GrowthTrend, s.ProductCountText, s.AvgOnlineRating, s.Patents)
		}
	}

	sb.WriteString(summaryBlock(usage))
	return sb.String()
}

func matchUsage(question string, usage []model.UsageRecord) []model.UsageRecord {
	type scored struct {
		record model.UsageRecord
		score  float64
	}

	var hits []scored
	for _, u := range usage {
		score := BestWindowRatio(question, u.CompanyName)
		if r := BestWindowRatio(question, u.Ingredient); r > score {
			score = r
		}
		if score >= matchCutoff {
			hits = append(hits, scored{u, score})
		}
	}

	sort.SliceStable(hits, func(i, j int) bool { return hits[i].score > hits[j].score })
	if len(hits) > maxMatches {
		hits = hits[:maxMatches]
	}

	out := make([]model.UsageRecord, 0, len(hits))
	for _, h := range hits {
		out = append(out, h.record)
	}
	return out
}

func matchSuppliers(question string, suppliers []model.Supplier) []model.Supplier {
	type scored struct {
		supplier model.Supplier
		score    float64
	}

	var hits []scored
	for _, s := range suppliers {
		if score := BestWindowRatio(question, s.CompanyName); score >= matchCutoff {
			hits = append(hits, scored{s, score})
		}
	}

	sort.SliceStable(hits, func(i, j int) bool { return hits[i].score > hits[j].score })
	if len(hits) > maxMatches {
		hits = hits[:maxMatches]
	}

	out := make([]model.Supplier, 0, len(hits))
	for _, h := range hits {
		out = append(out, h.supplier)
	}
	return out
}

// summaryBlock renders the aggregate picture the model always sees, whatever
// the fuzzy match found.
func summaryBlock(usage []model.UsageRecord) string {
	var sb strings.Builder

	summary := analytics.Summarize(usage)
	sb.WriteString("Market summary:\n")
	fmt.Fprintf(&sb, "- Companies using ingredients: %d\n", summary.Companies)
	fmt.Fprintf(&sb, "- Total products: %d\n", summary.TotalProducts)
	fmt.Fprintf(&sb, "- Annual volume: %d kg\n", summary.TotalVolumeKg)
	fmt.Fprintf(&sb, "- Average sentiment: %.2f/5.0\n", summary.AvgSentiment)

	if shares := analytics.VolumeShareByIngredient(usage); len(shares) > 0 {
		sb.WriteString("Top ingredients by volume:\n")
		for i, s := range shares {
			if i == 3 {
				break
			}
			fmt.Fprintf(&sb, "- %s: %d kg (%.1f%%)\n", s.Ingredient, s.VolumeKg, s.SharePercent)
		}
	}

	if top := analytics.TopCompaniesByVolume(usage, 3); len(top) > 0 {
		sb.WriteString("Top companies by volume:\n")
		for _, c := range top {
			fmt.Fprintf(&sb, "- %s: %d kg across %d products\n", c.Company, c.TotalVolumeKg, c.TotalProducts)
		}
	}

	if regions := analytics.CompaniesByRegion(usage); len(regions) > 0 {
		sb.WriteString("Regional distribution:\n")
		for _, r := range regions {
			fmt.Fprintf(&sb, "- %s: %d companies\n", r.Region, r.Companies)
		}
	}

	return sb.String()
}
