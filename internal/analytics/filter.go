package analytics

import (
	"strings"

	"nutraintel/internal/model"
)

// Filter restricts the usage table by dimension values. Dimensions are
// AND-combined; values within a dimension are OR-combined. An empty dimension
// places no restriction, so an empty filter is the identity.
type Filter struct {
	Ingredients []string
	Regions     []string
}

func (f Filter) IsEmpty() bool {
	return len(f.Ingredients) == 0 && len(f.Regions) == 0
}

// Apply returns the records matching the filter. Matching is case-insensitive.
func (f Filter) Apply(records []model.UsageRecord) []model.UsageRecord {
	if f.IsEmpty() {
		return records
	}

	ingredients := toLowerSet(f.Ingredients)
	regions := toLowerSet(f.Regions)

	var out []model.UsageRecord
	for _, r := range records {
		if ingredients != nil && !ingredients[strings.ToLower(r.Ingredient)] {
			continue
		}
		if regions != nil && !regions[strings.ToLower(r.MarketRegion)] {
			continue
		}
		out = append(out, r)
	}
	return out
}

// FilterMentions keeps mentions whose ingredient is in the allowed set.
// An empty set keeps everything.
func FilterMentions(mentions []model.Mention, ingredients []string) []model.Mention {
	if len(ingredients) == 0 {
		return mentions
	}
	set := toLowerSet(ingredients)
	var out []model.Mention
	for _, m := range mentions {
		if set[strings.ToLower(m.Ingredient)] {
			out = append(out, m)
		}
	}
	return out
}

// FilterMarket keeps market rows whose ingredient is in the allowed set.
func FilterMarket(records []model.MarketRecord, ingredients []string) []model.MarketRecord {
	if len(ingredients) == 0 {
		return records
	}
	set := toLowerSet(ingredients)
	var out []model.MarketRecord
	for _, r := range records {
		if set[strings.ToLower(r.Ingredient)] {
			out = append(out, r)
		}
	}
	return out
}

// UniqueIngredients returns distinct ingredient values in first-seen order.
func UniqueIngredients(records []model.UsageRecord) []string {
	return uniqueBy(records, func(r model.UsageRecord) string { return r.Ingredient })
}

// UniqueRegions returns distinct market regions in first-seen order.
func UniqueRegions(records []model.UsageRecord) []string {
	return uniqueBy(records, func(r model.UsageRecord) string { return r.MarketRegion })
}

func uniqueBy(records []model.UsageRecord, key func(model.UsageRecord) string) []string {
	seen := make(map[string]bool)
	var out []string
	for _, r := range records {
		k := key(r)
		if k == "" || seen[k] {
			continue
		}
		seen[k] = true
		out = append(out, k)
	}
	return out
}

func toLowerSet(items []string) map[string]bool {
	if len(items) == 0 {
		return nil
	}
	set := make(map[string]bool, len(items))
	for _, item := range items {
		set[strings.ToLower(item)] = true
	}
	return set
}
