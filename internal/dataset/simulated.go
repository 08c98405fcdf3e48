package dataset

import (
	"math/rand"
	"time"

	"nutraintel/internal/model"
)

var simulatedCompanies = []string{
	"Nature's Bounty", "NOW Foods", "Jarrow Formulas", "Life Extension",
	"Swanson Health", "Doctor's Best", "Solgar", "Garden of Life",
	"New Chapter", "Rainbow Light", "Country Life", "Bluebonnet",
	"Source Naturals", "Thorne Health", "Pure Encapsulations", "Douglas Labs",
	"Himalaya Wellness", "Dabur", "Patanjali", "Baidyanath",
}

var regions = []string{"North America", "Europe", "Asia-Pacific", "Global"}
var usageTypes = []string{"Primary Active", "Supporting Ingredient", "Bioenhancer"}

// Simulated draws a wider usage table from a seeded generator. The same seed
// always yields the same table, so fixtures in tests stay stable.
type Simulated struct {
	Seed int64
	Now  time.Time
}

func NewSimulated(seed int64, now time.Time) *Simulated {
	return &Simulated{Seed: seed, Now: now}
}

func (s *Simulated) Name() string { return "Simulated" }

func (s *Simulated) Usage() []model.UsageRecord {
	rng := rand.New(rand.NewSource(s.Seed))

	var records []model.UsageRecord
	for _, company := range simulatedCompanies {
		for _, ingredient := range TrackedIngredients {
			// Roughly a third of company/ingredient pairs are adopters.
			if rng.Float64() >= 0.3 {
				continue
			}
			records = append(records, model.UsageRecord{
				CompanyName:    company,
				Ingredient:     ingredient,
				ProductCount:   1 + rng.Intn(7),
				MarketRegion:   regions[rng.Intn(len(regions))],
				UsageType:      usageTypes[rng.Intn(len(usageTypes))],
				AnnualVolumeKg: 50 + rng.Intn(1950),
				SentimentScore: 3.2 + rng.Float64()*1.6,
				LastUpdated:    s.Now.AddDate(0, 0, -(1 + rng.Intn(29))),
				DataSource:     s.Name(),
			})
		}
	}
	return records
}

// Mentions and Market reuse the curated tables; only usage is simulated.
func (s *Simulated) Mentions() []model.Mention {
	return NewCurated(s.Now).Mentions()
}

func (s *Simulated) Market() []model.MarketRecord {
	return NewCurated(s.Now).Market()
}
