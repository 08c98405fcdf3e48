package dataset

import (
	"time"

	"nutraintel/internal/model"
)

// totalIngredientMarketUSD is the assumed size of the addressable ingredient
// market, used to turn share percentages into dollar figures.
const totalIngredientMarketUSD = 500_000_000

// kgPerProduct is the rough annual volume estimate per shipped product.
const kgPerProduct = 150

type curatedCompany struct {
	name         string
	website      string
	ingredients  []string
	productCount int
}

var curatedCompanies = []curatedCompany{
	{"Nature's Bounty", "https://www.naturesbounty.com", []string{"Lutemax 2020", "BioPerine"}, 3},
	{"NOW Foods", "https://www.nowfoods.com", []string{"Lutemax 2020", "CurcuWIN"}, 5},
	{"Jarrow Formulas", "https://www.jarrow.com", []string{"CurcuWIN", "BioPerine"}, 2},
	{"Life Extension", "https://www.lifeextension.com", []string{"Lutemax 2020"}, 1},
	{"Swanson Health", "https://www.swansonvitamins.com", []string{"BioPerine", "Capsimax"}, 4},
	{"Doctor's Best", "https://www.doctorsbest.com", []string{"CurcuWIN"}, 2},
	{"Solgar", "https://www.solgar.com", []string{"Lutemax 2020"}, 1},
	{"Garden of Life", "https://www.gardenoflife.com", []string{"BioPerine"}, 2},
}

var northAmericanCompanies = map[string]bool{
	"Nature's Bounty": true,
	"NOW Foods":       true,
	"Jarrow Formulas": true,
	"Life Extension":  true,
	"Swanson Health":  true,
}

var marketInfo = map[string]struct {
	share           float64
	growth          float64
	keyApplications string
}{
	"Lutemax 2020": {15.2, 8.5, "Eye Health"},
	"CurcuWIN":     {12.8, 12.3, "Joint Health, Anti-inflammatory"},
	"Capsimax":     {8.4, 15.2, "Weight Management"},
	"BioPerine":    {22.1, 6.7, "Bioenhancer"},
	"Oligopin":     {5.3, 10.1, "Cardiovascular Health"},
	"Sabeet":       {3.2, 18.5, "Sports Nutrition"},
	"ForsLean":     {4.8, 7.9, "Weight Management"},
}

// Curated is the research-based provider: literal company assignments with
// derived region, usage type and volume fields. It is fully deterministic.
type Curated struct {
	Now time.Time
}

func NewCurated(now time.Time) *Curated {
	return &Curated{Now: now}
}

func (c *Curated) Name() string { return "Company Research" }

func (c *Curated) Usage() []model.UsageRecord {
	var records []model.UsageRecord
	for _, company := range curatedCompanies {
		perIngredient := company.productCount / len(company.ingredients)
		for _, ingredient := range company.ingredients {
			records = append(records, model.UsageRecord{
				CompanyName:    company.name,
				Website:        company.website,
				Ingredient:     ingredient,
				ProductCount:   perIngredient,
				MarketRegion:   regionFor(company.name),
				UsageType:      UsageTypeFor(ingredient),
				AnnualVolumeKg: company.productCount * kgPerProduct,
				SentimentScore: 4.2,
				LastUpdated:    c.Now,
				DataSource:     c.Name(),
			})
		}
	}
	return records
}

func (c *Curated) Market() []model.MarketRecord {
	var records []model.MarketRecord
	for _, ingredient := range TrackedIngredients {
		info, ok := marketInfo[ingredient]
		if !ok {
			continue
		}
		records = append(records, model.MarketRecord{
			Ingredient:         ingredient,
			MarketSharePercent: info.share,
			GrowthRatePercent:  info.growth,
			KeyApplications:    info.keyApplications,
			TotalMarketSizeUSD: int64(totalIngredientMarketUSD * info.share / 100),
			LastUpdated:        c.Now,
		})
	}
	return records
}

func (c *Curated) Mentions() []model.Mention {
	mentions := []model.Mention{
		{
			Title:      "Lutemax 2020 Shows Promise in Eye Health Study",
			URL:        "https://www.nutraingredients.com/lutemax-study",
			Source:     "NutraIngredients",
			Ingredient: "Lutemax 2020",
			Sentiment:  model.SentimentPositive,
			Date:       "2024-01-15",
			Snippet:    "Clinical study demonstrates significant benefits of Lutemax 2020 in supporting eye health and visual performance.",
		},
		{
			Title:      "CurcuWIN Bioavailability Breakthrough",
			URL:        "https://www.nutritionaloutlook.com/curcuwin-bioavailability",
			Source:     "Nutritional Outlook",
			Ingredient: "CurcuWIN",
			Sentiment:  model.SentimentPositive,
			Date:       "2024-02-20",
			Snippet:    "New research confirms CurcuWIN's superior bioavailability compared to standard curcumin extracts.",
		},
		{
			Title:      "Capsimax Market Competition Intensifies",
			URL:        "https://www.naturalproductsinsider.com/capsimax-competition",
			Source:     "Natural Products Insider",
			Ingredient: "Capsimax",
			Sentiment:  model.SentimentNeutral,
			Date:       "2024-03-10",
			Snippet:    "Market analysis shows increased competition in the thermogenic ingredients space, with several new players entering the market alongside established brands like Capsimax.",
		},
		{
			Title:      "BioPerine Patent Questions Raised",
			URL:        "https://www.supplementbusiness.com/bioperine-patent",
			Source:     "Supplement Business",
			Ingredient: "BioPerine",
			Sentiment:  model.SentimentNeutral,
			Date:       "2024-01-30",
			Snippet:    "Industry experts discuss patent landscape and competitive challenges facing established bioenhancer ingredients in the current market.",
		},
		{
			Title:      "Oligopin Supply Chain Challenges",
			URL:        "https://www.nutraingredients.com/oligopin-supply",
			Source:     "NutraIngredients",
			Ingredient: "Oligopin",
			Sentiment:  model.SentimentNegative,
			Date:       "2024-02-28",
			Snippet:    "Manufacturers report supply chain disruptions affecting availability of premium pine bark extracts, leading to increased costs and delivery delays.",
		},
		{
			Title:      "ForsLean Clinical Data Under Review",
			URL:        "https://www.nutritionaloutlook.com/forslean-review",
			Source:     "Nutritional Outlook",
			Ingredient: "ForsLean",
			Sentiment:  model.SentimentNeutral,
			Date:       "2024-03-05",
			Snippet:    "Regulatory bodies continue evaluation of weight management claims for coleus forskohlii extracts as industry awaits updated guidelines.",
		},
		{
			Title:      "Sabeet Pricing Concerns in Sports Nutrition",
			URL:        "https://www.sportsnutritioninsider.com/sabeet-pricing",
			Source:     "Sports Nutrition Insider",
			Ingredient: "Sabeet",
			Sentiment:  model.SentimentNegative,
			Date:       "2024-02-15",
			Snippet:    "Sports nutrition manufacturers express concerns over premium pricing of branded beetroot extracts impacting product margins and market accessibility.",
		},
		{
			Title:      "Lutein Market Consolidation Trends",
			URL:        "https://www.nutraingredients.com/lutein-consolidation",
			Source:     "NutraIngredients",
			Ingredient: "Lutemax 2020",
			Sentiment:  model.SentimentNeutral,
			Date:       "2024-03-20",
			Snippet:    "Market analysis reveals ongoing consolidation in the lutein and zeaxanthin space as larger players acquire smaller ingredient suppliers.",
		},
	}

	for i := range mentions {
		mentions[i].SentimentScore = model.ScoreForSentiment(mentions[i].Sentiment)
		mentions[i].Category = "Industry News"
	}
	return mentions
}

func regionFor(companyName string) string {
	if northAmericanCompanies[companyName] {
		return "North America"
	}
	return "Global"
}

// UsageTypeFor classifies how an ingredient is typically formulated.
func UsageTypeFor(ingredient string) string {
	switch ingredient {
	case "BioPerine":
		return "Bioenhancer"
	case "Lutemax 2020", "CurcuWIN", "Capsimax", "ForsLean":
		return "Primary Active"
	default:
		return "Supporting Ingredient"
	}
}

// CuratedSuppliers returns the peer-supplier comparison rows written to the
// secondary table. Cells deliberately keep the loose notation of the research
// spreadsheet they came from.
func CuratedSuppliers() []model.Supplier {
	return []model.Supplier{
		{
			CompanyName:          "Himalaya Wellness Company",
			Website:              "https://himalayawellness.in",
			Type:                 "B2C (herbal products)",
			AnnualRevenue:        "₹3,760 Cr",
			GrowthTrend:          "+5.5% YoY",
			ProductCategories:    "Supplements, Personal Care, Baby Care, Animal Care",
			ProductCountText:     "500+ products",
			AvgOnlineRating:      "4.3/5",
			Patents:              "15+ patents",
			RegulatoryApprovals:  "FSSAI, AYUSH, GMP",
			HealthIssuesTargeted: "Immunity, Liver Health, Skin Care, Stress",
			ScientificClaims:     "Clinically studied Liv.52; published trials on Ashwagandha",
			IngredientUniqueness: "Proprietary herbal blends; Ayurvedic formulations",
			TopProducts:          "Liv.52, Ashvagandha, Septilin",
			GeographicPresence:   "India, USA, Europe, Middle East",
			SentimentHighlights:  "Trusted heritage brand; strong pharmacy presence",
		},
		{
			CompanyName:          "Dabur India Ltd.",
			Website:              "https://www.dabur.com",
			Type:                 "B2C (FMCG, ayurvedic)",
			AnnualRevenue:        "₹12,563 Cr",
			GrowthTrend:          "+3.6% YoY",
			ProductCategories:    "Health Supplements, Personal Care, Foods & Beverages",
			ProductCountText:     "400+ products",
			AvgOnlineRating:      "4.2/5",
			Patents:              "20+ patents",
			RegulatoryApprovals:  "FSSAI, AYUSH, US FDA (select)",
			HealthIssuesTargeted: "Immunity, Digestive Health, Energy",
			ScientificClaims:     "Chyawanprash clinical studies; honey purity research",
			IngredientUniqueness: "Large-scale ayurvedic extraction; classical formulations",
			TopProducts:          "Chyawanprash, Honey, Honitus",
			GeographicPresence:   "India, SAARC, Middle East, Africa, USA",
			SentimentHighlights:  "Household name; occasional quality debates",
		},
		{
			CompanyName:          "Arjuna Natural Extracts Ltd.",
			Website:              "https://www.arjunanatural.com",
			Type:                 "B2B (botanical extracts)",
			AnnualRevenue:        "₹370 Cr",
			GrowthTrend:          "+2.8% YoY",
			ProductCategories:    "Botanical Extracts, Curcumin, Omega-3",
			ProductCountText:     "50+ ingredients",
			AvgOnlineRating:      "N/A (B2B)",
			Patents:              "70+ patents",
			RegulatoryApprovals:  "US FDA GRAS, FSSAI, EU Novel Food",
			HealthIssuesTargeted: "Joint Health, Cognitive Health, Cardiovascular",
			ScientificClaims:     "BCM-95 curcumin bioavailability studies",
			IngredientUniqueness: "BCM-95 turmeric extract; patented fish oil concentrates",
			TopProducts:          "BCM-95, X-Pept, Shagandha",
			GeographicPresence:   "India, USA, Europe, Asia",
			SentimentHighlights:  "Respected science-first extractor",
		},
		{
			CompanyName:          "Baidyanath Group",
			Website:              "https://www.baidyanath.co.in",
			Type:                 "B2C (ayurvedic medicines)",
			AnnualRevenue:        "₹536 Cr",
			GrowthTrend:          "+4.2% YoY",
			ProductCategories:    "Ayurvedic Medicines, Supplements, Personal Care",
			ProductCountText:     "700+ products",
			AvgOnlineRating:      "4.1/5",
			Patents:              "5+ patents",
			RegulatoryApprovals:  "AYUSH, FSSAI",
			HealthIssuesTargeted: "Immunity, Respiratory, Digestive Health",
			ScientificClaims:     "Classical formulation references; limited modern trials",
			IngredientUniqueness: "Classical ayurvedic preparations at scale",
			TopProducts:          "Chyawanprash Special, Kesari Kalp, Madhumehari",
			GeographicPresence:   "India, SAARC",
			SentimentHighlights:  "Legacy ayurveda house; traditional positioning",
		},
		{
			CompanyName:          "Patanjali Ayurved",
			Website:              "https://www.patanjaliayurved.net",
			Type:                 "B2C (FMCG, ayurvedic)",
			AnnualRevenue:        "₹9,335 Cr",
			GrowthTrend:          "+2.6% YoY",
			ProductCategories:    "Foods & Beverages, Personal Care, Health Supplements",
			ProductCountText:     "900+ products",
			AvgOnlineRating:      "3.9/5",
			Patents:              "10+ patents",
			RegulatoryApprovals:  "FSSAI, AYUSH",
			HealthIssuesTargeted: "Immunity, Weight Management, General Wellness",
			ScientificClaims:     "In-house research claims; contested external validation",
			IngredientUniqueness: "Mass-market swadeshi herbal range",
			TopProducts:          "Chyawanprash, Amla Juice, Divya Medohar",
			GeographicPresence:   "India, SAARC, Middle East",
			SentimentHighlights:  "Price leader; polarizing brand perception",
		},
		{
			CompanyName:          "Zandu (Emami-owned)",
			Website:              "https://www.zanducare.com",
			Type:                 "B2C (ayurvedic healthcare)",
			AnnualRevenue:        "₹1,262 Cr",
			GrowthTrend:          "+3.4% YoY",
			ProductCategories:    "Health Supplements, Ayurvedic Medicines, Personal Care",
			ProductCountText:     "300+ products",
			AvgOnlineRating:      "4.0/5",
			Patents:              "8+ patents",
			RegulatoryApprovals:  "AYUSH, FSSAI",
			HealthIssuesTargeted: "Pain Relief, Immunity, Digestive Health",
			ScientificClaims:     "Zandu Balm efficacy studies; ayurvedic references",
			IngredientUniqueness: "Balm and classical ayurvedic portfolio",
			TopProducts:          "Zandu Balm, Pancharishta, Kesari Jivan",
			GeographicPresence:   "India, SAARC, Middle East",
			SentimentHighlights:  "Strong OTC recall; steady modernization",
		},
	}
}
