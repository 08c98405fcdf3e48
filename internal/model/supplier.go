package model

// Supplier is a peer-company row from the secondary comparison table.
// Most cells are free text in mixed notation (currency strings, "20+ products",
// "+10% YoY"); numeric values are extracted downstream by pkg/parse.
type Supplier struct {
	CompanyName          string
	Website              string
	Type                 string
	AnnualRevenue        string
	GrowthTrend          string
	ProductCategories    string
	ProductCountText     string
	AvgOnlineRating      string
	Patents              string
	RegulatoryApprovals  string
	HealthIssuesTargeted string
	ScientificClaims     string
	IngredientUniqueness string
	TopProducts          string
	GeographicPresence   string
	SentimentHighlights  string
}

// ReferenceSupplier is the fixed row for the ingredient house itself, appended
// to the comparison table so peers are always measured against it.
func ReferenceSupplier() Supplier {
	return Supplier{
		CompanyName:         "OmniActive Health Technologies",
		Type:                "B2B (nutraceutical ingredients)",
		AnnualRevenue:       "~₹600 Cr (2024 est.)",
		GrowthTrend:         "+10% YoY (simulated)",
		ProductCategories:   "Lutein, Zeaxanthin, Curcumin, Plant Extracts",
		ProductCountText:    "20+ ingredients",
		AvgOnlineRating:     "N/A (B2B)",
		Patents:             "30+ global patents",
		RegulatoryApprovals: "US FDA, FSSAI, EU Novel Food, GRAS",
	}
}
