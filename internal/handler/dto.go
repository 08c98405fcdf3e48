package handler

import (
	"nutraintel/internal/analytics"
	"nutraintel/internal/model"
)

type FiltersResponse struct {
	Ingredients        []string `json:"ingredients"`
	Regions            []string `json:"regions"`
	SuppliersAvailable bool     `json:"suppliers_available"`
}

type SummaryResponse struct {
	Summary  analytics.Summary `json:"summary"`
	Metadata model.Metadata    `json:"metadata"`
}

type CompaniesResponse struct {
	Companies   []analytics.CompanyUsage `json:"companies"`
	TopByVolume []analytics.CompanyUsage `json:"top_by_volume"`
}

type RegionsResponse struct {
	Regions []analytics.RegionCount `json:"regions"`
}

type UsageTypesResponse struct {
	UsageTypes []analytics.UsageTypeCount `json:"usage_types"`
}

type MarketResponse struct {
	Market      []MarketRow                  `json:"market"`
	VolumeShare []analytics.IngredientVolume `json:"volume_share"`
	Matrix      []analytics.PerformanceCell  `json:"matrix"`
	Insights    analytics.Insights           `json:"insights"`
}

type MarketRow struct {
	Ingredient         string  `json:"ingredient"`
	MarketSharePercent float64 `json:"market_share_percent"`
	GrowthRatePercent  float64 `json:"growth_rate_percent"`
	KeyApplications    string  `json:"key_applications"`
	TotalMarketSizeUSD int64   `json:"total_market_size_usd"`
}

type MentionResponse struct {
	Title          string  `json:"title"`
	URL            string  `json:"url"`
	Source         string  `json:"source"`
	Ingredient     string  `json:"ingredient"`
	Sentiment      string  `json:"sentiment"`
	SentimentScore float64 `json:"sentiment_score"`
	Date           string  `json:"date"`
	Snippet        string  `json:"snippet"`
	Category       string  `json:"category"`
}

type MentionsResponse struct {
	Mentions []MentionResponse           `json:"mentions"`
	Overview []analytics.MentionOverview `json:"overview"`
}

type SuppliersResponse struct {
	Suppliers []SupplierRow        `json:"suppliers"`
	Radar     []analytics.RadarRow `json:"radar"`
}

type SupplierRow struct {
	CompanyName         string  `json:"company_name"`
	Type                string  `json:"type"`
	AnnualRevenue       string  `json:"annual_revenue"`
	GrowthTrend         string  `json:"growth_trend"`
	ProductCategories   string  `json:"product_categories"`
	RegulatoryApprovals string  `json:"regulatory_approvals"`
	GeographicPresence  string  `json:"geographic_presence"`
	RevenueCr           float64 `json:"revenue_cr"`
	Products            int     `json:"products"`
	GrowthPercent       float64 `json:"growth_percent"`
	Patents             int     `json:"patents"`
	Approvals           int     `json:"approvals"`
	IsReference         bool    `json:"is_reference"`
}

type ChatRequest struct {
	Question  string `json:"question"`
	SessionID string `json:"session_id"`
}

type ChatResponse struct {
	Answer        string `json:"answer"`
	Model         string `json:"model"`
	Cached        bool   `json:"cached"`
	PromptVersion string `json:"prompt_version"`
}

type SessionResponse struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

type ChatErrorResponse struct {
	Error    string `json:"error"`
	Category string `json:"category"`
}
