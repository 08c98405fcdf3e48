package handler

import (
	"bytes"
	"encoding/csv"
	"log/slog"
	"net/http"

	"nutraintel/internal/analytics"
	"nutraintel/internal/dataset"
	"nutraintel/internal/model"

	"github.com/gin-gonic/gin"
)

const topCompaniesLimit = 10

// DataStore is the read surface the dashboard needs. Both the in-memory
// CSV tables and the Postgres-backed store satisfy it.
type DataStore interface {
	Usage() ([]model.UsageRecord, error)
	Mentions() ([]model.Mention, error)
	Market() ([]model.MarketRecord, error)
	Suppliers() ([]model.Supplier, error)
	SuppliersAvailable() bool
	Metadata() (model.Metadata, error)
}

type DashboardHandler struct {
	store DataStore
}

func NewDashboardHandler(store DataStore) *DashboardHandler {
	return &DashboardHandler{store: store}
}

// queryFilter reads the repeated ingredient= and region= query params.
func queryFilter(c *gin.Context) analytics.Filter {
	return analytics.Filter{
		Ingredients: c.QueryArray("ingredient"),
		Regions:     c.QueryArray("region"),
	}
}

func (h *DashboardHandler) filteredUsage(c *gin.Context) ([]model.UsageRecord, bool) {
	records, err := h.store.Usage()
	if err != nil {
		slog.Error("error fetching usage table", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Store error"})
		return nil, false
	}
	return queryFilter(c).Apply(records), true
}

func (h *DashboardHandler) GetHealth(c *gin.Context) {
	if _, err := h.store.Usage(); err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status": "unhealthy",
			"store":  "unreachable",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "healthy",
		"store":  "connected",
	})
}

func (h *DashboardHandler) GetFilters(c *gin.Context) {
	records, err := h.store.Usage()
	if err != nil {
		slog.Error("error fetching usage table", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Store error"})
		return
	}

	c.JSON(http.StatusOK, FiltersResponse{
		Ingredients:        analytics.UniqueIngredients(records),
		Regions:            analytics.UniqueRegions(records),
		SuppliersAvailable: h.store.SuppliersAvailable(),
	})
}

func (h *DashboardHandler) GetSummary(c *gin.Context) {
	records, ok := h.filteredUsage(c)
	if !ok {
		return
	}

	meta, err := h.store.Metadata()
	if err != nil {
		slog.Error("error fetching metadata", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Store error"})
		return
	}

	c.JSON(http.StatusOK, SummaryResponse{
		Summary:  analytics.Summarize(records),
		Metadata: meta,
	})
}

func (h *DashboardHandler) GetCompanies(c *gin.Context) {
	records, ok := h.filteredUsage(c)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, CompaniesResponse{
		Companies:   analytics.GroupByCompany(records),
		TopByVolume: analytics.TopCompaniesByVolume(records, topCompaniesLimit),
	})
}

func (h *DashboardHandler) GetRegions(c *gin.Context) {
	records, ok := h.filteredUsage(c)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, RegionsResponse{
		Regions: analytics.CompaniesByRegion(records),
	})
}

func (h *DashboardHandler) GetUsageTypes(c *gin.Context) {
	records, ok := h.filteredUsage(c)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, UsageTypesResponse{
		UsageTypes: analytics.GroupByUsageType(records),
	})
}

func (h *DashboardHandler) GetMarket(c *gin.Context) {
	records, ok := h.filteredUsage(c)
	if !ok {
		return
	}

	market, err := h.store.Market()
	if err != nil {
		slog.Error("error fetching market table", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Store error"})
		return
	}
	market = analytics.FilterMarket(market, c.QueryArray("ingredient"))

	rows := make([]MarketRow, 0, len(market))
	for _, m := range market {
		rows = append(rows, MarketRow{
			Ingredient:         m.Ingredient,
			MarketSharePercent: m.MarketSharePercent,
			GrowthRatePercent:  m.GrowthRatePercent,
			KeyApplications:    m.KeyApplications,
			TotalMarketSizeUSD: m.TotalMarketSizeUSD,
		})
	}

	c.JSON(http.StatusOK, MarketResponse{
		Market:      rows,
		VolumeShare: analytics.VolumeShareByIngredient(records),
		Matrix:      analytics.PerformanceMatrix(records, market),
		Insights:    analytics.KeyInsights(records, market),
	})
}

func (h *DashboardHandler) GetMentions(c *gin.Context) {
	mentions, err := h.store.Mentions()
	if err != nil {
		slog.Error("error fetching mentions", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Store error"})
		return
	}
	mentions = analytics.FilterMentions(mentions, c.QueryArray("ingredient"))

	res := make([]MentionResponse, 0, len(mentions))
	for _, m := range mentions {
		res = append(res, MentionResponse{
			Title:          m.Title,
			URL:            m.URL,
			Source:         m.Source,
			Ingredient:     m.Ingredient,
			Sentiment:      m.Sentiment,
			SentimentScore: m.SentimentScore,
			Date:           m.Date,
			Snippet:        m.Snippet,
			Category:       m.Category,
		})
	}

	c.JSON(http.StatusOK, MentionsResponse{
		Mentions: res,
		Overview: analytics.SummarizeMentions(mentions),
	})
}

func (h *DashboardHandler) GetSuppliers(c *gin.Context) {
	if !h.store.SuppliersAvailable() {
		c.JSON(http.StatusNotFound, gin.H{
			"error":               "Supplier comparison table not loaded",
			"suppliers_available": false,
		})
		return
	}

	suppliers, err := h.store.Suppliers()
	if err != nil {
		slog.Error("error fetching suppliers", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Store error"})
		return
	}

	metrics := analytics.SupplierComparison(suppliers)

	rows := make([]SupplierRow, 0, len(metrics))
	for _, m := range metrics {
		rows = append(rows, SupplierRow{
			CompanyName:         m.Supplier.CompanyName,
			Type:                m.Supplier.Type,
			AnnualRevenue:       m.Supplier.AnnualRevenue,
			GrowthTrend:         m.Supplier.GrowthTrend,
			ProductCategories:   m.Supplier.ProductCategories,
			RegulatoryApprovals: m.Supplier.RegulatoryApprovals,
			GeographicPresence:  m.Supplier.GeographicPresence,
			RevenueCr:           m.RevenueCr,
			Products:            m.Products,
			GrowthPercent:       m.GrowthPercent,
			Patents:             m.Patents,
			Approvals:           m.Approvals,
			IsReference:         m.IsReference,
		})
	}

	c.JSON(http.StatusOK, SuppliersResponse{
		Suppliers: rows,
		Radar:     analytics.RadarData(metrics),
	})
}

// ExportUsage streams the filtered usage table as a CSV download.
func (h *DashboardHandler) ExportUsage(c *gin.Context) {
	records, ok := h.filteredUsage(c)
	if !ok {
		return
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(dataset.UsageColumns()); err != nil {
		slog.Error("error writing export", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Export error"})
		return
	}
	for _, r := range records {
		if err := w.Write(dataset.UsageRow(r)); err != nil {
			slog.Error("error writing export", "error", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Export error"})
			return
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		slog.Error("error writing export", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Export error"})
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+dataset.UsageFile+`"`)
	c.Data(http.StatusOK, "text/csv", buf.Bytes())
}
