package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"nutraintel/internal/model"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/assert/v2"
)

type fakeStore struct {
	usage              []model.UsageRecord
	mentions           []model.Mention
	market             []model.MarketRecord
	suppliers          []model.Supplier
	suppliersAvailable bool
	meta               model.Metadata
	err                error
}

func (f *fakeStore) Usage() ([]model.UsageRecord, error)   { return f.usage, f.err }
func (f *fakeStore) Mentions() ([]model.Mention, error)    { return f.mentions, f.err }
func (f *fakeStore) Market() ([]model.MarketRecord, error) { return f.market, f.err }
func (f *fakeStore) Suppliers() ([]model.Supplier, error)  { return f.suppliers, f.err }
func (f *fakeStore) SuppliersAvailable() bool              { return f.suppliersAvailable }
func (f *fakeStore) Metadata() (model.Metadata, error)     { return f.meta, f.err }

func testUsage() []model.UsageRecord {
	return []model.UsageRecord{
		{CompanyName: "Alpha Nutrition", Ingredient: "Lutemax 2020", ProductCount: 3, MarketRegion: "North America", UsageType: "Eye Health", AnnualVolumeKg: 450, SentimentScore: 4.2},
		{CompanyName: "Beta Labs", Ingredient: "CurcuWIN", ProductCount: 2, MarketRegion: "Asia", UsageType: "Joint Health", AnnualVolumeKg: 300, SentimentScore: 3.8},
		{CompanyName: "Alpha Nutrition", Ingredient: "CurcuWIN", ProductCount: 1, MarketRegion: "North America", UsageType: "Joint Health", AnnualVolumeKg: 100, SentimentScore: 4.0},
	}
}

func newDashboardRouter(store DataStore) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewDashboardHandler(store)
	r.GET("/health", h.GetHealth)
	r.GET("/filters", h.GetFilters)
	r.GET("/summary", h.GetSummary)
	r.GET("/companies", h.GetCompanies)
	r.GET("/regions", h.GetRegions)
	r.GET("/usage-types", h.GetUsageTypes)
	r.GET("/market", h.GetMarket)
	r.GET("/mentions", h.GetMentions)
	r.GET("/suppliers", h.GetSuppliers)
	r.GET("/export/usage.csv", h.ExportUsage)
	return r
}

func TestGetFilters(t *testing.T) {
	store := &fakeStore{usage: testUsage(), suppliersAvailable: true}
	r := newDashboardRouter(store)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/filters", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var res FiltersResponse
	json.Unmarshal(w.Body.Bytes(), &res)
	assert.Equal(t, []string{"Lutemax 2020", "CurcuWIN"}, res.Ingredients)
	assert.Equal(t, []string{"North America", "Asia"}, res.Regions)
	assert.Equal(t, true, res.SuppliersAvailable)
}

func TestGetSummary_Unfiltered(t *testing.T) {
	store := &fakeStore{usage: testUsage(), meta: model.Metadata{TotalCompanies: 2}}
	r := newDashboardRouter(store)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/summary", nil)
	r.ServeHTTP(w, req)

	var res SummaryResponse
	json.Unmarshal(w.Body.Bytes(), &res)
	assert.Equal(t, 2, res.Summary.Companies)
	assert.Equal(t, 6, res.Summary.TotalProducts)
	assert.Equal(t, 850, res.Summary.TotalVolumeKg)
	assert.Equal(t, 4.0, res.Summary.AvgSentiment)
	assert.Equal(t, 2, res.Metadata.TotalCompanies)
}

func TestGetSummary_Filtered(t *testing.T) {
	store := &fakeStore{usage: testUsage()}
	r := newDashboardRouter(store)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/summary?ingredient=Lutemax+2020", nil)
	r.ServeHTTP(w, req)

	var res SummaryResponse
	json.Unmarshal(w.Body.Bytes(), &res)
	assert.Equal(t, 1, res.Summary.Companies)
	assert.Equal(t, 3, res.Summary.TotalProducts)
	assert.Equal(t, 450, res.Summary.TotalVolumeKg)
}

func TestGetCompanies(t *testing.T) {
	store := &fakeStore{usage: testUsage()}
	r := newDashboardRouter(store)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/companies", nil)
	r.ServeHTTP(w, req)

	var res CompaniesResponse
	json.Unmarshal(w.Body.Bytes(), &res)
	assert.Equal(t, 2, len(res.Companies))
	assert.Equal(t, "Alpha Nutrition", res.Companies[0].Company)
	assert.Equal(t, 4, res.Companies[0].TotalProducts)
	assert.Equal(t, "Alpha Nutrition", res.TopByVolume[0].Company)
	assert.Equal(t, 550, res.TopByVolume[0].TotalVolumeKg)
}

func TestGetRegions(t *testing.T) {
	store := &fakeStore{usage: testUsage()}
	r := newDashboardRouter(store)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/regions", nil)
	r.ServeHTTP(w, req)

	var res RegionsResponse
	json.Unmarshal(w.Body.Bytes(), &res)
	assert.Equal(t, 2, len(res.Regions))
}

func TestGetMarket(t *testing.T) {
	store := &fakeStore{
		usage: testUsage(),
		market: []model.MarketRecord{
			{Ingredient: "Lutemax 2020", MarketSharePercent: 35, GrowthRatePercent: 12.5},
			{Ingredient: "CurcuWIN", MarketSharePercent: 15, GrowthRatePercent: 18.2},
		},
	}
	r := newDashboardRouter(store)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/market", nil)
	r.ServeHTTP(w, req)

	var res MarketResponse
	json.Unmarshal(w.Body.Bytes(), &res)
	assert.Equal(t, 2, len(res.Market))
	assert.Equal(t, 2, len(res.Matrix))
	assert.Equal(t, "Lutemax 2020", res.Insights.MarketLeader)
	assert.Equal(t, "CurcuWIN", res.Insights.FastestGrowing)
	assert.Equal(t, "CurcuWIN", res.Insights.MostAdopted)
}

func TestGetMentions(t *testing.T) {
	store := &fakeStore{
		mentions: []model.Mention{
			{Title: "Launch note", Ingredient: "Lutemax 2020", Sentiment: model.SentimentPositive, SentimentScore: 4.5},
			{Title: "Review", Ingredient: "CurcuWIN", Sentiment: model.SentimentNeutral, SentimentScore: 3.0},
		},
	}
	r := newDashboardRouter(store)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/mentions?ingredient=Lutemax+2020", nil)
	r.ServeHTTP(w, req)

	var res MentionsResponse
	json.Unmarshal(w.Body.Bytes(), &res)
	assert.Equal(t, 1, len(res.Mentions))
	assert.Equal(t, "Launch note", res.Mentions[0].Title)
	assert.Equal(t, 1, len(res.Overview))
	assert.Equal(t, 1, res.Overview[0].Positive)
}

func TestGetSuppliers(t *testing.T) {
	store := &fakeStore{
		suppliersAvailable: true,
		suppliers: []model.Supplier{
			{CompanyName: "Herbal Co", AnnualRevenue: "₹300 Cr", ProductCountText: "40+ products", GrowthTrend: "+5% YoY", Patents: "2 patents", RegulatoryApprovals: "FSSAI, GMP"},
		},
	}
	r := newDashboardRouter(store)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/suppliers", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var res SuppliersResponse
	json.Unmarshal(w.Body.Bytes(), &res)
	assert.Equal(t, 2, len(res.Suppliers))
	assert.Equal(t, 300.0, res.Suppliers[0].RevenueCr)
	assert.Equal(t, false, res.Suppliers[0].IsReference)
	assert.Equal(t, true, res.Suppliers[1].IsReference)
	assert.Equal(t, 2, len(res.Radar))
}

func TestGetSuppliers_TableMissing(t *testing.T) {
	store := &fakeStore{suppliersAvailable: false}
	r := newDashboardRouter(store)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/suppliers", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)

	var res map[string]any
	json.Unmarshal(w.Body.Bytes(), &res)
	assert.Equal(t, false, res["suppliers_available"])
}

func TestExportUsage(t *testing.T) {
	store := &fakeStore{usage: testUsage()}
	r := newDashboardRouter(store)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/export/usage.csv?region=Asia", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "text/csv", w.Header().Get("Content-Type"))

	lines := strings.Split(strings.TrimSpace(w.Body.String()), "\n")
	assert.Equal(t, 2, len(lines))
	assert.Equal(t, true, strings.HasPrefix(lines[0], "company_name,"))
	assert.Equal(t, true, strings.HasPrefix(lines[1], "Beta Labs,"))
}

func TestStoreError(t *testing.T) {
	store := &fakeStore{err: errors.New("store down")}
	r := newDashboardRouter(store)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/summary", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestGetHealth(t *testing.T) {
	r := newDashboardRouter(&fakeStore{usage: testUsage()})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/health", nil)
	r.ServeHTTP(w, req)

	var res map[string]string
	json.Unmarshal(w.Body.Bytes(), &res)
	assert.Equal(t, "healthy", res["status"])

	r = newDashboardRouter(&fakeStore{err: errors.New("store down")})
	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest("GET", "/health", nil))
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}
