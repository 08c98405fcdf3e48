package dataset

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"nutraintel/internal/model"
)

const (
	UsageFile    = "omniactive_company_usage.csv"
	MentionsFile = "omniactive_mentions.csv"
	MarketFile   = "omniactive_market_data.csv"
	SupplierFile = "supplier_comparison.csv"
	MetadataFile = "metadata.json"
)

const dateLayout = "2006-01-02"

var usageHeader = []string{
	"company_name", "website", "ingredient", "product_count", "market_region",
	"usage_type", "annual_volume_kg", "sentiment_score", "last_updated", "data_source",
}

var mentionsHeader = []string{
	"title", "url", "source", "ingredient", "sentiment", "sentiment_score",
	"date", "snippet", "category",
}

var marketHeader = []string{
	"ingredient", "market_share_percent", "growth_rate_percent",
	"key_applications", "total_market_size_usd", "last_updated",
}

var supplierHeader = []string{
	"company_name", "website", "type", "annual_revenue", "growth_trend",
	"product_categories", "product_count", "avg_online_rating", "patents",
	"regulatory_approvals", "health_issues_targeted", "scientific_claims",
	"ingredient_uniqueness", "top_products", "geographic_presence",
	"sentiment_highlights",
}

// UsageColumns returns the usage table column names in file order, for
// callers that re-emit usage rows as CSV.
func UsageColumns() []string {
	return append([]string(nil), usageHeader...)
}

// UsageRow renders one record in the usage file's column order.
func UsageRow(r model.UsageRecord) []string {
	return []string{
		r.CompanyName, r.Website, r.Ingredient, strconv.Itoa(r.ProductCount),
		r.MarketRegion, r.UsageType, strconv.Itoa(r.AnnualVolumeKg),
		strconv.FormatFloat(r.SentimentScore, 'f', -1, 64),
		r.LastUpdated.Format(dateLayout), r.DataSource,
	}
}

// ErrPrimaryMissing marks the fatal case: the usage table is the contract the
// whole dashboard is built on.
var ErrPrimaryMissing = errors.New("primary usage table missing")

// Load reads all tables from dir. A missing usage file is an error; a missing
// supplier file yields an empty table with SuppliersAvailable() == false.
func Load(dir string) (*Tables, error) {
	usage, err := LoadUsage(filepath.Join(dir, UsageFile))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrPrimaryMissing, filepath.Join(dir, UsageFile))
		}
		return nil, err
	}

	mentions, err := LoadMentions(filepath.Join(dir, MentionsFile))
	if err != nil && !os.IsNotExist(err) {
		return nil, err
	}

	market, err := LoadMarket(filepath.Join(dir, MarketFile))
	if err != nil && !os.IsNotExist(err) {
		return nil, err
	}

	suppliersAvailable := true
	suppliers, err := LoadSuppliers(filepath.Join(dir, SupplierFile))
	if err != nil {
		if !os.IsNotExist(err) {
			return nil, err
		}
		slog.Warn("supplier comparison table missing, peer sections disabled", "path", filepath.Join(dir, SupplierFile))
		suppliersAvailable = false
		suppliers = nil
	}

	meta, err := LoadMetadata(filepath.Join(dir, MetadataFile))
	if err != nil && !os.IsNotExist(err) {
		return nil, err
	}

	return &Tables{
		usage:              usage,
		mentions:           mentions,
		market:             market,
		suppliers:          suppliers,
		suppliersAvailable: suppliersAvailable,
		meta:               meta,
	}, nil
}

func LoadUsage(path string) ([]model.UsageRecord, error) {
	rows, err := readCSV(path, usageHeader)
	if err != nil {
		return nil, err
	}

	var records []model.UsageRecord
	for _, row := range rows {
		updated, _ := time.Parse(dateLayout, row[8])
		records = append(records, model.UsageRecord{
			CompanyName:    row[0],
			Website:        row[1],
			Ingredient:     row[2],
			ProductCount:   atoiLenient(row[3]),
			MarketRegion:   row[4],
			UsageType:      row[5],
			AnnualVolumeKg: atoiLenient(row[6]),
			SentimentScore: atofLenient(row[7]),
			LastUpdated:    updated,
			DataSource:     row[9],
		})
	}
	return records, nil
}

func LoadMentions(path string) ([]model.Mention, error) {
	rows, err := readCSV(path, mentionsHeader)
	if err != nil {
		return nil, err
	}

	var mentions []model.Mention
	for _, row := range rows {
		mentions = append(mentions, model.Mention{
			Title:          row[0],
			URL:            row[1],
			Source:         row[2],
			Ingredient:     row[3],
			Sentiment:      row[4],
			SentimentScore: atofLenient(row[5]),
			Date:           row[6],
			Snippet:        row[7],
			Category:       row[8],
		})
	}
	return mentions, nil
}

func LoadMarket(path string) ([]model.MarketRecord, error) {
	rows, err := readCSV(path, marketHeader)
	if err != nil {
		return nil, err
	}

	var records []model.MarketRecord
	for _, row := range rows {
		updated, _ := time.Parse(dateLayout, row[5])
		records = append(records, model.MarketRecord{
			Ingredient:         row[0],
			MarketSharePercent: atofLenient(row[1]),
			GrowthRatePercent:  atofLenient(row[2]),
			KeyApplications:    row[3],
			TotalMarketSizeUSD: int64(atofLenient(row[4])),
			LastUpdated:        updated,
		})
	}
	return records, nil
}

func LoadSuppliers(path string) ([]model.Supplier, error) {
	rows, err := readCSV(path, supplierHeader)
	if err != nil {
		return nil, err
	}

	var suppliers []model.Supplier
	for _, row := range rows {
		suppliers = append(suppliers, model.Supplier{
			CompanyName:          row[0],
			Website:              row[1],
			Type:                 row[2],
			AnnualRevenue:        row[3],
			GrowthTrend:          row[4],
			ProductCategories:    row[5],
			ProductCountText:     row[6],
			AvgOnlineRating:      row[7],
			Patents:              row[8],
			RegulatoryApprovals:  row[9],
			HealthIssuesTargeted: row[10],
			ScientificClaims:     row[11],
			IngredientUniqueness: row[12],
			TopProducts:          row[13],
			GeographicPresence:   row[14],
			SentimentHighlights:  row[15],
		})
	}
	return suppliers, nil
}

func LoadMetadata(path string) (model.Metadata, error) {
	var meta model.Metadata
	b, err := os.ReadFile(path)
	if err != nil {
		return meta, err
	}
	if err := json.Unmarshal(b, &meta); err != nil {
		return meta, fmt.Errorf("parsing %s: %w", path, err)
	}
	return meta, nil
}

// readCSV enforces the fixed header contract, then reads rows leniently:
// rows with the wrong field count are skipped with a warning.
func readCSV(path string, header []string) ([][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1

	first, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("reading header of %s: %w", path, err)
	}
	if err := checkHeader(path, first, header); err != nil {
		return nil, err
	}

	var rows [][]string
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			slog.Warn("skipping malformed row", "path", path, "error", err)
			continue
		}
		if len(row) != len(header) {
			slog.Warn("skipping row with unexpected field count", "path", path, "fields", len(row))
			continue
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func checkHeader(path string, got, want []string) error {
	if len(got) != len(want) {
		return fmt.Errorf("%s: expected %d columns, got %d", path, len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			return fmt.Errorf("%s: column %d is %q, expected %q", path, i, got[i], want[i])
		}
	}
	return nil
}

func atoiLenient(s string) int {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}
	return n
}

func atofLenient(s string) float64 {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return f
}
