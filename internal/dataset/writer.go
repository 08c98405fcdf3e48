package dataset

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"nutraintel/internal/model"
)

// Write materializes a provider's tables plus the supplier comparison rows
// into dir, along with a metadata object describing the snapshot.
func Write(dir string, src Source, suppliers []model.Supplier, now time.Time) (model.Metadata, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return model.Metadata{}, err
	}

	usage := src.Usage()
	mentions := src.Mentions()
	market := src.Market()

	if err := writeUsage(filepath.Join(dir, UsageFile), usage); err != nil {
		return model.Metadata{}, err
	}
	if err := writeMentions(filepath.Join(dir, MentionsFile), mentions); err != nil {
		return model.Metadata{}, err
	}
	if err := writeMarket(filepath.Join(dir, MarketFile), market); err != nil {
		return model.Metadata{}, err
	}
	if err := writeSuppliers(filepath.Join(dir, SupplierFile), suppliers); err != nil {
		return model.Metadata{}, err
	}

	companies := make(map[string]bool)
	for _, u := range usage {
		companies[u.CompanyName] = true
	}

	meta := model.Metadata{
		LastUpdated:        now.Format(time.RFC3339),
		TotalCompanies:     len(companies),
		TotalMentions:      len(mentions),
		IngredientsTracked: len(TrackedIngredients),
		DataQuality:        src.Name(),
	}

	b, err := json.MarshalIndent(meta, "", "  ")
	if err != nil {
		return model.Metadata{}, err
	}
	if err := os.WriteFile(filepath.Join(dir, MetadataFile), b, 0o644); err != nil {
		return model.Metadata{}, err
	}

	return meta, nil
}

func writeUsage(path string, records []model.UsageRecord) error {
	rows := make([][]string, 0, len(records))
	for _, r := range records {
		rows = append(rows, []string{
			r.CompanyName,
			r.Website,
			r.Ingredient,
			strconv.Itoa(r.ProductCount),
			r.MarketRegion,
			r.UsageType,
			strconv.Itoa(r.AnnualVolumeKg),
			strconv.FormatFloat(r.SentimentScore, 'f', 2, 64),
			r.LastUpdated.Format(dateLayout),
			r.DataSource,
		})
	}
	return writeCSV(path, usageHeader, rows)
}

func writeMentions(path string, mentions []model.Mention) error {
	rows := make([][]string, 0, len(mentions))
	for _, m := range mentions {
		rows = append(rows, []string{
			m.Title,
			m.URL,
			m.Source,
			m.Ingredient,
			m.Sentiment,
			strconv.FormatFloat(m.SentimentScore, 'f', 1, 64),
			m.Date,
			m.Snippet,
			m.Category,
		})
	}
	return writeCSV(path, mentionsHeader, rows)
}

func writeMarket(path string, records []model.MarketRecord) error {
	rows := make([][]string, 0, len(records))
	for _, r := range records {
		rows = append(rows, []string{
			r.Ingredient,
			strconv.FormatFloat(r.MarketSharePercent, 'f', 1, 64),
			strconv.FormatFloat(r.GrowthRatePercent, 'f', 1, 64),
			r.KeyApplications,
			strconv.FormatInt(r.TotalMarketSizeUSD, 10),
			r.LastUpdated.Format(dateLayout),
		})
	}
	return writeCSV(path, marketHeader, rows)
}

func writeSuppliers(path string, suppliers []model.Supplier) error {
	rows := make([][]string, 0, len(suppliers))
	for _, s := range suppliers {
		rows = append(rows, []string{
			s.CompanyName,
			s.Website,
			s.Type,
			s.AnnualRevenue,
			s.GrowthTrend,
			s.ProductCategories,
			s.ProductCountText,
			s.AvgOnlineRating,
			s.Patents,
			s.RegulatoryApprovals,
			s.HealthIssuesTargeted,
			s.ScientificClaims,
			s.IngredientUniqueness,
			s.TopProducts,
			s.GeographicPresence,
			s.SentimentHighlights,
		})
	}
	return writeCSV(path, supplierHeader, rows)
}

func writeCSV(path string, header []string, rows [][]string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(header); err != nil {
		return err
	}
	for _, row := range rows {
		if err := w.Write(row); err != nil {
			return err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}
