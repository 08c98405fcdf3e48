package repository

import (
	"database/sql"
	"nutraintel/internal/model"
)

type UsageRepository struct {
	db *sql.DB
}

func NewUsageRepository(db *sql.DB) *UsageRepository {
	return &UsageRepository{db: db}
}

// EnsureSchema creates the dashboard tables when they do not exist yet. The
// collector calls this before loading, so a fresh database needs no manual
// setup.
func (r *UsageRepository) EnsureSchema() error {
	_, err := r.db.Exec(`
		CREATE TABLE IF NOT EXISTS usage_record (
			id SERIAL PRIMARY KEY,
			company_name TEXT NOT NULL,
			website TEXT NOT NULL DEFAULT '',
			ingredient TEXT NOT NULL,
			product_count INT NOT NULL,
			market_region TEXT NOT NULL,
			usage_type TEXT NOT NULL,
			annual_volume_kg INT NOT NULL,
			sentiment_score DOUBLE PRECISION NOT NULL,
			last_updated TIMESTAMPTZ NOT NULL,
			data_source TEXT NOT NULL DEFAULT '',
			UNIQUE (company_name, ingredient)
		);
		CREATE TABLE IF NOT EXISTS ingredient_mention (
			id SERIAL PRIMARY KEY,
			title TEXT NOT NULL,
			url TEXT NOT NULL,
			source TEXT NOT NULL,
			ingredient TEXT NOT NULL,
			sentiment TEXT NOT NULL,
			sentiment_score DOUBLE PRECISION NOT NULL,
			mention_date TEXT NOT NULL,
			snippet TEXT NOT NULL,
			category TEXT NOT NULL
		);
		CREATE TABLE IF NOT EXISTS market_record (
			id SERIAL PRIMARY KEY,
			ingredient TEXT NOT NULL UNIQUE,
			market_share_percent DOUBLE PRECISION NOT NULL,
			growth_rate_percent DOUBLE PRECISION NOT NULL,
			key_applications TEXT NOT NULL,
			total_market_size_usd BIGINT NOT NULL,
			last_updated TIMESTAMPTZ NOT NULL
		);
	`)
	return err
}

// ReplaceUsage swaps the usage table contents for the given rows in one
// transaction.
func (r *UsageRepository) ReplaceUsage(records []model.UsageRecord) error {
	tx, err := r.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM usage_record`); err != nil {
		return err
	}

	for _, rec := range records {
		_, err := tx.Exec(`
			INSERT INTO usage_record(company_name, website, ingredient, product_count, market_region, usage_type, annual_volume_kg, sentiment_score, last_updated, data_source)
			VALUES($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		`, rec.CompanyName, rec.Website, rec.Ingredient, rec.ProductCount, rec.MarketRegion, rec.UsageType, rec.AnnualVolumeKg, rec.SentimentScore, rec.LastUpdated, rec.DataSource)
		if err != nil {
			return err
		}
	}

	return tx.Commit()
}

func (r *UsageRepository) ReplaceMentions(mentions []model.Mention) error {
	tx, err := r.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM ingredient_mention`); err != nil {
		return err
	}

	for _, m := range mentions {
		_, err := tx.Exec(`
			INSERT INTO ingredient_mention(title, url, source, ingredient, sentiment, sentiment_score, mention_date, snippet, category)
			VALUES($1, $2, $3, $4, $5, $6, $7, $8, $9)
		`, m.Title, m.URL, m.Source, m.Ingredient, m.Sentiment, m.SentimentScore, m.Date, m.Snippet, m.Category)
		if err != nil {
			return err
		}
	}

	return tx.Commit()
}

func (r *UsageRepository) ReplaceMarket(records []model.MarketRecord) error {
	tx, err := r.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM market_record`); err != nil {
		return err
	}

	for _, rec := range records {
		_, err := tx.Exec(`
			INSERT INTO market_record(ingredient, market_share_percent, growth_rate_percent, key_applications, total_market_size_usd, last_updated)
			VALUES($1, $2, $3, $4, $5, $6)
		`, rec.Ingredient, rec.MarketSharePercent, rec.GrowthRatePercent, rec.KeyApplications, rec.TotalMarketSizeUSD, rec.LastUpdated)
		if err != nil {
			return err
		}
	}

	return tx.Commit()
}

func (r *UsageRepository) GetUsage() ([]model.UsageRecord, error) {
	rows, err := r.db.Query(`
		SELECT id, company_name, website, ingredient, product_count, market_region, usage_type, annual_volume_kg, sentiment_score, last_updated, data_source
		FROM usage_record
		ORDER BY company_name, ingredient
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []model.UsageRecord
	for rows.Next() {
		var rec model.UsageRecord
		err := rows.Scan(&rec.ID, &rec.CompanyName, &rec.Website, &rec.Ingredient, &rec.ProductCount, &rec.MarketRegion, &rec.UsageType, &rec.AnnualVolumeKg, &rec.SentimentScore, &rec.LastUpdated, &rec.DataSource)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return records, nil
}

func (r *UsageRepository) GetMentions() ([]model.Mention, error) {
	rows, err := r.db.Query(`
		SELECT title, url, source, ingredient, sentiment, sentiment_score, mention_date, snippet, category
		FROM ingredient_mention
		ORDER BY id
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var mentions []model.Mention
	for rows.Next() {
		var m model.Mention
		err := rows.Scan(&m.Title, &m.URL, &m.Source, &m.Ingredient, &m.Sentiment, &m.SentimentScore, &m.Date, &m.Snippet, &m.Category)
		if err != nil {
			return nil, err
		}
		mentions = append(mentions, m)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return mentions, nil
}

func (r *UsageRepository) GetMarket() ([]model.MarketRecord, error) {
	rows, err := r.db.Query(`
		SELECT ingredient, market_share_percent, growth_rate_percent, key_applications, total_market_size_usd, last_updated
		FROM market_record
		ORDER BY ingredient
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []model.MarketRecord
	for rows.Next() {
		var rec model.MarketRecord
		err := rows.Scan(&rec.Ingredient, &rec.MarketSharePercent, &rec.GrowthRatePercent, &rec.KeyApplications, &rec.TotalMarketSizeUSD, &rec.LastUpdated)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return records, nil
}

func (r *UsageRepository) CountUsage() (int, error) {
	var total int
	err := r.db.QueryRow(`
		SELECT COUNT(*) FROM usage_record
	`).Scan(&total)
	return total, err
}
