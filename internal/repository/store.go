package repository

import (
	"nutraintel/internal/dataset"
	"nutraintel/internal/model"
)

// Store serves dashboard reads from Postgres, falling back to the CSV-backed
// tables when a table has not been loaded into the database yet. Suppliers
// and snapshot metadata always come from the CSV side since the collector
// does not persist them.
type Store struct {
	repo   *UsageRepository
	tables *dataset.Tables
}

func NewStore(repo *UsageRepository, tables *dataset.Tables) *Store {
	return &Store{repo: repo, tables: tables}
}

func (s *Store) Usage() ([]model.UsageRecord, error) {
	records, err := s.repo.GetUsage()
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return s.tables.Usage()
	}
	return records, nil
}

func (s *Store) Mentions() ([]model.Mention, error) {
	mentions, err := s.repo.GetMentions()
	if err != nil {
		return nil, err
	}
	if len(mentions) == 0 {
		return s.tables.Mentions()
	}
	return mentions, nil
}

func (s *Store) Market() ([]model.MarketRecord, error) {
	records, err := s.repo.GetMarket()
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return s.tables.Market()
	}
	return records, nil
}

func (s *Store) Suppliers() ([]model.Supplier, error) {
	return s.tables.Suppliers()
}

func (s *Store) SuppliersAvailable() bool {
	return s.tables.SuppliersAvailable()
}

func (s *Store) Metadata() (model.Metadata, error) {
	return s.tables.Metadata()
}
