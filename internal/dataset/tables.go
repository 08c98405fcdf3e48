package dataset

import "nutraintel/internal/model"

// Tables is the in-memory store backing the API when no database is
// configured. All accessors return the loaded slices; errors exist to satisfy
// store interfaces shared with the Postgres implementation.
type Tables struct {
	usage              []model.UsageRecord
	mentions           []model.Mention
	market             []model.MarketRecord
	suppliers          []model.Supplier
	suppliersAvailable bool
	meta               model.Metadata
}

// NewTables builds a store directly from slices, used by tests and by the
// Postgres store for its CSV-backed reference tables.
func NewTables(usage []model.UsageRecord, mentions []model.Mention, market []model.MarketRecord, suppliers []model.Supplier, meta model.Metadata) *Tables {
	return &Tables{
		usage:              usage,
		mentions:           mentions,
		market:             market,
		suppliers:          suppliers,
		suppliersAvailable: suppliers != nil,
		meta:               meta,
	}
}

func (t *Tables) Usage() ([]model.UsageRecord, error) {
	return t.usage, nil
}

func (t *Tables) Mentions() ([]model.Mention, error) {
	return t.mentions, nil
}

func (t *Tables) Market() ([]model.MarketRecord, error) {
	return t.market, nil
}

func (t *Tables) Suppliers() ([]model.Supplier, error) {
	return t.suppliers, nil
}

func (t *Tables) SuppliersAvailable() bool {
	return t.suppliersAvailable
}

func (t *Tables) Metadata() (model.Metadata, error) {
	return t.meta, nil
}
