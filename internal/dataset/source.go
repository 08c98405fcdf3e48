package dataset

import "nutraintel/internal/model"

// Source provides the three usage-intelligence tables. The collector picks a
// concrete provider; tests substitute deterministic fixtures instead of relying
// on a shared random seed.
type Source interface {
	Name() string
	Usage() []model.UsageRecord
	Mentions() []model.Mention
	Market() []model.MarketRecord
}

// TrackedIngredients is the branded ingredient portfolio every provider covers.
var TrackedIngredients = []string{
	"Lutemax 2020",
	"CurcuWIN",
	"Capsimax",
	"Oligopin",
	"BioPerine",
	"Sabeet",
	"ForsLean",
}
