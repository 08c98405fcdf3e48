package analytics

import (
	"nutraintel/internal/model"
	"nutraintel/pkg/parse"
)

// SupplierMetrics is a peer-supplier row with its free-text cells resolved to
// comparable numbers.
type SupplierMetrics struct {
	Supplier      model.Supplier `json:"supplier"`
	RevenueCr     float64        `json:"revenue_cr"`
	Products      int            `json:"products"`
	GrowthPercent float64        `json:"growth_percent"`
	Patents       int            `json:"patents"`
	Approvals     int            `json:"approvals"`
	IsReference   bool           `json:"is_reference"`
}

// SupplierComparison parses the peer rows and appends the fixed reference row
// so every comparison includes the ingredient house itself.
func SupplierComparison(suppliers []model.Supplier) []SupplierMetrics {
	rows := make([]SupplierMetrics, 0, len(suppliers)+1)
	for _, s := range suppliers {
		rows = append(rows, parseSupplier(s, false))
	}
	rows = append(rows, parseSupplier(model.ReferenceSupplier(), true))
	return rows
}

func parseSupplier(s model.Supplier, reference bool) SupplierMetrics {
	return SupplierMetrics{
		Supplier:      s,
		RevenueCr:     parse.Revenue(s.AnnualRevenue),
		Products:      parse.Count(s.ProductCountText),
		GrowthPercent: parse.Growth(s.GrowthTrend),
		Patents:       parse.Patents(s.Patents),
		Approvals:     parse.ApprovalCount(s.RegulatoryApprovals),
		IsReference:   reference,
	}
}

// RadarRow holds one supplier's metrics normalized to 0..1 for radar display.
// Revenue, products, patents and approvals divide by the column maximum;
// growth is min-max scaled since it can be negative.
type RadarRow struct {
	Company   string  `json:"company"`
	Revenue   float64 `json:"revenue"`
	Products  float64 `json:"products"`
	Growth    float64 `json:"growth"`
	Patents   float64 `json:"patents"`
	Approvals float64 `json:"approvals"`
}

func RadarData(rows []SupplierMetrics) []RadarRow {
	if len(rows) == 0 {
		return nil
	}

	var maxRevenue, maxGrowth, minGrowth float64
	var maxProducts, maxPatents, maxApprovals int
	minGrowth = rows[0].GrowthPercent
	maxGrowth = rows[0].GrowthPercent

	for _, r := range rows {
		if r.RevenueCr > maxRevenue {
			maxRevenue = r.RevenueCr
		}
		if r.Products > maxProducts {
			maxProducts = r.Products
		}
		if r.Patents > maxPatents {
			maxPatents = r.Patents
		}
		if r.Approvals > maxApprovals {
			maxApprovals = r.Approvals
		}
		if r.GrowthPercent > maxGrowth {
			maxGrowth = r.GrowthPercent
		}
		if r.GrowthPercent < minGrowth {
			minGrowth = r.GrowthPercent
		}
	}

	growthRange := maxGrowth - minGrowth

	out := make([]RadarRow, 0, len(rows))
	for _, r := range rows {
		row := RadarRow{Company: r.Supplier.CompanyName}
		if maxRevenue > 0 {
			row.Revenue = round2(r.RevenueCr / maxRevenue)
		}
		if maxProducts > 0 {
			row.Products = round2(float64(r.Products) / float64(maxProducts))
		}
		if growthRange > 0 {
			row.Growth = round2((r.GrowthPercent - minGrowth) / growthRange)
		}
		if maxPatents > 0 {
			row.Patents = round2(float64(r.Patents) / float64(maxPatents))
		}
		if maxApprovals > 0 {
			row.Approvals = round2(float64(r.Approvals) / float64(maxApprovals))
		}
		out = append(out, row)
	}
	return out
}
