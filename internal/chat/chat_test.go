package chat

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"nutraintel/internal/model"
)

func TestRatio(t *testing.T) {
	tests := []struct {
		a, b string
		min  float64
		max  float64
	}{
		{"himalaya", "himalaya", 1, 1},
		{"Himalaya", "himalaya", 1, 1},
		{"himalaya", "himalya", 0.7, 1},
		// Accented names must be scored on rune counts, not byte lengths:
		// 5 of 7 bigrams shared on each side gives 10/14.
		{"himálaya", "himalaya", 0.7, 0.72},
		{"dabur", "solgar", 0, 0.3},
		{"", "", 0, 0},
		{"a", "ab", 0, 0},
	}

	for _, tt := range tests {
		got := Ratio(tt.a, tt.b)
		if got < tt.min || got > tt.max {
			t.Errorf("Ratio(%q, %q) = %v, want in [%v, %v]", tt.a, tt.b, got, tt.min, tt.max)
		}
	}
}

func TestBestWindowRatio(t *testing.T) {
	q := "What is the market share of Himalaya in supplements?"

	if got := BestWindowRatio(q, "Himalaya"); got != 1 {
		t.Errorf("substring hit = %v, want 1", got)
	}
	if got := BestWindowRatio("Tell me about Himalya Wellness", "Himalaya Wellness"); got < 0.6 {
		t.Errorf("misspelled match = %v, want >= 0.6", got)
	}
	if got := BestWindowRatio(q, "Zandu"); got >= 0.6 {
		t.Errorf("unrelated candidate = %v, want < 0.6", got)
	}
	if got := BestWindowRatio(q, ""); got != 0 {
		t.Errorf("empty candidate = %v, want 0", got)
	}
}

func usageFixture() []model.UsageRecord {
	return []model.UsageRecord{
		{CompanyName: "NOW Foods", Ingredient: "Lutemax 2020", ProductCount: 5, MarketRegion: "Global", UsageType: "Primary Active", AnnualVolumeKg: 750, SentimentScore: 4.4},
		{CompanyName: "Solgar", Ingredient: "CurcuWIN", ProductCount: 2, MarketRegion: "Europe", UsageType: "Primary Active", AnnualVolumeKg: 300, SentimentScore: 3.8},
	}
}

func supplierFixture() []model.Supplier {
	return []model.Supplier{
		{CompanyName: "Himalaya Wellness Company", Type: "B2C", AnnualRevenue: "₹3,760 Cr", GrowthTrend: "+5.5% YoY", ProductCountText: "500+ products", AvgOnlineRating: "4.3/5", Patents: "15+ patents"},
		{CompanyName: "Dabur India Ltd.", Type: "B2C", AnnualRevenue: "₹12,563 Cr", GrowthTrend: "+3.6% YoY", ProductCountText: "400+ products", AvgOnlineRating: "4.2/5", Patents: "20+ patents"},
	}
}

func TestBuildContextMatchesBothTables(t *testing.T) {
	ctx := BuildContext("Compare NOW Foods with Himalaya", usageFixture(), supplierFixture())

	if !strings.Contains(ctx, "NOW Foods uses Lutemax 2020") {
		t.Error("context missing matched usage row")
	}
	if !strings.Contains(ctx, "Himalaya Wellness Company") {
		t.Error("context missing matched supplier row")
	}
	if strings.Contains(ctx, "Dabur India Ltd.") {
		t.Error("context contains unmatched supplier row")
	}
	if !strings.Contains(ctx, "Market summary:") {
		t.Error("context missing aggregate summary block")
	}
}

func TestBuildContextMatchesIngredient(t *testing.T) {
	ctx := BuildContext("Which companies use CurcuWIN?", usageFixture(), nil)
	if !strings.Contains(ctx, "Solgar uses CurcuWIN") {
		t.Error("context missing ingredient-matched row")
	}
}

func TestBuildContextFallback(t *testing.T) {
	ctx := BuildContext("What is the weather today?", usageFixture(), supplierFixture())
	if !strings.Contains(ctx, noMatchSentence) {
		t.Error("context missing fallback sentence")
	}
	// Summary block still present so the model has something to work with.
	if !strings.Contains(ctx, "Market summary:") {
		t.Error("fallback context missing summary block")
	}
}

func TestBuildContextNeverEmpty(t *testing.T) {
	if ctx := BuildContext("", nil, nil); ctx == "" {
		t.Error("context should never be empty")
	}
}

func TestQueryLogAppend(t *testing.T) {
	path := filepath.Join(t.TempDir(), "queries.log")
	log := NewQueryLog(path)

	if err := log.Append("who uses lutein?", "NOW Foods\nand others\t(see data)"); err != nil {
		t.Fatalf("Append: %v", err)
	}
	if err := log.Append("second question", strings.Repeat("x", 500)); err != nil {
		t.Fatalf("Append: %v", err)
	}

	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimRight(string(b), "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d lines, want 2", len(lines))
	}

	fields := strings.Split(lines[0], "\t")
	if len(fields) != 3 {
		t.Fatalf("got %d fields, want timestamp, question, answer", len(fields))
	}
	if fields[1] != "who uses lutein?" {
		t.Errorf("question field = %q", fields[1])
	}
	if strings.Contains(fields[2], "\n") {
		t.Error("answer field contains a newline")
	}

	// Long answers are truncated for the log.
	secondAnswer := strings.Split(lines[1], "\t")[2]
	if len(secondAnswer) > 210 {
		t.Errorf("answer not truncated: %d chars", len(secondAnswer))
	}
}

func TestNilQueryLogIsNoop(t *testing.T) {
	var log *QueryLog
	if err := log.Append("q", "a"); err != nil {
		t.Errorf("nil log Append returned %v", err)
	}
	if NewQueryLog("") != nil {
		t.Error("empty path should produce nil log")
	}
}
