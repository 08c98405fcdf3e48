package dataset

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"
	"time"
)

var testNow = time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

func TestWriteLoadRoundTrip(t *testing.T) {
	dir := t.TempDir()
	src := NewCurated(testNow)

	meta, err := Write(dir, src, CuratedSuppliers(), testNow)
	if err != nil {
		t.Fatalf("Write: %v", err)
	}

	if meta.TotalCompanies != 8 {
		t.Errorf("TotalCompanies = %d, want 8", meta.TotalCompanies)
	}
	if meta.TotalMentions != 8 {
		t.Errorf("TotalMentions = %d, want 8", meta.TotalMentions)
	}
	if meta.IngredientsTracked != len(TrackedIngredients) {
		t.Errorf("IngredientsTracked = %d, want %d", meta.IngredientsTracked, len(TrackedIngredients))
	}

	tables, err := Load(dir)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	usage, _ := tables.Usage()
	if len(usage) != len(src.Usage()) {
		t.Errorf("got %d usage rows, want %d", len(usage), len(src.Usage()))
	}
	for _, u := range usage {
		if u.Ingredient == "" || u.CompanyName == "" {
			t.Errorf("row with empty key fields: %+v", u)
		}
	}

	mentions, _ := tables.Mentions()
	if len(mentions) != 8 {
		t.Errorf("got %d mentions, want 8", len(mentions))
	}

	suppliers, _ := tables.Suppliers()
	if len(suppliers) != 6 {
		t.Errorf("got %d suppliers, want 6", len(suppliers))
	}
	if !tables.SuppliersAvailable() {
		t.Error("SuppliersAvailable = false after writing supplier table")
	}

	gotMeta, _ := tables.Metadata()
	if gotMeta.TotalCompanies != meta.TotalCompanies {
		t.Errorf("metadata round trip: got %+v, want %+v", gotMeta, meta)
	}
}

func TestLoadMissingPrimaryIsFatal(t *testing.T) {
	_, err := Load(t.TempDir())
	if !errors.Is(err, ErrPrimaryMissing) {
		t.Fatalf("err = %v, want ErrPrimaryMissing", err)
	}
}

func TestLoadMissingSupplierTableIsOptional(t *testing.T) {
	dir := t.TempDir()
	if _, err := Write(dir, NewCurated(testNow), CuratedSuppliers(), testNow); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if err := os.Remove(filepath.Join(dir, SupplierFile)); err != nil {
		t.Fatal(err)
	}

	tables, err := Load(dir)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if tables.SuppliersAvailable() {
		t.Error("SuppliersAvailable = true with supplier table removed")
	}
	suppliers, _ := tables.Suppliers()
	if len(suppliers) != 0 {
		t.Errorf("got %d suppliers, want 0", len(suppliers))
	}
}

func TestLoadRejectsWrongHeader(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, UsageFile)
	if err := os.WriteFile(path, []byte("company,ingredient\nacme,lutein\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := LoadUsage(path); err == nil {
		t.Fatal("expected header contract violation, got nil")
	}
}

func TestSimulatedIsDeterministic(t *testing.T) {
	a := NewSimulated(42, testNow).Usage()
	b := NewSimulated(42, testNow).Usage()
	if !reflect.DeepEqual(a, b) {
		t.Error("same seed produced different tables")
	}
	if len(a) == 0 {
		t.Fatal("simulated provider produced no rows")
	}

	c := NewSimulated(7, testNow).Usage()
	if reflect.DeepEqual(a, c) {
		t.Error("different seeds produced identical tables")
	}

	for _, r := range a {
		if r.ProductCount < 1 || r.ProductCount > 7 {
			t.Errorf("ProductCount %d outside 1..7", r.ProductCount)
		}
		if r.AnnualVolumeKg < 50 || r.AnnualVolumeKg >= 2000 {
			t.Errorf("AnnualVolumeKg %d outside 50..1999", r.AnnualVolumeKg)
		}
		if r.SentimentScore < 3.2 || r.SentimentScore > 4.8 {
			t.Errorf("SentimentScore %v outside 3.2..4.8", r.SentimentScore)
		}
	}
}

func TestCuratedDerivations(t *testing.T) {
	usage := NewCurated(testNow).Usage()

	for _, u := range usage {
		switch u.CompanyName {
		case "Nature's Bounty", "NOW Foods", "Jarrow Formulas", "Life Extension", "Swanson Health":
			if u.MarketRegion != "North America" {
				t.Errorf("%s region = %q, want North America", u.CompanyName, u.MarketRegion)
			}
		default:
			if u.MarketRegion != "Global" {
				t.Errorf("%s region = %q, want Global", u.CompanyName, u.MarketRegion)
			}
		}

		if u.Ingredient == "BioPerine" && u.UsageType != "Bioenhancer" {
			t.Errorf("BioPerine usage type = %q", u.UsageType)
		}
	}
}
