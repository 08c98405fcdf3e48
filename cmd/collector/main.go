package main

import (
	"flag"
	"log"
	"log/slog"
	"os"
	"time"

	"nutraintel/db"
	"nutraintel/internal/dataset"
	"nutraintel/internal/repository"

	"github.com/joho/godotenv"
)

func main() {

	godotenv.Load()

	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	dataDir := flag.String("data-dir", defaultDataDir(), "directory to write the CSV tables into")
	simulate := flag.Bool("simulate", false, "generate a randomized table instead of the curated one")
	seed := flag.Int64("seed", 42, "random seed for -simulate")
	loadDB := flag.Bool("load-db", false, "also load the tables into Postgres")
	flag.Parse()

	now := time.Now()

	var src dataset.Source = dataset.NewCurated(now)
	if *simulate {
		src = dataset.NewSimulated(*seed, now)
	}

	meta, err := dataset.Write(*dataDir, src, dataset.CuratedSuppliers(), now)
	if err != nil {
		log.Fatalf("error writing tables: %v", err)
	}

	slog.Info("tables written",
		"dir", *dataDir,
		"source", src.Name(),
		"companies", meta.TotalCompanies,
		"mentions", meta.TotalMentions,
		"ingredients", meta.IngredientsTracked)

	if !*loadDB {
		return
	}

	err = db.Connect()
	if err != nil {
		log.Fatalf("error connecting to DB: %v", err)
	}
	defer db.Close()

	repo := repository.NewUsageRepository(db.DB)
	if err := repo.EnsureSchema(); err != nil {
		log.Fatalf("error creating schema: %v", err)
	}

	if err := repo.ReplaceUsage(src.Usage()); err != nil {
		log.Fatalf("error loading usage table: %v", err)
	}
	if err := repo.ReplaceMentions(src.Mentions()); err != nil {
		log.Fatalf("error loading mentions: %v", err)
	}
	if err := repo.ReplaceMarket(src.Market()); err != nil {
		log.Fatalf("error loading market table: %v", err)
	}

	// Read the count back so the log reflects what actually landed.
	total, err := repo.CountUsage()
	if err != nil {
		log.Fatalf("error counting usage rows: %v", err)
	}

	slog.Info("database loaded", "usage_rows", total)
}

func defaultDataDir() string {
	if dir := os.Getenv("DATA_DIR"); dir != "" {
		return dir
	}
	return "data"
}
