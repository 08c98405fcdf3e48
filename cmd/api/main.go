package main

import (
	"errors"
	"log"
	"log/slog"
	"os"

	"nutraintel/db"
	"nutraintel/internal/chat"
	"nutraintel/internal/dataset"
	"nutraintel/internal/handler"
	"nutraintel/internal/repository"
	"nutraintel/pkg/llm"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {

	godotenv.Load()

	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	dataDir := os.Getenv("DATA_DIR")
	if dataDir == "" {
		dataDir = "data"
	}

	tables, err := dataset.Load(dataDir)
	if err != nil {
		if errors.Is(err, dataset.ErrPrimaryMissing) {
			log.Fatalf("usage table not found, run the collector first: %v", err)
		}
		log.Fatalf("error loading data from %s: %v", dataDir, err)
	}

	var store handler.DataStore = tables
	if os.Getenv("DATABASE_URL") != "" {
		if err := db.Connect(); err != nil {
			log.Fatalf("error connecting to DB: %v", err)
		}
		defer db.Close()
		store = repository.NewStore(repository.NewUsageRepository(db.DB), tables)
		slog.Info("serving usage tables from Postgres")
	}

	var cache handler.ChatCache
	if os.Getenv("REDIS_URL") != "" {
		if err := db.ConnectRedis(); err != nil {
			slog.Warn("redis unavailable, answer caching disabled", "error", err)
		} else {
			defer db.CloseRedis()
			cache = db.Cache{}
		}
	}

	client := pickProvider()
	if client == nil {
		slog.Warn("no AI provider configured, chat answers disabled")
	} else {
		slog.Info("AI provider configured", "model", client.Model())
	}

	queryLog := chat.NewQueryLog(os.Getenv("CHAT_LOG_PATH"))

	dashboardHandler := handler.NewDashboardHandler(store)
	chatHandler := handler.NewChatHandler(store, client, cache, queryLog)

	r := gin.Default()

	allowedOrigins := []string{"http://localhost:3000"}

	if frontendURL := os.Getenv("FRONTEND_URL"); frontendURL != "" {
		allowedOrigins = append(allowedOrigins, frontendURL)
	}

	slog.Info("AllowOrigins URL:", "urls", allowedOrigins)

	r.Use(cors.New(cors.Config{
		AllowOrigins: allowedOrigins,
		AllowMethods: []string{"GET", "POST", "OPTIONS"},
		AllowHeaders: []string{"Origin", "Content-Type"},
	}))

	r.GET("/health", dashboardHandler.GetHealth)
	r.GET("/filters", dashboardHandler.GetFilters)
	r.GET("/summary", dashboardHandler.GetSummary)
	r.GET("/companies", dashboardHandler.GetCompanies)
	r.GET("/regions", dashboardHandler.GetRegions)
	r.GET("/usage-types", dashboardHandler.GetUsageTypes)
	r.GET("/market", dashboardHandler.GetMarket)
	r.GET("/mentions", dashboardHandler.GetMentions)
	r.GET("/suppliers", dashboardHandler.GetSuppliers)
	r.GET("/export/usage.csv", dashboardHandler.ExportUsage)
	r.POST("/chat", chatHandler.PostChat)
	r.GET("/chat/session/:id", chatHandler.GetSession)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	err = r.Run(":" + port)
	if err != nil {
		log.Fatalf("error starting server: %v", err)
	}
}

// pickProvider returns the first configured provider, checked in a fixed
// order so deployments with several keys behave predictably.
func pickProvider() llm.Client {
	if key := os.Getenv("GEMINI_API_KEY"); key != "" {
		return llm.NewGeminiClient(key)
	}
	if key := os.Getenv("OPENAI_API_KEY"); key != "" {
		return llm.NewOpenAIClient(key)
	}
	if key := os.Getenv("ANTHROPIC_API_KEY"); key != "" {
		return llm.NewAnthropicClient(key)
	}
	return nil
}
