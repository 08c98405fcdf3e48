package handler

import (
	"log/slog"
	"net/http"
	"strings"

	"nutraintel/internal/chat"
	"nutraintel/pkg/llm"

	"github.com/gin-gonic/gin"
)

// ChatCache stores answers keyed by normalized question plus per-session
// history. Nil disables caching entirely.
type ChatCache interface {
	CachedAnswer(key string) (string, error)
	CacheAnswer(key, answer string) error
	RememberExchange(sessionID, question, answer string) error
	LastExchange(sessionID string) (string, string, error)
}

type ChatHandler struct {
	store  DataStore
	client llm.Client
	cache  ChatCache
	log    *chat.QueryLog
}

func NewChatHandler(store DataStore, client llm.Client, cache ChatCache, log *chat.QueryLog) *ChatHandler {
	return &ChatHandler{store: store, client: client, cache: cache, log: log}
}

func (h *ChatHandler) PostChat(c *gin.Context) {
	var req ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	question := strings.TrimSpace(req.Question)
	if question == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Question is required"})
		return
	}

	if h.client == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "No AI provider configured"})
		return
	}

	cacheKey := strings.ToLower(question)
	if h.cache != nil {
		answer, err := h.cache.CachedAnswer(cacheKey)
		if err != nil {
			slog.Warn("answer cache lookup failed", "error", err)
		} else if answer != "" {
			c.JSON(http.StatusOK, ChatResponse{Answer: answer, Model: h.client.Model(), Cached: true, PromptVersion: llm.PromptVersion})
			return
		}
	}

	usage, err := h.store.Usage()
	if err != nil {
		slog.Error("error fetching usage table", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Store error"})
		return
	}

	suppliers, err := h.store.Suppliers()
	if err != nil {
		slog.Error("error fetching suppliers", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Store error"})
		return
	}

	contextBlock := chat.BuildContext(question, usage, suppliers)

	answer, err := h.client.Answer(question, contextBlock)
	if err != nil {
		category := llm.Classify(err)
		slog.Error("provider call failed", "model", h.client.Model(), "category", category, "error", err)
		c.JSON(http.StatusBadGateway, ChatErrorResponse{
			Error:    llm.UserMessage(category),
			Category: category,
		})
		return
	}

	if h.cache != nil {
		if err := h.cache.CacheAnswer(cacheKey, answer); err != nil {
			slog.Warn("answer cache store failed", "error", err)
		}
		if req.SessionID != "" {
			if err := h.cache.RememberExchange(req.SessionID, question, answer); err != nil {
				slog.Warn("session store failed", "session_id", req.SessionID, "error", err)
			}
		}
	}

	if err := h.log.Append(question, answer); err != nil {
		slog.Warn("query log append failed", "error", err)
	}

	c.JSON(http.StatusOK, ChatResponse{Answer: answer, Model: h.client.Model(), PromptVersion: llm.PromptVersion})
}

// GetSession returns the last question and answer stored for a session.
func (h *ChatHandler) GetSession(c *gin.Context) {
	if h.cache == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Session storage not configured"})
		return
	}

	sessionID := c.Param("id")
	question, answer, err := h.cache.LastExchange(sessionID)
	if err != nil {
		slog.Error("session lookup failed", "session_id", sessionID, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Store error"})
		return
	}
	if question == "" && answer == "" {
		c.JSON(http.StatusNotFound, gin.H{"error": "No history for session"})
		return
	}

	c.JSON(http.StatusOK, SessionResponse{Question: question, Answer: answer})
}
