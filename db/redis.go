package db

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/redis/go-redis/v9"
)

var Redis *redis.Client
var Ctx = context.Background()

const (
	AnswerCachePrefix = "nutraintel:cache:answer:"
	SessionPrefix     = "nutraintel:session:"

	AnswerCacheTTL = 1 * time.Hour
	SessionTTL     = 24 * time.Hour
)

func ConnectRedis() error {
	redisURL := os.Getenv("REDIS_URL")
	if redisURL == "" {
		fmt.Println("REDIS_URL environment variable is not set")
	}

	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		opt = &redis.Options{Addr: redisURL}
	}

	Redis = redis.NewClient(opt)

	_, err = Redis.Ping(Ctx).Result()
	return err
}

func CloseRedis() {
	if Redis != nil {
		Redis.Close()
	}
}

// Cache adapts the package-level helpers to the chat handler's interface.
type Cache struct{}

func (Cache) CachedAnswer(key string) (string, error) { return CachedAnswer(key) }
func (Cache) CacheAnswer(key, answer string) error    { return CacheAnswer(key, answer) }
func (Cache) RememberExchange(sessionID, question, answer string) error {
	return RememberExchange(sessionID, question, answer)
}

func (Cache) LastExchange(sessionID string) (string, string, error) {
	return LastExchange(sessionID)
}

// CacheAnswer stores an answer keyed by the normalized question so repeated
// questions skip the provider call.
func CacheAnswer(key string, answer string) error {
	return Redis.Set(Ctx, AnswerCachePrefix+key, answer, AnswerCacheTTL).Err()
}

// CachedAnswer returns the cached answer or "" when the key is absent.
func CachedAnswer(key string) (string, error) {
	answer, err := Redis.Get(Ctx, AnswerCachePrefix+key).Result()
	if err == redis.Nil {
		return "", nil
	}
	return answer, err
}

// RememberExchange keeps the last question and answer for a session.
func RememberExchange(sessionID, question, answer string) error {
	key := SessionPrefix + sessionID
	if err := Redis.HSet(Ctx, key, "question", question, "answer", answer).Err(); err != nil {
		return err
	}
	return Redis.Expire(Ctx, key, SessionTTL).Err()
}

// LastExchange returns the stored question and answer for a session, or empty
// strings when the session has no history.
func LastExchange(sessionID string) (string, string, error) {
	vals, err := Redis.HGetAll(Ctx, SessionPrefix+sessionID).Result()
	if err != nil {
		return "", "", err
	}
	return vals["question"], vals["answer"], nil
}
