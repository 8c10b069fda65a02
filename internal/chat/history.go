package chat

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
)

const (
	historyKeyPrefix = "chat-history::"
	// DefaultHistoryTTL is how long a client's conversation survives
	// without new messages.
	DefaultHistoryTTL = time.Hour
	// maxStoredExchanges caps the conversation length sent back to the
	// model, oldest exchanges fall off first.
	maxStoredExchanges = 10
)

// Exchange is one user message and the assistant reply to it.
type Exchange struct {
	UserMessage string    `json:"userMessage"`
	Reply       string    `json:"reply"`
	CreatedAt   time.Time `json:"createdAt"`
}

// HistoryStore keeps per client conversation history in redis, so the
// assistant can follow up on previous questions. History is keyed by
// client IP and expires on its own.
type HistoryStore struct {
	redisClient *redis.Client
	ttl         time.Duration
}

func NewHistoryStore(redisClient *redis.Client, ttl time.Duration) *HistoryStore {
	if ttl <= 0 {
		ttl = DefaultHistoryTTL
	}
	return &HistoryStore{
		redisClient: redisClient,
		ttl:         ttl,
	}
}

// Exchanges returns the stored conversation for the client, oldest
// first. A client without history gets an empty conversation, not an
// error.
func (hs *HistoryStore) Exchanges(ctx context.Context, clientIP string) ([]Exchange, error) {
	cmd := hs.redisClient.Get(ctx, historyKeyPrefix+clientIP)
	if err := cmd.Err(); err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, err
	}

	var exchanges []Exchange
	if err := json.Unmarshal([]byte(cmd.Val()), &exchanges); err != nil {
		return nil, fmt.Errorf("unmarshal chat history: %w", err)
	}

	return exchanges, nil
}

// Append adds an exchange to the client's conversation and refreshes
// its TTL.
func (hs *HistoryStore) Append(ctx context.Context, clientIP string, exchange Exchange) error {
	exchanges, err := hs.Exchanges(ctx, clientIP)
	if err != nil {
		return err
	}

	exchanges = append(exchanges, exchange)
	if len(exchanges) > maxStoredExchanges {
		exchanges = exchanges[len(exchanges)-maxStoredExchanges:]
	}

	historyBytes, err := json.Marshal(exchanges)
	if err != nil {
		return fmt.Errorf("marshal chat history: %w", err)
	}

	cmdSet := hs.redisClient.Set(ctx, historyKeyPrefix+clientIP, historyBytes, hs.ttl)
	if err := cmdSet.Err(); err != nil {
		return err
	}

	return nil
}

// Clear drops the client's conversation.
func (hs *HistoryStore) Clear(ctx context.Context, clientIP string) error {
	cmd := hs.redisClient.Del(ctx, historyKeyPrefix+clientIP)
	return cmd.Err()
}
