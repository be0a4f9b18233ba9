package redis

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/iho/paisa/internal/domain"
)

// TipsCache implements usecase.TipsCache using Redis keys with a TTL.
type TipsCache struct {
	client *redis.Client
	prefix string
	ttl    time.Duration
	log    zerolog.Logger
}

type tipRecord struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Content  string `json:"content"`
	Language string `json:"language"`
}

// NewTipsCache creates a new TipsCache.
func NewTipsCache(client *redis.Client, prefix string, ttl time.Duration, log zerolog.Logger) *TipsCache {
	return &TipsCache{
		client: client,
		prefix: prefix + "tips:",
		ttl:    ttl,
		log:    log,
	}
}

// Get returns the cached tips for lang. Errors count as a miss.
func (c *TipsCache) Get(ctx context.Context, lang domain.Language) ([]domain.Tip, bool) {
	data, err := c.client.Get(ctx, c.prefix+string(lang)).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			c.log.Warn().Err(err).Str("language", string(lang)).Msg("tips cache read failed")
		}
		return nil, false
	}

	var records []tipRecord
	if err := json.Unmarshal(data, &records); err != nil || len(records) == 0 {
		return nil, false
	}

	tips := make([]domain.Tip, len(records))
	for i, r := range records {
		tips[i] = domain.Tip{ID: r.ID, Title: r.Title, Content: r.Content, Language: domain.TipLanguage(r.Language)}
	}
	return tips, true
}

// Set stores tips for lang. Failures are logged.
func (c *TipsCache) Set(ctx context.Context, lang domain.Language, tips []domain.Tip) {
	if len(tips) == 0 {
		return
	}

	records := make([]tipRecord, len(tips))
	for i, t := range tips {
		records[i] = tipRecord{ID: t.ID, Title: t.Title, Content: t.Content, Language: string(t.Language)}
	}
	data, err := json.Marshal(records)
	if err != nil {
		return
	}

	if err := c.client.Set(ctx, c.prefix+string(lang), data, c.ttl).Err(); err != nil {
		c.log.Warn().Err(err).Str("language", string(lang)).Msg("tips cache write failed")
	}
}
