package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	apperrors "quiz-platform-backend/internal/errors"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

//go:generate mockgen -source=result_cache.go -destination=../mocks/cache_mocks.go -package=mocks

// resultTTL is how long denormalized submission details stay available for
// export. Losing an entry never invalidates the authoritative result row.
const resultTTL = 48 * time.Hour

// AnswerDetail is one graded question of a submission
type AnswerDetail struct {
	Question  string   `json:"question"`
	Answers   []string `json:"answers"`
	IsCorrect bool     `json:"is_correct"`
}

// ResultDetail is the denormalized submission blob kept for export
type ResultDetail struct {
	UserID      string         `json:"user_id"`
	QuizName    string         `json:"quiz_name"`
	CompanyName string         `json:"company_name"`
	Answers     []AnswerDetail `json:"answers"`
}

// ResultCacheInterface defines the cache operations used by the scoring
// pipeline (write) and the export service (pattern-scan read)
type ResultCacheInterface interface {
	SaveResultDetail(ctx context.Context, userID, quizID, companyID uuid.UUID, detail *ResultDetail) error
	GetResultDetail(ctx context.Context, key string) (*ResultDetail, error)
	ScanKeys(ctx context.Context, pattern string) ([]string, error)
}

// ResultCache stores submission details in Redis
type ResultCache struct {
	client *redis.Client
}

// NewResultCache creates a new result cache
func NewResultCache(client *redis.Client) *ResultCache {
	return &ResultCache{client: client}
}

// ResultKey builds the cache key for one user's submission on one quiz
func ResultKey(userID, quizID, companyID uuid.UUID) string {
	return fmt.Sprintf("%s:%s:%s", userID, quizID, companyID)
}

// SaveResultDetail writes the submission blob with the export TTL. Failures
// are wrapped as CacheWriteError; the caller has already committed the
// result row and must not roll it back.
func (c *ResultCache) SaveResultDetail(ctx context.Context, userID, quizID, companyID uuid.UUID, detail *ResultDetail) error {
	key := ResultKey(userID, quizID, companyID)

	payload, err := json.Marshal(detail)
	if err != nil {
		return apperrors.NewCacheWriteError(key, err)
	}

	if err := c.client.Set(ctx, key, payload, resultTTL).Err(); err != nil {
		return apperrors.NewCacheWriteError(key, err)
	}

	return nil
}

// GetResultDetail reads one submission blob; a missing key returns nil
func (c *ResultCache) GetResultDetail(ctx context.Context, key string) (*ResultDetail, error) {
	payload, err := c.client.Get(ctx, key).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var detail ResultDetail
	if err := json.Unmarshal(payload, &detail); err != nil {
		return nil, err
	}
	return &detail, nil
}

// ScanKeys lists the cache keys matching a pattern, e.g. "<user_id>:*" for
// one user's exportable submissions
func (c *ResultCache) ScanKeys(ctx context.Context, pattern string) ([]string, error) {
	var keys []string
	iter := c.client.Scan(ctx, 0, pattern, 0).Iterator()
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return nil, err
	}
	return keys, nil
}
