package cache

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

// 业务类型
const (
	BusinessVideo   = "video"
	BusinessComment = "comment"
	BusinessChannel = "channel"
)

// 计数字段
const (
	FieldLikeCount       = "like_count"
	FieldDislikeCount    = "dislike_count"
	FieldSubscriberCount = "subscriber_count"
)

// 计数缓存 Key：count:{business}:{id}，Hash 结构，字段见上
const CountCacheKeyTemplate = "count:%s:%s"

// CountCacheManager 互动计数缓存。数据库是权威来源：写操作提交后删除 key，读未命中时回填
type CountCacheManager struct {
	client redis.Cmdable
	ttl    time.Duration
}

func NewCountCacheManager(client redis.Cmdable) *CountCacheManager {
	return &CountCacheManager{
		client: client,
		ttl:    24 * time.Hour,
	}
}

func CountKey(business, id string) string {
	return fmt.Sprintf(CountCacheKeyTemplate, business, id)
}

// SetCounts 覆盖写入若干计数字段并刷新过期时间，只用于读未命中的回填
func (m *CountCacheManager) SetCounts(ctx context.Context, business, id string, counts map[string]int64) error {
	if len(counts) == 0 {
		return nil
	}
	key := CountKey(business, id)
	values := make(map[string]interface{}, len(counts))
	for field, v := range counts {
		values[field] = v
	}
	pipe := m.client.TxPipeline()
	pipe.HSet(ctx, key, values)
	pipe.Expire(ctx, key, m.ttl)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to set counts for %s: %w", key, err)
	}
	return nil
}

// GetCounts 返回缓存中的计数，未命中时 ok 为 false
func (m *CountCacheManager) GetCounts(ctx context.Context, business, id string) (counts map[string]int64, ok bool, err error) {
	key := CountKey(business, id)
	raw, err := m.client.HGetAll(ctx, key).Result()
	if err != nil {
		return nil, false, fmt.Errorf("failed to get counts for %s: %w", key, err)
	}
	if len(raw) == 0 {
		return nil, false, nil
	}
	counts, err = parseCounts(raw)
	if err != nil {
		return nil, false, fmt.Errorf("bad counts in %s: %w", key, err)
	}
	return counts, true, nil
}

func (m *CountCacheManager) Invalidate(ctx context.Context, business, id string) error {
	return m.client.Del(ctx, CountKey(business, id)).Err()
}

func parseCounts(raw map[string]string) (map[string]int64, error) {
	counts := make(map[string]int64, len(raw))
	for field, v := range raw {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("field %s: %w", field, err)
		}
		counts[field] = n
	}
	return counts, nil
}
