package cache

import (
	"context"

	"VidTube.com/config"
	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/redis/go-redis/v9"
)

var counts *CountCacheManager

// Init 未配置或连不上 redis 时缓存保持关闭
func Init() {
	c := config.ConfigInfo.Redis
	if c.Addr == "" {
		hlog.Warn("redis not configured, count cache disabled")
		return
	}
	client := redis.NewClient(&redis.Options{
		Addr:     c.Addr,
		Password: c.Password,
		DB:       c.DB,
	})
	if _, err := client.Ping(context.Background()).Result(); err != nil {
		hlog.Errorf("redis ping failed, count cache disabled: %v", err)
		return
	}
	counts = NewCountCacheManager(client)
}

// SetManager 替换全局计数缓存，传 nil 关闭缓存
func SetManager(m *CountCacheManager) {
	counts = m
}

// FillVideoCounts 读未命中时回填点赞/点踩数，失败只记录日志
func FillVideoCounts(ctx context.Context, videoId string, likes, dislikes int64) {
	store(ctx, BusinessVideo, videoId, map[string]int64{
		FieldLikeCount:    likes,
		FieldDislikeCount: dislikes,
	})
}

// ForgetVideo 写事务提交后删除计数，下次读时从数据库回填
func ForgetVideo(ctx context.Context, videoId string) {
	Forget(ctx, BusinessVideo, videoId)
}

func ForgetComment(ctx context.Context, commentId string) {
	Forget(ctx, BusinessComment, commentId)
}

func ForgetChannel(ctx context.Context, channelId string) {
	Forget(ctx, BusinessChannel, channelId)
}

// LoadVideoCounts 命中时返回缓存的点赞/点踩数
func LoadVideoCounts(ctx context.Context, videoId string) (likes, dislikes int64, ok bool) {
	if counts == nil {
		return 0, 0, false
	}
	m, hit, err := counts.GetCounts(ctx, BusinessVideo, videoId)
	if err != nil {
		hlog.CtxWarnf(ctx, "load video counts failed: %v", err)
		return 0, 0, false
	}
	if !hit {
		return 0, 0, false
	}
	likes, okLike := m[FieldLikeCount]
	dislikes, okDislike := m[FieldDislikeCount]
	return likes, dislikes, okLike && okDislike
}

// Forget 计数变化或实体删除时清理缓存
func Forget(ctx context.Context, business, id string) {
	if counts == nil {
		return
	}
	if err := counts.Invalidate(ctx, business, id); err != nil {
		hlog.CtxWarnf(ctx, "invalidate %s failed: %v", CountKey(business, id), err)
	}
}

func store(ctx context.Context, business, id string, values map[string]int64) {
	if counts == nil {
		return
	}
	if err := counts.SetCounts(ctx, business, id, values); err != nil {
		hlog.CtxWarnf(ctx, "store counts failed: %v", err)
	}
}
