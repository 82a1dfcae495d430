package service

import (
	"testing"

	"VidTube.com/pkg/cache"
	"VidTube.com/pkg/constants"
	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func withRedis(t *testing.T) *miniredis.Miniredis {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() {
		cache.SetManager(nil)
		_ = client.Close()
	})
	cache.SetManager(cache.NewCountCacheManager(client))
	return mr
}

func TestReactionCountsSurviveRedisOutage(t *testing.T) {
	f := setup(t)
	mr := withRedis(t)
	svc := NewLikeActionService(f.ctx)
	alice := f.users[1].ID

	_, err := svc.Like(f.video.ID, alice)
	require.NoError(t, err)

	mr.SetError("redis down")
	res, err := svc.Unlike(f.video.ID, alice)
	require.NoError(t, err)
	assert.Equal(t, int64(0), res.Likes)
	mr.SetError("")

	res, err = svc.GetReaction(f.video.ID, alice)
	require.NoError(t, err)
	assert.Equal(t, &ReactionResult{Likes: 0, Dislikes: 0, Reaction: constants.ReactionNone}, res)
	assert.Equal(t, int64(0), f.reloadVideo(t).Likes)
}

func TestGetReactionFillsAndWritesInvalidate(t *testing.T) {
	f := setup(t)
	mr := withRedis(t)
	svc := NewLikeActionService(f.ctx)
	alice, bob := f.users[1].ID, f.users[2].ID
	key := cache.CountKey(cache.BusinessVideo, f.video.ID)

	_, err := svc.Like(f.video.ID, alice)
	require.NoError(t, err)
	assert.False(t, mr.Exists(key))

	res, err := svc.GetReaction(f.video.ID, bob)
	require.NoError(t, err)
	assert.Equal(t, int64(1), res.Likes)
	assert.Equal(t, "1", mr.HGet(key, cache.FieldLikeCount))

	// 缓存回填后再写，key 被删除，读到的仍是权威计数
	_, err = svc.Dislike(f.video.ID, bob)
	require.NoError(t, err)
	assert.False(t, mr.Exists(key))

	res, err = svc.GetReaction(f.video.ID, bob)
	require.NoError(t, err)
	assert.Equal(t, &ReactionResult{Likes: 1, Dislikes: 1, Reaction: constants.ReactionDislike}, res)
	assert.Equal(t, "1", mr.HGet(key, cache.FieldDislikeCount))
}
