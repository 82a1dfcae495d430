package service

import (
	"context"
	"testing"

	"VidTube.com/cmd/model"
	"VidTube.com/pkg/constants"
	"VidTube.com/pkg/errno"
	"VidTube.com/pkg/mq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type captured struct{ events []*mq.EngagementEvent }

func (c *captured) PublishEngagementEvent(ctx context.Context, e *mq.EngagementEvent) error {
	c.events = append(c.events, e)
	return nil
}

func (c *captured) Close() error { return nil }

func TestCreateVideoValidation(t *testing.T) {
	f := setup(t)
	svc := NewVideoService(f.ctx)

	_, err := svc.CreateVideo(f.owner.ID, &CreateVideoRequest{})
	require.ErrorIs(t, err, errno.ParamErr)
	assert.Equal(t,
		"Title is required, Video URL is required, Thumbnail URL is required, Category is required, Channel is required",
		errno.ConvertErr(err).ErrMsg)

	_, err = svc.CreateVideo(f.viewer.ID, &CreateVideoRequest{
		Title: "t", VideoUrl: "u", ThumbnailUrl: "th", Category: "c", ChannelId: f.channel.ID,
	})
	assert.ErrorIs(t, err, errno.AuthorizationFailedErr)

	_, err = svc.CreateVideo(f.owner.ID, &CreateVideoRequest{
		Title: "t", VideoUrl: "u", ThumbnailUrl: "th", Category: "c", ChannelId: "missing",
	})
	assert.ErrorIs(t, err, errno.NotFoundErr)
}

func TestCreateVideoPublishesNewVideo(t *testing.T) {
	f := setup(t)
	rec := &captured{}
	mq.SetProducer(rec)
	defer mq.SetProducer(nil)

	v, err := NewVideoService(f.ctx).CreateVideo(f.owner.ID, &CreateVideoRequest{
		Title: "t", VideoUrl: "u", ThumbnailUrl: "th", Category: "c", ChannelId: f.channel.ID,
		Tags: []string{" go ", ""},
	})
	require.NoError(t, err)
	assert.Equal(t, model.Tags{"go"}, v.Tags)
	require.Len(t, rec.events, 1)
	assert.Equal(t, mq.EventNewVideo, rec.events[0].Type)
	assert.Equal(t, f.channel.ID, rec.events[0].ChannelID)
}

func TestDeleteVideoRemovesReactionsOnly(t *testing.T) {
	f := setup(t)
	v := f.newVideo(t, "clip")
	require.NoError(t, f.conn.Create(&model.VideoReaction{VideoID: v.ID, UserID: f.viewer.ID, Kind: constants.ReactionLike}).Error)
	require.NoError(t, f.conn.Create(&model.Comment{Text: "hi", VideoID: v.ID, UserID: f.viewer.ID}).Error)

	svc := NewVideoService(f.ctx)
	assert.ErrorIs(t, svc.DeleteVideo(v.ID, f.viewer.ID), errno.AuthorizationFailedErr)
	require.NoError(t, svc.DeleteVideo(v.ID, f.owner.ID))

	var reactions, comments int64
	f.conn.Model(&model.VideoReaction{}).Count(&reactions)
	f.conn.Model(&model.Comment{}).Count(&comments)
	assert.Zero(t, reactions)
	assert.Equal(t, int64(1), comments)
}

func TestVideoListSortingAndFilters(t *testing.T) {
	f := setup(t)
	a, b, c := f.newVideo(t, "alpha"), f.newVideo(t, "beta"), f.newVideo(t, "gamma")
	f.conn.Model(&model.Video{}).Where("id = ?", a.ID).Updates(map[string]interface{}{"views": 10, "likes": 1})
	f.conn.Model(&model.Video{}).Where("id = ?", b.ID).Updates(map[string]interface{}{"views": 5, "likes": 7, "category": "news"})

	svc := NewVideoListService(f.ctx)

	byViews, err := svc.VideoList(&ListVideosRequest{SortBy: constants.SortViews})
	require.NoError(t, err)
	require.Len(t, byViews, 3)
	assert.Equal(t, a.ID, byViews[0].ID)
	assert.Equal(t, "Main", byViews[0].ChannelInfo.Name)

	byLikes, err := svc.VideoList(&ListVideosRequest{SortBy: constants.SortLikes})
	require.NoError(t, err)
	assert.Equal(t, b.ID, byLikes[0].ID)

	news, err := svc.VideoList(&ListVideosRequest{Category: "news"})
	require.NoError(t, err)
	require.Len(t, news, 1)
	assert.Equal(t, b.ID, news[0].ID)

	found, err := svc.VideoList(&ListVideosRequest{Search: "gam"})
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, c.ID, found[0].ID)

	suggestions, err := svc.Suggest("a")
	require.NoError(t, err)
	assert.Len(t, suggestions, 3)
	assert.Equal(t, "alpha", suggestions[0].Title)
}

func TestUpdateVideo(t *testing.T) {
	f := setup(t)
	v := f.newVideo(t, "clip")
	svc := NewVideoService(f.ctx)

	title := "renamed"
	_, err := svc.UpdateVideo(v.ID, f.viewer.ID, &UpdateVideoRequest{Title: &title})
	assert.ErrorIs(t, err, errno.AuthorizationFailedErr)

	updated, err := svc.UpdateVideo(v.ID, f.owner.ID, &UpdateVideoRequest{Title: &title, Tags: []string{"x"}})
	require.NoError(t, err)
	assert.Equal(t, "renamed", updated.Title)
	assert.Equal(t, model.Tags{"x"}, updated.Tags)

	detail, err := svc.GetVideo(v.ID)
	require.NoError(t, err)
	assert.Equal(t, "owner", detail.UploaderInfo.Username)
}

func TestRankByHitsKeepsRelevanceOrder(t *testing.T) {
	videos := []*model.Video{{ID: "a"}, {ID: "b"}, {ID: "c"}, {ID: "d"}}
	out := rankByHits(videos, []string{"c", "a", "d"})

	ids := make([]string, 0, len(out))
	for _, v := range out {
		ids = append(ids, v.ID)
	}
	assert.Equal(t, []string{"c", "a", "d", "b"}, ids)
}
