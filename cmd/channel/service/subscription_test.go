package service

import (
	"context"
	"testing"

	"VidTube.com/cmd/channel/dal/db"
	"VidTube.com/cmd/model"
	"VidTube.com/pkg/database/dbtest"
	"VidTube.com/pkg/errno"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fixture struct {
	ctx     context.Context
	conn    *gorm.DB
	owner   *model.User
	viewer  *model.User
	channel *model.Channel
}

func setup(t *testing.T) *fixture {
	conn := dbtest.New(t)
	db.Init(conn)
	f := &fixture{
		ctx:    context.Background(),
		conn:   conn,
		owner:  &model.User{Username: "owner", Email: "owner@example.com", Password: "x"},
		viewer: &model.User{Username: "viewer", Email: "viewer@example.com", Password: "x"},
	}
	require.NoError(t, conn.Create(f.owner).Error)
	require.NoError(t, conn.Create(f.viewer).Error)

	ch, err := NewChannelService(f.ctx).CreateChannel(f.owner.ID, &CreateChannelRequest{ChannelName: "Cooking"})
	require.NoError(t, err)
	f.channel = ch
	return f
}

func (f *fixture) reload(t *testing.T) *model.Channel {
	var ch model.Channel
	require.NoError(t, f.conn.First(&ch, "id = ?", f.channel.ID).Error)
	return &ch
}

func TestSubscribeCycle(t *testing.T) {
	f := setup(t)
	svc := NewSubscriptionService(f.ctx)

	res, err := svc.Subscribe(f.channel.ID, f.viewer.ID)
	require.NoError(t, err)
	assert.True(t, res.Subscribed)
	assert.Equal(t, int64(1), res.SubscriberCount)

	_, err = svc.Subscribe(f.channel.ID, f.viewer.ID)
	assert.ErrorIs(t, err, errno.InvalidStateErr)
	assert.Equal(t, "Already subscribed", errno.ConvertErr(err).ErrMsg)
	assert.Equal(t, int64(1), f.reload(t).SubscriberCount)

	ok, err := svc.IsSubscribed(f.channel.ID, f.viewer.ID)
	require.NoError(t, err)
	assert.True(t, ok)

	subs, err := svc.GetUserSubscriptions(f.viewer.ID)
	require.NoError(t, err)
	require.Len(t, subs, 1)
	assert.Equal(t, f.channel.ID, subs[0].ID)

	res, err = svc.Unsubscribe(f.channel.ID, f.viewer.ID)
	require.NoError(t, err)
	assert.False(t, res.Subscribed)
	assert.Equal(t, int64(0), res.SubscriberCount)

	_, err = svc.Unsubscribe(f.channel.ID, f.viewer.ID)
	assert.Equal(t, "Not subscribed", errno.ConvertErr(err).ErrMsg)

	// 取消后可以再次订阅
	res, err = svc.Subscribe(f.channel.ID, f.viewer.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), res.SubscriberCount)
	assert.Equal(t, int64(1), f.reload(t).SubscriberCount)
}

func TestSubscribeOwnChannel(t *testing.T) {
	f := setup(t)
	_, err := NewSubscriptionService(f.ctx).Subscribe(f.channel.ID, f.owner.ID)
	assert.ErrorIs(t, err, errno.AuthorizationFailedErr)
	assert.Equal(t, int64(0), f.reload(t).SubscriberCount)
}

func TestSubscribeOwnChannelWithSubscribers(t *testing.T) {
	f := setup(t)
	svc := NewSubscriptionService(f.ctx)
	_, err := svc.Subscribe(f.channel.ID, f.viewer.ID)
	require.NoError(t, err)

	_, err = svc.Subscribe(f.channel.ID, f.owner.ID)
	assert.ErrorIs(t, err, errno.AuthorizationFailedErr)
	assert.Equal(t, int64(1), f.reload(t).SubscriberCount)

	ok, err := svc.IsSubscribed(f.channel.ID, f.owner.ID)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestSubscribeMissingChannel(t *testing.T) {
	f := setup(t)
	_, err := NewSubscriptionService(f.ctx).Subscribe("missing", f.viewer.ID)
	assert.ErrorIs(t, err, errno.NotFoundErr)
	_, err = NewSubscriptionService(f.ctx).IsSubscribed("missing", f.viewer.ID)
	assert.ErrorIs(t, err, errno.NotFoundErr)
}

func TestChannelCRUD(t *testing.T) {
	f := setup(t)
	svc := NewChannelService(f.ctx)

	_, err := svc.CreateChannel(f.viewer.ID, &CreateChannelRequest{ChannelName: "Cooking"})
	assert.Equal(t, "Channel name already exists", errno.ConvertErr(err).ErrMsg)

	_, err = svc.CreateChannel(f.viewer.ID, &CreateChannelRequest{ChannelName: "   "})
	assert.ErrorIs(t, err, errno.ParamErr)

	name := "Baking"
	_, err = svc.UpdateChannel(f.channel.ID, f.viewer.ID, &UpdateChannelRequest{ChannelName: &name})
	assert.ErrorIs(t, err, errno.AuthorizationFailedErr)

	updated, err := svc.UpdateChannel(f.channel.ID, f.owner.ID, &UpdateChannelRequest{ChannelName: &name})
	require.NoError(t, err)
	assert.Equal(t, "Baking", updated.Name)

	_, err = NewSubscriptionService(f.ctx).Subscribe(f.channel.ID, f.viewer.ID)
	require.NoError(t, err)
	video := &model.Video{Title: "t", URL: "u", ThumbnailURL: "th", ChannelID: f.channel.ID, UploaderID: f.owner.ID, Category: "c"}
	require.NoError(t, f.conn.Create(video).Error)

	assert.ErrorIs(t, svc.DeleteChannel(f.channel.ID, f.viewer.ID), errno.AuthorizationFailedErr)
	require.NoError(t, svc.DeleteChannel(f.channel.ID, f.owner.ID))

	var subs int64
	f.conn.Model(&model.Subscription{}).Where("channel_id = ?", f.channel.ID).Count(&subs)
	assert.Zero(t, subs)
	// 视频不随频道删除
	var videos int64
	f.conn.Model(&model.Video{}).Where("id = ?", video.ID).Count(&videos)
	assert.Equal(t, int64(1), videos)

	_, err = svc.GetChannel(f.channel.ID)
	assert.ErrorIs(t, err, errno.NotFoundErr)
}
