package service

import (
	"context"
	"testing"
	"time"

	"VidTube.com/cmd/model"
	"VidTube.com/cmd/notification/dal/db"
	"VidTube.com/pkg/database/dbtest"
	"VidTube.com/pkg/errno"
	"VidTube.com/pkg/mq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fixture struct {
	ctx      context.Context
	conn     *gorm.DB
	owner    *model.User
	fan      *model.User
	other    *model.User
	channel  *model.Channel
	video    *model.Video
	handler  *EventHandler
	received func(userId string) []*model.Notification
}

func setup(t *testing.T) *fixture {
	conn := dbtest.New(t)
	db.Init(conn)

	f := &fixture{ctx: context.Background(), conn: conn, handler: NewEventHandler()}
	f.owner = &model.User{Username: "owner", Email: "owner@example.com", Password: "x"}
	f.fan = &model.User{Username: "fan", Email: "fan@example.com", Password: "x"}
	f.other = &model.User{Username: "other", Email: "other@example.com", Password: "x"}
	for _, u := range []*model.User{f.owner, f.fan, f.other} {
		require.NoError(t, conn.Create(u).Error)
	}
	f.channel = &model.Channel{Name: "Main", OwnerID: f.owner.ID}
	require.NoError(t, conn.Create(f.channel).Error)
	f.video = &model.Video{Title: "clip", URL: "u", ThumbnailURL: "t", Category: "c",
		ChannelID: f.channel.ID, UploaderID: f.owner.ID}
	require.NoError(t, conn.Create(f.video).Error)

	f.received = func(userId string) []*model.Notification {
		out, err := db.GetNotifications(f.ctx, userId)
		require.NoError(t, err)
		return out
	}
	return f
}

func TestLikeNotifiesUploader(t *testing.T) {
	f := setup(t)
	require.NoError(t, f.handler.HandleEngagementEvent(f.ctx, mq.NewEvent(mq.EventLike, f.fan.ID).WithVideo(f.video.ID)))

	got := f.received(f.owner.ID)
	require.Len(t, got, 1)
	assert.Equal(t, model.NotificationLike, got[0].Type)
	assert.Equal(t, model.TargetVideo, got[0].RelatedTo.Kind)
	assert.Equal(t, f.video.ID, got[0].RelatedTo.ID)
	assert.Equal(t, f.fan.ID, got[0].TriggeredBy)
	assert.Contains(t, got[0].Message, "fan")
	assert.False(t, got[0].IsRead)
}

func TestSelfTriggeredEventsAreSkipped(t *testing.T) {
	f := setup(t)
	require.NoError(t, f.handler.HandleEngagementEvent(f.ctx, mq.NewEvent(mq.EventLike, f.owner.ID).WithVideo(f.video.ID)))
	require.NoError(t, f.handler.HandleEngagementEvent(f.ctx, mq.NewEvent(mq.EventComment, f.owner.ID).WithVideo(f.video.ID)))
	assert.Empty(t, f.received(f.owner.ID))
}

func TestReplyNotifiesParentAuthor(t *testing.T) {
	f := setup(t)
	parent := &model.Comment{Text: "first", VideoID: f.video.ID, UserID: f.fan.ID}
	require.NoError(t, f.conn.Create(parent).Error)
	reply := &model.Comment{Text: "re", VideoID: f.video.ID, UserID: f.other.ID, ParentID: &parent.ID}
	require.NoError(t, f.conn.Create(reply).Error)

	ev := mq.NewEvent(mq.EventReply, f.other.ID).WithVideo(f.video.ID).WithComment(reply.ID)
	require.NoError(t, f.handler.HandleEngagementEvent(f.ctx, ev))

	got := f.received(f.fan.ID)
	require.Len(t, got, 1)
	assert.Equal(t, model.NotificationReply, got[0].Type)
	assert.Equal(t, model.TargetComment, got[0].RelatedTo.Kind)
	assert.Empty(t, f.received(f.owner.ID))
}

func TestSubscriptionNotifiesOwner(t *testing.T) {
	f := setup(t)
	require.NoError(t, f.handler.HandleEngagementEvent(f.ctx, mq.NewEvent(mq.EventSubscription, f.fan.ID).WithChannel(f.channel.ID)))

	got := f.received(f.owner.ID)
	require.Len(t, got, 1)
	assert.Equal(t, model.TargetChannel, got[0].RelatedTo.Kind)
	assert.Equal(t, f.channel.ID, got[0].RelatedTo.ID)
}

func TestNewVideoFansOutToSubscribers(t *testing.T) {
	f := setup(t)
	for _, u := range []*model.User{f.fan, f.other} {
		require.NoError(t, f.conn.Create(&model.Subscription{ChannelID: f.channel.ID, UserID: u.ID}).Error)
	}
	ev := mq.NewEvent(mq.EventNewVideo, f.owner.ID).WithVideo(f.video.ID).WithChannel(f.channel.ID)
	require.NoError(t, f.handler.HandleEngagementEvent(f.ctx, ev))

	assert.Len(t, f.received(f.fan.ID), 1)
	assert.Len(t, f.received(f.other.ID), 1)
	assert.Empty(t, f.received(f.owner.ID))
}

func TestEventForDeletedTargetIsDropped(t *testing.T) {
	f := setup(t)
	err := f.handler.HandleEngagementEvent(f.ctx, mq.NewEvent(mq.EventLike, f.fan.ID).WithVideo("missing"))
	require.NoError(t, err)
	err = f.handler.HandleEngagementEvent(f.ctx, mq.NewEvent("unknown", f.fan.ID))
	require.NoError(t, err)
	assert.Empty(t, f.received(f.owner.ID))
}

func TestListAndMarkRead(t *testing.T) {
	f := setup(t)
	require.NoError(t, f.handler.HandleEngagementEvent(f.ctx, mq.NewEvent(mq.EventLike, f.fan.ID).WithVideo(f.video.ID)))
	time.Sleep(2 * time.Millisecond)
	require.NoError(t, f.handler.HandleEngagementEvent(f.ctx, mq.NewEvent(mq.EventSubscription, f.fan.ID).WithChannel(f.channel.ID)))

	svc := NewNotificationService(f.ctx)
	list, err := svc.ListNotifications(f.owner.ID)
	require.NoError(t, err)
	require.Len(t, list.Notifications, 2)
	assert.Equal(t, model.NotificationSubscription, list.Notifications[0].Type)
	assert.Equal(t, int64(2), list.Unread)

	target := list.Notifications[1].ID
	_, err = svc.MarkRead(target, f.fan.ID)
	assert.ErrorIs(t, err, errno.AuthorizationFailedErr)
	_, err = svc.MarkRead("missing", f.owner.ID)
	assert.ErrorIs(t, err, errno.NotFoundErr)

	n, err := svc.MarkRead(target, f.owner.ID)
	require.NoError(t, err)
	assert.True(t, n.IsRead)
	_, err = svc.MarkRead(target, f.owner.ID)
	require.NoError(t, err)

	list, err = svc.ListNotifications(f.owner.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), list.Unread)
}
