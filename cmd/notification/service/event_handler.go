package service

import (
	"context"
	"fmt"

	"VidTube.com/cmd/model"
	"VidTube.com/cmd/notification/dal/db"
	"VidTube.com/pkg/database"
	"VidTube.com/pkg/mq"
	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// EventHandler 把互动事件转换为通知记录
type EventHandler struct{}

var _ mq.EngagementEventHandler = (*EventHandler)(nil)

func NewEventHandler() *EventHandler {
	return &EventHandler{}
}

// HandleEngagementEvent 关联实体已被删除的事件直接丢弃，不重试
func (h *EventHandler) HandleEngagementEvent(ctx context.Context, event *mq.EngagementEvent) error {
	notifications, err := h.build(ctx, event)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		hlog.CtxWarnf(ctx, "drop %s event %s: target no longer exists", event.Type, event.EventID)
		return nil
	}
	if err != nil {
		return err
	}
	if len(notifications) == 0 {
		return nil
	}
	return database.Transaction(ctx, db.DB, func(ctx context.Context) error {
		return db.CreateNotifications(ctx, notifications)
	})
}

func (h *EventHandler) build(ctx context.Context, event *mq.EngagementEvent) ([]*model.Notification, error) {
	actor, err := db.GetUser(ctx, event.ActorID)
	if err != nil {
		return nil, err
	}

	switch event.Type {
	case mq.EventLike:
		video, err := db.GetVideo(ctx, event.VideoID)
		if err != nil {
			return nil, err
		}
		return single(event, video.UploaderID, model.NotificationLike,
			model.NotificationTarget{Kind: model.TargetVideo, ID: video.ID},
			fmt.Sprintf("%s liked your video \"%s\"", actor.Username, video.Title)), nil

	case mq.EventComment:
		video, err := db.GetVideo(ctx, event.VideoID)
		if err != nil {
			return nil, err
		}
		return single(event, video.UploaderID, model.NotificationComment,
			model.NotificationTarget{Kind: model.TargetVideo, ID: video.ID},
			fmt.Sprintf("%s commented on your video \"%s\"", actor.Username, video.Title)), nil

	case mq.EventReply:
		reply, err := db.GetComment(ctx, event.CommentID)
		if err != nil {
			return nil, err
		}
		if !reply.IsReply() {
			return nil, nil
		}
		parent, err := db.GetComment(ctx, *reply.ParentID)
		if err != nil {
			return nil, err
		}
		return single(event, parent.UserID, model.NotificationReply,
			model.NotificationTarget{Kind: model.TargetComment, ID: reply.ID},
			fmt.Sprintf("%s replied to your comment", actor.Username)), nil

	case mq.EventSubscription:
		channel, err := db.GetChannel(ctx, event.ChannelID)
		if err != nil {
			return nil, err
		}
		return single(event, channel.OwnerID, model.NotificationSubscription,
			model.NotificationTarget{Kind: model.TargetChannel, ID: channel.ID},
			fmt.Sprintf("%s subscribed to your channel %s", actor.Username, channel.Name)), nil

	case mq.EventNewVideo:
		video, err := db.GetVideo(ctx, event.VideoID)
		if err != nil {
			return nil, err
		}
		channel, err := db.GetChannel(ctx, video.ChannelID)
		if err != nil {
			return nil, err
		}
		subscribers, err := db.GetSubscriberIds(ctx, channel.ID)
		if err != nil {
			return nil, err
		}
		target := model.NotificationTarget{Kind: model.TargetVideo, ID: video.ID}
		message := fmt.Sprintf("%s uploaded a new video: %s", channel.Name, video.Title)
		out := make([]*model.Notification, 0, len(subscribers))
		for _, uid := range subscribers {
			out = append(out, single(event, uid, model.NotificationNewVideo, target, message)...)
		}
		return out, nil
	}

	hlog.CtxWarnf(ctx, "unknown engagement event type %q", event.Type)
	return nil, nil
}

// single 接收者就是触发者本人时不产生通知
func single(event *mq.EngagementEvent, recipient, kind string, target model.NotificationTarget, message string) []*model.Notification {
	if recipient == "" || recipient == event.ActorID {
		return nil
	}
	return []*model.Notification{{
		UserID:      recipient,
		Type:        kind,
		RelatedTo:   target,
		TriggeredBy: event.ActorID,
		Message:     message,
	}}
}
