package mq

import (
	"time"

	"github.com/google/uuid"
)

// 事件类型与通知类型一一对应
const (
	EventLike         = "like"
	EventComment      = "comment"
	EventReply        = "reply"
	EventSubscription = "subscription"
	EventNewVideo     = "new_video"
)

const (
	// 交换机名称
	EngagementEventExchange = "engagement_events"

	// 队列名称
	NotificationEventQueue = "notification_event_queue"
)

// EngagementEvent 互动事件，只携带 id，接收者由消费端查询得出
type EngagementEvent struct {
	EventID   string `json:"event_id"`
	Type      string `json:"type"`
	ActorID   string `json:"actor_id"`
	VideoID   string `json:"video_id,omitempty"`
	CommentID string `json:"comment_id,omitempty"`
	ChannelID string `json:"channel_id,omitempty"`
	Timestamp int64  `json:"timestamp"`
}

func NewEvent(eventType, actorId string) *EngagementEvent {
	return &EngagementEvent{
		EventID:   uuid.New().String(),
		Type:      eventType,
		ActorID:   actorId,
		Timestamp: time.Now().Unix(),
	}
}

func (e *EngagementEvent) WithVideo(videoId string) *EngagementEvent {
	e.VideoID = videoId
	return e
}

func (e *EngagementEvent) WithComment(commentId string) *EngagementEvent {
	e.CommentID = commentId
	return e
}

func (e *EngagementEvent) WithChannel(channelId string) *EngagementEvent {
	e.ChannelID = channelId
	return e
}
