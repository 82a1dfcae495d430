package mq

import "context"

// MessageProducer 消息生产者接口
type MessageProducer interface {
	PublishEngagementEvent(ctx context.Context, event *EngagementEvent) error
	Close() error
}

// EngagementEventHandler 消费端处理接口
type EngagementEventHandler interface {
	HandleEngagementEvent(ctx context.Context, event *EngagementEvent) error
}

// 确保Producer实现MessageProducer接口
var _ MessageProducer = (*Producer)(nil)

var _ MessageProducer = NopProducer{}
