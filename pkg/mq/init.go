package mq

import (
	"context"
	"fmt"

	"VidTube.com/config"
	"github.com/cloudwego/hertz/pkg/common/hlog"
)

var producer MessageProducer = NopProducer{}

// URL 由配置拼出 amqp 地址，未配置时返回空串
func URL() string {
	c := config.ConfigInfo.RabbitMq
	if c.Addr == "" {
		return ""
	}
	return fmt.Sprintf("amqp://%s:%s@%s/", c.Username, c.Password, c.Addr)
}

// Init 连接失败时退化为 NopProducer，事件发布属于尽力而为
func Init() {
	url := URL()
	if url == "" {
		hlog.Warn("rabbitmq not configured, engagement events are dropped")
		return
	}
	p, err := NewProducer(url)
	if err != nil {
		hlog.Errorf("init rabbitmq producer failed: %v", err)
		return
	}
	producer = p
}

// SetProducer 替换全局生产者，测试中用于捕获事件
func SetProducer(p MessageProducer) {
	if p == nil {
		p = NopProducer{}
	}
	producer = p
}

// Publish 发布失败只记录日志，不影响调用方
func Publish(ctx context.Context, event *EngagementEvent) {
	if err := producer.PublishEngagementEvent(ctx, event); err != nil {
		hlog.CtxErrorf(ctx, "publish %s event failed: %v", event.Type, err)
	}
}

func Close() error {
	return producer.Close()
}
