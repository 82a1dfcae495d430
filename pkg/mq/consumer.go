package mq

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/rabbitmq/amqp091-go"
)

type Consumer struct {
	conn    *amqp091.Connection
	channel *amqp091.Channel
}

func NewConsumer(rabbitmqURL string) (*Consumer, error) {
	conn, err := amqp091.Dial(rabbitmqURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to RabbitMQ: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to open a channel: %w", err)
	}

	// 设置QoS，限制未确认消息数量
	err = ch.Qos(
		10,    // prefetch count
		0,     // prefetch size
		false, // global
	)
	if err != nil {
		ch.Close()
		conn.Close()
		return nil, fmt.Errorf("failed to set QoS: %w", err)
	}

	if err = setupTopology(ch); err != nil {
		ch.Close()
		conn.Close()
		return nil, fmt.Errorf("failed to setup topology: %w", err)
	}

	return &Consumer{
		conn:    conn,
		channel: ch,
	}, nil
}

// ConsumeEngagementEvents 阻塞直到 ctx 取消或连接关闭
func (c *Consumer) ConsumeEngagementEvents(ctx context.Context, handler EngagementEventHandler) error {
	msgs, err := c.channel.Consume(
		NotificationEventQueue,
		"",    // consumer
		false, // auto-ack (设置为false，手动确认)
		false, // exclusive
		false, // no-local
		false, // no-wait
		nil,   // args
	)
	if err != nil {
		return fmt.Errorf("failed to register a consumer: %w", err)
	}

	for {
		select {
		case <-ctx.Done():
			hlog.Info("Engagement event consumer context cancelled")
			return nil
		case d, ok := <-msgs:
			if !ok {
				hlog.Info("Engagement event consumer channel closed")
				return nil
			}
			c.dispatch(ctx, d, handler)
		}
	}
}

func (c *Consumer) dispatch(ctx context.Context, d amqp091.Delivery, handler EngagementEventHandler) {
	var event EngagementEvent
	if err := json.Unmarshal(d.Body, &event); err != nil {
		hlog.Errorf("Failed to unmarshal engagement event: %v", err)
		d.Nack(false, false) // 拒绝消息，不重新入队
		return
	}

	if err := handler.HandleEngagementEvent(ctx, &event); err != nil {
		hlog.Errorf("Failed to handle engagement event: %v", err)
		// 已经重投过一次的消息直接丢弃，避免毒消息循环
		d.Nack(false, !d.Redelivered)
		return
	}

	d.Ack(false) // 确认消息
	hlog.CtxInfof(ctx, "Successfully processed engagement event: %+v", event)
}

func (c *Consumer) Close() error {
	if c.channel != nil {
		c.channel.Close()
	}
	if c.conn != nil {
		return c.conn.Close()
	}
	return nil
}
