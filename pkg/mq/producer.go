package mq

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/rabbitmq/amqp091-go"
)

type Producer struct {
	conn    *amqp091.Connection
	channel *amqp091.Channel
}

func NewProducer(rabbitmqURL string) (*Producer, error) {
	conn, err := amqp091.Dial(rabbitmqURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to RabbitMQ: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to open a channel: %w", err)
	}

	producer := &Producer{
		conn:    conn,
		channel: ch,
	}

	// 声明exchanges和queues
	if err := setupTopology(ch); err != nil {
		producer.Close()
		return nil, fmt.Errorf("failed to setup topology: %w", err)
	}

	return producer, nil
}

// setupTopology 生产者与消费者都会调用，声明是幂等的
func setupTopology(ch *amqp091.Channel) error {
	err := ch.ExchangeDeclare(
		EngagementEventExchange,
		"topic",
		true,  // durable
		false, // auto-delete
		false, // internal
		false, // no-wait
		nil,   // arguments
	)
	if err != nil {
		return fmt.Errorf("failed to declare engagement event exchange: %w", err)
	}

	_, err = ch.QueueDeclare(
		NotificationEventQueue,
		true,  // durable
		false, // delete when unused
		false, // exclusive
		false, // no-wait
		nil,   // arguments
	)
	if err != nil {
		return fmt.Errorf("failed to declare notification event queue: %w", err)
	}

	// 绑定队列到交换机，接收全部事件类型
	err = ch.QueueBind(
		NotificationEventQueue,
		"#",
		EngagementEventExchange,
		false,
		nil,
	)
	if err != nil {
		return fmt.Errorf("failed to bind notification event queue: %w", err)
	}
	return nil
}

func (p *Producer) PublishEngagementEvent(ctx context.Context, event *EngagementEvent) error {
	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal engagement event: %w", err)
	}

	err = p.channel.PublishWithContext(
		ctx,
		EngagementEventExchange,
		event.Type,
		false, // mandatory
		false, // immediate
		amqp091.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp091.Persistent,
			MessageId:    event.EventID,
			Timestamp:    time.Now(),
			Body:         body,
		},
	)
	if err != nil {
		return fmt.Errorf("failed to publish engagement event: %w", err)
	}

	hlog.CtxInfof(ctx, "Published engagement event: %+v", event)
	return nil
}

func (p *Producer) Close() error {
	if p.channel != nil {
		p.channel.Close()
	}
	if p.conn != nil {
		return p.conn.Close()
	}
	return nil
}

// NopProducer 未配置 RabbitMQ 时使用，丢弃所有事件
type NopProducer struct{}

func (NopProducer) PublishEngagementEvent(ctx context.Context, event *EngagementEvent) error {
	return nil
}

func (NopProducer) Close() error { return nil }
