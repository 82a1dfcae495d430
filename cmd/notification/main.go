package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"VidTube.com/cmd/notification/dal/db"
	"VidTube.com/cmd/notification/service"
	"VidTube.com/config"
	"VidTube.com/pkg/database"
	"VidTube.com/pkg/mq"
	"github.com/cloudwego/hertz/pkg/common/hlog"
)

func Init() {
	config.Init()
	conn, err := database.Init()
	if err != nil {
		hlog.Fatalf("Failed to init database: %v", err)
	}
	db.Init(conn)
}

func main() {
	hlog.SetLevel(hlog.LevelInfo)
	Init()

	url := mq.URL()
	if url == "" {
		hlog.Fatal("rabbitmq is not configured")
	}
	consumer, err := mq.NewConsumer(url)
	if err != nil {
		hlog.Fatalf("Failed to create consumer: %v", err)
	}
	defer consumer.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := make(chan error, 1)
	go func() {
		done <- consumer.ConsumeEngagementEvents(ctx, service.NewEventHandler())
	}()
	hlog.Info("Notification consumer started, waiting for messages...")

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	select {
	case <-sigChan:
		hlog.Info("Shutting down notification consumer...")
		cancel()
		<-done
	case err = <-done:
		if err != nil {
			hlog.Errorf("Notification consumer stopped: %v", err)
		}
	}
	hlog.Info("Notification consumer stopped")
}
