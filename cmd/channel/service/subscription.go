package service

import (
	"context"

	"VidTube.com/cmd/channel/dal/db"
	"VidTube.com/cmd/model"
	"VidTube.com/pkg/cache"
	"VidTube.com/pkg/database"
	"VidTube.com/pkg/errno"
	"VidTube.com/pkg/mq"
)

type SubscriptionResult struct {
	Subscribed      bool  `json:"subscribed"`
	SubscriberCount int64 `json:"subscriberCount"`
}

type SubscriptionService struct {
	ctx context.Context
}

func NewSubscriptionService(ctx context.Context) *SubscriptionService {
	return &SubscriptionService{ctx: ctx}
}

// Subscribe 频道所有者不能订阅自己的频道，该检查先于重复订阅检查
func (s *SubscriptionService) Subscribe(channelId, userId string) (*SubscriptionResult, error) {
	var count int64
	err := database.Transaction(s.ctx, db.DB, func(ctx context.Context) error {
		channel, err := db.GetChannel(ctx, channelId)
		if err != nil {
			return err
		}
		if channel.OwnerID == userId {
			return errno.AuthorizationFailedErr.WithMessage("You cannot subscribe to your own channel")
		}
		subscribed, err := db.IsSubscribed(ctx, channelId, userId)
		if err != nil {
			return err
		}
		if subscribed {
			return errno.InvalidStateErr.WithMessage("Already subscribed")
		}
		if err = db.CreateSubscription(ctx, channelId, userId); err != nil {
			return err
		}
		count, err = db.SyncSubscriberCount(ctx, channelId)
		return err
	})
	if err != nil {
		return nil, convertDBErr(s.ctx, err, channelNotFound)
	}
	cache.ForgetChannel(s.ctx, channelId)
	mq.Publish(s.ctx, mq.NewEvent(mq.EventSubscription, userId).WithChannel(channelId))
	return &SubscriptionResult{Subscribed: true, SubscriberCount: count}, nil
}

func (s *SubscriptionService) Unsubscribe(channelId, userId string) (*SubscriptionResult, error) {
	var count int64
	err := database.Transaction(s.ctx, db.DB, func(ctx context.Context) error {
		if _, err := db.GetChannel(ctx, channelId); err != nil {
			return err
		}
		subscribed, err := db.IsSubscribed(ctx, channelId, userId)
		if err != nil {
			return err
		}
		if !subscribed {
			return errno.InvalidStateErr.WithMessage("Not subscribed")
		}
		if err = db.DeleteSubscription(ctx, channelId, userId); err != nil {
			return err
		}
		count, err = db.SyncSubscriberCount(ctx, channelId)
		return err
	})
	if err != nil {
		return nil, convertDBErr(s.ctx, err, channelNotFound)
	}
	cache.ForgetChannel(s.ctx, channelId)
	return &SubscriptionResult{Subscribed: false, SubscriberCount: count}, nil
}

func (s *SubscriptionService) IsSubscribed(channelId, userId string) (bool, error) {
	if _, err := db.GetChannel(s.ctx, channelId); err != nil {
		return false, convertDBErr(s.ctx, err, channelNotFound)
	}
	subscribed, err := db.IsSubscribed(s.ctx, channelId, userId)
	if err != nil {
		return false, convertDBErr(s.ctx, err, channelNotFound)
	}
	return subscribed, nil
}

func (s *SubscriptionService) GetSubscribers(channelId string) ([]*model.UserBrief, error) {
	if _, err := db.GetChannel(s.ctx, channelId); err != nil {
		return nil, convertDBErr(s.ctx, err, channelNotFound)
	}
	users, err := db.GetSubscribers(s.ctx, channelId)
	if err != nil {
		return nil, convertDBErr(s.ctx, err, channelNotFound)
	}
	briefs := make([]*model.UserBrief, 0, len(users))
	for _, u := range users {
		briefs = append(briefs, u.Brief())
	}
	return briefs, nil
}

func (s *SubscriptionService) GetUserSubscriptions(userId string) ([]*model.Channel, error) {
	channels, err := db.GetSubscriptions(s.ctx, userId)
	if err != nil {
		return nil, convertDBErr(s.ctx, err, channelNotFound)
	}
	return channels, nil
}
