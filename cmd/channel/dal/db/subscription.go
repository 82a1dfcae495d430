package db

import (
	"context"

	"VidTube.com/cmd/model"
	"github.com/pkg/errors"
)

func CreateSubscription(ctx context.Context, channelId, userId string) error {
	if err := conn(ctx).Create(&model.Subscription{
		ChannelID: channelId,
		UserID:    userId,
	}).Error; err != nil {
		return errors.Wrapf(err, "CreateSubscription failed,err: %v", err)
	}
	return nil
}

func DeleteSubscription(ctx context.Context, channelId, userId string) error {
	if err := conn(ctx).Where("channel_id = ? AND user_id = ?", channelId, userId).Delete(&model.Subscription{}).Error; err != nil {
		return errors.Wrapf(err, "DeleteSubscription failed,err: %v", err)
	}
	return nil
}

func IsSubscribed(ctx context.Context, channelId, userId string) (bool, error) {
	var count int64
	if err := conn(ctx).Model(&model.Subscription{}).Where("channel_id = ? AND user_id = ?", channelId, userId).Count(&count).Error; err != nil {
		return false, errors.Wrapf(err, "IsSubscribed failed,err:%v", err)
	}
	return count > 0, nil
}

func CountSubscribers(ctx context.Context, channelId string) (count int64, err error) {
	if err := conn(ctx).Model(&model.Subscription{}).Where("channel_id = ?", channelId).Count(&count).Error; err != nil {
		return -1, errors.Wrapf(err, "CountSubscribers failed,err:%v", err)
	}
	return count, nil
}

// SyncSubscriberCount 以订阅表为准重算 subscriber_count
func SyncSubscriberCount(ctx context.Context, channelId string) (int64, error) {
	count, err := CountSubscribers(ctx, channelId)
	if err != nil {
		return -1, err
	}
	if err := conn(ctx).Model(&model.Channel{}).Where("id = ?", channelId).Update("subscriber_count", count).Error; err != nil {
		return -1, errors.Wrapf(err, "Update subscriber_count failed,err:%v", err)
	}
	return count, nil
}

func GetSubscribers(ctx context.Context, channelId string) ([]*model.User, error) {
	users := make([]*model.User, 0)
	if err := conn(ctx).Model(&model.User{}).
		Joins("JOIN subscriptions ON subscriptions.user_id = users.id").
		Where("subscriptions.channel_id = ?", channelId).
		Order("subscriptions.created_at ASC").
		Find(&users).Error; err != nil {
		return nil, errors.Wrapf(err, "GetSubscribers failed,err:%v", err)
	}
	return users, nil
}

func GetSubscriptions(ctx context.Context, userId string) ([]*model.Channel, error) {
	channels := make([]*model.Channel, 0)
	if err := conn(ctx).Model(&model.Channel{}).
		Joins("JOIN subscriptions ON subscriptions.channel_id = channels.id").
		Where("subscriptions.user_id = ?", userId).
		Order("subscriptions.created_at ASC").
		Find(&channels).Error; err != nil {
		return nil, errors.Wrapf(err, "GetSubscriptions failed,err:%v", err)
	}
	return channels, nil
}
