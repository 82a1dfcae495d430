package db

import (
	"context"

	"VidTube.com/cmd/model"
	"github.com/pkg/errors"
)

const batchSize = 200

func CreateNotifications(ctx context.Context, notifications []*model.Notification) error {
	if len(notifications) == 0 {
		return nil
	}
	if err := conn(ctx).CreateInBatches(notifications, batchSize).Error; err != nil {
		return errors.Wrapf(err, "CreateNotifications failed,err:%v", err)
	}
	return nil
}

// GetNotifications 最新的在前
func GetNotifications(ctx context.Context, userId string) ([]*model.Notification, error) {
	notifications := make([]*model.Notification, 0)
	if err := conn(ctx).Where("user_id = ?", userId).
		Order("created_at DESC").
		Find(&notifications).Error; err != nil {
		return nil, errors.Wrapf(err, "GetNotifications failed,err:%v", err)
	}
	return notifications, nil
}

func GetNotification(ctx context.Context, id string) (*model.Notification, error) {
	var n model.Notification
	if err := conn(ctx).Where("id = ?", id).First(&n).Error; err != nil {
		return nil, errors.Wrapf(err, "GetNotification failed,err:%v", err)
	}
	return &n, nil
}

func MarkRead(ctx context.Context, id string) error {
	if err := conn(ctx).Model(&model.Notification{}).Where("id = ?", id).
		Update("is_read", true).Error; err != nil {
		return errors.Wrapf(err, "MarkRead failed,err:%v", err)
	}
	return nil
}

func CountUnread(ctx context.Context, userId string) (int64, error) {
	var count int64
	if err := conn(ctx).Model(&model.Notification{}).
		Where("user_id = ? AND is_read = ?", userId, false).
		Count(&count).Error; err != nil {
		return 0, errors.Wrapf(err, "CountUnread failed,err:%v", err)
	}
	return count, nil
}
