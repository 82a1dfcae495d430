package service

import (
	"context"

	"VidTube.com/cmd/model"
	"VidTube.com/cmd/notification/dal/db"
	"VidTube.com/pkg/errno"
)

type NotificationList struct {
	Notifications []*model.Notification `json:"notifications"`
	Unread        int64                 `json:"unread"`
}

type NotificationService struct {
	ctx context.Context
}

func NewNotificationService(ctx context.Context) *NotificationService {
	return &NotificationService{ctx: ctx}
}

func (s *NotificationService) ListNotifications(userId string) (*NotificationList, error) {
	notifications, err := db.GetNotifications(s.ctx, userId)
	if err != nil {
		return nil, convertDBErr(s.ctx, err, notificationNotFound)
	}
	unread, err := db.CountUnread(s.ctx, userId)
	if err != nil {
		return nil, convertDBErr(s.ctx, err, notificationNotFound)
	}
	return &NotificationList{Notifications: notifications, Unread: unread}, nil
}

// MarkRead 只有接收者本人可以标记已读，重复标记无副作用
func (s *NotificationService) MarkRead(notificationId, userId string) (*model.Notification, error) {
	n, err := db.GetNotification(s.ctx, notificationId)
	if err != nil {
		return nil, convertDBErr(s.ctx, err, notificationNotFound)
	}
	if n.UserID != userId {
		return nil, errno.AuthorizationFailedErr.WithMessage("Not authorized to update this notification")
	}
	if !n.IsRead {
		if err = db.MarkRead(s.ctx, notificationId); err != nil {
			return nil, convertDBErr(s.ctx, err, notificationNotFound)
		}
		n.IsRead = true
	}
	return n, nil
}
