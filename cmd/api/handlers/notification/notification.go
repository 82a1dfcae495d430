package handlers

import (
	"context"

	"VidTube.com/cmd/api/handlers/pack"
	"VidTube.com/cmd/notification/service"
	"VidTube.com/pkg/errno"
	"VidTube.com/pkg/jwt"
	"github.com/cloudwego/hertz/pkg/app"
)

func ListNotifications(ctx context.Context, c *app.RequestContext) {
	userId, err := jwt.GetUserID(ctx, c)
	if err != nil {
		pack.SendResponse(c, err, nil)
		return
	}
	list, err := service.NewNotificationService(ctx).ListNotifications(userId)
	if err != nil {
		pack.SendResponse(c, err, nil)
		return
	}
	pack.SendResponse(c, errno.Success, list)
}

func MarkRead(ctx context.Context, c *app.RequestContext) {
	userId, err := jwt.GetUserID(ctx, c)
	if err != nil {
		pack.SendResponse(c, err, nil)
		return
	}
	n, err := service.NewNotificationService(ctx).MarkRead(c.Param("id"), userId)
	if err != nil {
		pack.SendResponse(c, err, nil)
		return
	}
	pack.SendResponse(c, errno.Success, n)
}
