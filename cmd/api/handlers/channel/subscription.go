package handlers

import (
	"context"

	"VidTube.com/cmd/api/handlers/pack"
	"VidTube.com/cmd/channel/service"
	"VidTube.com/pkg/errno"
	"VidTube.com/pkg/jwt"
	"github.com/cloudwego/hertz/pkg/app"
)

type IsSubscribedResponse struct {
	Subscribed bool `json:"subscribed"`
}

func Subscribe(ctx context.Context, c *app.RequestContext) {
	userId, err := jwt.GetUserID(ctx, c)
	if err != nil {
		pack.SendResponse(c, err, nil)
		return
	}
	res, err := service.NewSubscriptionService(ctx).Subscribe(c.Param("id"), userId)
	if err != nil {
		pack.SendResponse(c, err, nil)
		return
	}
	pack.SendResponse(c, errno.Success, res)
}

func Unsubscribe(ctx context.Context, c *app.RequestContext) {
	userId, err := jwt.GetUserID(ctx, c)
	if err != nil {
		pack.SendResponse(c, err, nil)
		return
	}
	res, err := service.NewSubscriptionService(ctx).Unsubscribe(c.Param("id"), userId)
	if err != nil {
		pack.SendResponse(c, err, nil)
		return
	}
	pack.SendResponse(c, errno.Success, res)
}

func IsSubscribed(ctx context.Context, c *app.RequestContext) {
	userId, err := jwt.GetUserID(ctx, c)
	if err != nil {
		pack.SendResponse(c, err, nil)
		return
	}
	ok, err := service.NewSubscriptionService(ctx).IsSubscribed(c.Param("id"), userId)
	if err != nil {
		pack.SendResponse(c, err, nil)
		return
	}
	pack.SendResponse(c, errno.Success, IsSubscribedResponse{Subscribed: ok})
}

func GetSubscribers(ctx context.Context, c *app.RequestContext) {
	users, err := service.NewSubscriptionService(ctx).GetSubscribers(c.Param("id"))
	if err != nil {
		pack.SendResponse(c, err, nil)
		return
	}
	pack.SendResponse(c, errno.Success, users)
}
