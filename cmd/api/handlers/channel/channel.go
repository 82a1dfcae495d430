package handlers

import (
	"context"

	"VidTube.com/cmd/api/handlers/pack"
	"VidTube.com/cmd/channel/service"
	"VidTube.com/pkg/errno"
	"VidTube.com/pkg/jwt"
	"github.com/cloudwego/hertz/pkg/app"
)

type MessageResponse struct {
	Message string `json:"message"`
}

func CreateChannel(ctx context.Context, c *app.RequestContext) {
	userId, err := jwt.GetUserID(ctx, c)
	if err != nil {
		pack.SendResponse(c, err, nil)
		return
	}
	var req service.CreateChannelRequest
	if err = c.BindAndValidate(&req); err != nil {
		pack.SendResponse(c, pack.BindErr(err), nil)
		return
	}
	channel, err := service.NewChannelService(ctx).CreateChannel(userId, &req)
	if err != nil {
		pack.SendResponse(c, err, nil)
		return
	}
	pack.SendCreated(c, channel)
}

func GetChannel(ctx context.Context, c *app.RequestContext) {
	detail, err := service.NewChannelService(ctx).GetChannel(c.Param("id"))
	if err != nil {
		pack.SendResponse(c, err, nil)
		return
	}
	pack.SendResponse(c, errno.Success, detail)
}

func GetChannelVideos(ctx context.Context, c *app.RequestContext) {
	videos, err := service.NewChannelService(ctx).GetChannelVideos(c.Param("id"))
	if err != nil {
		pack.SendResponse(c, err, nil)
		return
	}
	pack.SendResponse(c, errno.Success, videos)
}

func GetMyChannels(ctx context.Context, c *app.RequestContext) {
	userId, err := jwt.GetUserID(ctx, c)
	if err != nil {
		pack.SendResponse(c, err, nil)
		return
	}
	channels, err := service.NewChannelService(ctx).GetUserChannels(userId)
	if err != nil {
		pack.SendResponse(c, err, nil)
		return
	}
	pack.SendResponse(c, errno.Success, channels)
}

func UpdateChannel(ctx context.Context, c *app.RequestContext) {
	userId, err := jwt.GetUserID(ctx, c)
	if err != nil {
		pack.SendResponse(c, err, nil)
		return
	}
	var req service.UpdateChannelRequest
	if err = c.BindAndValidate(&req); err != nil {
		pack.SendResponse(c, pack.BindErr(err), nil)
		return
	}
	channel, err := service.NewChannelService(ctx).UpdateChannel(c.Param("id"), userId, &req)
	if err != nil {
		pack.SendResponse(c, err, nil)
		return
	}
	pack.SendResponse(c, errno.Success, channel)
}

func DeleteChannel(ctx context.Context, c *app.RequestContext) {
	userId, err := jwt.GetUserID(ctx, c)
	if err != nil {
		pack.SendResponse(c, err, nil)
		return
	}
	if err = service.NewChannelService(ctx).DeleteChannel(c.Param("id"), userId); err != nil {
		pack.SendResponse(c, err, nil)
		return
	}
	pack.SendResponse(c, errno.Success, MessageResponse{Message: "Channel deleted successfully"})
}
