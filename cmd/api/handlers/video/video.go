package handlers

import (
	"context"

	"VidTube.com/cmd/api/handlers/pack"
	"VidTube.com/cmd/video/service"
	"VidTube.com/pkg/errno"
	"VidTube.com/pkg/jwt"
	"github.com/cloudwego/hertz/pkg/app"
)

type MessageResponse struct {
	Message string `json:"message"`
}

type ViewResponse struct {
	Views int64 `json:"views"`
}

type ClearResponse struct {
	Message string `json:"message"`
	Deleted int64  `json:"deleted"`
}

func CreateVideo(ctx context.Context, c *app.RequestContext) {
	userId, err := jwt.GetUserID(ctx, c)
	if err != nil {
		pack.SendResponse(c, err, nil)
		return
	}
	var req service.CreateVideoRequest
	if err = c.BindAndValidate(&req); err != nil {
		pack.SendResponse(c, pack.BindErr(err), nil)
		return
	}
	video, err := service.NewVideoService(ctx).CreateVideo(userId, &req)
	if err != nil {
		pack.SendResponse(c, err, nil)
		return
	}
	pack.SendCreated(c, video)
}

func GetVideo(ctx context.Context, c *app.RequestContext) {
	detail, err := service.NewVideoService(ctx).GetVideo(c.Param("id"))
	if err != nil {
		pack.SendResponse(c, err, nil)
		return
	}
	pack.SendResponse(c, errno.Success, detail)
}

func UpdateVideo(ctx context.Context, c *app.RequestContext) {
	userId, err := jwt.GetUserID(ctx, c)
	if err != nil {
		pack.SendResponse(c, err, nil)
		return
	}
	var req service.UpdateVideoRequest
	if err = c.BindAndValidate(&req); err != nil {
		pack.SendResponse(c, pack.BindErr(err), nil)
		return
	}
	video, err := service.NewVideoService(ctx).UpdateVideo(c.Param("id"), userId, &req)
	if err != nil {
		pack.SendResponse(c, err, nil)
		return
	}
	pack.SendResponse(c, errno.Success, video)
}

func DeleteVideo(ctx context.Context, c *app.RequestContext) {
	userId, err := jwt.GetUserID(ctx, c)
	if err != nil {
		pack.SendResponse(c, err, nil)
		return
	}
	if err = service.NewVideoService(ctx).DeleteVideo(c.Param("id"), userId); err != nil {
		pack.SendResponse(c, err, nil)
		return
	}
	pack.SendResponse(c, errno.Success, MessageResponse{Message: "Video deleted successfully"})
}
