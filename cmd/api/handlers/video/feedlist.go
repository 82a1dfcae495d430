package handlers

import (
	"context"

	"VidTube.com/cmd/api/handlers/pack"
	"VidTube.com/cmd/video/service"
	"VidTube.com/pkg/errno"
	"github.com/cloudwego/hertz/pkg/app"
)

func ListVideos(ctx context.Context, c *app.RequestContext) {
	var req service.ListVideosRequest
	if err := c.BindAndValidate(&req); err != nil {
		pack.SendResponse(c, pack.BindErr(err), nil)
		return
	}
	videos, err := service.NewVideoListService(ctx).VideoList(&req)
	if err != nil {
		pack.SendResponse(c, err, nil)
		return
	}
	pack.SendResponse(c, errno.Success, videos)
}

func Suggest(ctx context.Context, c *app.RequestContext) {
	out, err := service.NewVideoListService(ctx).Suggest(c.Param("query"))
	if err != nil {
		pack.SendResponse(c, err, nil)
		return
	}
	pack.SendResponse(c, errno.Success, out)
}
