package handlers

import (
	"context"

	"VidTube.com/cmd/api/handlers/pack"
	"VidTube.com/cmd/video/service"
	"VidTube.com/pkg/errno"
	"VidTube.com/pkg/jwt"
	"github.com/cloudwego/hertz/pkg/app"
)

type AddVideoParam struct {
	VideoId string `json:"videoId" form:"videoId"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

func CreatePlaylist(ctx context.Context, c *app.RequestContext) {
	userId, err := jwt.GetUserID(ctx, c)
	if err != nil {
		pack.SendResponse(c, err, nil)
		return
	}
	var req service.CreatePlaylistRequest
	if err = c.BindAndValidate(&req); err != nil {
		pack.SendResponse(c, pack.BindErr(err), nil)
		return
	}
	playlist, err := service.NewPlaylistService(ctx).CreatePlaylist(userId, &req)
	if err != nil {
		pack.SendResponse(c, err, nil)
		return
	}
	pack.SendCreated(c, playlist)
}

func GetMyPlaylists(ctx context.Context, c *app.RequestContext) {
	userId, err := jwt.GetUserID(ctx, c)
	if err != nil {
		pack.SendResponse(c, err, nil)
		return
	}
	playlists, err := service.NewPlaylistService(ctx).GetUserPlaylists(userId)
	if err != nil {
		pack.SendResponse(c, err, nil)
		return
	}
	pack.SendResponse(c, errno.Success, playlists)
}

func GetPlaylist(ctx context.Context, c *app.RequestContext) {
	userId, err := jwt.GetUserID(ctx, c)
	if err != nil {
		pack.SendResponse(c, err, nil)
		return
	}
	playlist, err := service.NewPlaylistService(ctx).GetPlaylist(c.Param("id"), userId)
	if err != nil {
		pack.SendResponse(c, err, nil)
		return
	}
	pack.SendResponse(c, errno.Success, playlist)
}

func UpdatePlaylist(ctx context.Context, c *app.RequestContext) {
	userId, err := jwt.GetUserID(ctx, c)
	if err != nil {
		pack.SendResponse(c, err, nil)
		return
	}
	var req service.UpdatePlaylistRequest
	if err = c.BindAndValidate(&req); err != nil {
		pack.SendResponse(c, pack.BindErr(err), nil)
		return
	}
	playlist, err := service.NewPlaylistService(ctx).UpdatePlaylist(c.Param("id"), userId, &req)
	if err != nil {
		pack.SendResponse(c, err, nil)
		return
	}
	pack.SendResponse(c, errno.Success, playlist)
}

func DeletePlaylist(ctx context.Context, c *app.RequestContext) {
	userId, err := jwt.GetUserID(ctx, c)
	if err != nil {
		pack.SendResponse(c, err, nil)
		return
	}
	if err = service.NewPlaylistService(ctx).DeletePlaylist(c.Param("id"), userId); err != nil {
		pack.SendResponse(c, err, nil)
		return
	}
	pack.SendResponse(c, errno.Success, MessageResponse{Message: "Playlist deleted successfully"})
}

func AddVideo(ctx context.Context, c *app.RequestContext) {
	userId, err := jwt.GetUserID(ctx, c)
	if err != nil {
		pack.SendResponse(c, err, nil)
		return
	}
	var req AddVideoParam
	if err = c.BindAndValidate(&req); err != nil {
		pack.SendResponse(c, pack.BindErr(err), nil)
		return
	}
	playlist, err := service.NewPlaylistService(ctx).AddVideo(c.Param("id"), userId, req.VideoId)
	if err != nil {
		pack.SendResponse(c, err, nil)
		return
	}
	pack.SendResponse(c, errno.Success, playlist)
}

func RemoveVideo(ctx context.Context, c *app.RequestContext) {
	userId, err := jwt.GetUserID(ctx, c)
	if err != nil {
		pack.SendResponse(c, err, nil)
		return
	}
	playlist, err := service.NewPlaylistService(ctx).RemoveVideo(c.Param("id"), userId, c.Param("videoId"))
	if err != nil {
		pack.SendResponse(c, err, nil)
		return
	}
	pack.SendResponse(c, errno.Success, playlist)
}
