package handlers

import (
	"context"

	"VidTube.com/cmd/api/handlers/pack"
	"VidTube.com/cmd/interaction/service"
	"VidTube.com/pkg/errno"
	"VidTube.com/pkg/jwt"
	"github.com/cloudwego/hertz/pkg/app"
)

type UpdateCommentParam struct {
	Text string `json:"text" form:"text"`
}

type ListCommentParam struct {
	SortBy string `query:"sortBy"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

func CreateComment(ctx context.Context, c *app.RequestContext) {
	userId, err := jwt.GetUserID(ctx, c)
	if err != nil {
		pack.SendResponse(c, err, nil)
		return
	}
	var req service.CreateCommentRequest
	if err = c.BindAndValidate(&req); err != nil {
		pack.SendResponse(c, pack.BindErr(err), nil)
		return
	}
	comment, err := service.NewCommentService(ctx).CreateComment(userId, &req)
	if err != nil {
		pack.SendResponse(c, err, nil)
		return
	}
	pack.SendCreated(c, comment)
}

func GetComment(ctx context.Context, c *app.RequestContext) {
	comment, err := service.NewCommentService(ctx).GetComment(c.Param("id"))
	if err != nil {
		pack.SendResponse(c, err, nil)
		return
	}
	pack.SendResponse(c, errno.Success, comment)
}

func UpdateComment(ctx context.Context, c *app.RequestContext) {
	userId, err := jwt.GetUserID(ctx, c)
	if err != nil {
		pack.SendResponse(c, err, nil)
		return
	}
	var req UpdateCommentParam
	if err = c.BindAndValidate(&req); err != nil {
		pack.SendResponse(c, pack.BindErr(err), nil)
		return
	}
	comment, err := service.NewCommentService(ctx).UpdateComment(c.Param("id"), userId, req.Text)
	if err != nil {
		pack.SendResponse(c, err, nil)
		return
	}
	pack.SendResponse(c, errno.Success, comment)
}

func DeleteComment(ctx context.Context, c *app.RequestContext) {
	userId, err := jwt.GetUserID(ctx, c)
	if err != nil {
		pack.SendResponse(c, err, nil)
		return
	}
	if err = service.NewCommentService(ctx).DeleteComment(c.Param("id"), userId); err != nil {
		pack.SendResponse(c, err, nil)
		return
	}
	pack.SendResponse(c, errno.Success, MessageResponse{Message: "Comment deleted successfully"})
}

func ListVideoComments(ctx context.Context, c *app.RequestContext) {
	var req ListCommentParam
	if err := c.BindAndValidate(&req); err != nil {
		pack.SendResponse(c, pack.BindErr(err), nil)
		return
	}
	comments, err := service.NewCommentService(ctx).GetVideoCommentWithSort(c.Param("videoId"), req.SortBy)
	if err != nil {
		pack.SendResponse(c, err, nil)
		return
	}
	pack.SendResponse(c, errno.Success, comments)
}

func LikeComment(ctx context.Context, c *app.RequestContext) {
	commentLike(ctx, c, true)
}

func UnlikeComment(ctx context.Context, c *app.RequestContext) {
	commentLike(ctx, c, false)
}

func commentLike(ctx context.Context, c *app.RequestContext, like bool) {
	userId, err := jwt.GetUserID(ctx, c)
	if err != nil {
		pack.SendResponse(c, err, nil)
		return
	}
	svc := service.NewCommentService(ctx)
	var res *service.CommentLikeResult
	if like {
		res, err = svc.LikeComment(c.Param("id"), userId)
	} else {
		res, err = svc.UnlikeComment(c.Param("id"), userId)
	}
	if err != nil {
		pack.SendResponse(c, err, nil)
		return
	}
	pack.SendResponse(c, errno.Success, res)
}
