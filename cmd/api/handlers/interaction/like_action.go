package handlers

import (
	"context"

	"VidTube.com/cmd/api/handlers/pack"
	"VidTube.com/cmd/interaction/service"
	"VidTube.com/pkg/errno"
	"VidTube.com/pkg/jwt"
	"github.com/cloudwego/hertz/pkg/app"
)

type reactionFunc func(s *service.LikeActionService, videoId, userId string) (*service.ReactionResult, error)

func reactionHandler(fn reactionFunc) app.HandlerFunc {
	return func(ctx context.Context, c *app.RequestContext) {
		userId, err := jwt.GetUserID(ctx, c)
		if err != nil {
			pack.SendResponse(c, err, nil)
			return
		}
		res, err := fn(service.NewLikeActionService(ctx), c.Param("id"), userId)
		if err != nil {
			pack.SendResponse(c, err, nil)
			return
		}
		pack.SendResponse(c, errno.Success, res)
	}
}

var (
	Like      = reactionHandler((*service.LikeActionService).Like)
	Unlike    = reactionHandler((*service.LikeActionService).Unlike)
	Dislike   = reactionHandler((*service.LikeActionService).Dislike)
	Undislike = reactionHandler((*service.LikeActionService).Undislike)
	Reaction  = reactionHandler((*service.LikeActionService).GetReaction)
)

type SetReactionParam struct {
	Reaction string `json:"reaction" form:"reaction"`
}

// SetReaction 直接切换到 like / dislike / none
func SetReaction(ctx context.Context, c *app.RequestContext) {
	var req SetReactionParam
	if err := c.BindAndValidate(&req); err != nil {
		pack.SendResponse(c, pack.BindErr(err), nil)
		return
	}
	reactionHandler(func(s *service.LikeActionService, videoId, userId string) (*service.ReactionResult, error) {
		return s.SetReaction(videoId, userId, req.Reaction)
	})(ctx, c)
}
