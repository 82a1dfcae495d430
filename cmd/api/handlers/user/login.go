package handlers

import (
	"context"

	"VidTube.com/cmd/api/handlers/pack"
	"VidTube.com/cmd/user/service"
	"VidTube.com/pkg/errno"
	"VidTube.com/pkg/jwt"
	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/common/hlog"
)

func LoginUser(ctx context.Context, c *app.RequestContext) {
	var req service.LoginUserRequest
	if err := c.BindAndValidate(&req); err != nil {
		pack.SendResponse(c, pack.BindErr(err), nil)
		return
	}
	user, err := service.NewLoginUserService(ctx).LoginUser(&req)
	if err != nil {
		pack.SendResponse(c, err, nil)
		return
	}
	token, _, err := jwt.GenerateToken(user.ID)
	if err != nil {
		hlog.CtxErrorf(ctx, "generate token failed: %v", err)
		pack.SendResponse(c, errno.ServiceErr, nil)
		return
	}
	pack.SendResponse(c, errno.Success, LoginResponse{Token: token, User: brief(user)})
}
