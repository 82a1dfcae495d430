package handlers

import (
	"context"

	"VidTube.com/cmd/api/handlers/pack"
	"VidTube.com/cmd/user/service"
	"github.com/cloudwego/hertz/pkg/app"
)

func Register(ctx context.Context, c *app.RequestContext) {
	var req service.CreateUserRequest
	if err := c.BindAndValidate(&req); err != nil {
		pack.SendResponse(c, pack.BindErr(err), nil)
		return
	}
	if _, err := service.NewCreateUserService(ctx).CreateUser(&req); err != nil {
		pack.SendResponse(c, err, nil)
		return
	}
	pack.SendCreated(c, MessageResponse{Message: "User registered successfully"})
}
