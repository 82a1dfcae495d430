package service

import (
	"context"

	"VidTube.com/cmd/user/dal/db"
	"VidTube.com/pkg/errno"
	"VidTube.com/pkg/utils"
	"github.com/cloudwego/hertz/pkg/common/hlog"
)

type DeleteUserRequest struct {
	Password string `json:"password" form:"password"`
}

type DeleteUserService struct {
	ctx context.Context
}

func NewDeleteUserService(ctx context.Context) *DeleteUserService {
	return &DeleteUserService{ctx: ctx}
}

// DeleteUser 只删除用户记录本身，频道、评论等保留
func (s *DeleteUserService) DeleteUser(userId string, req *DeleteUserRequest) error {
	if req.Password == "" {
		return errno.ParamErr.WithMessage("Please provide your password")
	}
	user, err := loadUser(s.ctx, userId)
	if err != nil {
		return err
	}
	if !utils.VerifyPassword(req.Password, user.Password) {
		return errno.TokenInvalidErr.WithMessage("Invalid password")
	}
	if err = db.DeleteUser(s.ctx, userId); err != nil {
		hlog.CtxErrorf(s.ctx, "dao.DeleteUser failed: %v", err)
		return errno.ServiceErr
	}
	return nil
}
