package service

import (
	"context"
	"strings"

	"VidTube.com/cmd/model"
	"VidTube.com/cmd/user/dal/db"
	"VidTube.com/pkg/errno"
	"github.com/cloudwego/hertz/pkg/common/hlog"
)

type UpdateUserRequest struct {
	Username *string `json:"username" form:"username"`
	Bio      *string `json:"bio" form:"bio"`
	Avatar   *string `json:"avatar" form:"avatar"`
}

type UpdateUserService struct {
	ctx context.Context
}

func NewUpdateUserService(ctx context.Context) *UpdateUserService {
	return &UpdateUserService{ctx: ctx}
}

func (s *UpdateUserService) UpdateUser(userId string, req *UpdateUserRequest) (*model.User, error) {
	user, err := loadUser(s.ctx, userId)
	if err != nil {
		return nil, err
	}
	fields := make(map[string]interface{})
	if req.Username != nil {
		username := strings.TrimSpace(*req.Username)
		if username == "" {
			return nil, errno.ParamErr.WithMessage("Username cannot be empty")
		}
		if username != user.Username {
			taken, err := db.UsernameTaken(s.ctx, username, userId)
			if err != nil {
				hlog.CtxErrorf(s.ctx, "dao.UsernameTaken failed: %v", err)
				return nil, errno.ServiceErr
			}
			if taken {
				return nil, errno.ParamErr.WithMessage("Username already exists")
			}
			fields["username"] = username
		}
	}
	if req.Bio != nil {
		fields["bio"] = *req.Bio
	}
	if req.Avatar != nil {
		fields["avatar"] = *req.Avatar
	}
	if err = db.UpdateUser(s.ctx, userId, fields); err != nil {
		hlog.CtxErrorf(s.ctx, "dao.UpdateUser failed: %v", err)
		return nil, errno.ServiceErr
	}
	return loadUser(s.ctx, userId)
}
