package service

import (
	"context"
	"strings"

	"VidTube.com/cmd/model"
	"VidTube.com/cmd/user/dal/db"
	"VidTube.com/pkg/errno"
	"VidTube.com/pkg/utils"
	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type LoginUserRequest struct {
	Email    string `json:"email" form:"email"`
	Password string `json:"password" form:"password"`
}

type LoginuserService struct {
	ctx context.Context
}

func NewLoginUserService(ctx context.Context) *LoginuserService {
	return &LoginuserService{ctx: ctx}
}

func (v *LoginuserService) LoginUser(req *LoginUserRequest) (*model.User, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))
	if email == "" || req.Password == "" {
		return nil, errno.ParamErr.WithMessage("Please provide email and password")
	}
	user, err := db.GetUserByEmail(v.ctx, email)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, errno.NotFoundErr.WithMessage("User not found")
	}
	if err != nil {
		hlog.CtxErrorf(v.ctx, "dao.GetUserByEmail failed: %v", err)
		return nil, errno.ServiceErr
	}
	if !utils.VerifyPassword(req.Password, user.Password) {
		return nil, errno.TokenInvalidErr.WithMessage("Invalid password")
	}
	return user, nil
}
