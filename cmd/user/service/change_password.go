package service

import (
	"context"

	"VidTube.com/cmd/user/dal/db"
	"VidTube.com/pkg/errno"
	"VidTube.com/pkg/utils"
	"github.com/cloudwego/hertz/pkg/common/hlog"
)

type ChangePasswordRequest struct {
	CurrentPassword string `json:"currentPassword" form:"currentPassword"`
	NewPassword     string `json:"newPassword" form:"newPassword"`
	ConfirmPassword string `json:"confirmPassword" form:"confirmPassword"`
}

type ChangePasswordService struct {
	ctx context.Context
}

func NewChangePasswordService(ctx context.Context) *ChangePasswordService {
	return &ChangePasswordService{ctx: ctx}
}

func (s *ChangePasswordService) ChangePassword(userId string, req *ChangePasswordRequest) error {
	// 1. 参数验证
	if req.CurrentPassword == "" || req.NewPassword == "" || req.ConfirmPassword == "" {
		return errno.ParamErr.WithMessage("Please provide all required fields")
	}
	if err := checkPassword(req.NewPassword, req.ConfirmPassword); err != nil {
		return err
	}

	// 2. 校验旧密码
	user, err := loadUser(s.ctx, userId)
	if err != nil {
		return err
	}
	if !utils.VerifyPassword(req.CurrentPassword, user.Password) {
		return errno.TokenInvalidErr.WithMessage("Current password is incorrect")
	}

	// 3. 写入新密码
	hashed, err := utils.Crypt(req.NewPassword)
	if err != nil {
		hlog.CtxErrorf(s.ctx, "Password fail to crypt: %v", err)
		return errno.ServiceErr
	}
	if err = db.UpdateUserPassword(s.ctx, userId, hashed); err != nil {
		hlog.CtxErrorf(s.ctx, "dao.UpdateUserPassword failed: %v", err)
		return errno.ServiceErr
	}
	hlog.CtxInfof(s.ctx, "password changed for user %s", userId)
	return nil
}
