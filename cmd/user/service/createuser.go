package service

import (
	"context"
	"strings"

	"VidTube.com/cmd/model"
	"VidTube.com/cmd/user/dal/db"
	"VidTube.com/pkg/constants"
	"VidTube.com/pkg/errno"
	"VidTube.com/pkg/utils"
	"github.com/cloudwego/hertz/pkg/common/hlog"
)

type CreateUserRequest struct {
	Username        string `json:"username" form:"username"`
	Email           string `json:"email" form:"email"`
	Password        string `json:"password" form:"password"`
	ConfirmPassword string `json:"confirmPassword" form:"confirmPassword"`
}

type CreateUserService struct {
	ctx context.Context
}

func NewCreateUserService(ctx context.Context) *CreateUserService {
	return &CreateUserService{ctx: ctx}
}

func (v *CreateUserService) CreateUser(req *CreateUserRequest) (*model.User, error) {
	username := strings.TrimSpace(req.Username)
	email := strings.ToLower(strings.TrimSpace(req.Email))
	if username == "" || email == "" || req.Password == "" || req.ConfirmPassword == "" {
		return nil, errno.ParamErr.WithMessage("Please provide all required fields")
	}
	if err := checkPassword(req.Password, req.ConfirmPassword); err != nil {
		return nil, err
	}

	dup, err := db.FindDuplicate(v.ctx, email, username)
	if err != nil {
		hlog.CtxErrorf(v.ctx, "FindDuplicate failed: %v", err)
		return nil, errno.ServiceErr
	}
	if dup != nil {
		if dup.Email == email {
			return nil, errno.ParamErr.WithMessage("Email already exists")
		}
		return nil, errno.ParamErr.WithMessage("Username already exists")
	}

	passWord, err := utils.Crypt(req.Password)
	if err != nil {
		hlog.CtxErrorf(v.ctx, "Password fail to crypt: %v", err)
		return nil, errno.ServiceErr
	}
	user := &model.User{
		Username: username,
		Email:    email,
		Password: passWord,
	}
	if err = db.CreateUser(v.ctx, user); err != nil {
		hlog.CtxErrorf(v.ctx, "dao.CreateUser failed: %v", err)
		return nil, errno.ServiceErr
	}
	hlog.CtxInfof(v.ctx, "user registered: id=%s username=%s", user.ID, user.Username)
	return user, nil
}

func checkPassword(password, confirm string) error {
	if len(password) < constants.MinPassword {
		return errno.ParamErr.WithMessage("Password must be at least 6 characters")
	}
	if password != confirm {
		return errno.ParamErr.WithMessage("Passwords do not match")
	}
	return nil
}
