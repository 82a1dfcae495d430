package handlers

import "VidTube.com/cmd/model"

type LoginResponse struct {
	Token string          `json:"token"`
	User  *LoginUserBrief `json:"user"`
}

type LoginUserBrief struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Avatar   string `json:"avatar"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

func brief(u *model.User) *LoginUserBrief {
	return &LoginUserBrief{ID: u.ID, Username: u.Username, Email: u.Email, Avatar: u.Avatar}
}
