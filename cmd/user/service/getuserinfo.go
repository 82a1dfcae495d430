package service

import (
	"context"

	"VidTube.com/cmd/model"
	"VidTube.com/cmd/user/dal/db"
	"VidTube.com/pkg/constants"
	"VidTube.com/pkg/errno"
	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type UserInfo struct {
	*model.User
	Channels      []*model.Channel  `json:"channels"`
	Subscriptions []*model.Channel  `json:"subscriptions"`
	Playlists     []*model.Playlist `json:"playlists"`
}

type GetUserInfoService struct {
	ctx context.Context
}

func NewGetUserInfoService(ctx context.Context) *GetUserInfoService {
	return &GetUserInfoService{ctx: ctx}
}

// loadUser 统一把记录不存在映射为 NotFound
func loadUser(ctx context.Context, userId string) (*model.User, error) {
	user, err := db.GetUser(ctx, userId)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, errno.NotFoundErr.WithMessage("User not found")
	}
	if err != nil {
		hlog.CtxErrorf(ctx, "dao.GetUser failed: %v", err)
		return nil, errno.ServiceErr
	}
	return user, nil
}

func (s *GetUserInfoService) GetUserInfo(userId string) (*UserInfo, error) {
	user, err := loadUser(s.ctx, userId)
	if err != nil {
		return nil, err
	}
	info := &UserInfo{User: user}
	if info.Channels, err = db.GetOwnedChannels(s.ctx, userId); err != nil {
		hlog.CtxErrorf(s.ctx, "dao.GetOwnedChannels failed: %v", err)
		return nil, errno.ServiceErr
	}
	if info.Subscriptions, err = db.GetSubscribedChannels(s.ctx, userId); err != nil {
		hlog.CtxErrorf(s.ctx, "dao.GetSubscribedChannels failed: %v", err)
		return nil, errno.ServiceErr
	}
	if info.Playlists, err = db.GetOwnedPlaylists(s.ctx, userId); err != nil {
		hlog.CtxErrorf(s.ctx, "dao.GetOwnedPlaylists failed: %v", err)
		return nil, errno.ServiceErr
	}
	return info, nil
}

func (s *GetUserInfoService) GetSubscriptions(userId string) ([]*model.Channel, error) {
	if _, err := loadUser(s.ctx, userId); err != nil {
		return nil, err
	}
	channels, err := db.GetSubscribedChannels(s.ctx, userId)
	if err != nil {
		hlog.CtxErrorf(s.ctx, "dao.GetSubscribedChannels failed: %v", err)
		return nil, errno.ServiceErr
	}
	return channels, nil
}

// GetLikedVideos 与视频上的点赞集合读取同一张表，两侧始终一致
func (s *GetUserInfoService) GetLikedVideos(userId string) ([]*model.Video, error) {
	if _, err := loadUser(s.ctx, userId); err != nil {
		return nil, err
	}
	videos, err := db.GetReactedVideos(s.ctx, userId, constants.ReactionLike)
	if err != nil {
		hlog.CtxErrorf(s.ctx, "dao.GetReactedVideos failed: %v", err)
		return nil, errno.ServiceErr
	}
	return videos, nil
}
