package service

import (
	"context"
	"strings"
	"unicode/utf8"

	"VidTube.com/cmd/channel/dal/db"
	"VidTube.com/cmd/model"
	"VidTube.com/pkg/cache"
	"VidTube.com/pkg/constants"
	"VidTube.com/pkg/database"
	"VidTube.com/pkg/errno"
	"github.com/cloudwego/hertz/pkg/common/hlog"
)

const channelNotFound = "Channel not found"

type CreateChannelRequest struct {
	ChannelName   string `json:"channelName" form:"channelName"`
	Description   string `json:"description" form:"description"`
	ChannelAvatar string `json:"channelAvatar" form:"channelAvatar"`
	ChannelBanner string `json:"channelBanner" form:"channelBanner"`
}

type UpdateChannelRequest struct {
	ChannelName   *string `json:"channelName" form:"channelName"`
	Description   *string `json:"description" form:"description"`
	ChannelAvatar *string `json:"channelAvatar" form:"channelAvatar"`
	ChannelBanner *string `json:"channelBanner" form:"channelBanner"`
}

type ChannelDetail struct {
	*model.Channel
	OwnerInfo *model.UserBrief `json:"ownerInfo,omitempty"`
	Videos    []*model.Video   `json:"videos"`
}

type ChannelService struct {
	ctx context.Context
}

func NewChannelService(ctx context.Context) *ChannelService {
	return &ChannelService{ctx: ctx}
}

func checkChannelName(name string) error {
	if name == "" {
		return errno.ParamErr.WithMessage("Channel name is required")
	}
	if utf8.RuneCountInString(name) > constants.MaxChannelName {
		return errno.ParamErr.WithMessage("Channel name cannot be more than 50 characters")
	}
	return nil
}

func (s *ChannelService) CreateChannel(userId string, req *CreateChannelRequest) (*model.Channel, error) {
	name := strings.TrimSpace(req.ChannelName)
	if err := checkChannelName(name); err != nil {
		return nil, err
	}
	taken, err := db.ChannelNameTaken(s.ctx, name, "")
	if err != nil {
		return nil, convertDBErr(s.ctx, err, channelNotFound)
	}
	if taken {
		return nil, errno.ParamErr.WithMessage("Channel name already exists")
	}
	channel := &model.Channel{
		Name:        name,
		OwnerID:     userId,
		Description: req.Description,
		Avatar:      req.ChannelAvatar,
		Banner:      req.ChannelBanner,
	}
	if err = db.CreateChannel(s.ctx, channel); err != nil {
		return nil, convertDBErr(s.ctx, err, channelNotFound)
	}
	hlog.CtxInfof(s.ctx, "channel %s created by %s", channel.ID, userId)
	return channel, nil
}

// GetChannel 频道详情，视频按创建时间倒序
func (s *ChannelService) GetChannel(channelId string) (*ChannelDetail, error) {
	channel, err := db.GetChannel(s.ctx, channelId)
	if err != nil {
		return nil, convertDBErr(s.ctx, err, channelNotFound)
	}
	detail := &ChannelDetail{Channel: channel}
	if owner, err := db.GetUser(s.ctx, channel.OwnerID); err == nil {
		detail.OwnerInfo = owner.Brief()
	}
	if detail.Videos, err = db.GetChannelVideos(s.ctx, channelId); err != nil {
		return nil, convertDBErr(s.ctx, err, channelNotFound)
	}
	return detail, nil
}

func (s *ChannelService) GetChannelVideos(channelId string) ([]*model.Video, error) {
	if _, err := db.GetChannel(s.ctx, channelId); err != nil {
		return nil, convertDBErr(s.ctx, err, channelNotFound)
	}
	videos, err := db.GetChannelVideos(s.ctx, channelId)
	if err != nil {
		return nil, convertDBErr(s.ctx, err, channelNotFound)
	}
	return videos, nil
}

func (s *ChannelService) GetUserChannels(userId string) ([]*model.Channel, error) {
	channels, err := db.GetChannelsByOwner(s.ctx, userId)
	if err != nil {
		return nil, convertDBErr(s.ctx, err, channelNotFound)
	}
	return channels, nil
}

func (s *ChannelService) UpdateChannel(channelId, userId string, req *UpdateChannelRequest) (*model.Channel, error) {
	channel, err := db.GetChannel(s.ctx, channelId)
	if err != nil {
		return nil, convertDBErr(s.ctx, err, channelNotFound)
	}
	if channel.OwnerID != userId {
		return nil, errno.AuthorizationFailedErr.WithMessage("Not authorized to update this channel")
	}
	fields := make(map[string]interface{})
	if req.ChannelName != nil {
		name := strings.TrimSpace(*req.ChannelName)
		if err := checkChannelName(name); err != nil {
			return nil, err
		}
		if name != channel.Name {
			taken, err := db.ChannelNameTaken(s.ctx, name, channelId)
			if err != nil {
				return nil, convertDBErr(s.ctx, err, channelNotFound)
			}
			if taken {
				return nil, errno.ParamErr.WithMessage("Channel name already exists")
			}
			fields["name"] = name
		}
	}
	if req.Description != nil {
		fields["description"] = *req.Description
	}
	if req.ChannelAvatar != nil {
		fields["avatar"] = *req.ChannelAvatar
	}
	if req.ChannelBanner != nil {
		fields["banner"] = *req.ChannelBanner
	}
	if err = db.UpdateChannel(s.ctx, channelId, fields); err != nil {
		return nil, convertDBErr(s.ctx, err, channelNotFound)
	}
	channel, err = db.GetChannel(s.ctx, channelId)
	return channel, convertDBErr(s.ctx, err, channelNotFound)
}

// DeleteChannel 仅删除频道与订阅关系，视频不级联删除
func (s *ChannelService) DeleteChannel(channelId, userId string) error {
	err := database.Transaction(s.ctx, db.DB, func(ctx context.Context) error {
		channel, err := db.GetChannel(ctx, channelId)
		if err != nil {
			return err
		}
		if channel.OwnerID != userId {
			return errno.AuthorizationFailedErr.WithMessage("Not authorized to delete this channel")
		}
		return db.DeleteChannel(ctx, channelId)
	})
	if err != nil {
		return convertDBErr(s.ctx, err, channelNotFound)
	}
	cache.ForgetChannel(s.ctx, channelId)
	return nil
}
