package db

import (
	"context"

	"VidTube.com/cmd/model"
	"github.com/pkg/errors"
)

func CreateChannel(ctx context.Context, channel *model.Channel) error {
	if err := conn(ctx).Create(channel).Error; err != nil {
		return errors.Wrapf(err, "CreateChannel failed,err: %v", err)
	}
	return nil
}

func GetChannel(ctx context.Context, channelId string) (*model.Channel, error) {
	var channel model.Channel
	if err := conn(ctx).Where("id = ?", channelId).First(&channel).Error; err != nil {
		return nil, errors.Wrapf(err, "GetChannel failed,err:%v", err)
	}
	return &channel, nil
}

func GetChannelsByOwner(ctx context.Context, ownerId string) ([]*model.Channel, error) {
	channels := make([]*model.Channel, 0)
	if err := conn(ctx).Where("owner_id = ?", ownerId).Order("created_at ASC").Find(&channels).Error; err != nil {
		return nil, errors.Wrapf(err, "GetChannelsByOwner failed,err:%v", err)
	}
	return channels, nil
}

func ChannelNameTaken(ctx context.Context, name, exceptId string) (bool, error) {
	var count int64
	if err := conn(ctx).Model(&model.Channel{}).Where("name = ? AND id <> ?", name, exceptId).Count(&count).Error; err != nil {
		return false, errors.Wrapf(err, "ChannelNameTaken failed,err:%v", err)
	}
	return count > 0, nil
}

func UpdateChannel(ctx context.Context, channelId string, fields map[string]interface{}) error {
	if len(fields) == 0 {
		return nil
	}
	if err := conn(ctx).Model(&model.Channel{}).Where("id = ?", channelId).Updates(fields).Error; err != nil {
		return errors.Wrapf(err, "UpdateChannel failed,err:%v", err)
	}
	return nil
}

// DeleteChannel 删除频道及其订阅关系，频道下的视频保留
func DeleteChannel(ctx context.Context, channelId string) error {
	if err := conn(ctx).Where("channel_id = ?", channelId).Delete(&model.Subscription{}).Error; err != nil {
		return errors.Wrapf(err, "Delete subscriptions failed, channelId: %s", channelId)
	}
	if err := conn(ctx).Where("id = ?", channelId).Delete(&model.Channel{}).Error; err != nil {
		return errors.Wrapf(err, "Delete channel failed, channelId: %s", channelId)
	}
	return nil
}

func GetChannelVideos(ctx context.Context, channelId string) ([]*model.Video, error) {
	videos := make([]*model.Video, 0)
	if err := conn(ctx).Where("channel_id = ?", channelId).Order("created_at DESC").Find(&videos).Error; err != nil {
		return nil, errors.Wrapf(err, "GetChannelVideos failed,err:%v", err)
	}
	return videos, nil
}

func GetUser(ctx context.Context, userId string) (*model.User, error) {
	var user model.User
	if err := conn(ctx).Where("id = ?", userId).First(&user).Error; err != nil {
		return nil, errors.Wrapf(err, "GetUser failed,err:%v", err)
	}
	return &user, nil
}
