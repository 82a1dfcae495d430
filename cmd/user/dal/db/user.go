package db

import (
	"context"

	"VidTube.com/cmd/model"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

func CreateUser(ctx context.Context, user *model.User) error {
	if err := conn(ctx).Create(user).Error; err != nil {
		return errors.Wrapf(err, "CreateUser failed,err: %v", err)
	}
	return nil
}

func GetUser(ctx context.Context, userId string) (*model.User, error) {
	var user model.User
	if err := conn(ctx).Where("id = ?", userId).First(&user).Error; err != nil {
		return nil, errors.Wrapf(err, "GetUser failed,err:%v", err)
	}
	return &user, nil
}

func GetUserByEmail(ctx context.Context, email string) (*model.User, error) {
	var user model.User
	if err := conn(ctx).Where("email = ?", email).First(&user).Error; err != nil {
		return nil, errors.Wrapf(err, "GetUserByEmail failed,err:%v", err)
	}
	return &user, nil
}

// FindDuplicate 返回与给定邮箱或用户名冲突的第一个用户，没有则返回 nil
func FindDuplicate(ctx context.Context, email, username string) (*model.User, error) {
	var users []*model.User
	if err := conn(ctx).Where("email = ? OR username = ?", email, username).Limit(1).Find(&users).Error; err != nil {
		return nil, errors.Wrapf(err, "FindDuplicate failed,err:%v", err)
	}
	if len(users) == 0 {
		return nil, nil
	}
	return users[0], nil
}

func UsernameTaken(ctx context.Context, username, exceptUserId string) (bool, error) {
	var count int64
	if err := conn(ctx).Model(&model.User{}).Where("username = ? AND id <> ?", username, exceptUserId).Count(&count).Error; err != nil {
		return false, errors.Wrapf(err, "UsernameTaken failed,err:%v", err)
	}
	return count > 0, nil
}

func UpdateUser(ctx context.Context, userId string, fields map[string]interface{}) error {
	if len(fields) == 0 {
		return nil
	}
	if err := conn(ctx).Model(&model.User{}).Where("id = ?", userId).Updates(fields).Error; err != nil {
		return errors.Wrapf(err, "Update user failed,err: %v", err)
	}
	return nil
}

// UpdateUserPassword 专门用于更新用户密码
func UpdateUserPassword(ctx context.Context, userId string, hashed string) error {
	if err := conn(ctx).Model(&model.User{}).Where("id = ?", userId).Update("password", hashed).Error; err != nil {
		return errors.Wrapf(err, "Update user password failed,err: %v", err)
	}
	return nil
}

func DeleteUser(ctx context.Context, userId string) error {
	if err := conn(ctx).Where("id = ?", userId).Delete(&model.User{}).Error; err != nil {
		logrus.Info(err)
		return errors.Wrapf(err, "Delete user failed, userId: %s", userId)
	}
	return nil
}

func GetOwnedChannels(ctx context.Context, userId string) ([]*model.Channel, error) {
	channels := make([]*model.Channel, 0)
	if err := conn(ctx).Where("owner_id = ?", userId).Order("created_at ASC").Find(&channels).Error; err != nil {
		return nil, errors.Wrapf(err, "GetOwnedChannels failed,err:%v", err)
	}
	return channels, nil
}

func GetSubscribedChannels(ctx context.Context, userId string) ([]*model.Channel, error) {
	channels := make([]*model.Channel, 0)
	if err := conn(ctx).Model(&model.Channel{}).
		Joins("JOIN subscriptions ON subscriptions.channel_id = channels.id").
		Where("subscriptions.user_id = ?", userId).
		Order("subscriptions.created_at ASC").
		Find(&channels).Error; err != nil {
		return nil, errors.Wrapf(err, "GetSubscribedChannels failed,err:%v", err)
	}
	return channels, nil
}

func GetOwnedPlaylists(ctx context.Context, userId string) ([]*model.Playlist, error) {
	playlists := make([]*model.Playlist, 0)
	if err := conn(ctx).Where("owner_id = ?", userId).Order("created_at ASC").Find(&playlists).Error; err != nil {
		return nil, errors.Wrapf(err, "GetOwnedPlaylists failed,err:%v", err)
	}
	return playlists, nil
}

// GetReactedVideos 返回用户点赞(或点踩)过的视频，顺序为最近一次操作在前
func GetReactedVideos(ctx context.Context, userId, kind string) ([]*model.Video, error) {
	videos := make([]*model.Video, 0)
	if err := conn(ctx).Model(&model.Video{}).
		Joins("JOIN video_reactions ON video_reactions.video_id = videos.id").
		Where("video_reactions.user_id = ? AND video_reactions.kind = ?", userId, kind).
		Order("video_reactions.updated_at DESC").
		Find(&videos).Error; err != nil {
		return nil, errors.Wrapf(err, "GetReactedVideos failed,err:%v", err)
	}
	return videos, nil
}
