package db

import (
	"context"

	"VidTube.com/cmd/model"
	"github.com/pkg/errors"
)

// 通知接收者的查询，只读其它领域的表

func GetVideo(ctx context.Context, videoId string) (*model.Video, error) {
	var v model.Video
	if err := conn(ctx).Select("id", "title", "channel_id", "uploader_id").
		Where("id = ?", videoId).First(&v).Error; err != nil {
		return nil, errors.Wrapf(err, "GetVideo failed,err:%v", err)
	}
	return &v, nil
}

func GetComment(ctx context.Context, commentId string) (*model.Comment, error) {
	var c model.Comment
	if err := conn(ctx).Where("id = ?", commentId).First(&c).Error; err != nil {
		return nil, errors.Wrapf(err, "GetComment failed,err:%v", err)
	}
	return &c, nil
}

func GetChannel(ctx context.Context, channelId string) (*model.Channel, error) {
	var c model.Channel
	if err := conn(ctx).Where("id = ?", channelId).First(&c).Error; err != nil {
		return nil, errors.Wrapf(err, "GetChannel failed,err:%v", err)
	}
	return &c, nil
}

func GetUser(ctx context.Context, userId string) (*model.User, error) {
	var u model.User
	if err := conn(ctx).Select("id", "username", "avatar").
		Where("id = ?", userId).First(&u).Error; err != nil {
		return nil, errors.Wrapf(err, "GetUser failed,err:%v", err)
	}
	return &u, nil
}

func GetSubscriberIds(ctx context.Context, channelId string) ([]string, error) {
	ids := make([]string, 0)
	if err := conn(ctx).Model(&model.Subscription{}).
		Where("channel_id = ?", channelId).
		Order("created_at ASC").
		Pluck("user_id", &ids).Error; err != nil {
		return nil, errors.Wrapf(err, "GetSubscriberIds failed,err:%v", err)
	}
	return ids, nil
}
