package db

import (
	"context"

	"VidTube.com/cmd/model"
	"VidTube.com/pkg/constants"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

func GetVideoInfo(ctx context.Context, videoId string) (*model.Video, error) {
	var video model.Video
	if err := conn(ctx).Where("id = ?", videoId).First(&video).Error; err != nil {
		return nil, errors.Wrapf(err, "GetVideoInfo failed,err:%v", err)
	}
	return &video, nil
}

// GetReaction 返回用户当前对视频的态度，没有记录时返回 none
func GetReaction(ctx context.Context, videoId, userId string) (string, error) {
	var reaction model.VideoReaction
	err := conn(ctx).Where("video_id = ? AND user_id = ?", videoId, userId).First(&reaction).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return constants.ReactionNone, nil
	}
	if err != nil {
		return "", errors.Wrapf(err, "GetReaction failed,err:%v", err)
	}
	return reaction.Kind, nil
}

// SaveReaction 写入或切换用户的态度，同一用户对同一视频只有一行
func SaveReaction(ctx context.Context, videoId, userId, kind string) error {
	res := conn(ctx).Model(&model.VideoReaction{}).
		Where("video_id = ? AND user_id = ?", videoId, userId).
		Update("kind", kind)
	if res.Error != nil {
		return errors.Wrapf(res.Error, "Update reaction failed,err:%v", res.Error)
	}
	if res.RowsAffected > 0 {
		return nil
	}
	if err := conn(ctx).Create(&model.VideoReaction{
		VideoID: videoId,
		UserID:  userId,
		Kind:    kind,
	}).Error; err != nil {
		return errors.Wrapf(err, "Create reaction failed,err:%v", err)
	}
	return nil
}

func DeleteReaction(ctx context.Context, videoId, userId string) error {
	if err := conn(ctx).Where("video_id = ? AND user_id = ?", videoId, userId).Delete(&model.VideoReaction{}).Error; err != nil {
		return errors.Wrapf(err, "DeleteReaction failed,err:%v", err)
	}
	return nil
}

// SyncVideoReactionCounts 以态度表为准重算视频的 likes/dislikes
func SyncVideoReactionCounts(ctx context.Context, videoId string) (likes, dislikes int64, err error) {
	type row struct {
		Kind  string
		Total int64
	}
	var rows []row
	if err = conn(ctx).Model(&model.VideoReaction{}).
		Select("kind, COUNT(*) AS total").
		Where("video_id = ?", videoId).
		Group("kind").
		Scan(&rows).Error; err != nil {
		return 0, 0, errors.Wrapf(err, "Count reactions failed,err:%v", err)
	}
	for _, r := range rows {
		switch r.Kind {
		case constants.ReactionLike:
			likes = r.Total
		case constants.ReactionDislike:
			dislikes = r.Total
		}
	}
	if err = conn(ctx).Model(&model.Video{}).Where("id = ?", videoId).
		Updates(map[string]interface{}{"likes": likes, "dislikes": dislikes}).Error; err != nil {
		return 0, 0, errors.Wrapf(err, "Update video counts failed,err:%v", err)
	}
	return likes, dislikes, nil
}
