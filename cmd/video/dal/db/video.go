package db

import (
	"context"

	"VidTube.com/cmd/model"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// VideoFilter 视频列表的筛选条件
type VideoFilter struct {
	Category string
	Keyword  string
	// 非空时只返回这些 id（来自搜索引擎）
	IDs   []string
	Order string
	Limit int
}

func InsertVideo(ctx context.Context, video *model.Video) error {
	if err := conn(ctx).Create(video).Error; err != nil {
		return errors.Wrapf(err, "InsertVideo failed,err:%v", err)
	}
	return nil
}

func GetVideo(ctx context.Context, videoId string) (*model.Video, error) {
	var video model.Video
	if err := conn(ctx).Where("id = ?", videoId).First(&video).Error; err != nil {
		return nil, errors.Wrapf(err, "GetVideo failed,err:%v", err)
	}
	return &video, nil
}

func GetVideoByVideoId(ctx context.Context, videoIds []string) ([]*model.Video, error) {
	videos := make([]*model.Video, 0)
	if len(videoIds) == 0 {
		return videos, nil
	}
	if err := conn(ctx).Where("id IN ?", videoIds).Find(&videos).Error; err != nil {
		return nil, errors.Wrapf(err, "GetVideoByVideoId failed,err:%v", err)
	}
	return videos, nil
}

func Videolist(ctx context.Context, filter *VideoFilter) ([]*model.Video, error) {
	videos := make([]*model.Video, 0)
	q := conn(ctx).Model(&model.Video{})
	if filter.Category != "" {
		q = q.Where("category = ?", filter.Category)
	}
	if filter.IDs != nil {
		q = q.Where("id IN ?", filter.IDs)
	} else if filter.Keyword != "" {
		like := "%" + filter.Keyword + "%"
		q = q.Where("title LIKE ? OR description LIKE ?", like, like)
	}
	if filter.Order != "" {
		q = q.Order(filter.Order)
	}
	if filter.Limit > 0 {
		q = q.Limit(filter.Limit)
	}
	if err := q.Find(&videos).Error; err != nil {
		return nil, errors.Wrapf(err, "Videolist failed,err:%v", err)
	}
	return videos, nil
}

// SuggestTitles 标题模糊匹配，最多 limit 条
func SuggestTitles(ctx context.Context, keyword string, limit int) ([]*model.Video, error) {
	videos := make([]*model.Video, 0)
	if err := conn(ctx).Select("id", "title").
		Where("title LIKE ?", "%"+keyword+"%").
		Order("views DESC").
		Limit(limit).
		Find(&videos).Error; err != nil {
		return nil, errors.Wrapf(err, "SuggestTitles failed,err:%v", err)
	}
	return videos, nil
}

func UpdateVideo(ctx context.Context, videoId string, fields map[string]interface{}) error {
	if len(fields) == 0 {
		return nil
	}
	if err := conn(ctx).Model(&model.Video{}).Where("id = ?", videoId).Updates(fields).Error; err != nil {
		return errors.Wrapf(err, "UpdateVideo failed,err:%v", err)
	}
	return nil
}

// DeleteVideo 删除视频及其点赞/点踩记录
func DeleteVideo(ctx context.Context, videoId string) error {
	if err := conn(ctx).Where("video_id = ?", videoId).Delete(&model.VideoReaction{}).Error; err != nil {
		return errors.Wrapf(err, "Delete video reactions failed,err:%v", err)
	}
	if err := conn(ctx).Where("id = ?", videoId).Delete(&model.Video{}).Error; err != nil {
		return errors.Wrapf(err, "DeleteVideo failed,err:%v", err)
	}
	return nil
}

func UpdateVideoVisit(ctx context.Context, videoId string) error {
	res := conn(ctx).Model(&model.Video{}).Where("id = ?", videoId).
		Update("views", gorm.Expr("views + ?", 1))
	if res.Error != nil {
		return errors.Wrapf(res.Error, "UpdateVideoVisit failed,err:%v", res.Error)
	}
	if res.RowsAffected == 0 {
		return errors.Wrapf(gorm.ErrRecordNotFound, "UpdateVideoVisit failed, videoId: %s", videoId)
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

func GetChannels(ctx context.Context, channelIds []string) (map[string]*model.Channel, error) {
	channels := make([]*model.Channel, 0)
	result := make(map[string]*model.Channel)
	if len(channelIds) == 0 {
		return result, nil
	}
	if err := conn(ctx).Where("id IN ?", channelIds).Find(&channels).Error; err != nil {
		return nil, errors.Wrapf(err, "GetChannels failed,err:%v", err)
	}
	for _, c := range channels {
		result[c.ID] = c
	}
	return result, nil
}

func GetUsers(ctx context.Context, userIds []string) (map[string]*model.User, error) {
	users := make([]*model.User, 0)
	result := make(map[string]*model.User)
	if len(userIds) == 0 {
		return result, nil
	}
	if err := conn(ctx).Where("id IN ?", userIds).Find(&users).Error; err != nil {
		return nil, errors.Wrapf(err, "GetUsers failed,err:%v", err)
	}
	for _, u := range users {
		result[u.ID] = u
	}
	return result, nil
}
