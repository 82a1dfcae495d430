package db

import (
	"context"

	"VidTube.com/cmd/model"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// GetWatchRecord 没有记录时返回 nil, nil
func GetWatchRecord(ctx context.Context, userId, videoId string) (*model.WatchHistory, error) {
	var record model.WatchHistory
	err := conn(ctx).Where("user_id = ? AND video_id = ?", userId, videoId).First(&record).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrapf(err, "GetWatchRecord failed,err:%v", err)
	}
	return &record, nil
}

func AddUserVideoWatchHistory(ctx context.Context, record *model.WatchHistory) error {
	if err := conn(ctx).Create(record).Error; err != nil {
		return errors.Wrapf(err, "AddUserVideoWatchHistory failed,err:%v", err)
	}
	return nil
}

func UpdateWatchRecord(ctx context.Context, recordId string, fields map[string]interface{}) error {
	if err := conn(ctx).Model(&model.WatchHistory{}).Where("id = ?", recordId).Updates(fields).Error; err != nil {
		return errors.Wrapf(err, "UpdateWatchRecord failed,err:%v", err)
	}
	return nil
}

// GetWatchHistory 最近观看的在前
func GetWatchHistory(ctx context.Context, userId string) ([]*model.WatchHistory, error) {
	records := make([]*model.WatchHistory, 0)
	if err := conn(ctx).Where("user_id = ?", userId).Order("updated_at DESC").Find(&records).Error; err != nil {
		return nil, errors.Wrapf(err, "GetWatchHistory failed,err:%v", err)
	}
	return records, nil
}

func ClearWatchHistory(ctx context.Context, userId string) (int64, error) {
	res := conn(ctx).Where("user_id = ?", userId).Delete(&model.WatchHistory{})
	if res.Error != nil {
		return 0, errors.Wrapf(res.Error, "ClearWatchHistory failed,err:%v", res.Error)
	}
	return res.RowsAffected, nil
}
