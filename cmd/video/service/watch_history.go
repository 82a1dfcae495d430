package service

import (
	"context"

	"VidTube.com/cmd/model"
	"VidTube.com/cmd/video/dal/db"
	"VidTube.com/pkg/constants"
	"VidTube.com/pkg/database"
	"VidTube.com/pkg/errno"
)

type TrackWatchRequest struct {
	SecondsWatched float64 `json:"secondsWatched" form:"secondsWatched"`
	TotalDuration  float64 `json:"totalDuration" form:"totalDuration"`
}

type WatchHistoryService struct {
	ctx context.Context
}

func NewWatchHistoryService(ctx context.Context) *WatchHistoryService {
	return &WatchHistoryService{ctx: ctx}
}

// completedRatio 观看比例达到 0.90 视为看完，总时长为 0 时比例按 0 计
func completedRatio(seconds, total float64) bool {
	if total <= 0 {
		return false
	}
	return seconds/total >= constants.CompletionRatio
}

// TrackWatch 首次观看时新建记录并让播放数加一；之后只推进进度，
// seconds_watched 取历史最大值，总时长与完成状态按本次请求覆盖
func (s *WatchHistoryService) TrackWatch(videoId, userId string, req *TrackWatchRequest) (*model.WatchHistory, error) {
	if req.SecondsWatched < 0 || req.TotalDuration < 0 {
		return nil, errno.ParamErr.WithMessage("Watch progress cannot be negative")
	}
	completed := completedRatio(req.SecondsWatched, req.TotalDuration)

	var record *model.WatchHistory
	err := database.Transaction(s.ctx, db.DB, func(ctx context.Context) error {
		if _, err := db.GetVideo(ctx, videoId); err != nil {
			return err
		}
		existing, err := db.GetWatchRecord(ctx, userId, videoId)
		if err != nil {
			return err
		}
		if existing == nil {
			record = &model.WatchHistory{
				UserID:         userId,
				VideoID:        videoId,
				SecondsWatched: req.SecondsWatched,
				TotalDuration:  req.TotalDuration,
				Completed:      completed,
			}
			if err = db.AddUserVideoWatchHistory(ctx, record); err != nil {
				return err
			}
			return db.UpdateVideoVisit(ctx, videoId)
		}

		seconds := existing.SecondsWatched
		if req.SecondsWatched > seconds {
			seconds = req.SecondsWatched
		}
		if err = db.UpdateWatchRecord(ctx, existing.ID, map[string]interface{}{
			"seconds_watched": seconds,
			"total_duration":  req.TotalDuration,
			"completed":       completed,
		}); err != nil {
			return err
		}
		existing.SecondsWatched = seconds
		existing.TotalDuration = req.TotalDuration
		existing.Completed = completed
		record = existing
		return nil
	})
	if err != nil {
		return nil, convertDBErr(s.ctx, err, videoNotFound)
	}
	return record, nil
}

// GetWatchHistory 最近更新的在前，附带视频快照；已删除的视频为 nil
func (s *WatchHistoryService) GetWatchHistory(userId string) ([]*model.WatchHistory, error) {
	records, err := db.GetWatchHistory(s.ctx, userId)
	if err != nil {
		return nil, convertDBErr(s.ctx, err, videoNotFound)
	}
	ids := make([]string, 0, len(records))
	for _, r := range records {
		ids = append(ids, r.VideoID)
	}
	videos, err := db.GetVideoByVideoId(s.ctx, ids)
	if err != nil {
		return nil, convertDBErr(s.ctx, err, videoNotFound)
	}
	byId := make(map[string]*model.Video, len(videos))
	for _, v := range videos {
		byId[v.ID] = v
	}
	for _, r := range records {
		r.Video = byId[r.VideoID]
	}
	return records, nil
}

func (s *WatchHistoryService) ClearWatchHistory(userId string) (int64, error) {
	n, err := db.ClearWatchHistory(s.ctx, userId)
	if err != nil {
		return 0, convertDBErr(s.ctx, err, videoNotFound)
	}
	return n, nil
}
