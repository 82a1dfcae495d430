package db

import (
	"context"

	"VidTube.com/cmd/model"
	"github.com/pkg/errors"
)

func CreatePlaylist(ctx context.Context, playlist *model.Playlist) error {
	if err := conn(ctx).Create(playlist).Error; err != nil {
		return errors.Wrapf(err, "CreatePlaylist failed,err:%v", err)
	}
	return nil
}

func GetPlaylist(ctx context.Context, playlistId string) (*model.Playlist, error) {
	var playlist model.Playlist
	if err := conn(ctx).Where("id = ?", playlistId).First(&playlist).Error; err != nil {
		return nil, errors.Wrapf(err, "GetPlaylist failed,err:%v", err)
	}
	return &playlist, nil
}

func GetPlaylistsByOwner(ctx context.Context, ownerId string) ([]*model.Playlist, error) {
	playlists := make([]*model.Playlist, 0)
	if err := conn(ctx).Where("owner_id = ?", ownerId).Order("created_at DESC").Find(&playlists).Error; err != nil {
		return nil, errors.Wrapf(err, "GetPlaylistsByOwner failed,err:%v", err)
	}
	return playlists, nil
}

func UpdatePlaylist(ctx context.Context, playlistId string, fields map[string]interface{}) error {
	if len(fields) == 0 {
		return nil
	}
	if err := conn(ctx).Model(&model.Playlist{}).Where("id = ?", playlistId).Updates(fields).Error; err != nil {
		return errors.Wrapf(err, "UpdatePlaylist failed,err:%v", err)
	}
	return nil
}

func DeletePlaylist(ctx context.Context, playlistId string) error {
	if err := conn(ctx).Where("playlist_id = ?", playlistId).Delete(&model.PlaylistVideo{}).Error; err != nil {
		return errors.Wrapf(err, "Delete playlist videos failed,err:%v", err)
	}
	if err := conn(ctx).Where("id = ?", playlistId).Delete(&model.Playlist{}).Error; err != nil {
		return errors.Wrapf(err, "DeletePlaylist failed,err:%v", err)
	}
	return nil
}

func IsVideoInPlaylist(ctx context.Context, playlistId, videoId string) (bool, error) {
	var count int64
	if err := conn(ctx).Model(&model.PlaylistVideo{}).Where("playlist_id = ? AND video_id = ?", playlistId, videoId).Count(&count).Error; err != nil {
		return false, errors.Wrapf(err, "IsVideoInPlaylist failed,err:%v", err)
	}
	return count > 0, nil
}

// AddVideoToPlaylist 追加到列表末尾
func AddVideoToPlaylist(ctx context.Context, playlistId, videoId string) error {
	var last struct{ Max *int }
	if err := conn(ctx).Model(&model.PlaylistVideo{}).Select("MAX(position) AS max").
		Where("playlist_id = ?", playlistId).Scan(&last).Error; err != nil {
		return errors.Wrapf(err, "Get playlist position failed,err:%v", err)
	}
	position := 0
	if last.Max != nil {
		position = *last.Max + 1
	}
	if err := conn(ctx).Create(&model.PlaylistVideo{
		PlaylistID: playlistId,
		VideoID:    videoId,
		Position:   position,
	}).Error; err != nil {
		return errors.Wrapf(err, "AddVideoToPlaylist failed,err:%v", err)
	}
	return nil
}

func DeleteVideoFromPlaylist(ctx context.Context, playlistId, videoId string) error {
	if err := conn(ctx).Where("playlist_id = ? AND video_id = ?", playlistId, videoId).Delete(&model.PlaylistVideo{}).Error; err != nil {
		return errors.Wrapf(err, "DeleteVideoFromPlaylist failed,err:%v", err)
	}
	return nil
}

func CountPlaylistVideos(ctx context.Context, playlistId string) (count int64, err error) {
	if err := conn(ctx).Model(&model.PlaylistVideo{}).Where("playlist_id = ?", playlistId).Count(&count).Error; err != nil {
		return -1, errors.Wrapf(err, "CountPlaylistVideos failed,err:%v", err)
	}
	return count, nil
}

// GetPlaylistVideos 按加入顺序返回，已删除的视频被跳过
func GetPlaylistVideos(ctx context.Context, playlistId string) ([]*model.Video, error) {
	videos := make([]*model.Video, 0)
	if err := conn(ctx).Model(&model.Video{}).
		Joins("JOIN playlist_videos ON playlist_videos.video_id = videos.id").
		Where("playlist_videos.playlist_id = ?", playlistId).
		Order("playlist_videos.position ASC").
		Find(&videos).Error; err != nil {
		return nil, errors.Wrapf(err, "GetPlaylistVideos failed,err:%v", err)
	}
	return videos, nil
}
