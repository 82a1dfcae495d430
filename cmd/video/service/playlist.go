package service

import (
	"context"
	"strings"
	"unicode/utf8"

	"VidTube.com/cmd/model"
	"VidTube.com/cmd/video/dal/db"
	"VidTube.com/pkg/constants"
	"VidTube.com/pkg/database"
	"VidTube.com/pkg/errno"
)

type CreatePlaylistRequest struct {
	Name        string `json:"name" form:"name"`
	Description string `json:"description" form:"description"`
	IsPublic    *bool  `json:"isPublic" form:"isPublic"`
}

type UpdatePlaylistRequest struct {
	Name        *string `json:"name" form:"name"`
	Description *string `json:"description" form:"description"`
	IsPublic    *bool   `json:"isPublic" form:"isPublic"`
}

type PlaylistService struct {
	ctx context.Context
}

func NewPlaylistService(ctx context.Context) *PlaylistService {
	return &PlaylistService{ctx: ctx}
}

func checkPlaylistName(name string) error {
	if name == "" {
		return errno.ParamErr.WithMessage("Playlist name is required")
	}
	if utf8.RuneCountInString(name) > constants.MaxPlaylist {
		return errno.ParamErr.WithMessage("Playlist name cannot be more than 100 characters")
	}
	return nil
}

func (s *PlaylistService) CreatePlaylist(userId string, req *CreatePlaylistRequest) (*model.Playlist, error) {
	name := strings.TrimSpace(req.Name)
	if err := checkPlaylistName(name); err != nil {
		return nil, err
	}
	playlist := &model.Playlist{
		Name:        name,
		Description: req.Description,
		OwnerID:     userId,
		IsPublic:    req.IsPublic != nil && *req.IsPublic,
		Videos:      make([]*model.Video, 0),
	}
	if err := db.CreatePlaylist(s.ctx, playlist); err != nil {
		return nil, convertDBErr(s.ctx, err, playlistNotFound)
	}
	return playlist, nil
}

func (s *PlaylistService) GetUserPlaylists(userId string) ([]*model.Playlist, error) {
	playlists, err := db.GetPlaylistsByOwner(s.ctx, userId)
	if err != nil {
		return nil, convertDBErr(s.ctx, err, playlistNotFound)
	}
	return playlists, nil
}

// GetPlaylist 私有播放列表只有所有者可见
func (s *PlaylistService) GetPlaylist(playlistId, userId string) (*model.Playlist, error) {
	playlist, err := db.GetPlaylist(s.ctx, playlistId)
	if err != nil {
		return nil, convertDBErr(s.ctx, err, playlistNotFound)
	}
	if !playlist.IsPublic && playlist.OwnerID != userId {
		return nil, errno.AuthorizationFailedErr.WithMessage("Not authorized to view this playlist")
	}
	if playlist.Videos, err = db.GetPlaylistVideos(s.ctx, playlistId); err != nil {
		return nil, convertDBErr(s.ctx, err, playlistNotFound)
	}
	users, err := db.GetUsers(s.ctx, []string{playlist.OwnerID})
	if err != nil {
		return nil, convertDBErr(s.ctx, err, playlistNotFound)
	}
	playlist.Owner = users[playlist.OwnerID].Brief()
	return playlist, nil
}

func (s *PlaylistService) UpdatePlaylist(playlistId, userId string, req *UpdatePlaylistRequest) (*model.Playlist, error) {
	if _, err := s.ownedPlaylist(s.ctx, playlistId, userId); err != nil {
		return nil, convertDBErr(s.ctx, err, playlistNotFound)
	}
	fields := make(map[string]interface{})
	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if err := checkPlaylistName(name); err != nil {
			return nil, err
		}
		fields["name"] = name
	}
	if req.Description != nil {
		fields["description"] = *req.Description
	}
	if req.IsPublic != nil {
		fields["is_public"] = *req.IsPublic
	}
	if err := db.UpdatePlaylist(s.ctx, playlistId, fields); err != nil {
		return nil, convertDBErr(s.ctx, err, playlistNotFound)
	}
	return s.GetPlaylist(playlistId, userId)
}

func (s *PlaylistService) DeletePlaylist(playlistId, userId string) error {
	err := database.Transaction(s.ctx, db.DB, func(ctx context.Context) error {
		if _, err := s.ownedPlaylist(ctx, playlistId, userId); err != nil {
			return err
		}
		return db.DeletePlaylist(ctx, playlistId)
	})
	return convertDBErr(s.ctx, err, playlistNotFound)
}

// AddVideo 检查顺序：播放列表存在、调用者为所有者、视频存在、视频未在列表中。
// 列表从空变为一个视频时，用该视频的封面作为列表封面
func (s *PlaylistService) AddVideo(playlistId, userId, videoId string) (*model.Playlist, error) {
	if strings.TrimSpace(videoId) == "" {
		return nil, errno.ParamErr.WithMessage("Video id is required")
	}
	err := database.Transaction(s.ctx, db.DB, func(ctx context.Context) error {
		if _, err := s.ownedPlaylist(ctx, playlistId, userId); err != nil {
			return err
		}
		video, err := db.GetVideo(ctx, videoId)
		if err != nil {
			return convertDBErr(ctx, err, videoNotFound)
		}
		exists, err := db.IsVideoInPlaylist(ctx, playlistId, videoId)
		if err != nil {
			return err
		}
		if exists {
			return errno.InvalidStateErr.WithMessage("Video already in playlist")
		}
		if err = db.AddVideoToPlaylist(ctx, playlistId, videoId); err != nil {
			return err
		}
		count, err := db.CountPlaylistVideos(ctx, playlistId)
		if err != nil {
			return err
		}
		if count == 1 {
			return db.UpdatePlaylist(ctx, playlistId, map[string]interface{}{"thumbnail": video.ThumbnailURL})
		}
		return nil
	})
	if err != nil {
		return nil, convertDBErr(s.ctx, err, playlistNotFound)
	}
	return s.GetPlaylist(playlistId, userId)
}

// RemoveVideo 移除不在列表中的视频不报错。列表变空时清空封面，
// 否则封面保持不变，即使它来自被移除的视频
func (s *PlaylistService) RemoveVideo(playlistId, userId, videoId string) (*model.Playlist, error) {
	err := database.Transaction(s.ctx, db.DB, func(ctx context.Context) error {
		if _, err := s.ownedPlaylist(ctx, playlistId, userId); err != nil {
			return err
		}
		if err := db.DeleteVideoFromPlaylist(ctx, playlistId, videoId); err != nil {
			return err
		}
		count, err := db.CountPlaylistVideos(ctx, playlistId)
		if err != nil {
			return err
		}
		if count == 0 {
			return db.UpdatePlaylist(ctx, playlistId, map[string]interface{}{"thumbnail": ""})
		}
		return nil
	})
	if err != nil {
		return nil, convertDBErr(s.ctx, err, playlistNotFound)
	}
	return s.GetPlaylist(playlistId, userId)
}

func (s *PlaylistService) ownedPlaylist(ctx context.Context, playlistId, userId string) (*model.Playlist, error) {
	playlist, err := db.GetPlaylist(ctx, playlistId)
	if err != nil {
		return nil, err
	}
	if playlist.OwnerID != userId {
		return nil, errno.AuthorizationFailedErr.WithMessage("Not authorized to modify this playlist")
	}
	return playlist, nil
}
