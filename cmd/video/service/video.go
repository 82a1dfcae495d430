package service

import (
	"context"
	"strings"
	"unicode/utf8"

	"VidTube.com/cmd/model"
	"VidTube.com/cmd/video/dal/db"
	"VidTube.com/pkg/cache"
	"VidTube.com/pkg/constants"
	"VidTube.com/pkg/database"
	"VidTube.com/pkg/errno"
	"VidTube.com/pkg/mq"
	"VidTube.com/pkg/search"
	"github.com/cloudwego/hertz/pkg/common/hlog"
)

type CreateVideoRequest struct {
	Title        string   `json:"title" form:"title"`
	Description  string   `json:"description" form:"description"`
	VideoUrl     string   `json:"videoUrl" form:"videoUrl"`
	ThumbnailUrl string   `json:"thumbnailUrl" form:"thumbnailUrl"`
	Duration     float64  `json:"duration" form:"duration"`
	Category     string   `json:"category" form:"category"`
	ChannelId    string   `json:"channelId" form:"channelId"`
	Tags         []string `json:"tags" form:"tags"`
}

type UpdateVideoRequest struct {
	Title        *string  `json:"title" form:"title"`
	Description  *string  `json:"description" form:"description"`
	ThumbnailUrl *string  `json:"thumbnailUrl" form:"thumbnailUrl"`
	Category     *string  `json:"category" form:"category"`
	Tags         []string `json:"tags" form:"tags"`
}

// ChannelInfo 视频详情中附带的频道摘要
type ChannelInfo struct {
	ID          string `json:"id"`
	Name        string `json:"channelName"`
	Avatar      string `json:"channelAvatar"`
	Subscribers int64  `json:"subscribers"`
}

type VideoDetail struct {
	*model.Video
	ChannelInfo  *ChannelInfo     `json:"channelInfo,omitempty"`
	UploaderInfo *model.UserBrief `json:"uploaderInfo,omitempty"`
}

type VideoService struct {
	ctx context.Context
}

func NewVideoService(ctx context.Context) *VideoService {
	return &VideoService{ctx: ctx}
}

// validateCreate 收集全部字段错误，用 ", " 拼接后一次返回
func validateCreate(req *CreateVideoRequest) error {
	var problems []string
	title := strings.TrimSpace(req.Title)
	if title == "" {
		problems = append(problems, "Title is required")
	} else if utf8.RuneCountInString(title) > constants.MaxTitleLength {
		problems = append(problems, "Title cannot be more than 100 characters")
	}
	if strings.TrimSpace(req.VideoUrl) == "" {
		problems = append(problems, "Video URL is required")
	}
	if strings.TrimSpace(req.ThumbnailUrl) == "" {
		problems = append(problems, "Thumbnail URL is required")
	}
	if strings.TrimSpace(req.Category) == "" {
		problems = append(problems, "Category is required")
	}
	if strings.TrimSpace(req.ChannelId) == "" {
		problems = append(problems, "Channel is required")
	}
	if req.Duration < 0 {
		problems = append(problems, "Duration cannot be negative")
	}
	if len(problems) > 0 {
		return errno.ParamErr.WithMessage(strings.Join(problems, ", "))
	}
	return nil
}

func cleanTags(tags []string) model.Tags {
	out := make(model.Tags, 0, len(tags))
	for _, t := range tags {
		if t = strings.TrimSpace(t); t != "" {
			out = append(out, t)
		}
	}
	return out
}

// CreateVideo 只有频道所有者可以向频道发布视频
func (s *VideoService) CreateVideo(userId string, req *CreateVideoRequest) (*model.Video, error) {
	if err := validateCreate(req); err != nil {
		return nil, err
	}
	channel, err := db.GetChannel(s.ctx, req.ChannelId)
	if err != nil {
		return nil, convertDBErr(s.ctx, err, channelNotFound)
	}
	if channel.OwnerID != userId {
		return nil, errno.AuthorizationFailedErr.WithMessage("Not authorized to upload to this channel")
	}
	video := &model.Video{
		Title:        strings.TrimSpace(req.Title),
		Description:  req.Description,
		URL:          req.VideoUrl,
		ThumbnailURL: req.ThumbnailUrl,
		Duration:     req.Duration,
		ChannelID:    channel.ID,
		UploaderID:   userId,
		Category:     strings.TrimSpace(req.Category),
		Tags:         cleanTags(req.Tags),
	}
	if err = db.InsertVideo(s.ctx, video); err != nil {
		return nil, convertDBErr(s.ctx, err, videoNotFound)
	}
	hlog.CtxInfof(s.ctx, "video %s published to channel %s", video.ID, channel.ID)
	search.Index(s.ctx, video)
	mq.Publish(s.ctx, mq.NewEvent(mq.EventNewVideo, userId).WithVideo(video.ID).WithChannel(channel.ID))
	return video, nil
}

func (s *VideoService) GetVideo(videoId string) (*VideoDetail, error) {
	video, err := db.GetVideo(s.ctx, videoId)
	if err != nil {
		return nil, convertDBErr(s.ctx, err, videoNotFound)
	}
	details, err := s.attachInfo([]*model.Video{video})
	if err != nil {
		return nil, err
	}
	return details[0], nil
}

func (s *VideoService) UpdateVideo(videoId, userId string, req *UpdateVideoRequest) (*model.Video, error) {
	video, err := db.GetVideo(s.ctx, videoId)
	if err != nil {
		return nil, convertDBErr(s.ctx, err, videoNotFound)
	}
	if video.UploaderID != userId {
		return nil, errno.AuthorizationFailedErr.WithMessage("Not authorized to update this video")
	}
	fields := make(map[string]interface{})
	if req.Title != nil {
		title := strings.TrimSpace(*req.Title)
		if title == "" {
			return nil, errno.ParamErr.WithMessage("Title is required")
		}
		if utf8.RuneCountInString(title) > constants.MaxTitleLength {
			return nil, errno.ParamErr.WithMessage("Title cannot be more than 100 characters")
		}
		fields["title"] = title
	}
	if req.Description != nil {
		fields["description"] = *req.Description
	}
	if req.ThumbnailUrl != nil {
		fields["thumbnail_url"] = *req.ThumbnailUrl
	}
	if req.Category != nil {
		fields["category"] = strings.TrimSpace(*req.Category)
	}
	if req.Tags != nil {
		fields["tags"] = cleanTags(req.Tags)
	}
	if err = db.UpdateVideo(s.ctx, videoId, fields); err != nil {
		return nil, convertDBErr(s.ctx, err, videoNotFound)
	}
	video, err = db.GetVideo(s.ctx, videoId)
	if err != nil {
		return nil, convertDBErr(s.ctx, err, videoNotFound)
	}
	search.Index(s.ctx, video)
	return video, nil
}

// DeleteVideo 删除视频行与点赞/点踩记录，评论、播放列表、观看记录中的引用保持原样
func (s *VideoService) DeleteVideo(videoId, userId string) error {
	err := database.Transaction(s.ctx, db.DB, func(ctx context.Context) error {
		video, err := db.GetVideo(ctx, videoId)
		if err != nil {
			return err
		}
		if video.UploaderID != userId {
			return errno.AuthorizationFailedErr.WithMessage("Not authorized to delete this video")
		}
		return db.DeleteVideo(ctx, videoId)
	})
	if err != nil {
		return convertDBErr(s.ctx, err, videoNotFound)
	}
	search.Remove(s.ctx, videoId)
	cache.ForgetVideo(s.ctx, videoId)
	return nil
}

// AddView 无需登录，每次调用都加一
func (s *VideoService) AddView(videoId string) (int64, error) {
	if err := db.UpdateVideoVisit(s.ctx, videoId); err != nil {
		return 0, convertDBErr(s.ctx, err, videoNotFound)
	}
	video, err := db.GetVideo(s.ctx, videoId)
	if err != nil {
		return 0, convertDBErr(s.ctx, err, videoNotFound)
	}
	return video.Views, nil
}

// attachInfo 批量补齐频道与上传者信息
func (s *VideoService) attachInfo(videos []*model.Video) ([]*VideoDetail, error) {
	channelIds := make([]string, 0, len(videos))
	userIds := make([]string, 0, len(videos))
	for _, v := range videos {
		channelIds = append(channelIds, v.ChannelID)
		userIds = append(userIds, v.UploaderID)
	}
	channels, err := db.GetChannels(s.ctx, channelIds)
	if err != nil {
		return nil, convertDBErr(s.ctx, err, channelNotFound)
	}
	users, err := db.GetUsers(s.ctx, userIds)
	if err != nil {
		return nil, convertDBErr(s.ctx, err, videoNotFound)
	}
	details := make([]*VideoDetail, 0, len(videos))
	for _, v := range videos {
		d := &VideoDetail{Video: v, UploaderInfo: users[v.UploaderID].Brief()}
		if c, ok := channels[v.ChannelID]; ok {
			d.ChannelInfo = &ChannelInfo{ID: c.ID, Name: c.Name, Avatar: c.Avatar, Subscribers: c.SubscriberCount}
		}
		details = append(details, d)
	}
	return details, nil
}
