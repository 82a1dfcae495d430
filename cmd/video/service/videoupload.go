package service

import (
	"context"
	"os"
	"path/filepath"

	"VidTube.com/pkg/errno"
	"VidTube.com/pkg/oss"
	"VidTube.com/pkg/utils"
	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/google/uuid"
)

// UploadFile 已落到本地临时目录的上传文件
type UploadFile struct {
	Path        string
	Name        string
	ContentType string
}

type UploadResult struct {
	VideoUrl     string  `json:"videoUrl,omitempty"`
	ThumbnailUrl string  `json:"thumbnailUrl,omitempty"`
	Duration     float64 `json:"duration,omitempty"`
}

// ObjectStore 上传目标，默认是 minio
type ObjectStore interface {
	UploadVideo(ctx context.Context, filePath, uploadId, fileName, contentType string) (string, error)
	UploadThumbnail(ctx context.Context, filePath, uploadId, fileName, contentType string) (string, error)
}

type minioStore struct{}

func (minioStore) UploadVideo(ctx context.Context, filePath, uploadId, fileName, contentType string) (string, error) {
	return oss.UploadVideo(ctx, filePath, uploadId, fileName, contentType)
}

func (minioStore) UploadThumbnail(ctx context.Context, filePath, uploadId, fileName, contentType string) (string, error) {
	return oss.UploadThumbnail(ctx, filePath, uploadId, fileName, contentType)
}

type VideoUploadService struct {
	ctx   context.Context
	store ObjectStore // nil 表示对象存储不可用
	probe func(videoPath string) (float64, error)
	thumb func(videoPath, outputDir string) (string, error)
}

func NewVideoUploadService(ctx context.Context) *VideoUploadService {
	service := &VideoUploadService{
		ctx:   ctx,
		probe: utils.ProbeDuration,
		thumb: utils.GetVideoThumnail,
	}
	if oss.Enabled() {
		service.store = minioStore{}
	}
	return service
}

// Upload 只传视频时用 ffmpeg 截取第一帧作为封面
func (service *VideoUploadService) Upload(video, thumbnail *UploadFile) (*UploadResult, error) {
	if video == nil && thumbnail == nil {
		return nil, errno.ParamErr.WithMessage("Please upload a video or a thumbnail")
	}
	if service.store == nil {
		return nil, errno.ServiceErr.WithMessage("Upload storage is not available")
	}
	uploadId := uuid.New().String()
	res := &UploadResult{}

	if video != nil {
		if d, err := service.probe(video.Path); err != nil {
			hlog.CtxWarnf(service.ctx, "probe %s failed: %v", video.Name, err)
		} else {
			res.Duration = d
		}
		url, err := service.store.UploadVideo(service.ctx, video.Path, uploadId, video.Name, video.ContentType)
		if err != nil {
			hlog.CtxErrorf(service.ctx, "upload video failed: %v", err)
			return nil, errno.ServiceErr.WithMessage("Failed to upload video")
		}
		res.VideoUrl = url

		if thumbnail == nil {
			dir, err := os.MkdirTemp("", "thumb-")
			if err == nil {
				defer os.RemoveAll(dir)
				if path, err := service.thumb(video.Path, dir); err != nil {
					hlog.CtxWarnf(service.ctx, "extract thumbnail failed: %v", err)
				} else {
					thumbnail = &UploadFile{Path: path, Name: filepath.Base(path), ContentType: "image/jpeg"}
				}
			}
		}
	}

	if thumbnail != nil {
		url, err := service.store.UploadThumbnail(service.ctx, thumbnail.Path, uploadId, thumbnail.Name, thumbnail.ContentType)
		if err != nil {
			hlog.CtxErrorf(service.ctx, "upload thumbnail failed: %v", err)
			return nil, errno.ServiceErr.WithMessage("Failed to upload thumbnail")
		}
		res.ThumbnailUrl = url
	}
	return res, nil
}
