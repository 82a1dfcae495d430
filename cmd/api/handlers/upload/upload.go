package handlers

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"VidTube.com/cmd/api/handlers/pack"
	"VidTube.com/cmd/video/service"
	"VidTube.com/pkg/errno"
	"VidTube.com/pkg/jwt"
	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/common/hlog"
)

var (
	videoMimes = []string{"video/mp4", "video/mpeg", "video/quicktime", "video/x-msvideo", "video/webm"}
	imageMimes = []string{"image/jpeg", "image/png", "image/jpg", "image/webp"}
)

func allowed(mime string, list []string) bool {
	for _, m := range list {
		if m == mime {
			return true
		}
	}
	return false
}

// Upload 接收 multipart 的 video/thumbnail 字段，先落到临时目录再转存对象存储
func Upload(ctx context.Context, c *app.RequestContext) {
	userId, err := jwt.GetUserID(ctx, c)
	if err != nil {
		pack.SendResponse(c, err, nil)
		return
	}
	dir, err := os.MkdirTemp("", "upload-"+userId+"-")
	if err != nil {
		hlog.CtxErrorf(ctx, "create temp dir failed: %v", err)
		pack.SendResponse(c, errno.ServiceErr, nil)
		return
	}
	defer os.RemoveAll(dir)

	video, err := saveField(c, dir, "video", videoMimes)
	if err != nil {
		pack.SendResponse(c, err, nil)
		return
	}
	thumbnail, err := saveField(c, dir, "thumbnail", imageMimes)
	if err != nil {
		pack.SendResponse(c, err, nil)
		return
	}
	res, err := service.NewVideoUploadService(ctx).Upload(video, thumbnail)
	if err != nil {
		pack.SendResponse(c, err, nil)
		return
	}
	pack.SendCreated(c, res)
}

// saveField 字段不存在时返回 nil, nil
func saveField(c *app.RequestContext, dir, field string, mimes []string) (*service.UploadFile, error) {
	fh, err := c.FormFile(field)
	if err != nil {
		return nil, nil
	}
	mime := fh.Header.Get("Content-Type")
	if !allowed(mime, mimes) {
		return nil, errno.ParamErr.WithMessage(fmt.Sprintf("Invalid file type. Allowed types: %s", strings.Join(mimes, ", ")))
	}
	path := filepath.Join(dir, field+filepath.Ext(fh.Filename))
	if err = c.SaveUploadedFile(fh, path); err != nil {
		return nil, errno.ServiceErr.WithMessage("Failed to save upload")
	}
	return &service.UploadFile{Path: path, Name: filepath.Base(fh.Filename), ContentType: mime}, nil
}
