package service

import (
	"context"

	"VidTube.com/pkg/errno"
	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

const (
	videoNotFound   = "Video not found"
	commentNotFound = "Comment not found"
)

// convertDBErr 把 dal 层错误转换为 errno，记录不存在映射为 NotFound
func convertDBErr(ctx context.Context, err error, notFoundMsg string) error {
	if err == nil {
		return nil
	}
	var e errno.ErrNo
	if errors.As(err, &e) {
		return e
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return errno.NotFoundErr.WithMessage(notFoundMsg)
	}
	hlog.CtxErrorf(ctx, "interaction dal error: %v", err)
	return errno.ServiceErr
}
