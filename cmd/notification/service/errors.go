package service

import (
	"context"

	"VidTube.com/pkg/errno"
	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

const notificationNotFound = "Notification not found"

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
	hlog.CtxErrorf(ctx, "notification dal error: %v", err)
	return errno.ServiceErr
}
