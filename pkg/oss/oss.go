package oss

import (
	"context"
	"fmt"
	"path"
	"strings"

	"VidTube.com/pkg/constants"
	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/minio/minio-go/v7"
)

const location = "us-east-1" // MinIO默认区域，根据实际情况修改

// ensureBucket 检查存储桶是否存在，不存在则创建
func ensureBucket(ctx context.Context, bucketName string) error {
	exists, err := minioClient.BucketExists(ctx, bucketName)
	if err != nil {
		return fmt.Errorf("check bucket error: %w", err)
	}
	if !exists {
		if err = minioClient.MakeBucket(ctx, bucketName, minio.MakeBucketOptions{Region: location}); err != nil {
			return fmt.Errorf("create bucket error: %w", err)
		}
	}
	return nil
}

// ObjectURL 拼出对象的公开访问地址
func ObjectURL(base, bucketName, objectName string) string {
	return strings.TrimRight(base, "/") + "/" + path.Join(bucketName, objectName)
}

func uploadFile(ctx context.Context, bucketName, objectName, filePath, contentType string) (string, error) {
	if minioClient == nil {
		return "", ErrStorageDisabled
	}
	if err := ensureBucket(ctx, bucketName); err != nil {
		return "", err
	}
	_, err := minioClient.FPutObject(ctx, bucketName, objectName, filePath, minio.PutObjectOptions{ContentType: contentType})
	if err != nil {
		hlog.CtxErrorf(ctx, "upload %s/%s failed: %v", bucketName, objectName, err)
		return "", err
	}
	return ObjectURL(publicURL, bucketName, objectName), nil
}

// UploadVideo 上传视频文件，对象名为 video/{uploadId}/{原文件名}
func UploadVideo(ctx context.Context, filePath, uploadId, fileName, contentType string) (string, error) {
	if contentType == "" {
		contentType = "video/mp4"
	}
	objectName := "video/" + uploadId + "/" + path.Base(fileName)
	return uploadFile(ctx, constants.VideoBucket, objectName, filePath, contentType)
}

func UploadThumbnail(ctx context.Context, filePath, uploadId, fileName, contentType string) (string, error) {
	if contentType == "" {
		contentType = "image/jpeg"
	}
	objectName := "thumbnail/" + uploadId + "/" + path.Base(fileName)
	return uploadFile(ctx, constants.ThumbnailBucket, objectName, filePath, contentType)
}
