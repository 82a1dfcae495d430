package oss

import (
	"errors"

	"VidTube.com/config"
	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

var (
	minioClient *minio.Client
	publicURL   string
)

// ErrStorageDisabled 未配置对象存储时上传返回该错误
var ErrStorageDisabled = errors.New("object storage is not configured")

func InitMinio() error {
	c := config.ConfigInfo.Minio
	if c.Endpoint == "" {
		hlog.Warn("minio not configured, uploads disabled")
		return nil
	}

	hlog.Infof("Initializing MinIO client with endpoint: %s, accessKey: %s", c.Endpoint, c.AccessKey)

	var err error
	minioClient, err = minio.New(c.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(c.AccessKey, c.SecretKey, ""),
		Secure: c.UseSSL,
	})
	if err != nil {
		hlog.Errorf("Failed to create MinIO client: %v", err)
		return err
	}
	publicURL = c.PublicURL
	if publicURL == "" {
		scheme := "http"
		if c.UseSSL {
			scheme = "https"
		}
		publicURL = scheme + "://" + c.Endpoint
	}

	hlog.Info("Connect Minio Success")
	return nil
}

func Enabled() bool {
	return minioClient != nil
}
