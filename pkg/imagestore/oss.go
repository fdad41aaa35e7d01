package imagestore

import (
	"context"
	"fmt"
	"path"

	"github.com/ysEthan/magic-sync/config"

	"github.com/aliyun/alibabacloud-oss-go-sdk-v2/oss"
	"github.com/aliyun/alibabacloud-oss-go-sdk-v2/oss/credentials"
)

// ObjectPutter oss.Client 的子集
type ObjectPutter interface {
	PutObjectFromFile(ctx context.Context, request *oss.PutObjectRequest, filePath string, optFns ...func(*oss.Options)) (*oss.PutObjectResult, error)
}

// OSSUploader 直接写阿里云 OSS，返回 object key 作为相对路径
type OSSUploader struct {
	Client     ObjectPutter
	BucketName string
	Prefix     string
}

func NewOSSUploader(cfg *config.OssConfig) *OSSUploader {
	ossCfg := oss.LoadDefaultConfig().
		WithEndpoint(cfg.Endpoint).
		WithRegion(cfg.Region).
		WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(
				cfg.AccessKeyID,
				cfg.AccessKeySecret,
			),
		)

	prefix := cfg.Prefix
	if prefix == "" {
		prefix = "products"
	}
	return &OSSUploader{
		Client:     oss.NewClient(ossCfg),
		BucketName: cfg.Bucket,
		Prefix:     prefix,
	}
}

func (u *OSSUploader) Upload(ctx context.Context, localPath, filename string) (string, error) {
	objectKey := path.Join(u.Prefix, filename)
	_, err := u.Client.PutObjectFromFile(ctx, &oss.PutObjectRequest{
		Bucket:      oss.Ptr(u.BucketName),
		Key:         oss.Ptr(objectKey),
		ContentType: oss.Ptr("image/jpeg"),
	}, localPath)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUpload, err)
	}
	return objectKey, nil
}

// NewUploader 按 image.driver 选择上传方式
func NewUploader(cfg *config.Config) Uploader {
	if cfg.Image.Driver == config.ImageDriverOSS {
		return NewOSSUploader(cfg.Oss)
	}
	return &HTTPUploader{
		HTTP:      newHTTPClient(cfg.Image),
		UploadURL: cfg.Image.UploadURL,
	}
}

func ProvideRehoster(cfg *config.Config, uploader Uploader) *Rehoster {
	return NewRehoster(cfg.Image, uploader)
}
