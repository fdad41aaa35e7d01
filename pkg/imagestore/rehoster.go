package imagestore

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/ysEthan/magic-sync/config"
	"github.com/ysEthan/magic-sync/pkg/log"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const mediaPrefix = "/media/"

var ErrDownload = errors.New("imagestore: download failed")

// Uploader 把本地临时文件上传到图片服务，返回服务给出的 image_url
type Uploader interface {
	Upload(ctx context.Context, localPath, filename string) (string, error)
}

// Rehoster 下载外部图片并转存到自己的图片服务
type Rehoster struct {
	HTTP     *http.Client
	Uploader Uploader
	TempDir  string
	// MediaPrefix 图片服务返回绝对地址时要去掉的前缀，如 http://host/media/
	MediaPrefix string

	now func() time.Time
}

func NewRehoster(cfg *config.ImageConfig, uploader Uploader) *Rehoster {
	return &Rehoster{
		HTTP:        &http.Client{Timeout: cfg.Timeout},
		Uploader:    uploader,
		TempDir:     cfg.TempDir,
		MediaPrefix: cfg.MediaPrefix,
		now:         time.Now,
	}
}

// Rehost 返回图片在存储里的相对路径
func (r *Rehoster) Rehost(ctx context.Context, sourceURL, skuCode string) (string, error) {
	log.L.Info("download image", zap.String("url", sourceURL), zap.String("sku", skuCode))

	data, err := r.download(ctx, sourceURL)
	if err != nil {
		return "", err
	}

	filename := r.Filename(skuCode)
	imageURL, err := r.uploadTemp(ctx, data, filename)
	if err != nil {
		return "", err
	}

	target := RelativePath(imageURL)
	if r.MediaPrefix != "" && strings.HasPrefix(target, r.MediaPrefix) {
		target = target[len(r.MediaPrefix):]
	}
	log.L.Info("image rehosted", zap.String("sku", skuCode), zap.String("path", target))
	return target, nil
}

func (r *Rehoster) download(ctx context.Context, sourceURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, sourceURL, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDownload, err)
	}
	resp, err := r.HTTP.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDownload, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: %s status %d", ErrDownload, sourceURL, resp.StatusCode)
	}
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDownload, err)
	}
	return data, nil
}

// uploadTemp 临时文件只活在这次上传里，无论成败都删除
func (r *Rehoster) uploadTemp(ctx context.Context, data []byte, filename string) (string, error) {
	tmp, err := os.CreateTemp(r.TempDir, "rehost-*.jpg")
	if err != nil {
		return "", fmt.Errorf("create temp file: %w", err)
	}
	tmpPath := tmp.Name()
	defer func() {
		_ = tmp.Close()
		if err := os.Remove(tmpPath); err != nil && !os.IsNotExist(err) {
			log.L.Warn("remove temp file", zap.String("path", tmpPath), zap.Error(err))
		}
	}()

	if _, err := tmp.Write(data); err != nil {
		return "", fmt.Errorf("write temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return "", fmt.Errorf("close temp file: %w", err)
	}

	return r.Uploader.Upload(ctx, tmpPath, filename)
}

// Filename 20060102_150405_<sku>_<8位随机>.jpg，不做重名检查
func (r *Rehoster) Filename(skuCode string) string {
	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")[:8]
	return fmt.Sprintf("%s_%s_%s.jpg", r.now().Format("20060102_150405"), skuCode, suffix)
}

// RelativePath 去掉 /media/ 前缀，其余原样返回
func RelativePath(imageURL string) string {
	if strings.HasPrefix(imageURL, mediaPrefix) {
		return imageURL[len(mediaPrefix):]
	}
	return imageURL
}
