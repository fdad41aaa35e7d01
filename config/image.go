package config

import "time"

const (
	ImageDriverHTTP = "http"
	ImageDriverOSS  = "oss"
)

// ImageConfig 图片转存目标
type ImageConfig struct {
	Driver      string        `json:"driver" yaml:"driver"` // http | oss
	UploadURL   string        `json:"upload_url" yaml:"upload_url"`
	BaseURL     string        `json:"base_url" yaml:"base_url"`
	MediaPrefix string        `json:"media_prefix" yaml:"media_prefix"`
	TempDir     string        `json:"temp_dir" yaml:"temp_dir"`
	Timeout     time.Duration `json:"timeout" yaml:"timeout"`
}

func (i *ImageConfig) fillDefaults() {
	if i.Driver == "" {
		i.Driver = ImageDriverHTTP
	}
	if i.BaseURL == "" {
		i.BaseURL = "http://127.0.0.1:8000"
	}
	if i.UploadURL == "" {
		i.UploadURL = i.BaseURL + "/api/products/products/upload_image/"
	}
	if i.Timeout == 0 {
		i.Timeout = 60 * time.Second
	}
}
