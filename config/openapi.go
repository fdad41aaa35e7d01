package config

import "time"

// OpenAPIConfig 奇智商科开放平台
type OpenAPIConfig struct {
	AppName     string        `json:"app_name" yaml:"app_name"`
	AppKey      string        `json:"app_key" yaml:"app_key"`
	Sid         string        `json:"sid" yaml:"sid"`
	ItemListURL string        `json:"item_list_url" yaml:"item_list_url"`
	PushSpecURL string        `json:"push_spec_url" yaml:"push_spec_url"`
	Timeout     time.Duration `json:"timeout" yaml:"timeout"`
	// MaxRetries 未配置时为 3，显式写 0 表示不重试
	MaxRetries *int `json:"max_retries" yaml:"max_retries"`
}

const (
	defaultMaxRetries  = 3
	defaultItemListURL = "https://openapi.qizhishangke.com/api/openservices/product/v1/getItemList"
	defaultPushSpecURL = "https://openapi.qizhishangke.com/api/openservices/product/v1/push/spec"
)

func (o *OpenAPIConfig) fillDefaults() {
	if o.AppName == "" {
		o.AppName = "mathmagic"
	}
	if o.Sid == "" {
		o.Sid = "mathmagic"
	}
	if o.ItemListURL == "" {
		o.ItemListURL = defaultItemListURL
	}
	if o.PushSpecURL == "" {
		o.PushSpecURL = defaultPushSpecURL
	}
	if o.Timeout == 0 {
		o.Timeout = 30 * time.Second
	}
	if o.MaxRetries == nil {
		n := defaultMaxRetries
		o.MaxRetries = &n
	}
}
