package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config 配置信息
type Config struct {
	App     *App           `json:"app" yaml:"app"`
	Server  *Server        `json:"server" yaml:"server"`
	MySQL   *MySQL         `json:"mysql" yaml:"mysql"`
	Redis   *Redis         `json:"redis" yaml:"redis"`
	OpenAPI *OpenAPIConfig `json:"openapi" yaml:"openapi"`
	Image   *ImageConfig   `json:"image" yaml:"image"`
	Oss     *OssConfig     `json:"oss" yaml:"oss"`
	Sync    *SyncConfig    `json:"sync" yaml:"sync"`
}

type Server struct {
	Http int `json:"http" yaml:"http"`
}

// New 读取 yaml 配置，再用环境变量覆盖
func New(filename string) *Config {
	conf, err := Load(filename)
	if err != nil {
		panic(err)
	}
	return conf
}

func Load(filename string) (*Config, error) {
	var conf Config

	content, err := os.ReadFile(filename)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(content, &conf); err != nil {
			return nil, fmt.Errorf("解析 %s 读取错误: %w", filename, err)
		}
	case os.IsNotExist(err):
		// 没有配置文件时完全依赖环境变量
	default:
		return nil, err
	}

	conf.fillDefaults()
	conf.overrideFromEnv()
	return &conf, nil
}

// Debug 调试模式
func (c *Config) Debug() bool {
	return c.App.Debug
}

func (c *Config) fillDefaults() {
	if c.App == nil {
		c.App = &App{}
	}
	if c.App.Env == "" {
		c.App.Env = "dev"
	}
	if c.Server == nil {
		c.Server = &Server{}
	}
	if c.Server.Http == 0 {
		c.Server.Http = 8002
	}
	if c.MySQL == nil {
		c.MySQL = &MySQL{}
	}
	c.MySQL.fillDefaults()
	if c.Redis == nil {
		c.Redis = &Redis{}
	}
	if c.OpenAPI == nil {
		c.OpenAPI = &OpenAPIConfig{}
	}
	c.OpenAPI.fillDefaults()
	if c.Image == nil {
		c.Image = &ImageConfig{}
	}
	c.Image.fillDefaults()
	if c.Oss == nil {
		c.Oss = &OssConfig{}
	}
	if c.Sync == nil {
		c.Sync = &SyncConfig{}
	}
	c.Sync.fillDefaults()
}
