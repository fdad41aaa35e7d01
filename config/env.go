package config

import "os"

// 兼容旧部署里的环境变量名
func (c *Config) overrideFromEnv() {
	setString(&c.OpenAPI.AppName, "API_APP_NAME")
	setString(&c.OpenAPI.AppKey, "API_APP_KEY")
	setString(&c.OpenAPI.Sid, "API_SID")
	setString(&c.OpenAPI.ItemListURL, "API_URL")
	setString(&c.OpenAPI.PushSpecURL, "API_UPDATE_URL")

	setString(&c.Image.UploadURL, "IMAGE_UPLOAD_URL")
	setString(&c.Image.BaseURL, "IMAGE_BASE_URL")
	setString(&c.Image.MediaPrefix, "MEDIA_PREFIX")

	setString(&c.MySQL.DSN, "MYSQL_DSN")
	setString(&c.Redis.Address, "REDIS_ADDRESS")
	setString(&c.Redis.Password, "REDIS_PASSWORD")
	setString(&c.App.Env, "APP_ENV")
}

func setString(dst *string, key string) {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		*dst = v
	}
}
