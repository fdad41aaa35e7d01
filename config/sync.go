package config

import "time"

type SyncConfig struct {
	PageSize        int           `json:"page_size" yaml:"page_size"`
	PageDelay       time.Duration `json:"page_delay" yaml:"page_delay"`
	Window          time.Duration `json:"window" yaml:"window"`
	ScheduleEnabled bool          `json:"schedule_enabled" yaml:"schedule_enabled"`
	Interval        time.Duration `json:"interval" yaml:"interval"`
	LockTTL         time.Duration `json:"lock_ttl" yaml:"lock_ttl"`
}

func (s *SyncConfig) fillDefaults() {
	if s.PageSize == 0 {
		s.PageSize = 100
	}
	if s.PageDelay == 0 {
		s.PageDelay = time.Second
	}
	if s.Window == 0 {
		s.Window = 24 * time.Hour
	}
	if s.Interval == 0 {
		s.Interval = time.Hour
	}
	if s.LockTTL == 0 {
		s.LockTTL = 2 * time.Hour
	}
}

func ProvideSyncConfig(cfg *Config) *SyncConfig {
	return cfg.Sync
}
