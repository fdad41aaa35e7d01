package types

import "time"

// TimeLayout 开放平台 start_time/end_time 的格式
const TimeLayout = "2006-01-02 15:04:05"

const (
	SyncModeDate = "date"
	SyncModeSku  = "sku"
)

type ImportByDateRequest struct {
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
}

type ImportBySkuRequest struct {
	SkuList []string `json:"sku_list"`
}

// SyncResult 一次同步运行的结果
type SyncResult struct {
	RunID      int64     `json:"run_id,string"`
	Mode       string    `json:"mode"`
	Processed  int       `json:"processed"`
	Total      int       `json:"total"`
	StartedAt  time.Time `json:"started_at"`
	FinishedAt time.Time `json:"finished_at"`
	Error      string    `json:"error,omitempty"`
}

type CatalogStats struct {
	SpuCount int64 `json:"spu_count"`
	SkuCount int64 `json:"sku_count"`
}

// SyncStatus 状态接口返回，LastRun 为 nil 表示进程启动后还没同步过
type SyncStatus struct {
	LastRun *SyncResult   `json:"last_run"`
	Catalog *CatalogStats `json:"catalog"`
}
