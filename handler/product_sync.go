package handler

import (
	stdctx "context"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/ysEthan/magic-sync/config"
	"github.com/ysEthan/magic-sync/pkg/context"
	"github.com/ysEthan/magic-sync/pkg/log"
	"github.com/ysEthan/magic-sync/pkg/response"
	"github.com/ysEthan/magic-sync/service"
	"github.com/ysEthan/magic-sync/types"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const (
	msgMethodNotAllowed = "只支持POST请求"
	msgEmptySkuList     = "请提供SKU列表"
	msgSyncRunning      = "已有同步任务在执行，请稍后再试"
	msgCheckLogs        = "请检查服务器日志获取详细信息"
)

type ProductSync struct {
	Config      *config.Config
	SyncService service.IProductSyncService
}

func NewProductSync(cfg *config.Config, syncService service.IProductSyncService) *ProductSync {
	return &ProductSync{
		Config:      cfg,
		SyncService: syncService,
	}
}

func (h *ProductSync) RegisterRouter(r gin.IRouter) {
	products := r.Group("/v1/products")
	// Any 注册，非 POST 由 handler 返回 405
	products.Any("/import-by-date", context.Wrap(h.ImportByDate)) // 按更新时间导入
	products.Any("/import-by-sku", context.Wrap(h.ImportBySku))   // 按 SKU 导入
	products.GET("/sync/status", context.Wrap(h.Status))          // 最近一次同步结果
}

func (h *ProductSync) ImportByDate(c *gin.Context) error {
	if c.Request.Method != http.MethodPost {
		return response.NewError(http.StatusMethodNotAllowed, msgMethodNotAllowed)
	}

	// body 可以为空，此时取默认时间窗口
	var req types.ImportByDateRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		return response.NewError(http.StatusBadRequest, err.Error())
	}

	result, err := h.SyncService.SyncByDate(detach(c), req.StartTime, req.EndTime)
	return h.reply(c, result, err)
}

func (h *ProductSync) ImportBySku(c *gin.Context) error {
	if c.Request.Method != http.MethodPost {
		return response.NewError(http.StatusMethodNotAllowed, msgMethodNotAllowed)
	}

	var req types.ImportBySkuRequest
	if err := c.ShouldBindJSON(&req); err != nil || len(req.SkuList) == 0 {
		return response.NewError(http.StatusBadRequest, msgEmptySkuList)
	}

	result, err := h.SyncService.SyncBySku(detach(c), req.SkuList)
	return h.reply(c, result, err)
}

func (h *ProductSync) Status(c *gin.Context) error {
	status, err := h.SyncService.Status(c.Request.Context())
	if err != nil {
		log.L.Error("load sync status failed", zap.Error(err))
		return response.NewError(http.StatusInternalServerError, err.Error())
	}
	if status.LastRun == nil {
		response.Success(c, "暂无同步记录", status)
		return nil
	}
	response.Success(c, "最近一次同步结果", status)
	return nil
}

func (h *ProductSync) reply(c *gin.Context, result *types.SyncResult, err error) error {
	if errors.Is(err, service.ErrSyncRunning) {
		return response.NewError(http.StatusConflict, msgSyncRunning)
	}
	if err != nil {
		log.L.Error("product import failed", zap.Error(err))
		return response.NewError(http.StatusInternalServerError, "导入失败："+err.Error()).WithDetail(msgCheckLogs)
	}

	response.Success(c, fmt.Sprintf("商品数据导入成功，共处理 %d 条数据，总数据量 %d", result.Processed, result.Total), result)
	return nil
}

// detach 客户端断开时同步继续执行
func detach(c *gin.Context) stdctx.Context {
	return stdctx.WithoutCancel(c.Request.Context())
}
