package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"sync"
	"time"

	"github.com/ysEthan/magic-sync/config"
	"github.com/ysEthan/magic-sync/pkg/locker"
	"github.com/ysEthan/magic-sync/pkg/log"
	"github.com/ysEthan/magic-sync/pkg/snowflake"
	"github.com/ysEthan/magic-sync/types"

	"go.uber.org/zap"
)

// SyncLockKey 按日期和按 SKU 同步共用一把锁，它们写同一批表
const SyncLockKey = "magic-sync:product-sync"

var ErrSyncRunning = errors.New("product sync already running")

var _ IProductSyncService = (*ProductSyncService)(nil)

type IProductSyncService interface {
	SyncByDate(ctx context.Context, start, end string) (*types.SyncResult, error)
	SyncBySku(ctx context.Context, skus []string) (*types.SyncResult, error)
	Status(ctx context.Context) (*types.SyncStatus, error)
}

// CatalogCounter *dao.Product 实现
type CatalogCounter interface {
	Stats(ctx context.Context) (*types.CatalogStats, error)
}

type ProductSyncService struct {
	Fetcher  IProductFetchService
	Importer IProductImportService
	Locker   locker.Locker
	Catalog  CatalogCounter
	Sync     *config.SyncConfig

	mu   sync.RWMutex
	last *types.SyncResult
	now  func() time.Time
}

func NewProductSyncService(
	fetcher IProductFetchService,
	importer IProductImportService,
	lock locker.Locker,
	catalog CatalogCounter,
	syncCfg *config.SyncConfig,
) *ProductSyncService {
	return &ProductSyncService{
		Fetcher:  fetcher,
		Importer: importer,
		Locker:   lock,
		Catalog:  catalog,
		Sync:     syncCfg,
		now:      time.Now,
	}
}

func (s *ProductSyncService) SyncByDate(ctx context.Context, start, end string) (*types.SyncResult, error) {
	return s.run(ctx, types.SyncModeDate, func(ctx context.Context) (*types.ItemPage, error) {
		return s.Fetcher.FetchByDate(ctx, start, end)
	})
}

func (s *ProductSyncService) SyncBySku(ctx context.Context, skus []string) (*types.SyncResult, error) {
	return s.run(ctx, types.SyncModeSku, func(ctx context.Context) (*types.ItemPage, error) {
		return s.Fetcher.FetchBySku(ctx, skus)
	})
}

// RunScheduled 定时任务入口，同步最近一个窗口
func (s *ProductSyncService) RunScheduled(ctx context.Context) error {
	_, err := s.SyncByDate(ctx, "", "")
	if errors.Is(err, ErrSyncRunning) {
		log.L.Info("skip scheduled sync, previous run still in progress")
		return nil
	}
	return err
}

// LastResult 返回最近一次运行结果的副本，从未运行过时为 nil
func (s *ProductSyncService) LastResult() *types.SyncResult {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.last == nil {
		return nil
	}
	res := *s.last
	return &res
}

// Status 最近一次运行结果加上库里现有的 SPU/SKU 数量
func (s *ProductSyncService) Status(ctx context.Context) (*types.SyncStatus, error) {
	stats, err := s.Catalog.Stats(ctx)
	if err != nil {
		return nil, fmt.Errorf("catalog stats: %w", err)
	}
	return &types.SyncStatus{
		LastRun: s.LastResult(),
		Catalog: stats,
	}, nil
}

// run 先全部拉取再统一入库，拉取失败时不写库
func (s *ProductSyncService) run(
	ctx context.Context,
	mode string,
	fetch func(ctx context.Context) (*types.ItemPage, error),
) (*types.SyncResult, error) {
	runID := snowflake.GenRunID()
	owner := strconv.FormatInt(runID, 10)

	ok, err := s.Locker.TryLock(ctx, SyncLockKey, owner, s.Sync.LockTTL)
	if err != nil {
		return nil, fmt.Errorf("acquire sync lock: %w", err)
	}
	if !ok {
		syncRunsTotal.WithLabelValues(mode, "rejected").Inc()
		return nil, ErrSyncRunning
	}
	defer func() {
		if err := s.Locker.Unlock(context.WithoutCancel(ctx), SyncLockKey, owner); err != nil {
			log.L.Warn("release sync lock", zap.Int64("run_id", runID), zap.Error(err))
		}
	}()

	result := &types.SyncResult{
		RunID:     runID,
		Mode:      mode,
		StartedAt: s.now(),
	}
	logger := log.L.With(zap.Int64("run_id", runID), zap.String("mode", mode))
	logger.Info("product sync start")

	page, err := fetch(ctx)
	if err != nil {
		result.Error = err.Error()
		s.finish(result, "failed")
		logger.Error("product sync fetch failed", zap.Error(err))
		return result, err
	}

	result.Total = page.Total
	result.Processed = s.Importer.ProcessProducts(ctx, page.Data)
	s.finish(result, "success")

	logger.Info("product sync done",
		zap.Int("processed", result.Processed),
		zap.Int("total", result.Total),
		zap.Duration("cost", result.FinishedAt.Sub(result.StartedAt)),
	)
	return result, nil
}

func (s *ProductSyncService) finish(result *types.SyncResult, outcome string) {
	result.FinishedAt = s.now()

	syncRunsTotal.WithLabelValues(result.Mode, outcome).Inc()
	syncRunDuration.WithLabelValues(result.Mode).Observe(result.FinishedAt.Sub(result.StartedAt).Seconds())
	if outcome == "success" {
		lastSuccessTimestamp.Set(float64(result.FinishedAt.Unix()))
	}

	res := *result
	s.mu.Lock()
	s.last = &res
	s.mu.Unlock()
}
