package service

import (
	"context"
	"fmt"
	"time"

	"github.com/ysEthan/magic-sync/config"
	"github.com/ysEthan/magic-sync/pkg/log"
	"github.com/ysEthan/magic-sync/types"

	"go.uber.org/zap"
)

// ItemClient 开放平台接口，*openapi.Client 实现
type ItemClient interface {
	GetItemList(ctx context.Context, req *types.ItemListRequest) (*types.ItemPage, error)
	PushSpec(ctx context.Context, goods []types.DeclareGoods) error
}

var _ IProductFetchService = (*ProductFetchService)(nil)

type IProductFetchService interface {
	FetchByDate(ctx context.Context, start, end string) (*types.ItemPage, error)
	FetchBySku(ctx context.Context, skus []string) (*types.ItemPage, error)
}

type ProductFetchService struct {
	Client ItemClient
	Sync   *config.SyncConfig

	now   func() time.Time
	sleep func(ctx context.Context, d time.Duration) error
}

func NewProductFetchService(client ItemClient, syncCfg *config.SyncConfig) *ProductFetchService {
	return &ProductFetchService{
		Client: client,
		Sync:   syncCfg,
		now:    time.Now,
		sleep:  sleepCtx,
	}
}

// FetchByDate 起止时间为空时取最近一个窗口（默认 24 小时）
func (s *ProductFetchService) FetchByDate(ctx context.Context, start, end string) (*types.ItemPage, error) {
	now := s.now()
	if start == "" {
		start = now.Add(-s.Sync.Window).Format(types.TimeLayout)
	}
	if end == "" {
		end = now.Format(types.TimeLayout)
	}
	log.L.Info("fetch products by date", zap.String("start", start), zap.String("end", end))

	return s.fetchAll(ctx, types.ItemListRequest{StartTime: start, EndTime: end})
}

func (s *ProductFetchService) FetchBySku(ctx context.Context, skus []string) (*types.ItemPage, error) {
	log.L.Info("fetch products by sku", zap.Strings("skus", skus))

	return s.fetchAll(ctx, types.ItemListRequest{SkuList: skus})
}

// fetchAll 逐页拉取直到 currentPage >= maxPage，任意一页失败整体作废
func (s *ProductFetchService) fetchAll(ctx context.Context, filter types.ItemListRequest) (*types.ItemPage, error) {
	req := filter
	req.PageSize = s.Sync.PageSize
	req.Status = 0

	result := &types.ItemPage{PageSize: req.PageSize}
	for pageNo := 1; ; pageNo++ {
		req.PageNo = pageNo

		page, err := s.Client.GetItemList(ctx, &req)
		if err != nil {
			return nil, fmt.Errorf("fetch page %d: %w", pageNo, err)
		}
		result.Data = append(result.Data, page.Data...)
		result.Total = page.Total
		result.CurrentPage = page.CurrentPage

		maxPage := page.MaxPage()
		log.L.Info("fetched page",
			zap.Int("page", page.CurrentPage),
			zap.Int("max_page", maxPage),
			zap.Int("count", len(page.Data)),
			zap.Int("total", page.Total),
		)

		if page.PageSize <= 0 || page.CurrentPage >= maxPage {
			break
		}
		if err := s.sleep(ctx, s.Sync.PageDelay); err != nil {
			return nil, err
		}
	}
	return result, nil
}

func sleepCtx(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
