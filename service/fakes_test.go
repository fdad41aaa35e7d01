package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/ysEthan/magic-sync/config"
	"github.com/ysEthan/magic-sync/models"
	"github.com/ysEthan/magic-sync/types"
)

var errFake = errors.New("fake failure")

// fakeClient 按 total/pageSize 切页返回
type fakeClient struct {
	mu       sync.Mutex
	total    int
	failPage int
	requests []types.ItemListRequest
	pushed   [][]types.DeclareGoods
	pushErr  error
}

func (c *fakeClient) GetItemList(ctx context.Context, req *types.ItemListRequest) (*types.ItemPage, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.requests = append(c.requests, *req)

	if req.PageNo == c.failPage {
		return nil, fmt.Errorf("page %d: %w", req.PageNo, errFake)
	}

	page := &types.ItemPage{Total: c.total, PageSize: req.PageSize, CurrentPage: req.PageNo}
	from := (req.PageNo - 1) * req.PageSize
	for i := from; i < c.total && i < from+req.PageSize; i++ {
		page.Data = append(page.Data, mustRaw(newGoods(i+1)))
	}
	return page, nil
}

func (c *fakeClient) PushSpec(ctx context.Context, goods []types.DeclareGoods) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.pushed = append(c.pushed, goods)
	return c.pushErr
}

func newGoods(n int) types.Goods {
	return types.Goods{
		GoodsID:       types.Int64(1000 + n),
		GoodsNo:       fmt.Sprintf("G%04d", n),
		GoodsName:     "项链",
		SpecID:        types.Int64(n),
		SpecNo:        fmt.Sprintf("S%04d", n),
		SpecName:      "默认",
		Weight:        types.Float(1.5),
		DeclareNameEn: "necklace",
	}
}

func mustRaw(g types.Goods) json.RawMessage {
	b, err := json.Marshal(g)
	if err != nil {
		panic(err)
	}
	return b
}

func rawList(goods []types.Goods) []json.RawMessage {
	out := make([]json.RawMessage, 0, len(goods))
	for _, g := range goods {
		out = append(out, mustRaw(g))
	}
	return out
}

type fakeStore struct {
	mu      sync.Mutex
	spus    map[int64]models.ProductSpu
	skus    map[int64]models.Product
	failSku map[int64]bool
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		spus:    map[int64]models.ProductSpu{},
		skus:    map[int64]models.Product{},
		failSku: map[int64]bool{},
	}
}

func (s *fakeStore) UpsertSpu(ctx context.Context, spu *models.ProductSpu) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.spus[spu.ID] = *spu
	return nil
}

func (s *fakeStore) UpsertSku(ctx context.Context, sku *models.Product) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failSku[sku.ID] {
		return errFake
	}
	s.skus[sku.ID] = *sku
	return nil
}

func (s *fakeStore) Stats(ctx context.Context) (*types.CatalogStats, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return &types.CatalogStats{SpuCount: int64(len(s.spus)), SkuCount: int64(len(s.skus))}, nil
}

type fakeRehoster struct {
	path  string
	err   error
	panic bool
}

func (r *fakeRehoster) Rehost(ctx context.Context, sourceURL, skuCode string) (string, error) {
	if r.panic {
		panic("rehost exploded")
	}
	return r.path, r.err
}

func testSyncConfig() *config.SyncConfig {
	return &config.SyncConfig{
		PageSize:  100,
		PageDelay: time.Second,
		Window:    24 * time.Hour,
		LockTTL:   time.Minute,
	}
}

func newTestFetcher(client ItemClient) (*ProductFetchService, *[]time.Duration) {
	var delays []time.Duration
	s := NewProductFetchService(client, testSyncConfig())
	s.now = func() time.Time { return time.Date(2026, 10, 19, 12, 0, 0, 0, time.Local) }
	s.sleep = func(ctx context.Context, d time.Duration) error {
		delays = append(delays, d)
		return nil
	}
	return s, &delays
}
