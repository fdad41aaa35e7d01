package dao

import (
	"context"
	"testing"
	"time"

	"github.com/ysEthan/magic-sync/models"

	"gorm.io/datatypes"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatal(err)
	}
	// :memory: 每个连接一份库
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	if err := NewProduct(db).AutoMigrate(); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func findByID[T any](ctx context.Context, r Repo[T], id int64) (*T, error) {
	var row T
	if err := r.Db.WithContext(ctx).First(&row, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &row, nil
}

func TestProduct_Stats(t *testing.T) {
	ctx := context.Background()
	dao := NewProduct(newTestDB(t))

	now := time.Now()
	for _, id := range []int64{1, 2} {
		spu := &models.ProductSpu{ID: id, Code: "G", Name: "n", ProductType: "ready_made", CategoryID: 1, CreatedAt: now, UpdatedAt: now}
		if err := dao.UpsertSpu(ctx, spu); err != nil {
			t.Fatal(err)
		}
	}
	sku := &models.Product{ID: 10, Code: "S", Name: "n", SpuID: 1,
		SuppliersList: datatypes.JSON("[]"), Images: datatypes.JSON("[]"), CreatedAt: now, UpdatedAt: now}
	if err := dao.UpsertSku(ctx, sku); err != nil {
		t.Fatal(err)
	}

	stats, err := dao.Stats(ctx)
	if err != nil {
		t.Fatalf("stats: %v", err)
	}
	if stats.SpuCount != 2 || stats.SkuCount != 1 {
		t.Fatalf("stats = %+v", stats)
	}
}

func TestProduct_UpsertSpuIdempotent(t *testing.T) {
	ctx := context.Background()
	dao := NewProduct(newTestDB(t))

	created := time.Date(2026, 1, 1, 10, 0, 0, 0, time.UTC)
	first := &models.ProductSpu{
		ID: 1001, Code: "G-1", Name: "项链", ProductType: "ready_made",
		CategoryID: 1, IsActive: true, CreatedAt: created, UpdatedAt: created,
	}
	if err := dao.UpsertSpu(ctx, first); err != nil {
		t.Fatalf("first upsert: %v", err)
	}

	later := created.Add(time.Hour)
	second := &models.ProductSpu{
		ID: 1001, Code: "G-1", Name: "恶魔之眼项链", ProductType: "custom", Remark: "改名",
		CategoryID: 1, IsActive: true, CreatedAt: later, UpdatedAt: later,
	}
	if err := dao.UpsertSpu(ctx, second); err != nil {
		t.Fatalf("second upsert: %v", err)
	}

	n, err := dao.Spu.Count(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if n != 1 {
		t.Fatalf("expected 1 spu row, got %d", n)
	}

	got, err := findByID(ctx, dao.Spu, int64(1001))
	if err != nil {
		t.Fatal(err)
	}
	if got.Name != "恶魔之眼项链" || got.ProductType != "custom" || got.Remark != "改名" {
		t.Errorf("second write not applied: %+v", got)
	}
	if !got.CreatedAt.Equal(created) {
		t.Errorf("created_at changed: %v", got.CreatedAt)
	}
	if !got.UpdatedAt.Equal(later) {
		t.Errorf("updated_at not advanced: %v", got.UpdatedAt)
	}
	if got.BrandID != nil {
		t.Errorf("brand id should stay NULL, got %v", *got.BrandID)
	}
}

func TestProduct_UpsertSkuIdempotent(t *testing.T) {
	ctx := context.Background()
	dao := NewProduct(newTestDB(t))

	created := time.Date(2026, 1, 1, 10, 0, 0, 0, time.UTC)
	sku := &models.Product{
		ID: 2002, Code: "S-1", Name: "银色", SpuID: 1001, Weight: 12.5,
		SuppliersList: datatypes.JSON(`[]`), Images: datatypes.JSON(`["products/a.jpg"]`),
		MainImage: "products/a.jpg", IsActive: true, CreatedAt: created, UpdatedAt: created,
	}
	if err := dao.UpsertSku(ctx, sku); err != nil {
		t.Fatalf("first upsert: %v", err)
	}

	later := created.Add(2 * time.Hour)
	again := &models.Product{
		ID: 2002, Code: "S-1", Name: "金色", SpuID: 1001, Weight: 13,
		SuppliersList: datatypes.JSON(`[{"name":"x"}]`), Images: datatypes.JSON(`[]`),
		MainImage: "", IsActive: true, CreatedAt: later, UpdatedAt: later,
	}
	if err := dao.UpsertSku(ctx, again); err != nil {
		t.Fatalf("second upsert: %v", err)
	}

	n, _ := dao.Sku.Count(ctx)
	if n != 1 {
		t.Fatalf("expected 1 sku row, got %d", n)
	}
	got, err := findByID(ctx, dao.Sku, int64(2002))
	if err != nil {
		t.Fatal(err)
	}
	if got.Name != "金色" || got.Weight != 13 || got.MainImage != "" {
		t.Errorf("second write not applied: %+v", got)
	}
	if string(got.Images) != `[]` {
		t.Errorf("images = %s", got.Images)
	}
	if !got.CreatedAt.Equal(created) {
		t.Errorf("created_at changed: %v", got.CreatedAt)
	}
	if !got.UpdatedAt.Equal(later) {
		t.Errorf("updated_at not advanced: %v", got.UpdatedAt)
	}
}
