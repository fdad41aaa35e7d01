package dao

import (
	"context"

	"github.com/ysEthan/magic-sync/models"
	"github.com/ysEthan/magic-sync/types"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// 冲突时覆盖的列，created_at 不在其中
var (
	spuUpdateColumns = []string{
		"code", "name", "product_type", "remark", "sales_channel",
		"brand_id", "category_id", "is_active", "updated_at",
	}
	skuUpdateColumns = []string{
		"code", "name", "spu_id", "material", "color", "plating_process",
		"surface_treatment", "weight", "length", "width", "height",
		"other_dimensions", "suppliers_list", "is_reviewed", "is_active",
		"images", "main_image", "updated_at",
	}
)

type Product struct {
	Spu Repo[models.ProductSpu]
	Sku Repo[models.Product]
	db  *gorm.DB
}

func NewProduct(db *gorm.DB) *Product {
	return &Product{
		Spu: NewRepo[models.ProductSpu](db),
		Sku: NewRepo[models.Product](db),
		db:  db,
	}
}

// UpsertSpu MySQL 下生成 INSERT ... ON DUPLICATE KEY UPDATE col = VALUES(col)
func (p *Product) UpsertSpu(ctx context.Context, spu *models.ProductSpu) error {
	return p.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns(spuUpdateColumns),
	}).Create(spu).Error
}

func (p *Product) UpsertSku(ctx context.Context, sku *models.Product) error {
	return p.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns(skuUpdateColumns),
	}).Create(sku).Error
}

func (p *Product) Stats(ctx context.Context) (*types.CatalogStats, error) {
	spus, err := p.Spu.Count(ctx)
	if err != nil {
		return nil, err
	}
	skus, err := p.Sku.Count(ctx)
	if err != nil {
		return nil, err
	}
	return &types.CatalogStats{SpuCount: spus, SkuCount: skus}, nil
}

// AutoMigrate 只在本地和测试环境使用，线上表结构由后台维护
func (p *Product) AutoMigrate() error {
	return p.db.AutoMigrate(&models.ProductSpu{}, &models.Product{})
}
