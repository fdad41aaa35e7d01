package models

import (
	"time"

	"gorm.io/datatypes"
)

// ProductSpu 对应 products_spu 表，id 沿用开放平台 goodsId
type ProductSpu struct {
	ID           int64     `gorm:"primaryKey;autoIncrement:false;column:id" json:"id"`
	Code         string    `gorm:"size:64;not null;column:code" json:"code"`                   // goodsNo
	Name         string    `gorm:"size:255;not null;column:name" json:"name"`                  // goodsName
	ProductType  string    `gorm:"size:32;not null;column:product_type" json:"product_type"`   // prop1
	Remark       string    `gorm:"type:text;column:remark" json:"remark"`                      // 备注
	SalesChannel string    `gorm:"size:64;not null;column:sales_channel" json:"sales_channel"` // 销售渠道，同步时置空
	BrandID      *int64    `gorm:"column:brand_id" json:"brand_id"`                            // 品牌，同步时为 NULL
	CategoryID   int64     `gorm:"not null;column:category_id" json:"category_id"`             // 类目，同步时固定 1
	IsActive     bool      `gorm:"not null;column:is_active" json:"is_active"`
	CreatedAt    time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time `gorm:"column:updated_at" json:"updated_at"`
}

func (ProductSpu) TableName() string {
	return "products_spu"
}

// Product 对应 products_product 表，即 SKU，id 沿用开放平台 specId
type Product struct {
	ID               int64          `gorm:"primaryKey;autoIncrement:false;column:id" json:"id"`
	Code             string         `gorm:"size:64;not null;column:code" json:"code"` // specNo
	Name             string         `gorm:"size:255;not null;column:name" json:"name"`
	SpuID            int64          `gorm:"not null;index:idx_spu_id;column:spu_id" json:"spu_id"`
	Material         string         `gorm:"size:128;column:material" json:"material"`
	Color            string         `gorm:"size:128;column:color" json:"color"`
	PlatingProcess   string         `gorm:"size:128;column:plating_process" json:"plating_process"`
	SurfaceTreatment string         `gorm:"size:128;column:surface_treatment" json:"surface_treatment"`
	Weight           float64        `gorm:"column:weight" json:"weight"`
	Length           float64        `gorm:"column:length" json:"length"`
	Width            float64        `gorm:"column:width" json:"width"`
	Height           float64        `gorm:"column:height" json:"height"`
	OtherDimensions  string         `gorm:"size:255;column:other_dimensions" json:"other_dimensions"`
	SuppliersList    datatypes.JSON `gorm:"column:suppliers_list" json:"suppliers_list"`
	IsReviewed       bool           `gorm:"not null;column:is_reviewed" json:"is_reviewed"`
	IsActive         bool           `gorm:"not null;column:is_active" json:"is_active"`
	Images           datatypes.JSON `gorm:"column:images" json:"images"`
	MainImage        string         `gorm:"size:512;not null;column:main_image" json:"main_image"`
	CreatedAt        time.Time      `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt        time.Time      `gorm:"column:updated_at" json:"updated_at"`
}

func (Product) TableName() string {
	return "products_product"
}
