package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/ysEthan/magic-sync/models"
	"github.com/ysEthan/magic-sync/pkg/log"
	"github.com/ysEthan/magic-sync/types"

	"github.com/sourcegraph/conc/panics"
	"github.com/tidwall/gjson"
	"go.uber.org/zap"
	"gorm.io/datatypes"
)

// ImageRehoster *imagestore.Rehoster 实现
type ImageRehoster interface {
	Rehost(ctx context.Context, sourceURL, skuCode string) (string, error)
}

// ProductStore *dao.Product 实现
type ProductStore interface {
	UpsertSpu(ctx context.Context, spu *models.ProductSpu) error
	UpsertSku(ctx context.Context, sku *models.Product) error
}

const defaultCategoryID = 1

// ErrMissingID goodsId/specId 是两张表的主键，缺失的记录不能入库
var ErrMissingID = errors.New("goods record has no goodsId or specId")

var _ IProductImportService = (*ProductImportService)(nil)

type IProductImportService interface {
	ProcessProducts(ctx context.Context, records []json.RawMessage) int
}

type ProductImportService struct {
	Store    ProductStore
	Images   ImageRehoster
	Declarer IDeclareService

	now func() time.Time
}

func NewProductImportService(store ProductStore, images ImageRehoster, declarer IDeclareService) *ProductImportService {
	return &ProductImportService{
		Store:    store,
		Images:   images,
		Declarer: declarer,
		now:      time.Now,
	}
}

// ProcessProducts 逐条解析并入库，单条失败只记日志，返回完整成功的条数
func (s *ProductImportService) ProcessProducts(ctx context.Context, records []json.RawMessage) int {
	processed := 0
	for _, raw := range records {
		var err error
		var pc panics.Catcher
		pc.Try(func() { err = s.processOne(ctx, raw) })
		if r := pc.Recovered(); r != nil {
			err = r.AsError()
		}

		if err != nil {
			recordsTotal.WithLabelValues("failed").Inc()
			log.L.Error("process product failed",
				zap.String("goods_no", gjson.GetBytes(raw, "goodsNo").String()),
				zap.String("spec_no", gjson.GetBytes(raw, "specNo").String()),
				zap.Error(err),
			)
			continue
		}
		recordsTotal.WithLabelValues("ok").Inc()
		processed++
	}
	return processed
}

func (s *ProductImportService) processOne(ctx context.Context, raw json.RawMessage) error {
	var item types.Goods
	if err := json.Unmarshal(raw, &item); err != nil {
		return fmt.Errorf("decode goods: %w", err)
	}
	if item.GoodsID <= 0 || item.SpecID <= 0 {
		return fmt.Errorf("%w: goodsId=%d specId=%d", ErrMissingID, item.GoodsID, item.SpecID)
	}

	now := s.now()

	spu := &models.ProductSpu{
		ID:           int64(item.GoodsID),
		Code:         item.GoodsNo,
		Name:         item.GoodsName,
		ProductType:  item.ProductType(),
		Remark:       item.Remark,
		SalesChannel: "",
		BrandID:      nil,
		CategoryID:   defaultCategoryID,
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.Store.UpsertSpu(ctx, spu); err != nil {
		return fmt.Errorf("upsert spu %d: %w", spu.ID, err)
	}

	mainImage := s.rehostImage(ctx, &item)
	images, err := imageList(mainImage)
	if err != nil {
		return err
	}

	sku := &models.Product{
		ID:               int64(item.SpecID),
		Code:             item.SpecNo,
		Name:             item.SpecName,
		SpuID:            spu.ID,
		Material:         item.Prop8,
		Color:            item.Prop2,
		PlatingProcess:   item.Prop4,
		SurfaceTreatment: item.Prop10,
		Weight:           float64(item.Weight),
		Length:           float64(item.Length),
		Width:            float64(item.Width),
		Height:           float64(item.Height),
		OtherDimensions:  item.Prop3,
		SuppliersList:    datatypes.JSON(item.Suppliers()),
		IsReviewed:       false,
		IsActive:         true,
		Images:           images,
		MainImage:        mainImage,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	if err := s.Store.UpsertSku(ctx, sku); err != nil {
		return fmt.Errorf("upsert sku %d: %w", sku.ID, err)
	}

	if needsDeclaration(&item) {
		if err := s.Declarer.PushDeclaration(ctx, &item); err != nil {
			return err
		}
	}
	return nil
}

// rehostImage 转存失败按无图处理
func (s *ProductImportService) rehostImage(ctx context.Context, item *types.Goods) string {
	if item.ImgURL == "" {
		return ""
	}
	path, err := s.Images.Rehost(ctx, item.ImgURL, item.SpecNo)
	if err != nil {
		log.L.Warn("rehost image failed, saving without image",
			zap.String("spec_no", item.SpecNo),
			zap.String("url", item.ImgURL),
			zap.Error(err),
		)
		return ""
	}
	return path
}

func needsDeclaration(item *types.Goods) bool {
	return item.DeclareNameEn == ""
}

func imageList(mainImage string) (datatypes.JSON, error) {
	list := []string{}
	if mainImage != "" {
		list = append(list, mainImage)
	}
	b, err := json.Marshal(list)
	if err != nil {
		return nil, err
	}
	return datatypes.JSON(b), nil
}
