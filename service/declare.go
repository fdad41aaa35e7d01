package service

import (
	"context"
	"fmt"

	"github.com/ysEthan/magic-sync/pkg/log"
	"github.com/ysEthan/magic-sync/pkg/translator"
	"github.com/ysEthan/magic-sync/types"

	"go.uber.org/zap"
)

var _ IDeclareService = (*DeclareService)(nil)

type IDeclareService interface {
	PushDeclaration(ctx context.Context, goods *types.Goods) error
}

// DeclareService 把缺英文申报名的 SKU 回写到开放平台
type DeclareService struct {
	Client ItemClient
}

func NewDeclareService(client ItemClient) *DeclareService {
	return &DeclareService{Client: client}
}

// BuildDeclaration 中文申报名取 goodsName，英文申报名由翻译表生成
func BuildDeclaration(goods *types.Goods) []types.DeclareGoods {
	return []types.DeclareGoods{{
		GoodsNo:   goods.GoodsNo,
		GoodsName: goods.GoodsName,
		SpecList: []types.DeclareSpec{{
			SpecNo:        goods.SpecNo,
			SpecName:      goods.SpecName,
			DeclareNameCn: goods.GoodsName,
			DeclareNameEn: translator.Translate(goods.GoodsName),
		}},
	}}
}

func (s *DeclareService) PushDeclaration(ctx context.Context, goods *types.Goods) error {
	payload := BuildDeclaration(goods)
	if err := s.Client.PushSpec(ctx, payload); err != nil {
		return fmt.Errorf("push declaration %s: %w", goods.SpecNo, err)
	}
	log.L.Info("declaration pushed",
		zap.String("spec_no", goods.SpecNo),
		zap.String("declare_name_en", payload[0].SpecList[0].DeclareNameEn),
	)
	return nil
}
