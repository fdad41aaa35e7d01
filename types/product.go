package types

import "encoding/json"

// ItemListRequest getItemList 请求体，字段顺序与签名用的 body 一致
type ItemListRequest struct {
	PageSize  int      `json:"page_size"`
	PageNo    int      `json:"page_no"`
	Status    int      `json:"status"`
	StartTime string   `json:"start_time,omitempty"`
	EndTime   string   `json:"end_time,omitempty"`
	SkuList   []string `json:"sku_list,omitempty"`
}

// ItemPage 一页数据；Fetch 返回时 Data 是所有页拼起来的结果。
// Data 不在这里解析成 Goods，一条坏数据不能拖垮整页
type ItemPage struct {
	Total       int               `json:"total"`
	PageSize    int               `json:"pageSize"`
	CurrentPage int               `json:"currentPage"`
	Data        []json.RawMessage `json:"data"`
}

// MaxPage ceil(total / pageSize)
func (p *ItemPage) MaxPage() int {
	if p.PageSize <= 0 {
		return 0
	}
	return (p.Total + p.PageSize - 1) / p.PageSize
}

// Goods 开放平台返回的单个 SKU
type Goods struct {
	GoodsID   Int64  `json:"goodsId"`
	GoodsNo   string `json:"goodsNo"`
	GoodsName string `json:"goodsName"`
	Remark    string `json:"remark"`

	SpecID   Int64  `json:"specId"`
	SpecNo   string `json:"specNo"`
	SpecName string `json:"specName"`

	Prop1  *string `json:"prop1"`  // 商品类型
	Prop2  string  `json:"prop2"`  // 颜色
	Prop3  string  `json:"prop3"`  // 其他尺寸
	Prop4  string  `json:"prop4"`  // 电镀工艺
	Prop8  string  `json:"prop8"`  // 材质
	Prop10 string  `json:"prop10"` // 表面处理

	Weight Float `json:"weight"`
	Length Float `json:"length"`
	Width  Float `json:"width"`
	Height Float `json:"height"`

	ProviderList  json.RawMessage `json:"providerList"`
	ImgURL        string          `json:"imgUrl"`
	DeclareNameEn string          `json:"declareNameEn"`
}

const DefaultProductType = "ready_made"

func (g *Goods) ProductType() string {
	if g.Prop1 == nil {
		return DefaultProductType
	}
	return *g.Prop1
}

// Suppliers providerList 原样保存，缺省为 []
func (g *Goods) Suppliers() json.RawMessage {
	if len(g.ProviderList) == 0 || string(g.ProviderList) == "null" {
		return json.RawMessage("[]")
	}
	return g.ProviderList
}

// DeclareGoods push/spec 请求体中的一项
type DeclareGoods struct {
	GoodsNo   string        `json:"goodsNo"`
	GoodsName string        `json:"goodsName"`
	SpecList  []DeclareSpec `json:"specList"`
}

type DeclareSpec struct {
	SpecNo        string `json:"specNo"`
	SpecName      string `json:"specName"`
	DeclareNameCn string `json:"declareNameCn"`
	DeclareNameEn string `json:"declareNameEn"`
}
