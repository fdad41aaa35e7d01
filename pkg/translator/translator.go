package translator

import (
	"strings"

	"github.com/ysEthan/magic-sync/pkg/log"

	"go.uber.org/zap"
)

// Fallback 没有任何命中时的英文申报名
const Fallback = "others Accessories"

type Pair struct {
	Cn string
	En string
}

// Table 中英文申报名映射，顺序即子串匹配的优先级
var Table = []Pair{
	{"戒指", "ring"},
	{"胸针", "brooch"},
	{"摆件", "ornament"},
	{"材料", "material"},
	{"耳饰", "Earrings"},
	{"charms挂件", "Charms pendant"},
	{"冰箱贴", "refrigerator magnet"},
	{"耳环", "earring"},
	{"项链", "necklace"},
	{"键帽", "keycap"},
	{"KE1113", "KE1113"},
	{"手链", "Bracelet"},
	{"恶魔之眼项链", "Devil's Eye Necklace"},
	{"爱心项链", "Heart Necklace"},
	{"鹦鹉胸针", "Parrot brooch"},
	{"毛绒", "Plush"},
	{"小挂件", "Small pendant"},
	{"pantone色卡", "Pantone color card"},
	{"电镀色卡", "color chart"},
	{"铜", "copper"},
	{"树脂", "resin"},
	{"手镯", "bracelet"},
	{"宠物牌", "Pet tag"},
	{"毛绒玩具", "Plush toys"},
	{"配件", "accessory"},
	{"链条", "chain"},
	{"静土之歌心形耳夹款", "Quiet Earth Song Heart shaped Ear Clip"},
	{"钥匙牌", "key tag"},
	{"陶瓷摆件底座", "Ceramic ornament base"},
	{"陶瓷装饰摆件", "Ceramic decorative ornaments"},
	{"陶瓷餐具", "Ceramic tableware"},
	{"玩偶", "doll"},
	{"绒布袋", "Velvet bag"},
	{"售后卡", "After sales card"},
	{"纸袋", "paper bag"},
	{"包装盒", "packaging box"},
	{"手办", "Garage Kit"},
	{"吊坠", "Pendant"},
	{"鬼娃娃", "Ghost doll"},
	{"戒子", "Ring"},
	{"香炉", "censer"},
	{"宠物项圈", "pet collar"},
	{"PVC动物玩具10cm", "PVC animal toy 10cm"},
	{"铜做旧+滴油吊坠链45+5cm", "Copper antique+drip oil pendant chain 45+5cm"},
	{"铜做旧吊坠链50+5cm", "Copper antique pendant chain 50+5cm"},
	{"吊牌", "Tag"},
	{"样品卡", "sample card"},
	{"色板卡", "Color palette card"},
	{"盒子", "box"},
	{"面罩", "face shield"},
	{"面饰", "Finishing"},
	{"手提袋", "tote"},
	{"贴条", "Stick strips"},
	{"培育蓝宝", "Cultivate Blue Treasure"},
	{"手饰", "Jewelry"},
	{"首饰套装", "Jewelry Set"},
	{"包装耗材", "Packaging consumables"},
	{"GRA证书", "GRA certificate"},
	{"套装", "suit"},
	{"物料", "material"},
	{"腿链", "Leg chain"},
	{"鼻饰", "Nose accessories"},
	{"腰链", "waist chain"},
	{"身体链", "Body Chain"},
	{"脚链", "anklet"},
}

var exact = func() map[string]string {
	m := make(map[string]string, len(Table))
	for _, p := range Table {
		if _, ok := m[p.Cn]; !ok {
			m[p.Cn] = p.En
		}
	}
	return m
}()

// Translate 先整句匹配，再按表顺序做子串替换（只替换命中的那一段），都不中返回 Fallback
func Translate(text string) string {
	if en, ok := exact[text]; ok {
		log.L.Debug("declare name exact match", zap.String("text", text), zap.String("en", en))
		return en
	}

	for _, p := range Table {
		if strings.Contains(text, p.Cn) {
			translated := strings.ReplaceAll(text, p.Cn, p.En)
			log.L.Info("declare name partial match", zap.String("text", text), zap.String("en", translated))
			return translated
		}
	}

	log.L.Warn("declare name not mapped, using fallback", zap.String("text", text), zap.String("en", Fallback))
	return Fallback
}
