package core

import "github.com/rushteam/barkit/pkg/utils"

// Diffs 是三个维度上的 |target - item| 绝对差，随打分结果透出给调用方做解释。
type Diffs struct {
	Energy  int
	Tension int
	Control int
}

// Item 是推荐链路中的统一承载结构：酒款、分数、维度差、标签。
// Name 作为 best-effort 主键（酒单不强制唯一）；Labels 用于解释与策略驱动。
type Item struct {
	Name     string
	Score    float64
	Diffs    Diffs
	Cocktail *Cocktail
	Meta     map[string]any
	Labels   map[string]utils.Label
}

func NewItem(c *Cocktail) *Item {
	return &Item{
		Name:     c.Name,
		Cocktail: c,
		Meta:     make(map[string]any),
		Labels:   make(map[string]utils.Label),
	}
}

// PutLabel 写入 Label；若已存在同名 key，则按默认 Merge 规则累积。
func (it *Item) PutLabel(key string, lbl utils.Label) {
	if it.Labels == nil {
		it.Labels = make(map[string]utils.Label)
	}
	if old, ok := it.Labels[key]; ok {
		it.Labels[key] = utils.MergeLabel(old, lbl)
		return
	}
	it.Labels[key] = lbl
}
