// Package catalog 负责酒单的加载与只读视图。
//
// 酒单是一个 JSON 数组，每个条目是一款鸡尾酒或一种原料。进程生命周期内只
// 加载一次，加载成功后所有派生视图（可推荐列表、按类目分组）在构造时算好，
// 之后无锁共享读取。
package catalog

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/rushteam/barkit/core"
)

// Catalog 持有酒单快照及其派生视图。加载后不可变。
type Catalog struct {
	items          []*core.Cocktail
	recommendables []*core.Cocktail
	byCategory     map[string][]*core.Cocktail
}

// rawItem 对应酒单文件中的原始字段。数值字段用指针区分"缺省"与"显式 0"。
type rawItem struct {
	Name        string   `json:"Name"`
	Category    string   `json:"Category"`
	Energy      *int     `json:"Energy"`
	Tension     *int     `json:"Tension"`
	Control     *int     `json:"Control"`
	Need        []string `json:"Need"`
	Description string   `json:"Description"`
	Recipe      string   `json:"Recipe"`
}

// Load 读取并解析酒单文件。文件缺失或格式非法返回 LOAD_FAILED，
// 不接受半成品酒单。
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, core.NewDomainError(core.ModuleCatalog, core.ErrorCodeLoadFailed,
			fmt.Sprintf("catalog: read %s: %v", path, err))
	}
	return Parse(data)
}

// Parse 从字节流构建 Catalog，便于测试与嵌入式数据。
func Parse(data []byte) (*Catalog, error) {
	var raws []rawItem
	if err := json.Unmarshal(data, &raws); err != nil {
		return nil, core.NewDomainError(core.ModuleCatalog, core.ErrorCodeLoadFailed,
			fmt.Sprintf("catalog: parse: %v", err))
	}

	items := make([]*core.Cocktail, 0, len(raws))
	for _, r := range raws {
		items = append(items, &core.Cocktail{
			Name:        r.Name,
			Category:    r.Category,
			Energy:      dimOrDefault(r.Energy),
			Tension:     dimOrDefault(r.Tension),
			Control:     dimOrDefault(r.Control),
			Needs:       r.Need,
			Description: r.Description,
			Recipe:      r.Recipe,
		})
	}
	return New(items), nil
}

// New 从已有条目构建 Catalog（测试注入 fixture 酒单时使用）。
// 派生视图在这里一次性算好，不做懒加载。
func New(items []*core.Cocktail) *Catalog {
	c := &Catalog{
		items:      items,
		byCategory: make(map[string][]*core.Cocktail),
	}
	for _, it := range items {
		if it.Recommendable() {
			c.recommendables = append(c.recommendables, it)
			continue
		}
		c.byCategory[it.Category] = append(c.byCategory[it.Category], it)
	}
	return c
}

// Items 返回全部条目（含原料），按文件顺序。
func (c *Catalog) Items() []*core.Cocktail {
	return c.items
}

// Recommendables 返回所有可推荐的鸡尾酒，按文件顺序。
// 排序的稳定 tie-break 依赖这个顺序。
func (c *Catalog) Recommendables() []*core.Cocktail {
	return c.recommendables
}

// ItemsByCategory 返回按类目分组的原料条目（不含可推荐酒款）。
func (c *Catalog) ItemsByCategory() map[string][]*core.Cocktail {
	return c.byCategory
}

// IngredientsOf 返回指定类目的原料；未知类目返回空。
func (c *Catalog) IngredientsOf(category string) []*core.Cocktail {
	return c.byCategory[category]
}

// Ingredients 返回全部原料条目，按文件顺序。
func (c *Catalog) Ingredients() []*core.Cocktail {
	out := make([]*core.Cocktail, 0, len(c.items)-len(c.recommendables))
	for _, it := range c.items {
		if !it.Recommendable() {
			out = append(out, it)
		}
	}
	return out
}

// FindByName 线性扫描返回第一个同名条目；酒名是 best-effort 主键，
// 重名时取先出现的。
func (c *Catalog) FindByName(name string) (*core.Cocktail, error) {
	for _, it := range c.items {
		if it.Name == name {
			return it, nil
		}
	}
	return nil, core.NewDomainError(core.ModuleCatalog, core.ErrorCodeNotFound,
		fmt.Sprintf("catalog: %q not found", name))
}

func dimOrDefault(v *int) int {
	if v == nil {
		return core.DimDefault
	}
	return core.ClampDim(*v)
}
