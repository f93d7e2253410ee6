package core

import "strings"

// 可推荐类目：只有这两类条目会进入匹配与选酒链路，
// 其余类目（Base Spirit / Modifier / Fruit / Juice 等）视为原料条目。
const (
	CategoryCocktail       = "Cocktail"
	CategoryTopBarCocktail = "Top Bar Cocktail"
)

// 维度取值范围与缺省值。Energy/Tension/Control 均为 [1,5] 的整数刻度。
const (
	DimMin     = 1
	DimMax     = 5
	DimDefault = 3
)

// Cocktail 是酒单中的一个条目：鸡尾酒或原料。
// 加载完成后不可变，可被所有组件无锁共享读取。
type Cocktail struct {
	Name        string
	Category    string
	Energy      int
	Tension     int
	Control     int
	Needs       []string
	Description string
	Recipe      string
}

// Recommendable 判断条目是否为可推荐的鸡尾酒（而非原料）。
func (c *Cocktail) Recommendable() bool {
	return c.Category == CategoryCocktail || c.Category == CategoryTopBarCocktail
}

// NeedsLower 返回小写化的需求标签集合，用于大小写无关的匹配。
func (c *Cocktail) NeedsLower() []string {
	if len(c.Needs) == 0 {
		return nil
	}
	out := make([]string, 0, len(c.Needs))
	for _, n := range c.Needs {
		out = append(out, strings.ToLower(n))
	}
	return out
}

// ClampDim 将维度值收敛到 [1,5]；酒单是半人工维护的数据，越界值收敛而非报错。
func ClampDim(v int) int {
	if v < DimMin {
		return DimMin
	}
	if v > DimMax {
		return DimMax
	}
	return v
}
