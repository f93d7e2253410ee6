package filter

import (
	"context"

	"github.com/rushteam/barkit/core"
	"github.com/rushteam/barkit/pkg/dsl"
)

// Expr 是表达式过滤器：用 CEL 表达式描述"保留哪些酒款"。
// 表达式返回 false 的酒款被过滤掉。
//
// 示例：
//   - `item.category == "Top Bar Cocktail"` → 只保留 Top Bar
//   - `item.energy >= 3 && !("nostalgia" in item.needs)` → 高能量且不怀旧
type Expr struct {
	Expression string
}

func NewExprFilter(expression string) *Expr {
	return &Expr{Expression: expression}
}

func (f *Expr) Name() string {
	return "filter.expr"
}

func (f *Expr) ShouldFilter(
	_ context.Context,
	rctx *core.RecommendContext,
	item *core.Item,
) (bool, error) {
	if f.Expression == "" || item == nil {
		return false, nil
	}

	keep, err := dsl.NewEval(item, rctx).Evaluate(f.Expression)
	if err != nil {
		return false, err
	}
	return !keep, nil
}
