package dsl

import (
	"fmt"
	"sync"

	"github.com/google/cel-go/cel"

	"github.com/rushteam/barkit/core"
)

var (
	// celEnv 是全局的 CEL 环境，线程安全，可复用
	celEnv     *cel.Env
	celEnvOnce sync.Once
)

func initCELEnv() (*cel.Env, error) {
	env, err := cel.NewEnv(
		cel.Variable("item", cel.DynType),
		cel.Variable("label", cel.DynType),
		cel.Variable("rctx", cel.DynType),
	)
	return env, err
}

func getCELEnv() (*cel.Env, error) {
	var err error
	celEnvOnce.Do(func() {
		celEnv, err = initCELEnv()
	})
	return celEnv, err
}

// Eval 是规则 DSL 解释器，使用 CEL (Common Expression Language) 实现。
//
// 表达式语法（CEL 标准语法）：
//   - 属性：item.energy >= 3 / item.category == "Cocktail"
//   - 分数：item.score > 0.7
//   - 需求："comfort" in item.needs
//   - 标签：label.recall_source == "catalog"
//   - 逻辑：item.energy >= 3 && item.tension <= 2
//
// 示例：
//   - `item.category == "Top Bar Cocktail"` → 只保留 Top Bar 酒款
//   - `!("nostalgia" in item.needs)` → 排除怀旧向的酒款
type Eval struct {
	item *core.Item
	rctx *core.RecommendContext
	env  *cel.Env
}

// NewEval 创建一个新的 DSL 解释器。
func NewEval(item *core.Item, rctx *core.RecommendContext) *Eval {
	env, _ := getCELEnv()
	return &Eval{
		item: item,
		rctx: rctx,
		env:  env,
	}
}

// Evaluate 解析并执行 DSL 表达式，返回布尔结果。
// 空表达式恒为 true。
func (e *Eval) Evaluate(expr string) (bool, error) {
	if expr == "" {
		return true, nil
	}

	ast, issues := e.env.Compile(expr)
	if issues != nil && issues.Err() != nil {
		return false, fmt.Errorf("compile error: %v", issues.Err())
	}

	prg, err := e.env.Program(ast)
	if err != nil {
		return false, fmt.Errorf("program error: %v", err)
	}

	out, _, err := prg.Eval(e.buildInput())
	if err != nil {
		// 访问不存在的 key 时 CEL 会报错，
		// 用户应该用 label.key != null 检查存在性
		return false, fmt.Errorf("eval error: %v", err)
	}

	result, ok := out.Value().(bool)
	if !ok {
		return false, fmt.Errorf("expression must return boolean, got %T", out.Value())
	}

	return result, nil
}

// buildInput 构建 CEL 表达式的输入数据
func (e *Eval) buildInput() map[string]interface{} {
	labels := make(map[string]interface{})
	labelAccessor := make(map[string]interface{})
	for k, v := range e.item.Labels {
		labels[k] = map[string]interface{}{
			"value":  v.Value,
			"source": v.Source,
		}
		// label.recall_source 直接取 value，兼容简写
		labelAccessor[k] = v.Value
	}

	needs := []interface{}{}
	category := ""
	energy, tension, control := 0, 0, 0
	if c := e.item.Cocktail; c != nil {
		for _, n := range c.NeedsLower() {
			needs = append(needs, n)
		}
		category = c.Category
		energy, tension, control = c.Energy, c.Tension, c.Control
	}

	item := map[string]interface{}{
		"name":     e.item.Name,
		"score":    e.item.Score,
		"category": category,
		"energy":   energy,
		"tension":  tension,
		"control":  control,
		"needs":    needs,
		"meta":     e.item.Meta,
		"labels":   labels,
	}

	rctx := map[string]interface{}{}
	if e.rctx != nil {
		rctx["session_id"] = e.rctx.SessionID
		rctx["params"] = e.rctx.Params
	}

	return map[string]interface{}{
		"item":  item,
		"label": labelAccessor,
		"rctx":  rctx,
	}
}
