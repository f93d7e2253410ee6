// Package match 实现匹配打分与选取：多因子打分、稳定排序、
// 以及可复现的加权无放回采样。
package match

import (
	"github.com/rushteam/barkit/core"
)

// 打分常量，与线上调参结果保持一致：
//   - 维度匹配与需求匹配按 60/40 合成
//   - Top Bar Cocktail 在多样性调整之后固定加 0.15
//   - 重复推荐的降分率首次 0.3，每多用一次加 0.1，封顶 0.5
const (
	dimensionShare = 0.6
	needShare      = 0.4
	topBarBonus    = 0.15

	reusePenaltyBase = 0.3
	reusePenaltyStep = 0.1
	reusePenaltyMax  = 0.5
)

// genericNeeds 是"太通用"的需求标签。命中越多的酒款适配面越广，
// 为避免安全牌霸榜，对它们整体降分。
var genericNeeds = map[string]struct{}{
	"comfort":         {},
	"relaxation":      {},
	"casual fun":      {},
	"ease":            {},
	"approachability": {},
	"nostalgia":       {},
}

// ScoreOptions 控制单次打分的权重与多样性上下文。
type ScoreOptions struct {
	// Weights 是三维打分权重；零值视为未指定，使用等权默认。
	Weights core.Weights

	// NeedWeight 缩放需求匹配贡献，参考基准 2.5；<= 0 视为未指定。
	NeedWeight float64

	// DiversityBonus 给未用过的酒款的平坦加分。
	DiversityBonus float64

	// UsedItems 是近期已推荐的酒名窗口。nil 表示无多样性上下文；
	// 非 nil 时加分与降分互斥：未用过加 DiversityBonus，用过按次数降分。
	UsedItems []string
}

func (o *ScoreOptions) normalize() {
	if o.Weights == (core.Weights{}) {
		o.Weights = core.DefaultWeights()
	}
	if o.NeedWeight <= 0 {
		o.NeedWeight = core.DefaultNeedWeight
	}
}

// Score 计算酒款与目标画像的匹配度，并返回各维度绝对差作诊断信息。
//
// 入参假定已经过 TargetProfile.Validate 与 Weights.Validate；
// 在此前提下结果保证是有限实数。
func Score(target *core.TargetProfile, c *core.Cocktail, opts ScoreOptions) (float64, core.Diffs) {
	opts.normalize()

	diffs := core.Diffs{
		Energy:  absInt(target.Energy - c.Energy),
		Tension: absInt(target.Tension - c.Tension),
		Control: absInt(target.Control - c.Control),
	}

	// 维度项：平方惩罚，让大偏差付出不成比例的代价。
	// diff=0 → 1.0，diff=4 → 0.0。
	w := opts.Weights
	dimensionScore := (w.Energy*dimFitness(diffs.Energy) +
		w.Tension*dimFitness(diffs.Tension) +
		w.Control*dimFitness(diffs.Control)) / w.Sum()

	// 需求项：小写化后取交集，分母取两边较大者（至少 1，防除零）。
	targetNeeds := target.NeedsLower()
	itemNeeds := c.NeedsLower()
	matches := countOverlap(targetNeeds, itemNeeds)
	maxNeeds := len(targetNeeds)
	if len(itemNeeds) > maxNeeds {
		maxNeeds = len(itemNeeds)
	}
	if maxNeeds < 1 {
		maxNeeds = 1
	}
	ratio := float64(matches) / float64(maxNeeds)

	base := dimensionScore*dimensionShare + ratio*needShare*opts.NeedWeight/core.DefaultNeedWeight

	// 反通用性惩罚：需求面太广的酒款降权。
	switch genericCount(itemNeeds) {
	case 0:
	case 1:
		base *= 0.9
	default:
		base *= 0.75
	}

	// 多样性调整：加分与降分互斥。
	final := base
	if opts.UsedItems != nil {
		usage := countString(opts.UsedItems, c.Name)
		if usage == 0 {
			final = base + opts.DiversityBonus
		} else {
			rate := reusePenaltyBase + reusePenaltyStep*float64(usage)
			if rate > reusePenaltyMax {
				rate = reusePenaltyMax
			}
			final = base * (1 - rate)
		}
	}

	if c.Category == core.CategoryTopBarCocktail {
		final += topBarBonus
	}

	return final, diffs
}

// dimFitness 把 [0,4] 的维度差映射为 [0,1] 的适配度。
func dimFitness(diff int) float64 {
	d := float64(diff)
	return 1.0 - d*d/16.0
}

// countOverlap 统计两组需求标签的交集大小（集合语义，重复不累计）。
func countOverlap(a, b []string) int {
	if len(a) == 0 || len(b) == 0 {
		return 0
	}
	set := make(map[string]struct{}, len(a))
	for _, s := range a {
		set[s] = struct{}{}
	}
	seen := make(map[string]struct{}, len(b))
	n := 0
	for _, s := range b {
		if _, dup := seen[s]; dup {
			continue
		}
		seen[s] = struct{}{}
		if _, ok := set[s]; ok {
			n++
		}
	}
	return n
}

func genericCount(needs []string) int {
	n := 0
	for _, need := range needs {
		if _, ok := genericNeeds[need]; ok {
			n++
		}
	}
	return n
}

func countString(list []string, s string) int {
	n := 0
	for _, v := range list {
		if v == s {
			n++
		}
	}
	return n
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
