package rank

import (
	"context"
	"fmt"
	"sort"

	"github.com/rushteam/barkit/core"
	"github.com/rushteam/barkit/match"
	"github.com/rushteam/barkit/pipeline"
	"github.com/rushteam/barkit/pkg/utils"
)

// MatchNode 是匹配打分的排序 Node：
// - 按 rctx.Target 对每个酒款打分，写入 item.Score 与维度差
// - 写入 labels：rank_scorer、energy_diff/tension_diff/control_diff
// - 按分数稳定降序排序（同分保持酒单顺序）
type MatchNode struct {
	// Weights / NeedWeight / DiversityBonus 透传给打分；
	// 多样性窗口取 rctx.UsedItems。
	Weights        core.Weights
	NeedWeight     float64
	DiversityBonus float64
}

func (n *MatchNode) Name() string        { return "rank.match" }
func (n *MatchNode) Kind() pipeline.Kind { return pipeline.KindRank }

func (n *MatchNode) Process(
	_ context.Context,
	rctx *core.RecommendContext,
	items []*core.Item,
) ([]*core.Item, error) {
	if len(items) == 0 {
		return items, nil
	}
	if rctx == nil || rctx.Target == nil {
		return nil, core.NewDomainError(core.ModuleMatch, core.ErrorCodeInvalidInput, "rank: target profile missing")
	}
	if err := rctx.Target.Validate(); err != nil {
		return nil, err
	}
	weights := n.Weights
	if weights == (core.Weights{}) {
		weights = core.DefaultWeights()
	}
	if err := weights.Validate(); err != nil {
		return nil, err
	}

	opts := match.ScoreOptions{
		Weights:        weights,
		NeedWeight:     n.NeedWeight,
		DiversityBonus: n.DiversityBonus,
		UsedItems:      rctx.UsedItems,
	}

	for _, it := range items {
		if it == nil || it.Cocktail == nil {
			continue
		}
		score, diffs := match.Score(rctx.Target, it.Cocktail, opts)
		it.Score = score
		it.Diffs = diffs
		it.PutLabel("rank_scorer", utils.Label{Value: "match", Source: "rank"})
		it.PutLabel("energy_diff", utils.Label{Value: fmt.Sprintf("%d", diffs.Energy), Source: "rank"})
		it.PutLabel("tension_diff", utils.Label{Value: fmt.Sprintf("%d", diffs.Tension), Source: "rank"})
		it.PutLabel("control_diff", utils.Label{Value: fmt.Sprintf("%d", diffs.Control), Source: "rank"})
	}

	sort.SliceStable(items, func(i, j int) bool {
		if items[i] == nil {
			return false
		}
		if items[j] == nil {
			return true
		}
		return items[i].Score > items[j].Score
	})
	return items, nil
}
