package rerank

import (
	"context"

	"github.com/rushteam/barkit/core"
	"github.com/rushteam/barkit/match"
	"github.com/rushteam/barkit/pipeline"
	"github.com/rushteam/barkit/pkg/utils"
)

// SampleNode 是随机化 ReRank 节点：在已排序结果的头部池内做
// 加权无放回采样，取 TopK。通常放在 rank.MatchNode 之后。
//
// Randomize=false 时退化为截断（等价 TopN）。
type SampleNode struct {
	// TopK 返回条数；<= 0 视为 1。
	TopK int

	// Randomize 开启采样；关闭时直接截断头部。
	Randomize bool

	// Seed 指定随机种子以复现采样序列；nil 时每次取新熵。
	Seed *int64
}

func (n *SampleNode) Name() string        { return "rerank.sample" }
func (n *SampleNode) Kind() pipeline.Kind { return pipeline.KindReRank }

func (n *SampleNode) Process(
	_ context.Context,
	_ *core.RecommendContext,
	items []*core.Item,
) ([]*core.Item, error) {
	if len(items) == 0 {
		return items, nil
	}

	topK := n.TopK
	if topK <= 0 {
		topK = 1
	}

	if !n.Randomize {
		if len(items) > topK {
			items = items[:topK]
		}
		return items, nil
	}

	pool := items[:match.PoolSize(topK, len(items))]
	if len(pool) <= topK {
		return pool, nil
	}

	scores := make([]float64, len(pool))
	for i, it := range pool {
		if it != nil {
			scores[i] = it.Score
		}
	}
	probs := match.SelectionProbs(scores)
	drawn := match.SampleWithoutReplacement(probs, topK, match.NewRand(n.Seed))

	out := make([]*core.Item, 0, len(drawn))
	for _, idx := range drawn {
		it := pool[idx]
		if it != nil {
			it.PutLabel("rerank_sampled", utils.Label{Value: "true", Source: "rerank"})
		}
		out = append(out, it)
	}
	return out, nil
}
