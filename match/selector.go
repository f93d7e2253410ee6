package match

import (
	"sort"

	"github.com/rushteam/barkit/core"
)

// 随机化候选池的边界：clamp(top_k*5, 10, 30)。
// 池子给够分数相近的酒款入围机会，又不至于把长尾也拉进来。
const (
	poolMin    = 10
	poolMax    = 30
	poolFactor = 5

	// scoreProbShare 是高分候选额外获得的选择概率上限（叠加在均匀底之上）。
	// 平方根衰减避免头名垄断。
	scoreProbShare = 0.5
)

// Match 是一次选取的单条结果：酒款、最终分数、维度差诊断。
type Match struct {
	Cocktail *core.Cocktail
	Score    float64
	Diffs    core.Diffs
}

// FindOptions 控制 FindBestMatch 的行为。
type FindOptions struct {
	// TopK 返回条数；<= 0 视为 1。
	TopK int

	// Weights / NeedWeight / DiversityBonus / UsedItems 透传给打分，
	// 语义见 ScoreOptions。
	Weights        core.Weights
	NeedWeight     float64
	DiversityBonus float64
	UsedItems      []string

	// Randomize 开启后在头部候选池内做加权无放回采样。
	Randomize bool

	// Seed 指定随机种子以获得可复现的采样序列；nil 时每次取新熵。
	// 仅用于测试与离线回放，线上调用不传。
	Seed *int64
}

// FindBestMatch 对全部候选打分排序，按需做加权随机采样，返回前 TopK 条。
//
//   - 排序为稳定降序，同分按候选出现顺序先到先得
//   - Randomize=false 时直接返回头部 TopK
//   - Randomize=true 时从 clamp(TopK*5, 10, 30) 的头部池做无放回加权采样
//   - 候选为空返回空列表，不臆造结果
//
// 权重与目标画像在打分前校验，非法输入直接失败而不是产出 NaN。
func FindBestMatch(target *core.TargetProfile, candidates []*core.Cocktail, opts FindOptions) ([]Match, error) {
	if err := target.Validate(); err != nil {
		return nil, err
	}
	weights := opts.Weights
	if weights == (core.Weights{}) {
		weights = core.DefaultWeights()
	}
	if err := weights.Validate(); err != nil {
		return nil, err
	}

	topK := opts.TopK
	if topK <= 0 {
		topK = 1
	}

	scoreOpts := ScoreOptions{
		Weights:        weights,
		NeedWeight:     opts.NeedWeight,
		DiversityBonus: opts.DiversityBonus,
		UsedItems:      opts.UsedItems,
	}

	scored := make([]Match, 0, len(candidates))
	for _, c := range candidates {
		if c == nil {
			continue
		}
		s, diffs := Score(target, c, scoreOpts)
		scored = append(scored, Match{Cocktail: c, Score: s, Diffs: diffs})
	}
	if len(scored) == 0 {
		return nil, nil
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})

	if !opts.Randomize {
		if len(scored) > topK {
			scored = scored[:topK]
		}
		return scored, nil
	}

	pool := scored[:PoolSize(topK, len(scored))]

	// 池子不比 TopK 大时没有采样空间，原样返回。
	if len(pool) <= topK {
		return pool, nil
	}

	scores := make([]float64, len(pool))
	for i, m := range pool {
		scores[i] = m.Score
	}
	probs := SelectionProbs(scores)
	drawn := SampleWithoutReplacement(probs, topK, NewRand(opts.Seed))

	out := make([]Match, 0, len(drawn))
	for _, idx := range drawn {
		out = append(out, pool[idx])
	}
	return out, nil
}
