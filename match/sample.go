package match

import (
	"math"
	"math/rand"
	"time"
)

// PoolSize 计算随机化候选池大小：clamp(topK*5, 10, 30)，再按候选总数封顶。
func PoolSize(topK, total int) int {
	size := topK * poolFactor
	if size < poolMin {
		size = poolMin
	}
	if size > poolMax {
		size = poolMax
	}
	if size > total {
		size = total
	}
	return size
}

// SelectionProbs 把池内分数映射为归一化选择概率：
// 均匀底 1/N 保证人人有机会，0.5*sqrt(归一化分数) 给高分平滑加成。
// 池内分数无差异时归一化分数取 0.5。
func SelectionProbs(scores []float64) []float64 {
	n := len(scores)
	if n == 0 {
		return nil
	}

	maxScore, minScore := scores[0], scores[0]
	for _, s := range scores[1:] {
		if s > maxScore {
			maxScore = s
		}
		if s < minScore {
			minScore = s
		}
	}
	scoreRange := maxScore - minScore

	probs := make([]float64, n)
	total := 0.0
	for i, s := range scores {
		normalized := 0.5
		if scoreRange > 0 {
			normalized = (s - minScore) / scoreRange
		}
		probs[i] = 1.0/float64(n) + scoreProbShare*math.Sqrt(normalized)
		total += probs[i]
	}

	if total > 0 {
		for i := range probs {
			probs[i] /= total
		}
	} else {
		uniform := 1.0 / float64(n)
		for i := range probs {
			probs[i] = uniform
		}
	}
	return probs
}

// SampleWithoutReplacement 按给定概率做无放回采样，返回抽取顺序的下标序列。
//
// 显式的"抽取-移除-重归一化"循环，不借助一次抽 k 个的原语
// （那类接口多数是有放回的）。同一 rng 状态下结果完全可复现。
func SampleWithoutReplacement(probs []float64, k int, rng *rand.Rand) []int {
	remaining := make([]int, len(probs))
	for i := range remaining {
		remaining[i] = i
	}
	weights := append([]float64(nil), probs...)

	out := make([]int, 0, k)
	for len(out) < k && len(remaining) > 0 {
		sum := 0.0
		for _, w := range weights {
			sum += w
		}

		idx := 0
		if sum <= 0 {
			idx = rng.Intn(len(remaining))
		} else {
			x := rng.Float64() * sum
			cum := 0.0
			idx = len(remaining) - 1
			for i, w := range weights {
				cum += w
				if x < cum {
					idx = i
					break
				}
			}
		}

		out = append(out, remaining[idx])
		remaining = append(remaining[:idx], remaining[idx+1:]...)
		weights = append(weights[:idx], weights[idx+1:]...)
	}
	return out
}

// NewRand 按可选种子构建随机源：有种子可复现，无种子取新熵。
func NewRand(seed *int64) *rand.Rand {
	if seed != nil {
		return rand.New(rand.NewSource(*seed))
	}
	return rand.New(rand.NewSource(time.Now().UnixNano()))
}
