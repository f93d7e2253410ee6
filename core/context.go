package core

import "github.com/rushteam/barkit/pkg/utils"

// RecommendContext 承载一次选酒请求的上下文，贯穿整个 Pipeline 透传。
type RecommendContext struct {
	// SessionID 标识多样性历史的归属；同一会话多次选酒会互相影响。
	SessionID string

	// Target 是目标画像（维度 + 需求）。Rank 节点依赖它打分。
	Target *TargetProfile

	// UsedItems 是近期已推荐过的酒名窗口（通常来自 DiversityTracker.Recent）。
	// nil 表示无多样性上下文；非 nil 空列表表示所有候选都未用过。
	UsedItems []string

	// Params 请求级参数：weights、diversity_bonus、debug 标记等。
	Params map[string]any

	// Labels 是请求级标签，可驱动整个 Pipeline 行为。
	Labels map[string]utils.Label
}

// PutLabel 写入请求级 Label。
func (rctx *RecommendContext) PutLabel(key string, lbl utils.Label) {
	if rctx.Labels == nil {
		rctx.Labels = make(map[string]utils.Label)
	}
	if old, ok := rctx.Labels[key]; ok {
		rctx.Labels[key] = utils.MergeLabel(old, lbl)
		return
	}
	rctx.Labels[key] = lbl
}

// GetLabel 获取请求级 Label。
func (rctx *RecommendContext) GetLabel(key string) (utils.Label, bool) {
	if rctx.Labels == nil {
		return utils.Label{}, false
	}
	lbl, ok := rctx.Labels[key]
	return lbl, ok
}
