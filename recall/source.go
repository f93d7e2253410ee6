package recall

import (
	"context"

	"github.com/rushteam/barkit/core"
)

// Source 表示一个可复用的候选来源。
// 目前只有酒单一个来源，但保持接口形态方便未来扩展（季节限定酒单等）。
type Source interface {
	Name() string
	Recall(ctx context.Context, rctx *core.RecommendContext) ([]*core.Item, error)
}
