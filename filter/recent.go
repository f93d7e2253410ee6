package filter

import (
	"context"

	"github.com/rushteam/barkit/core"
)

// Recent 是近期已推荐过滤器：把会话最近窗口内出现过的酒款直接剔除。
//
// 与打分侧的多样性降分是两种力度：降分让老酒款"难"再被选中，
// Recent 让它"不可能"再被选中。按场景二选一，同时开会叠加。
type Recent struct {
	// History 提供会话历史；为 nil 时不过滤。
	History core.History

	// Window 取最近几条记录，<= 0 时用 core.HistoryWindow。
	Window int
}

func NewRecentFilter(h core.History, window int) *Recent {
	return &Recent{History: h, Window: window}
}

func (f *Recent) Name() string {
	return "filter.recent"
}

func (f *Recent) ShouldFilter(
	ctx context.Context,
	rctx *core.RecommendContext,
	item *core.Item,
) (bool, error) {
	if f.History == nil || rctx == nil || rctx.SessionID == "" || item == nil {
		return false, nil
	}

	recent, err := f.History.Recent(ctx, rctx.SessionID, f.Window)
	if err != nil {
		return false, err
	}
	for _, name := range recent {
		if name == item.Name {
			return true, nil
		}
	}
	return false, nil
}
