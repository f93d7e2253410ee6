package core

import "context"

// 会话历史窗口：最多保留 MaxHistoryRetain 条，打分只看最近 HistoryWindow 条。
const (
	MaxHistoryRetain = 20
	HistoryWindow    = 10
)

// History 是多样性历史的领域接口：按会话记录已推荐酒名，供打分时做多样性调整。
//
// 实现约定：
//   - 同一会话的并发写必须串行化（不丢记录、不读到撕裂的窗口）
//   - 未知会话的 Recent 返回空列表而非错误
//   - 超出 MaxHistoryRetain 的旧记录被丢弃
type History interface {
	// Record 追加一条推荐记录
	Record(ctx context.Context, sessionID, name string) error

	// Recent 返回最近 window 条记录，时间升序（最旧在前）。
	// window <= 0 时使用 HistoryWindow。
	Recent(ctx context.Context, sessionID string, window int) ([]string, error)
}
