package history

import (
	"context"

	"github.com/rushteam/barkit/core"
)

// StoreTracker 是 ListStore 后端的多样性历史，多进程共享同一份会话窗口。
// 生产环境配 store.RedisStore；测试配 store.MemoryStore。
//
// 数据布局：每个会话一个 list，key 为 {KeyPrefix}:{SessionID}，
// 最新记录在表头，LTrim 保证长度不超过 MaxHistoryRetain。
type StoreTracker struct {
	Store core.ListStore

	// KeyPrefix 默认 "session:history"
	KeyPrefix string

	// TTL 是会话 key 的过期秒数，0 表示不过期。
	// 共享后端没有 LRU 可依赖，靠 TTL 回收废弃会话。
	TTL int
}

func (t *StoreTracker) key(sessionID string) string {
	prefix := t.KeyPrefix
	if prefix == "" {
		prefix = "session:history"
	}
	return prefix + ":" + sessionID
}

// Record 追加一条推荐记录并裁剪窗口。
func (t *StoreTracker) Record(ctx context.Context, sessionID, name string) error {
	key := t.key(sessionID)
	if err := t.Store.LPush(ctx, key, name); err != nil {
		return err
	}
	if err := t.Store.LTrim(ctx, key, 0, int64(core.MaxHistoryRetain-1)); err != nil {
		return err
	}
	if t.TTL > 0 {
		return t.Store.Expire(ctx, key, t.TTL)
	}
	return nil
}

// Recent 返回最近 window 条记录（时间升序）；未知会话返回空。
func (t *StoreTracker) Recent(ctx context.Context, sessionID string, window int) ([]string, error) {
	if window <= 0 {
		window = core.HistoryWindow
	}
	names, err := t.Store.LRange(ctx, t.key(sessionID), 0, int64(window-1))
	if err != nil {
		if core.IsStoreNotFound(err) {
			return nil, nil
		}
		return nil, err
	}

	// 表头是最新记录，翻转成时间升序。
	for i, j := 0, len(names)-1; i < j; i, j = i+1, j-1 {
		names[i], names[j] = names[j], names[i]
	}
	return names, nil
}

var _ core.History = (*StoreTracker)(nil)
