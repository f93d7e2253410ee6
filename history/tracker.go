// Package history 实现多样性历史（DiversityTracker）：按会话记录近期推荐过
// 的酒名，选酒时取最近窗口做多样性加减分。
//
// 两种实现：
//   - Tracker：进程内，LRU 限制会话总数（防任意会话 ID 撑爆内存）
//   - StoreTracker：ListStore 后端（如 Redis），多进程共享，按 TTL 过期
package history

import (
	"context"
	"sync"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/rushteam/barkit/core"
)

// DefaultMaxSessions 是进程内 Tracker 默认的会话上限。
const DefaultMaxSessions = 1024

// Tracker 是进程内的多样性历史。
// 会话总数由 LRU 兜底；单个会话内的读写由会话自己的锁串行化，
// 不同会话互不阻塞。
type Tracker struct {
	sessions *lru.Cache[string, *session]
	retain   int
}

type session struct {
	mu    sync.Mutex
	names []string
}

// NewTracker 创建进程内 Tracker。maxSessions <= 0 时取 DefaultMaxSessions。
func NewTracker(maxSessions int) *Tracker {
	if maxSessions <= 0 {
		maxSessions = DefaultMaxSessions
	}
	cache, _ := lru.New[string, *session](maxSessions)
	return &Tracker{
		sessions: cache,
		retain:   core.MaxHistoryRetain,
	}
}

// Record 追加一条推荐记录；超过保留上限时丢弃最旧的。
func (t *Tracker) Record(_ context.Context, sessionID, name string) error {
	sess := t.session(sessionID)
	sess.mu.Lock()
	defer sess.mu.Unlock()

	sess.names = append(sess.names, name)
	if len(sess.names) > t.retain {
		sess.names = sess.names[len(sess.names)-t.retain:]
	}
	return nil
}

// Recent 返回最近 window 条记录（时间升序）；未知会话返回空。
func (t *Tracker) Recent(_ context.Context, sessionID string, window int) ([]string, error) {
	if window <= 0 {
		window = core.HistoryWindow
	}
	sess, ok := t.sessions.Get(sessionID)
	if !ok {
		return nil, nil
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()

	start := 0
	if len(sess.names) > window {
		start = len(sess.names) - window
	}
	out := make([]string, len(sess.names)-start)
	copy(out, sess.names[start:])
	return out, nil
}

// Len 返回当前跟踪的会话数（观测用）。
func (t *Tracker) Len() int {
	return t.sessions.Len()
}

func (t *Tracker) session(id string) *session {
	fresh := &session{}
	if prev, ok, _ := t.sessions.PeekOrAdd(id, fresh); ok {
		return prev
	}
	return fresh
}

var _ core.History = (*Tracker)(nil)
