package store

import (
	"context"
	"sync"
	"time"

	"github.com/rushteam/barkit/core"
)

// MemoryStore 是内存实现的 ListStore，用于测试/开发/原型。
// 支持 TTL（过期时间），但进程重启后数据丢失。
type MemoryStore struct {
	mu    sync.RWMutex
	data  map[string]*entry
	lists map[string]*listEntry
	clean *time.Ticker
	done  chan struct{}
}

type entry struct {
	value  []byte
	expire *time.Time
}

type listEntry struct {
	values []string
	expire *time.Time
}

func NewMemoryStore() *MemoryStore {
	ms := &MemoryStore{
		data:  make(map[string]*entry),
		lists: make(map[string]*listEntry),
		clean: time.NewTicker(10 * time.Second),
		done:  make(chan struct{}),
	}
	go ms.cleanup()
	return ms
}

func (m *MemoryStore) Name() string { return "memory" }

func (m *MemoryStore) Get(ctx context.Context, key string) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	e, ok := m.data[key]
	if !ok || expired(e.expire) {
		return nil, core.ErrStoreNotFound
	}
	return e.value, nil
}

func (m *MemoryStore) Set(ctx context.Context, key string, value []byte, ttl ...int) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	e := &entry{value: value}
	if len(ttl) > 0 && ttl[0] > 0 {
		t := time.Now().Add(time.Duration(ttl[0]) * time.Second)
		e.expire = &t
	}
	m.data[key] = e
	return nil
}

func (m *MemoryStore) Delete(ctx context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.data, key)
	delete(m.lists, key)
	return nil
}

func (m *MemoryStore) LPush(ctx context.Context, key string, values ...string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	le, ok := m.lists[key]
	if !ok || expired(le.expire) {
		le = &listEntry{}
		m.lists[key] = le
	}
	// 与 Redis LPUSH 一致：逐个插入表头，最后一个参数最终在最前。
	for _, v := range values {
		le.values = append([]string{v}, le.values...)
	}
	return nil
}

func (m *MemoryStore) LTrim(ctx context.Context, key string, start, stop int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	le, ok := m.lists[key]
	if !ok || expired(le.expire) {
		return nil
	}
	le.values = sliceRange(le.values, start, stop)
	return nil
}

func (m *MemoryStore) LRange(ctx context.Context, key string, start, stop int64) ([]string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	le, ok := m.lists[key]
	if !ok || expired(le.expire) {
		return nil, nil
	}
	out := sliceRange(le.values, start, stop)
	return append([]string(nil), out...), nil
}

func (m *MemoryStore) Expire(ctx context.Context, key string, ttl int) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if ttl <= 0 {
		return nil
	}
	t := time.Now().Add(time.Duration(ttl) * time.Second)
	if e, ok := m.data[key]; ok {
		e.expire = &t
	}
	if le, ok := m.lists[key]; ok {
		le.expire = &t
	}
	return nil
}

func (m *MemoryStore) Close() error {
	m.clean.Stop()
	close(m.done)
	return nil
}

func (m *MemoryStore) cleanup() {
	for {
		select {
		case <-m.done:
			return
		case <-m.clean.C:
			m.mu.Lock()
			for k, e := range m.data {
				if expired(e.expire) {
					delete(m.data, k)
				}
			}
			for k, le := range m.lists {
				if expired(le.expire) {
					delete(m.lists, k)
				}
			}
			m.mu.Unlock()
		}
	}
}

func expired(t *time.Time) bool {
	return t != nil && time.Now().After(*t)
}

// sliceRange 按 Redis 的 [start, stop] 语义截取（含两端，负数从尾部数）。
func sliceRange(values []string, start, stop int64) []string {
	n := int64(len(values))
	if n == 0 {
		return nil
	}
	if start < 0 {
		start += n
		if start < 0 {
			start = 0
		}
	}
	if stop < 0 {
		stop += n
	}
	if stop >= n {
		stop = n - 1
	}
	if start > stop || start >= n {
		return nil
	}
	return values[start : stop+1]
}

var _ core.ListStore = (*MemoryStore)(nil)
