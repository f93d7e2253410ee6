package core

import "context"

// Store 是存储的领域接口。
//
// 设计原则：
//   - 定义在领域层（core），由基础设施层（store）实现
//   - 遵循依赖倒置原则：领域层定义接口，基础设施层实现接口
//   - 避免循环依赖：领域层不依赖基础设施层
//
// 使用场景：
//   - 会话历史存储（DiversityTracker 的共享后端）
//   - 结果缓存
//
// 实现：
//   - store.MemoryStore 实现此接口
//   - store.RedisStore 实现此接口
type Store interface {
	// Name 返回存储后端名称（用于日志/监控）
	Name() string

	// Get 读取单个 key 的值
	Get(ctx context.Context, key string) ([]byte, error)

	// Set 写入单个 key-value
	Set(ctx context.Context, key string, value []byte, ttl ...int) error

	// Delete 删除单个 key
	Delete(ctx context.Context, key string) error

	// Close 关闭连接/释放资源
	Close() error
}

// ListStore 是 Store 的扩展接口，提供有界列表操作。
// 会话历史本质是"最近 N 条"的定长窗口，用 LPush + LTrim + LRange 表达。
//
// 如果后端不支持，可返回 ErrStoreNotSupported。
type ListStore interface {
	Store

	// LPush 向列表头部插入元素（最近的记录在最前）
	LPush(ctx context.Context, key string, values ...string) error

	// LTrim 裁剪列表，只保留 [start, stop] 区间（含两端）
	LTrim(ctx context.Context, key string, start, stop int64) error

	// LRange 读取 [start, stop] 区间的元素（含两端）
	LRange(ctx context.Context, key string, start, stop int64) ([]string, error)

	// Expire 为 key 设置过期秒数（会话级 TTL）
	Expire(ctx context.Context, key string, ttl int) error
}

// Store 错误定义（使用统一的 DomainError）
var (
	// ErrStoreNotFound 表示 key 不存在
	ErrStoreNotFound = NewDomainError(ModuleStore, ErrorCodeNotFound, "store: key not found")

	// ErrStoreNotSupported 表示操作不支持
	ErrStoreNotSupported = NewDomainError(ModuleStore, ErrorCodeNotSupported, "store: operation not supported")
)

// IsStoreNotFound 检查错误是否为 key 不存在
func IsStoreNotFound(err error) bool {
	domainErr := GetDomainError(err)
	return domainErr != nil && domainErr.Module == ModuleStore && domainErr.Code == ErrorCodeNotFound
}
