// Package config 提供引擎级配置（YAML）与配置驱动的 Pipeline 组装。
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/rushteam/barkit/core"
	"github.com/rushteam/barkit/history"
	"github.com/rushteam/barkit/store"
)

// EngineConfig 是引擎的一站式配置：酒单路径、打分默认值、多样性历史后端。
type EngineConfig struct {
	// Catalog 是酒单 JSON 文件路径。
	Catalog string `yaml:"catalog"`

	// Weights 是默认维度权重；缺省等权。
	Weights WeightsConfig `yaml:"weights"`

	// NeedWeight 需求匹配权重，缺省 2.5。
	NeedWeight float64 `yaml:"need_weight"`

	// DiversityBonus 未用过酒款的加分，缺省 0。
	DiversityBonus float64 `yaml:"diversity_bonus"`

	// TopK 默认返回条数，缺省 1。
	TopK int `yaml:"top_k"`

	// Randomize 是否在头部候选池内做加权随机采样。
	Randomize bool `yaml:"randomize"`

	// History 多样性历史后端配置。
	History HistoryConfig `yaml:"history"`

	// IngredientGroups 原料建议的分组检索配置。
	IngredientGroups []GroupConfig `yaml:"ingredient_groups"`
}

// WeightsConfig 对应 YAML 里的维度权重。
type WeightsConfig struct {
	Energy  float64 `yaml:"energy"`
	Tension float64 `yaml:"tension"`
	Control float64 `yaml:"control"`
}

// HistoryConfig 描述多样性历史的后端与窗口。
type HistoryConfig struct {
	// Backend: "memory"（默认）或 "redis"
	Backend string `yaml:"backend"`

	// MaxSessions 进程内后端的会话上限（LRU 淘汰），缺省 1024。
	MaxSessions int `yaml:"max_sessions"`

	// Window 打分时回看的窗口条数，缺省 10。
	Window int `yaml:"window"`

	// RedisAddr / RedisDB / KeyPrefix / TTL 只在 redis 后端生效。
	RedisAddr string `yaml:"redis_addr"`
	RedisDB   int    `yaml:"redis_db"`
	KeyPrefix string `yaml:"key_prefix"`
	TTL       int    `yaml:"ttl"`
}

// GroupConfig 是一组原料建议：类目 + 取几条。
type GroupConfig struct {
	Category string `yaml:"category"`
	Limit    int    `yaml:"limit"`
}

// Load 从 YAML 文件加载引擎配置。
func Load(path string) (*EngineConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}

	var cfg EngineConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse yaml: %w", err)
	}
	return &cfg, nil
}

// DimensionWeights 返回配置的维度权重；全零视为未配置，取等权默认。
func (c *EngineConfig) DimensionWeights() core.Weights {
	w := core.Weights{
		Energy:  c.Weights.Energy,
		Tension: c.Weights.Tension,
		Control: c.Weights.Control,
	}
	if w == (core.Weights{}) {
		return core.DefaultWeights()
	}
	return w
}

// BuildHistory 按配置构建多样性历史后端。
func (c *EngineConfig) BuildHistory() (core.History, error) {
	switch c.History.Backend {
	case "", "memory":
		return history.NewTracker(c.History.MaxSessions), nil
	case "redis":
		rs, err := store.NewRedisStore(c.History.RedisAddr, c.History.RedisDB)
		if err != nil {
			return nil, fmt.Errorf("history: connect redis: %w", err)
		}
		return &history.StoreTracker{
			Store:     rs,
			KeyPrefix: c.History.KeyPrefix,
			TTL:       c.History.TTL,
		}, nil
	default:
		return nil, fmt.Errorf("history: unknown backend %q", c.History.Backend)
	}
}
