package config

import (
	"fmt"

	"github.com/rushteam/barkit/catalog"
	"github.com/rushteam/barkit/core"
	"github.com/rushteam/barkit/filter"
	"github.com/rushteam/barkit/pipeline"
	"github.com/rushteam/barkit/pkg/conv"
	"github.com/rushteam/barkit/rank"
	"github.com/rushteam/barkit/recall"
	"github.com/rushteam/barkit/rerank"
)

// Deps 是配置驱动组装时无法从 YAML 表达的运行期依赖：
// 酒单快照与多样性历史由入口处构建一次，注入给所有需要的 Node。
type Deps struct {
	Catalog *catalog.Catalog
	History core.History
}

// NewFactory 返回一个包含所有内置 Node 的工厂。
func NewFactory(deps Deps) *pipeline.NodeFactory {
	f := pipeline.NewNodeFactory()

	f.Register("recall.catalog", func(cfg map[string]any) (pipeline.Node, error) {
		return &recall.CatalogSource{
			Catalog:    deps.Catalog,
			Categories: conv.SliceAnyToString(cfg["categories"]),
		}, nil
	})

	f.Register("filter", func(cfg map[string]any) (pipeline.Node, error) {
		return buildFilterNode(deps, cfg)
	})

	f.Register("rank.match", func(cfg map[string]any) (pipeline.Node, error) {
		return &rank.MatchNode{
			Weights: core.Weights{
				Energy:  conv.ConfigGetFloat(cfg, "energy_weight", 0),
				Tension: conv.ConfigGetFloat(cfg, "tension_weight", 0),
				Control: conv.ConfigGetFloat(cfg, "control_weight", 0),
			},
			NeedWeight:     conv.ConfigGetFloat(cfg, "need_weight", 0),
			DiversityBonus: conv.ConfigGetFloat(cfg, "diversity_bonus", 0),
		}, nil
	})

	f.Register("rerank.sample", func(cfg map[string]any) (pipeline.Node, error) {
		node := &rerank.SampleNode{
			TopK:      conv.ConfigGetInt(cfg, "top_k", 1),
			Randomize: conv.ConfigGet(cfg, "randomize", false),
		}
		if _, ok := cfg["seed"]; ok {
			seed := int64(conv.ConfigGetInt(cfg, "seed", 0))
			node.Seed = &seed
		}
		return node, nil
	})

	f.Register("rerank.topn", func(cfg map[string]any) (pipeline.Node, error) {
		return &rerank.TopNNode{N: conv.ConfigGetInt(cfg, "n", 0)}, nil
	})

	return f
}

func buildFilterNode(deps Deps, cfg map[string]any) (pipeline.Node, error) {
	filtersConfig, ok := cfg["filters"].([]any)
	if !ok {
		return nil, fmt.Errorf("filters not found or invalid")
	}

	filters := make([]filter.Filter, 0, len(filtersConfig))
	for _, fc := range filtersConfig {
		filterMap, ok := fc.(map[string]any)
		if !ok {
			continue
		}
		switch filterType := conv.ConfigGet(filterMap, "type", ""); filterType {
		case "expr":
			filters = append(filters, filter.NewExprFilter(conv.ConfigGet(filterMap, "expression", "")))

		case "recent":
			filters = append(filters, filter.NewRecentFilter(deps.History, conv.ConfigGetInt(filterMap, "window", 0)))

		default:
			return nil, fmt.Errorf("unknown filter type: %s", filterType)
		}
	}

	return &filter.FilterNode{Filters: filters}, nil
}
