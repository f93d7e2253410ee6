package recall

import (
	"context"

	"github.com/rushteam/barkit/catalog"
	"github.com/rushteam/barkit/core"
	"github.com/rushteam/barkit/pipeline"
	"github.com/rushteam/barkit/pkg/utils"
)

// CatalogSource 从酒单生成候选集：所有可推荐的鸡尾酒，按酒单顺序。
// CatalogSource 同时实现了 Source 和 Node 接口，可以直接在 Pipeline 中使用。
type CatalogSource struct {
	Catalog *catalog.Catalog

	// Categories 非空时只保留指定类目（例如只出 "Top Bar Cocktail"）。
	Categories []string
}

func (r *CatalogSource) Name() string        { return "recall.catalog" }
func (r *CatalogSource) Kind() pipeline.Kind { return pipeline.KindRecall }

// Process 实现 Node 接口，直接调用 Recall
func (r *CatalogSource) Process(
	ctx context.Context,
	rctx *core.RecommendContext,
	_ []*core.Item,
) ([]*core.Item, error) {
	return r.Recall(ctx, rctx)
}

// Recall 实现 Source 接口
func (r *CatalogSource) Recall(
	_ context.Context,
	_ *core.RecommendContext,
) ([]*core.Item, error) {
	if r.Catalog == nil {
		return nil, nil
	}

	var allowed map[string]bool
	if len(r.Categories) > 0 {
		allowed = make(map[string]bool, len(r.Categories))
		for _, c := range r.Categories {
			allowed[c] = true
		}
	}

	cocktails := r.Catalog.Recommendables()
	out := make([]*core.Item, 0, len(cocktails))
	for _, c := range cocktails {
		if allowed != nil && !allowed[c.Category] {
			continue
		}
		it := core.NewItem(c)
		it.PutLabel("recall_source", utils.Label{Value: "catalog", Source: "recall"})
		out = append(out, it)
	}
	return out, nil
}
