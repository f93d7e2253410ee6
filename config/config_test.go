package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/rushteam/barkit/catalog"
	"github.com/rushteam/barkit/core"
	"github.com/rushteam/barkit/history"
	"github.com/rushteam/barkit/pipeline"
)

const engineYAML = `
catalog: /etc/barkit/catalog.json
weights:
  energy: 2
  tension: 1
  control: 1
need_weight: 2.5
diversity_bonus: 0.3
top_k: 2
randomize: true
history:
  backend: memory
  max_sessions: 64
  window: 5
ingredient_groups:
  - category: Modifier
    limit: 3
  - category: Fruit / Juice
    limit: 2
`

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoad(t *testing.T) {
	cfg, err := Load(writeFile(t, "engine.yaml", engineYAML))
	if err != nil {
		t.Fatal(err)
	}

	if cfg.Catalog != "/etc/barkit/catalog.json" {
		t.Fatalf("catalog = %q", cfg.Catalog)
	}
	if cfg.TopK != 2 || !cfg.Randomize || cfg.DiversityBonus != 0.3 {
		t.Fatalf("scoring defaults = %+v", cfg)
	}
	if cfg.History.Backend != "memory" || cfg.History.MaxSessions != 64 || cfg.History.Window != 5 {
		t.Fatalf("history = %+v", cfg.History)
	}
	if len(cfg.IngredientGroups) != 2 || cfg.IngredientGroups[0].Category != "Modifier" {
		t.Fatalf("groups = %+v", cfg.IngredientGroups)
	}

	if w := cfg.DimensionWeights(); w != (core.Weights{Energy: 2, Tension: 1, Control: 1}) {
		t.Fatalf("weights = %+v", w)
	}
}

func TestLoad_Errors(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatal("missing file should error")
	}
	if _, err := Load(writeFile(t, "bad.yaml", ":\n  not yaml")); err == nil {
		t.Fatal("malformed yaml should error")
	}
}

func TestDimensionWeights_Default(t *testing.T) {
	cfg := &EngineConfig{}
	if w := cfg.DimensionWeights(); w != core.DefaultWeights() {
		t.Fatalf("unset weights = %+v, want equal defaults", w)
	}
}

func TestBuildHistory(t *testing.T) {
	t.Run("memory default", func(t *testing.T) {
		h, err := (&EngineConfig{}).BuildHistory()
		if err != nil {
			t.Fatal(err)
		}
		if _, ok := h.(*history.Tracker); !ok {
			t.Fatalf("backend = %T, want *history.Tracker", h)
		}
	})

	t.Run("unknown backend", func(t *testing.T) {
		cfg := &EngineConfig{History: HistoryConfig{Backend: "etcd"}}
		if _, err := cfg.BuildHistory(); err == nil {
			t.Fatal("unknown backend should error")
		}
	})
}

const pipelineYAML = `
pipeline:
  name: barkit-default
  nodes:
    - type: recall.catalog
      config:
        categories: ["Cocktail", "Top Bar Cocktail"]
    - type: filter
      config:
        filters:
          - type: expr
            expression: 'item.energy >= 2'
    - type: rank.match
      config:
        diversity_bonus: 0.3
    - type: rerank.sample
      config:
        top_k: 2
`

func TestFactoryBuildsPipelineFromYAML(t *testing.T) {
	cfg, err := pipeline.LoadFromYAML(writeFile(t, "pipeline.yaml", pipelineYAML))
	if err != nil {
		t.Fatal(err)
	}

	cat := catalog.New([]*core.Cocktail{
		{Name: "Negroni", Category: "Cocktail", Energy: 3, Tension: 4, Control: 4},
		{Name: "Old Fashioned", Category: "Top Bar Cocktail", Energy: 2, Tension: 3, Control: 5},
		{Name: "Sleeper", Category: "Cocktail", Energy: 1, Tension: 1, Control: 1},
		{Name: "Mojito", Category: "Cocktail", Energy: 4, Tension: 2, Control: 2},
		{Name: "Elderflower Syrup", Category: "Modifier"},
	})

	p, err := cfg.BuildPipeline(NewFactory(Deps{Catalog: cat, History: history.NewTracker(0)}))
	if err != nil {
		t.Fatal(err)
	}
	if len(p.Nodes) != 4 {
		t.Fatalf("nodes = %d, want 4", len(p.Nodes))
	}

	rctx := &core.RecommendContext{
		SessionID: "s1",
		Target:    &core.TargetProfile{Energy: 3, Tension: 3, Control: 4},
		UsedItems: []string{},
	}
	items, err := p.Run(context.Background(), rctx, nil)
	if err != nil {
		t.Fatal(err)
	}

	// recall 出 4 款酒（Modifier 不参与），filter 剔掉低能量的 Sleeper，
	// rerank 截断到 top_k=2。
	if len(items) != 2 {
		t.Fatalf("items = %d, want 2", len(items))
	}
	for _, it := range items {
		if it.Name == "Sleeper" || it.Name == "Elderflower Syrup" {
			t.Fatalf("%s should not survive the pipeline", it.Name)
		}
		if it.Score <= 0 {
			t.Fatalf("%s not scored", it.Name)
		}
		if v, ok := it.Labels["recall_source"]; !ok || v.Value != "catalog" {
			t.Fatalf("%s missing recall_source label", it.Name)
		}
	}
	if items[0].Score < items[1].Score {
		t.Fatalf("items not sorted: %v < %v", items[0].Score, items[1].Score)
	}
}

func TestFactory_UnknownNodeType(t *testing.T) {
	f := NewFactory(Deps{})
	if _, err := f.Build("recall.telepathy", nil); err == nil {
		t.Fatal("unknown node type should error")
	}
}
