package recommender

import (
	"context"
	"testing"

	"github.com/rushteam/barkit/catalog"
	"github.com/rushteam/barkit/core"
	"github.com/rushteam/barkit/history"
	"github.com/rushteam/barkit/ingredient"
)

func fixtureCatalog() *catalog.Catalog {
	return catalog.New([]*core.Cocktail{
		{Name: "Spritz", Category: "Cocktail", Energy: 3, Tension: 3, Control: 3,
			Needs: []string{"comfort"}},
		{Name: "Highball", Category: "Cocktail", Energy: 3, Tension: 3, Control: 3},
		{Name: "Elderflower Syrup", Category: "Modifier",
			Description: "floral sweetness, gentle comfort"},
		{Name: "Fresh Lime Juice", Category: "Fruit / Juice",
			Description: "bright acidity, refreshment"},
	})
}

func comfortTarget() *core.TargetProfile {
	return &core.TargetProfile{Energy: 3, Tension: 3, Control: 3, Needs: []string{"comfort"}}
}

func TestRecommend_RotatesWithinSession(t *testing.T) {
	ctx := context.Background()
	tracker := history.NewTracker(0)
	rec := New(fixtureCatalog(), tracker, Options{
		TopK:           1,
		DiversityBonus: 0.3,
	})

	// 第一轮：Spritz 需求全中，胜出并记入会话历史。
	result, err := rec.Recommend(ctx, "s1", comfortTarget(), nil)
	if err != nil {
		t.Fatal(err)
	}
	if len(result.Matches) != 1 || result.Matches[0].Cocktail.Name != "Spritz" {
		t.Fatalf("round 1 = %+v, want Spritz", result.Matches)
	}

	recent, err := tracker.Recent(ctx, "s1", 0)
	if err != nil {
		t.Fatal(err)
	}
	if len(recent) != 1 || recent[0] != "Spritz" {
		t.Fatalf("history = %v, want [Spritz]", recent)
	}

	// 第二轮：Spritz 被多样性降分，Highball 接棒。
	result, err = rec.Recommend(ctx, "s1", comfortTarget(), nil)
	if err != nil {
		t.Fatal(err)
	}
	if len(result.Matches) != 1 || result.Matches[0].Cocktail.Name != "Highball" {
		t.Fatalf("round 2 = %+v, want Highball", result.Matches)
	}

	// 其他会话不受影响。
	result, err = rec.Recommend(ctx, "s2", comfortTarget(), nil)
	if err != nil {
		t.Fatal(err)
	}
	if result.Matches[0].Cocktail.Name != "Spritz" {
		t.Fatalf("other session = %+v, want Spritz", result.Matches)
	}
}

func TestRecommend_Suggestions(t *testing.T) {
	rec := New(fixtureCatalog(), nil, Options{TopK: 1})

	result, err := rec.Recommend(context.Background(), "", comfortTarget(), &Options{
		TopK:           1,
		SubtleEmotions: []string{"refreshment"},
		Groups: []ingredient.GroupQuery{
			{Category: "Modifier", Limit: 3},
			{Category: "Fruit / Juice", Limit: 2},
		},
	})
	if err != nil {
		t.Fatal(err)
	}

	if len(result.Suggestions) != 2 {
		t.Fatalf("suggestions = %d groups, want 2", len(result.Suggestions))
	}
	if result.Suggestions[0].Category != "Modifier" ||
		len(result.Suggestions[0].Items) != 1 ||
		result.Suggestions[0].Items[0].Name != "Elderflower Syrup" {
		t.Fatalf("modifier group = %+v", result.Suggestions[0])
	}
	if result.Suggestions[1].Category != "Fruit / Juice" ||
		len(result.Suggestions[1].Items) != 1 ||
		result.Suggestions[1].Items[0].Name != "Fresh Lime Juice" {
		t.Fatalf("juice group = %+v", result.Suggestions[1])
	}
}

func TestRecommend_EmptyCatalog(t *testing.T) {
	rec := New(catalog.New(nil), history.NewTracker(0), Options{})

	result, err := rec.Recommend(context.Background(), "s1", comfortTarget(), nil)
	if err != nil {
		t.Fatal(err)
	}
	// 空酒单返回空结果，不臆造酒款，也不写历史。
	if len(result.Matches) != 0 || len(result.Suggestions) != 0 {
		t.Fatalf("result = %+v, want empty", result)
	}
}

func TestRecommend_NoHistoryBackend(t *testing.T) {
	rec := New(fixtureCatalog(), nil, Options{TopK: 2, DiversityBonus: 0.3})

	// 无历史后端：多样性上下文缺失，连续两轮结果一致。
	for i := 0; i < 2; i++ {
		result, err := rec.Recommend(context.Background(), "s1", comfortTarget(), nil)
		if err != nil {
			t.Fatal(err)
		}
		if len(result.Matches) != 2 || result.Matches[0].Cocktail.Name != "Spritz" {
			t.Fatalf("round %d = %+v", i+1, result.Matches)
		}
	}
}

func TestRecommend_InvalidTarget(t *testing.T) {
	rec := New(fixtureCatalog(), history.NewTracker(0), Options{})

	_, err := rec.Recommend(context.Background(), "s1",
		&core.TargetProfile{Energy: 0, Tension: 3, Control: 3}, nil)
	if !core.IsInvalidInput(err) {
		t.Fatalf("err = %v, want invalid input", err)
	}
}

func TestRecommend_SeededReproducible(t *testing.T) {
	seed := int64(42)
	rec := New(fixtureCatalog(), nil, Options{
		TopK: 1, Randomize: true, Seed: &seed,
	})

	first, err := rec.Recommend(context.Background(), "", comfortTarget(), nil)
	if err != nil {
		t.Fatal(err)
	}
	second, err := rec.Recommend(context.Background(), "", comfortTarget(), nil)
	if err != nil {
		t.Fatal(err)
	}
	if first.Matches[0].Cocktail.Name != second.Matches[0].Cocktail.Name {
		t.Fatalf("same seed diverged: %s vs %s",
			first.Matches[0].Cocktail.Name, second.Matches[0].Cocktail.Name)
	}
}
