// Package ingredient 实现原料检索：基于关键词重叠，在原料条目里找出
// 适合做创意微调的候选（选定基酒之后的第二步）。
//
// 有意保持朴素：子串匹配 + 计分排序，不做语义/向量检索。
package ingredient

import (
	"context"
	"sort"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/rushteam/barkit/catalog"
	"github.com/rushteam/barkit/core"
)

// MaxResults 是单次检索返回的原料上限。
const MaxResults = 10

// 关键词计分：命中需求标签权重高于命中描述/名称。
const (
	needMatchPoints = 2
	textMatchPoints = 1
)

// Matcher 在酒单的原料条目上做关键词检索。
type Matcher struct {
	Catalog *catalog.Catalog
}

// GroupQuery 描述一次分组检索：类目 + 该组取几条。
type GroupQuery struct {
	Category string
	Limit    int
}

// Search 按需求与细微情感检索原料。
//
// 关键词为 needs 与 subtleEmotions 的小写并集；每个关键词：
//   - 是某条需求标签的子串 → +2
//   - 否则出现在描述或名称里 → +1
//
// 只保留得分 > 0 的条目，按得分稳定降序，返回前 MaxResults 条。
// category 非空时只在该类目内检索。
func (m *Matcher) Search(needs, subtleEmotions []string, category string) []*core.Cocktail {
	var pool []*core.Cocktail
	if category != "" {
		pool = m.Catalog.IngredientsOf(category)
	} else {
		pool = m.Catalog.Ingredients()
	}
	if len(pool) == 0 {
		return nil
	}

	keywords := make([]string, 0, len(needs)+len(subtleEmotions))
	for _, n := range needs {
		keywords = append(keywords, strings.ToLower(n))
	}
	for _, e := range subtleEmotions {
		keywords = append(keywords, strings.ToLower(e))
	}
	if len(keywords) == 0 {
		return nil
	}

	type scored struct {
		item   *core.Cocktail
		points int
	}
	matched := make([]scored, 0, len(pool))

	for _, item := range pool {
		itemNeeds := item.NeedsLower()
		desc := strings.ToLower(item.Description)
		name := strings.ToLower(item.Name)

		points := 0
		for _, kw := range keywords {
			if containsSubstr(itemNeeds, kw) {
				points += needMatchPoints
			} else if strings.Contains(desc, kw) || strings.Contains(name, kw) {
				points += textMatchPoints
			}
		}
		if points > 0 {
			matched = append(matched, scored{item: item, points: points})
		}
	}

	sort.SliceStable(matched, func(i, j int) bool {
		return matched[i].points > matched[j].points
	})
	if len(matched) > MaxResults {
		matched = matched[:MaxResults]
	}

	out := make([]*core.Cocktail, 0, len(matched))
	for _, s := range matched {
		out = append(out, s.item)
	}
	return out
}

// SearchGroups 并发执行多组类目检索（例如 Modifier / Fruit / Juice /
// Spice / Botanical 各取几条），结果按 groups 的顺序返回。
// 单组无命中得到空切片，不视为错误。
func (m *Matcher) SearchGroups(ctx context.Context, needs, subtleEmotions []string, groups []GroupQuery) ([][]*core.Cocktail, error) {
	out := make([][]*core.Cocktail, len(groups))
	eg, _ := errgroup.WithContext(ctx)

	for i, g := range groups {
		eg.Go(func() error {
			items := m.Search(needs, subtleEmotions, g.Category)
			if g.Limit > 0 && len(items) > g.Limit {
				items = items[:g.Limit]
			}
			out[i] = items
			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

func containsSubstr(haystacks []string, needle string) bool {
	for _, h := range haystacks {
		if strings.Contains(h, needle) {
			return true
		}
	}
	return false
}
