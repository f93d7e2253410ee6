// Package recommender 是选酒引擎的门面：把酒单、打分选取、多样性历史与
// 原料检索装配成一次完整的"选基酒 + 配微调原料"流程。
//
// 引擎本身只产出酒款与理由素材；文案生成、渲染等由上层编排服务消费输出。
package recommender

import (
	"context"

	"github.com/rushteam/barkit/catalog"
	"github.com/rushteam/barkit/core"
	"github.com/rushteam/barkit/ingredient"
	"github.com/rushteam/barkit/match"
)

// DefaultGroups 是原料建议的默认分组：调味剂 3 条、果汁 2 条、香料 2 条。
var DefaultGroups = []ingredient.GroupQuery{
	{Category: "Modifier", Limit: 3},
	{Category: "Fruit / Juice", Limit: 2},
	{Category: "Spice / Botanical", Limit: 2},
}

// Options 是一次推荐的可调参数；零值全部取默认。
type Options struct {
	// TopK 返回条数；<= 0 视为 1。
	TopK int

	// Weights / NeedWeight / DiversityBonus 透传给打分。
	Weights        core.Weights
	NeedWeight     float64
	DiversityBonus float64

	// Randomize / Seed 控制头部候选池的加权采样。
	Randomize bool
	Seed      *int64

	// Window 是多样性回看窗口，<= 0 时用 core.HistoryWindow。
	Window int

	// SubtleEmotions 参与原料关键词检索（与 Needs 取并集）。
	SubtleEmotions []string

	// Groups 覆盖原料建议分组；nil 用 DefaultGroups。
	Groups []ingredient.GroupQuery
}

// Suggestion 是一组原料建议。
type Suggestion struct {
	Category string
	Items    []*core.Cocktail
}

// Result 是一次推荐的完整输出：选中的酒款（首位是基酒）与原料建议。
type Result struct {
	Matches     []match.Match
	Suggestions []Suggestion
}

// Recommender 持有引擎的全部依赖。酒单在构造后只读共享；
// History 是唯一的可变共享状态。
type Recommender struct {
	catalog  *catalog.Catalog
	history  core.History
	matcher  *ingredient.Matcher
	defaults Options
}

// New 构建 Recommender。history 可为 nil（无多样性上下文）。
// defaults 作为每次 Recommend 的兜底参数。
func New(cat *catalog.Catalog, hist core.History, defaults Options) *Recommender {
	return &Recommender{
		catalog:  cat,
		history:  hist,
		matcher:  &ingredient.Matcher{Catalog: cat},
		defaults: defaults,
	}
}

// Catalog 返回只读酒单快照。
func (r *Recommender) Catalog() *catalog.Catalog {
	return r.catalog
}

// Recommend 执行一次完整的选酒流程：
//
//  1. 取会话最近窗口作为多样性上下文
//  2. FindBestMatch 选出 TopK 酒款
//  3. 把首位酒款记入会话历史
//  4. 按分组检索微调原料建议
//
// 酒单没有可推荐酒款时返回空 Matches，由调用方决定兜底，
// 引擎不臆造酒款。
func (r *Recommender) Recommend(ctx context.Context, sessionID string, target *core.TargetProfile, opts *Options) (*Result, error) {
	o := r.defaults
	if opts != nil {
		o = *opts
	}

	// 有历史后端时总是给出非 nil 的窗口：空窗口意味着
	// "一切候选都未用过"，多样性加分对全场生效。
	var used []string
	if r.history != nil && sessionID != "" {
		recent, err := r.history.Recent(ctx, sessionID, o.Window)
		if err != nil {
			return nil, err
		}
		used = make([]string, 0, len(recent))
		used = append(used, recent...)
	}

	matches, err := match.FindBestMatch(target, r.catalog.Recommendables(), match.FindOptions{
		TopK:           o.TopK,
		Weights:        o.Weights,
		NeedWeight:     o.NeedWeight,
		DiversityBonus: o.DiversityBonus,
		UsedItems:      used,
		Randomize:      o.Randomize,
		Seed:           o.Seed,
	})
	if err != nil {
		return nil, err
	}
	if len(matches) == 0 {
		return &Result{}, nil
	}

	if r.history != nil && sessionID != "" {
		if err := r.history.Record(ctx, sessionID, matches[0].Cocktail.Name); err != nil {
			return nil, err
		}
	}

	groups := o.Groups
	if groups == nil {
		groups = DefaultGroups
	}
	found, err := r.matcher.SearchGroups(ctx, target.Needs, o.SubtleEmotions, groups)
	if err != nil {
		return nil, err
	}

	suggestions := make([]Suggestion, 0, len(groups))
	for i, g := range groups {
		suggestions = append(suggestions, Suggestion{
			Category: g.Category,
			Items:    found[i],
		})
	}

	return &Result{Matches: matches, Suggestions: suggestions}, nil
}
