// Package barkit 是一个鸡尾酒推荐引擎（Bartender Kit）。
//
// 设计要点：
// - Pipeline-first: 选酒逻辑通过 Node 串联（Recall → Filter → Rank → ReRank）
// - Labels-first: labels 全链路透传与标准化 merge，支持 explain / 观测 / 策略驱动
// - 多样性内建: 会话级历史窗口参与打分，近期推荐过的酒款被降分或剔除
// - 可复现随机: 头部候选池的加权无放回采样支持外部种子
package barkit

import "github.com/rushteam/barkit/pipeline"

// 轻量 facade：便于用户直接 import "barkit" 使用核心抽象。
type Pipeline = pipeline.Pipeline
type Node = pipeline.Node
type Kind = pipeline.Kind

const (
	KindRecall      = pipeline.KindRecall
	KindFilter      = pipeline.KindFilter
	KindRank        = pipeline.KindRank
	KindReRank      = pipeline.KindReRank
	KindPostProcess = pipeline.KindPostProcess
)
