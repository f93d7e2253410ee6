package core

import (
	"fmt"
	"strings"
)

// DefaultNeedWeight 是需求匹配权重的参考基准：
// 需求项贡献按 NeedWeight/DefaultNeedWeight 缩放，默认不放大不缩小。
const DefaultNeedWeight = 2.5

// Weights 是三个维度的打分权重。0 合法（屏蔽该维度），全 0 视为输入错误。
type Weights struct {
	Energy  float64
	Tension float64
	Control float64
}

// DefaultWeights 返回各维度等权的默认配置。
func DefaultWeights() Weights {
	return Weights{Energy: 1.0, Tension: 1.0, Control: 1.0}
}

// Sum 返回权重之和，用于归一化分母。
func (w Weights) Sum() float64 {
	return w.Energy + w.Tension + w.Control
}

// Validate 拒绝会导致 NaN/Inf 分数的权重：负值与全 0 都在打分前失败。
func (w Weights) Validate() error {
	if w.Energy < 0 || w.Tension < 0 || w.Control < 0 {
		return NewDomainError(ModuleMatch, ErrorCodeInvalidInput, "match: dimension weight must be >= 0")
	}
	if w.Sum() <= 0 {
		return NewDomainError(ModuleMatch, ErrorCodeInvalidInput, "match: all dimension weights are zero")
	}
	return nil
}

// TargetProfile 是调用方给出的目标画像：三维坐标 + 自由文本需求。
// 请求级数据，不持久化。
type TargetProfile struct {
	Energy  int
	Tension int
	Control int
	Needs   []string
}

// Validate 在入口处断言维度落在 [1,5]。
// 打分公式 1 - diff²/16 在 diff > 4 时会变负，靠这里保证不可能发生。
func (p *TargetProfile) Validate() error {
	for _, d := range []struct {
		name  string
		value int
	}{
		{"energy", p.Energy},
		{"tension", p.Tension},
		{"control", p.Control},
	} {
		if d.value < DimMin || d.value > DimMax {
			return NewDomainError(ModuleMatch, ErrorCodeInvalidInput,
				fmt.Sprintf("match: %s=%d out of range [%d,%d]", d.name, d.value, DimMin, DimMax))
		}
	}
	return nil
}

// NeedsLower 返回小写化的需求列表。
func (p *TargetProfile) NeedsLower() []string {
	if len(p.Needs) == 0 {
		return nil
	}
	out := make([]string, 0, len(p.Needs))
	for _, n := range p.Needs {
		out = append(out, strings.ToLower(n))
	}
	return out
}
