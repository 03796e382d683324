package pipeline

import (
	"errors"
)

// ErrUnknownStage 状态既不是流水线成员也不是终止态
var ErrUnknownStage = errors.New("未知的阶段")

// Pipeline 表示一类实体的有序阶段序列，外加若干终止态。
// 终止态（例如 CANCELLED）有自己的展示列，但不参与前进/后退。
// Pipeline 是不可变的值对象，定义一次，到处使用。
type Pipeline struct {
	stages    []string
	terminals []string
	index     map[string]int
}

// New 创建一个流水线。stages 的顺序就是业务推进的顺序。
func New(stages []string, terminals ...string) Pipeline {
	idx := make(map[string]int, len(stages))
	for i, s := range stages {
		idx[s] = i
	}
	return Pipeline{
		stages:    stages,
		terminals: terminals,
		index:     idx,
	}
}

// Advance 返回 cur 的下一个阶段。已经在最后一个阶段时原样返回，
// 不视为错误；cur 不是流水线成员时返回 ErrUnknownStage。
func (p Pipeline) Advance(cur string) (string, error) {
	i, ok := p.index[cur]
	if !ok {
		return "", ErrUnknownStage
	}
	if i >= len(p.stages)-1 {
		return cur, nil
	}
	return p.stages[i+1], nil
}

// Retreat 返回 cur 的上一个阶段。已经在第一个阶段时原样返回。
func (p Pipeline) Retreat(cur string) (string, error) {
	i, ok := p.index[cur]
	if !ok {
		return "", ErrUnknownStage
	}
	if i <= 0 {
		return cur, nil
	}
	return p.stages[i-1], nil
}

// Index 返回阶段在序列中的下标，不是成员返回 -1。终止态也返回 -1。
func (p Pipeline) Index(stage string) int {
	i, ok := p.index[stage]
	if !ok {
		return -1
	}
	return i
}

// IsMember 判断是否为有序序列中的成员
func (p Pipeline) IsMember(stage string) bool {
	_, ok := p.index[stage]
	return ok
}

// IsTerminal 判断是否为终止态
func (p Pipeline) IsTerminal(stage string) bool {
	for _, t := range p.terminals {
		if t == stage {
			return true
		}
	}
	return false
}

// CanSet 判断一个状态能否被直接设置（拖拽式任意跳转）。
// 成员和终止态都可以，其余一概拒绝。
func (p Pipeline) CanSet(stage string) bool {
	return p.IsMember(stage) || p.IsTerminal(stage)
}

// First 返回第一个阶段，作为实体创建时的初始状态
func (p Pipeline) First() string {
	return p.stages[0]
}

// Stages 返回有序阶段序列的拷贝
func (p Pipeline) Stages() []string {
	res := make([]string, len(p.stages))
	copy(res, p.stages)
	return res
}

// Columns 返回看板的全部展示列：有序阶段在前，终止态在后
func (p Pipeline) Columns() []string {
	res := make([]string, 0, len(p.stages)+len(p.terminals))
	res = append(res, p.stages...)
	res = append(res, p.terminals...)
	return res
}
