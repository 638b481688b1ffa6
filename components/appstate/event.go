package appstate

import "github.com/cute-angelia/go-xrange/syntax/irange"

// Event 由展示层逐个投递给 State.Transition
type Event interface {
	isEvent()
}

// SetRangeStart 修改起点
type SetRangeStart struct {
	Value irange.Value
}

// SetRangeEnd 修改终点
type SetRangeEnd struct {
	Value irange.Value
}

// Generate 在 [start, end] 内抽取一个数，区间倒置时忽略
type Generate struct{}

func (SetRangeStart) isEvent() {}
func (SetRangeEnd) isEvent()   {}
func (Generate) isEvent()      {}
