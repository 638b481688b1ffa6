package appstate

import (
	"github.com/looplab/fsm"
	"github.com/rs/zerolog"

	"github.com/cute-angelia/go-xrange/syntax/irandom"
	"github.com/cute-angelia/go-xrange/syntax/irange"
	"github.com/cute-angelia/go-xrange/utils/ilog"
)

const PackageName = "component.appstate"

type Option func(s *State)

// WithSource 指定随机源，默认使用全局自动播种的随机源
func WithSource(src irandom.Source) Option {
	return func(s *State) { s.src = src }
}

func WithLogger(l zerolog.Logger) Option {
	return func(s *State) { s.logger = ilog.Pkg(l, PackageName) }
}

// State 整个会话的可变状态
// 只有一个持有者按顺序投递事件，不做并发保护
type State struct {
	start  irange.Value
	end    irange.Value
	result irange.Value
	hasRes bool

	// ready / blocked，恒等于 end < start，每次修改边界立即重算
	machine *fsm.FSM
	src     irandom.Source
	logger  zerolog.Logger
}

// New 由持久化或默认边界创建，结果为空；非法边界退回默认值
func New(start, end irange.Value, opts ...Option) *State {
	if !start.Valid() {
		start = irange.Default
	}
	if !end.Valid() {
		end = irange.Default
	}
	s := &State{
		start:  start,
		end:    end,
		src:    irandom.Default(),
		logger: zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.machine = newMachine(s.end.Less(s.start), &s.logger)
	return s
}

// Default start = end = 1
func Default(opts ...Option) *State {
	return New(irange.Default, irange.Default, opts...)
}

// Transition 唯一的状态变更入口
func (s *State) Transition(ev Event) {
	switch e := ev.(type) {
	case SetRangeStart:
		if !e.Value.Valid() {
			s.logger.Warn().Msg("ignored zero range start")
			return
		}
		s.start = e.Value
		s.recompute()
	case SetRangeEnd:
		if !e.Value.Valid() {
			s.logger.Warn().Msg("ignored zero range end")
			return
		}
		s.end = e.Value
		s.recompute()
	case Generate:
		s.generate()
	}
}

func (s *State) recompute() {
	if err := syncMachine(s.machine, s.end.Less(s.start)); err != nil {
		s.logger.Error().Err(err).Msg("sync generation state")
	}
}

func (s *State) generate() {
	if s.GenerationBlocked() {
		s.logger.Debug().Stringer("start", s.start).Stringer("end", s.end).Msg("generate ignored, range inverted")
		return
	}
	n := irandom.IntRange(s.src, int(s.start), int(s.end))
	s.result = irange.Value(n)
	s.hasRes = true
	s.logger.Debug().Stringer("result", s.result).Msg("generated")
}

func (s *State) Start() irange.Value { return s.start }
func (s *State) End() irange.Value   { return s.end }

// Result 最近一次抽取结果；之后修改边界不会清除它
func (s *State) Result() (irange.Value, bool) {
	return s.result, s.hasRes
}

func (s *State) GenerationBlocked() bool {
	return s.machine.Is(stateBlocked)
}

// Machine 当前两态机状态名，ready 或 blocked
func (s *State) Machine() string {
	return s.machine.Current()
}

// Snapshot 展示层读取用
type Snapshot struct {
	Start   uint8  `json:"start"`
	End     uint8  `json:"end"`
	Result  *uint8 `json:"result"`
	Blocked bool   `json:"generation_blocked"`
}

func (s *State) Snapshot() Snapshot {
	snap := Snapshot{
		Start:   s.start.Get(),
		End:     s.end.Get(),
		Blocked: s.GenerationBlocked(),
	}
	if s.hasRes {
		r := s.result.Get()
		snap.Result = &r
	}
	return snap
}
