package appstate

import (
	"context"

	"github.com/looplab/fsm"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
)

const (
	stateReady   = "ready"
	stateBlocked = "blocked"

	eventInvert  = "invert"
	eventRestore = "restore"
)

// newMachine 按钮可用/禁用两态机，GenerationBlocked 直接读它
func newMachine(blocked bool, logger *zerolog.Logger) *fsm.FSM {
	initial := stateReady
	if blocked {
		initial = stateBlocked
	}
	return fsm.NewFSM(
		initial,
		fsm.Events{
			{Name: eventInvert, Src: []string{stateReady}, Dst: stateBlocked},
			{Name: eventRestore, Src: []string{stateBlocked}, Dst: stateReady},
		},
		fsm.Callbacks{
			"enter_state": func(_ context.Context, e *fsm.Event) {
				logger.Debug().Str("from", e.Src).Str("to", e.Dst).Msg("generation state changed")
			},
		},
	)
}

// syncMachine 把状态机推到 blocked 对应的状态，已在目标状态时什么都不做
func syncMachine(m *fsm.FSM, blocked bool) error {
	event := eventRestore
	if blocked {
		event = eventInvert
	}
	if !m.Can(event) {
		return nil
	}
	err := m.Event(context.Background(), event)
	var noTransition fsm.NoTransitionError
	if err != nil && !errors.As(err, &noTransition) {
		return errors.Wrapf(err, "fsm event %s", event)
	}
	return nil
}
