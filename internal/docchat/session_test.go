package docchat

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStateString(t *testing.T) {
	assert.Equal(t, "Idle", StateIdle.String())
	assert.Equal(t, "AwaitingResult", StateAwaitingResult.String())
	assert.Equal(t, "Failed", StateFailed.String())
	assert.Equal(t, "Unknown", State(99).String())
}

func TestCanTransition(t *testing.T) {
	cases := []struct {
		from, to State
		ok       bool
	}{
		{StateIdle, StateConfiguring, true},
		{StateConfiguring, StateConnecting, true},
		{StateConfiguring, StateFailed, true},
		{StateConnecting, StateAwaitingResult, true},
		{StateConnecting, StateFailed, true},
		{StateAwaitingResult, StateRendering, true},
		{StateAwaitingResult, StateFailed, true},
		{StateRendering, StateDone, true},
		{StateDone, StateConfiguring, true},
		{StateFailed, StateConfiguring, true},

		{StateIdle, StateConnecting, false},
		{StateConfiguring, StateRendering, false},
		{StateRendering, StateFailed, false},
		{StateDone, StateRendering, false},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.ok, CanTransition(tc.from, tc.to),
			"%s -> %s", tc.from, tc.to)
	}
}

func TestSessionStartsIdle(t *testing.T) {
	s := NewSession(nil, nil)
	assert.Equal(t, StateIdle, s.State())
}
