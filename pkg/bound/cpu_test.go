package bound

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOverloaded(t *testing.T) {
	h := NewCpuLimitHandler(80)
	h.set(50)
	assert.False(t, h.Overloaded())
	assert.Equal(t, "ok", h.Health().Status)

	h.set(92.5)
	assert.True(t, h.Overloaded())
	assert.InDelta(t, 92.5, h.Current(), 0.01)
	assert.Equal(t, "overloaded", h.Health().Status)
}

func TestZeroThresholdNeverRejects(t *testing.T) {
	h := NewCpuLimitHandler(0)
	h.set(100)
	assert.False(t, h.Overloaded())
}
