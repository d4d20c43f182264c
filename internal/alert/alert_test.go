package alert

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEdgeFiresOncePerEpisode(t *testing.T) {
	ind := NewIndicator(2)

	assert.False(t, ind.Observe(false))
	assert.True(t, ind.Observe(true), "rising edge should fire")
	for i := 0; i < 10; i++ {
		assert.False(t, ind.Observe(true), "edge must not re-fire while active")
	}
	assert.True(t, ind.Active())

	// Reset clears the episode; a recurrence fires again.
	assert.False(t, ind.Observe(false))
	assert.False(t, ind.Active())
	assert.True(t, ind.Observe(true))
}

func TestBlinkPhases(t *testing.T) {
	ind := NewIndicator(2)
	ind.Observe(true)

	var phases []bool
	phases = append(phases, ind.Lit())
	for i := 0; i < 7; i++ {
		ind.Observe(true)
		phases = append(phases, ind.Lit())
	}

	// period=2: on,on,off,off,on,on,...
	assert.Equal(t, []bool{true, true, false, false, true, true, false, false}, phases)
}

func TestInactiveNeverLit(t *testing.T) {
	ind := NewIndicator(1)
	assert.False(t, ind.Lit())
	ind.Observe(false)
	assert.False(t, ind.Lit())
}
