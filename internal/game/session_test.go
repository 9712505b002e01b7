package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewSessionStartsClean(t *testing.T) {
	a := NewSession(745001, "Boston Red Sox", "New York Yankees")
	b := NewSession(745001, "Boston Red Sox", "New York Yankees")

	assert.Len(t, a.ID, 10)
	assert.NotEqual(t, a.ID, b.ID)
	assert.Zero(t, a.Cursor)
	assert.True(t, a.Bases.Empty())
	assert.Empty(t, a.Stats.Batters)
	assert.Empty(t, a.Stats.Pitchers)
	assert.NotSame(t, a.Stats, b.Stats)
}
