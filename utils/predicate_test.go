package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsInRange(t *testing.T) {
	assert.True(t, IsInRange(1, 1, 12))
	assert.True(t, IsInRange(1, 12, 12))
	assert.False(t, IsInRange(1, 13, 12))
	assert.False(t, IsInRange(1, 0, 12))
	assert.True(t, IsInRange(0.5, 0.75, 1.0))
	assert.True(t, IsInRange("a", "m", "z"))
}
