package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsEmpty(t *testing.T) {
	assert.True(t, IsEmpty([]int(nil)))
	assert.True(t, IsEmpty([]string{}))
	assert.False(t, IsEmpty([]string{"Id"}))
}

func TestFirst(t *testing.T) {
	v, ok := First([]string{"Name", "Id"})
	assert.True(t, ok)
	assert.Equal(t, "Name", v)

	v, ok = First[[]string](nil)
	assert.False(t, ok)
	assert.Empty(t, v)
}
