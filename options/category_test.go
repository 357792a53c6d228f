package options_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"flatmap/options"
	"flatmap/primitive"
)

func TestParseCategories(t *testing.T) {
	t.Parallel()

	c, err := options.ParseCategories(nil)
	require.NoError(t, err)
	assert.Equal(t, primitive.CategoryText, c)

	c, err = options.ParseCategories([]string{"Text-Number", " textual-bool"})
	require.NoError(t, err)
	assert.Equal(t, primitive.CategoryTextNumber|primitive.CategoryTextualBool, c)

	_, err = options.ParseCategories([]string{"binary"})
	require.ErrorContains(t, err, `unknown conversion category "binary"`)
}

func TestCategoryNamesSorted(t *testing.T) {
	t.Parallel()

	names := options.CategoryNames()
	assert.IsNonDecreasing(t, names)
	assert.Contains(t, names, "text")
}
