package mapping_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"flatmap/mapping"
)

func TestLocate(t *testing.T) {
	t.Parallel()

	id := mapping.Locate[Inner, int]("Id")
	assert.Equal(t, "Id", id.Name)

	var in Inner
	id.Set(&in, 7)
	assert.Equal(t, 7, in.Id)
	assert.Equal(t, 7, id.Get(&in))

	assert.PanicsWithValue(t, `field "Nme" not found in mapping_test.Inner (did you mean "Name"?)`, func() {
		mapping.Locate[Inner, string]("Nme")
	})
	assert.PanicsWithValue(t, `field "Id" of mapping_test.Inner is int, not string`, func() {
		mapping.Locate[Inner, string]("Id")
	})
	assert.Panics(t, func() { mapping.Locate[int, int]("Id") })
}

func TestField(t *testing.T) {
	t.Parallel()

	assert.Panics(t, func() { mapping.Field[Inner, int]("", nil, nil) })
	assert.Panics(t, func() { mapping.Field[Inner, int]("Id", nil, nil) })
}
