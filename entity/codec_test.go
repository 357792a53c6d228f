package entity_test

import (
	"fmt"
	"strconv"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"flatmap/entity"
)

type Customer struct{}

func TestUUIDCodecRoundTrip(t *testing.T) {
	t.Parallel()

	ref := entity.NewRandomRef[Customer]()
	require.False(t, ref.IsZero())

	var codec entity.UUIDCodec[Customer]

	s, err := codec.Format(ref)
	require.NoError(t, err)
	assert.Len(t, s, 36)

	back, err := codec.Parse(s)
	require.NoError(t, err)
	assert.Equal(t, ref, back)
}

func TestUUIDCodecAcceptsAlternateForms(t *testing.T) {
	t.Parallel()

	var codec entity.UUIDCodec[Customer]

	want := uuid.MustParse("6ba7b810-9dad-11d1-80b4-00c04fd430c8")
	for _, s := range []string{
		"6ba7b810-9dad-11d1-80b4-00c04fd430c8",
		"{6ba7b810-9dad-11d1-80b4-00c04fd430c8}",
		"urn:uuid:6ba7b810-9dad-11d1-80b4-00c04fd430c8",
		"6ba7b8109dad11d180b400c04fd430c8",
		" 6ba7b810-9dad-11d1-80b4-00c04fd430c8 ",
	} {
		ref, err := codec.Parse(s)
		require.NoError(t, err, s)
		assert.Equal(t, want, ref.ID, s)
	}
}

func TestUUIDCodecRejectsGarbage(t *testing.T) {
	t.Parallel()

	_, err := entity.UUIDCodec[Customer]{}.Parse("not-a-uuid")
	require.ErrorIs(t, err, entity.ErrMalformedIdentity)
}

func TestRefString(t *testing.T) {
	t.Parallel()

	ref := entity.NewRef[Customer](uuid.MustParse("6ba7b810-9dad-11d1-80b4-00c04fd430c8"))
	assert.Equal(t, "Customer(6ba7b810-9dad-11d1-80b4-00c04fd430c8)", ref.String())
	assert.True(t, entity.Ref[Customer]{}.IsZero())
}

func ExampleFuncCodec() {
	type OrderNo int

	codec := entity.FuncCodec[OrderNo]{
		FormatFunc: func(n OrderNo) (string, error) { return fmt.Sprintf("ORD-%05d", n), nil },
		ParseFunc: func(s string) (OrderNo, error) {
			var n int
			_, err := fmt.Sscanf(s, "ORD-%d", &n)
			return OrderNo(n), err
		},
	}

	s, _ := codec.Format(42)
	n, _ := codec.Parse(s)
	fmt.Println(s, strconv.Itoa(int(n)))
	// Output:
	// ORD-00042 42
}

func TestRefText(t *testing.T) {
	t.Parallel()

	ref := entity.NewRandomRef[Customer]()

	b, err := ref.MarshalText()
	require.NoError(t, err)

	var back entity.Ref[Customer]
	require.NoError(t, back.UnmarshalText(b))
	assert.Equal(t, ref, back)

	require.ErrorIs(t, back.UnmarshalText([]byte("nope")), entity.ErrMalformedIdentity)
}
