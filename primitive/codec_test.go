package primitive_test

import (
	"reflect"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"flatmap/primitive"
)

type Color string

func (c Color) IsValid() bool { return c == "red" || c == "green" }

type Level uint8

func roundTrip[T any](t *testing.T, allowed primitive.CategoryEnum, in T, text string) {
	t.Helper()

	codec, err := primitive.Resolve(reflect.TypeFor[T](), allowed)
	require.NoError(t, err)

	s, err := codec.Format(reflect.ValueOf(in))
	require.NoError(t, err)
	assert.Equal(t, text, s)

	v, err := codec.Parse(s)
	require.NoError(t, err)
	assert.Equal(t, in, v.Interface().(T))
}

func TestResolveRoundTrip(t *testing.T) {
	t.Parallel()

	roundTrip(t, primitive.CategoryText, 42, "42")
	roundTrip(t, primitive.CategoryText, int8(-7), "-7")
	roundTrip(t, primitive.CategoryText, uint16(65535), "65535")
	roundTrip(t, primitive.CategoryText, 1.5, "1.5")
	roundTrip(t, primitive.CategoryText, float32(0.25), "0.25")
	roundTrip(t, primitive.CategoryText, true, "true")
	roundTrip(t, primitive.CategoryText, "plain", "plain")
	roundTrip(t, primitive.CategoryText, 90*time.Minute, "1h30m0s")
	roundTrip(t, primitive.CategoryText, time.Date(2010, 1, 2, 3, 4, 5, 0, time.UTC), "2010-01-02T03:04:05Z")
	roundTrip(t, primitive.CategoryText, Color("red"), "red")
	roundTrip(t, primitive.CategoryText, Level(3), "3")
}

func TestResolveAlternateRepresentations(t *testing.T) {
	t.Parallel()

	roundTrip(t, primitive.CategoryNumericBool, true, "1")
	roundTrip(t, primitive.CategoryNumericBool, false, "0")
	roundTrip(t, primitive.CategoryTimestamp, time.Date(2023, 11, 14, 22, 13, 20, 0, time.UTC), "1700000000")
	roundTrip(t, primitive.CategoryNanoseconds, 1500*time.Millisecond, "1500000000")
	roundTrip(t, primitive.CategorySeconds, 1500*time.Millisecond, "1.5")

	codec, err := primitive.Resolve(reflect.TypeFor[bool](), primitive.CategoryNumericBool)
	require.NoError(t, err)
	assert.Equal(t, primitive.CategoryNumericBool, codec.Category)

	_, err = codec.Parse("yes")
	assert.Error(t, err)
}

func TestResolveTextMarshaler(t *testing.T) {
	t.Parallel()

	id := uuid.MustParse("6ba7b810-9dad-11d1-80b4-00c04fd430c8")
	roundTrip(t, primitive.CategoryNone, id, id.String())
}

func TestResolveRejectsDisallowedKinds(t *testing.T) {
	t.Parallel()

	_, err := primitive.Resolve(reflect.TypeFor[int](), primitive.CategoryTextualBool)
	require.ErrorIs(t, err, primitive.ErrUnsupported)

	_, err = primitive.Resolve(reflect.TypeFor[struct{ A int }](), primitive.CategoryAll)
	require.ErrorIs(t, err, primitive.ErrUnsupported)

	// strings never need a category
	_, err = primitive.Resolve(reflect.TypeFor[string](), primitive.CategoryNone)
	require.NoError(t, err)
}

func TestParseErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		rtype reflect.Type
		input string
	}{
		{"int garbage", reflect.TypeFor[int](), "abc"},
		{"int8 overflow", reflect.TypeFor[int8](), "300"},
		{"uint negative", reflect.TypeFor[uint](), "-1"},
		{"bool garbage", reflect.TypeFor[bool](), "maybe"},
		{"invalid enum", reflect.TypeFor[Color](), "blue"},
		{"enum overflow", reflect.TypeFor[Level](), "256"},
		{"bad time", reflect.TypeFor[time.Time](), "yesterday"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			codec, err := primitive.Resolve(tt.rtype, primitive.CategoryText)
			require.NoError(t, err)

			_, err = codec.Parse(tt.input)
			assert.Error(t, err)
		})
	}
}

func TestParseTextualBool(t *testing.T) {
	t.Parallel()

	for _, s := range []string{"true", "YES", "on", " On "} {
		b, err := primitive.ParseTextualBool(s)
		require.NoError(t, err, s)
		assert.True(t, b, s)
	}

	for _, s := range []string{"false", "No", "off"} {
		b, err := primitive.ParseTextualBool(s)
		require.NoError(t, err, s)
		assert.False(t, b, s)
	}

	_, err := primitive.ParseTextualBool("1")
	assert.Error(t, err)
}

func TestParseNumericBool(t *testing.T) {
	t.Parallel()

	b, err := primitive.ParseNumericBool(" 1")
	require.NoError(t, err)
	assert.True(t, b)

	b, err = primitive.ParseNumericBool("0")
	require.NoError(t, err)
	assert.False(t, b)

	_, err = primitive.ParseNumericBool("true")
	assert.Error(t, err)

	assert.Equal(t, "1", primitive.FormatNumericBool(true))
}

func TestCategoryAllows(t *testing.T) {
	t.Parallel()

	assert.True(t, primitive.CategoryTextNumber.Allows(primitive.KindInt))
	assert.False(t, primitive.CategoryTextNumber.Allows(primitive.KindBool))
	assert.True(t, primitive.CategoryTextualBool.Allows(primitive.KindBool))
	assert.True(t, primitive.CategoryEnum(primitive.CategoryNone).Allows(primitive.KindString))
	assert.True(t, primitive.CategoryNumericBool.Allows(primitive.KindBool))
	assert.False(t, primitive.CategoryNumericBool.Allows(primitive.KindInt))
	assert.False(t, primitive.CategoryTimestamp.Allows(primitive.KindDuration))
}
