package entity

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// ErrMalformedIdentity is returned when a string cannot be decoded into an identity.
var ErrMalformedIdentity = errors.New("malformed identity")

// Codec converts an identity wrapper R to and from its scalar string form.
// Implementations must be free of side effects and safe for concurrent use.
type Codec[R any] interface {
	Format(ref R) (string, error)
	Parse(s string) (R, error)
}

// UUIDCodec encodes Ref[E] as the canonical 36 character UUID form.
type UUIDCodec[E any] struct{}

var _ Codec[Ref[struct{}]] = UUIDCodec[struct{}]{}

// Format implements Codec.
func (UUIDCodec[E]) Format(ref Ref[E]) (string, error) {
	return ref.ID.String(), nil
}

// Parse implements Codec. Braced, URN and compact forms are accepted.
func (UUIDCodec[E]) Parse(s string) (Ref[E], error) {
	id, err := uuid.Parse(strings.TrimSpace(s))
	if err != nil {
		return Ref[E]{}, fmt.Errorf("%w: %q: %w", ErrMalformedIdentity, s, err)
	}

	return Ref[E]{ID: id}, nil
}

// FuncCodec adapts a pair of functions into a Codec.
type FuncCodec[R any] struct {
	FormatFunc func(R) (string, error)
	ParseFunc  func(string) (R, error)
}

// Format implements Codec.
func (c FuncCodec[R]) Format(ref R) (string, error) {
	return c.FormatFunc(ref)
}

// Parse implements Codec.
func (c FuncCodec[R]) Parse(s string) (R, error) {
	return c.ParseFunc(s)
}
