package entity

import (
	"fmt"
	"reflect"

	"github.com/google/uuid"
)

// Ref identifies one entity of type E.
type Ref[E any] struct {
	ID uuid.UUID
}

// NewRef wraps id as a reference to an E.
func NewRef[E any](id uuid.UUID) Ref[E] {
	return Ref[E]{ID: id}
}

// NewRandomRef returns a reference carrying a fresh random (version 4) UUID.
func NewRandomRef[E any]() Ref[E] {
	return Ref[E]{ID: uuid.New()}
}

// IsZero reports whether the reference points at nothing.
func (r Ref[E]) IsZero() bool {
	return r.ID == uuid.Nil
}

// Kind returns the name of the referenced entity type, e.g. "Customer".
func (r Ref[E]) Kind() string {
	return reflect.TypeFor[E]().Name()
}

// String renders the reference as "Kind(uuid)".
func (r Ref[E]) String() string {
	return fmt.Sprintf("%s(%s)", r.Kind(), r.ID)
}

// MarshalText renders the bare UUID so references embed in text formats.
func (r Ref[E]) MarshalText() ([]byte, error) {
	return r.ID.MarshalText()
}

// UnmarshalText parses any UUID form accepted by UUIDCodec.
func (r *Ref[E]) UnmarshalText(b []byte) error {
	ref, err := UUIDCodec[E]{}.Parse(string(b))
	if err != nil {
		return err
	}

	*r = ref

	return nil
}
