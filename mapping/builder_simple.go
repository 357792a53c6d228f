package mapping

import (
	"reflect"

	"flatmap/entity"
	"flatmap/primitive"
)

// SimpleMapping is the handle of a scalar node of type V.
type SimpleMapping[V any] struct {
	node  *Node
	body  *simpleBody
	state *buildState
}

// Simple maps member m to a single flat key.
func Simple[T, V any](b *ClassBuilder[T], m Member[T, V], opts ...NodeOption) *SimpleMapping[V] {
	h, ok, conflict := lookup[*SimpleMapping[V]](b, m.Name, KindSimple)
	if !ok {
		h = newSimpleMapping[V](b.state)
		bindMember(h.node, m)
		attach(b, h.node, h, conflict)
	}

	applyNodeOptions(h.node, opts)

	return h
}

// AsSimple maps T itself as a scalar. Legal only on a collection item
// builder or a root builder.
func AsSimple[T any](b *ClassBuilder[T], opts ...NodeOption) *SimpleMapping[T] {
	h, ok, conflict := lookup[*SimpleMapping[T]](b, "", KindSimple)
	if !ok {
		h = newSimpleMapping[T](b.state)
		attach(b, h.node, h, conflict)
	}

	applyNodeOptions(h.node, opts)

	return h
}

// Entity maps an identity reference member through entity.UUIDCodec.
func Entity[T, E any](b *ClassBuilder[T], m Member[T, entity.Ref[E]], opts ...NodeOption) *SimpleMapping[entity.Ref[E]] {
	return EntityWith(b, m, entity.Codec[entity.Ref[E]](entity.UUIDCodec[E]{}), opts...)
}

// EntityWith maps member m through an explicit identity codec.
func EntityWith[T, R any](b *ClassBuilder[T], m Member[T, R], codec entity.Codec[R], opts ...NodeOption) *SimpleMapping[R] {
	h := Simple(b, m, opts...)
	bindEntityCodec(h.body, codec)

	return h
}

// AsEntity maps the identity reference itself, e.g. as a collection item.
func AsEntity[E any](b *ClassBuilder[entity.Ref[E]], opts ...NodeOption) *SimpleMapping[entity.Ref[E]] {
	return AsEntityWith(b, entity.Codec[entity.Ref[E]](entity.UUIDCodec[E]{}), opts...)
}

// AsEntityWith maps R itself through codec.
func AsEntityWith[R any](b *ClassBuilder[R], codec entity.Codec[R], opts ...NodeOption) *SimpleMapping[R] {
	h := AsSimple(b, opts...)
	bindEntityCodec(h.body, codec)

	return h
}

func newSimpleMapping[V any](state *buildState) *SimpleMapping[V] {
	body := newSimpleBody[V]()
	return &SimpleMapping[V]{node: &Node{body: body}, body: body, state: state}
}

// Using replaces the string conversion. A nil function keeps the default
// conversion for that direction.
func (s *SimpleMapping[V]) Using(format func(V) (string, error), parse func(string) (V, error)) *SimpleMapping[V] {
	s.state.guard()

	if format != nil {
		s.body.format = func(v any) (string, error) {
			t, _ := v.(V)
			return format(t)
		}
	}

	if parse != nil {
		s.body.parse = func(str string) (any, error) {
			return parse(str)
		}
	}

	return s
}

// With applies node options.
func (s *SimpleMapping[V]) With(opts ...NodeOption) *SimpleMapping[V] {
	s.state.guard()
	applyNodeOptions(s.node, opts)
	return s
}

// Node returns the underlying node.
func (s *SimpleMapping[V]) Node() *Node { return s.node }

// resolveDefaultCodec fills the missing directions from the primitive codecs.
func resolveDefaultCodec[V any](b *simpleBody, cfg *config) error {
	if b.format != nil && b.parse != nil {
		return nil
	}

	codec, err := primitive.Resolve(b.rtype, cfg.categories)
	if err != nil {
		return err
	}

	if b.format == nil {
		b.format = func(v any) (string, error) {
			t, _ := v.(V)
			return codec.Format(reflect.ValueOf(&t).Elem())
		}
	}

	if b.parse == nil {
		b.parse = func(s string) (any, error) {
			rv, err := codec.Parse(s)
			if err != nil {
				return nil, err
			}

			if rv.Type() != b.rtype {
				rv = rv.Convert(b.rtype)
			}

			return rv.Interface(), nil
		}
	}

	return nil
}
