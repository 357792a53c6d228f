package mapping

import (
	"reflect"

	"flatmap/entity"
)

// Kind enumerates the mapping node kinds.
type Kind int

const (
	KindUnknown Kind = iota
	KindClass
	KindSimple
	KindComposite
	KindComponent
	KindReferenceCollection
	KindValueCollection
)

func (k Kind) String() string {
	switch k {
	case KindClass:
		return "class"
	case KindSimple:
		return "simple"
	case KindComposite:
		return "composite"
	case KindComponent:
		return "component"
	case KindReferenceCollection:
		return "collection"
	case KindValueCollection:
		return "value-collection"
	default:
		return "unknown"
	}
}

// Node is one element of a mapping. The tree is built once
// by a builder and is read-only afterwards, so a built tree may be shared
// by concurrent Serialize and Deserialize calls.
type Node struct {
	parent *Node
	// member is the name of the member this node populates; empty at the
	// root and for whole-value nodes.
	member string
	owner  string

	alias  string
	prefix string
	suffix string

	policy   NamingPolicy
	wrappers []func(NamingPolicy) NamingPolicy
	naming   NamingPolicy // effective policy, resolved at build

	mandatory bool
	// level counts the collections strictly above this node.
	level int

	get func(owner any) any
	set func(owner any, v any)

	body body
}

// body is the closed set of node variants.
type body interface {
	kind() Kind
}

type classBody struct {
	rtype      reflect.Type
	hasFactory bool
	newPtr     func() any
	load       func(ptr any) any
	box        func(v any) any
	isZero     func(v any) bool

	members []*Node
	mapAs   *Node
	// wholeAllowed is set for the root class and collection items.
	wholeAllowed bool
}

type simpleBody struct {
	rtype  reflect.Type
	format func(v any) (string, error)
	parse  func(s string) (any, error)
	isZero func(v any) bool
	// resolve installs the default codec when none was given.
	resolve func(b *simpleBody, cfg *config) error
}

type compositeBody struct {
	components []*Node
	compose    func(parts map[string]string) (any, error)
	decompose  func(v any) map[string]string
	isZero     func(v any) bool
}

type componentBody struct {
	format func(v any) string
}

type collectionBody struct {
	value  bool
	item   *Node
	unpack func(v any) []any
	pack   func(items []any) any
}

func (*classBody) kind() Kind     { return KindClass }
func (*simpleBody) kind() Kind    { return KindSimple }
func (*compositeBody) kind() Kind { return KindComposite }
func (*componentBody) kind() Kind { return KindComponent }

func (b *collectionBody) kind() Kind {
	if b.value {
		return KindValueCollection
	}

	return KindReferenceCollection
}

// Kind returns the node kind.
func (n *Node) Kind() Kind {
	if n.body == nil {
		return KindUnknown
	}

	return n.body.kind()
}

// Parent returns the owning node, nil at the root.
func (n *Node) Parent() *Node { return n.parent }

// Member returns the member name this node populates, or the component
// identifier for a composite component.
func (n *Node) Member() string { return n.member }

// IsMandatory reports whether failing to produce this node fails its owner.
func (n *Node) IsMandatory() bool { return n.mandatory }

// Children returns the direct child nodes in declaration order.
func (n *Node) Children() []*Node {
	switch b := n.body.(type) {
	case *classBody:
		if b.mapAs != nil {
			return []*Node{b.mapAs}
		}

		return b.members
	case *compositeBody:
		return b.components
	case *collectionBody:
		if b.item != nil {
			return []*Node{b.item}
		}
	case *simpleBody, *componentBody:
	}

	return nil
}

// Walk visits n and its descendants depth-first.
func (n *Node) Walk(fn func(*Node) bool) {
	if !fn(n) {
		return
	}

	for _, c := range n.Children() {
		c.Walk(fn)
	}
}

func newClassBody[T any]() *classBody {
	b := &classBody{rtype: reflect.TypeFor[T]()}
	b.newPtr = func() any { return new(T) }
	b.load = func(ptr any) any { return *(ptr.(*T)) }
	b.isZero = isZero[T]
	b.box = func(v any) any {
		p := new(T)
		if t, ok := v.(T); ok {
			*p = t
		}

		return p
	}

	return b
}

func newSimpleBody[V any]() *simpleBody {
	return &simpleBody{
		rtype:   reflect.TypeFor[V](),
		isZero:  isZero[V],
		resolve: resolveDefaultCodec[V],
	}
}

func newCollectionBody[I any](value bool) *collectionBody {
	return &collectionBody{
		value: value,
		unpack: func(v any) []any {
			s, _ := v.([]I)
			out := make([]any, len(s))
			for i := range s {
				out[i] = s[i]
			}

			return out
		},
		pack: func(items []any) any {
			s := make([]I, len(items))
			for i, it := range items {
				s[i], _ = it.(I)
			}

			return s
		},
	}
}

func bindMember[T, V any](n *Node, m Member[T, V]) {
	n.member = m.Name
	n.get = func(owner any) any { return m.Get(owner.(*T)) }
	n.set = func(owner any, v any) {
		val, _ := v.(V)
		m.Set(owner.(*T), val)
	}
}

func bindEntityCodec[R any](b *simpleBody, codec entity.Codec[R]) {
	b.format = func(v any) (string, error) {
		r, _ := v.(R)
		return codec.Format(r)
	}
	b.parse = func(s string) (any, error) {
		return codec.Parse(s)
	}
}

func isZero[V any](v any) bool {
	t, ok := v.(V)
	if !ok {
		return true
	}

	return reflect.ValueOf(&t).Elem().IsZero()
}
