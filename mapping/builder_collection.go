package mapping

import "fmt"

// Class maps member m as a nested object whose members are declared by configure.
// Declaring the same member again runs configure on the existing builder.
func Class[T, V any](b *ClassBuilder[T], m Member[T, V], configure func(*ClassBuilder[V]), opts ...NodeOption) *ClassBuilder[V] {
	h, ok, conflict := lookup[*ClassBuilder[V]](b, m.Name, KindClass)
	if !ok {
		h = newClassBuilder[V](b.state, &Node{})
		bindMember(h.node, m)
		attach(b, h.node, h, conflict)
	}

	applyNodeOptions(h.node, opts)

	if configure != nil {
		configure(h)
	}

	return h
}

// CollectionMapping is the handle of an ordered collection of I.
type CollectionMapping[I any] struct {
	node  *Node
	body  *collectionBody
	item  *ClassBuilder[I]
	state *buildState
}

// Collection maps a slice member whose items are objects described by configure.
func Collection[T, I any](b *ClassBuilder[T], m Member[T, []I], configure func(*ClassBuilder[I]), opts ...NodeOption) *CollectionMapping[I] {
	return collection(b, m, false, configure, opts)
}

// ValueCollection maps a slice member whose items are whole values; configure
// must map the item with AsSimple, AsComposite or AsEntity.
func ValueCollection[T, I any](b *ClassBuilder[T], m Member[T, []I], configure func(*ClassBuilder[I]), opts ...NodeOption) *CollectionMapping[I] {
	return collection(b, m, true, configure, opts)
}

func collection[T, I any](b *ClassBuilder[T], m Member[T, []I], value bool, configure func(*ClassBuilder[I]), opts []NodeOption) *CollectionMapping[I] {
	kind := KindReferenceCollection
	if value {
		kind = KindValueCollection
	}

	h, ok, conflict := lookup[*CollectionMapping[I]](b, m.Name, kind)
	if ok && h.body.value != value {
		b.state.diags.AddError("member_kind_conflict",
			fmt.Sprintf("member %s already declared as %s, cannot redeclare as %s", m.Name, h.node.Kind(), kind),
			typeName(b.body.rtype), b.node.Template())

		ok, conflict = false, true
	}

	if !ok {
		h = newCollectionMapping[I](b.state, value)
		bindMember(h.node, m)
		attach(b, h.node, h, conflict)
	}

	applyNodeOptions(h.node, opts)

	if configure != nil {
		configure(h.item)
	}

	return h
}

func newCollectionMapping[I any](state *buildState, value bool) *CollectionMapping[I] {
	body := newCollectionBody[I](value)
	n := &Node{body: body}

	item := newClassBuilder[I](state, &Node{parent: n})
	item.body.wholeAllowed = true
	body.item = item.node

	return &CollectionMapping[I]{node: n, body: body, item: item, state: state}
}

// Item returns the builder of the collection item.
func (c *CollectionMapping[I]) Item() *ClassBuilder[I] { return c.item }

// With applies node options.
func (c *CollectionMapping[I]) With(opts ...NodeOption) *CollectionMapping[I] {
	c.state.guard()
	applyNodeOptions(c.node, opts)

	return c
}

// Node returns the underlying node.
func (c *CollectionMapping[I]) Node() *Node { return c.node }
