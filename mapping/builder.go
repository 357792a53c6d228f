package mapping

import (
	"fmt"
	"reflect"

	"flatmap/internal/diagnostic"
)

// buildState is shared by a root builder and every nested builder it creates.
type buildState struct {
	spent bool
	diags diagnostic.Diagnostics
}

func (s *buildState) guard() {
	if s.spent {
		panic(ErrBuilderSpent)
	}
}

// declared remembers the handle returned for a member name.
type declared struct {
	kind   Kind
	handle any
}

// ClassBuilder declares how the members of T map to flat keys.
// A builder is single use and not safe for concurrent use.
type ClassBuilder[T any] struct {
	node  *Node
	body  *classBody
	state *buildState
	root  bool

	handles map[string]declared
}

// NewBuilder returns a root builder for T.
func NewBuilder[T any]() *ClassBuilder[T] {
	b := newClassBuilder[T](&buildState{}, &Node{})
	b.root = true
	b.body.wholeAllowed = true

	return b
}

func newClassBuilder[T any](state *buildState, n *Node) *ClassBuilder[T] {
	body := newClassBody[T]()
	n.body = body

	return &ClassBuilder[T]{
		node:    n,
		body:    body,
		state:   state,
		handles: make(map[string]declared),
	}
}

// UsingFactory overrides the construction of T.
func (b *ClassBuilder[T]) UsingFactory(factory func() T) *ClassBuilder[T] {
	b.state.guard()

	if factory == nil {
		panic("factory cannot be nil")
	}

	b.body.hasFactory = true
	b.body.newPtr = func() any {
		v := factory()
		return &v
	}

	return b
}

// With applies node options to the class node itself.
func (b *ClassBuilder[T]) With(opts ...NodeOption) *ClassBuilder[T] {
	b.state.guard()
	applyNodeOptions(b.node, opts)

	return b
}

// Node returns the class node under construction.
func (b *ClassBuilder[T]) Node() *Node { return b.node }

// Build validates the mapping and returns its serializer. The builder
// is spent afterwards: a second Build returns ErrBuilderSpent.
func (b *ClassBuilder[T]) Build(opts ...Option) (*Serializer[T], error) {
	if !b.root {
		return nil, ErrNotRoot
	}

	if b.state.spent {
		return nil, ErrBuilderSpent
	}

	b.state.spent = true

	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}

	if err := finalize(b.node, b.state, cfg); err != nil {
		return nil, err
	}

	return &Serializer[T]{root: b.node, cfg: cfg}, nil
}

// lookup returns the handle already declared for name. ok is false when the
// name is new; conflict is set when it was declared as a different kind.
func lookup[H any, T any](b *ClassBuilder[T], name string, kind Kind) (h H, ok bool, conflict bool) {
	b.state.guard()

	d, found := b.handles[name]
	if !found {
		return h, false, false
	}

	if h, ok = d.handle.(H); ok {
		return h, true, false
	}

	what := "member " + name
	if name == "" {
		what = "whole value"
	}

	b.state.diags.AddError("member_kind_conflict",
		fmt.Sprintf("%s already declared as %s, cannot redeclare as %s", what, d.kind, kind),
		typeName(b.body.rtype), b.node.Template())

	return h, false, true
}

// attach links child under the class node. Detached children (kind
// conflicts) get a parent for naming but never join the tree.
func attach[H any, T any](b *ClassBuilder[T], child *Node, handle H, detached bool) {
	child.parent = b.node
	child.owner = typeName(b.body.rtype)
	child.level = b.node.level

	if detached {
		return
	}

	if child.member == "" {
		b.body.mapAs = child
	} else {
		b.body.members = append(b.body.members, child)
	}

	b.handles[child.member] = declared{kind: child.Kind(), handle: handle}
}

func typeName(t reflect.Type) string {
	if t == nil {
		return ""
	}

	return t.String()
}
