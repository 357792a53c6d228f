package mapping

// Serializer converts between a Store and T according to a built, validated
// mapping. It is immutable and safe for concurrent use.
type Serializer[T any] struct {
	root *Node
	cfg  *config
}

// Build configures a root builder for T and builds it.
func Build[T any](configure func(*ClassBuilder[T]), opts ...Option) (*Serializer[T], error) {
	b := NewBuilder[T]()
	configure(b)

	return b.Build(opts...)
}

// MustBuild is like Build but panics on error. It simplifies the safe
// initialization of package level serializers.
func MustBuild[T any](configure func(*ClassBuilder[T]), opts ...Option) *Serializer[T] {
	s, err := Build(configure, opts...)
	if err != nil {
		panic(err)
	}

	return s
}

// Deserialize reads a T from store. It fails only when the root or a
// mandatory subtree cannot be produced; the error is a *DecodeError.
func (s *Serializer[T]) Deserialize(store Store) (T, error) {
	return deserialize[T](s.root, s.cfg, store)
}

// Serialize writes v into a new store.
func (s *Serializer[T]) Serialize(v T) (Store, error) {
	return serialize(s.root, v)
}

// Root returns the root node of the mapping.
func (s *Serializer[T]) Root() *Node { return s.root }

// Layout describes every key the mapping reads and writes.
func (s *Serializer[T]) Layout() Layout { return layoutOf(s.root) }

// Check reports the keys of store no mapping consumes.
func (s *Serializer[T]) Check(store Store) Report { return check(s.root, store) }

// CollectionSerializer converts between a Store and a root level []T.
// Keys start with the item index: "[0].Id", "[0]Year".
type CollectionSerializer[T any] struct {
	root *Node
	cfg  *config
}

// BuildCollection builds a mapping whose root is an ordered collection
// of T. When configure maps T as a whole value the collection is a value
// collection, otherwise a collection of objects.
func BuildCollection[T any](configure func(*ClassBuilder[T]), opts ...Option) (*CollectionSerializer[T], error) {
	c := newCollectionMapping[T](&buildState{}, false)
	configure(c.item)

	c.body.value = c.item.body.mapAs != nil
	c.item.state.spent = true

	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}

	if err := finalize(c.node, c.state, cfg); err != nil {
		return nil, err
	}

	return &CollectionSerializer[T]{root: c.node, cfg: cfg}, nil
}

// Deserialize reads every item found in store. A store without items yields
// a nil slice.
func (s *CollectionSerializer[T]) Deserialize(store Store) ([]T, error) {
	return deserialize[[]T](s.root, s.cfg, store)
}

// Serialize writes items at indices 0..len(items)-1.
func (s *CollectionSerializer[T]) Serialize(items []T) (Store, error) {
	return serialize(s.root, items)
}

// Root returns the root node of the mapping.
func (s *CollectionSerializer[T]) Root() *Node { return s.root }

// Layout describes every key the mapping reads and writes.
func (s *CollectionSerializer[T]) Layout() Layout { return layoutOf(s.root) }

// Check reports the keys of store no mapping consumes.
func (s *CollectionSerializer[T]) Check(store Store) Report { return check(s.root, store) }

func deserialize[T any](root *Node, cfg *config, store Store) (T, error) {
	r := &reader{store: store, log: cfg.logger}

	o := r.read(root, nil)
	if o.err != nil {
		var zero T
		return zero, o.err
	}

	v, _ := o.value.(T)

	return v, nil
}

func serialize(root *Node, v any) (Store, error) {
	w := &writer{store: make(Store)}
	if err := w.write(root, v, nil); err != nil {
		return nil, err
	}

	return w.store, nil
}
