package mapping

import "fmt"

type writer struct {
	store Store
	// force writes zero values of optional nodes too.
	force bool
}

// write stores v under the keys of n. Zero values of optional nodes are
// skipped outside collections; inside a collection and for mandatory nodes
// every value is written so it reads back.
func (w *writer) write(n *Node, v any, ix Indices) error {
	switch b := n.body.(type) {
	case *simpleBody:
		if w.skipZero(n, ix) && b.isZero(v) {
			return nil
		}

		key := n.KeyName(ix)

		s, err := b.format(v)
		if err != nil {
			return fmt.Errorf("encode %q: %w", key, err)
		}

		w.store[key] = s

	case *compositeBody:
		if w.skipZero(n, ix) && b.isZero(v) {
			return nil
		}

		var parts map[string]string
		if b.decompose != nil {
			parts = b.decompose(v)
		}

		for _, c := range b.components {
			cb, _ := c.body.(*componentBody)
			if cb != nil && cb.format != nil {
				w.store[c.KeyName(ix)] = cb.format(v)
				continue
			}

			if raw, ok := parts[c.member]; ok {
				w.store[c.KeyName(ix)] = raw
			}
		}

	case *classBody:
		if b.mapAs != nil {
			return w.write(b.mapAs, v, ix)
		}

		if n.parent != nil && b.isZero(v) && (w.skipZero(n, ix) || !constructible(b.rtype)) {
			// nil interfaces and pointers have no members to walk
			return nil
		}

		before := len(w.store)

		if err := w.writeMembers(b, v, ix); err != nil {
			return err
		}

		// a mandatory class must leave at least one key behind to read back
		if n.mandatory && !w.force && len(w.store) == before {
			w.force = true
			defer func() { w.force = false }()

			return w.writeMembers(b, v, ix)
		}

	case *collectionBody:
		for i, item := range b.unpack(v) {
			if err := w.write(b.item, item, ix.With(i)); err != nil {
				return err
			}
		}

	case *componentBody:
	}

	return nil
}

func (w *writer) writeMembers(b *classBody, v any, ix Indices) error {
	ptr := b.box(v)
	for _, m := range b.members {
		if err := w.write(m, m.get(ptr), ix); err != nil {
			return err
		}
	}

	return nil
}

func (w *writer) skipZero(n *Node, ix Indices) bool {
	return !w.force && !n.mandatory && len(ix) == 0
}
