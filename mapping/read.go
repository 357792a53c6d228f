package mapping

import (
	"github.com/rs/zerolog"

	"flatmap/internal/common"
)

// outcome is the result of reading one node. A failed read has err set;
// matched counts the store keys the node consumed, failed or not.
type outcome struct {
	value   any
	present bool
	matched int
	err     error
}

type reader struct {
	store Store
	log   zerolog.Logger
}

func (r *reader) read(n *Node, ix Indices) outcome {
	var o outcome

	switch b := n.body.(type) {
	case *simpleBody:
		o = r.readSimple(n, b, ix)
	case *compositeBody:
		o = r.readComposite(n, b, ix)
	case *classBody:
		o = r.readClass(n, b, ix)
	case *collectionBody:
		o = r.readCollection(n, b, ix)
	case *componentBody:
		// components are read by their composite
		return outcome{}
	}

	if o.err == nil && !o.present && n.mandatory {
		o.err = &DecodeError{Key: n.KeyName(ix), Err: ErrMandatory}
	}

	return o
}

func (r *reader) readSimple(n *Node, b *simpleBody, ix Indices) outcome {
	key := n.KeyName(ix)

	raw, ok := r.store[key]
	if !ok {
		return outcome{}
	}

	v, err := b.parse(raw)
	if err != nil {
		return outcome{matched: 1, err: &DecodeError{Key: key, Err: err}}
	}

	return outcome{value: v, present: true, matched: 1}
}

func (r *reader) readComposite(n *Node, b *compositeBody, ix Indices) outcome {
	parts := make(map[string]string, len(b.components))

	var missing *Node

	for _, c := range b.components {
		raw, ok := r.store[c.KeyName(ix)]
		if !ok {
			if c.mandatory && missing == nil {
				missing = c
			}

			continue
		}

		parts[c.member] = raw
	}

	matched := len(parts)

	switch {
	case matched == 0:
		return outcome{}
	case missing != nil:
		return outcome{matched: matched, err: &DecodeError{Key: missing.KeyName(ix), Err: ErrMandatory}}
	case b.compose == nil:
		// write-only
		return outcome{}
	}

	v, err := b.compose(parts)
	if err != nil {
		return outcome{matched: matched, err: &DecodeError{Key: n.KeyName(ix), Err: err}}
	}

	return outcome{value: v, present: true, matched: matched}
}

func (r *reader) readClass(n *Node, b *classBody, ix Indices) outcome {
	if b.mapAs != nil {
		return r.read(b.mapAs, ix)
	}

	ptr := b.newPtr()
	matched := 0

	var failed error

	for _, m := range b.members {
		o := r.read(m, ix)
		matched += o.matched

		if o.err != nil {
			if m.mandatory {
				if failed == nil {
					failed = o.err
				}

				continue
			}

			r.log.Debug().Err(o.err).Str("owner", m.owner).Str("member", m.member).Msg("optional member left unset")

			continue
		}

		if o.present {
			m.set(ptr, o.value)
		}
	}

	if failed != nil {
		return outcome{matched: matched, err: failed}
	}

	return outcome{value: b.load(ptr), present: matched > 0, matched: matched}
}

// readCollection probes indices 0, 1, 2, ... and stops at the first index
// no key matches. Every matching index consumes at least one distinct key,
// so probing never exceeds the store size.
func (r *reader) readCollection(n *Node, b *collectionBody, ix Indices) outcome {
	var items []any

	matched := 0

	for i := 0; i <= len(r.store); i++ {
		o := r.read(b.item, ix.With(i))
		if o.matched == 0 {
			break
		}

		matched += o.matched

		if o.err != nil {
			r.log.Debug().Err(o.err).Str("key", b.item.KeyName(ix.With(i))).Msg("collection item dropped")
			continue
		}

		if o.present {
			items = append(items, o.value)
		}
	}

	if common.IsEmpty(items) {
		return outcome{matched: matched}
	}

	return outcome{value: b.pack(items), present: true, matched: matched}
}
