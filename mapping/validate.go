package mapping

import (
	"fmt"
	"reflect"

	"flatmap/internal/common"
	"flatmap/internal/diagnostic"
	"flatmap/primitive"
)

// Validate checks the subtree rooted at n and returns a *ValidationError
// listing every problem found, or nil.
func (n *Node) Validate(opts ...Option) error {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}

	var diags diagnostic.Diagnostics

	validate(n, cfg, &diags)

	return validationError(&diags)
}

// finalize freezes a freshly built tree: index levels, naming policies and
// default codecs are resolved once, then the tree is validated.
func finalize(root *Node, state *buildState, cfg *config) error {
	fixup(root)
	resolvePolicies(root, cfg.policy)

	var found diagnostic.Diagnostics

	validate(root, cfg, &found)
	checkDuplicateKeys(root, &found)

	diags := &state.diags
	diags.Merge(found)

	for _, w := range diags.Warnings {
		cfg.logger.Warn().Str("code", w.Code).Str("key", w.Key).Msg(w.Message)
	}

	if err := validationError(diags); err != nil {
		return err
	}

	root.Walk(func(n *Node) bool {
		if b, ok := n.body.(*simpleBody); ok && b.resolve != nil {
			// validate has already proven the codec resolvable
			_ = b.resolve(b, cfg)
		}

		return true
	})

	return nil
}

func fixup(n *Node) {
	for _, c := range n.Children() {
		c.parent = n
		c.level = n.level

		switch n.body.(type) {
		case *collectionBody:
			c.level++
			if cb, ok := c.body.(*classBody); ok {
				c.owner = typeName(cb.rtype)
			}
		case *compositeBody:
			c.owner = n.owner
		}

		fixup(c)
	}
}

func validate(n *Node, cfg *config, diags *diagnostic.Diagnostics) {
	key := n.Template()

	switch b := n.body.(type) {
	case *classBody:
		owner := typeName(b.rtype)

		switch {
		case len(b.members) > 0 && b.mapAs != nil:
			diags.AddError("class_conflicting_body",
				"class maps both members and a whole value", owner, key)
		case common.IsEmpty(b.members) && b.mapAs == nil:
			diags.AddError("class_empty",
				"class maps neither members nor a whole value", owner, key)
		}

		if b.mapAs != nil && !b.wholeAllowed {
			diags.AddError("map_as_not_allowed",
				"a whole value mapping is only allowed on a collection item or the root", owner, key)
		}

		if len(b.members) > 0 && !b.hasFactory && !constructible(b.rtype) {
			diags.AddError("class_no_factory",
				fmt.Sprintf("%s has no usable zero value, use UsingFactory", owner), owner, key)
		}

	case *simpleBody:
		if b.format == nil || b.parse == nil {
			if _, err := primitive.Resolve(b.rtype, cfg.categories); err != nil {
				diags.AddError("simple_no_codec", err.Error(), n.owner, key)
			}
		}

	case *compositeBody:
		if common.IsEmpty(b.components) {
			diags.AddError("composite_no_components", "composite declares no components", n.owner, key)
		}

		if b.compose == nil && b.decompose == nil {
			for _, c := range b.components {
				if cb, ok := c.body.(*componentBody); ok && cb.format == nil {
					diags.AddError("composite_no_codec",
						"composite has no deserializer and component "+c.member+" cannot be serialized",
						n.owner, c.Template())
				}
			}
		}

	case *collectionBody:
		if b.item == nil {
			diags.AddError("collection_no_item", "collection has no item mapping", n.owner, key)
			break
		}

		if ib, ok := b.item.body.(*classBody); b.value && ok && ib.mapAs == nil {
			diags.AddError("value_item_not_whole",
				"value collection items must be mapped with AsSimple, AsComposite or AsEntity", n.owner, key)
		}

		if !b.value && !ownsKey(b.item) && len(b.item.Children()) > 0 {
			diags.AddWarning("item_keys_only_nested",
				"items write keys only inside nested collections, an item whose nested collections are empty ends the collection on read",
				n.owner, key)
		}

	case *componentBody:
	}

	for _, c := range n.Children() {
		validate(c, cfg, diags)
	}
}

// ownsKey reports whether n writes a key at its own index level, outside
// any nested collection.
func ownsKey(n *Node) bool {
	switch n.body.(type) {
	case *simpleBody, *componentBody:
		return true
	case *collectionBody:
		return false
	}

	for _, c := range n.Children() {
		if ownsKey(c) {
			return true
		}
	}

	return false
}

// constructible reports whether new(T) yields a usable T.
func constructible(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Interface, reflect.Pointer, reflect.Map, reflect.Func, reflect.Chan:
		return false
	default:
		return true
	}
}

func checkDuplicateKeys(root *Node, diags *diagnostic.Diagnostics) {
	seen := make(map[string]*Node)

	root.Walk(func(n *Node) bool {
		switch n.body.(type) {
		case *simpleBody, *componentBody:
		default:
			return true
		}

		key := n.Template()
		if first, ok := seen[key]; ok {
			diags.AddWarning("duplicate_key",
				fmt.Sprintf("key is produced by both %s and %s", describe(first), describe(n)),
				n.owner, key)

			return true
		}

		seen[key] = n

		return true
	})
}

func describe(n *Node) string {
	if n.member == "" {
		return "the whole value of " + n.owner
	}

	return n.owner + "." + n.member
}

func validationError(diags *diagnostic.Diagnostics) error {
	if !diags.HasErrors() {
		return nil
	}

	return &ValidationError{Problems: problems(diags.Errors)}
}

func problems(ds []diagnostic.Diagnostic) []Problem {
	out := make([]Problem, 0, len(ds))
	for _, d := range ds {
		out = append(out, Problem{
			Code:        d.Code,
			Message:     d.Message,
			Owner:       d.Owner,
			Key:         d.Key,
			Suggestions: d.Suggestions,
		})
	}

	return out
}
