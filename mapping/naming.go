package mapping

import "strconv"

// NamingPolicy composes flat key names. Policies only compose names:
// rendering collection indices is always done by the engine.
type NamingPolicy interface {
	// MemberKey composes the key of a member from the key of the scope it
	// lives in (empty at the root) and its segment.
	MemberKey(scope, segment string) string
	// ComponentKey composes the key of a composite component from the key
	// of its owning composite and the component identifier.
	ComponentKey(owner, identifier string) string
}

// DefaultPolicy joins member segments with "." and appends component
// identifiers directly: "Address.Street", "Inners[0].Id", "TestDateYear".
type DefaultPolicy struct{}

// MemberKey implements NamingPolicy.
func (DefaultPolicy) MemberKey(scope, segment string) string {
	return JoinKey(scope, ".", segment)
}

// ComponentKey implements NamingPolicy.
func (DefaultPolicy) ComponentKey(owner, identifier string) string {
	return owner + identifier
}

// SeparatorPolicy joins member segments with Separator and component
// identifiers with Component, e.g. "address_street" style form names.
// An empty Component appends identifiers directly.
type SeparatorPolicy struct {
	Separator string
	Component string
}

// MemberKey implements NamingPolicy.
func (p SeparatorPolicy) MemberKey(scope, segment string) string {
	return JoinKey(scope, p.Separator, segment)
}

// ComponentKey implements NamingPolicy.
func (p SeparatorPolicy) ComponentKey(owner, identifier string) string {
	return owner + p.Component + identifier
}

// JoinKey joins scope and segment with sep unless either is empty.
func JoinKey(scope, sep, segment string) string {
	switch {
	case scope == "":
		return segment
	case segment == "":
		return scope
	default:
		return scope + sep + segment
	}
}

// componentSeparator overrides component key composition of the policy it wraps.
type componentSeparator struct {
	NamingPolicy
	sep    string
	prefix bool
}

func (p componentSeparator) ComponentKey(owner, identifier string) string {
	if p.prefix {
		return identifier + p.sep + owner
	}

	return owner + p.sep + identifier
}

// KeyName computes the flat key of n for the given collection indices.
// Levels without an index render as "[]".
func (n *Node) KeyName(ix Indices) string {
	p := n.parent
	if p == nil {
		return ""
	}

	switch p.body.(type) {
	case *collectionBody:
		return p.KeyName(ix) + renderIndex(ix, p.level)
	case *compositeBody:
		return n.effectivePolicy().ComponentKey(p.KeyName(ix), n.segment())
	}

	if n.member == "" {
		return p.KeyName(ix)
	}

	return n.effectivePolicy().MemberKey(p.KeyName(ix), n.segment())
}

// Template returns the key of n with every index left blank, e.g. "Inners[].Id".
func (n *Node) Template() string {
	return n.KeyName(nil)
}

func (n *Node) segment() string {
	name := n.member
	if n.alias != "" {
		name = n.alias
	}

	return n.prefix + name + n.suffix
}

func (n *Node) effectivePolicy() NamingPolicy {
	for x := n; x != nil; x = x.parent {
		if x.naming != nil {
			return x.naming
		}
	}

	return DefaultPolicy{}
}

// resolvePolicies freezes the effective naming policy of every node.
func resolvePolicies(n *Node, inherited NamingPolicy) {
	eff := inherited
	if n.policy != nil {
		eff = n.policy
	}

	for _, wrap := range n.wrappers {
		eff = wrap(eff)
	}

	n.naming = eff

	for _, c := range n.Children() {
		resolvePolicies(c, eff)
	}
}

func renderIndex(ix Indices, level int) string {
	if level < len(ix) {
		return "[" + strconv.Itoa(ix[level]) + "]"
	}

	return "[]"
}
