package mapping

import (
	"github.com/rs/zerolog"

	"flatmap/primitive"
)

// NodeOption customizes the node under construction.
type NodeOption func(*Node)

// Mandatory makes the node's absence or failure fail its owner.
func Mandatory() NodeOption {
	return func(n *Node) { n.mandatory = true }
}

// Optional reverts Mandatory.
func Optional() NodeOption {
	return func(n *Node) { n.mandatory = false }
}

// Is replaces the member name in the node's own key segment.
func Is(name string) NodeOption {
	return func(n *Node) { n.alias = name }
}

// WithPrefix prepends p to the node's own key segment.
func WithPrefix(p string) NodeOption {
	return func(n *Node) { n.prefix = p }
}

// WithSuffix appends s to the node's own key segment.
func WithSuffix(s string) NodeOption {
	return func(n *Node) { n.suffix = s }
}

// PrefixComponentIdentifier places component identifiers before their
// owner's key, separated by sep: "Year" + sep + "TestDate".
// Applies to the node's subtree.
func PrefixComponentIdentifier(sep string) NodeOption {
	return func(n *Node) {
		n.wrappers = append(n.wrappers, func(p NamingPolicy) NamingPolicy {
			return componentSeparator{NamingPolicy: p, sep: sep, prefix: true}
		})
	}
}

// SuffixComponentIdentifier places component identifiers after their
// owner's key, separated by sep: "TestDate" + sep + "Year".
// Applies to the node's subtree.
func SuffixComponentIdentifier(sep string) NodeOption {
	return func(n *Node) {
		n.wrappers = append(n.wrappers, func(p NamingPolicy) NamingPolicy {
			return componentSeparator{NamingPolicy: p, sep: sep}
		})
	}
}

// Policy attaches p to the node; its subtree inherits it unless overridden.
func Policy(p NamingPolicy) NodeOption {
	if p == nil {
		panic("naming policy cannot be nil")
	}

	return func(n *Node) { n.policy = p }
}

// PolicyFunc attaches the policy returned by factory.
func PolicyFunc(factory func() NamingPolicy) NodeOption {
	if factory == nil {
		panic("naming policy factory cannot be nil")
	}

	return func(n *Node) { n.policy = factory() }
}

// UsePolicy attaches the zero value of P.
func UsePolicy[P NamingPolicy]() NodeOption {
	var p P
	return Policy(p)
}

func applyNodeOptions(n *Node, opts []NodeOption) {
	for _, opt := range opts {
		opt(n)
	}
}

// Option configures Build.
type Option func(*config)

type config struct {
	logger     zerolog.Logger
	categories primitive.CategoryEnum
	policy     NamingPolicy
}

func defaultConfig() *config {
	return &config{
		logger:     zerolog.Nop(),
		categories: primitive.CategoryText,
		policy:     DefaultPolicy{},
	}
}

// WithLogger sets the logger receiving debug events about absorbed data errors.
func WithLogger(l zerolog.Logger) Option {
	return func(c *config) { c.logger = l }
}

// WithCategories selects which primitive conversions default scalar codecs may use.
func WithCategories(categories primitive.CategoryEnum) Option {
	return func(c *config) { c.categories = categories }
}

// WithNamingPolicy sets the naming policy inherited by the whole tree.
func WithNamingPolicy(p NamingPolicy) Option {
	return func(c *config) {
		if p != nil {
			c.policy = p
		}
	}
}
