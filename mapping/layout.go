package mapping

import (
	"strings"

	"gopkg.in/yaml.v3"
)

// Layout lists the key templates of a mapping in declaration order.
// Collection indices are blank: "Inners[].Id".
type Layout struct {
	Keys []LayoutKey `yaml:"keys"`
}

// LayoutKey describes one key template. Required is set when every read
// needs the key: the node and all of its enclosing nodes are mandatory and
// none is a collection.
type LayoutKey struct {
	Template  string `yaml:"key"`
	Kind      Kind   `yaml:"kind"`
	Mandatory bool   `yaml:"mandatory,omitempty"`
	Required  bool   `yaml:"required,omitempty"`
	Owner     string `yaml:"owner,omitempty"`
	Member    string `yaml:"member,omitempty"`
}

// MarshalYAML renders the kind by name.
func (k Kind) MarshalYAML() (any, error) {
	return k.String(), nil
}

func layoutOf(root *Node) Layout {
	var l Layout

	root.Walk(func(n *Node) bool {
		switch n.body.(type) {
		case *simpleBody, *componentBody:
		default:
			return true
		}

		member := n.member
		if n.Kind() == KindComponent {
			member = n.parent.member
		}

		l.Keys = append(l.Keys, LayoutKey{
			Template:  n.Template(),
			Kind:      n.Kind(),
			Mandatory: n.mandatory,
			Required:  required(n),
			Owner:     n.owner,
			Member:    member,
		})

		return true
	})

	return l
}

func required(n *Node) bool {
	for x := n; x.parent != nil; x = x.parent {
		if !x.mandatory {
			return false
		}

		if _, ok := x.parent.body.(*collectionBody); ok {
			return false
		}
	}

	return true
}

// Templates returns the key templates in declaration order.
func (l Layout) Templates() []string {
	out := make([]string, 0, len(l.Keys))
	for _, k := range l.Keys {
		out = append(out, k.Template)
	}

	return out
}

// YAML renders the layout as a YAML document.
func (l Layout) YAML() ([]byte, error) {
	return yaml.Marshal(l)
}

func (l Layout) String() string {
	var b strings.Builder

	for _, k := range l.Keys {
		b.WriteString(k.Template)
		b.WriteString(" (" + k.Kind.String())

		if k.Mandatory {
			b.WriteString(", mandatory")
		}

		b.WriteString(")\n")
	}

	return b.String()
}
