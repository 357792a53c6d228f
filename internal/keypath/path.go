package keypath

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Segment is one element of a parsed key: either a name or an index.
type Segment struct {
	Name    string
	Index   int
	IsIndex bool
	// Dotted is set on a name segment that was preceded by a '.'.
	Dotted bool
}

// Path is a parsed flat key.
type Path struct {
	Segments []Segment
}

// Parse parses a flat key into a Path.
// Supports: "Field", "Nested.Field", "Items[0]", "Items[0].ProductID", "[0]Year".
// An empty index ("Items[]") is accepted so that templates parse too; its
// Index is -1.
func Parse(key string) (Path, error) {
	if key == "" {
		return Path{}, errors.New("empty key")
	}

	var segments []Segment

	var name strings.Builder

	dotted := false
	flush := func() {
		if name.Len() > 0 {
			segments = append(segments, Segment{Name: name.String(), Dotted: dotted})
			name.Reset()
		}
		dotted = false
	}

	for i := 0; i < len(key); i++ {
		switch c := key[i]; c {
		case '[':
			flush()

			end := strings.IndexByte(key[i:], ']')
			if end < 0 {
				return Path{}, fmt.Errorf("invalid key %q: unclosed index at %d", key, i)
			}

			digits := key[i+1 : i+end]
			index := -1

			if digits != "" {
				n, err := strconv.Atoi(digits)
				if err != nil || n < 0 || strings.HasPrefix(digits, "+") {
					return Path{}, fmt.Errorf("invalid key %q: bad index %q", key, digits)
				}

				index = n
			}

			segments = append(segments, Segment{Index: index, IsIndex: true})
			i += end
		case ']':
			return Path{}, fmt.Errorf("invalid key %q: unexpected ']' at %d", key, i)
		case '.':
			if i == len(key)-1 || (name.Len() == 0 && (i == 0 || key[i-1] != ']')) {
				return Path{}, fmt.Errorf("invalid key %q: empty segment", key)
			}

			flush()
			dotted = true
		default:
			name.WriteByte(c)
		}
	}

	flush()

	return Path{Segments: segments}, nil
}

// String renders the path back into the flat key it was parsed from.
func (p Path) String() string {
	return p.render(false)
}

// Template renders the path with every index blanked out.
func (p Path) Template() string {
	return p.render(true)
}

// Indices returns the rendered indices in order.
func (p Path) Indices() []int {
	var out []int

	for _, s := range p.Segments {
		if s.IsIndex {
			out = append(out, s.Index)
		}
	}

	return out
}

func (p Path) render(blank bool) string {
	var b strings.Builder

	for i, s := range p.Segments {
		if s.IsIndex {
			b.WriteByte('[')
			if !blank && s.Index >= 0 {
				b.WriteString(strconv.Itoa(s.Index))
			}
			b.WriteByte(']')

			continue
		}

		if i > 0 && s.Dotted {
			b.WriteByte('.')
		}

		b.WriteString(s.Name)
	}

	return b.String()
}

// Template blanks every rendered index of key without otherwise
// normalizing it, so it also works for keys built by custom naming policies
// ("[0]Year" -> "[]Year").
func Template(key string) string {
	var b strings.Builder

	b.Grow(len(key))

	for i := 0; i < len(key); i++ {
		if key[i] == '[' {
			if end := strings.IndexByte(key[i:], ']'); end > 0 && isDigits(key[i+1:i+end]) {
				b.WriteString("[]")
				i += end

				continue
			}
		}

		b.WriteByte(key[i])
	}

	return b.String()
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}

	return true
}
