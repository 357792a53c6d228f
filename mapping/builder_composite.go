package mapping

import (
	"fmt"
	"strconv"
	"time"

	"flatmap/utils"
)

// CompositeMapping is the handle of a value of type V spread across several
// component keys.
type CompositeMapping[V any] struct {
	node  *Node
	body  *compositeBody
	state *buildState

	components map[string]*ComponentMapping[V]
}

// ComponentMapping is the handle of one component of a composite.
type ComponentMapping[V any] struct {
	node  *Node
	body  *componentBody
	state *buildState
}

// Composite maps member m across the components declared on the handle.
func Composite[T, V any](b *ClassBuilder[T], m Member[T, V], opts ...NodeOption) *CompositeMapping[V] {
	h, ok, conflict := lookup[*CompositeMapping[V]](b, m.Name, KindComposite)
	if !ok {
		h = newCompositeMapping[V](b.state)
		bindMember(h.node, m)
		attach(b, h.node, h, conflict)
	}

	applyNodeOptions(h.node, opts)

	return h
}

// AsComposite maps T itself as a composite. Legal only on a collection item
// builder or a root builder.
func AsComposite[T any](b *ClassBuilder[T], opts ...NodeOption) *CompositeMapping[T] {
	h, ok, conflict := lookup[*CompositeMapping[T]](b, "", KindComposite)
	if !ok {
		h = newCompositeMapping[T](b.state)
		attach(b, h.node, h, conflict)
	}

	applyNodeOptions(h.node, opts)

	return h
}

func newCompositeMapping[V any](state *buildState) *CompositeMapping[V] {
	body := &compositeBody{isZero: isZero[V]}

	return &CompositeMapping[V]{
		node:       &Node{body: body},
		body:       body,
		state:      state,
		components: make(map[string]*ComponentMapping[V]),
	}
}

// Component declares the component identified by id. Declaring the same
// identifier twice returns the existing component.
func (c *CompositeMapping[V]) Component(id string, opts ...NodeOption) *ComponentMapping[V] {
	c.state.guard()

	if id == "" {
		panic("component identifier cannot be empty")
	}

	comp, ok := c.components[id]
	if !ok {
		body := &componentBody{}
		comp = &ComponentMapping[V]{
			node: &Node{
				parent: c.node,
				member: id,
				owner:  c.node.owner,
				level:  c.node.level,
				body:   body,
			},
			body:  body,
			state: c.state,
		}
		c.components[id] = comp
		c.body.components = append(c.body.components, comp.node)
	}

	applyNodeOptions(comp.node, opts)

	return comp
}

// Deserialize sets the whole-value reader. parts holds the raw value of
// every component found, by identifier.
func (c *CompositeMapping[V]) Deserialize(fn func(parts map[string]string) (V, error)) *CompositeMapping[V] {
	c.state.guard()

	c.body.compose = func(parts map[string]string) (any, error) {
		return fn(parts)
	}

	return c
}

// Serialize sets the whole-value writer returning component values by identifier.
func (c *CompositeMapping[V]) Serialize(fn func(V) map[string]string) *CompositeMapping[V] {
	c.state.guard()

	c.body.decompose = func(v any) map[string]string {
		t, _ := v.(V)
		return fn(t)
	}

	return c
}

// With applies node options.
func (c *CompositeMapping[V]) With(opts ...NodeOption) *CompositeMapping[V] {
	c.state.guard()
	applyNodeOptions(c.node, opts)

	return c
}

// Node returns the underlying node.
func (c *CompositeMapping[V]) Node() *Node { return c.node }

// Serialize sets the writer of this component alone.
func (c *ComponentMapping[V]) Serialize(fn func(V) string) *ComponentMapping[V] {
	c.state.guard()

	c.body.format = func(v any) string {
		t, _ := v.(V)
		return fn(t)
	}

	return c
}

// With applies node options.
func (c *ComponentMapping[V]) With(opts ...NodeOption) *ComponentMapping[V] {
	c.state.guard()
	applyNodeOptions(c.node, opts)

	return c
}

// Node returns the underlying node.
func (c *ComponentMapping[V]) Node() *Node { return c.node }

// Date maps a time.Time as mandatory Year, Month and Day components.
func Date(c *CompositeMapping[time.Time]) *CompositeMapping[time.Time] {
	c.Component("Year", Mandatory())
	c.Component("Month", Mandatory())
	c.Component("Day", Mandatory())

	return c.
		Deserialize(func(parts map[string]string) (time.Time, error) {
			return composeDate(parts, false)
		}).
		Serialize(func(t time.Time) map[string]string {
			return map[string]string{
				"Year":  strconv.Itoa(t.Year()),
				"Month": strconv.Itoa(int(t.Month())),
				"Day":   strconv.Itoa(t.Day()),
			}
		})
}

// DateTime extends Date with optional Hour and Minute components.
func DateTime(c *CompositeMapping[time.Time]) *CompositeMapping[time.Time] {
	Date(c)
	c.Component("Hour")
	c.Component("Minute")

	return c.
		Deserialize(func(parts map[string]string) (time.Time, error) {
			return composeDate(parts, true)
		}).
		Serialize(func(t time.Time) map[string]string {
			return map[string]string{
				"Year":   strconv.Itoa(t.Year()),
				"Month":  strconv.Itoa(int(t.Month())),
				"Day":    strconv.Itoa(t.Day()),
				"Hour":   strconv.Itoa(t.Hour()),
				"Minute": strconv.Itoa(t.Minute()),
			}
		})
}

func composeDate(parts map[string]string, withTime bool) (time.Time, error) {
	year, err := datePart(parts, "Year", 1, 9999)
	if err != nil {
		return time.Time{}, err
	}

	month, err := datePart(parts, "Month", 1, 12)
	if err != nil {
		return time.Time{}, err
	}

	last := time.Date(year, time.Month(month)+1, 0, 0, 0, 0, 0, time.UTC).Day()

	day, err := datePart(parts, "Day", 1, last)
	if err != nil {
		return time.Time{}, err
	}

	var hour, minute int
	if withTime {
		if hour, err = datePart(parts, "Hour", 0, 23); err != nil {
			return time.Time{}, err
		}

		if minute, err = datePart(parts, "Minute", 0, 59); err != nil {
			return time.Time{}, err
		}
	}

	return time.Date(year, time.Month(month), day, hour, minute, 0, 0, time.UTC), nil
}

// datePart parses parts[id]; a missing part reads as min.
func datePart(parts map[string]string, id string, minimum, maximum int) (int, error) {
	raw, ok := parts[id]
	if !ok {
		return minimum, nil
	}

	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", id, err)
	}

	if !utils.IsInRange(minimum, n, maximum) {
		return 0, fmt.Errorf("%s: %d is out of range [%d, %d]", id, n, minimum, maximum)
	}

	return n, nil
}
