// Package mapping translates between flat key/value stores (posted form
// fields, query strings) and object graphs, in both directions.
//
// A mapping is declared once with generic builder functions and
// built into an immutable Serializer:
//
//	s, err := mapping.Build(func(b *mapping.ClassBuilder[Order]) {
//	    mapping.Simple(b, mapping.Locate[Order, int]("Id"), mapping.Mandatory())
//	    mapping.Date(mapping.Composite(b, mapping.Locate[Order, time.Time]("Placed")))
//	    mapping.Collection(b, mapping.Locate[Order, []Line]("Lines"), func(l *mapping.ClassBuilder[Line]) {
//	        mapping.Simple(l, mapping.Locate[Line, string]("Sku"))
//	    })
//	})
//
// which reads and writes the keys
//
//	Id
//	PlacedYear, PlacedMonth, PlacedDay
//	Lines[0].Sku, Lines[1].Sku, ...
//
// # Key naming
//
// Member keys are joined with "." and collection items add "[i]" after the
// collection key. Composite components append their identifier to the
// composite key directly. NamingPolicy implementations and the node options
// Is, WithPrefix, WithSuffix, PrefixComponentIdentifier and
// SuffixComponentIdentifier customize names; index rendering is fixed.
//
// # Failure semantics
//
// A missing key is not an error. A value that cannot be parsed fails its own
// node only; the failure propagates to the owner when the node is Mandatory
// and is otherwise logged at debug level and ignored. Collections probe
// indices 0, 1, 2, ... and stop at the first index no key matches; items
// that fail are dropped. Configuration problems are reported by Build as a
// *ValidationError and never surface during Deserialize.
package mapping
