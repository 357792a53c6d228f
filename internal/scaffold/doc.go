// Package scaffold generates mapping declarations for existing structs.
//
// Given a type graph built by the analyze package, it emits one
// Configure<Type> function per struct reachable from a root type, plus a
// constructor for the root serializer. The output is a starting point meant
// to be edited: keys follow field names (or the `flat:"Key,mandatory"` tag),
// time.Time fields become Year/Month/Day composites and entity references
// use the UUID codec.
package scaffold
