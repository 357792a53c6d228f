// Package keypath parses and renders flat keys.
//
// # Key grammar
//
// A flat key is a sequence of segments:
//   - Member names: "Name"
//   - Nested members joined by dots: "Address.Street"
//   - Rendered collection indices: "Inners[0]", "[0]" for a root collection
//   - Indexed members: "Inners[0].Id", "[2]Year"
//
// A template is a key with every index left blank ("Inners[].Id"); all
// concrete keys produced for one mapping node share a template.
package keypath
