// Package analyze provides package loading and type graph extraction.
//
// It uses golang.org/x/tools/go/packages with go/types to build an
// in-memory model of structs and their fields, the input of the mapping
// scaffold.
//
// Key types:
//   - TypeID: package import path + type name
//   - TypeInfo: describes kind (struct/basic/alias/pointer/slice/external)
//   - FieldInfo: describes field name, type, tags, and embedding
package analyze
