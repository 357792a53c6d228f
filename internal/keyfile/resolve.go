package keyfile

import (
	"strings"

	"flatmap/internal/analyze"
)

// ResolveTypeID resolves a type name like:
//   - "flatmap/store.Order" (full)
//   - "store.Order" (short)
//   - "Order" (name only, when unique).
func ResolveTypeID(name string, graph *analyze.TypeGraph) *analyze.TypeInfo {
	if graph == nil || name == "" {
		return nil
	}

	lastDot := strings.LastIndex(name, ".")
	if lastDot < 0 {
		return unique(graph, name, func(analyze.TypeID) bool { return true })
	}

	pkgStr, typeName := name[:lastDot], name[lastDot+1:]
	if pkgStr == "" || typeName == "" {
		return nil
	}

	if t := graph.GetType(analyze.TypeID{PkgPath: pkgStr, Name: typeName}); t != nil {
		return t
	}

	return unique(graph, typeName, func(id analyze.TypeID) bool {
		return strings.HasSuffix(id.PkgPath, "/"+pkgStr)
	})
}

// unique returns the only type called name accepted by keep.
func unique(graph *analyze.TypeGraph, name string, keep func(analyze.TypeID) bool) *analyze.TypeInfo {
	var found *analyze.TypeInfo

	for id, t := range graph.Types {
		if id.Name != name || !keep(id) {
			continue
		}

		if found != nil {
			return nil
		}

		found = t
	}

	return found
}
