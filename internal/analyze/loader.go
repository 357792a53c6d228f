package analyze

import (
	"errors"
	"fmt"
	"go/types"
	"reflect"

	"golang.org/x/tools/go/packages"
)

// LoadMode specifies what information to load from packages.
const LoadMode = packages.NeedName |
	packages.NeedFiles |
	packages.NeedTypes |
	packages.NeedTypesInfo |
	packages.NeedImports

// Analyzer loads Go packages and builds a type graph.
type Analyzer struct {
	graph     *TypeGraph
	typeCache map[types.Type]*TypeInfo // Cache to handle recursive types
	Dir       string                   // Working directory of the loader, "" for the current one
}

// NewAnalyzer creates a new Analyzer.
func NewAnalyzer() *Analyzer {
	return &Analyzer{
		graph:     NewTypeGraph(),
		typeCache: make(map[types.Type]*TypeInfo),
	}
}

// LoadPackages loads the specified packages and builds the type graph.
// Patterns are standard Go package patterns (e.g., "./store", "flatmap/store").
func (a *Analyzer) LoadPackages(patterns ...string) (*TypeGraph, error) {
	cfg := &packages.Config{
		Mode: LoadMode,
		Dir:  a.Dir,
	}

	pkgs, err := packages.Load(cfg, patterns...)
	if err != nil {
		return nil, fmt.Errorf("failed to load packages: %w", err)
	}

	var errs []error
	for _, pkg := range pkgs {
		for _, e := range pkg.Errors {
			errs = append(errs, e)
		}
	}
	if len(errs) > 0 {
		return nil, fmt.Errorf("package errors: %w", errors.Join(errs...))
	}

	// Register every loaded package first: a type referring to a sibling
	// package must not be taken for an external one.
	for _, pkg := range pkgs {
		a.graph.Packages[pkg.PkgPath] = &PackageInfo{
			Path: pkg.PkgPath,
			Name: pkg.Name,
		}
	}

	for _, pkg := range pkgs {
		a.processPackage(pkg.Types)
	}

	return a.graph, nil
}

// AddPackage adds an already type-checked package to the graph.
func (a *Analyzer) AddPackage(pkg *types.Package) *TypeGraph {
	a.graph.Packages[pkg.Path()] = &PackageInfo{
		Path: pkg.Path(),
		Name: pkg.Name(),
	}

	a.processPackage(pkg)

	return a.graph
}

// Graph returns the current type graph.
func (a *Analyzer) Graph() *TypeGraph {
	return a.graph
}

// processPackage extracts exported named types from a loaded package.
func (a *Analyzer) processPackage(pkg *types.Package) {
	pkgInfo := a.graph.Packages[pkg.Path()]

	scope := pkg.Scope()
	for _, name := range scope.Names() {
		typeName, ok := scope.Lookup(name).(*types.TypeName)
		if !ok || !typeName.Exported() {
			continue
		}

		// generic declarations cannot be mapped without instantiation
		if named, ok := typeName.Type().(*types.Named); ok && named.TypeParams().Len() > 0 {
			continue
		}

		typeID := TypeID{
			PkgPath: pkg.Path(),
			Name:    name,
		}

		typeInfo := a.analyzeType(typeName.Type())
		typeInfo.ID = typeID

		a.graph.Types[typeID] = typeInfo
		pkgInfo.Types = append(pkgInfo.Types, typeID)
	}
}

// analyzeType recursively analyzes a go/types.Type and returns a TypeInfo.
func (a *Analyzer) analyzeType(t types.Type) *TypeInfo {
	if cached, ok := a.typeCache[t]; ok {
		return cached
	}

	info := &TypeInfo{
		GoType: t,
	}

	// Pre-cache to handle recursive types (we'll fill in details)
	a.typeCache[t] = info

	switch tt := types.Unalias(t).(type) {
	case *types.Named:
		a.analyzeNamedType(tt, info)

	case *types.Basic:
		info.Kind = TypeKindBasic

	case *types.Pointer:
		info.Kind = TypeKindPointer
		info.ElemType = a.analyzeType(tt.Elem())

	case *types.Slice:
		info.Kind = TypeKindSlice
		info.ElemType = a.analyzeType(tt.Elem())

	case *types.Struct:
		info.Kind = TypeKindStruct
		a.analyzeStructFields(tt, info)

	default:
		// Maps, interfaces, channels, etc. have no flat form
		info.Kind = TypeKindUnknown
	}

	return info
}

// analyzeNamedType analyzes a named type.
func (a *Analyzer) analyzeNamedType(named *types.Named, info *TypeInfo) {
	obj := named.Obj()
	if obj.Pkg() == nil {
		// predeclared error
		info.Kind = TypeKindUnknown
		return
	}

	info.ID = TypeID{
		PkgPath: obj.Pkg().Path(),
		Name:    obj.Name(),
	}

	underlying := named.Underlying()

	if basic, ok := underlying.(*types.Basic); ok {
		// Named basic type (e.g., type OrderStatus string), wherever it lives
		info.Kind = TypeKindAlias
		info.Underlying = a.analyzeType(basic)

		return
	}

	if a.isExternalPackage(obj.Pkg().Path()) {
		// Opaque type from outside the loaded set (time.Time, entity.Ref[E])
		info.Kind = TypeKindExternal
		return
	}

	switch ut := underlying.(type) {
	case *types.Struct:
		info.Kind = TypeKindStruct
		a.analyzeStructFields(ut, info)

	default:
		info.Kind = TypeKindAlias
		info.Underlying = a.analyzeType(ut)
	}
}

// isExternalPackage returns true if the package is not in our analyzed set.
func (a *Analyzer) isExternalPackage(pkgPath string) bool {
	_, ok := a.graph.Packages[pkgPath]
	return !ok
}

// analyzeStructFields extracts exported fields from a struct type.
func (a *Analyzer) analyzeStructFields(st *types.Struct, info *TypeInfo) {
	for i := range st.NumFields() {
		field := st.Field(i)

		if !field.Exported() {
			continue
		}

		fieldInfo := FieldInfo{
			Name:     field.Name(),
			Exported: field.Exported(),
			Type:     a.analyzeType(field.Type()),
			Tag:      reflect.StructTag(st.Tag(i)),
			Embedded: field.Embedded(),
			Index:    i,
		}

		info.Fields = append(info.Fields, fieldInfo)
	}
}

// GetStruct returns the TypeInfo for a named struct.
func (a *Analyzer) GetStruct(pkgPath, typeName string) (*TypeInfo, error) {
	id := TypeID{PkgPath: pkgPath, Name: typeName}
	info := a.graph.GetType(id)
	if info == nil {
		return nil, fmt.Errorf("type %s not found", id)
	}
	if info.Kind != TypeKindStruct {
		return nil, fmt.Errorf("type %s is not a struct (kind: %s)", id, info.Kind)
	}
	return info, nil
}
