package scaffold

import (
	"bytes"
	"errors"
	"fmt"
	"go/format"
	"go/types"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"text/template"

	"flatmap/internal/analyze"
	"flatmap/internal/keyfile"
)

const (
	mappingPkg = "flatmap/mapping"
	entityPkg  = "flatmap/entity"
)

// ErrRecursive is returned when the root type reaches itself through
// nested structs or collections; such graphs cannot be declared eagerly.
var ErrRecursive = errors.New("recursive type graph")

// Config holds configuration for scaffold generation.
type Config struct {
	// PackageName is the package clause of the generated file.
	PackageName string
	// PackagePath is the import path the file is generated into. Types of
	// that package are left unqualified.
	PackagePath string
	// Overrides pin keys on top of the flat struct tags.
	Overrides keyfile.Set
}

// DefaultConfig returns the default scaffold configuration.
func DefaultConfig() Config {
	return Config{PackageName: "flatkeys"}
}

// GeneratedFile is a formatted Go source file.
type GeneratedFile struct {
	Filename string
	Content  []byte
}

// Generator emits mapping declarations from a type graph.
type Generator struct {
	config  Config
	graph   *analyze.TypeGraph
	imports map[string]importSpec
	funcs   map[analyze.TypeID]string
}

type importSpec struct {
	Path  string
	Alias string
	local string
}

type structFunc struct {
	Name  string
	Type  string
	Lines []string
}

type templateData struct {
	Root        string
	PackageName string
	Imports     []importSpec
	RootType    string
	RootName    string
	RootFunc    string
	Funcs       []structFunc
}

// NewGenerator creates a Generator over graph.
func NewGenerator(config Config, graph *analyze.TypeGraph) *Generator {
	if config.PackageName == "" {
		config.PackageName = DefaultConfig().PackageName
	}

	return &Generator{config: config, graph: graph}
}

// Generate emits the declarations of root and every struct it reaches.
func (g *Generator) Generate(root analyze.TypeID) (*GeneratedFile, error) {
	info := g.graph.GetType(root)
	if info == nil {
		return nil, fmt.Errorf("type %s not found", root)
	}

	if info.Kind != analyze.TypeKindStruct {
		return nil, fmt.Errorf("type %s is not a struct (kind: %s)", root, info.Kind)
	}

	g.imports = make(map[string]importSpec)
	g.funcs = make(map[analyze.TypeID]string)
	g.importName(mappingPkg, "mapping")

	structs, parents := g.reachable(info)

	order, err := topoSort(len(structs), func(i int) []int { return parents[i] })
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrRecursive, root)
	}

	g.nameFuncs(structs)

	data := &templateData{
		Root:        root.String(),
		PackageName: g.config.PackageName,
		RootType:    g.typeString(info),
		RootName:    root.Name,
		RootFunc:    g.funcs[root],
	}

	for _, i := range order {
		data.Funcs = append(data.Funcs, g.structFunc(structs[i]))
	}

	data.Imports = g.sortedImports()

	var buf bytes.Buffer
	if err := scaffoldTemplate.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("executing template: %w", err)
	}

	formatted, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("formatting %s: %w", root, err)
	}

	return &GeneratedFile{
		Filename: strings.ToLower(root.Name) + "_flat.go",
		Content:  formatted,
	}, nil
}

// reachable lists the named structs reachable from root in discovery order,
// with the indices of the structs referring to each.
func (g *Generator) reachable(root *analyze.TypeInfo) ([]*analyze.TypeInfo, [][]int) {
	index := map[analyze.TypeID]int{root.ID: 0}
	structs := []*analyze.TypeInfo{root}
	parents := [][]int{nil}

	for i := 0; i < len(structs); i++ {
		for _, f := range structs[i].Fields {
			if g.tag(structs[i].ID, f).Skip {
				continue
			}

			child := nestedStruct(f.Type)
			if child == nil {
				continue
			}

			j, ok := index[child.ID]
			if !ok {
				j = len(structs)
				index[child.ID] = j
				structs = append(structs, child)
				parents = append(parents, nil)
			}

			parents[j] = append(parents[j], i)
		}
	}

	return structs, parents
}

// nestedStruct returns the named struct a field maps through, directly or
// as the item of a collection.
func nestedStruct(t *analyze.TypeInfo) *analyze.TypeInfo {
	if t.Kind == analyze.TypeKindSlice {
		t = t.ElemType
	}

	if t.Kind == analyze.TypeKindStruct && t.IsNamed() {
		return t
	}

	return nil
}

func (g *Generator) nameFuncs(structs []*analyze.TypeInfo) {
	seen := make(map[string]int)
	for _, s := range structs {
		seen[s.ID.Name]++
	}

	for _, s := range structs {
		name := "Configure" + s.ID.Name
		if seen[s.ID.Name] > 1 {
			pkg := s.ID.PkgPath[strings.LastIndex(s.ID.PkgPath, "/")+1:]
			name = "Configure" + capitalize(pkg) + s.ID.Name
		}

		g.funcs[s.ID] = name
	}
}

func (g *Generator) tag(owner analyze.TypeID, f analyze.FieldInfo) analyze.FlatTag {
	return g.config.Overrides.Apply(owner, f.Name, f.FlatTag())
}

func (g *Generator) structFunc(s *analyze.TypeInfo) structFunc {
	owner := g.typeString(s)
	fn := structFunc{Name: g.funcs[s.ID], Type: owner}

	for _, f := range s.Fields {
		tag := g.tag(s.ID, f)
		if tag.Skip {
			continue
		}

		fn.Lines = append(fn.Lines, g.fieldLine(owner, f, tag))
	}

	if len(fn.Lines) == 0 {
		fn.Lines = append(fn.Lines, "// no exported fields")
	}

	return fn
}

func (g *Generator) fieldLine(owner string, f analyze.FieldInfo, tag analyze.FlatTag) string {
	ft := f.Type
	member := fmt.Sprintf("mapping.Locate[%s, %s](%q)", owner, g.typeString(ft), f.Name)
	opts := nodeOptions(tag)

	switch ft.Kind {
	case analyze.TypeKindBasic, analyze.TypeKindAlias:
		if !textual(ft) {
			break
		}

		return fmt.Sprintf("mapping.Simple(b, %s%s)", member, opts)

	case analyze.TypeKindExternal:
		switch {
		case ft.Is("time", "Time"):
			return fmt.Sprintf("mapping.Date(mapping.Composite(b, %s%s))", member, opts)
		case ft.Is(entityPkg, "Ref"):
			return fmt.Sprintf("mapping.Entity(b, %s%s)", member, opts)
		default:
			return fmt.Sprintf("mapping.Simple(b, %s%s)", member, opts)
		}

	case analyze.TypeKindStruct:
		if !ft.IsNamed() {
			break
		}

		return fmt.Sprintf("mapping.Class(b, %s, %s%s)", member, g.funcs[ft.ID], opts)

	case analyze.TypeKindSlice:
		if nested := nestedStruct(ft); nested != nil {
			return fmt.Sprintf("mapping.Collection(b, %s, %s%s)", member, g.funcs[nested.ID], opts)
		}

		item, ok := g.valueItem(ft.ElemType)
		if !ok {
			break
		}

		return fmt.Sprintf("mapping.ValueCollection(b, %s, func(i *mapping.ClassBuilder[%s]) { %s }%s)",
			member, g.typeString(ft.ElemType), item, opts)
	}

	return fmt.Sprintf("// %s: %s has no flat form", f.Name, g.typeString(ft))
}

// valueItem returns the whole-value declaration of a collection item.
func (g *Generator) valueItem(t *analyze.TypeInfo) (string, bool) {
	switch t.Kind {
	case analyze.TypeKindBasic, analyze.TypeKindAlias:
		return "mapping.AsSimple(i)", textual(t)
	case analyze.TypeKindExternal:
		switch {
		case t.Is("time", "Time"):
			return "mapping.Date(mapping.AsComposite(i))", true
		case t.Is(entityPkg, "Ref"):
			return "mapping.AsEntity(i)", true
		default:
			return "mapping.AsSimple(i)", true
		}
	}

	return "", false
}

// textual reports whether a basic (or named basic) type has a default
// string conversion.
func textual(t *analyze.TypeInfo) bool {
	for t.Kind == analyze.TypeKindAlias && t.Underlying != nil {
		t = t.Underlying
	}

	basic, ok := t.GoType.Underlying().(*types.Basic)
	if !ok {
		return false
	}

	info := basic.Info()

	return info&types.IsComplex == 0 && info&(types.IsBoolean|types.IsNumeric|types.IsString) != 0
}

func nodeOptions(tag analyze.FlatTag) string {
	var opts string
	if tag.Key != "" {
		opts += fmt.Sprintf(", mapping.Is(%q)", tag.Key)
	}

	if tag.Mandatory {
		opts += ", mapping.Mandatory()"
	}

	return opts
}

func (g *Generator) typeString(t *analyze.TypeInfo) string {
	return types.TypeString(t.GoType, g.qualify)
}

func (g *Generator) qualify(pkg *types.Package) string {
	if pkg.Path() == g.config.PackagePath {
		return ""
	}

	return g.importName(pkg.Path(), pkg.Name())
}

// importName records an import and returns the name it is referred by.
func (g *Generator) importName(path, name string) string {
	if spec, ok := g.imports[path]; ok {
		return spec.local
	}

	spec := importSpec{Path: path, local: name}
	for n := 2; g.taken(spec.local); n++ {
		spec.local = name + strconv.Itoa(n)
		spec.Alias = spec.local
	}

	g.imports[path] = spec

	return spec.local
}

func (g *Generator) taken(local string) bool {
	for _, spec := range g.imports {
		if spec.local == local {
			return true
		}
	}

	return false
}

func (g *Generator) sortedImports() []importSpec {
	out := make([]importSpec, 0, len(g.imports))
	for _, spec := range g.imports {
		out = append(out, spec)
	}

	sort.Slice(out, func(i, j int) bool { return out[i].Path < out[j].Path })

	return out
}

func capitalize(s string) string {
	if s == "" {
		return s
	}

	return strings.ToUpper(s[:1]) + s[1:]
}

// File permission constants.
const (
	dirPerm  = 0o755
	filePerm = 0o644
)

// WriteFile writes file into outputDir, creating the directory if needed.
func WriteFile(file *GeneratedFile, outputDir string) (string, error) {
	if err := os.MkdirAll(outputDir, dirPerm); err != nil {
		return "", fmt.Errorf("creating output directory: %w", err)
	}

	outputPath := filepath.Join(outputDir, file.Filename)
	if err := os.WriteFile(outputPath, file.Content, filePerm); err != nil {
		return "", fmt.Errorf("writing file %s: %w", file.Filename, err)
	}

	return outputPath, nil
}

var scaffoldTemplate = template.Must(template.New("scaffold").Parse(`// Scaffolded by flatmap from {{.Root}}.

package {{.PackageName}}

import (
{{range .Imports}}	{{if .Alias}}{{.Alias}} {{end}}"{{.Path}}"
{{end}})

// New{{.RootName}}Serializer builds the serializer of {{.RootType}}.
func New{{.RootName}}Serializer(opts ...mapping.Option) (*mapping.Serializer[{{.RootType}}], error) {
	return mapping.Build({{.RootFunc}}, opts...)
}
{{range .Funcs}}
// {{.Name}} declares the flat keys of {{.Type}}.
func {{.Name}}(b *mapping.ClassBuilder[{{.Type}}]) {
{{range .Lines}}	{{.}}
{{end}}}
{{end}}`))
