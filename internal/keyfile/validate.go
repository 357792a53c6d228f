package keyfile

import (
	"fmt"
	"maps"
	"slices"

	"flatmap/internal/analyze"
	"flatmap/internal/diagnostic"
	"flatmap/internal/match"
)

// Rules are the validated overrides of one struct.
type Rules struct {
	keys      map[string]string
	mandatory StringOrArray
	ignore    StringOrArray
}

// Set indexes validated overrides by struct. A nil Set overrides nothing.
type Set map[analyze.TypeID]*Rules

// Apply returns the tag of field of type id with the overrides applied.
func (s Set) Apply(id analyze.TypeID, field string, tag analyze.FlatTag) analyze.FlatTag {
	r, ok := s[id]
	if !ok {
		return tag
	}

	if r.ignore.Contains(field) {
		return analyze.FlatTag{Skip: true}
	}

	if key, ok := r.keys[field]; ok {
		tag.Key = key
	}

	if r.mandatory.Contains(field) {
		tag.Mandatory = true
	}

	return tag
}

// Compile validates f against graph and indexes it.
func Compile(f *File, graph *analyze.TypeGraph) (Set, *diagnostic.Diagnostics) {
	diags := Validate(f, graph)
	if !diags.IsValid() {
		return nil, diags
	}

	set := make(Set, len(f.Types))
	for _, tk := range f.Types {
		info := ResolveTypeID(tk.Type, graph)
		set[info.ID] = &Rules{keys: tk.Keys, mandatory: tk.Mandatory, ignore: tk.Ignore}
	}

	return set, diags
}

// Validate checks f against graph: every type must resolve to a struct and
// every listed field must exist on it.
func Validate(f *File, graph *analyze.TypeGraph) *diagnostic.Diagnostics {
	res := &diagnostic.Diagnostics{}
	if f == nil {
		res.AddError("file_is_nil", "key file is nil", "", "")
		return res
	}

	if graph == nil {
		res.AddError("graph_is_nil", "type graph is nil", "", "")
		return res
	}

	if f.Version != "1" {
		res.AddError("unsupported_version", fmt.Sprintf("unsupported key file version %q", f.Version), "", "")
	}

	seen := make(map[analyze.TypeID]string)

	for _, tk := range f.Types {
		info := ResolveTypeID(tk.Type, graph)
		if info == nil {
			res.AddError("type_not_found", fmt.Sprintf("type %q not found or ambiguous", tk.Type), tk.Type, "")
			continue
		}

		if info.Kind != analyze.TypeKindStruct {
			res.AddError("not_a_struct", fmt.Sprintf("type %q is not a struct (kind: %s)", tk.Type, info.Kind), tk.Type, "")
			continue
		}

		if first, ok := seen[info.ID]; ok {
			res.AddError("duplicate_type", fmt.Sprintf("type %q is already listed as %q", tk.Type, first), tk.Type, "")
			continue
		}

		seen[info.ID] = tk.Type

		validateFields(res, tk, info)
	}

	return res
}

func validateFields(res *diagnostic.Diagnostics, tk TypeKeys, info *analyze.TypeInfo) {
	names := make([]string, 0, len(info.Fields))
	for _, f := range info.Fields {
		names = append(names, f.Name)
	}

	check := func(field string) {
		for _, n := range names {
			if n == field {
				return
			}
		}

		res.AddError("field_not_found", fmt.Sprintf("%s has no exported field %q", info.ID, field),
			tk.Type, field, match.Suggest(field, names, 1)...)
	}

	for _, field := range slices.Sorted(maps.Keys(tk.Keys)) {
		check(field)

		if tk.Keys[field] == "" {
			res.AddError("empty_key", "key segment cannot be empty", tk.Type, field)
		}

		if tk.Ignore.Contains(field) {
			res.AddWarning("ignored_field_keyed", "field is both keyed and ignored", tk.Type, field)
		}
	}

	for _, field := range tk.Mandatory {
		check(field)

		if tk.Ignore.Contains(field) {
			res.AddWarning("ignored_field_mandatory", "field is both mandatory and ignored", tk.Type, field)
		}
	}

	for _, field := range tk.Ignore {
		check(field)
	}
}
