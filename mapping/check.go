package mapping

import (
	"flatmap/internal/diagnostic"
	"flatmap/internal/keypath"
	"flatmap/internal/match"
)

// Report lists the findings of a key check.
type Report struct {
	Problems []Problem `yaml:"problems"`
}

// OK reports whether every key of the store is read by some mapping and no
// required key is missing.
func (r Report) OK() bool {
	return len(r.Problems) == 0
}

func check(root *Node, store Store) Report {
	layout := layoutOf(root)
	templates := layout.Templates()

	known := make(map[string]struct{}, len(templates))
	for _, t := range templates {
		known[t] = struct{}{}
	}

	var diags diagnostic.Diagnostics

	for _, key := range store.Keys() {
		if _, err := keypath.Parse(key); err != nil {
			diags.AddWarning("malformed_key", err.Error(), "", key)
			continue
		}

		template := keypath.Template(key)
		if _, ok := known[template]; ok {
			continue
		}

		diags.AddWarning("unknown_key", "no mapping reads this key", "", key,
			match.Suggest(template, templates, 3)...)
	}

	for _, k := range layout.Keys {
		if _, ok := store[k.Template]; k.Required && !ok {
			diags.AddWarning("missing_key", "mandatory key is missing", k.Owner, k.Template)
		}
	}

	return Report{Problems: problems(diags.Warnings)}
}
