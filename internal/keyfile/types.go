package keyfile

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"flatmap/internal/common"
)

// File is the root of a key override file.
type File struct {
	Version string     `yaml:"version"`
	Types   []TypeKeys `yaml:"types"`
}

// TypeKeys pins the keys of one struct.
type TypeKeys struct {
	// Type names the struct, see ResolveTypeID.
	Type string `yaml:"type"`
	// Keys maps a field name to its key segment.
	Keys map[string]string `yaml:"keys,omitempty"`
	// Mandatory lists the fields declared Mandatory().
	Mandatory StringOrArray `yaml:"mandatory,omitempty"`
	// Ignore lists the fields left out of the declaration.
	Ignore StringOrArray `yaml:"ignore,omitempty"`
}

// StringOrArray accepts a single string or a list of strings.
type StringOrArray []string

// UnmarshalYAML implements custom YAML unmarshaling for StringOrArray.
func (s *StringOrArray) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		var str string

		if err := node.Decode(&str); err != nil {
			return err
		}

		if str != "" {
			*s = StringOrArray{str}
		} else {
			*s = StringOrArray{}
		}

		return nil

	case yaml.SequenceNode:
		var arr []string

		if err := node.Decode(&arr); err != nil {
			return err
		}

		*s = arr

		return nil

	default:
		return fmt.Errorf("expected string or array, got %v", node.Kind)
	}
}

// MarshalYAML outputs a single string if length is 1, otherwise an array.
func (s StringOrArray) MarshalYAML() (any, error) {
	if v, ok := common.First(s); ok && len(s) == 1 {
		return v, nil
	}

	return []string(s), nil
}

// Contains reports whether name is listed.
func (s StringOrArray) Contains(name string) bool {
	for _, v := range s {
		if v == name {
			return true
		}
	}

	return false
}
