package config

import (
	"fmt"
	"os"
	"slices"

	"gopkg.in/yaml.v3"

	"httperror-generator/internal/diagnostic"
	"httperror-generator/internal/match"
)

// LoadFile loads and parses a YAML declaration file from the given path.
func LoadFile(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read declaration file %s: %w", path, err)
	}

	f, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return f, nil
}

// Parse parses YAML data into a File.
func Parse(data []byte) (*File, error) {
	var root yaml.Node

	err := yaml.Unmarshal(data, &root)
	if err != nil {
		return nil, fmt.Errorf("failed to parse declaration YAML: %w", err)
	}

	var f File

	if len(root.Content) > 0 {
		doc := root.Content[0]

		err = doc.Decode(&f)
		if err != nil {
			return nil, fmt.Errorf("failed to decode declaration YAML: %w", err)
		}

		f.keyDiags = checkKeys(doc)
	}

	applyDefaults(&f)

	return &f, nil
}

// applyDefaults fills in default values for optional fields.
func applyDefaults(f *File) {
	if f.Version == "" {
		f.Version = CurrentVersion
	}

	for i := range f.SumTypes {
		if f.SumTypes[i].Kind == "" {
			f.SumTypes[i].Kind = KindInterface
		}
	}
}

// Marshal serializes a File to YAML.
func Marshal(f *File) ([]byte, error) {
	return yaml.Marshal(f)
}

// WriteFile writes a File to the given path.
func WriteFile(f *File, path string) error {
	data, err := Marshal(f)
	if err != nil {
		return fmt.Errorf("failed to marshal declarations: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write declaration file %s: %w", path, err)
	}

	return nil
}

// checkKeys reports mapping keys that are not part of the schema.
func checkKeys(doc *yaml.Node) []diagnostic.Diagnostic {
	var out []diagnostic.Diagnostic

	unknown := func(n *yaml.Node, known []string) {
		if n.Kind != yaml.MappingNode {
			return
		}

		for i := 0; i+1 < len(n.Content); i += 2 {
			key := n.Content[i]
			if slices.Contains(known, key.Value) {
				continue
			}

			out = append(out, diagnostic.Diagnostic{
				Severity:    diagnostic.SeverityError,
				Code:        diagnostic.CodeUnknownKey,
				Message:     fmt.Sprintf("unknown key %q", key.Value),
				Pos:         fmt.Sprintf("line %d", key.Line),
				Suggestions: match.Suggest(key.Value, known),
			})
		}
	}

	each := func(n *yaml.Node, key string, fn func(*yaml.Node)) {
		if v := value(n, key); v != nil && v.Kind == yaml.SequenceNode {
			for _, item := range v.Content {
				fn(item)
			}
		}
	}

	unknown(doc, fileKeys)
	each(doc, "sumtypes", func(st *yaml.Node) {
		unknown(st, sumTypeKeys)
		each(st, "type_params", func(tp *yaml.Node) { unknown(tp, typeParamKeys) })
		each(st, "cases", func(c *yaml.Node) {
			unknown(c, caseKeys)
			each(c, "slots", func(s *yaml.Node) { unknown(s, slotKeys) })
		})
	})

	return out
}

// value returns the value node of key in mapping n, or nil.
func value(n *yaml.Node, key string) *yaml.Node {
	if n.Kind != yaml.MappingNode {
		return nil
	}

	for i := 0; i+1 < len(n.Content); i += 2 {
		if n.Content[i].Value == key {
			return n.Content[i+1]
		}
	}

	return nil
}
