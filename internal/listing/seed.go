package listing

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ErrSeedFormat is returned when a seed document is neither a list of records
// nor a mapping with a "houses" list.
var ErrSeedFormat = errors.New("unrecognized seed format")

// seedHousesKey is the key holding the records in the mapping form.
const seedHousesKey = "houses"

// seedDocument is the mapping form of a seed file.
type seedDocument struct {
	Houses []Record `yaml:"houses"`
}

// ParseSeed decodes a seed document. Both YAML and JSON are accepted, either as
// a top-level list of records or as a mapping with a "houses" key.
// An empty document yields an empty collection.
func ParseSeed(data []byte) ([]Record, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return []Record{}, nil
	}

	var node yaml.Node
	if err := yaml.Unmarshal(data, &node); err != nil {
		return nil, fmt.Errorf("parsing seed: %w", err)
	}
	if node.Kind != yaml.DocumentNode || len(node.Content) == 0 {
		return []Record{}, nil
	}

	root := node.Content[0]
	switch root.Kind {
	case yaml.SequenceNode:
		var records []Record
		if err := root.Decode(&records); err != nil {
			return nil, fmt.Errorf("decoding seed records: %w", err)
		}
		return Clone(records), nil

	case yaml.MappingNode:
		if !hasKey(root, seedHousesKey) {
			return nil, fmt.Errorf("%w: mapping has no %q key", ErrSeedFormat, seedHousesKey)
		}
		var doc seedDocument
		if err := root.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decoding seed document: %w", err)
		}
		return Clone(doc.Houses), nil

	default:
		return nil, fmt.Errorf("%w: top-level node must be a list or mapping", ErrSeedFormat)
	}
}

// hasKey reports whether the mapping node m has the key name.
func hasKey(m *yaml.Node, name string) bool {
	for i := 0; i+1 < len(m.Content); i += 2 {
		if m.Content[i].Value == name {
			return true
		}
	}
	return false
}

// LoadSeed reads and parses the seed file at path.
func LoadSeed(path string) ([]Record, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading seed file %s: %w", path, err)
	}
	records, err := ParseSeed(data)
	if err != nil {
		return nil, fmt.Errorf("seed file %s: %w", path, err)
	}
	return records, nil
}

// WriteSeed writes records to path as a YAML document with a "houses" key,
// creating the parent directory when needed.
func WriteSeed(path string, records []Record) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o700); err != nil {
			return fmt.Errorf("creating seed directory %q: %w", dir, err)
		}
	}

	data, err := yaml.Marshal(seedDocument{Houses: Clone(records)})
	if err != nil {
		return fmt.Errorf("encoding seed: %w", err)
	}
	if err = os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("writing seed file %s: %w", path, err)
	}
	return nil
}
