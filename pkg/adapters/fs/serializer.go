package fs

import (
	"bytes"
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/aretw0/notes/pkg/core"
)

// Serializer defines how a note collection is encoded on disk.
type Serializer interface {
	// Parse decodes a whole collection. Empty input is an empty collection.
	Parse(data []byte) ([]core.Note, error)
	// Serialize encodes a whole collection.
	Serialize(notes []core.Note) ([]byte, error)
	// Format names the encoding (e.g. "json").
	Format() string
}

// DefaultSerializers returns the standard set of serializers keyed by file extension.
func DefaultSerializers() map[string]Serializer {
	return map[string]Serializer{
		".json": NewJSONSerializer(),
		".yaml": NewYAMLSerializer(),
		".yml":  NewYAMLSerializer(),
	}
}

// --- JSON Serializer ---

// JSONSerializer writes an indented JSON array and keeps non-ASCII text literal.
type JSONSerializer struct {
	Indent string
}

// NewJSONSerializer creates a JSON serializer indenting with four spaces.
func NewJSONSerializer() *JSONSerializer {
	return &JSONSerializer{Indent: "    "}
}

func (s *JSONSerializer) Format() string { return "json" }

func (s *JSONSerializer) Parse(data []byte) ([]core.Note, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return []core.Note{}, nil
	}

	var notes []core.Note
	if err := json.Unmarshal(data, &notes); err != nil {
		return nil, fmt.Errorf("%w: invalid json: %w", core.ErrCorruptState, err)
	}
	if notes == nil {
		notes = []core.Note{}
	}
	return notes, nil
}

func (s *JSONSerializer) Serialize(notes []core.Note) ([]byte, error) {
	if notes == nil {
		notes = []core.Note{}
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", s.Indent)
	if err := enc.Encode(notes); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// --- YAML Serializer ---

// YAMLSerializer writes the collection as a YAML sequence.
type YAMLSerializer struct{}

func NewYAMLSerializer() *YAMLSerializer {
	return &YAMLSerializer{}
}

func (s *YAMLSerializer) Format() string { return "yaml" }

func (s *YAMLSerializer) Parse(data []byte) ([]core.Note, error) {
	var notes []core.Note
	if err := yaml.Unmarshal(data, &notes); err != nil {
		return nil, fmt.Errorf("%w: invalid yaml: %w", core.ErrCorruptState, err)
	}
	if notes == nil {
		notes = []core.Note{}
	}
	return notes, nil
}

func (s *YAMLSerializer) Serialize(notes []core.Note) ([]byte, error) {
	if notes == nil {
		notes = []core.Note{}
	}

	var buf bytes.Buffer
	encoder := yaml.NewEncoder(&buf)
	encoder.SetIndent(2)
	if err := encoder.Encode(notes); err != nil {
		return nil, err
	}
	if err := encoder.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
