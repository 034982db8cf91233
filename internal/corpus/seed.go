package corpus

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"

	"aegis-srv/internal/model"

	"gopkg.in/yaml.v3"
)

//go:embed seed.yaml
var seedYAML []byte

// Document is the on-disk layout of a corpus file.
type Document struct {
	Entities []model.Entity `yaml:"entities" json:"entities"`
}

// Seed returns a fresh copy of the built-in corpus.
func Seed() ([]model.Entity, error) {
	entities, err := ParseYAML(seedYAML)
	if err != nil {
		return nil, fmt.Errorf("corpus: seed: %w", err)
	}
	return entities, nil
}

// ParseYAML decodes and validates a corpus document.
func ParseYAML(data []byte) ([]model.Entity, error) {
	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidDocument, err)
	}
	if err := Validate(doc.Entities); err != nil {
		return nil, err
	}
	return doc.Entities, nil
}

// MarshalYAML encodes entities in the same layout ParseYAML reads.
func MarshalYAML(entities []model.Entity) ([]byte, error) {
	return yaml.Marshal(Document{Entities: entities})
}

// ParseJSON accepts either a {"entities": [...]} document or a bare entity array.
func ParseJSON(data []byte) ([]model.Entity, error) {
	var entities []model.Entity
	if trimmed := bytes.TrimSpace(data); len(trimmed) > 0 && trimmed[0] == '[' {
		if err := json.Unmarshal(trimmed, &entities); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidDocument, err)
		}
	} else {
		var doc Document
		if err := json.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidDocument, err)
		}
		entities = doc.Entities
	}
	if err := Validate(entities); err != nil {
		return nil, err
	}
	return entities, nil
}

// Parse decodes data in the named format: "json" or "yaml".
func Parse(format string, data []byte) ([]model.Entity, error) {
	switch format {
	case FormatJSON:
		return ParseJSON(data)
	case FormatYAML, "yml":
		return ParseYAML(data)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
}

// MarshalJSON encodes entities in the document layout ParseJSON reads.
func MarshalJSON(entities []model.Entity) ([]byte, error) {
	return json.MarshalIndent(Document{Entities: entities}, "", "  ")
}
