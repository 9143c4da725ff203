package schema

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/uzzu/kotlin-dsl/internal/errors"
)

// Document is the on-disk form of a ProjectSchema.
type Document struct {
	Extensions        []SpecEntry `yaml:"extensions" toml:"extensions"`
	Conventions       []SpecEntry `yaml:"conventions" toml:"conventions"`
	Tasks             []SpecEntry `yaml:"tasks" toml:"tasks"`
	ContainerElements []SpecEntry `yaml:"container_elements" toml:"container_elements"`
	Configurations    []string    `yaml:"configurations" toml:"configurations"`
}

// SpecEntry is one typed accessor in a Document.
type SpecEntry struct {
	Receiver     string `yaml:"receiver" toml:"receiver"`
	Name         string `yaml:"name" toml:"name"`
	Type         string `yaml:"type" toml:"type"`
	Inaccessible bool   `yaml:"inaccessible,omitempty" toml:"inaccessible,omitempty"`
}

// LoadFile loads a schema document, choosing the format by file extension.
// Files ending in .toml are TOML; everything else is parsed as YAML.
func LoadFile(path string) (*ProjectSchema, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read schema file %s", path)
	}

	if strings.EqualFold(filepath.Ext(path), ".toml") {
		return ParseTOML(data)
	}

	return Parse(data)
}

// Parse parses YAML data into a ProjectSchema.
func Parse(data []byte) (*ProjectSchema, error) {
	var doc Document

	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, errors.Wrap(err, "failed to parse schema YAML")
	}

	return doc.Build()
}

// ParseTOML parses TOML data into a ProjectSchema.
func ParseTOML(data []byte) (*ProjectSchema, error) {
	var doc Document

	if _, err := toml.Decode(string(data), &doc); err != nil {
		return nil, errors.Wrap(err, "failed to parse schema TOML")
	}

	return doc.Build()
}

// Marshal serializes a ProjectSchema to YAML.
func Marshal(p *ProjectSchema) ([]byte, error) {
	return yaml.Marshal(DocumentOf(p))
}

// DocumentOf converts a schema back to its document form.
func DocumentOf(p *ProjectSchema) *Document {
	doc := &Document{
		Extensions:        entriesOf(p.Extensions),
		Conventions:       entriesOf(p.Conventions),
		Tasks:             entriesOf(p.Tasks),
		ContainerElements: entriesOf(p.ContainerElements),
	}

	for _, c := range p.Configurations {
		doc.Configurations = append(doc.Configurations, c.Original)
	}

	return doc
}

// Build validates the document and converts it into a ProjectSchema.
func (d *Document) Build() (*ProjectSchema, error) {
	var (
		p   ProjectSchema
		err error
	)

	if p.Extensions, err = specsOf("extensions", d.Extensions); err != nil {
		return nil, err
	}

	if p.Conventions, err = specsOf("conventions", d.Conventions); err != nil {
		return nil, err
	}

	if p.Tasks, err = specsOf("tasks", d.Tasks); err != nil {
		return nil, err
	}

	if p.ContainerElements, err = specsOf("container_elements", d.ContainerElements); err != nil {
		return nil, err
	}

	for _, c := range d.Configurations {
		p.Configurations = append(p.Configurations, NameSpec(c))
	}

	return &p, nil
}

func specsOf(section string, entries []SpecEntry) ([]TypedAccessorSpec, error) {
	specs := make([]TypedAccessorSpec, 0, len(entries))

	for i, e := range entries {
		receiver, err := ParseType(e.Receiver)
		if err != nil {
			return nil, errors.Wrapf(err, "%s[%d].receiver", section, i)
		}

		returnType, err := ParseType(e.Type)
		if err != nil {
			return nil, errors.Wrapf(err, "%s[%d].type", section, i)
		}

		accessible := Accessible(returnType)
		if e.Inaccessible {
			accessible = Inaccessible(returnType)
		}

		specs = append(specs, TypedAccessorSpec{
			Receiver:   receiver,
			Name:       NameSpec(e.Name),
			ReturnType: accessible,
		})
	}

	return specs, nil
}

func entriesOf(specs []TypedAccessorSpec) []SpecEntry {
	var entries []SpecEntry

	for _, s := range specs {
		entries = append(entries, SpecEntry{
			Receiver:     s.Receiver.String(),
			Name:         s.Name.Original,
			Type:         s.ReturnType.Original().String(),
			Inaccessible: !s.ReturnType.IsAccessible(),
		})
	}

	return entries
}
