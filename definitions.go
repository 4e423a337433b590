package kaiwa

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Definitions is the parsed content of a schema definitions file: the
// declared documents in declaration order, plus any named enums they
// reference.
type Definitions struct {
	Documents []*Document
	Enums     []*EnumType

	byName map[string]*Type
}

// yamlDefinitions is the YAML representation of Definitions.
type yamlDefinitions struct {
	Documents []*yamlDocument `yaml:"documents"`
	Enums     []*yamlEnum     `yaml:"enums"`
}

// yamlDocument is the YAML representation of a document declaration.
type yamlDocument struct {
	Name        string       `yaml:"name"`
	Collection  string       `yaml:"collection,omitempty"`
	Table       string       `yaml:"table,omitempty"`
	Description string       `yaml:"description,omitempty"`
	Fields      []*yamlField `yaml:"fields"`
}

// yamlField is the YAML representation of a field declaration. An absent
// type leaves the field unannotated; derivation skips it.
type yamlField struct {
	Name        string `yaml:"name"`
	DBName      string `yaml:"db_name,omitempty"`
	Description string `yaml:"description,omitempty"`
	Type        string `yaml:"type,omitempty"`
}

// yamlEnum is the YAML representation of an enum declaration.
type yamlEnum struct {
	Name    string            `yaml:"name"`
	Members []*yamlEnumMember `yaml:"members"`
}

// yamlEnumMember is one enum member. An absent value defaults to the
// member's name.
type yamlEnumMember struct {
	Name  string `yaml:"name"`
	Value string `yaml:"value,omitempty"`
}

// LoadDefinitions loads a schema definitions file from path.
func LoadDefinitions(path string) (*Definitions, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("kaiwa: reading definitions file: %w", err)
	}

	return ParseDefinitions(data)
}

// ParseDefinitions parses YAML schema definitions. Documents and enums
// share one type namespace; field annotations may reference any of them,
// including documents declared later in the file.
func ParseDefinitions(data []byte) (*Definitions, error) {
	var yd yamlDefinitions
	if err := yaml.Unmarshal(data, &yd); err != nil {
		return nil, fmt.Errorf("kaiwa: parsing definitions: %w", err)
	}

	defs := &Definitions{byName: make(map[string]*Type)}

	// First pass: declare every named type so annotations can reference
	// them regardless of declaration order.
	for _, ye := range yd.Enums {
		if ye.Name == "" {
			return nil, fmt.Errorf("%w: enum without a name", ErrInvalidDefinition)
		}

		enum := &EnumType{Name: ye.Name}

		for _, m := range ye.Members {
			if m.Name == "" {
				return nil, fmt.Errorf("%w: enum %s has a member without a name", ErrInvalidDefinition, ye.Name)
			}

			value := m.Value
			if value == "" {
				value = m.Name
			}

			enum.Members = append(enum.Members, EnumMember{Name: m.Name, Value: value})
		}

		if err := defs.declare(ye.Name, EnumOf(enum)); err != nil {
			return nil, err
		}

		defs.Enums = append(defs.Enums, enum)
	}

	for _, ydoc := range yd.Documents {
		if ydoc.Name == "" {
			return nil, fmt.Errorf("%w: document without a name", ErrInvalidDefinition)
		}

		doc := &Document{
			Name:        ydoc.Name,
			Collection:  ydoc.Collection,
			Table:       ydoc.Table,
			Description: ydoc.Description,
		}

		if err := defs.declare(ydoc.Name, ObjectOf(doc)); err != nil {
			return nil, err
		}

		defs.Documents = append(defs.Documents, doc)
	}

	// Second pass: resolve field annotations against the full namespace.
	for i, ydoc := range yd.Documents {
		doc := defs.Documents[i]

		for _, yf := range ydoc.Fields {
			if yf.Name == "" {
				return nil, fmt.Errorf("%w: document %s has a field without a name", ErrInvalidDefinition, doc.Name)
			}

			field := &Field{
				Name:        yf.Name,
				DBName:      yf.DBName,
				Description: yf.Description,
			}

			if yf.Type != "" {
				t, err := ParseTypeString(yf.Type, defs)
				if err != nil {
					return nil, fmt.Errorf("document %s, field %s: %w", doc.Name, yf.Name, err)
				}

				field.Type = t
			}

			doc.Fields = append(doc.Fields, field)
		}
	}

	return defs, nil
}

// ResolveType implements TypeResolver over the declared documents and
// enums.
func (d *Definitions) ResolveType(name string) (*Type, bool) {
	t, ok := d.byName[name]

	return t, ok
}

func (d *Definitions) declare(name string, t *Type) error {
	if _, exists := d.byName[name]; exists {
		return fmt.Errorf("%w: %s", ErrDuplicateTypeName, name)
	}

	d.byName[name] = t

	return nil
}
