package kaiwa

import (
	"bytes"
	"context"
	"encoding/json"
)

// PrimitiveType is the closed wire enumeration of primitive kinds. The tag
// values are part of the wire contract and must stay stable.
type PrimitiveType string

// Primitive type constants.
const (
	PrimitiveBool     PrimitiveType = "bool"
	PrimitiveInteger  PrimitiveType = "integer"
	PrimitiveFloat    PrimitiveType = "float"
	PrimitiveString   PrimitiveType = "string"
	PrimitiveDate     PrimitiveType = "date"
	PrimitiveTime     PrimitiveType = "time"
	PrimitiveDateTime PrimitiveType = "datetime"
	PrimitiveOID      PrimitiveType = "oid"
	PrimitiveUUID     PrimitiveType = "uuid"
)

// SchemaNode is the derived, serializable representation of one type's
// shape. Concrete variants are PrimitiveField, ArrayField, UnionField,
// EnumField and ObjectField. Every variant serializes with a "type"
// discriminator tag plus alias, description and optional metadata.
type SchemaNode interface {
	json.Marshaler

	// NodeType returns the wire discriminator tag: the primitive kind for
	// primitives, else "array", "union", "enum" or "object".
	NodeType() string

	// Meta returns the metadata shared by every variant.
	Meta() FieldMeta
}

// FieldMeta carries the metadata shared by every schema node variant.
// Optional is derived from the source type, never set independently.
type FieldMeta struct {
	Alias       string
	Description string
	Optional    bool
}

// Meta returns the metadata itself; embedding FieldMeta gives every node
// variant this accessor.
func (m FieldMeta) Meta() FieldMeta { return m }

// PrimitiveField is a schema node for a scalar type.
type PrimitiveField struct {
	FieldMeta

	Type PrimitiveType
}

// ArrayField is a schema node for a homogeneous sequence.
type ArrayField struct {
	FieldMeta

	Item SchemaNode
}

// UnionField is a schema node for a union of two or more alternatives.
// Single-member unions never survive derivation; they unwrap to their sole
// member.
type UnionField struct {
	FieldMeta

	Types []SchemaNode
}

// EnumField is a schema node for a named enumeration.
type EnumField struct {
	FieldMeta

	Name     string
	Variants []Variant
}

// Variant is one enumeration member: its literal value plus an alias set
// only when the symbolic member name differs from the value.
type Variant struct {
	Value string
	Alias string
}

// ObjectField is a schema node for a nested structured type. Properties
// preserve field declaration order.
type ObjectField struct {
	FieldMeta

	Properties *Properties
}

// NodeType implementations.

func (f *PrimitiveField) NodeType() string { return string(f.Type) }
func (f *ArrayField) NodeType() string     { return "array" }
func (f *UnionField) NodeType() string     { return "union" }
func (f *EnumField) NodeType() string      { return "enum" }
func (f *ObjectField) NodeType() string    { return "object" }

// nullable maps the empty string to a JSON null.
func nullable(s string) *string {
	if s == "" {
		return nil
	}

	return &s
}

// MarshalJSON serializes the node with its primitive kind as the
// discriminator tag.
func (f *PrimitiveField) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Type        PrimitiveType `json:"type"`
		Alias       *string       `json:"alias"`
		Description *string       `json:"description"`
		Optional    bool          `json:"optional"`
	}{f.Type, nullable(f.Alias), nullable(f.Description), f.Optional})
}

// MarshalJSON serializes the node with the "array" discriminator tag.
func (f *ArrayField) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Type        string     `json:"type"`
		Alias       *string    `json:"alias"`
		Description *string    `json:"description"`
		Optional    bool       `json:"optional"`
		Item        SchemaNode `json:"item"`
	}{"array", nullable(f.Alias), nullable(f.Description), f.Optional, f.Item})
}

// MarshalJSON serializes the node with the "union" discriminator tag.
func (f *UnionField) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Type        string       `json:"type"`
		Alias       *string      `json:"alias"`
		Description *string      `json:"description"`
		Optional    bool         `json:"optional"`
		Types       []SchemaNode `json:"types"`
	}{"union", nullable(f.Alias), nullable(f.Description), f.Optional, f.Types})
}

// MarshalJSON serializes the node with the "enum" discriminator tag.
func (f *EnumField) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Type        string    `json:"type"`
		Alias       *string   `json:"alias"`
		Description *string   `json:"description"`
		Optional    bool      `json:"optional"`
		Name        string    `json:"name"`
		Variants    []Variant `json:"variants"`
	}{"enum", nullable(f.Alias), nullable(f.Description), f.Optional, f.Name, f.Variants})
}

// MarshalJSON serializes the variant's value and alias (null when the
// symbolic name matches the value).
func (v Variant) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Value string  `json:"value"`
		Alias *string `json:"alias"`
	}{v.Value, nullable(v.Alias)})
}

// MarshalJSON serializes the node with the "object" discriminator tag.
func (f *ObjectField) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Type        string      `json:"type"`
		Alias       *string     `json:"alias"`
		Description *string     `json:"description"`
		Optional    bool        `json:"optional"`
		Properties  *Properties `json:"properties"`
	}{"object", nullable(f.Alias), nullable(f.Description), f.Optional, f.Properties})
}

// Properties is an insertion-ordered mapping from resolved field key to
// schema node. Keys are unique; setting an existing key replaces its node
// in place without changing its position.
type Properties struct {
	keys  []string
	nodes map[string]SchemaNode
}

// NewProperties creates an empty Properties mapping.
func NewProperties() *Properties {
	return &Properties{nodes: make(map[string]SchemaNode)}
}

// Set adds or replaces the node stored under key.
func (p *Properties) Set(key string, node SchemaNode) {
	if _, ok := p.nodes[key]; !ok {
		p.keys = append(p.keys, key)
	}

	p.nodes[key] = node
}

// Get returns the node stored under key.
func (p *Properties) Get(key string) (SchemaNode, bool) {
	node, ok := p.nodes[key]

	return node, ok
}

// Keys returns the keys in insertion order.
func (p *Properties) Keys() []string {
	return p.keys
}

// Len returns the number of properties.
func (p *Properties) Len() int {
	return len(p.keys)
}

// MarshalJSON serializes the mapping as a JSON object with keys in
// insertion order, so the wire form is deterministic.
func (p *Properties) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer

	buf.WriteByte('{')

	for i, key := range p.keys {
		if i > 0 {
			buf.WriteByte(',')
		}

		k, err := json.Marshal(key)
		if err != nil {
			return nil, err
		}

		buf.Write(k)
		buf.WriteByte(':')

		v, err := json.Marshal(p.nodes[key])
		if err != nil {
			return nil, err
		}

		buf.Write(v)
	}

	buf.WriteByte('}')

	return buf.Bytes(), nil
}

// Table is the derived schema for one document: its resolved external name,
// the document type name as alias, and the ordered field mapping.
type Table struct {
	Name   string
	Alias  string
	Fields *Properties
}

// MarshalJSON serializes the table in its wire form.
func (t *Table) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Name   string      `json:"name"`
		Alias  string      `json:"alias"`
		Fields *Properties `json:"fields"`
	}{t.Name, t.Alias, t.Fields})
}

// Instance is the full registration payload: an identified schema plus the
// engine it targets.
type Instance struct {
	Name        string
	Description string
	Engine      Engine
	Tables      []*Table
}

// MarshalJSON serializes the instance in its wire form.
func (i *Instance) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Name        string   `json:"name"`
		Description *string  `json:"description"`
		Engine      Engine   `json:"engine"`
		Tables      []*Table `json:"tables"`
	}{i.Name, nullable(i.Description), i.Engine, i.Tables})
}

// SchemaRegistrar is implemented by collaborators that transmit a derived
// instance to the remote query-generation service. This package only
// produces the payload; it never performs the registration itself.
type SchemaRegistrar interface {
	// RegisterSchema registers the instance with the remote service.
	RegisterSchema(ctx context.Context, instance *Instance) error
}
