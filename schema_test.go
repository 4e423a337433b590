package kaiwa_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	kaiwa "github.com/kaiwadb/kaiwa-go"
)

func TestSchemaNodeWireFormat(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		node     kaiwa.SchemaNode
		expected string
	}{
		{
			name: "primitive with full metadata",
			node: &kaiwa.PrimitiveField{
				FieldMeta: kaiwa.FieldMeta{Alias: "a", Description: "d", Optional: true},
				Type:      kaiwa.PrimitiveInteger,
			},
			expected: `{"type":"integer","alias":"a","description":"d","optional":true}`,
		},
		{
			name:     "primitive without metadata",
			node:     &kaiwa.PrimitiveField{Type: kaiwa.PrimitiveUUID},
			expected: `{"type":"uuid","alias":null,"description":null,"optional":false}`,
		},
		{
			name: "array",
			node: &kaiwa.ArrayField{
				Item: &kaiwa.PrimitiveField{Type: kaiwa.PrimitiveString},
			},
			expected: `{"type":"array","alias":null,"description":null,"optional":false,
				"item":{"type":"string","alias":null,"description":null,"optional":false}}`,
		},
		{
			name: "union",
			node: &kaiwa.UnionField{
				FieldMeta: kaiwa.FieldMeta{Optional: true},
				Types: []kaiwa.SchemaNode{
					&kaiwa.PrimitiveField{Type: kaiwa.PrimitiveInteger},
					&kaiwa.PrimitiveField{Type: kaiwa.PrimitiveString},
				},
			},
			expected: `{"type":"union","alias":null,"description":null,"optional":true,
				"types":[
					{"type":"integer","alias":null,"description":null,"optional":false},
					{"type":"string","alias":null,"description":null,"optional":false}
				]}`,
		},
		{
			name: "enum",
			node: &kaiwa.EnumField{
				Name: "Color",
				Variants: []kaiwa.Variant{
					{Value: "r", Alias: "RED"},
					{Value: "g"},
				},
			},
			expected: `{"type":"enum","alias":null,"description":null,"optional":false,
				"name":"Color",
				"variants":[{"value":"r","alias":"RED"},{"value":"g","alias":null}]}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			data, err := json.Marshal(tt.node)
			require.NoError(t, err)
			assert.JSONEq(t, tt.expected, string(data))
		})
	}
}

func TestNodeTypeTags(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "integer", (&kaiwa.PrimitiveField{Type: kaiwa.PrimitiveInteger}).NodeType())
	assert.Equal(t, "array", (&kaiwa.ArrayField{}).NodeType())
	assert.Equal(t, "union", (&kaiwa.UnionField{}).NodeType())
	assert.Equal(t, "enum", (&kaiwa.EnumField{}).NodeType())
	assert.Equal(t, "object", (&kaiwa.ObjectField{}).NodeType())
}

func TestPropertiesPreserveInsertionOrder(t *testing.T) {
	t.Parallel()

	props := kaiwa.NewProperties()
	props.Set("b", &kaiwa.PrimitiveField{Type: kaiwa.PrimitiveBool})
	props.Set("a", &kaiwa.PrimitiveField{Type: kaiwa.PrimitiveInteger})
	props.Set("c", &kaiwa.PrimitiveField{Type: kaiwa.PrimitiveString})

	assert.Equal(t, []string{"b", "a", "c"}, props.Keys())
	assert.Equal(t, 3, props.Len())

	// Serialization keeps insertion order, not lexical order.
	data, err := json.Marshal(props)
	require.NoError(t, err)
	assert.Equal(t,
		`{"b":{"type":"bool","alias":null,"description":null,"optional":false},`+
			`"a":{"type":"integer","alias":null,"description":null,"optional":false},`+
			`"c":{"type":"string","alias":null,"description":null,"optional":false}}`,
		string(data))
}

func TestPropertiesReplaceKeepsPosition(t *testing.T) {
	t.Parallel()

	props := kaiwa.NewProperties()
	props.Set("a", &kaiwa.PrimitiveField{Type: kaiwa.PrimitiveInteger})
	props.Set("b", &kaiwa.PrimitiveField{Type: kaiwa.PrimitiveBool})
	props.Set("a", &kaiwa.PrimitiveField{Type: kaiwa.PrimitiveString})

	assert.Equal(t, []string{"a", "b"}, props.Keys())

	node, ok := props.Get("a")
	require.True(t, ok)
	assert.Equal(t, kaiwa.PrimitiveString, node.(*kaiwa.PrimitiveField).Type)
}

func TestInstanceWireFormat(t *testing.T) {
	t.Parallel()

	fields := kaiwa.NewProperties()
	fields.Set("id", &kaiwa.PrimitiveField{
		FieldMeta: kaiwa.FieldMeta{Alias: "id"},
		Type:      kaiwa.PrimitiveInteger,
	})

	instance := &kaiwa.Instance{
		Name:   "ecommerce",
		Engine: kaiwa.PostgreSQL{Version: 16},
		Tables: []*kaiwa.Table{
			{Name: "products", Alias: "Product", Fields: fields},
		},
	}

	data, err := json.Marshal(instance)
	require.NoError(t, err)

	assert.JSONEq(t, `{
	  "name": "ecommerce",
	  "description": null,
	  "engine": {"type": "postgres", "version": 16},
	  "tables": [
	    {
	      "name": "products",
	      "alias": "Product",
	      "fields": {
	        "id": {"type": "integer", "alias": "id", "description": null, "optional": false}
	      }
	    }
	  ]
	}`, string(data))
}
