package kaiwa

import "fmt"

// primitives is the catalog mapping scalar descriptor kinds to wire
// primitive kinds.
var primitives = map[ScalarKind]PrimitiveType{
	ScalarBool:     PrimitiveBool,
	ScalarInt:      PrimitiveInteger,
	ScalarFloat:    PrimitiveFloat,
	ScalarString:   PrimitiveString,
	ScalarDate:     PrimitiveDate,
	ScalarTime:     PrimitiveTime,
	ScalarDateTime: PrimitiveDateTime,
	ScalarObjectID: PrimitiveOID,
	ScalarUUID:     PrimitiveUUID,
}

// MapDocuments derives one Table per document, preserving input order. Any
// structural error in any document aborts the whole batch.
func MapDocuments(documents []*Document) ([]*Table, error) {
	tables := make([]*Table, 0, len(documents))

	for _, doc := range documents {
		obj, err := mapDocument(doc, FieldMeta{}, make(map[*Document]bool))
		if err != nil {
			return nil, fmt.Errorf("document %s: %w", doc.Name, err)
		}

		tables = append(tables, &Table{
			Name:   doc.ExternalName(),
			Alias:  doc.Name,
			Fields: obj.Properties,
		})
	}

	return tables, nil
}

// DeriveType derives the schema node for a standalone type descriptor.
func DeriveType(t *Type) (SchemaNode, error) {
	return mapType(t, FieldMeta{}, make(map[*Document]bool))
}

// mapType dispatches on the descriptor's shape, in priority order: union,
// list, scalar, enum, object. Anything else is fatal. meta carries the
// enclosing field's alias and description plus the optional flag absorbed
// from enclosing nullable unions.
func mapType(t *Type, meta FieldMeta, visiting map[*Document]bool) (SchemaNode, error) {
	if t == nil {
		return nil, fmt.Errorf("%w: <nil>", ErrUnsupportedType)
	}

	switch t.Kind {
	case TypeKindUnion:
		members, sawNull := normalizeUnion(t.Members)
		if sawNull {
			meta.Optional = true
		}

		if len(members) == 0 {
			return nil, fmt.Errorf("%w: %s", ErrEmptyUnion, t)
		}

		// Semantically just "optional T": no union wrapper.
		if len(members) == 1 {
			return mapType(members[0], meta, visiting)
		}

		types := make([]SchemaNode, len(members))

		for i, m := range members {
			// Alias, description and optional belong to the union
			// node, not its members.
			child, err := mapType(m, FieldMeta{}, visiting)
			if err != nil {
				return nil, err
			}

			types[i] = child
		}

		return &UnionField{FieldMeta: meta, Types: types}, nil

	case TypeKindList:
		if len(t.Elems) != 1 {
			return nil, fmt.Errorf("%w: got %d in %s", ErrListArity, len(t.Elems), t)
		}

		item, err := mapType(t.Elems[0], FieldMeta{}, visiting)
		if err != nil {
			return nil, err
		}

		return &ArrayField{FieldMeta: meta, Item: item}, nil

	case TypeKindScalar:
		if pt, ok := primitives[t.Scalar]; ok {
			return &PrimitiveField{FieldMeta: meta, Type: pt}, nil
		}

		return nil, fmt.Errorf("%w: %s", ErrUnsupportedType, t)

	case TypeKindEnum:
		if t.Enum == nil {
			return nil, fmt.Errorf("%w: enum without definition", ErrUnsupportedType)
		}

		variants := make([]Variant, len(t.Enum.Members))

		for i, m := range t.Enum.Members {
			v := Variant{Value: m.Value}
			if m.Name != m.Value {
				v.Alias = m.Name
			}

			variants[i] = v
		}

		return &EnumField{FieldMeta: meta, Name: t.Enum.Name, Variants: variants}, nil

	case TypeKindObject:
		if t.Object == nil {
			return nil, fmt.Errorf("%w: object without definition", ErrUnsupportedType)
		}

		return mapDocument(t.Object, meta, visiting)

	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedType, t)
	}
}

// mapDocument derives the object node for a document's fields, in
// declaration order. Fields without a type annotation are skipped; a
// partial schema beats failing the batch for them. visiting tracks the
// recursion path so self-referencing documents fail instead of recursing
// forever.
func mapDocument(doc *Document, meta FieldMeta, visiting map[*Document]bool) (*ObjectField, error) {
	if visiting[doc] {
		return nil, fmt.Errorf("%w: %s", ErrCyclicDocument, doc.Name)
	}

	visiting[doc] = true
	defer delete(visiting, doc)

	props := NewProperties()

	for _, f := range doc.Fields {
		if f.Type == nil {
			continue
		}

		node, err := mapType(f.Type, FieldMeta{Alias: f.Name, Description: f.Description}, visiting)
		if err != nil {
			return nil, fmt.Errorf("field %s: %w", f.Name, err)
		}

		props.Set(f.Key(), node)
	}

	return &ObjectField{FieldMeta: meta, Properties: props}, nil
}

// normalizeUnion flattens nested unions, removes null-admitting members and
// deduplicates the rest structurally, preserving first-occurrence order.
// sawNull reports whether any null member was removed.
func normalizeUnion(members []*Type) (distinct []*Type, sawNull bool) {
	seen := make(map[string]bool)

	var walk func(ms []*Type)

	walk = func(ms []*Type) {
		for _, m := range ms {
			switch {
			case m == nil:
				if !seen["<nil>"] {
					seen["<nil>"] = true
					distinct = append(distinct, m)
				}
			case m.IsNull():
				sawNull = true
			case m.Kind == TypeKindUnion:
				walk(m.Members)
			default:
				if key := m.String(); !seen[key] {
					seen[key] = true
					distinct = append(distinct, m)
				}
			}
		}
	}

	walk(members)

	return distinct, sawNull
}
