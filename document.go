package kaiwa

// Document declares one table/collection's logical shape. Fields keep
// declaration order, which carries through to the derived schema.
type Document struct {
	// Name is the declared type name of the document. It becomes the
	// table's alias and, absent any explicit name, its external name.
	Name string

	// Collection is the explicit collection name for document stores.
	// Takes precedence over Table and Name when resolving the external
	// name.
	Collection string

	// Table is the explicit table name for relational stores. Takes
	// precedence over Name.
	Table string

	// Description is optional free text describing the document.
	Description string

	// Fields are the declared fields, in declaration order.
	Fields []*Field
}

// Field declares one document field.
type Field struct {
	// Name is the logical field name.
	Name string

	// DBName is the storage-engine name when it differs from Name. The
	// derived schema keys the field by DBName when set, and records Name
	// as the alias.
	DBName string

	// Description is optional free text describing the field.
	Description string

	// Type is the field's type annotation. Fields with a nil Type are
	// skipped during derivation.
	Type *Type
}

// Key returns the resolved property key for the field: DBName when set,
// else the declared name.
func (f *Field) Key() string {
	if f.DBName != "" {
		return f.DBName
	}

	return f.Name
}

// ExternalName resolves the document's external identifier with the
// precedence: explicit collection name, else explicit table name, else the
// declared type name.
func (d *Document) ExternalName() string {
	switch {
	case d.Collection != "":
		return d.Collection
	case d.Table != "":
		return d.Table
	default:
		return d.Name
	}
}
