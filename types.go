// Package kaiwa derives serializable schema tables from explicit document
// type descriptors. The derived tables are the contract handed to a remote
// query-generation service that never sees the original definitions.
package kaiwa

import "strings"

// TypeKind represents the kind of a type descriptor.
type TypeKind string

// Type kind constants.
const (
	TypeKindScalar TypeKind = "scalar" // bool, int, float, string, date, time, datetime, oid, uuid
	TypeKindNull   TypeKind = "null"   // the absence marker inside unions
	TypeKindList   TypeKind = "list"   // homogeneous ordered sequence
	TypeKindUnion  TypeKind = "union"  // ordered set of alternative types
	TypeKindEnum   TypeKind = "enum"   // closed set of literal values
	TypeKindObject TypeKind = "object" // nested document type
)

// ScalarKind identifies one of the supported scalar types.
type ScalarKind string

// Scalar kind constants.
const (
	ScalarBool     ScalarKind = "bool"
	ScalarInt      ScalarKind = "int"
	ScalarFloat    ScalarKind = "float"
	ScalarString   ScalarKind = "string"
	ScalarDate     ScalarKind = "date"
	ScalarTime     ScalarKind = "time"
	ScalarDateTime ScalarKind = "datetime"
	ScalarObjectID ScalarKind = "objectid"
	ScalarUUID     ScalarKind = "uuid"
)

// Type is a closed descriptor for a field's type annotation.
// This is a recursive structure that can represent shapes like
// []User or string | int | null. Descriptors are constructed explicitly
// by the schema-definition layer; there is no runtime reflection.
type Type struct {
	// Kind is the category of this descriptor.
	Kind TypeKind

	// Scalar is the scalar kind for TypeKindScalar.
	Scalar ScalarKind

	// Elems are the declared element types for TypeKindList. A list with
	// anything other than exactly one element type is rejected during
	// derivation.
	Elems []*Type

	// Members are the alternative types for TypeKindUnion, in declaration
	// order.
	Members []*Type

	// Enum is the enumeration definition for TypeKindEnum.
	Enum *EnumType

	// Object is the nested document definition for TypeKindObject.
	Object *Document
}

// IsNull reports whether this descriptor is the absence marker.
func (t *Type) IsNull() bool {
	return t != nil && t.Kind == TypeKindNull
}

// String returns a canonical rendering of the descriptor. It is stable for
// structurally equal descriptors and is used both for error messages and for
// deduplicating union members.
func (t *Type) String() string {
	if t == nil {
		return "<nil>"
	}

	switch t.Kind {
	case TypeKindScalar:
		return string(t.Scalar)
	case TypeKindNull:
		return "null"
	case TypeKindList:
		if len(t.Elems) == 1 {
			return "[]" + t.Elems[0].String()
		}

		parts := make([]string, len(t.Elems))
		for i, e := range t.Elems {
			parts[i] = e.String()
		}

		return "[](" + strings.Join(parts, ", ") + ")"
	case TypeKindUnion:
		parts := make([]string, len(t.Members))
		for i, m := range t.Members {
			parts[i] = m.String()
		}

		return strings.Join(parts, " | ")
	case TypeKindEnum:
		if t.Enum != nil {
			return "enum " + t.Enum.Name
		}

		return "enum"
	case TypeKindObject:
		if t.Object != nil {
			return "object " + t.Object.Name
		}

		return "object"
	default:
		return string(t.Kind)
	}
}

// EnumType declares a named enumeration. Members keep declaration order.
type EnumType struct {
	Name    string
	Members []EnumMember
}

// EnumMember is one declared enumeration member: a symbolic name plus its
// literal value.
type EnumMember struct {
	Name  string
	Value string
}

// Scalar type singletons for convenience.
var (
	TypeBool     = &Type{Kind: TypeKindScalar, Scalar: ScalarBool}
	TypeInt      = &Type{Kind: TypeKindScalar, Scalar: ScalarInt}
	TypeFloat    = &Type{Kind: TypeKindScalar, Scalar: ScalarFloat}
	TypeString   = &Type{Kind: TypeKindScalar, Scalar: ScalarString}
	TypeDate     = &Type{Kind: TypeKindScalar, Scalar: ScalarDate}
	TypeTime     = &Type{Kind: TypeKindScalar, Scalar: ScalarTime}
	TypeDateTime = &Type{Kind: TypeKindScalar, Scalar: ScalarDateTime}
	TypeObjectID = &Type{Kind: TypeKindScalar, Scalar: ScalarObjectID}
	TypeUUID     = &Type{Kind: TypeKindScalar, Scalar: ScalarUUID}
	TypeNull     = &Type{Kind: TypeKindNull}
)

// ListOf creates a list descriptor with a single element type.
func ListOf(elem *Type) *Type {
	return &Type{Kind: TypeKindList, Elems: []*Type{elem}}
}

// UnionOf creates a union descriptor over the given member types.
func UnionOf(members ...*Type) *Type {
	return &Type{Kind: TypeKindUnion, Members: members}
}

// Optional creates a union of t and null, i.e. a nullable t.
func Optional(t *Type) *Type {
	return UnionOf(t, TypeNull)
}

// EnumOf creates an enum descriptor for the given enumeration.
func EnumOf(e *EnumType) *Type {
	return &Type{Kind: TypeKindEnum, Enum: e}
}

// ObjectOf creates a nested-object descriptor for the given document.
func ObjectOf(doc *Document) *Type {
	return &Type{Kind: TypeKindObject, Object: doc}
}
