package kaiwa

import (
	"errors"
	"fmt"
)

// Derivation and definition errors.
var (
	// ErrUnsupportedType is returned when a descriptor matches none of the
	// recognized type shapes. It aborts the whole batch.
	ErrUnsupportedType = errors.New("kaiwa: unsupported type")

	// ErrListArity is returned for a list declared with zero or multiple
	// element types. It is a variant of ErrUnsupportedType.
	ErrListArity = fmt.Errorf("%w: list must declare exactly one element type", ErrUnsupportedType)

	// ErrEmptyUnion is returned for a union with no non-null members left
	// after normalization. It is a variant of ErrUnsupportedType.
	ErrEmptyUnion = fmt.Errorf("%w: union has no non-null members", ErrUnsupportedType)

	// ErrCyclicDocument is returned when a document references itself,
	// directly or through a chain of nested object types.
	ErrCyclicDocument = errors.New("kaiwa: cyclic document reference")

	// ErrEmptyTypeString is returned when parsing an empty type annotation.
	ErrEmptyTypeString = errors.New("kaiwa: empty type annotation")

	// ErrUnknownTypeName is returned when a type annotation names a type
	// that is neither a scalar nor a declared enum or document.
	ErrUnknownTypeName = errors.New("kaiwa: unknown type name")

	// ErrDuplicateTypeName is returned when a definitions file declares
	// the same type name twice.
	ErrDuplicateTypeName = errors.New("kaiwa: duplicate type name")

	// ErrInvalidDefinition is returned for structurally invalid
	// definition files, such as unnamed documents or enum members.
	ErrInvalidDefinition = errors.New("kaiwa: invalid definition")
)
