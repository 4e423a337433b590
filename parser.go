package kaiwa

import (
	"fmt"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

// annotationLexer tokenizes textual type annotations.
var annotationLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Whitespace", Pattern: `[ \t\r\n]+`},
	{Name: "Brackets", Pattern: `\[\]`},
	{Name: "Ident", Pattern: `[A-Za-z_][A-Za-z0-9_]*`},
	{Name: "Pipe", Pattern: `\|`},
	{Name: "Question", Pattern: `\?`},
	{Name: "LParen", Pattern: `\(`},
	{Name: "RParen", Pattern: `\)`},
})

// annotationParser parses annotations like "int", "[]string",
// "string | int | null", "Address?" or "[](User | null)".
var annotationParser = participle.MustBuild[typeExpr](
	participle.Lexer(annotationLexer),
	participle.Elide("Whitespace"),
)

// typeExpr is a union of one or more terms separated by "|".
type typeExpr struct {
	First *typeTerm   `parser:"@@"`
	Rest  []*typeTerm `parser:"( Pipe @@ )*"`
}

// typeTerm is a single alternative: a list, a parenthesized expression or a
// named type, optionally suffixed with "?" as sugar for "| null".
type typeTerm struct {
	Elem     *typeTerm `parser:"( Brackets @@"`
	Group    *typeExpr `parser:"| LParen @@ RParen"`
	Name     string    `parser:"| @Ident )"`
	Optional bool      `parser:"@Question?"`
}

// scalarNames maps annotation identifiers (including common synonyms) to
// scalar descriptors. Lookup is case-insensitive.
var scalarNames = map[string]*Type{
	"bool":      TypeBool,
	"boolean":   TypeBool,
	"int":       TypeInt,
	"integer":   TypeInt,
	"float":     TypeFloat,
	"double":    TypeFloat,
	"str":       TypeString,
	"string":    TypeString,
	"date":      TypeDate,
	"time":      TypeTime,
	"datetime":  TypeDateTime,
	"timestamp": TypeDateTime,
	"objectid":  TypeObjectID,
	"oid":       TypeObjectID,
	"uuid":      TypeUUID,
	"null":      TypeNull,
	"none":      TypeNull,
}

// TypeResolver resolves named type references in annotations that are not
// scalars, typically enums and documents declared alongside the annotation.
type TypeResolver interface {
	// ResolveType returns the descriptor declared under name.
	ResolveType(name string) (*Type, bool)
}

// TypeResolverFunc adapts a function to the TypeResolver interface.
type TypeResolverFunc func(name string) (*Type, bool)

// ResolveType calls f.
func (f TypeResolverFunc) ResolveType(name string) (*Type, bool) {
	return f(name)
}

// ParseTypeString parses a type annotation into a descriptor. Named
// references are resolved through resolver; a nil resolver supports scalar
// annotations only.
//
// Examples:
//
//	"string"            -> string scalar
//	"[]int"             -> list of int
//	"string | null"     -> nullable string
//	"int | str | date"  -> union of three scalars
//	"Address?"          -> nullable reference to Address
func ParseTypeString(s string, resolver TypeResolver) (*Type, error) {
	if strings.TrimSpace(s) == "" {
		return nil, ErrEmptyTypeString
	}

	expr, err := annotationParser.ParseString("", s)
	if err != nil {
		return nil, fmt.Errorf("kaiwa: parsing type annotation %q: %w", s, err)
	}

	return resolveExpr(expr, resolver)
}

func resolveExpr(expr *typeExpr, resolver TypeResolver) (*Type, error) {
	terms := append([]*typeTerm{expr.First}, expr.Rest...)

	members := make([]*Type, len(terms))

	for i, term := range terms {
		t, err := resolveTerm(term, resolver)
		if err != nil {
			return nil, err
		}

		members[i] = t
	}

	if len(members) == 1 {
		return members[0], nil
	}

	return UnionOf(members...), nil
}

func resolveTerm(term *typeTerm, resolver TypeResolver) (*Type, error) {
	var (
		t   *Type
		err error
	)

	switch {
	case term.Elem != nil:
		var elem *Type

		elem, err = resolveTerm(term.Elem, resolver)
		if err == nil {
			t = ListOf(elem)
		}
	case term.Group != nil:
		t, err = resolveExpr(term.Group, resolver)
	default:
		t, err = resolveName(term.Name, resolver)
	}

	if err != nil {
		return nil, err
	}

	if term.Optional {
		t = Optional(t)
	}

	return t, nil
}

func resolveName(name string, resolver TypeResolver) (*Type, error) {
	if t, ok := scalarNames[strings.ToLower(name)]; ok {
		return t, nil
	}

	if resolver != nil {
		if t, ok := resolver.ResolveType(name); ok {
			return t, nil
		}
	}

	return nil, fmt.Errorf("%w: %s", ErrUnknownTypeName, name)
}
