package satchel

import (
	"github.com/alecthomas/participle/v2"
	"github.com/rotisserie/eris"
)

type exprOperator int

const (
	exprOpAnd exprOperator = iota
	exprOpOr
)

var exprOperatorMap = map[string]exprOperator{"&": exprOpAnd, "|": exprOpOr}

// Capture tells the parser how to turn an operator token into exprOperator.
func (o *exprOperator) Capture(s []string) error {
	if len(s) == 0 {
		return eris.New("invalid operator")
	}
	operator, ok := exprOperatorMap[s[0]]
	if !ok {
		return eris.New("invalid operator")
	}
	*o = operator
	return nil
}

type exprName struct {
	Name string `@Ident`
}

type exprAll struct{}

func (a *exprAll) Capture(values []string) error {
	if values[0] == "ALL" && values[1] == "(" && values[2] == ")" {
		*a = exprAll{}
	}
	return nil
}

type exprNot struct {
	SubExpression *exprValue `"!" @@`
}

type exprExact struct {
	Kinds []*exprName `"EXACT""(" (@@",")* @@ ")"`
}

type exprContains struct {
	Kinds []*exprName `"CONTAINS" "(" (@@",")* @@ ")"`
}

type exprValue struct {
	All           *exprAll      `@("ALL" "(" ")")`
	Exact         *exprExact    `| @@`
	Contains      *exprContains `| @@`
	Not           *exprNot      `| @@`
	Subexpression *exprTerm     `| "(" @@ ")"`
}

type exprFactor struct {
	Base *exprValue `@@`
}

type exprOpFactor struct {
	Operator exprOperator `@("&" | "|")`
	Factor   *exprFactor  `@@`
}

type exprTerm struct {
	Left  *exprFactor     `@@`
	Right []*exprOpFactor `@@*`
}

var filterParser = participle.MustBuild[exprTerm]()

func resolveKinds(s Schema, names []*exprName) ([]AnyKind, error) {
	kinds := make([]AnyKind, 0, len(names))
	for _, n := range names {
		k, ok := s.Lookup(n.Name)
		if !ok {
			return nil, eris.Wrap(UnknownKindError{Name: n.Name}, "failed to resolve kind")
		}
		kinds = append(kinds, k)
	}
	return kinds, nil
}

func valueToFilter(s Schema, value *exprValue) (Filter, error) {
	switch {
	case value.Not != nil:
		sub, err := valueToFilter(s, value.Not.SubExpression)
		if err != nil {
			return nil, err
		}
		return Not(sub), nil
	case value.Exact != nil:
		if len(value.Exact.Kinds) == 0 {
			return nil, eris.New("EXACT cannot have zero parameters")
		}
		kinds, err := resolveKinds(s, value.Exact.Kinds)
		if err != nil {
			return nil, err
		}
		return Exact(kinds...), nil
	case value.All != nil:
		return All(), nil
	case value.Contains != nil:
		if len(value.Contains.Kinds) == 0 {
			return nil, eris.New("CONTAINS cannot have zero parameters")
		}
		kinds, err := resolveKinds(s, value.Contains.Kinds)
		if err != nil {
			return nil, err
		}
		return All(kinds...), nil
	case value.Subexpression != nil:
		return termToFilter(s, value.Subexpression)
	default:
		return nil, eris.New("unknown value in filter expression")
	}
}

func termToFilter(s Schema, term *exprTerm) (Filter, error) {
	if term.Left == nil {
		return nil, eris.New("not enough values in expression")
	}
	acc, err := valueToFilter(s, term.Left.Base)
	if err != nil {
		return nil, err
	}
	// Operators share one precedence level and fold left.
	for _, opFactor := range term.Right {
		next, err := valueToFilter(s, opFactor.Factor.Base)
		if err != nil {
			return nil, err
		}
		switch opFactor.Operator {
		case exprOpAnd:
			acc = And(acc, next)
		case exprOpOr:
			acc = Or(acc, next)
		default:
			return nil, eris.New("invalid operator")
		}
	}
	return acc, nil
}

// ParseFilter parses a filter expression such as
//
//	CONTAINS(Position) & !CONTAINS(Frozen)
//	EXACT(Position, Speed) | ALL()
//
// resolving kind names through the schema. Malformed input and unknown
// kind names are returned as errors, never panics.
func ParseFilter(s Schema, src string) (Filter, error) {
	term, err := filterParser.ParseString("", src)
	if err != nil {
		return nil, eris.Wrap(err, "failed to parse filter expression")
	}
	return termToFilter(s, term)
}
