package satchel

import (
	"github.com/TheBitDrifter/mask"
)

type filterOp int

const (
	opAll filterOp = iota
	opAny
	opNone
	opExact
	opAnd
	opOr
	opNot
)

type leafFilter struct {
	op   filterOp
	bits mask.Mask
}

type compositeFilter struct {
	op       filterOp
	children []Filter
}

func kindMask(ks ...AnyKind) mask.Mask {
	var m mask.Mask
	for _, k := range ks {
		m.Mark(k.ID())
	}
	return m
}

// All matches entities holding every listed kind. With no kinds it
// matches everything.
func All(ks ...AnyKind) Filter {
	return leafFilter{op: opAll, bits: kindMask(ks...)}
}

// Tags is All under the name callers reach for when they want whole
// entities out of World.Query rather than component references.
func Tags(ks ...AnyKind) Filter {
	return All(ks...)
}

// Any matches entities holding at least one listed kind.
func Any(ks ...AnyKind) Filter {
	return leafFilter{op: opAny, bits: kindMask(ks...)}
}

// None matches entities holding none of the listed kinds.
func None(ks ...AnyKind) Filter {
	return leafFilter{op: opNone, bits: kindMask(ks...)}
}

// Exact matches entities whose kind set equals the listed kinds exactly.
func Exact(ks ...AnyKind) Filter {
	return leafFilter{op: opExact, bits: kindMask(ks...)}
}

func And(fs ...Filter) Filter {
	return compositeFilter{op: opAnd, children: fs}
}

func Or(fs ...Filter) Filter {
	return compositeFilter{op: opOr, children: fs}
}

func Not(f Filter) Filter {
	return compositeFilter{op: opNot, children: []Filter{f}}
}

func (f leafFilter) Matches(target mask.Maskable) bool {
	m := target.Mask()
	switch f.op {
	case opAll:
		return m.ContainsAll(f.bits)
	case opAny:
		return m.ContainsAny(f.bits)
	case opNone:
		return m.ContainsNone(f.bits)
	case opExact:
		return m == f.bits
	}
	return false
}

func (f compositeFilter) Matches(target mask.Maskable) bool {
	switch f.op {
	case opAnd:
		for _, child := range f.children {
			if !child.Matches(target) {
				return false
			}
		}
		return true
	case opOr:
		for _, child := range f.children {
			if child.Matches(target) {
				return true
			}
		}
		return false
	case opNot:
		for _, child := range f.children {
			if child.Matches(target) {
				return false
			}
		}
		return true
	}
	return false
}
