package satchel

import (
	"cmp"
	"slices"

	"github.com/TheBitDrifter/mask"
)

var _ Entity = &entity{}

type entity struct {
	id     EntityID
	bits   mask.Mask
	values map[uint32]Value
}

func newEntity() *entity {
	return &entity{
		values: make(map[uint32]Value),
	}
}

func (e *entity) ID() EntityID {
	return e.id
}

func (e *entity) Mask() mask.Mask {
	return e.bits
}

func (e *entity) Len() int {
	return len(e.values)
}

func (e *entity) Has(k AnyKind) bool {
	_, ok := e.values[k.ID()]
	return ok
}

func (e *entity) HasAll(ks ...AnyKind) bool {
	return e.bits.ContainsAll(kindMask(ks...))
}

// Add stores the value under its kind. Re-adding a kind replaces the
// prior value (last write wins).
func (e *entity) Add(v Value) {
	e.values[v.id] = v
	e.bits.Mark(v.id)
}

// With adds each value and returns the receiver, for fluent construction.
func (e *entity) With(vs ...Value) Entity {
	for _, v := range vs {
		e.Add(v)
	}
	return e
}

// Remove detaches the value stored under the kind and returns ownership
// of it to the caller.
func (e *entity) Remove(k AnyKind) (Value, bool) {
	v, ok := e.values[k.ID()]
	if !ok {
		return Value{}, false
	}
	delete(e.values, k.ID())
	e.bits.Unmark(k.ID())
	return v, true
}

// Values snapshots the stored values in kind-id order.
func (e *entity) Values() []Value {
	out := make([]Value, 0, len(e.values))
	for _, v := range e.values {
		out = append(out, v)
	}
	slices.SortFunc(out, func(a, b Value) int {
		return cmp.Compare(a.id, b.id)
	})
	return out
}

func (e *entity) load(id uint32) (Value, bool) {
	v, ok := e.values[id]
	return v, ok
}
