package satchel

import (
	"github.com/TheBitDrifter/mask"
)

// AnyKind is the type-erased view of a declared component kind.
// Kinds can be used to build filters and to key entity storage.
type AnyKind interface {
	mask.Maskable
	ID() uint32
	Name() string
	isKind()
}

// Kind is the typed handle for one declared component kind. Handles are
// small comparable values minted by FactoryNewKind and safe to copy freely.
type Kind[T any] struct {
	id   uint32
	name string
}

var _ AnyKind = Kind[any]{}

func (k Kind[T]) ID() uint32 {
	return k.id
}

func (k Kind[T]) Name() string {
	return k.name
}

func (k Kind[T]) Mask() mask.Mask {
	var m mask.Mask
	m.Mark(k.id)
	return m
}

func (k Kind[T]) isKind() {}

// New wraps a payload into this kind's Value case. The payload is boxed,
// so every Value owns its own storage slot.
func (k Kind[T]) New(v T) Value {
	return Value{id: k.id, name: k.name, ptr: &v}
}
