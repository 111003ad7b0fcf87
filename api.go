package satchel

import (
	"iter"

	"github.com/TheBitDrifter/mask"
)

// Schema is the kind registry: it mints kind ids and enforces name
// uniqueness and capacity. Declare kinds with FactoryNewKind.
type Schema interface {
	Len() int
	Has(name string) bool
	Lookup(name string) (AnyKind, bool)
	Kinds() []AnyKind
	next() uint32
	add(name string, k AnyKind)
}

// Entity is a sparse bag of component values, at most one per kind.
// An entity holds no identity until a World inserts it.
type Entity interface {
	mask.Maskable
	ID() EntityID
	Len() int
	Has(k AnyKind) bool
	HasAll(ks ...AnyKind) bool
	Add(v Value)
	With(vs ...Value) Entity
	Remove(k AnyKind) (Value, bool)
	Values() []Value
	load(id uint32) (Value, bool)
}

// World owns entities and addresses them by identity. Identities are
// assigned monotonically and never reused within one world.
type World interface {
	Schema() Schema
	Len() int
	Has(id EntityID) bool
	Insert(e Entity) EntityID
	Spawn(vs ...Value) EntityID
	Remove(id EntityID) (Entity, bool)
	Get(id EntityID) (Entity, bool)
	MustGet(id EntityID) Entity
	Entities() iter.Seq2[EntityID, Entity]
	Query(f Filter) iter.Seq2[EntityID, Entity]
}

// Filter decides whether a masked target (an entity, or anything else
// exposing a kind mask) matches a kind predicate.
type Filter interface {
	Matches(target mask.Maskable) bool
}
