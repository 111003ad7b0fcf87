package satchel

import (
	"io"
	"iter"
	"slices"

	"github.com/rs/zerolog"
)

// EntityID identifies an entity within one world. Zero means unattached.
type EntityID uint64

var _ World = &world{}

type world struct {
	schema   Schema
	entities map[EntityID]*entity

	// Identity-ascending insertion record; drives deterministic traversal.
	order []EntityID

	nextID EntityID
	log    zerolog.Logger
}

// NewWorld requires at least one declared kind; a world over an empty
// schema cannot hold anything queryable, so construction fails fatally.
// Kinds used against this world must come from its schema.
func newWorld(s Schema, opts ...Option) *world {
	if s == nil || s.Len() == 0 {
		panic(EmptySchemaError{})
	}
	w := &world{
		schema:   s,
		entities: make(map[EntityID]*entity),
		nextID:   1,
		log:      zerolog.New(io.Discard).Level(zerolog.Disabled),
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

func (w *world) Schema() Schema {
	return w.schema
}

func (w *world) Len() int {
	return len(w.entities)
}

func (w *world) Has(id EntityID) bool {
	_, ok := w.entities[id]
	return ok
}

// Insert takes ownership of the entity and mints its identity. Identities
// are strictly increasing for the lifetime of the world and never reused,
// so traversal order is reproducible for a given insert/remove history.
// Inserting an entity that already belongs to a world is a contract
// violation.
func (w *world) Insert(e Entity) EntityID {
	ent := e.(*entity)
	if ent.id != 0 {
		panic(AttachedEntityError{ID: ent.id})
	}
	id := w.nextID
	w.nextID++
	ent.id = id
	w.entities[id] = ent
	w.order = append(w.order, id)
	w.logEntity("insert", ent)
	return id
}

// Spawn builds an entity from the given values and inserts it.
func (w *world) Spawn(vs ...Value) EntityID {
	return w.Insert(newEntity().With(vs...))
}

// Remove detaches the entity and returns ownership to the caller. The
// returned entity has no identity and may be re-inserted, receiving a
// fresh one.
func (w *world) Remove(id EntityID) (Entity, bool) {
	ent, ok := w.entities[id]
	if !ok {
		return nil, false
	}
	delete(w.entities, id)
	if i, found := slices.BinarySearch(w.order, id); found {
		w.order = slices.Delete(w.order, i, i+1)
	}
	ent.id = 0
	w.log.Debug().Uint64("entity", uint64(id)).Int("world_size", len(w.entities)).Msg("remove")
	return ent, true
}

func (w *world) Get(id EntityID) (Entity, bool) {
	ent, ok := w.entities[id]
	if !ok {
		return nil, false
	}
	return ent, true
}

// MustGet is Get for callers that have already established presence.
// A miss is a contract violation and panics naming the identity.
func (w *world) MustGet(id EntityID) Entity {
	ent, ok := w.entities[id]
	if !ok {
		panic(MissingEntityError{ID: id})
	}
	return ent
}

// Entities traverses the world in identity-ascending order. The world
// must not be structurally mutated while a traversal is in progress;
// mutating component payloads is fine.
func (w *world) Entities() iter.Seq2[EntityID, Entity] {
	return func(yield func(EntityID, Entity) bool) {
		for _, id := range w.order {
			if !yield(id, w.entities[id]) {
				return
			}
		}
	}
}

// Query traverses the entities matching the filter, in identity-ascending
// order.
func (w *world) Query(f Filter) iter.Seq2[EntityID, Entity] {
	return func(yield func(EntityID, Entity) bool) {
		for _, id := range w.order {
			ent := w.entities[id]
			if !f.Matches(ent) {
				continue
			}
			if !yield(id, ent) {
				return
			}
		}
	}
}
