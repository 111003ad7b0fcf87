/*
Package satchel provides sparse entity-component storage with typed queries.

Satchel keeps each entity as its own bag of independently declared, typed
component kinds. There is no archetype grouping: lookups go straight from a
kind handle to the entity's slot for it, which keeps insertion and removal
cheap and makes per-entity composition fully dynamic.

Core Concepts:

  - Kind: A declared, uniquely named component type, handled through Kind[T].
  - Value: One kind paired with one payload, the unit an entity stores.
  - Entity: A sparse bag holding at most one value per kind.
  - World: An owning collection of entities with monotonically assigned
    identities and identity-ascending iteration.
  - Views and Filters: Lazy traversals yielding component payloads (copies
    or pointers) for every entity holding a requested kind set.

Basic Usage:

	// Declare kinds in a schema
	schema := satchel.Factory.NewSchema()
	position := satchel.FactoryNewKind[Vec2](schema, "Position")
	velocity := satchel.FactoryNewKind[Vec2](schema, "Velocity")

	// Create a world and populate it
	world := satchel.Factory.NewWorld(schema)
	world.Spawn(position.New(Vec2{0, 0}), velocity.New(Vec2{1, 2}))

	// Traverse matching entities and mutate through pointers
	view := satchel.NewMapMut2Checked(position, velocity)
	for pos, vel := range view.Each(world) {
		pos.X += vel.X
		pos.Y += vel.Y
	}

Mutable views hand out pointers to distinct kinds on the same entity at the
same time; those are disjoint allocations. The checked view constructors
reject a kind requested twice, the unchecked ones leave that to the caller.
*/
package satchel
