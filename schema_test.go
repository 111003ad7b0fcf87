package satchel

import (
	"fmt"
	"testing"
)

// TestSchemaDeclare tests basic kind declaration and lookup
func TestSchemaDeclare(t *testing.T) {
	schema := Factory.NewSchema()

	position := FactoryNewKind[Position](schema, "Position")
	velocity := FactoryNewKind[Velocity](schema, "Velocity")
	health := FactoryNewKind[Health](schema, "Health")

	if schema.Len() != 3 {
		t.Errorf("Schema has %d kinds, want 3", schema.Len())
	}

	// Ids are dense and follow declaration order
	wantIDs := []uint32{0, 1, 2}
	gotIDs := []uint32{position.ID(), velocity.ID(), health.ID()}
	for i, want := range wantIDs {
		if gotIDs[i] != want {
			t.Errorf("Kind %d has id %d, want %d", i, gotIDs[i], want)
		}
	}

	names := []string{"Position", "Velocity", "Health"}
	for i, name := range names {
		if !schema.Has(name) {
			t.Errorf("Schema missing declared kind %s", name)
		}
		k, found := schema.Lookup(name)
		if !found {
			t.Errorf("Lookup failed for declared kind %s", name)
			continue
		}
		if k.ID() != wantIDs[i] {
			t.Errorf("Lookup(%s) id = %d, want %d", name, k.ID(), wantIDs[i])
		}
		if k.Name() != name {
			t.Errorf("Lookup(%s) name = %s", name, k.Name())
		}
	}

	kinds := schema.Kinds()
	if len(kinds) != 3 {
		t.Fatalf("Kinds() returned %d entries, want 3", len(kinds))
	}
	for i, k := range kinds {
		if k.Name() != names[i] {
			t.Errorf("Kinds()[%d] = %s, want %s", i, k.Name(), names[i])
		}
	}
}

// TestSchemaLookupMissing tests lookup of undeclared names
func TestSchemaLookupMissing(t *testing.T) {
	schema := Factory.NewSchema()
	FactoryNewKind[Position](schema, "Position")

	if schema.Has("Speed") {
		t.Errorf("Schema reports undeclared kind as present")
	}
	if _, found := schema.Lookup("Speed"); found {
		t.Errorf("Lookup succeeded for undeclared kind")
	}
}

// TestSchemaDuplicateName tests that re-declaring a name fails fatally
func TestSchemaDuplicateName(t *testing.T) {
	schema := Factory.NewSchema()
	FactoryNewKind[Position](schema, "Position")

	defer func() {
		r := recover()
		if r == nil {
			t.Fatalf("Expected panic on duplicate kind name, got none")
		}
		err, ok := r.(DuplicateKindNameError)
		if !ok {
			t.Fatalf("Panic value is %T, want DuplicateKindNameError", r)
		}
		if err.Name != "Position" {
			t.Errorf("Error names kind %q, want %q", err.Name, "Position")
		}
	}()

	// Same name with a different payload type is still a duplicate
	FactoryNewKind[Velocity](schema, "Position")
}

// TestSchemaInvalidName tests that an empty name fails fatally
func TestSchemaInvalidName(t *testing.T) {
	schema := Factory.NewSchema()

	defer func() {
		if r := recover(); r == nil {
			t.Fatalf("Expected panic on empty kind name, got none")
		}
	}()

	FactoryNewKind[Position](schema, "")
}

// TestSchemaCapacity tests the declaration cap
func TestSchemaCapacity(t *testing.T) {
	schema := Factory.NewSchema()

	for i := 0; i < MaxKinds; i++ {
		FactoryNewKind[int](schema, fmt.Sprintf("kind%d", i))
	}
	if schema.Len() != MaxKinds {
		t.Fatalf("Schema has %d kinds, want %d", schema.Len(), MaxKinds)
	}

	defer func() {
		r := recover()
		if r == nil {
			t.Fatalf("Expected panic past capacity, got none")
		}
		err, ok := r.(KindCapacityError)
		if !ok {
			t.Fatalf("Panic value is %T, want KindCapacityError", r)
		}
		if err.Capacity != MaxKinds {
			t.Errorf("Error capacity = %d, want %d", err.Capacity, MaxKinds)
		}
	}()

	FactoryNewKind[int](schema, "overflow")
}

// TestKindNewUnwrap tests the tagged union round trip
func TestKindNewUnwrap(t *testing.T) {
	schema := Factory.NewSchema()
	position := FactoryNewKind[Position](schema, "Position")
	velocity := FactoryNewKind[Velocity](schema, "Velocity")

	v := position.New(Position{X: 1, Y: 2})
	if v.KindID() != position.ID() {
		t.Errorf("Value kind id = %d, want %d", v.KindID(), position.ID())
	}
	if v.KindName() != "Position" {
		t.Errorf("Value kind name = %s, want Position", v.KindName())
	}

	got := Unwrap(position, v)
	if got.X != 1 || got.Y != 2 {
		t.Errorf("Unwrap = %+v, want {1 2}", got)
	}

	defer func() {
		r := recover()
		if r == nil {
			t.Fatalf("Expected panic unwrapping with the wrong kind, got none")
		}
		if _, ok := r.(KindMismatchError); !ok {
			t.Fatalf("Panic value is %T, want KindMismatchError", r)
		}
	}()

	Unwrap(velocity, v)
}
