package satchel

import "fmt"

type DuplicateKindNameError struct {
	Name string
}

func (e DuplicateKindNameError) Error() string {
	return fmt.Sprintf("kind %q is already declared in this schema", e.Name)
}

type InvalidKindNameError struct {
	Name string
}

func (e InvalidKindNameError) Error() string {
	return fmt.Sprintf("invalid kind name %q", e.Name)
}

type KindCapacityError struct {
	Capacity int
}

func (e KindCapacityError) Error() string {
	return fmt.Sprintf("schema at maximum capacity (%d)", e.Capacity)
}

type EmptySchemaError struct{}

func (e EmptySchemaError) Error() string {
	return "world requires a schema with at least one declared kind"
}

type MissingKindError struct {
	Kind   string
	Entity EntityID
}

func (e MissingKindError) Error() string {
	if e.Entity == 0 {
		return fmt.Sprintf("kind %q does not exist on unattached entity", e.Kind)
	}
	return fmt.Sprintf("kind %q does not exist on entity %d", e.Kind, e.Entity)
}

type MissingEntityError struct {
	ID EntityID
}

func (e MissingEntityError) Error() string {
	return fmt.Sprintf("entity %d does not exist in world", e.ID)
}

type AttachedEntityError struct {
	ID EntityID
}

func (e AttachedEntityError) Error() string {
	return fmt.Sprintf("entity %d is already attached to a world", e.ID)
}

type DuplicateKindError struct {
	Kind string
	File string
	Line int
}

func (e DuplicateKindError) Error() string {
	if e.File == "" {
		return fmt.Sprintf("kind %q requested more than once in checked view", e.Kind)
	}
	return fmt.Sprintf("kind %q requested more than once in checked view (%s:%d)", e.Kind, e.File, e.Line)
}

type KindMismatchError struct {
	Want string
	Got  string
}

func (e KindMismatchError) Error() string {
	return fmt.Sprintf("value of kind %q unwrapped as kind %q", e.Got, e.Want)
}

type UnknownKindError struct {
	Name string
}

func (e UnknownKindError) Error() string {
	return fmt.Sprintf("unknown kind %q", e.Name)
}
