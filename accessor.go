package satchel

// Get returns a copy of the payload stored under the given kind.
func Get[T any](e Entity, k Kind[T]) (T, bool) {
	v, ok := e.load(k.id)
	if !ok {
		var zero T
		return zero, false
	}
	return *v.ptr.(*T), true
}

// GetMut returns a pointer to the payload stored under the given kind.
// The pointer stays valid until that kind is replaced or removed on the
// entity.
func GetMut[T any](e Entity, k Kind[T]) (*T, bool) {
	v, ok := e.load(k.id)
	if !ok {
		return nil, false
	}
	return v.ptr.(*T), true
}

// MustGet is Get for callers that have already established presence.
// A miss is a contract violation and panics naming the kind.
func MustGet[T any](e Entity, k Kind[T]) T {
	v, ok := e.load(k.id)
	if !ok {
		panic(MissingKindError{Kind: k.name, Entity: e.ID()})
	}
	return *v.ptr.(*T)
}

// MustGetMut is GetMut with the MustGet miss contract.
func MustGetMut[T any](e Entity, k Kind[T]) *T {
	v, ok := e.load(k.id)
	if !ok {
		panic(MissingKindError{Kind: k.name, Entity: e.ID()})
	}
	return v.ptr.(*T)
}
