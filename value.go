package satchel

// Value is the tagged union over all declared kinds: one kind paired with
// one payload. Values are produced by Kind.New only, so the tag and the
// payload type always agree.
type Value struct {
	id   uint32
	name string
	ptr  any
}

func (v Value) KindID() uint32 {
	return v.id
}

func (v Value) KindName() string {
	return v.name
}

// Unwrap extracts the payload of a Value produced by the given kind.
// A tag mismatch is an internal invariant violation, not a user condition.
func Unwrap[T any](k Kind[T], v Value) T {
	p, ok := v.ptr.(*T)
	if !ok || v.id != k.id {
		panic(KindMismatchError{Want: k.name, Got: v.name})
	}
	return *p
}
