package satchel

type factory struct{}

var Factory factory

func (f factory) NewSchema() Schema {
	return newSchema()
}

func (f factory) NewEntity() Entity {
	return newEntity()
}

func (f factory) NewWorld(s Schema, opts ...Option) World {
	return newWorld(s, opts...)
}

// FactoryNewKind declares one component kind in the schema and returns its
// typed handle. Duplicate or empty names and schemas past MaxKinds fail
// fatally; declaration is a startup concern, not a runtime one.
func FactoryNewKind[T any](s Schema, name string) Kind[T] {
	k := Kind[T]{id: s.next(), name: name}
	s.add(name, k)
	return k
}
