package satchel

// MaxKinds caps how many kinds a schema can declare. Kind ids double as
// bitmask positions, so the cap must stay within the mask width.
const MaxKinds = 64

var _ Schema = &schema{}

type schema struct {
	kinds       []AnyKind
	kindIndices map[string]uint32
}

func newSchema() *schema {
	return &schema{
		kindIndices: make(map[string]uint32),
	}
}

func (s *schema) Len() int {
	return len(s.kinds)
}

func (s *schema) Has(name string) bool {
	_, ok := s.kindIndices[name]
	return ok
}

func (s *schema) Lookup(name string) (AnyKind, bool) {
	idx, ok := s.kindIndices[name]
	if !ok {
		return nil, false
	}
	return s.kinds[idx], true
}

// Kinds returns the declared kinds in declaration order.
func (s *schema) Kinds() []AnyKind {
	out := make([]AnyKind, len(s.kinds))
	copy(out, s.kinds)
	return out
}

func (s *schema) next() uint32 {
	return uint32(len(s.kinds))
}

func (s *schema) add(name string, k AnyKind) {
	if name == "" {
		panic(InvalidKindNameError{Name: name})
	}
	if _, exists := s.kindIndices[name]; exists {
		panic(DuplicateKindNameError{Name: name})
	}
	if len(s.kinds) >= MaxKinds {
		panic(KindCapacityError{Capacity: MaxKinds})
	}
	s.kindIndices[name] = uint32(len(s.kinds))
	s.kinds = append(s.kinds, k)
}
