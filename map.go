package satchel

import (
	"iter"
	"runtime"

	"github.com/TheBitDrifter/mask"
)

// The Map family extracts component payloads from every entity holding a
// requested kind set, in world traversal order. Map views yield copies;
// MapMut views yield pointers into the entities' storage.
//
// Pointers to distinct kinds on one entity are disjoint allocations, so a
// MapMut view may hand them out simultaneously. Passing the same kind
// twice to an unchecked NewMapMut constructor makes the returned pointers
// alias one slot; that is the caller's responsibility to avoid. The
// Checked constructors reject duplicate kinds up front and are the
// recommended default.

type Row3[A, B, C any] struct {
	A A
	B B
	C C
}

type Row4[A, B, C, D any] struct {
	A A
	B B
	C C
	D D
}

type RowMut3[A, B, C any] struct {
	A *A
	B *B
	C *C
}

type RowMut4[A, B, C, D any] struct {
	A *A
	B *B
	C *C
	D *D
}

type Map1[A any] struct {
	ka   Kind[A]
	bits mask.Mask
}

func NewMap1[A any](ka Kind[A]) Map1[A] {
	return Map1[A]{ka: ka, bits: kindMask(ka)}
}

// Match reports whether the entity holds every requested kind.
func (v Map1[A]) Match(e Entity) bool {
	return e.Mask().ContainsAll(v.bits)
}

func (v Map1[A]) Get(e Entity) (A, bool) {
	return Get(e, v.ka)
}

func (v Map1[A]) Each(w World) iter.Seq[A] {
	return func(yield func(A) bool) {
		for _, e := range w.Entities() {
			if !v.Match(e) {
				continue
			}
			if !yield(MustGet(e, v.ka)) {
				return
			}
		}
	}
}

type Map2[A, B any] struct {
	ka   Kind[A]
	kb   Kind[B]
	bits mask.Mask
}

func NewMap2[A, B any](ka Kind[A], kb Kind[B]) Map2[A, B] {
	return Map2[A, B]{ka: ka, kb: kb, bits: kindMask(ka, kb)}
}

func (v Map2[A, B]) Match(e Entity) bool {
	return e.Mask().ContainsAll(v.bits)
}

func (v Map2[A, B]) Get(e Entity) (A, B, bool) {
	if !v.Match(e) {
		var a A
		var b B
		return a, b, false
	}
	return MustGet(e, v.ka), MustGet(e, v.kb), true
}

func (v Map2[A, B]) Each(w World) iter.Seq2[A, B] {
	return func(yield func(A, B) bool) {
		for _, e := range w.Entities() {
			if !v.Match(e) {
				continue
			}
			if !yield(MustGet(e, v.ka), MustGet(e, v.kb)) {
				return
			}
		}
	}
}

type Map3[A, B, C any] struct {
	ka   Kind[A]
	kb   Kind[B]
	kc   Kind[C]
	bits mask.Mask
}

func NewMap3[A, B, C any](ka Kind[A], kb Kind[B], kc Kind[C]) Map3[A, B, C] {
	return Map3[A, B, C]{ka: ka, kb: kb, kc: kc, bits: kindMask(ka, kb, kc)}
}

func (v Map3[A, B, C]) Match(e Entity) bool {
	return e.Mask().ContainsAll(v.bits)
}

func (v Map3[A, B, C]) Get(e Entity) (Row3[A, B, C], bool) {
	if !v.Match(e) {
		return Row3[A, B, C]{}, false
	}
	row := Row3[A, B, C]{
		A: MustGet(e, v.ka),
		B: MustGet(e, v.kb),
		C: MustGet(e, v.kc),
	}
	return row, true
}

func (v Map3[A, B, C]) Each(w World) iter.Seq[Row3[A, B, C]] {
	return func(yield func(Row3[A, B, C]) bool) {
		for _, e := range w.Entities() {
			row, ok := v.Get(e)
			if !ok {
				continue
			}
			if !yield(row) {
				return
			}
		}
	}
}

type Map4[A, B, C, D any] struct {
	ka   Kind[A]
	kb   Kind[B]
	kc   Kind[C]
	kd   Kind[D]
	bits mask.Mask
}

func NewMap4[A, B, C, D any](ka Kind[A], kb Kind[B], kc Kind[C], kd Kind[D]) Map4[A, B, C, D] {
	return Map4[A, B, C, D]{ka: ka, kb: kb, kc: kc, kd: kd, bits: kindMask(ka, kb, kc, kd)}
}

func (v Map4[A, B, C, D]) Match(e Entity) bool {
	return e.Mask().ContainsAll(v.bits)
}

func (v Map4[A, B, C, D]) Get(e Entity) (Row4[A, B, C, D], bool) {
	if !v.Match(e) {
		return Row4[A, B, C, D]{}, false
	}
	row := Row4[A, B, C, D]{
		A: MustGet(e, v.ka),
		B: MustGet(e, v.kb),
		C: MustGet(e, v.kc),
		D: MustGet(e, v.kd),
	}
	return row, true
}

func (v Map4[A, B, C, D]) Each(w World) iter.Seq[Row4[A, B, C, D]] {
	return func(yield func(Row4[A, B, C, D]) bool) {
		for _, e := range w.Entities() {
			row, ok := v.Get(e)
			if !ok {
				continue
			}
			if !yield(row) {
				return
			}
		}
	}
}

type MapMut1[A any] struct {
	ka   Kind[A]
	bits mask.Mask
}

func NewMapMut1[A any](ka Kind[A]) MapMut1[A] {
	return MapMut1[A]{ka: ka, bits: kindMask(ka)}
}

func (v MapMut1[A]) Match(e Entity) bool {
	return e.Mask().ContainsAll(v.bits)
}

func (v MapMut1[A]) Get(e Entity) (*A, bool) {
	return GetMut(e, v.ka)
}

func (v MapMut1[A]) Each(w World) iter.Seq[*A] {
	return func(yield func(*A) bool) {
		for _, e := range w.Entities() {
			if !v.Match(e) {
				continue
			}
			if !yield(MustGetMut(e, v.ka)) {
				return
			}
		}
	}
}

type MapMut2[A, B any] struct {
	ka   Kind[A]
	kb   Kind[B]
	bits mask.Mask
}

// NewMapMut2 is the unchecked constructor: passing the same kind for both
// positions aliases the returned pointers.
func NewMapMut2[A, B any](ka Kind[A], kb Kind[B]) MapMut2[A, B] {
	return MapMut2[A, B]{ka: ka, kb: kb, bits: kindMask(ka, kb)}
}

// NewMapMut2Checked rejects duplicate kinds before any pointer is
// produced, panicking with the repeated kind and the caller's location.
func NewMapMut2Checked[A, B any](ka Kind[A], kb Kind[B]) MapMut2[A, B] {
	checkDistinct(ka, kb)
	return NewMapMut2(ka, kb)
}

func (v MapMut2[A, B]) Match(e Entity) bool {
	return e.Mask().ContainsAll(v.bits)
}

func (v MapMut2[A, B]) Get(e Entity) (*A, *B, bool) {
	if !v.Match(e) {
		return nil, nil, false
	}
	return MustGetMut(e, v.ka), MustGetMut(e, v.kb), true
}

func (v MapMut2[A, B]) Each(w World) iter.Seq2[*A, *B] {
	return func(yield func(*A, *B) bool) {
		for _, e := range w.Entities() {
			if !v.Match(e) {
				continue
			}
			if !yield(MustGetMut(e, v.ka), MustGetMut(e, v.kb)) {
				return
			}
		}
	}
}

type MapMut3[A, B, C any] struct {
	ka   Kind[A]
	kb   Kind[B]
	kc   Kind[C]
	bits mask.Mask
}

func NewMapMut3[A, B, C any](ka Kind[A], kb Kind[B], kc Kind[C]) MapMut3[A, B, C] {
	return MapMut3[A, B, C]{ka: ka, kb: kb, kc: kc, bits: kindMask(ka, kb, kc)}
}

func NewMapMut3Checked[A, B, C any](ka Kind[A], kb Kind[B], kc Kind[C]) MapMut3[A, B, C] {
	checkDistinct(ka, kb, kc)
	return NewMapMut3(ka, kb, kc)
}

func (v MapMut3[A, B, C]) Match(e Entity) bool {
	return e.Mask().ContainsAll(v.bits)
}

func (v MapMut3[A, B, C]) Get(e Entity) (RowMut3[A, B, C], bool) {
	if !v.Match(e) {
		return RowMut3[A, B, C]{}, false
	}
	row := RowMut3[A, B, C]{
		A: MustGetMut(e, v.ka),
		B: MustGetMut(e, v.kb),
		C: MustGetMut(e, v.kc),
	}
	return row, true
}

func (v MapMut3[A, B, C]) Each(w World) iter.Seq[RowMut3[A, B, C]] {
	return func(yield func(RowMut3[A, B, C]) bool) {
		for _, e := range w.Entities() {
			row, ok := v.Get(e)
			if !ok {
				continue
			}
			if !yield(row) {
				return
			}
		}
	}
}

type MapMut4[A, B, C, D any] struct {
	ka   Kind[A]
	kb   Kind[B]
	kc   Kind[C]
	kd   Kind[D]
	bits mask.Mask
}

func NewMapMut4[A, B, C, D any](ka Kind[A], kb Kind[B], kc Kind[C], kd Kind[D]) MapMut4[A, B, C, D] {
	return MapMut4[A, B, C, D]{ka: ka, kb: kb, kc: kc, kd: kd, bits: kindMask(ka, kb, kc, kd)}
}

func NewMapMut4Checked[A, B, C, D any](ka Kind[A], kb Kind[B], kc Kind[C], kd Kind[D]) MapMut4[A, B, C, D] {
	checkDistinct(ka, kb, kc, kd)
	return NewMapMut4(ka, kb, kc, kd)
}

func (v MapMut4[A, B, C, D]) Match(e Entity) bool {
	return e.Mask().ContainsAll(v.bits)
}

func (v MapMut4[A, B, C, D]) Get(e Entity) (RowMut4[A, B, C, D], bool) {
	if !v.Match(e) {
		return RowMut4[A, B, C, D]{}, false
	}
	row := RowMut4[A, B, C, D]{
		A: MustGetMut(e, v.ka),
		B: MustGetMut(e, v.kb),
		C: MustGetMut(e, v.kc),
		D: MustGetMut(e, v.kd),
	}
	return row, true
}

func (v MapMut4[A, B, C, D]) Each(w World) iter.Seq[RowMut4[A, B, C, D]] {
	return func(yield func(RowMut4[A, B, C, D]) bool) {
		for _, e := range w.Entities() {
			row, ok := v.Get(e)
			if !ok {
				continue
			}
			if !yield(row) {
				return
			}
		}
	}
}

// checkDistinct scans the requested kind list for repeats. The list is
// static per view, so the scan runs once at construction.
func checkDistinct(ks ...AnyKind) {
	seen := make(map[uint32]struct{}, len(ks))
	for _, k := range ks {
		if _, dup := seen[k.ID()]; dup {
			_, file, line, _ := runtime.Caller(2)
			panic(DuplicateKindError{Kind: k.Name(), File: file, Line: line})
		}
		seen[k.ID()] = struct{}{}
	}
}
