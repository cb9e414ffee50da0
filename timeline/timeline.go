// Package timeline keeps an ordered series of non-empty intervals and
// reports the Allen relation of each member to a probe interval. It is a
// pairwise classification convenience over a sorted collection, not a
// query index: Relations visits every member.
package timeline

import (
	"cmp"

	"github.com/google/btree"

	"github.com/allenintervals/allen"
)

const btreeDegree = 32

// Series is an ordered collection of non-empty intervals along one
// timeline, keyed by (start, end). It is not thread-safe.
type Series[T cmp.Ordered] struct {
	tree *btree.BTreeG[allen.NonEmpty[T]]
}

func New[T cmp.Ordered]() *Series[T] {
	return &Series[T]{
		tree: btree.NewG(btreeDegree, func(a, b allen.NonEmpty[T]) bool {
			if a.Start() != b.Start() {
				return a.Start() < b.Start()
			}
			return a.End() < b.End()
		}),
	}
}

// Insert adds iv to the series. Re-inserting an interval with the same
// boundaries is a no-op.
func (s *Series[T]) Insert(iv allen.NonEmpty[T]) {
	s.tree.ReplaceOrInsert(iv)
}

// Delete removes the interval with iv's boundaries, reporting whether it
// was present.
func (s *Series[T]) Delete(iv allen.NonEmpty[T]) bool {
	_, ok := s.tree.Delete(iv)
	return ok
}

func (s *Series[T]) Len() int {
	return s.tree.Len()
}

// Min returns the earliest member of the series.
func (s *Series[T]) Min() (allen.NonEmpty[T], bool) {
	return s.tree.Min()
}

// Max returns the latest member of the series.
func (s *Series[T]) Max() (allen.NonEmpty[T], bool) {
	return s.tree.Max()
}

// Ascend walks the series in (start, end) order until fn returns false.
func (s *Series[T]) Ascend(fn func(iv allen.NonEmpty[T]) bool) {
	s.tree.Ascend(func(item allen.NonEmpty[T]) bool {
		return fn(item)
	})
}

// Observation pairs a series member with its relation to a probe.
type Observation[T cmp.Ordered] struct {
	Interval allen.NonEmpty[T]
	Relation allen.Relation
}

// Relations classifies every member against probe, in series order. The
// reported relation is the member's relation to the probe, so a member that
// ends before the probe begins reports Precedes.
func (s *Series[T]) Relations(probe allen.NonEmpty[T]) []Observation[T] {
	obs := make([]Observation[T], 0, s.tree.Len())
	s.tree.Ascend(func(member allen.NonEmpty[T]) bool {
		obs = append(obs, Observation[T]{
			Interval: member,
			Relation: allen.FromIntervals(member, probe),
		})
		return true
	})
	return obs
}
