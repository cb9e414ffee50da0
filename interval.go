package allen

import (
	"cmp"
	"fmt"
)

// Interval is a half-open interval [Start, End) over an ordered value type.
// It carries no validity guarantee: Start may sit at or past End, in which
// case the interval is empty and has no defined relation to any other
// interval. Convert to NonEmpty before classifying.
type Interval[T cmp.Ordered] struct {
	Start T // inclusive
	End   T // exclusive
}

// IsEmpty reports whether the interval covers no values. Inverted intervals
// (Start past End) count as empty.
func (iv Interval[T]) IsEmpty() bool {
	return iv.Start >= iv.End
}

func (iv Interval[T]) String() string {
	return fmt.Sprintf("[%v, %v)", iv.Start, iv.End)
}

// NonEmpty converts the interval into its validated form. It fails with
// ErrEmptyInterval when the interval is empty or inverted; this is the
// single fallible entry point of the package, so the classifier never has
// to recheck the invariant.
func (iv Interval[T]) NonEmpty() (NonEmpty[T], error) {
	if iv.IsEmpty() {
		return NonEmpty[T]{}, ErrEmptyInterval
	}
	return NonEmpty[T]{start: iv.Start, end: iv.End}, nil
}

// NonEmpty is an interval known to satisfy Start < End, the only input type
// FromIntervals accepts. The zero value does not satisfy the invariant;
// obtain values through Interval.NonEmpty or MustNonEmpty.
type NonEmpty[T cmp.Ordered] struct {
	start, end T
}

// MustNonEmpty is like Interval.NonEmpty but panics on an empty interval.
// Intended for literals known to be valid.
func MustNonEmpty[T cmp.Ordered](start, end T) NonEmpty[T] {
	ne, err := Interval[T]{Start: start, End: end}.NonEmpty()
	if err != nil {
		panic(fmt.Sprintf("allen: interval [%v, %v) is empty", start, end))
	}
	return ne
}

// Start returns the inclusive lower boundary.
func (ne NonEmpty[T]) Start() T { return ne.start }

// End returns the exclusive upper boundary.
func (ne NonEmpty[T]) End() T { return ne.end }

// Interval returns the plain interval value.
func (ne NonEmpty[T]) Interval() Interval[T] {
	return Interval[T]{Start: ne.start, End: ne.end}
}

func (ne NonEmpty[T]) String() string {
	return ne.Interval().String()
}
