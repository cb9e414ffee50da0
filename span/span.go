// Package span extends the interval algebra to intervals with unbounded
// endpoints: "from x onward", "up to y", and the full span. An unbounded
// start is ordered before every value and an unbounded end after every
// value, so the thirteen relations carry over unchanged.
package span

import (
	"cmp"
	"fmt"

	"github.com/allenintervals/allen"
)

// Bound is one endpoint of a span: either a finite value or unbounded,
// meaning there is no limit in that direction.
type Bound[T cmp.Ordered] struct {
	value   T
	bounded bool
}

// Bounded returns a finite endpoint at v.
func Bounded[T cmp.Ordered](v T) Bound[T] {
	return Bound[T]{value: v, bounded: true}
}

// Unbounded returns an infinite endpoint.
func Unbounded[T cmp.Ordered]() Bound[T] {
	return Bound[T]{}
}

// Value returns the endpoint value; ok is false for an unbounded endpoint.
func (b Bound[T]) Value() (v T, ok bool) {
	return b.value, b.bounded
}

// IsBounded reports whether the endpoint is finite.
func (b Bound[T]) IsBounded() bool { return b.bounded }

// Span is an interval whose endpoints may be unbounded. A bounded start is
// inclusive and a bounded end exclusive, matching allen.Interval. The zero
// value is the full span.
type Span[T cmp.Ordered] struct {
	Start Bound[T]
	End   Bound[T]
}

// Between returns the bounded span [start, end).
func Between[T cmp.Ordered](start, end T) Span[T] {
	return Span[T]{Start: Bounded(start), End: Bounded(end)}
}

// From returns the span beginning at start with no upper limit.
func From[T cmp.Ordered](start T) Span[T] {
	return Span[T]{Start: Bounded(start)}
}

// To returns the span reaching up to end with no lower limit.
func To[T cmp.Ordered](end T) Span[T] {
	return Span[T]{End: Bounded(end)}
}

// Full returns the span covering the whole domain.
func Full[T cmp.Ordered]() Span[T] {
	return Span[T]{}
}

func (s Span[T]) String() string {
	start, end := "..", ".."
	if v, ok := s.Start.Value(); ok {
		start = fmt.Sprint(v)
	}
	if v, ok := s.End.Value(); ok {
		end = fmt.Sprint(v)
	}
	return fmt.Sprintf("[%s, %s)", start, end)
}

// IsEmpty reports whether the span covers no values. A span with an
// unbounded side always covers values.
func (s Span[T]) IsEmpty() bool {
	sv, sok := s.Start.Value()
	ev, eok := s.End.Value()
	return sok && eok && sv >= ev
}

// NonEmpty converts the span into its validated form, failing with
// allen.ErrEmptyInterval for empty or inverted bounded spans.
func (s Span[T]) NonEmpty() (NonEmpty[T], error) {
	if s.IsEmpty() {
		return NonEmpty[T]{}, allen.ErrEmptyInterval
	}
	return NonEmpty[T]{span: s}, nil
}

// NonEmpty is a span known to cover at least one value. The zero value is
// the full span, which is valid.
type NonEmpty[T cmp.Ordered] struct {
	span Span[T]
}

// Span returns the plain span value.
func (ne NonEmpty[T]) Span() Span[T] { return ne.span }

func (ne NonEmpty[T]) String() string { return ne.span.String() }

// Relate returns the relation of s to t. Unbounded starts compare equal to
// each other and below everything else; unbounded ends compare equal to
// each other and above everything else. Two full spans are Equals.
func Relate[T cmp.Ordered](s, t NonEmpty[T]) allen.Relation {
	return allen.FromOrderings(
		compareStarts(s.span.Start, t.span.Start),
		startVsEnd(s.span.Start, t.span.End),
		-startVsEnd(t.span.Start, s.span.End),
		compareEnds(s.span.End, t.span.End),
	)
}

// Relate returns the relation of s to t.
func (s NonEmpty[T]) Relate(t NonEmpty[T]) allen.Relation {
	return Relate(s, t)
}

// compareStarts orders two start endpoints; unbounded sorts first.
func compareStarts[T cmp.Ordered](s, t Bound[T]) int {
	sv, sok := s.Value()
	tv, tok := t.Value()
	switch {
	case sok && tok:
		return cmp.Compare(sv, tv)
	case sok:
		return 1
	case tok:
		return -1
	default:
		return 0
	}
}

// compareEnds orders two end endpoints; unbounded sorts last.
func compareEnds[T cmp.Ordered](s, t Bound[T]) int {
	sv, sok := s.Value()
	tv, tok := t.Value()
	switch {
	case sok && tok:
		return cmp.Compare(sv, tv)
	case sok:
		return -1
	case tok:
		return 1
	default:
		return 0
	}
}

// startVsEnd compares a start endpoint against an end endpoint. With either
// side unbounded the start lies below the end.
func startVsEnd[T cmp.Ordered](start, end Bound[T]) int {
	sv, sok := start.Value()
	ev, eok := end.Value()
	if !sok || !eok {
		return -1
	}
	return cmp.Compare(sv, ev)
}
