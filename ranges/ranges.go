// Package ranges adapts native range literals into the core interval
// representation. All adapters resolve endpoint conventions (inclusive,
// exclusive, columnar slices, time instants) into half-open
// allen.Interval values; none of them add classification logic.
package ranges

import (
	"cmp"
	"fmt"
	"time"

	"github.com/allenintervals/allen"
)

// Integer constrains to the built-in integer types, the value types of
// discrete time domains.
type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// HalfOpen returns the interval [start, end). The core representation is
// half-open, so this is the identity adapter for both domains.
func HalfOpen[T cmp.Ordered](start, end T) allen.Interval[T] {
	return allen.Interval[T]{Start: start, End: end}
}

// Inclusive resolves an inclusive literal [start, end] under the given
// domain. In a discrete domain the end value has unit width, so the
// exclusive boundary is end+1; in a continuous domain boundary points have
// zero width and the end value already is the boundary. This resolution is
// the domain policy's entire observable effect: once resolved, touching
// boundaries classify as Meets in either domain.
func Inclusive[T Integer](start, end T, d allen.Domain) allen.Interval[T] {
	if d == allen.Discrete {
		end++
	}
	return allen.Interval[T]{Start: start, End: end}
}

// Closed resolves a continuous-domain inclusive literal [start, end] over
// any ordered type, e.g. floating-point instants. Zero-width boundary
// points make this identical to the half-open form.
func Closed[T cmp.Ordered](start, end T) allen.Interval[T] {
	return allen.Interval[T]{Start: start, End: end}
}

// Times adapts a pair of instants into an interval over Unix nanoseconds.
// UnixNano only covers the years 1678 through 2262; instants outside that
// window are not representable.
func Times(start, end time.Time) allen.Interval[int64] {
	return allen.Interval[int64]{Start: start.UnixNano(), End: end.UnixNano()}
}

// FromSlices pairs parallel start and end slices into intervals, reusing
// ivs when it has sufficient capacity. Inverted pairs are rejected; empty
// pairs pass through and fail later at the NonEmpty gate.
func FromSlices[T cmp.Ordered](starts, ends []T, ivs []allen.Interval[T]) ([]allen.Interval[T], error) {
	if len(starts) != len(ends) {
		return nil, fmt.Errorf("starts and ends slices have different lengths: %d vs %d", len(starts), len(ends))
	}
	if ivs == nil || cap(ivs) < len(starts) {
		ivs = make([]allen.Interval[T], len(starts))
	} else {
		ivs = ivs[:len(starts)]
	}
	for i := range starts {
		if ends[i] < starts[i] {
			return nil, fmt.Errorf("invalid interval: start %v is greater than end %v", starts[i], ends[i])
		}
		ivs[i] = allen.Interval[T]{Start: starts[i], End: ends[i]}
	}
	return ivs, nil
}

// ToSlices splits intervals into parallel start and end slices, reusing
// starts and ends when they have sufficient capacity.
func ToSlices[T cmp.Ordered](ivs []allen.Interval[T], starts, ends []T) (startsOut, endsOut []T) {
	if cap(starts) < len(ivs) {
		starts = make([]T, len(ivs))
	} else {
		starts = starts[:len(ivs)]
	}
	if cap(ends) < len(ivs) {
		ends = make([]T, len(ivs))
	} else {
		ends = ends[:len(ivs)]
	}
	for i, iv := range ivs {
		starts[i] = iv.Start
		ends[i] = iv.End
	}
	return starts, ends
}
