package allen

// The predicates below are boolean projections of FromIntervals, one per
// relation. They are derived, never independently implemented, so they
// cannot drift from the classifier.

// Relate returns the relation of s to t.
func (s NonEmpty[T]) Relate(t NonEmpty[T]) Relation {
	return FromIntervals(s, t)
}

// Precedes reports whether s ends strictly before t begins.
func (s NonEmpty[T]) Precedes(t NonEmpty[T]) bool {
	return FromIntervals(s, t) == Relation{Kind: KindPrecedes}
}

// IsPrecededBy reports whether t ends strictly before s begins.
func (s NonEmpty[T]) IsPrecededBy(t NonEmpty[T]) bool {
	return FromIntervals(s, t) == Relation{Kind: KindPrecedes, Inverted: true}
}

// Meets reports whether s ends exactly where t begins.
func (s NonEmpty[T]) Meets(t NonEmpty[T]) bool {
	return FromIntervals(s, t) == Relation{Kind: KindMeets}
}

// IsMetBy reports whether t ends exactly where s begins.
func (s NonEmpty[T]) IsMetBy(t NonEmpty[T]) bool {
	return FromIntervals(s, t) == Relation{Kind: KindMeets, Inverted: true}
}

// Overlaps reports whether s begins before t, ends inside t, and shares no
// boundary with it.
func (s NonEmpty[T]) Overlaps(t NonEmpty[T]) bool {
	return FromIntervals(s, t) == Relation{Kind: KindOverlaps}
}

// IsOverlappedBy reports whether t begins before s, ends inside s, and
// shares no boundary with it.
func (s NonEmpty[T]) IsOverlappedBy(t NonEmpty[T]) bool {
	return FromIntervals(s, t) == Relation{Kind: KindOverlaps, Inverted: true}
}

// Starts reports whether s and t begin together and s ends first.
func (s NonEmpty[T]) Starts(t NonEmpty[T]) bool {
	return FromIntervals(s, t) == Relation{Kind: KindStarts}
}

// IsStartedBy reports whether s and t begin together and t ends first.
func (s NonEmpty[T]) IsStartedBy(t NonEmpty[T]) bool {
	return FromIntervals(s, t) == Relation{Kind: KindStarts, Inverted: true}
}

// Finishes reports whether s and t end together and s begins last.
func (s NonEmpty[T]) Finishes(t NonEmpty[T]) bool {
	return FromIntervals(s, t) == Relation{Kind: KindFinishes}
}

// IsFinishedBy reports whether s and t end together and t begins last.
func (s NonEmpty[T]) IsFinishedBy(t NonEmpty[T]) bool {
	return FromIntervals(s, t) == Relation{Kind: KindFinishes, Inverted: true}
}

// Contains reports whether s strictly encloses t on both sides.
func (s NonEmpty[T]) Contains(t NonEmpty[T]) bool {
	return FromIntervals(s, t) == Relation{Kind: KindContains}
}

// IsContainedBy reports whether t strictly encloses s on both sides.
func (s NonEmpty[T]) IsContainedBy(t NonEmpty[T]) bool {
	return FromIntervals(s, t) == Relation{Kind: KindContains, Inverted: true}
}

// Equals reports whether s and t share both boundaries.
func (s NonEmpty[T]) Equals(t NonEmpty[T]) bool {
	return FromIntervals(s, t) == Relation{Kind: KindEquals}
}
