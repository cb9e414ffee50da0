// Package allen classifies the relation between two one-dimensional
// intervals according to Allen's interval algebra: thirteen mutually
// exclusive, jointly exhaustive, purely qualitative relations.
//
//	Allen, J. F. (1983). Maintaining knowledge about temporal intervals.
//	Communications of the ACM, 26(11), 832-843.
//
// Intervals are half-open [start, end) pairs over any ordered value type.
// The algebra is defined only for non-empty intervals, so classification
// accepts the NonEmpty type, obtained through the fallible
// Interval.NonEmpty conversion:
//
//	a := allen.MustNonEmpty(1, 4)
//	b := allen.MustNonEmpty(4, 8)
//	rel := allen.FromIntervals(a, b) // Relation{Kind: KindMeets}
//
// Everything is a pure function over immutable values; concurrent use needs
// no synchronization.
package allen
