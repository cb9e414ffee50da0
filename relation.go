package allen

import (
	"cmp"
	"fmt"
)

// Kind identifies one of the seven relation families of Allen's interval
// algebra. Six of the families pair with a converse, carried as
// Relation.Inverted; Equals is its own converse.
type Kind uint8

const (
	KindPrecedes Kind = iota
	KindMeets
	KindOverlaps
	KindStarts
	KindFinishes
	KindContains
	KindEquals
)

func (k Kind) String() string {
	switch k {
	case KindPrecedes:
		return "precedes"
	case KindMeets:
		return "meets"
	case KindOverlaps:
		return "overlaps"
	case KindStarts:
		return "starts"
	case KindFinishes:
		return "finishes"
	case KindContains:
		return "contains"
	case KindEquals:
		return "equals"
	default:
		return fmt.Sprintf("kind(%d)", uint8(k))
	}
}

// Relation is one of the thirteen mutually exclusive, jointly exhaustive
// relations between two non-empty intervals s and t. The six asymmetric
// families collapse into one Kind each plus the Inverted flag; for example
// Relation{Kind: KindPrecedes} reads "s precedes t" and
// Relation{Kind: KindPrecedes, Inverted: true} reads "s is preceded by t".
type Relation struct {
	Kind Kind
	// Inverted distinguishes a relation from its converse. Always false
	// for Equals.
	Inverted bool
}

// FromIntervals returns the relation of s to t. It is total over non-empty
// intervals: exactly one of the thirteen relations holds for any pair, and
// FromIntervals(t, s) is always the converse of FromIntervals(s, t).
func FromIntervals[T cmp.Ordered](s, t NonEmpty[T]) Relation {
	return FromOrderings(
		cmp.Compare(s.start, t.start),
		cmp.Compare(s.start, t.end),
		cmp.Compare(s.end, t.start),
		cmp.Compare(s.end, t.end),
	)
}

// FromOrderings dispatches on the four boundary orderings of two non-empty
// intervals s and t, each -1, 0 or +1 in the manner of cmp.Compare:
//
//	bb: s.start vs t.start
//	be: s.start vs t.end
//	eb: s.end   vs t.start
//	ee: s.end   vs t.end
//
// The decomposition follows Georgala, Sherif & Ngonga Ngomo, "An efficient
// approach for the generation of Allen relations" (ECAI 2016). Callers with
// endpoint types outside cmp.Ordered can compute the orderings themselves
// and dispatch through this function; FromIntervals does exactly that for
// ordered types.
//
// Shared-boundary cases are matched before the strict-inequality cases: a
// shared boundary disqualifies proper overlap and containment, which is
// what keeps the thirteen outcomes mutually exclusive.
func FromOrderings(bb, be, eb, ee int) Relation {
	switch {
	case eb < 0:
		return Relation{Kind: KindPrecedes}
	case be > 0:
		return Relation{Kind: KindPrecedes, Inverted: true}
	case eb == 0:
		return Relation{Kind: KindMeets}
	case be == 0:
		return Relation{Kind: KindMeets, Inverted: true}
	case bb == 0 && ee == 0:
		return Relation{Kind: KindEquals}
	case bb == 0 && ee < 0:
		return Relation{Kind: KindStarts}
	case bb == 0: // ee > 0
		return Relation{Kind: KindStarts, Inverted: true}
	case ee == 0 && bb > 0:
		return Relation{Kind: KindFinishes}
	case ee == 0: // bb < 0
		return Relation{Kind: KindFinishes, Inverted: true}
	case bb < 0 && ee > 0:
		return Relation{Kind: KindContains}
	case bb > 0 && ee < 0:
		return Relation{Kind: KindContains, Inverted: true}
	case bb < 0: // ee < 0: s starts first and ends first
		return Relation{Kind: KindOverlaps}
	default: // bb > 0 && ee > 0
		return Relation{Kind: KindOverlaps, Inverted: true}
	}
}

// Converse returns the relation as seen from the other interval:
// FromIntervals(t, s) == FromIntervals(s, t).Converse() for all s, t.
func (r Relation) Converse() Relation {
	if r.Kind == KindEquals {
		return r
	}
	r.Inverted = !r.Inverted
	return r
}

// order indexes the thirteen relations by the degree to which s begins
// before t, then within that by the degree to which s ends before t.
func (r Relation) order() int {
	switch r {
	case Relation{Kind: KindPrecedes}:
		return 0
	case Relation{Kind: KindMeets}:
		return 1
	case Relation{Kind: KindOverlaps}:
		return 2
	case Relation{Kind: KindFinishes, Inverted: true}:
		return 3
	case Relation{Kind: KindContains}:
		return 4
	case Relation{Kind: KindStarts}:
		return 5
	case Relation{Kind: KindEquals}:
		return 6
	case Relation{Kind: KindStarts, Inverted: true}:
		return 7
	case Relation{Kind: KindContains, Inverted: true}:
		return 8
	case Relation{Kind: KindFinishes}:
		return 9
	case Relation{Kind: KindOverlaps, Inverted: true}:
		return 10
	case Relation{Kind: KindMeets, Inverted: true}:
		return 11
	default: // Precedes inverted
		return 12
	}
}

// Compare orders relations by how early s begins relative to t, then by how
// early s ends. The order is total over the thirteen outcomes, making
// relation lists sortable deterministically.
func (r Relation) Compare(other Relation) int {
	return cmp.Compare(r.order(), other.order())
}

func (r Relation) String() string {
	if !r.Inverted {
		return r.Kind.String()
	}
	switch r.Kind {
	case KindPrecedes:
		return "is preceded by"
	case KindMeets:
		return "is met by"
	case KindOverlaps:
		return "is overlapped by"
	case KindStarts:
		return "is started by"
	case KindFinishes:
		return "is finished by"
	case KindContains:
		return "is contained by"
	default:
		return r.Kind.String()
	}
}
