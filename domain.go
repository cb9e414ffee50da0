package allen

import "fmt"

// Domain selects between discrete (quantized) and continuous time
// semantics.
//
// The classifier is domain invariant: once two intervals hold resolved
// half-open boundary values, touching boundaries classify as Meets in
// either domain, and no epsilon comparisons exist for continuous domains.
// The domain matters upstream, when inclusive literals are resolved into
// Interval values: a discrete value has unit width, so an inclusive end x
// resolves to the exclusive boundary x+1, while a continuous value has zero
// width and an inclusive end resolves to x itself. See the ranges package.
type Domain uint8

const (
	// Discrete marks quantized time, e.g. integer-keyed periods.
	Discrete Domain = iota
	// Continuous marks unquantized time, e.g. real-valued instants.
	Continuous
)

func (d Domain) String() string {
	switch d {
	case Discrete:
		return "discrete"
	case Continuous:
		return "continuous"
	default:
		return fmt.Sprintf("domain(%d)", uint8(d))
	}
}
