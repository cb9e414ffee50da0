package span

import (
	"cmp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/allenintervals/allen"
)

func mustNonEmpty[T cmp.Ordered](t *testing.T, s Span[T]) NonEmpty[T] {
	t.Helper()
	ne, err := s.NonEmpty()
	require.NoError(t, err)
	return ne
}

func TestSpanIsEmpty(t *testing.T) {
	testCases := []struct {
		name     string
		span     Span[int]
		expected bool
	}{
		{"bounded valid", Between(1, 4), false},
		{"bounded zero width", Between(4, 4), true},
		{"bounded inverted", Between(8, 1), true},
		{"from", From(5), false},
		{"to", To(5), false},
		{"full", Full[int](), false},
		{"zero value is full", Span[int]{}, false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, tc.span.IsEmpty())
			_, err := tc.span.NonEmpty()
			if tc.expected {
				require.ErrorIs(t, err, allen.ErrEmptyInterval)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestRelate(t *testing.T) {
	testCases := []struct {
		name     string
		s, t     Span[int]
		expected allen.Relation
	}{
		{"full equals full", Full[int](), Full[int](), allen.Relation{Kind: allen.KindEquals}},
		{"to meets from at shared boundary", To(5), From(5), allen.Relation{Kind: allen.KindMeets}},
		{"from is met by to", From(5), To(5), allen.Relation{Kind: allen.KindMeets, Inverted: true}},
		{"to precedes from across gap", To(3), From(7), allen.Relation{Kind: allen.KindPrecedes}},
		{"to overlaps from", To(7), From(3), allen.Relation{Kind: allen.KindOverlaps}},
		{"full contains bounded", Full[int](), Between(1, 4), allen.Relation{Kind: allen.KindContains}},
		{"bounded contained by full", Between(1, 4), Full[int](), allen.Relation{Kind: allen.KindContains, Inverted: true}},
		{"from started by bounded", From(3), Between(3, 7), allen.Relation{Kind: allen.KindStarts, Inverted: true}},
		{"bounded starts from", Between(3, 7), From(3), allen.Relation{Kind: allen.KindStarts}},
		{"bounded finishes to", Between(3, 7), To(7), allen.Relation{Kind: allen.KindFinishes}},
		{"to finished by bounded", To(7), Between(3, 7), allen.Relation{Kind: allen.KindFinishes, Inverted: true}},
		{"to starts full", To(7), Full[int](), allen.Relation{Kind: allen.KindStarts}},
		{"from finishes full", From(3), Full[int](), allen.Relation{Kind: allen.KindFinishes}},
		{"bounded precedes from", Between(1, 4), From(6), allen.Relation{Kind: allen.KindPrecedes}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			s := mustNonEmpty(t, tc.s)
			tt := mustNonEmpty(t, tc.t)
			assert.Equal(t, tc.expected, Relate(s, tt))
			assert.Equal(t, tc.expected, s.Relate(tt))

			// Swapping the operands must yield the converse.
			assert.Equal(t, tc.expected.Converse(), Relate(tt, s))
		})
	}
}

func TestRelateAgreesWithCoreOnBoundedSpans(t *testing.T) {
	// For fully bounded spans the classification must match the plain
	// interval classifier exactly.
	pairs := [][4]int{
		{1, 4, 5, 8},
		{1, 4, 4, 8},
		{1, 5, 3, 8},
		{1, 4, 1, 8},
		{5, 8, 1, 8},
		{3, 7, 4, 6},
		{2, 5, 2, 5},
	}

	for _, p := range pairs {
		s := mustNonEmpty(t, Between(p[0], p[1]))
		tt := mustNonEmpty(t, Between(p[2], p[3]))
		expected := allen.FromIntervals(allen.MustNonEmpty(p[0], p[1]), allen.MustNonEmpty(p[2], p[3]))
		assert.Equal(t, expected, Relate(s, tt))
	}
}

func TestBoundValue(t *testing.T) {
	v, ok := Bounded(42).Value()
	assert.True(t, ok)
	assert.Equal(t, 42, v)
	assert.True(t, Bounded(42).IsBounded())

	_, ok = Unbounded[int]().Value()
	assert.False(t, ok)
	assert.False(t, Unbounded[int]().IsBounded())
}

func TestSpanString(t *testing.T) {
	assert.Equal(t, "[1, 4)", Between(1, 4).String())
	assert.Equal(t, "[5, ..)", From(5).String())
	assert.Equal(t, "[.., 5)", To(5).String())
	assert.Equal(t, "[.., ..)", Full[int]().String())
}
