package core

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"msys2-buildqueue/internal/types"
)

func testUnit(name string, provides []string, makeDepends []string) *types.BuildUnit {
	unit := &types.BuildUnit{
		Name:        name,
		Packages:    setOf(name),
		Provides:    setOf(name),
		MakeDepends: setOf(makeDepends...),
	}
	for _, provide := range provides {
		unit.Provides[provide] = struct{}{}
	}
	return unit
}

func unitNames(units []*types.BuildUnit) []string {
	names := make([]string, 0, len(units))
	for _, unit := range units {
		names = append(names, unit.Name)
	}
	return names
}

func TestSequencerPlacesProviderBeforeConsumer(t *testing.T) {
	a := testUnit("a", nil, []string{"b"})
	b := testUnit("b", nil, nil)

	ordered := sequenceUnits(t.Context(), []*types.BuildUnit{a, b})
	assert.Equal(t, []string{"b", "a"}, unitNames(ordered))
}

func TestSequencerOrdersIndependentUnitsByProvides(t *testing.T) {
	zlib := testUnit("zlib", nil, nil)
	bzip2 := testUnit("bzip2", nil, nil)

	ordered := sequenceUnits(t.Context(), []*types.BuildUnit{zlib, bzip2})
	assert.Equal(t, []string{"bzip2", "zlib"}, unitNames(ordered))
}

func TestSequencerBreaksMutualCycleAtFewerMakeDepends(t *testing.T) {
	// a and b need each other; a carries fewer make-dependencies and is
	// placed first.
	a := testUnit("a", nil, []string{"b"})
	b := testUnit("b", nil, []string{"a", "extra"})

	ordered := sequenceUnits(t.Context(), []*types.BuildUnit{b, a})
	assert.Equal(t, []string{"a", "b"}, unitNames(ordered))
}

func TestSequencerFallsBackToRecordedCycleOption(t *testing.T) {
	// Every unit is blocked: p is mutual with q but also strictly needs
	// r, q loses the mutual tie-break, and r strictly needs q. The
	// recorded cycle option p breaks the deadlock.
	p := testUnit("p", nil, []string{"q", "r"})
	q := testUnit("q", nil, []string{"p", "z1", "z2"})
	r := testUnit("r", nil, []string{"q", "w1", "w2", "w3"})

	ordered := sequenceUnits(t.Context(), []*types.BuildUnit{r, q, p})
	assert.Equal(t, []string{"p", "q", "r"}, unitNames(ordered))
}

func TestSequencerFallsBackToFirstUnitOnStrictCycle(t *testing.T) {
	// A three-cycle with no mutual pair: every unit is strictly blocked
	// and the first remaining unit is forced through.
	a := testUnit("a", nil, []string{"b"})
	b := testUnit("b", nil, []string{"c"})
	c := testUnit("c", nil, []string{"a"})

	ordered := sequenceUnits(t.Context(), []*types.BuildUnit{c, b, a})
	assert.Equal(t, []string{"a", "c", "b"}, unitNames(ordered))
}

func TestSequencerIsDeterministic(t *testing.T) {
	build := func() []*types.BuildUnit {
		return []*types.BuildUnit{
			testUnit("gcc", []string{"cc"}, []string{"binutils"}),
			testUnit("binutils", nil, nil),
			testUnit("make", nil, []string{"cc"}),
			testUnit("cmake", nil, []string{"cc", "make"}),
		}
	}

	first := unitNames(sequenceUnits(t.Context(), build()))
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, unitNames(sequenceUnits(t.Context(), build())))
	}
}

func TestSequencerKeepsEveryUnitExactlyOnce(t *testing.T) {
	units := []*types.BuildUnit{
		testUnit("a", nil, []string{"b"}),
		testUnit("b", nil, []string{"a"}),
		testUnit("c", nil, nil),
	}

	ordered := sequenceUnits(t.Context(), units)
	assert.ElementsMatch(t, []string{"a", "b", "c"}, unitNames(ordered))
}
