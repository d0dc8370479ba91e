package mapgen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateNamesUnique(t *testing.T) {
	names := generateNames(newTestRNG(), 40)
	require.Len(t, names, 40)

	seen := make(map[string]bool)
	for _, name := range names {
		assert.NotEmpty(t, name)
		assert.False(t, seen[name], "name %q duplicated", name)
		seen[name] = true
	}
}

func TestGenerateNamesDeterministic(t *testing.T) {
	a := generateNames(newTestRNG(), 10)
	b := generateNames(newTestRNG(), 10)
	assert.Equal(t, a, b)
}

func TestColorForIDCycles(t *testing.T) {
	assert.Equal(t, territoryColors[0], colorForID(0))
	assert.Equal(t, territoryColors[1], colorForID(1))
	assert.Equal(t, territoryColors[0], colorForID(len(territoryColors)))
}

func TestClassForSize(t *testing.T) {
	cfg := Config{MinTerritorySize: 3, MaxTerritorySize: 12}

	assert.Equal(t, SizeSmall, classForSize(3, cfg))
	assert.Equal(t, SizeMedium, classForSize(7, cfg))
	assert.Equal(t, SizeLarge, classForSize(12, cfg))

	// Degenerate bounds collapse to medium.
	assert.Equal(t, SizeMedium, classForSize(5, Config{MinTerritorySize: 8, MaxTerritorySize: 8}))
}

func TestSortedAccessors(t *testing.T) {
	terr := &Territory{
		HexKeys:   map[string]bool{"1,0": true, "0,0": true, "0,1": true},
		Neighbors: map[int]bool{3: true, 0: true, 2: true},
	}
	assert.Equal(t, []string{"0,0", "0,1", "1,0"}, terr.SortedHexKeys())
	assert.Equal(t, []int{0, 2, 3}, terr.SortedNeighbors())
}
