package grid_test

import (
	"math/rand/v2"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aanand-mishra/dino-compare/internal/grid"
	"github.com/aanand-mishra/dino-compare/internal/types"
)

// scripted returns its values in order and then repeats the last one.
type scripted struct {
	values []int
	calls  []int
}

func (s *scripted) IntN(n int) int {
	s.calls = append(s.calls, n)
	if len(s.values) == 0 {
		return 0
	}
	v := s.values[0]
	if len(s.values) > 1 {
		s.values = s.values[1:]
	}
	return v % n
}

func compared(species ...string) []types.ComparedDinosaur {
	out := make([]types.ComparedDinosaur, 0, len(species))
	for _, s := range species {
		out = append(out, types.ComparedDinosaur{
			Dinosaur: types.Dinosaur{
				Species: s,
				Diet:    "herbivore",
				Where:   "North America",
				When:    "Late Cretaceous",
				Fact:    s + " fact",
			},
			HeightRatio:     2,
			WeightRatio:     0.5,
			DietDescription: "You are both Herbivores, pretty cool!",
		})
	}
	return out
}

var rex = types.Human{Name: "Rex", Feet: 5, Inches: 10, Weight: 180, Diet: "Herbivore"}

func TestShuffleIsPermutation(t *testing.T) {
	r := rand.New(rand.NewPCG(1, 2))
	want := []int{0, 1, 2, 3, 4, 5, 6, 7}

	seenMoved := false
	for run := 0; run < 50; run++ {
		s := append([]int(nil), want...)
		grid.Shuffle(r, s)

		require.Len(t, s, len(want))
		if !assert.ObjectsAreEqual(want, s) {
			seenMoved = true
		}
		sort.Ints(s)
		require.Equal(t, want, s)
	}
	assert.True(t, seenMoved, "50 shuffles never changed the order")
}

func TestShuffleWalksFromLastIndexDown(t *testing.T) {
	r := &scripted{values: []int{0}}
	s := []string{"a", "b", "c", "d"}

	grid.Shuffle(r, s)

	assert.Equal(t, []int{4, 3, 2}, r.calls)
	// i=3 swaps with 0, i=2 swaps with 0, i=1 swaps with 0.
	assert.Equal(t, []string{"b", "c", "d", "a"}, s)
}

func TestBuildPutsHumanAtFifthTile(t *testing.T) {
	r := rand.New(rand.NewPCG(7, 7))

	for run := 0; run < 20; run++ {
		tiles := grid.Build(r, compared("A", "B", "C", "D", "E", "F", "G"), rex)

		require.Len(t, tiles, 8)
		assert.True(t, tiles[grid.HumanSlot].IsHuman)
		assert.Equal(t, "Rex", tiles[grid.HumanSlot].Heading)
		assert.Equal(t, "images/human.png", tiles[grid.HumanSlot].Image)
		assert.Empty(t, tiles[grid.HumanSlot].Fact)

		humans := 0
		for _, tile := range tiles {
			assert.NotEmpty(t, tile.Heading)
			if tile.IsHuman {
				humans++
			}
		}
		assert.Equal(t, 1, humans)
	}
}

func TestBuildShortListPutsHumanLast(t *testing.T) {
	tiles := grid.Build(&scripted{}, compared("A", "B"), rex)

	require.Len(t, tiles, 3)
	assert.True(t, tiles[2].IsHuman)
}

func TestRandomFactPlaceholderUsesFixedFact(t *testing.T) {
	r := &scripted{values: []int{3}}
	pigeon := compared("Pigeon")[0]

	assert.Equal(t, "Pigeon fact", grid.RandomFact(r, pigeon))
	assert.Empty(t, r.calls, "placeholder must not consume randomness")
}

func TestRandomFactChoosesAmongSix(t *testing.T) {
	d := compared("Triceratops")[0]
	want := []string{
		"You are both Herbivores, pretty cool!",
		"Triceratops fact",
		"The Triceratops was 2 taller than you.",
		"The Triceratops was 0.5 times shorter than you.",
		"The Triceratops existed during the Late Cretaceous period.",
		"The Triceratops lived in North America.",
	}

	assert.Equal(t, want, grid.Facts(d))
	for i, fact := range want {
		r := &scripted{values: []int{i}}
		assert.Equal(t, fact, grid.RandomFact(r, d))
		assert.Equal(t, []int{6}, r.calls)
	}
}

func TestFactsRatioWording(t *testing.T) {
	d := compared("Brachiosaurus")[0]
	d.HeightRatio = 1
	d.WeightRatio = 1000000

	facts := grid.Facts(d)

	assert.Equal(t, "The Brachiosaurus was 1 shorter than you.", facts[2])
	assert.Equal(t, "The Brachiosaurus was 1000000 times taller than you.", facts[3])
}

func TestNewRandSeeded(t *testing.T) {
	a, b := grid.NewRand(11), grid.NewRand(11)
	for i := 0; i < 10; i++ {
		assert.Equal(t, a.IntN(1000), b.IntN(1000))
	}
}
