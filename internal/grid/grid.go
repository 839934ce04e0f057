// Package grid turns compared dinosaurs and a human into the ordered tile
// sequence shown on the page.
//
// All randomness comes through the Rand interface so callers (and tests)
// decide where the numbers come from. *rand.Rand from math/rand/v2
// satisfies it.
package grid

import (
	"fmt"
	"math/rand/v2"
	"strconv"

	"github.com/aanand-mishra/dino-compare/internal/types"
)

// HumanSlot is the tile index the human is inserted at.
const HumanSlot = 4

// HumanImageKey is the image key used for the human tile.
const HumanImageKey = "human"

// Rand is the random source used for shuffling and fact selection.
// IntN returns a uniformly distributed value in [0, n).
type Rand interface {
	IntN(n int) int
}

// NewRand returns a PCG-backed source. A non-zero seed gives the same
// sequence every time; zero seeds from the runtime's random state.
func NewRand(seed int64) Rand {
	if seed != 0 {
		return rand.New(rand.NewPCG(uint64(seed), uint64(seed)))
	}
	return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
}

// placeholders are entries in the dataset that are not really comparable
// (a pigeon is a dinosaur only by descent). Their tiles always show the
// fixed fact from the dataset.
var placeholders = map[string]bool{
	"Pigeon": true,
}

// IsPlaceholder reports whether species is a non-comparable entry.
func IsPlaceholder(species string) bool {
	return placeholders[species]
}

// Shuffle permutes s in place with the Fisher–Yates algorithm: walk from
// the last index down to 1 and swap each element with a uniformly chosen
// index in [0, i].
func Shuffle[T any](r Rand, s []T) {
	for i := len(s) - 1; i > 0; i-- {
		j := r.IntN(i + 1)
		s[i], s[j] = s[j], s[i]
	}
}

// Build shuffles dinos in place and returns the tile sequence: the first
// HumanSlot dinosaurs, then the human, then the rest. With fewer than
// HumanSlot dinosaurs the human comes last.
func Build(r Rand, dinos []types.ComparedDinosaur, human types.Human) []types.Tile {
	Shuffle(r, dinos)

	split := min(HumanSlot, len(dinos))
	tiles := make([]types.Tile, 0, len(dinos)+1)

	for _, d := range dinos[:split] {
		tiles = append(tiles, dinosaurTile(r, d))
	}
	tiles = append(tiles, humanTile(human))
	for _, d := range dinos[split:] {
		tiles = append(tiles, dinosaurTile(r, d))
	}

	return tiles
}

func humanTile(human types.Human) types.Tile {
	return types.Tile{
		Heading: human.Name,
		Image:   ImagePath(HumanImageKey),
		IsHuman: true,
	}
}

func dinosaurTile(r Rand, d types.ComparedDinosaur) types.Tile {
	return types.Tile{
		Heading: d.Species,
		Image:   ImagePath(d.Species),
		Fact:    RandomFact(r, d),
	}
}

// ImagePath is the image reference for a species (or the human key).
func ImagePath(key string) string {
	return "images/" + key + ".png"
}

// RandomFact picks the fact shown on a dinosaur tile. Placeholder entries
// always get their dataset fact; everything else gets one of six
// candidates chosen uniformly.
func RandomFact(r Rand, d types.ComparedDinosaur) string {
	if IsPlaceholder(d.Species) {
		return d.Fact
	}

	facts := Facts(d)
	return facts[r.IntN(len(facts))]
}

// Facts lists the six candidate facts for a dinosaur, in a fixed order.
//
// The weight sentence reuses "taller"/"shorter"; that wording is kept
// as-is until product decides otherwise (see DESIGN.md).
func Facts(d types.ComparedDinosaur) []string {
	return []string{
		d.DietDescription,
		d.Fact,
		fmt.Sprintf("The %s was %s %s than you.",
			d.Species, formatRatio(d.HeightRatio), tallerOrShorter(d.HeightRatio)),
		fmt.Sprintf("The %s was %s times %s than you.",
			d.Species, formatRatio(d.WeightRatio), tallerOrShorter(d.WeightRatio)),
		fmt.Sprintf("The %s existed during the %s period.", d.Species, d.When),
		fmt.Sprintf("The %s lived in %s.", d.Species, d.Where),
	}
}

func tallerOrShorter(ratio float64) string {
	if ratio > 1 {
		return "taller"
	}
	return "shorter"
}

// formatRatio prints the shortest decimal that round-trips, without an
// exponent (1000000, not 1e+06).
func formatRatio(ratio float64) string {
	return strconv.FormatFloat(ratio, 'f', -1, 64)
}
