// Package compare computes how one dinosaur measures up against a human.
//
// Everything here is a pure function of its inputs: no randomness and no
// I/O, so the results are deterministic and cheap to test.
package compare

import (
	"fmt"
	"strings"

	"github.com/aanand-mishra/dino-compare/internal/types"
)

// Compare extends dino with its height ratio, weight ratio and diet
// description relative to human.
//
// human must already be validated: heights and weights are assumed
// positive, so the divisions below never hit zero.
func Compare(dino types.Dinosaur, human types.Human) types.ComparedDinosaur {
	return types.ComparedDinosaur{
		Dinosaur:        dino,
		HeightRatio:     float64(dino.Height) / human.HeightInches(),
		WeightRatio:     float64(dino.Weight) / human.Weight,
		DietDescription: DietDescription(dino, human),
	}
}

// All compares every dinosaur against the same human. The input slice is
// left untouched; the result is a new slice in the same order.
func All(dinos []types.Dinosaur, human types.Human) []types.ComparedDinosaur {
	compared := make([]types.ComparedDinosaur, 0, len(dinos))
	for _, d := range dinos {
		compared = append(compared, Compare(d, human))
	}
	return compared
}

// DietDescription returns the affinity sentence when both diets match
// (ignoring case) and the contrast sentence otherwise.
func DietDescription(dino types.Dinosaur, human types.Human) string {
	if strings.EqualFold(strings.TrimSpace(human.Diet), strings.TrimSpace(dino.Diet)) {
		return fmt.Sprintf("You are both %ss, pretty cool!", human.Diet)
	}
	return fmt.Sprintf("You're a %s but the %s was a %s.", human.Diet, dino.Species, dino.Diet)
}
