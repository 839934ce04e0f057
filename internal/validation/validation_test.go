package validation_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"

	"github.com/aanand-mishra/dino-compare/internal/types"
	"github.com/aanand-mishra/dino-compare/internal/validation"
)

func valid() types.Human {
	return types.Human{Name: "Rex", Feet: 5, Inches: 10, Weight: 180, Diet: "Herbivore"}
}

func TestValidateAcceptsCompleteInput(t *testing.T) {
	for _, h := range []types.Human{
		valid(),
		{Name: "Ann", Feet: 1, Inches: 1, Weight: 1},
		{Name: "Bartholomew", Feet: 7, Inches: 11, Weight: 350.5, Diet: "Omnivore"},
	} {
		complete, messages := validation.Validate(h)
		assert.True(t, complete, "%+v", h)
		assert.Empty(t, messages)
	}
}

func TestValidateSingleRule(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*types.Human)
		want   string
	}{
		{"missing name", func(h *types.Human) { h.Name = "" }, validation.MsgNameMissing},
		{"short name", func(h *types.Human) { h.Name = "Al" }, validation.MsgNameShort},
		{"zero feet", func(h *types.Human) { h.Feet = 0 }, validation.MsgFeet},
		{"negative feet", func(h *types.Human) { h.Feet = -3 }, validation.MsgFeet},
		{"zero inches", func(h *types.Human) { h.Inches = 0 }, validation.MsgInches},
		{"fractional weight", func(h *types.Human) { h.Weight = 0.5 }, validation.MsgWeight},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := valid()
			tt.mutate(&h)

			complete, messages := validation.Validate(h)

			assert.False(t, complete)
			assert.Equal(t, []string{tt.want}, messages)
		})
	}
}

func TestValidateCollectsAllInRuleOrder(t *testing.T) {
	complete, messages := validation.Validate(types.Human{Name: "Jo"})

	want := []string{
		validation.MsgNameShort,
		validation.MsgFeet,
		validation.MsgInches,
		validation.MsgWeight,
	}
	assert.False(t, complete)
	if diff := cmp.Diff(want, messages); diff != "" {
		t.Fatalf("messages mismatch (-want +got):\n%s", diff)
	}
}

func TestValidateSkipsMiddleRules(t *testing.T) {
	h := valid()
	h.Name = ""
	h.Weight = 0

	_, messages := validation.Validate(h)

	assert.Equal(t, []string{validation.MsgNameMissing, validation.MsgWeight}, messages)
}
