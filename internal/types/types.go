// Package types holds all shared data structures (models) used across
// the application. Keeping them in one place prevents import cycles —
// the dataset loader, comparison model, grid renderer, and handlers can
// all import types without depending on each other.
package types

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

// Dinosaur is one record of the static dataset.
// It is immutable once loaded: nothing in the application writes to it.
//
// The JSON keys follow the dataset file ("where" / "when"). Older files
// name the same fields "habitat" / "period"; UnmarshalJSON accepts both.
type Dinosaur struct {
	Species string  `json:"species"`
	Weight  Measure `json:"weight"` // pounds
	Height  Measure `json:"height"` // inches
	Diet    string  `json:"diet"`
	Where   string  `json:"where"`
	When    string  `json:"when"`
	Fact    string  `json:"fact"`
}

// UnmarshalJSON decodes a dataset record, falling back to the
// "habitat" and "period" aliases when "where" and "when" are absent.
func (d *Dinosaur) UnmarshalJSON(data []byte) error {
	// The local alias type has the same fields but none of the methods,
	// so decoding into it does not recurse back into UnmarshalJSON.
	type plain Dinosaur
	var raw struct {
		plain
		Habitat string `json:"habitat"`
		Period  string `json:"period"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	*d = Dinosaur(raw.plain)
	if d.Where == "" {
		d.Where = raw.Habitat
	}
	if d.When == "" {
		d.When = raw.Period
	}
	return nil
}

// Measure is a numeric dataset field. Some records store numbers as
// strings (e.g. "height": "372"), so both JSON forms are accepted.
type Measure float64

// UnmarshalJSON accepts a JSON number or a string holding a number.
func (m *Measure) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*m = 0
		return nil
	}

	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return fmt.Errorf("measure %q is not a number", s)
		}
		*m = Measure(f)
		return nil
	}

	var f float64
	if err := json.Unmarshal(data, &f); err != nil {
		return err
	}
	*m = Measure(f)
	return nil
}

// Human is the body-measurement input collected from the form.
// A fresh value is created for every submission and dropped on retry.
//
// Field order matters: validator/v10 reports failing fields in struct
// order, which is the order the form shows its messages
// (name, feet, inches, weight).
type Human struct {
	Name   string  `json:"name"   validate:"required,min=3"`
	Feet   float64 `json:"feet"   validate:"gte=1"`
	Inches float64 `json:"inches" validate:"gte=1"`
	Weight float64 `json:"weight" validate:"gte=1"`
	Diet   string  `json:"diet"`
}

// HeightInches is the human's total height in inches.
func (h Human) HeightInches() float64 {
	return h.Feet*12 + h.Inches
}

// ComparedDinosaur is a Dinosaur extended with its comparison against
// one Human. Computed once per submission, never persisted.
type ComparedDinosaur struct {
	Dinosaur

	HeightRatio     float64 `json:"heightRatio"`
	WeightRatio     float64 `json:"weightRatio"`
	DietDescription string  `json:"dietDescription"`
}

// Tile is one rendered grid cell: a dinosaur or the human.
type Tile struct {
	Heading string `json:"heading"`
	Image   string `json:"image"`
	Fact    string `json:"fact"`
	IsHuman bool   `json:"isHuman"`
}
