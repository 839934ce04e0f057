// Package validation checks a submitted Human before any comparison runs.
//
// The rules live as validate:"..." tags on types.Human and are enforced by
// go-playground/validator. This package only translates each failing
// field into the sentence the form shows. Every rule is checked; nothing
// short-circuits, so a submission can produce up to four messages.
package validation

import (
	"errors"
	"fmt"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/aanand-mishra/dino-compare/internal/types"
)

// Messages shown by the form.
const (
	MsgNameMissing = "Please enter your name, human."
	MsgNameShort   = "Your name must be at least 3 characters long."
	MsgFeet        = "Feet must be a number greater than 0."
	MsgInches      = "Inches must be a number greater than 0."
	MsgWeight      = "Weight must be a number greater than 0."

	// MsgIncomplete is the summary line shown above the field messages.
	MsgIncomplete = "Please complete all fields"
)

var (
	validateOnce sync.Once
	validate     *validator.Validate
)

// instance returns the shared validator. validator.Validate caches struct
// metadata and is safe for concurrent use, so one is enough.
func instance() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
	})
	return validate
}

// Validate reports whether human is complete and, if not, every message
// in rule-check order: name, feet, inches, weight.
func Validate(human types.Human) (bool, []string) {
	err := instance().Struct(human)
	if err == nil {
		return true, nil
	}

	var validateErrs validator.ValidationErrors
	if !errors.As(err, &validateErrs) {
		// InvalidValidationError only happens for non-struct input.
		return false, []string{err.Error()}
	}
	return false, Messages(validateErrs)
}

// Messages converts validator field errors into form sentences.
func Messages(errs validator.ValidationErrors) []string {
	messages := make([]string, 0, len(errs))
	for _, e := range errs {
		messages = append(messages, message(e))
	}
	return messages
}

func message(e validator.FieldError) string {
	switch e.Field() {
	case "Name":
		if e.ActualTag() == "required" {
			return MsgNameMissing
		}
		return MsgNameShort
	case "Feet":
		return MsgFeet
	case "Inches":
		return MsgInches
	case "Weight":
		return MsgWeight
	default:
		return fmt.Sprintf("field %s is invalid", e.Field())
	}
}
