package models

import (
	"unicode"

	appErrors "github.com/noah-isme/course-registration-api/pkg/errors"
)

const (
	maxPrefixLetters   = 4
	courseNumberDigits = 3
)

type codeState int

const (
	stateInitial codeState = iota
	stateLetter
	stateDigit
	stateSuffix
)

// CourseCodeValidator is a finite-state acceptor for course codes: one to
// four letters, exactly three digits and an optional one letter suffix.
// A validator keeps state between characters and is not safe for concurrent
// use; IsValid resets it on every call.
type CourseCodeValidator struct {
	state       codeState
	letterCount int
	digitCount  int
}

// NewCourseCodeValidator returns a validator in its initial state.
func NewCourseCodeValidator() *CourseCodeValidator {
	return &CourseCodeValidator{}
}

// IsValid feeds code through the machine. It returns ErrInvalidTransition
// with a descriptive message on the first illegal character, otherwise
// whether the machine stopped in an accepting state.
func (v *CourseCodeValidator) IsValid(code string) (bool, error) {
	v.state = stateInitial
	v.letterCount = 0
	v.digitCount = 0

	for _, c := range code {
		var err error
		switch {
		case unicode.IsLetter(c):
			err = v.onLetter()
		case unicode.IsDigit(c):
			err = v.onDigit()
		default:
			err = invalidTransition("Course name can only contain letters and digits.")
		}
		if err != nil {
			return false, err
		}
	}

	return v.accepting(), nil
}

func (v *CourseCodeValidator) accepting() bool {
	switch v.state {
	case stateDigit:
		return v.digitCount == courseNumberDigits
	case stateSuffix:
		return true
	}
	return false
}

func (v *CourseCodeValidator) onLetter() error {
	switch v.state {
	case stateInitial:
		v.state = stateLetter
		v.letterCount++
	case stateLetter:
		if v.letterCount >= maxPrefixLetters {
			return invalidTransition("Course name cannot start with more than 4 letters.")
		}
		v.letterCount++
	case stateDigit:
		if v.digitCount != courseNumberDigits {
			return invalidTransition("Course name must have 3 digits.")
		}
		v.state = stateSuffix
	case stateSuffix:
		return invalidTransition("Course name can only have a 1 letter suffix.")
	}
	return nil
}

func (v *CourseCodeValidator) onDigit() error {
	switch v.state {
	case stateInitial:
		return invalidTransition("Course name must start with a letter.")
	case stateLetter:
		v.state = stateDigit
		v.digitCount++
	case stateDigit:
		if v.digitCount >= courseNumberDigits {
			return invalidTransition("Course name can only have 3 digits.")
		}
		v.digitCount++
	case stateSuffix:
		return invalidTransition("Course name cannot contain digits after the suffix.")
	}
	return nil
}

func invalidTransition(message string) error {
	return appErrors.Clone(appErrors.ErrInvalidTransition, message)
}
