package models

import (
	appErrors "github.com/noah-isme/course-registration-api/pkg/errors"
)

const (
	// MinFacultyCourses is the smallest allowed teaching load.
	MinFacultyCourses = 1
	// MaxFacultyCourses is the largest allowed teaching load.
	MaxFacultyCourses = 3
)

// Faculty is an instructor with a teaching load.
type Faculty struct {
	User
	maxCourses int
	schedule   *FacultySchedule
}

// NewFaculty validates and builds a Faculty member with an empty schedule.
func NewFaculty(firstName, lastName, id, email, passwordHash string, maxCourses int) (*Faculty, error) {
	user, err := newUser(firstName, lastName, id, email, passwordHash)
	if err != nil {
		return nil, err
	}
	f := &Faculty{User: user}
	if err := f.SetMaxCourses(maxCourses); err != nil {
		return nil, err
	}
	f.schedule = NewFacultySchedule(id)
	return f, nil
}

// MaxCourses returns the teaching load limit.
func (f *Faculty) MaxCourses() int { return f.maxCourses }

// Schedule returns the courses taught.
func (f *Faculty) Schedule() *FacultySchedule { return f.schedule }

// SetMaxCourses replaces the teaching load limit.
func (f *Faculty) SetMaxCourses(maxCourses int) error {
	if maxCourses < MinFacultyCourses || maxCourses > MaxFacultyCourses {
		return appErrors.Clone(appErrors.ErrValidation, "Invalid max courses")
	}
	f.maxCourses = maxCourses
	return nil
}

// IsOverloaded reports whether the faculty member teaches more courses than
// allowed.
func (f *Faculty) IsOverloaded() bool {
	return f.schedule.NumScheduledCourses() > f.maxCourses
}

// Equal compares faculty by value.
func (f *Faculty) Equal(other *Faculty) bool {
	if f == nil || other == nil {
		return f == other
	}
	return f.User.equal(&other.User) && f.maxCourses == other.maxCourses
}

// Compare orders faculty by last name, first name, then id.
func (f *Faculty) Compare(other *Faculty) int {
	return f.User.compare(&other.User)
}
