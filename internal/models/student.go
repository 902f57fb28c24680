package models

import appErrors "github.com/noah-isme/course-registration-api/pkg/errors"

const (
	// MinStudentCredits is the smallest allowed credit load.
	MinStudentCredits = 3
	// MaxStudentCredits is the largest allowed credit load and the default.
	MaxStudentCredits = 18
)

// Student is a registrant with a credit limit and a schedule.
type Student struct {
	User
	maxCredits int
	schedule   *Schedule
}

// NewStudent validates and builds a Student with an empty schedule.
func NewStudent(firstName, lastName, id, email, passwordHash string, maxCredits int) (*Student, error) {
	user, err := newUser(firstName, lastName, id, email, passwordHash)
	if err != nil {
		return nil, err
	}
	s := &Student{User: user, schedule: NewSchedule()}
	if err := s.SetMaxCredits(maxCredits); err != nil {
		return nil, err
	}
	return s, nil
}

// MaxCredits returns the credit limit.
func (s *Student) MaxCredits() int { return s.maxCredits }

// Schedule returns the student's schedule.
func (s *Student) Schedule() *Schedule { return s.schedule }

// SetMaxCredits replaces the credit limit.
func (s *Student) SetMaxCredits(maxCredits int) error {
	if maxCredits < MinStudentCredits || maxCredits > MaxStudentCredits {
		return appErrors.Clone(appErrors.ErrValidation, "Invalid max credits")
	}
	s.maxCredits = maxCredits
	return nil
}

// CanAdd reports whether c fits the schedule and the credit limit.
func (s *Student) CanAdd(c *Course) bool {
	return s.CheckAdd(c) == nil
}

// CheckAdd explains why c cannot be added: the schedule's duplicate and
// conflict errors, or ErrCapacity when the credit limit would be exceeded.
func (s *Student) CheckAdd(c *Course) error {
	if err := s.schedule.CheckAdd(c); err != nil {
		return err
	}
	if s.schedule.ScheduleCredits()+c.Credits() > s.maxCredits {
		return appErrors.Clone(appErrors.ErrCapacity, "Exceeds max credits")
	}
	return nil
}

// Equal compares students by value.
func (s *Student) Equal(other *Student) bool {
	if s == nil || other == nil {
		return s == other
	}
	return s.User.equal(&other.User) && s.maxCredits == other.maxCredits
}

// Compare orders students by last name, first name, then id.
func (s *Student) Compare(other *Student) int {
	return s.User.compare(&other.User)
}
