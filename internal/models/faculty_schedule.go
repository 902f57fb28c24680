package models

import (
	"fmt"

	"github.com/noah-isme/course-registration-api/pkg/collections"
	appErrors "github.com/noah-isme/course-registration-api/pkg/errors"
)

// FacultySchedule lists the course sections a faculty member teaches and
// their weekly office hours. Adding a section assigns the faculty member as
// its instructor. Sections and office hours may not overlap.
type FacultySchedule struct {
	facultyID   string
	courses     *collections.ArrayList[*Course]
	officeHours *Event
}

// NewFacultySchedule returns an empty schedule for facultyID.
func NewFacultySchedule(facultyID string) *FacultySchedule {
	return &FacultySchedule{facultyID: facultyID, courses: collections.NewArrayList[*Course]()}
}

// AddCourseToSchedule assigns c to the faculty member.
func (s *FacultySchedule) AddCourseToSchedule(c *Course) error {
	if c == nil {
		return appErrors.Clone(appErrors.ErrValidation, "Course cannot be nil.")
	}
	for _, existing := range s.courses.Values() {
		if existing.Compare(c) == 0 {
			return appErrors.Clone(appErrors.ErrDuplicate, fmt.Sprintf("Already assigned to %s-%s", c.Code(), c.Section()))
		}
		if c.CheckConflict(existing) != nil {
			return appErrors.Clone(appErrors.ErrConflict, "The course cannot be assigned due to a conflict")
		}
	}
	if s.officeHours != nil && CheckConflict(c, s.officeHours) != nil {
		return appErrors.Clone(appErrors.ErrConflict, "The course cannot be assigned due to a conflict with office hours")
	}
	if err := s.courses.Add(c); err != nil {
		return err
	}
	c.instructorID = s.facultyID
	return nil
}

// RemoveCourseFromSchedule unassigns c and reports whether it was assigned.
func (s *FacultySchedule) RemoveCourseFromSchedule(c *Course) bool {
	idx := s.courses.IndexOf(c)
	if idx < 0 {
		return false
	}
	removed, err := s.courses.Remove(idx)
	if err != nil {
		return false
	}
	removed.instructorID = ""
	return true
}

// OfficeHours returns the office hours, or nil when none are set.
func (s *FacultySchedule) OfficeHours() *Event { return s.officeHours }

// SetOfficeHours replaces the office hours. A nil event clears them.
func (s *FacultySchedule) SetOfficeHours(e *Event) error {
	if e == nil {
		s.officeHours = nil
		return nil
	}
	for _, c := range s.courses.Values() {
		if CheckConflict(e, c) != nil {
			return appErrors.Clone(appErrors.ErrConflict, fmt.Sprintf("Office hours conflict with %s-%s", c.Code(), c.Section()))
		}
	}
	s.officeHours = e
	return nil
}

// ResetSchedule unassigns every course. Office hours are kept.
func (s *FacultySchedule) ResetSchedule() {
	for _, c := range s.courses.Values() {
		c.instructorID = ""
	}
	s.courses.Clear()
}

// NumScheduledCourses returns the number of assigned courses.
func (s *FacultySchedule) NumScheduledCourses() int {
	return s.courses.Size()
}

// ScheduledCourses returns display rows for the assigned courses.
func (s *FacultySchedule) ScheduledCourses() []CourseRow {
	courses := s.courses.Values()
	rows := make([]CourseRow, 0, len(courses))
	for _, c := range courses {
		rows = append(rows, c.ShortDisplay())
	}
	return rows
}
