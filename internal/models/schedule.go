package models

import (
	"fmt"

	"github.com/noah-isme/course-registration-api/pkg/collections"
	appErrors "github.com/noah-isme/course-registration-api/pkg/errors"
)

// DefaultScheduleTitle is the title of a new schedule.
const DefaultScheduleTitle = "My Schedule"

// Schedule is a student's ordered list of courses. No two courses share a
// code and no two courses conflict.
type Schedule struct {
	title   string
	courses *collections.ArrayList[*Course]
}

// NewSchedule returns an empty schedule with the default title.
func NewSchedule() *Schedule {
	return &Schedule{title: DefaultScheduleTitle, courses: collections.NewArrayList[*Course]()}
}

// Title returns the schedule title.
func (s *Schedule) Title() string { return s.title }

// SetTitle replaces the schedule title.
func (s *Schedule) SetTitle(title string) error {
	if title == "" {
		return appErrors.Clone(appErrors.ErrValidation, "Title cannot be empty.")
	}
	s.title = title
	return nil
}

// CanAdd reports whether AddCourseToSchedule would accept c.
func (s *Schedule) CanAdd(c *Course) bool {
	return s.CheckAdd(c) == nil
}

// CheckAdd returns the error AddCourseToSchedule would return for c: an
// ErrDuplicate when a course with the same code is present, ErrConflict
// when c overlaps an existing course.
func (s *Schedule) CheckAdd(c *Course) error {
	if c == nil {
		return appErrors.Clone(appErrors.ErrValidation, "Course cannot be nil.")
	}
	for _, existing := range s.courses.Values() {
		if existing.IsDuplicate(c) {
			return appErrors.Clone(appErrors.ErrDuplicate, fmt.Sprintf("You are already enrolled in %s", c.Code()))
		}
		if c.CheckConflict(existing) != nil {
			return appErrors.Clone(appErrors.ErrConflict, "The course cannot be added due to a conflict")
		}
	}
	return nil
}

// AddCourseToSchedule appends c when CheckAdd allows it.
func (s *Schedule) AddCourseToSchedule(c *Course) error {
	if err := s.CheckAdd(c); err != nil {
		return err
	}
	return s.courses.Add(c)
}

// RemoveCourseFromSchedule removes the first course equal to c and reports
// whether one was removed.
func (s *Schedule) RemoveCourseFromSchedule(c *Course) bool {
	idx := s.courses.IndexOf(c)
	if idx < 0 {
		return false
	}
	_, err := s.courses.Remove(idx)
	return err == nil
}

// ResetSchedule removes every course; the title is kept.
func (s *Schedule) ResetSchedule() {
	s.courses.Clear()
}

// ScheduleCredits returns the sum of the course credits.
func (s *Schedule) ScheduleCredits() int {
	total := 0
	for _, c := range s.courses.Values() {
		total += c.Credits()
	}
	return total
}

// Courses returns the scheduled courses in order.
func (s *Schedule) Courses() []*Course {
	return s.courses.Values()
}

// ScheduledCourses returns display rows for the scheduled courses.
func (s *Schedule) ScheduledCourses() []CourseRow {
	courses := s.courses.Values()
	rows := make([]CourseRow, 0, len(courses))
	for _, c := range courses {
		rows = append(rows, c.ShortDisplay())
	}
	return rows
}
