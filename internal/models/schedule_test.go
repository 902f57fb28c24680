package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appErrors "github.com/noah-isme/course-registration-api/pkg/errors"
)

func TestScheduleAddCourse(t *testing.T) {
	s := NewSchedule()
	assert.Equal(t, DefaultScheduleTitle, s.Title())

	csc216 := newTestCourse(t, "CSC216", "001", "MW", 1330, 1445)
	csc226 := newTestCourse(t, "CSC226", "001", "TH", 1330, 1445)
	require.NoError(t, s.AddCourseToSchedule(csc216))
	require.NoError(t, s.AddCourseToSchedule(csc226))

	assert.Equal(t, 6, s.ScheduleCredits())
	assert.Equal(t, []CourseRow{
		{Code: "CSC216", Section: "001", Title: "Title CSC216", Meeting: "MW 1:30PM-2:45PM", OpenSeats: 10},
		{Code: "CSC226", Section: "001", Title: "Title CSC226", Meeting: "TH 1:30PM-2:45PM", OpenSeats: 10},
	}, s.ScheduledCourses())
}

func TestScheduleRejectsDuplicateCode(t *testing.T) {
	s := NewSchedule()
	require.NoError(t, s.AddCourseToSchedule(newTestCourse(t, "CSC216", "001", "MW", 1330, 1445)))

	other := newTestCourse(t, "CSC216", "002", "F", 800, 900)
	assert.False(t, s.CanAdd(other))
	err := s.AddCourseToSchedule(other)
	assert.ErrorIs(t, err, appErrors.ErrDuplicate)
	assert.Equal(t, "You are already enrolled in CSC216", err.Error())
}

func TestScheduleRejectsConflict(t *testing.T) {
	s := NewSchedule()
	require.NoError(t, s.AddCourseToSchedule(newTestCourse(t, "CSC216", "001", "MW", 1330, 1445)))

	clash := newTestCourse(t, "MA141", "001", "M", 1300, 1425)
	assert.False(t, s.CanAdd(clash))
	err := s.AddCourseToSchedule(clash)
	assert.ErrorIs(t, err, appErrors.ErrConflict)
	assert.Equal(t, "The course cannot be added due to a conflict", err.Error())
	assert.Len(t, s.Courses(), 1)
}

func TestScheduleArrangedCoursesCoexist(t *testing.T) {
	s := NewSchedule()
	require.NoError(t, s.AddCourseToSchedule(newTestCourse(t, "CSC216", "601", ArrangedDays, 0, 0)))
	require.NoError(t, s.AddCourseToSchedule(newTestCourse(t, "CSC226", "601", ArrangedDays, 0, 0)))
	assert.True(t, s.CanAdd(newTestCourse(t, "CSC316", "001", "MW", 0, 100)))
	assert.False(t, s.CanAdd(nil))
	assert.ErrorIs(t, s.AddCourseToSchedule(nil), appErrors.ErrValidation)
}

func TestScheduleRemoveCourse(t *testing.T) {
	s := NewSchedule()
	c := newTestCourse(t, "CSC216", "001", "MW", 1330, 1445)
	require.NoError(t, s.AddCourseToSchedule(c))

	sameCodeOtherSection := newTestCourse(t, "CSC216", "002", "MW", 1330, 1445)
	assert.False(t, s.RemoveCourseFromSchedule(sameCodeOtherSection))
	assert.False(t, s.RemoveCourseFromSchedule(nil))

	equalValue := newTestCourse(t, "CSC216", "001", "MW", 1330, 1445)
	assert.True(t, s.RemoveCourseFromSchedule(equalValue))
	assert.Empty(t, s.Courses())
	assert.False(t, s.RemoveCourseFromSchedule(c))
}

func TestScheduleResetIsIdempotent(t *testing.T) {
	s := NewSchedule()
	require.NoError(t, s.SetTitle("Spring"))
	require.NoError(t, s.AddCourseToSchedule(newTestCourse(t, "CSC216", "001", "MW", 1330, 1445)))

	s.ResetSchedule()
	assert.Empty(t, s.ScheduledCourses())
	assert.Equal(t, 0, s.ScheduleCredits())
	s.ResetSchedule()
	assert.Empty(t, s.ScheduledCourses())
	assert.Equal(t, "Spring", s.Title())

	assert.ErrorIs(t, s.SetTitle(""), appErrors.ErrValidation)
	assert.Equal(t, "Spring", s.Title())
}
