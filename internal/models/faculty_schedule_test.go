package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appErrors "github.com/noah-isme/course-registration-api/pkg/errors"
)

func TestFacultyScheduleAssignsInstructor(t *testing.T) {
	schedule := NewFacultySchedule("sheckman")
	course := newTestCourse(t, "CSC216", "001", "MW", 1330, 1445)

	require.NoError(t, schedule.AddCourseToSchedule(course))
	assert.Equal(t, "sheckman", course.InstructorID())
	assert.ErrorIs(t, schedule.AddCourseToSchedule(course), appErrors.ErrDuplicate)
	assert.ErrorIs(t, schedule.AddCourseToSchedule(newTestCourse(t, "CSC226", "001", "W", 1400, 1500)), appErrors.ErrConflict)

	assert.True(t, schedule.RemoveCourseFromSchedule(course))
	assert.Empty(t, course.InstructorID())
	assert.Equal(t, 0, schedule.NumScheduledCourses())
}

func TestFacultyScheduleOfficeHours(t *testing.T) {
	schedule := NewFacultySchedule("sheckman")
	require.NoError(t, schedule.AddCourseToSchedule(newTestCourse(t, "CSC216", "001", "MW", 1330, 1445)))
	assert.Nil(t, schedule.OfficeHours())

	clashing, err := NewEvent("Office hours", "W", 1400, 1500, "EB2 3228")
	require.NoError(t, err)
	assert.ErrorIs(t, schedule.SetOfficeHours(clashing), appErrors.ErrConflict)
	assert.Nil(t, schedule.OfficeHours())

	free, err := NewEvent("Office hours", "TH", 1000, 1100, "EB2 3228")
	require.NoError(t, err)
	require.NoError(t, schedule.SetOfficeHours(free))
	assert.Same(t, free, schedule.OfficeHours())

	err = schedule.AddCourseToSchedule(newTestCourse(t, "CSC316", "001", "TH", 1030, 1145))
	assert.ErrorIs(t, err, appErrors.ErrConflict)
	assert.Equal(t, 1, schedule.NumScheduledCourses())

	schedule.ResetSchedule()
	assert.Same(t, free, schedule.OfficeHours())
	require.NoError(t, schedule.SetOfficeHours(nil))
	assert.Nil(t, schedule.OfficeHours())
}
