package models

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	appErrors "github.com/noah-isme/course-registration-api/pkg/errors"
)

func TestRosterEnrollOneStudent(t *testing.T) {
	c := newCappedCourse(t, 50)
	s := newTestStudent(t, "s1")

	require.NoError(t, c.Roster().Enroll(s))
	assert.Equal(t, 49, c.Roster().OpenSeats())
	assert.True(t, c.Roster().IsEnrolled(s))
	assert.False(t, c.Roster().CanEnroll(s))
}

func TestRosterDropPromotesFromWaitlist(t *testing.T) {
	c := newCappedCourse(t, 10)
	roster := c.Roster()
	students := newTestStudents(t, 12)
	for _, s := range students {
		require.NoError(t, roster.Enroll(s))
	}
	require.Equal(t, 0, roster.OpenSeats())
	require.Equal(t, 2, roster.NumberOnWaitlist())

	result, err := roster.Drop(students[6])
	require.NoError(t, err)

	assert.Same(t, students[10], result.Promoted)
	assert.Empty(t, result.Skipped)
	assert.False(t, result.FromWaitlist)
	assert.True(t, roster.IsEnrolled(students[10]))
	assert.False(t, roster.IsEnrolled(students[6]))
	assert.Equal(t, []*Student{students[11]}, roster.Waitlist())
	assert.Equal(t, 0, roster.OpenSeats())
	assert.Equal(t, []*Course{c}, students[10].Schedule().Courses())
}

func TestRosterDropFromWaitlistKeepsOrder(t *testing.T) {
	c := newCappedCourse(t, 10)
	roster := c.Roster()
	students := newTestStudents(t, 15)
	for _, s := range students {
		require.NoError(t, roster.Enroll(s))
	}

	result, err := roster.Drop(students[12])
	require.NoError(t, err)
	assert.True(t, result.FromWaitlist)
	assert.Nil(t, result.Promoted)
	assert.Equal(t, []*Student{students[10], students[11], students[13], students[14]}, roster.Waitlist())
	assert.Equal(t, 0, roster.OpenSeats())
}

func TestRosterDropErrors(t *testing.T) {
	roster := newCappedCourse(t, 10).Roster()

	_, err := roster.Drop(nil)
	assert.ErrorIs(t, err, appErrors.ErrValidation)

	_, err = roster.Drop(newTestStudent(t, "ghost"))
	assert.ErrorIs(t, err, appErrors.ErrNotFound)
}

func TestRosterEnrollRejections(t *testing.T) {
	roster := newCappedCourse(t, 10).Roster()
	assert.False(t, roster.CanEnroll(nil))
	assert.ErrorIs(t, roster.Enroll(nil), appErrors.ErrValidation)

	students := newTestStudents(t, 21)
	for _, s := range students[:20] {
		require.NoError(t, roster.Enroll(s))
	}
	assert.ErrorIs(t, roster.Enroll(students[0]), appErrors.ErrValidation)
	assert.ErrorIs(t, roster.Enroll(students[15]), appErrors.ErrValidation)

	assert.False(t, roster.CanEnroll(students[20]))
	assert.ErrorIs(t, roster.Enroll(students[20]), appErrors.ErrValidation)
	assert.Equal(t, WaitlistCapacity, roster.NumberOnWaitlist())
}

func TestRosterSetEnrollmentCap(t *testing.T) {
	roster := newCappedCourse(t, 20).Roster()
	for _, s := range newTestStudents(t, 15) {
		require.NoError(t, roster.Enroll(s))
	}

	assert.ErrorIs(t, roster.SetEnrollmentCap(9), appErrors.ErrCapacity)
	assert.ErrorIs(t, roster.SetEnrollmentCap(251), appErrors.ErrCapacity)
	assert.ErrorIs(t, roster.SetEnrollmentCap(14), appErrors.ErrCapacity)
	assert.Equal(t, 20, roster.EnrollmentCap())

	require.NoError(t, roster.SetEnrollmentCap(15))
	assert.Equal(t, 0, roster.OpenSeats())
	require.NoError(t, roster.Enroll(newTestStudent(t, "late")))
	assert.Equal(t, 1, roster.NumberOnWaitlist())

	require.NoError(t, roster.SetEnrollmentCap(250))
	assert.Equal(t, 235, roster.OpenSeats())
}

func TestRosterFillOpenSeatsAfterCapRaise(t *testing.T) {
	c := newCappedCourse(t, 10)
	roster := c.Roster()
	students := newTestStudents(t, 14)
	for _, s := range students {
		require.NoError(t, roster.Enroll(s))
	}
	clash := newTestCourse(t, "MA141", "001", "W", 1300, 1400)
	require.NoError(t, students[11].Schedule().AddCourseToSchedule(clash))

	require.NoError(t, roster.SetEnrollmentCap(12))
	assert.Equal(t, 2, roster.OpenSeats())

	result, err := roster.FillOpenSeats()
	require.NoError(t, err)
	assert.Equal(t, []*Student{students[10], students[12]}, result.Promoted)
	assert.Equal(t, []*Student{students[11]}, result.Skipped)
	assert.Equal(t, []*Student{students[13]}, roster.Waitlist())
	assert.Equal(t, 0, roster.OpenSeats())
	assert.Equal(t, []*Course{c}, students[12].Schedule().Courses())

	result, err = roster.FillOpenSeats()
	require.NoError(t, err)
	assert.Empty(t, result.Promoted)
	assert.Empty(t, result.Skipped)
}

func TestRosterRequeueFrontRestoresWaitlistHead(t *testing.T) {
	roster := newCappedCourse(t, 10).Roster()
	students := newTestStudents(t, 13)
	for _, s := range students {
		require.NoError(t, roster.Enroll(s))
	}
	head, err := roster.waitlist.Dequeue()
	require.NoError(t, err)
	require.Same(t, students[10], head)

	require.NoError(t, roster.requeueFront(head))
	assert.Equal(t, []*Student{students[10], students[11], students[12]}, roster.Waitlist())
	assert.Equal(t, WaitlistCapacity, roster.waitlist.Capacity())
}

func TestRosterPromotionSkipsStudentsThatNoLongerFit(t *testing.T) {
	c := newCappedCourse(t, 10)
	roster := c.Roster()
	students := newTestStudents(t, 12)
	for _, s := range students {
		require.NoError(t, roster.Enroll(s))
	}

	clash := newTestCourse(t, "MA141", "001", "M", 1400, 1500)
	require.NoError(t, students[10].Schedule().AddCourseToSchedule(clash))

	result, err := roster.Drop(students[0])
	require.NoError(t, err)
	assert.Equal(t, []*Student{students[10]}, result.Skipped)
	assert.Same(t, students[11], result.Promoted)
	assert.False(t, roster.IsWaitlisted(students[10]))
	assert.Equal(t, 0, roster.NumberOnWaitlist())
	assert.Equal(t, 0, roster.OpenSeats())
}

func TestRosterInvariantsHoldUnderRandomOperations(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		enrollmentCap := rapid.IntRange(MinEnrollmentCap, 20).Draw(rt, "cap")
		roster := newCappedCourse(rt, enrollmentCap).Roster()
		pool := make([]*Student, 40)
		for i := range pool {
			pool[i] = newTestStudent(rt, fmt.Sprintf("p%d", i))
		}

		steps := rapid.IntRange(1, 200).Draw(rt, "steps")
		for i := 0; i < steps; i++ {
			s := pool[rapid.IntRange(0, len(pool)-1).Draw(rt, "student")]
			switch op := rapid.IntRange(0, 9).Draw(rt, "op"); {
			case op < 5:
				if roster.CanEnroll(s) {
					require.NoError(rt, roster.Enroll(s))
				}
			case op < 9:
				if roster.IsEnrolled(s) || roster.IsWaitlisted(s) {
					_, err := roster.Drop(s)
					require.NoError(rt, err)
				}
			default:
				lowest := len(roster.Students())
				if lowest < MinEnrollmentCap {
					lowest = MinEnrollmentCap
				}
				next := rapid.IntRange(lowest, 30).Draw(rt, "newCap")
				require.NoError(rt, roster.SetEnrollmentCap(next))
				_, err := roster.FillOpenSeats()
				require.NoError(rt, err)
				enrollmentCap = next
			}

			enrolled := len(roster.Students())
			waiting := roster.NumberOnWaitlist()
			if enrolled > enrollmentCap || waiting > WaitlistCapacity {
				rt.Fatalf("roster %d/%d waitlist %d/%d", enrolled, enrollmentCap, waiting, WaitlistCapacity)
			}
			if waiting > 0 && enrolled < enrollmentCap {
				rt.Fatalf("students waiting while %d seats are open", enrollmentCap-enrolled)
			}
			for _, w := range roster.Waitlist() {
				if roster.IsEnrolled(w) {
					rt.Fatalf("student %s is both enrolled and waitlisted", w.ID())
				}
			}
		}
	})
}

func TestRosterPromotesInWaitlistOrder(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		roster := newCappedCourse(rt, MinEnrollmentCap).Roster()
		extra := rapid.IntRange(1, WaitlistCapacity).Draw(rt, "extra")
		students := make([]*Student, 0, MinEnrollmentCap+extra)
		for i := 0; i < MinEnrollmentCap+extra; i++ {
			s := newTestStudent(rt, fmt.Sprintf("q%d", i))
			require.NoError(rt, roster.Enroll(s))
			students = append(students, s)
		}

		expected := students[MinEnrollmentCap:]
		for i := range expected {
			seated := roster.Students()
			victim := seated[rapid.IntRange(0, len(seated)-1).Draw(rt, "victim")]
			result, err := roster.Drop(victim)
			require.NoError(rt, err)
			if result.Promoted != expected[i] {
				rt.Fatalf("promotion %d: got %v want %s", i, result.Promoted, expected[i].ID())
			}
		}
		if roster.NumberOnWaitlist() != 0 {
			rt.Fatalf("waitlist not drained")
		}
	})
}
