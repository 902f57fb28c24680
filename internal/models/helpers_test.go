package models

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func newTestStudent(t require.TestingT, id string) *Student {
	s, err := NewStudent("First"+id, "Last"+id, id, id+"@ncsu.edu", "hashed-pw", MaxStudentCredits)
	require.NoError(t, err)
	return s
}

func newTestStudents(t *testing.T, n int) []*Student {
	t.Helper()
	students := make([]*Student, 0, n)
	for i := 1; i <= n; i++ {
		students = append(students, newTestStudent(t, fmt.Sprintf("s%d", i)))
	}
	return students
}

func newTestCourse(t require.TestingT, code, section, days string, start, end int) *Course {
	c, err := NewCourse(code, "Title "+code, section, 3, "sesmith5", 10, days, start, end)
	require.NoError(t, err)
	return c
}

func newCappedCourse(t require.TestingT, enrollmentCap int) *Course {
	c, err := NewCourse("CSC216", "Software Development Fundamentals", "001", 3, "sesmith5", enrollmentCap, "MW", 1330, 1445)
	require.NoError(t, err)
	return c
}
