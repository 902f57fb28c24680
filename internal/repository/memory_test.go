package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/course-registration-api/internal/models"
	appErrors "github.com/noah-isme/course-registration-api/pkg/errors"
)

func mustCourse(t *testing.T, code, section string) *models.Course {
	t.Helper()
	c, err := models.NewCourse(code, "Title "+code, section, 3, "", 10, "MW", 1330, 1445)
	require.NoError(t, err)
	return c
}

func mustStudent(t *testing.T, first, last, id string) *models.Student {
	t.Helper()
	s, err := models.NewStudent(first, last, id, id+"@ncsu.edu", "hash", models.MaxStudentCredits)
	require.NoError(t, err)
	return s
}

func TestCourseCatalogKeepsOrder(t *testing.T) {
	ctx := context.Background()
	repo := NewCourseCatalog()

	require.NoError(t, repo.Add(ctx, mustCourse(t, "CSC316", "001")))
	require.NoError(t, repo.Add(ctx, mustCourse(t, "CSC216", "002")))
	require.NoError(t, repo.Add(ctx, mustCourse(t, "CSC216", "001")))
	require.NoError(t, repo.Add(ctx, mustCourse(t, "CSC116", "001")))

	err := repo.Add(ctx, mustCourse(t, "CSC216", "001"))
	assert.ErrorIs(t, err, appErrors.ErrDuplicate)
	assert.ErrorIs(t, repo.Add(ctx, nil), appErrors.ErrNull)

	courses, err := repo.List(ctx)
	require.NoError(t, err)
	var keys []string
	for _, c := range courses {
		keys = append(keys, c.Code()+"-"+c.Section())
	}
	assert.Equal(t, []string{"CSC116-001", "CSC216-001", "CSC216-002", "CSC316-001"}, keys)
}

func TestCourseCatalogFindAndRemove(t *testing.T) {
	ctx := context.Background()
	repo := NewCourseCatalog()
	require.NoError(t, repo.Add(ctx, mustCourse(t, "CSC216", "001")))
	require.NoError(t, repo.Add(ctx, mustCourse(t, "CSC216", "002")))

	c, err := repo.Find(ctx, "CSC216", "002")
	require.NoError(t, err)
	assert.Equal(t, "002", c.Section())

	_, err = repo.Find(ctx, "CSC216", "003")
	assert.ErrorIs(t, err, appErrors.ErrNotFound)

	removed, err := repo.Remove(ctx, "CSC216", "001")
	require.NoError(t, err)
	assert.Equal(t, "001", removed.Section())
	_, err = repo.Remove(ctx, "CSC216", "001")
	assert.ErrorIs(t, err, appErrors.ErrNotFound)

	courses, _ := repo.List(ctx)
	assert.Len(t, courses, 1)
}

func TestStudentDirectory(t *testing.T) {
	ctx := context.Background()
	repo := NewStudentDirectory()

	require.NoError(t, repo.Add(ctx, mustStudent(t, "Zoe", "Adams", "zadams")))
	require.NoError(t, repo.Add(ctx, mustStudent(t, "Amy", "Adams", "aadams2")))
	require.NoError(t, repo.Add(ctx, mustStudent(t, "Amy", "Adams", "aadams")))
	require.NoError(t, repo.Add(ctx, mustStudent(t, "Bob", "Brown", "bbrown")))

	err := repo.Add(ctx, mustStudent(t, "Other", "Person", "bbrown"))
	assert.ErrorIs(t, err, appErrors.ErrDuplicate)
	assert.Equal(t, "Student already in system", err.Error())

	students, err := repo.List(ctx)
	require.NoError(t, err)
	var ids []string
	for _, s := range students {
		ids = append(ids, s.ID())
	}
	assert.Equal(t, []string{"aadams", "aadams2", "zadams", "bbrown"}, ids)

	_, err = repo.FindByID(ctx, "nobody")
	assert.ErrorIs(t, err, appErrors.ErrNotFound)

	removed, err := repo.Remove(ctx, "zadams")
	require.NoError(t, err)
	assert.Equal(t, "Zoe", removed.FirstName())
	_, err = repo.Remove(ctx, "zadams")
	assert.ErrorIs(t, err, appErrors.ErrNotFound)
}

func TestFacultyDirectory(t *testing.T) {
	ctx := context.Background()
	repo := NewFacultyDirectory()

	f1, err := models.NewFaculty("Sarah", "Heckman", "sheckman", "sheckman@ncsu.edu", "hash", 2)
	require.NoError(t, err)
	f2, err := models.NewFaculty("Jason", "King", "jking", "jking@ncsu.edu", "hash", 3)
	require.NoError(t, err)

	require.NoError(t, repo.Add(ctx, f2))
	require.NoError(t, repo.Add(ctx, f1))
	assert.ErrorIs(t, repo.Add(ctx, f1), appErrors.ErrDuplicate)

	list, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "sheckman", list[0].ID())

	found, err := repo.FindByID(ctx, "jking")
	require.NoError(t, err)
	assert.True(t, found.Equal(f2))

	_, err = repo.Remove(ctx, "jking")
	require.NoError(t, err)
	_, err = repo.FindByID(ctx, "jking")
	assert.ErrorIs(t, err, appErrors.ErrNotFound)
}
