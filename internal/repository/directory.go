package repository

import (
	"context"
	"fmt"
	"slices"
	"sync"

	"github.com/noah-isme/course-registration-api/internal/models"
	appErrors "github.com/noah-isme/course-registration-api/pkg/errors"
)

// StudentDirectory stores the registered students keyed by id.
type StudentDirectory struct {
	mu       sync.RWMutex
	students map[string]*models.Student
}

// NewStudentDirectory constructs an empty directory.
func NewStudentDirectory() *StudentDirectory {
	return &StudentDirectory{students: make(map[string]*models.Student)}
}

// Add registers s; ids are unique.
func (r *StudentDirectory) Add(ctx context.Context, s *models.Student) error {
	if s == nil {
		return appErrors.Clone(appErrors.ErrNull, "Student cannot be nil.")
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.students[s.ID()]; exists {
		return appErrors.Clone(appErrors.ErrDuplicate, "Student already in system")
	}
	r.students[s.ID()] = s
	return nil
}

// FindByID returns the student with the given id.
func (r *StudentDirectory) FindByID(ctx context.Context, id string) (*models.Student, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.students[id]
	if !ok {
		return nil, appErrors.Clone(appErrors.ErrNotFound, fmt.Sprintf("Student %s does not exist.", id))
	}
	return s, nil
}

// Remove deletes and returns the student with the given id.
func (r *StudentDirectory) Remove(ctx context.Context, id string) (*models.Student, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.students[id]
	if !ok {
		return nil, appErrors.Clone(appErrors.ErrNotFound, fmt.Sprintf("Student %s does not exist.", id))
	}
	delete(r.students, id)
	return s, nil
}

// List returns the students ordered by last name, first name, then id.
func (r *StudentDirectory) List(ctx context.Context) ([]*models.Student, error) {
	r.mu.RLock()
	out := make([]*models.Student, 0, len(r.students))
	for _, s := range r.students {
		out = append(out, s)
	}
	r.mu.RUnlock()
	slices.SortFunc(out, (*models.Student).Compare)
	return out, nil
}

// FacultyDirectory stores faculty members keyed by id.
type FacultyDirectory struct {
	mu      sync.RWMutex
	faculty map[string]*models.Faculty
}

// NewFacultyDirectory constructs an empty directory.
func NewFacultyDirectory() *FacultyDirectory {
	return &FacultyDirectory{faculty: make(map[string]*models.Faculty)}
}

// Add registers f; ids are unique.
func (r *FacultyDirectory) Add(ctx context.Context, f *models.Faculty) error {
	if f == nil {
		return appErrors.Clone(appErrors.ErrNull, "Faculty cannot be nil.")
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.faculty[f.ID()]; exists {
		return appErrors.Clone(appErrors.ErrDuplicate, "Faculty already in system")
	}
	r.faculty[f.ID()] = f
	return nil
}

// FindByID returns the faculty member with the given id.
func (r *FacultyDirectory) FindByID(ctx context.Context, id string) (*models.Faculty, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	f, ok := r.faculty[id]
	if !ok {
		return nil, appErrors.Clone(appErrors.ErrNotFound, fmt.Sprintf("Faculty %s does not exist.", id))
	}
	return f, nil
}

// Remove deletes and returns the faculty member with the given id.
func (r *FacultyDirectory) Remove(ctx context.Context, id string) (*models.Faculty, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	f, ok := r.faculty[id]
	if !ok {
		return nil, appErrors.Clone(appErrors.ErrNotFound, fmt.Sprintf("Faculty %s does not exist.", id))
	}
	delete(r.faculty, id)
	return f, nil
}

// List returns faculty ordered by last name, first name, then id.
func (r *FacultyDirectory) List(ctx context.Context) ([]*models.Faculty, error) {
	r.mu.RLock()
	out := make([]*models.Faculty, 0, len(r.faculty))
	for _, f := range r.faculty {
		out = append(out, f)
	}
	r.mu.RUnlock()
	slices.SortFunc(out, (*models.Faculty).Compare)
	return out, nil
}
