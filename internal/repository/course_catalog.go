package repository

import (
	"cmp"
	"context"
	"fmt"
	"slices"
	"sync"

	"github.com/noah-isme/course-registration-api/internal/models"
	appErrors "github.com/noah-isme/course-registration-api/pkg/errors"
)

// CourseCatalog keeps the term's course sections ordered by code, then
// section.
type CourseCatalog struct {
	mu      sync.RWMutex
	courses []*models.Course
}

// NewCourseCatalog constructs an empty catalog.
func NewCourseCatalog() *CourseCatalog {
	return &CourseCatalog{}
}

// Add inserts c in order. A second section with the same code and section
// number is rejected.
func (r *CourseCatalog) Add(ctx context.Context, c *models.Course) error {
	if c == nil {
		return appErrors.Clone(appErrors.ErrNull, "Course cannot be nil.")
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	idx, found := slices.BinarySearchFunc(r.courses, c, (*models.Course).Compare)
	if found {
		return appErrors.Clone(appErrors.ErrDuplicate, fmt.Sprintf("%s-%s already exists in the catalog.", c.Code(), c.Section()))
	}
	r.courses = slices.Insert(r.courses, idx, c)
	return nil
}

// Find returns the section identified by code and section.
func (r *CourseCatalog) Find(ctx context.Context, code, section string) (*models.Course, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	idx, found := r.search(code, section)
	if !found {
		return nil, courseNotFound(code, section)
	}
	return r.courses[idx], nil
}

// Remove deletes and returns the section identified by code and section.
func (r *CourseCatalog) Remove(ctx context.Context, code, section string) (*models.Course, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	idx, found := r.search(code, section)
	if !found {
		return nil, courseNotFound(code, section)
	}
	removed := r.courses[idx]
	r.courses = slices.Delete(r.courses, idx, idx+1)
	return removed, nil
}

// List returns a snapshot of the catalog in order.
func (r *CourseCatalog) List(ctx context.Context) ([]*models.Course, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return slices.Clone(r.courses), nil
}

func (r *CourseCatalog) search(code, section string) (int, bool) {
	return slices.BinarySearchFunc(r.courses, [2]string{code, section}, func(c *models.Course, key [2]string) int {
		if n := cmp.Compare(c.Code(), key[0]); n != 0 {
			return n
		}
		return cmp.Compare(c.Section(), key[1])
	})
}

func courseNotFound(code, section string) error {
	return appErrors.Clone(appErrors.ErrNotFound, fmt.Sprintf("Course %s-%s does not exist.", code, section))
}
