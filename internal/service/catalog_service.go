package service

import (
	"context"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/noah-isme/course-registration-api/internal/dto"
	"github.com/noah-isme/course-registration-api/internal/models"
	appErrors "github.com/noah-isme/course-registration-api/pkg/errors"
)

type courseRegistrar interface {
	View(fn func())
	WithdrawCourse(ctx context.Context, code, section string) (*models.Course, error)
}

// CatalogService manages the course sections offered in the term.
type CatalogService struct {
	courses    courseStore
	registrar  courseRegistrar
	defaultCap int
	validator  *validator.Validate
	logger     *zap.Logger
}

// NewCatalogService constructs CatalogService. defaultCap is used when a
// request leaves the enrollment cap unset.
func NewCatalogService(courses courseStore, registrar courseRegistrar, defaultCap int, validate *validator.Validate, logger *zap.Logger) *CatalogService {
	if defaultCap == 0 {
		defaultCap = models.MinEnrollmentCap
	}
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CatalogService{courses: courses, registrar: registrar, defaultCap: defaultCap, validator: validate, logger: logger}
}

// Add builds a course section and places it in the catalog.
func (s *CatalogService) Add(ctx context.Context, req dto.CreateCourseRequest) (*dto.CourseSummary, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid course payload")
	}
	enrollmentCap := req.EnrollmentCap
	if enrollmentCap == 0 {
		enrollmentCap = s.defaultCap
	}
	course, err := models.NewCourse(req.Code, req.Title, req.Section, req.Credits, "", enrollmentCap, req.MeetingDays, req.StartTime, req.EndTime)
	if err != nil {
		return nil, err
	}
	if err := s.courses.Add(ctx, course); err != nil {
		return nil, storeError(err, "failed to add course")
	}
	s.logger.Info("course added", zap.String("course", courseKey(course)), zap.Int("cap", enrollmentCap))
	var summary dto.CourseSummary
	s.registrar.View(func() { summary = courseSummary(course) })
	return &summary, nil
}

// Remove withdraws a section from the catalog.
func (s *CatalogService) Remove(ctx context.Context, code, section string) error {
	_, err := s.registrar.WithdrawCourse(ctx, code, section)
	return err
}

// Get returns a section with its roster and waitlist.
func (s *CatalogService) Get(ctx context.Context, code, section string) (*dto.RosterSummary, error) {
	course, err := s.courses.Find(ctx, code, section)
	if err != nil {
		return nil, storeError(err, "failed to load course")
	}
	var summary *dto.RosterSummary
	s.registrar.View(func() {
		summary = rosterSummary(course)
	})
	return summary, nil
}

// List returns the catalog ordered by code, then section.
func (s *CatalogService) List(ctx context.Context) ([]dto.CourseSummary, error) {
	courses, err := s.courses.List(ctx)
	if err != nil {
		return nil, storeError(err, "failed to list courses")
	}
	out := make([]dto.CourseSummary, 0, len(courses))
	s.registrar.View(func() {
		for _, c := range courses {
			out = append(out, courseSummary(c))
		}
	})
	return out, nil
}

// ValidateCode runs the course code state machine over req.Code. A
// malformed code is a valid answer, not an error.
func (s *CatalogService) ValidateCode(ctx context.Context, req dto.ValidateCodeRequest) (*dto.ValidateCodeResult, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid course code payload")
	}
	result := &dto.ValidateCodeResult{Code: req.Code}
	valid, err := models.NewCourseCodeValidator().IsValid(req.Code)
	switch {
	case err != nil:
		result.Reason = err.Error()
	case !valid:
		result.Reason = "Course name is incomplete."
	default:
		result.Valid = true
	}
	return result, nil
}
