package service

import (
	"context"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/noah-isme/course-registration-api/internal/dto"
	"github.com/noah-isme/course-registration-api/internal/models"
	appErrors "github.com/noah-isme/course-registration-api/pkg/errors"
)

type directoryRegistrar interface {
	WithdrawStudent(ctx context.Context, studentID string) (*models.Student, error)
	WithdrawFaculty(ctx context.Context, facultyID string) (*models.Faculty, error)
	View(fn func())
}

// DirectoryService manages the student and faculty directories.
type DirectoryService struct {
	students  studentStore
	faculty   facultyStore
	registrar directoryRegistrar
	hasher    PasswordHasher
	validator *validator.Validate
	logger    *zap.Logger
}

// NewDirectoryService constructs DirectoryService.
func NewDirectoryService(students studentStore, faculty facultyStore, registrar directoryRegistrar, hasher PasswordHasher, validate *validator.Validate, logger *zap.Logger) *DirectoryService {
	if hasher == nil {
		hasher = NewBcryptHasher(0)
	}
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DirectoryService{students: students, faculty: faculty, registrar: registrar, hasher: hasher, validator: validate, logger: logger}
}

// AddStudent registers a student. A zero MaxCredits means the default load.
func (s *DirectoryService) AddStudent(ctx context.Context, req dto.CreateStudentRequest) (*dto.StudentSummary, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid student payload")
	}
	hash, err := s.hashPassword(req.Password, req.RepeatPassword)
	if err != nil {
		return nil, err
	}
	maxCredits := req.MaxCredits
	if maxCredits == 0 {
		maxCredits = models.MaxStudentCredits
	}
	student, err := models.NewStudent(req.FirstName, req.LastName, req.ID, req.Email, hash, maxCredits)
	if err != nil {
		return nil, err
	}
	if err := s.students.Add(ctx, student); err != nil {
		return nil, storeError(err, "failed to add student")
	}
	s.logger.Info("student added", zap.String("student_id", student.ID()))
	summary := studentSummary(student)
	return &summary, nil
}

// RemoveStudent drops the student from every section and deletes the record.
func (s *DirectoryService) RemoveStudent(ctx context.Context, id string) error {
	if _, err := s.registrar.WithdrawStudent(ctx, id); err != nil {
		return err
	}
	s.logger.Info("student removed", zap.String("student_id", id))
	return nil
}

// GetStudent returns one student.
func (s *DirectoryService) GetStudent(ctx context.Context, id string) (*dto.StudentSummary, error) {
	student, err := s.students.FindByID(ctx, id)
	if err != nil {
		return nil, storeError(err, "failed to load student")
	}
	summary := studentSummary(student)
	return &summary, nil
}

// ListStudents returns the students ordered by last name, first name, then id.
func (s *DirectoryService) ListStudents(ctx context.Context) ([]dto.StudentSummary, error) {
	students, err := s.students.List(ctx)
	if err != nil {
		return nil, storeError(err, "failed to list students")
	}
	out := make([]dto.StudentSummary, 0, len(students))
	for _, st := range students {
		out = append(out, studentSummary(st))
	}
	return out, nil
}

// AddFaculty registers a faculty member.
func (s *DirectoryService) AddFaculty(ctx context.Context, req dto.CreateFacultyRequest) (*dto.FacultySummary, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid faculty payload")
	}
	hash, err := s.hashPassword(req.Password, req.RepeatPassword)
	if err != nil {
		return nil, err
	}
	member, err := models.NewFaculty(req.FirstName, req.LastName, req.ID, req.Email, hash, req.MaxCourses)
	if err != nil {
		return nil, err
	}
	if err := s.faculty.Add(ctx, member); err != nil {
		return nil, storeError(err, "failed to add faculty")
	}
	s.logger.Info("faculty added", zap.String("faculty_id", member.ID()))
	var summary dto.FacultySummary
	s.registrar.View(func() { summary = facultySummary(member) })
	return &summary, nil
}

// RemoveFaculty unassigns the member's sections and deletes the record.
func (s *DirectoryService) RemoveFaculty(ctx context.Context, id string) error {
	if _, err := s.registrar.WithdrawFaculty(ctx, id); err != nil {
		return err
	}
	s.logger.Info("faculty removed", zap.String("faculty_id", id))
	return nil
}

// ListFaculty returns faculty ordered by last name, first name, then id.
func (s *DirectoryService) ListFaculty(ctx context.Context) ([]dto.FacultySummary, error) {
	members, err := s.faculty.List(ctx)
	if err != nil {
		return nil, storeError(err, "failed to list faculty")
	}
	out := make([]dto.FacultySummary, 0, len(members))
	s.registrar.View(func() {
		for _, m := range members {
			out = append(out, facultySummary(m))
		}
	})
	return out, nil
}

func (s *DirectoryService) hashPassword(password, repeat string) (string, error) {
	if password != repeat {
		return "", appErrors.Clone(appErrors.ErrValidation, "Passwords do not match")
	}
	hash, err := s.hasher.Hash(password)
	if err != nil {
		return "", appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to hash password")
	}
	return hash, nil
}

func studentSummary(st *models.Student) dto.StudentSummary {
	return dto.StudentSummary{
		ID:         st.ID(),
		FirstName:  st.FirstName(),
		LastName:   st.LastName(),
		Email:      st.Email(),
		MaxCredits: st.MaxCredits(),
	}
}

func facultySummary(m *models.Faculty) dto.FacultySummary {
	return dto.FacultySummary{
		ID:         m.ID(),
		FirstName:  m.FirstName(),
		LastName:   m.LastName(),
		Email:      m.Email(),
		MaxCourses: m.MaxCourses(),
		Courses:    m.Schedule().NumScheduledCourses(),
		Overloaded: m.IsOverloaded(),
	}
}
