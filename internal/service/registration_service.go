package service

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/noah-isme/course-registration-api/internal/dto"
	"github.com/noah-isme/course-registration-api/internal/models"
	appErrors "github.com/noah-isme/course-registration-api/pkg/errors"
)

type courseStore interface {
	Add(ctx context.Context, c *models.Course) error
	Find(ctx context.Context, code, section string) (*models.Course, error)
	Remove(ctx context.Context, code, section string) (*models.Course, error)
	List(ctx context.Context) ([]*models.Course, error)
}

type studentStore interface {
	Add(ctx context.Context, s *models.Student) error
	FindByID(ctx context.Context, id string) (*models.Student, error)
	Remove(ctx context.Context, id string) (*models.Student, error)
	List(ctx context.Context) ([]*models.Student, error)
}

type facultyStore interface {
	Add(ctx context.Context, f *models.Faculty) error
	FindByID(ctx context.Context, id string) (*models.Faculty, error)
	Remove(ctx context.Context, id string) (*models.Faculty, error)
	List(ctx context.Context) ([]*models.Faculty, error)
}

type registrationMetrics interface {
	RecordEnrollment(outcome string)
	RecordDrop(fromWaitlist bool)
	RecordPromotion(promoted, skipped int)
}

// RegistrationService coordinates enrollment across the catalog and the
// directories. Every operation that touches rosters or schedules runs under
// one lock, so a waitlist promotion is never observed half done.
type RegistrationService struct {
	mu        sync.RWMutex
	courses   courseStore
	students  studentStore
	faculty   facultyStore
	metrics   registrationMetrics
	validator *validator.Validate
	logger    *zap.Logger
}

// NewRegistrationService constructs RegistrationService.
func NewRegistrationService(courses courseStore, students studentStore, faculty facultyStore, metrics registrationMetrics, validate *validator.Validate, logger *zap.Logger) *RegistrationService {
	if metrics == nil {
		metrics = (*MetricsService)(nil)
	}
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &RegistrationService{courses: courses, students: students, faculty: faculty, metrics: metrics, validator: validate, logger: logger}
}

// View runs fn while no registration change can happen.
func (s *RegistrationService) View(fn func()) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	fn()
}

// Enroll puts the student in the section when a seat is free and on the
// waitlist otherwise. Duplicate, conflict, credit and capacity failures are
// reported in the result rather than as errors.
func (s *RegistrationService) Enroll(ctx context.Context, studentID string, req dto.CourseRef) (*dto.EnrollmentResult, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid enrollment payload")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	student, err := s.students.FindByID(ctx, studentID)
	if err != nil {
		return nil, storeError(err, "failed to load student")
	}
	course, err := s.courses.Find(ctx, req.Code, req.Section)
	if err != nil {
		return nil, storeError(err, "failed to load course")
	}

	result := &dto.EnrollmentResult{StudentID: student.ID(), Code: course.Code(), Section: course.Section()}
	roster := course.Roster()
	if roster.IsWaitlisted(student) {
		return s.reject(result, fmt.Sprintf("You are already on the waitlist for %s", course.Code())), nil
	}
	if err := student.CheckAdd(course); err != nil {
		return s.reject(result, err.Error()), nil
	}
	if !roster.CanEnroll(student) {
		return s.reject(result, "The course and its waitlist are full"), nil
	}

	if roster.OpenSeats() == 0 {
		if err := roster.Enroll(student); err != nil {
			return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to waitlist student")
		}
		result.Enrolled = true
		result.Waitlisted = true
		s.metrics.RecordEnrollment(OutcomeWaitlisted)
		s.logger.Info("student waitlisted",
			zap.String("student_id", student.ID()),
			zap.String("course", courseKey(course)),
			zap.Int("position", roster.NumberOnWaitlist()))
		return result, nil
	}

	if err := student.Schedule().AddCourseToSchedule(course); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to schedule course")
	}
	if err := roster.Enroll(student); err != nil {
		student.Schedule().RemoveCourseFromSchedule(course)
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to enroll student")
	}
	result.Enrolled = true
	s.metrics.RecordEnrollment(OutcomeEnrolled)
	s.logger.Info("student enrolled", zap.String("student_id", student.ID()), zap.String("course", courseKey(course)))
	return result, nil
}

func (s *RegistrationService) reject(result *dto.EnrollmentResult, reason string) *dto.EnrollmentResult {
	result.Reason = reason
	s.metrics.RecordEnrollment(OutcomeRejected)
	s.logger.Debug("enrollment rejected",
		zap.String("student_id", result.StudentID),
		zap.String("course", result.Code+"-"+result.Section),
		zap.String("reason", reason))
	return result
}

// Drop removes the student from the section's roster or waitlist. A freed
// seat goes to the first waitlisted student whose schedule still accepts the
// course.
func (s *RegistrationService) Drop(ctx context.Context, studentID, code, section string) (*dto.DropResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	student, err := s.students.FindByID(ctx, studentID)
	if err != nil {
		return nil, storeError(err, "failed to load student")
	}
	course, err := s.courses.Find(ctx, code, section)
	if err != nil {
		return nil, storeError(err, "failed to load course")
	}
	return s.drop(student, course)
}

// drop expects s.mu to be held.
func (s *RegistrationService) drop(student *models.Student, course *models.Course) (*dto.DropResult, error) {
	outcome, err := course.Roster().Drop(student)
	if err != nil {
		if errors.Is(err, appErrors.ErrInternal) {
			s.logger.Error("waitlist promotion failed", zap.String("course", courseKey(course)), zap.Error(err))
		}
		return nil, err
	}
	if !outcome.FromWaitlist {
		student.Schedule().RemoveCourseFromSchedule(course)
	}

	result := &dto.DropResult{
		StudentID:    student.ID(),
		Code:         course.Code(),
		Section:      course.Section(),
		FromWaitlist: outcome.FromWaitlist,
	}
	for _, skipped := range outcome.Skipped {
		result.SkippedIDs = append(result.SkippedIDs, skipped.ID())
		s.logger.Warn("waitlisted student skipped",
			zap.String("student_id", skipped.ID()),
			zap.String("course", courseKey(course)))
	}
	promoted := 0
	if outcome.Promoted != nil {
		promoted = 1
		result.PromotedID = outcome.Promoted.ID()
		s.logger.Info("student promoted from waitlist",
			zap.String("student_id", outcome.Promoted.ID()),
			zap.String("course", courseKey(course)))
	}
	s.metrics.RecordDrop(outcome.FromWaitlist)
	s.metrics.RecordPromotion(promoted, len(outcome.Skipped))
	return result, nil
}

// ResetSchedule drops the student from every roster and waitlist in the
// catalog, then clears the schedule.
func (s *RegistrationService) ResetSchedule(ctx context.Context, studentID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	student, err := s.students.FindByID(ctx, studentID)
	if err != nil {
		return storeError(err, "failed to load student")
	}
	return s.releaseStudent(ctx, student)
}

// releaseStudent expects s.mu to be held.
func (s *RegistrationService) releaseStudent(ctx context.Context, student *models.Student) error {
	courses, err := s.courses.List(ctx)
	if err != nil {
		return storeError(err, "failed to list courses")
	}
	for _, course := range courses {
		roster := course.Roster()
		if !roster.IsEnrolled(student) && !roster.IsWaitlisted(student) {
			continue
		}
		if _, err := s.drop(student, course); err != nil {
			return err
		}
	}
	student.Schedule().ResetSchedule()
	return nil
}

// Schedule returns the student's schedule.
func (s *RegistrationService) Schedule(ctx context.Context, studentID string) (*dto.ScheduleView, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	student, err := s.students.FindByID(ctx, studentID)
	if err != nil {
		return nil, storeError(err, "failed to load student")
	}
	return scheduleView(student), nil
}

// SetScheduleTitle renames the student's schedule.
func (s *RegistrationService) SetScheduleTitle(ctx context.Context, studentID string, req dto.ScheduleTitleRequest) (*dto.ScheduleView, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid schedule title payload")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	student, err := s.students.FindByID(ctx, studentID)
	if err != nil {
		return nil, storeError(err, "failed to load student")
	}
	if err := student.Schedule().SetTitle(req.Title); err != nil {
		return nil, err
	}
	return scheduleView(student), nil
}

// AssignFaculty makes the faculty member the instructor of a section.
func (s *RegistrationService) AssignFaculty(ctx context.Context, facultyID string, req dto.CourseRef) (*dto.FacultyScheduleView, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid assignment payload")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	member, err := s.faculty.FindByID(ctx, facultyID)
	if err != nil {
		return nil, storeError(err, "failed to load faculty")
	}
	course, err := s.courses.Find(ctx, req.Code, req.Section)
	if err != nil {
		return nil, storeError(err, "failed to load course")
	}
	if owner := course.InstructorID(); owner != "" && owner != member.ID() {
		return nil, appErrors.Clone(appErrors.ErrDuplicate, fmt.Sprintf("%s is already taught by %s", courseKey(course), owner))
	}
	if err := member.Schedule().AddCourseToSchedule(course); err != nil {
		return nil, err
	}
	if member.IsOverloaded() {
		s.logger.Warn("faculty overloaded", zap.String("faculty_id", member.ID()), zap.Int("courses", member.Schedule().NumScheduledCourses()))
	}
	return facultyScheduleView(member), nil
}

// UnassignFaculty removes a section from the faculty member's schedule.
func (s *RegistrationService) UnassignFaculty(ctx context.Context, facultyID, code, section string) (*dto.FacultyScheduleView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	member, err := s.faculty.FindByID(ctx, facultyID)
	if err != nil {
		return nil, storeError(err, "failed to load faculty")
	}
	course, err := s.courses.Find(ctx, code, section)
	if err != nil {
		return nil, storeError(err, "failed to load course")
	}
	if !member.Schedule().RemoveCourseFromSchedule(course) {
		return nil, appErrors.Clone(appErrors.ErrNotFound, fmt.Sprintf("%s is not assigned to %s", courseKey(course), member.ID()))
	}
	return facultyScheduleView(member), nil
}

// ResetFacultySchedule unassigns every section from the faculty member.
func (s *RegistrationService) ResetFacultySchedule(ctx context.Context, facultyID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	member, err := s.faculty.FindByID(ctx, facultyID)
	if err != nil {
		return storeError(err, "failed to load faculty")
	}
	member.Schedule().ResetSchedule()
	return nil
}

// FacultySchedule lists the sections the faculty member teaches.
func (s *RegistrationService) FacultySchedule(ctx context.Context, facultyID string) (*dto.FacultyScheduleView, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	member, err := s.faculty.FindByID(ctx, facultyID)
	if err != nil {
		return nil, storeError(err, "failed to load faculty")
	}
	return facultyScheduleView(member), nil
}

// SetOfficeHours replaces the faculty member's office hours. Hours that
// overlap an assigned section are refused with ErrConflict.
func (s *RegistrationService) SetOfficeHours(ctx context.Context, facultyID string, req dto.OfficeHoursRequest) (*dto.FacultyScheduleView, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid office hours payload")
	}
	event, err := models.NewEvent("Office hours", req.MeetingDays, req.StartTime, req.EndTime, req.Details)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	member, err := s.faculty.FindByID(ctx, facultyID)
	if err != nil {
		return nil, storeError(err, "failed to load faculty")
	}
	if err := member.Schedule().SetOfficeHours(event); err != nil {
		return nil, err
	}
	s.logger.Info("office hours set", zap.String("faculty_id", member.ID()), zap.String("meeting", event.MeetingString()))
	return facultyScheduleView(member), nil
}

// ClearOfficeHours removes the faculty member's office hours.
func (s *RegistrationService) ClearOfficeHours(ctx context.Context, facultyID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	member, err := s.faculty.FindByID(ctx, facultyID)
	if err != nil {
		return storeError(err, "failed to load faculty")
	}
	return member.Schedule().SetOfficeHours(nil)
}

// SetEnrollmentCap changes a section's enrollment cap. Seats opened by a
// raise go to the waitlist in order.
func (s *RegistrationService) SetEnrollmentCap(ctx context.Context, code, section string, req dto.EnrollmentCapRequest) (*dto.RosterSummary, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid enrollment cap payload")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	course, err := s.courses.Find(ctx, code, section)
	if err != nil {
		return nil, storeError(err, "failed to load course")
	}
	if err := course.Roster().SetEnrollmentCap(req.EnrollmentCap); err != nil {
		return nil, err
	}
	s.logger.Info("enrollment cap changed", zap.String("course", courseKey(course)), zap.Int("cap", req.EnrollmentCap))

	filled, err := course.Roster().FillOpenSeats()
	for _, skipped := range filled.Skipped {
		s.logger.Warn("waitlisted student skipped",
			zap.String("student_id", skipped.ID()),
			zap.String("course", courseKey(course)))
	}
	for _, promoted := range filled.Promoted {
		s.logger.Info("student promoted from waitlist",
			zap.String("student_id", promoted.ID()),
			zap.String("course", courseKey(course)))
	}
	s.metrics.RecordPromotion(len(filled.Promoted), len(filled.Skipped))
	if err != nil {
		s.logger.Error("waitlist promotion failed", zap.String("course", courseKey(course)), zap.Error(err))
		return nil, err
	}
	return rosterSummary(course), nil
}

// RosterSummary describes a section with its roster and waitlist.
func (s *RegistrationService) RosterSummary(ctx context.Context, code, section string) (*dto.RosterSummary, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	course, err := s.courses.Find(ctx, code, section)
	if err != nil {
		return nil, storeError(err, "failed to load course")
	}
	return rosterSummary(course), nil
}

// RosterLines lists the enrolled students followed by the waitlist.
func (s *RegistrationService) RosterLines(ctx context.Context, code, section string) ([]dto.RosterLine, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	course, err := s.courses.Find(ctx, code, section)
	if err != nil {
		return nil, storeError(err, "failed to load course")
	}
	roster := course.Roster()
	lines := make([]dto.RosterLine, 0, len(roster.Students())+roster.NumberOnWaitlist())
	for i, st := range roster.Students() {
		lines = append(lines, rosterLine(st, dto.RosterStatusEnrolled, i+1))
	}
	for i, st := range roster.Waitlist() {
		lines = append(lines, rosterLine(st, dto.RosterStatusWaitlisted, i+1))
	}
	return lines, nil
}

// WithdrawCourse removes a section from the catalog after dropping every
// student from it and unassigning its instructor.
func (s *RegistrationService) WithdrawCourse(ctx context.Context, code, section string) (*models.Course, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	course, err := s.courses.Find(ctx, code, section)
	if err != nil {
		return nil, storeError(err, "failed to load course")
	}
	roster := course.Roster()
	for _, st := range roster.Waitlist() {
		if _, err := roster.Drop(st); err != nil {
			return nil, err
		}
	}
	for _, st := range roster.Students() {
		if _, err := roster.Drop(st); err != nil {
			return nil, err
		}
		st.Schedule().RemoveCourseFromSchedule(course)
	}
	if owner := course.InstructorID(); owner != "" {
		if member, err := s.faculty.FindByID(ctx, owner); err == nil {
			member.Schedule().RemoveCourseFromSchedule(course)
		}
	}
	removed, err := s.courses.Remove(ctx, code, section)
	if err != nil {
		return nil, storeError(err, "failed to remove course")
	}
	s.logger.Info("course withdrawn", zap.String("course", courseKey(removed)))
	return removed, nil
}

// WithdrawStudent releases the student's seats and waitlist spots and
// removes the student from the directory.
func (s *RegistrationService) WithdrawStudent(ctx context.Context, studentID string) (*models.Student, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	student, err := s.students.FindByID(ctx, studentID)
	if err != nil {
		return nil, storeError(err, "failed to load student")
	}
	if err := s.releaseStudent(ctx, student); err != nil {
		return nil, err
	}
	return s.students.Remove(ctx, studentID)
}

// WithdrawFaculty unassigns the faculty member's sections and removes the
// member from the directory.
func (s *RegistrationService) WithdrawFaculty(ctx context.Context, facultyID string) (*models.Faculty, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	member, err := s.faculty.FindByID(ctx, facultyID)
	if err != nil {
		return nil, storeError(err, "failed to load faculty")
	}
	member.Schedule().ResetSchedule()
	return s.faculty.Remove(ctx, facultyID)
}

func storeError(err error, message string) error {
	var appErr *appErrors.Error
	if errors.As(err, &appErr) {
		return err
	}
	return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, message)
}

func courseKey(c *models.Course) string {
	return c.Code() + "-" + c.Section()
}

func scheduleView(student *models.Student) *dto.ScheduleView {
	schedule := student.Schedule()
	return &dto.ScheduleView{
		StudentID: student.ID(),
		Title:     schedule.Title(),
		Credits:   schedule.ScheduleCredits(),
		Courses:   schedule.ScheduledCourses(),
	}
}

func facultyScheduleView(member *models.Faculty) *dto.FacultyScheduleView {
	view := &dto.FacultyScheduleView{
		FacultyID:  member.ID(),
		Overloaded: member.IsOverloaded(),
		Courses:    member.Schedule().ScheduledCourses(),
	}
	if hours := member.Schedule().OfficeHours(); hours != nil {
		view.OfficeHours = &dto.OfficeHoursView{Meeting: hours.MeetingString(), Details: hours.Details()}
	}
	return view
}

func courseSummary(c *models.Course) dto.CourseSummary {
	return dto.CourseSummary{
		CourseRow:    c.ShortDisplay(),
		Credits:      c.Credits(),
		InstructorID: c.InstructorID(),
		Waitlist:     c.Roster().NumberOnWaitlist(),
	}
}

func rosterSummary(c *models.Course) *dto.RosterSummary {
	roster := c.Roster()
	summary := &dto.RosterSummary{
		CourseSummary: courseSummary(c),
		EnrollmentCap: roster.EnrollmentCap(),
		Enrolled:      []string{},
		Waitlisted:    []string{},
	}
	for _, st := range roster.Students() {
		summary.Enrolled = append(summary.Enrolled, st.ID())
	}
	for _, st := range roster.Waitlist() {
		summary.Waitlisted = append(summary.Waitlisted, st.ID())
	}
	return summary
}

func rosterLine(st *models.Student, status string, position int) dto.RosterLine {
	return dto.RosterLine{
		StudentID: st.ID(),
		FirstName: st.FirstName(),
		LastName:  st.LastName(),
		Email:     st.Email(),
		Status:    status,
		Position:  position,
	}
}
