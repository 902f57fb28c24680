package dto

import "github.com/noah-isme/course-registration-api/internal/models"

// CreateCourseRequest defines the payload for adding a course section to
// the catalog. Field rules beyond presence are enforced by the model.
type CreateCourseRequest struct {
	Code          string `json:"code" validate:"required"`
	Title         string `json:"title" validate:"required"`
	Section       string `json:"section" validate:"required"`
	Credits       int    `json:"credits" validate:"required"`
	EnrollmentCap int    `json:"enrollmentCap" validate:"omitempty,min=0"`
	MeetingDays   string `json:"meetingDays" validate:"required"`
	StartTime     int    `json:"startTime" validate:"min=0"`
	EndTime       int    `json:"endTime" validate:"min=0"`
}

// CourseRef identifies a course section.
type CourseRef struct {
	Code    string `json:"code" validate:"required"`
	Section string `json:"section" validate:"required"`
}

// CourseSummary is a catalog listing row.
type CourseSummary struct {
	models.CourseRow
	Credits      int    `json:"credits"`
	InstructorID string `json:"instructorId,omitempty"`
	Waitlist     int    `json:"waitlist"`
}

// RosterSummary describes a section with its roster and waitlist.
type RosterSummary struct {
	CourseSummary
	EnrollmentCap int      `json:"enrollmentCap"`
	Enrolled      []string `json:"enrolled"`
	Waitlisted    []string `json:"waitlisted"`
}

// RosterLine is one student row of a roster export.
type RosterLine struct {
	StudentID string `json:"studentId" csv:"student_id"`
	FirstName string `json:"firstName" csv:"first_name"`
	LastName  string `json:"lastName" csv:"last_name"`
	Email     string `json:"email" csv:"email"`
	Status    string `json:"status" csv:"status"`
	Position  int    `json:"position" csv:"position"`
}

// Roster line statuses.
const (
	RosterStatusEnrolled   = "enrolled"
	RosterStatusWaitlisted = "waitlisted"
)

// EnrollmentCapRequest changes a section's enrollment cap.
type EnrollmentCapRequest struct {
	EnrollmentCap int `json:"enrollmentCap" validate:"required"`
}

// ValidateCodeRequest asks whether a course code is well formed.
type ValidateCodeRequest struct {
	Code string `json:"code" validate:"required"`
}

// ValidateCodeResult reports the outcome of a course code check.
type ValidateCodeResult struct {
	Code   string `json:"code"`
	Valid  bool   `json:"valid"`
	Reason string `json:"reason,omitempty"`
}
