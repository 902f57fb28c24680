package dto

import "github.com/noah-isme/course-registration-api/internal/models"

// EnrollmentResult reports an enrollment attempt. A rejected attempt has
// Enrolled false and a Reason; a waitlisted one has Enrolled and Waitlisted.
type EnrollmentResult struct {
	StudentID  string `json:"studentId"`
	Code       string `json:"code"`
	Section    string `json:"section"`
	Enrolled   bool   `json:"enrolled"`
	Waitlisted bool   `json:"waitlisted"`
	Reason     string `json:"reason,omitempty"`
}

// DropResult reports a drop and any waitlist promotion it triggered.
type DropResult struct {
	StudentID    string   `json:"studentId"`
	Code         string   `json:"code"`
	Section      string   `json:"section"`
	FromWaitlist bool     `json:"fromWaitlist"`
	PromotedID   string   `json:"promotedId,omitempty"`
	SkippedIDs   []string `json:"skippedIds,omitempty"`
}

// ScheduleView is a student's schedule.
type ScheduleView struct {
	StudentID string             `json:"studentId"`
	Title     string             `json:"title"`
	Credits   int                `json:"credits"`
	Courses   []models.CourseRow `json:"courses"`
}

// ScheduleTitleRequest renames a schedule.
type ScheduleTitleRequest struct {
	Title string `json:"title" validate:"required"`
}

// FacultyScheduleView lists the sections a faculty member teaches.
type FacultyScheduleView struct {
	FacultyID   string             `json:"facultyId"`
	Overloaded  bool               `json:"overloaded"`
	Courses     []models.CourseRow `json:"courses"`
	OfficeHours *OfficeHoursView   `json:"officeHours,omitempty"`
}

// OfficeHoursRequest sets a faculty member's weekly office hours.
type OfficeHoursRequest struct {
	MeetingDays string `json:"meetingDays" validate:"required"`
	StartTime   int    `json:"startTime" validate:"min=0"`
	EndTime     int    `json:"endTime" validate:"min=0"`
	Details     string `json:"details" validate:"max=200"`
}

// OfficeHoursView renders office hours.
type OfficeHoursView struct {
	Meeting string `json:"meeting"`
	Details string `json:"details,omitempty"`
}
