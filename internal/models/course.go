package models

import (
	"strings"
	"unicode"

	appErrors "github.com/noah-isme/course-registration-api/pkg/errors"
)

const (
	minCodeLength = 5
	maxCodeLength = 8
	sectionLength = 3
	// MinCredits is the smallest credit value a course can carry.
	MinCredits = 1
	// MaxCredits is the largest credit value a course can carry.
	MaxCredits = 5
)

// Course is a catalogued section of a course. It owns its Roster.
type Course struct {
	Activity
	code         string
	section      string
	credits      int
	instructorID string
	roster       *Roster
}

// NewCourse validates every field and builds a Course with an empty roster
// capped at enrollmentCap. Pass ArrangedDays with zero times for courses
// without a fixed meeting.
func NewCourse(code, title, section string, credits int, instructorID string, enrollmentCap int, meetingDays string, startTime, endTime int) (*Course, error) {
	c := &Course{}
	if err := c.Activity.SetTitle(title); err != nil {
		return nil, err
	}
	if err := c.Activity.SetMeetingDaysAndTime(meetingDays, startTime, endTime); err != nil {
		return nil, err
	}
	if err := validateCode(code); err != nil {
		return nil, err
	}
	c.code = code
	if err := c.SetSection(section); err != nil {
		return nil, err
	}
	if err := c.SetCredits(credits); err != nil {
		return nil, err
	}
	if err := c.SetInstructorID(instructorID); err != nil {
		return nil, err
	}
	roster, err := newRoster(c, enrollmentCap)
	if err != nil {
		return nil, err
	}
	c.roster = roster
	return c, nil
}

func validateCode(code string) error {
	invalid := appErrors.Clone(appErrors.ErrValidation, "Invalid course name.")
	if len(code) < minCodeLength || len(code) > maxCodeLength {
		return invalid
	}
	if ok, err := NewCourseCodeValidator().IsValid(code); err != nil || !ok {
		return invalid
	}
	return nil
}

// Code returns the course code, e.g. "CSC216".
func (c *Course) Code() string { return c.code }

// Section returns the three digit section.
func (c *Course) Section() string { return c.section }

// Credits returns the credit hours.
func (c *Course) Credits() int { return c.credits }

// InstructorID returns the assigned instructor or "" when unassigned.
func (c *Course) InstructorID() string { return c.instructorID }

// Roster returns the course roster.
func (c *Course) Roster() *Roster { return c.roster }

// SetSection replaces the section.
func (c *Course) SetSection(section string) error {
	if len(section) != sectionLength {
		return appErrors.Clone(appErrors.ErrValidation, "Invalid section.")
	}
	for _, r := range section {
		if !unicode.IsDigit(r) {
			return appErrors.Clone(appErrors.ErrValidation, "Invalid section.")
		}
	}
	c.section = section
	return nil
}

// SetCredits replaces the credit hours.
func (c *Course) SetCredits(credits int) error {
	if credits < MinCredits || credits > MaxCredits {
		return appErrors.Clone(appErrors.ErrValidation, "Invalid credits.")
	}
	c.credits = credits
	return nil
}

// SetInstructorID assigns an instructor; "" leaves the course unassigned.
func (c *Course) SetInstructorID(instructorID string) error {
	if instructorID != "" && strings.TrimSpace(instructorID) == "" {
		return appErrors.Clone(appErrors.ErrValidation, "Invalid instructor id.")
	}
	c.instructorID = instructorID
	return nil
}

// IsDuplicate reports whether other has the same course code.
func (c *Course) IsDuplicate(other *Course) bool {
	return other != nil && c.code == other.code
}

// Compare orders courses by code, then section.
func (c *Course) Compare(other *Course) int {
	if cmp := strings.Compare(c.code, other.code); cmp != 0 {
		return cmp
	}
	return strings.Compare(c.section, other.section)
}

// Equal compares courses by value; the roster is not part of the value.
func (c *Course) Equal(other *Course) bool {
	if c == nil || other == nil {
		return c == other
	}
	return c.Activity.Equal(&other.Activity) &&
		c.code == other.code &&
		c.section == other.section &&
		c.credits == other.credits &&
		c.instructorID == other.instructorID
}

// ShortDisplay returns the row shown in catalog and schedule listings.
func (c *Course) ShortDisplay() CourseRow {
	return CourseRow{
		Code:      c.code,
		Section:   c.section,
		Title:     c.Title(),
		Meeting:   c.MeetingString(),
		OpenSeats: c.roster.OpenSeats(),
	}
}

// CourseRow is a read-only display row for a course.
type CourseRow struct {
	Code      string `json:"code"`
	Section   string `json:"section"`
	Title     string `json:"title"`
	Meeting   string `json:"meeting"`
	OpenSeats int    `json:"openSeats"`
}
