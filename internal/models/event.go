package models

import appErrors "github.com/noah-isme/course-registration-api/pkg/errors"

// Event is a non-course entry on a calendar, e.g. office hours. It takes
// part in conflict checks like a course but carries no roster.
type Event struct {
	Activity
	details string
}

// NewEvent builds an Event. Events always meet at a fixed time.
func NewEvent(title, meetingDays string, startTime, endTime int, details string) (*Event, error) {
	if meetingDays == ArrangedDays {
		return nil, appErrors.Clone(appErrors.ErrValidation, "Invalid meeting days and times.")
	}
	a, err := NewActivity(title, meetingDays, startTime, endTime)
	if err != nil {
		return nil, err
	}
	return &Event{Activity: *a, details: details}, nil
}

// Details returns the free-form event description.
func (e *Event) Details() string { return e.details }
