package models

import (
	"fmt"
	"strings"

	appErrors "github.com/noah-isme/course-registration-api/pkg/errors"
)

// ArrangedDays marks an activity without fixed meeting days or times.
const ArrangedDays = "A"

// WeekdayLetters lists the letters accepted as meeting days; Thursday is H.
const WeekdayLetters = "MTWHF"

const (
	upperHour   = 23
	upperMinute = 59
)

// Schedulable is anything that occupies days and an HHMM time range.
type Schedulable interface {
	MeetingDays() string
	StartTime() int
	EndTime() int
}

// CheckConflict reports ErrConflict when a and b share a meeting day and
// their time ranges overlap, both ends inclusive. Two arranged activities
// never conflict.
func CheckConflict(a, b Schedulable) error {
	if a == nil || b == nil {
		return nil
	}
	if a.MeetingDays() == ArrangedDays && b.MeetingDays() == ArrangedDays {
		return nil
	}
	if !strings.ContainsAny(a.MeetingDays(), b.MeetingDays()) {
		return nil
	}
	if a.StartTime() <= b.EndTime() && b.StartTime() <= a.EndTime() {
		return appErrors.Clone(appErrors.ErrConflict, "")
	}
	return nil
}

// Activity is a titled block of time shared by courses and other events.
type Activity struct {
	title       string
	meetingDays string
	startTime   int
	endTime     int
}

// NewActivity validates and builds an Activity.
func NewActivity(title, meetingDays string, startTime, endTime int) (*Activity, error) {
	a := &Activity{}
	if err := a.SetTitle(title); err != nil {
		return nil, err
	}
	if err := a.SetMeetingDaysAndTime(meetingDays, startTime, endTime); err != nil {
		return nil, err
	}
	return a, nil
}

// Title returns the activity title.
func (a *Activity) Title() string { return a.title }

// MeetingDays returns the meeting day letters or ArrangedDays.
func (a *Activity) MeetingDays() string { return a.meetingDays }

// StartTime returns the HHMM start time.
func (a *Activity) StartTime() int { return a.startTime }

// EndTime returns the HHMM end time.
func (a *Activity) EndTime() int { return a.endTime }

// IsArranged reports whether the activity has no fixed meeting time.
func (a *Activity) IsArranged() bool { return a.meetingDays == ArrangedDays }

// SetTitle replaces the title.
func (a *Activity) SetTitle(title string) error {
	if title == "" {
		return appErrors.Clone(appErrors.ErrValidation, "Invalid title.")
	}
	a.title = title
	return nil
}

// SetMeetingDaysAndTime replaces the meeting pattern. Nothing changes when
// the pattern is rejected.
func (a *Activity) SetMeetingDaysAndTime(meetingDays string, startTime, endTime int) error {
	if err := validateMeeting(meetingDays, startTime, endTime); err != nil {
		return err
	}
	a.meetingDays = meetingDays
	a.startTime = startTime
	a.endTime = endTime
	return nil
}

// CheckConflict reports whether other overlaps this activity.
func (a *Activity) CheckConflict(other Schedulable) error {
	return CheckConflict(a, other)
}

// MeetingString renders the meeting pattern, e.g. "MW 1:30PM-2:45PM".
func (a *Activity) MeetingString() string {
	if a.IsArranged() {
		return "Arranged"
	}
	return fmt.Sprintf("%s %s-%s", a.meetingDays, formatTime(a.startTime), formatTime(a.endTime))
}

// Equal compares activities by value.
func (a *Activity) Equal(other *Activity) bool {
	if a == nil || other == nil {
		return a == other
	}
	return a.title == other.title &&
		a.meetingDays == other.meetingDays &&
		a.startTime == other.startTime &&
		a.endTime == other.endTime
}

func validateMeeting(meetingDays string, startTime, endTime int) error {
	invalid := appErrors.Clone(appErrors.ErrValidation, "Invalid meeting days and times.")
	if meetingDays == "" {
		return invalid
	}
	if meetingDays == ArrangedDays {
		if startTime != 0 || endTime != 0 {
			return invalid
		}
		return nil
	}

	seen := make(map[rune]bool, len(WeekdayLetters))
	for _, day := range meetingDays {
		if !strings.ContainsRune(WeekdayLetters, day) || seen[day] {
			return invalid
		}
		seen[day] = true
	}

	if !validTime(startTime) || !validTime(endTime) || startTime > endTime {
		return invalid
	}
	return nil
}

func validTime(hhmm int) bool {
	hour, minute := hhmm/100, hhmm%100
	return hhmm >= 0 && hour <= upperHour && minute <= upperMinute
}

func formatTime(hhmm int) string {
	hour, minute := hhmm/100, hhmm%100
	suffix := "AM"
	switch {
	case hour == 0:
		hour = 12
	case hour == 12:
		suffix = "PM"
	case hour > 12:
		hour -= 12
		suffix = "PM"
	}
	return fmt.Sprintf("%d:%02d%s", hour, minute, suffix)
}
