package models

import (
	"github.com/noah-isme/course-registration-api/pkg/collections"
	appErrors "github.com/noah-isme/course-registration-api/pkg/errors"
)

const (
	// MinEnrollmentCap is the smallest allowed roster capacity.
	MinEnrollmentCap = 10
	// MaxEnrollmentCap is the largest allowed roster capacity.
	MaxEnrollmentCap = 250
	// WaitlistCapacity is the fixed size of every waitlist.
	WaitlistCapacity = 10
)

// Roster tracks the students holding a seat in a course and the students
// waiting for one. A student is in at most one of the two.
type Roster struct {
	course        *Course
	roll          *collections.LinkedList[*Student]
	waitlist      *collections.ArrayQueue[*Student]
	enrollmentCap int
}

// DropResult describes the side effects of Roster.Drop.
type DropResult struct {
	// FromWaitlist is true when the dropped student only held a waitlist spot.
	FromWaitlist bool
	// Promoted is the waitlisted student moved into the freed seat, if any.
	Promoted *Student
	// Skipped lists waitlisted students removed from the waitlist because
	// their schedule could no longer take the course.
	Skipped []*Student
}

// FillResult describes the promotions made by Roster.FillOpenSeats.
type FillResult struct {
	Promoted []*Student
	Skipped  []*Student
}

func newRoster(course *Course, enrollmentCap int) (*Roster, error) {
	if course == nil {
		return nil, appErrors.Clone(appErrors.ErrValidation, "Roster requires a course.")
	}
	if err := checkEnrollmentCap(enrollmentCap); err != nil {
		return nil, err
	}
	roll, err := collections.NewLinkedList[*Student](enrollmentCap)
	if err != nil {
		return nil, err
	}
	waitlist, err := collections.NewArrayQueue[*Student](WaitlistCapacity)
	if err != nil {
		return nil, err
	}
	return &Roster{course: course, roll: roll, waitlist: waitlist, enrollmentCap: enrollmentCap}, nil
}

func checkEnrollmentCap(n int) error {
	if n < MinEnrollmentCap || n > MaxEnrollmentCap {
		return appErrors.Clone(appErrors.ErrCapacity, "Invalid enrollment capacity.")
	}
	return nil
}

// Course returns the owning course.
func (r *Roster) Course() *Course { return r.course }

// EnrollmentCap returns the maximum roster size.
func (r *Roster) EnrollmentCap() int { return r.enrollmentCap }

// SetEnrollmentCap changes the maximum roster size. Raising the cap leaves
// the new seats open; FillOpenSeats moves the waitlist into them.
func (r *Roster) SetEnrollmentCap(n int) error {
	if err := checkEnrollmentCap(n); err != nil {
		return err
	}
	if n < r.roll.Size() {
		return appErrors.Clone(appErrors.ErrCapacity, "Enrollment capacity is below the current roster size.")
	}
	if err := r.roll.SetCapacity(n); err != nil {
		return err
	}
	r.enrollmentCap = n
	return nil
}

// OpenSeats returns the number of free seats.
func (r *Roster) OpenSeats() int {
	return r.enrollmentCap - r.roll.Size()
}

// NumberOnWaitlist returns the waitlist length.
func (r *Roster) NumberOnWaitlist() int {
	return r.waitlist.Size()
}

// IsEnrolled reports whether s holds a seat.
func (r *Roster) IsEnrolled(s *Student) bool {
	return r.roll.Contains(s)
}

// IsWaitlisted reports whether s is waiting for a seat.
func (r *Roster) IsWaitlisted(s *Student) bool {
	return r.waitlist.Contains(s)
}

// Students returns the enrolled students in enrollment order.
func (r *Roster) Students() []*Student {
	return r.roll.Values()
}

// Waitlist returns the waitlisted students from head to tail.
func (r *Roster) Waitlist() []*Student {
	return r.waitlist.Values()
}

// CanEnroll reports whether Enroll would accept s.
func (r *Roster) CanEnroll(s *Student) bool {
	if s == nil {
		return false
	}
	if r.roll.Size() >= r.enrollmentCap && r.waitlist.Size() >= WaitlistCapacity {
		return false
	}
	return !r.roll.Contains(s) && !r.waitlist.Contains(s)
}

// Enroll seats s when there is room and waitlists s otherwise.
func (r *Roster) Enroll(s *Student) error {
	if s == nil || !r.CanEnroll(s) {
		return appErrors.Clone(appErrors.ErrValidation, "Student cannot be enrolled.")
	}
	if r.roll.Size() < r.enrollmentCap {
		return r.roll.Add(s)
	}
	if r.waitlist.Size() >= WaitlistCapacity {
		return appErrors.Clone(appErrors.ErrCapacity, "Waitlist is full.")
	}
	return r.waitlist.Enqueue(s)
}

// Drop removes s from the roster or the waitlist. Freeing a seat promotes
// the head of the waitlist in the same call: the promoted student is seated
// and the course is added to their schedule.
func (r *Roster) Drop(s *Student) (DropResult, error) {
	var result DropResult
	if s == nil {
		return result, appErrors.Clone(appErrors.ErrValidation, "Student cannot be nil.")
	}

	if idx := r.roll.IndexOf(s); idx >= 0 {
		if _, err := r.roll.Remove(idx); err != nil {
			return result, err
		}
		if err := r.promote(&result); err != nil {
			return result, err
		}
		return result, nil
	}

	if r.waitlist.Contains(s) {
		if err := r.removeFromWaitlist(s); err != nil {
			return result, err
		}
		result.FromWaitlist = true
		return result, nil
	}

	return result, appErrors.Clone(appErrors.ErrNotFound, "Student is not enrolled or waitlisted.")
}

// promote seats the first waitlisted student whose schedule still accepts
// the course. Students that no longer fit are removed and reported.
func (r *Roster) promote(result *DropResult) error {
	for !r.waitlist.IsEmpty() {
		next, err := r.waitlist.Dequeue()
		if err != nil {
			return err
		}
		if !next.CanAdd(r.course) {
			result.Skipped = append(result.Skipped, next)
			continue
		}
		if err := r.Enroll(next); err != nil {
			return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to promote waitlisted student")
		}
		if err := next.Schedule().AddCourseToSchedule(r.course); err != nil {
			if idx := r.roll.IndexOf(next); idx >= 0 {
				_, _ = r.roll.Remove(idx)
			}
			if requeueErr := r.requeueFront(next); requeueErr != nil {
				return appErrors.Wrap(requeueErr, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to restore waitlisted student")
			}
			return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to schedule promoted student")
		}
		result.Promoted = next
		return nil
	}
	return nil
}

// FillOpenSeats promotes waitlisted students until the roll is full or the
// waitlist is empty. Students whose schedules no longer accept the course
// are removed and reported.
func (r *Roster) FillOpenSeats() (FillResult, error) {
	var out FillResult
	for r.OpenSeats() > 0 && !r.waitlist.IsEmpty() {
		var step DropResult
		if err := r.promote(&step); err != nil {
			out.Skipped = append(out.Skipped, step.Skipped...)
			return out, err
		}
		out.Skipped = append(out.Skipped, step.Skipped...)
		if step.Promoted != nil {
			out.Promoted = append(out.Promoted, step.Promoted)
		}
	}
	return out, nil
}

// requeueFront puts s back at the head of the waitlist.
func (r *Roster) requeueFront(s *Student) error {
	rebuilt, err := collections.NewArrayQueue[*Student](r.waitlist.Capacity())
	if err != nil {
		return err
	}
	if err := rebuilt.Enqueue(s); err != nil {
		return err
	}
	for !r.waitlist.IsEmpty() {
		head, err := r.waitlist.Dequeue()
		if err != nil {
			return err
		}
		if err := rebuilt.Enqueue(head); err != nil {
			return err
		}
	}
	r.waitlist = rebuilt
	return nil
}

// removeFromWaitlist rebuilds the waitlist without s, keeping the order of
// everyone else.
func (r *Roster) removeFromWaitlist(s *Student) error {
	rebuilt, err := collections.NewArrayQueue[*Student](r.waitlist.Capacity())
	if err != nil {
		return err
	}
	for !r.waitlist.IsEmpty() {
		head, err := r.waitlist.Dequeue()
		if err != nil {
			return err
		}
		if head.Equal(s) {
			continue
		}
		if err := rebuilt.Enqueue(head); err != nil {
			return err
		}
	}
	r.waitlist = rebuilt
	return nil
}
