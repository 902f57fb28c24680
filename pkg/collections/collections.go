// Package collections provides ordered containers that reject nil and
// duplicate elements. Lists, queues and stacks share the same insert
// contract: nil elements fail with errors.ErrNull, elements equal to one
// already present fail with errors.ErrDuplicate and bounded containers that
// are full fail with errors.ErrCapacity.
package collections

import (
	"reflect"

	appErrors "github.com/noah-isme/course-registration-api/pkg/errors"
)

// Equaler is implemented by element types compared by value.
type Equaler[T any] interface {
	Equal(other T) bool
}

// List is the common surface of the list implementations.
type List[T Equaler[T]] interface {
	Add(elem T) error
	Insert(idx int, elem T) error
	Remove(idx int) (T, error)
	Get(idx int) (T, error)
	Set(idx int, elem T) (T, error)
	Size() int
	Contains(elem T) bool
	IndexOf(elem T) int
	Values() []T
}

// Queue is a first-in first-out container.
type Queue[T Equaler[T]] interface {
	Enqueue(elem T) error
	Dequeue() (T, error)
	Size() int
	IsEmpty() bool
	SetCapacity(capacity int) error
}

// Stack is a last-in first-out container.
type Stack[T Equaler[T]] interface {
	Push(elem T) error
	Pop() (T, error)
	Size() int
	IsEmpty() bool
	SetCapacity(capacity int) error
}

func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
		return rv.IsNil()
	}
	return false
}

func errIndex() error {
	return appErrors.Clone(appErrors.ErrIndex, "Index out of bounds.")
}

func errNull() error {
	return appErrors.Clone(appErrors.ErrNull, "Item cannot be null.")
}

func errDuplicate() error {
	return appErrors.Clone(appErrors.ErrDuplicate, "Item already exists in the list.")
}

func errCapacity() error {
	return appErrors.Clone(appErrors.ErrCapacity, "Reached capacity.")
}

func errInvalidCapacity() error {
	return appErrors.Clone(appErrors.ErrCapacity, "Invalid capacity.")
}

func errEmpty(kind string) error {
	return appErrors.Clone(appErrors.ErrEmpty, kind+" is empty.")
}

func validateCapacity(capacity, size int) error {
	if capacity < 0 || capacity < size {
		return errInvalidCapacity()
	}
	return nil
}
