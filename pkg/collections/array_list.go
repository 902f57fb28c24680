package collections

const initialArraySize = 10

// ArrayList is a growable list backed by a contiguous array. The backing
// array doubles whenever an insert would overflow it.
type ArrayList[T Equaler[T]] struct {
	items []T
	size  int
}

// NewArrayList returns an empty ArrayList.
func NewArrayList[T Equaler[T]]() *ArrayList[T] {
	return &ArrayList[T]{items: make([]T, initialArraySize)}
}

// Add appends elem to the end of the list.
func (l *ArrayList[T]) Add(elem T) error {
	return l.Insert(l.size, elem)
}

// Insert places elem at idx, shifting later elements right.
func (l *ArrayList[T]) Insert(idx int, elem T) error {
	if idx < 0 || idx > l.size {
		return errIndex()
	}
	if isNil(elem) {
		return errNull()
	}
	if l.Contains(elem) {
		return errDuplicate()
	}
	if l.size == len(l.items) {
		l.grow()
	}
	copy(l.items[idx+1:l.size+1], l.items[idx:l.size])
	l.items[idx] = elem
	l.size++
	return nil
}

func (l *ArrayList[T]) grow() {
	capacity := len(l.items) * 2
	if capacity == 0 {
		capacity = initialArraySize
	}
	grown := make([]T, capacity)
	copy(grown, l.items[:l.size])
	l.items = grown
}

// Remove deletes and returns the element at idx.
func (l *ArrayList[T]) Remove(idx int) (T, error) {
	var zero T
	if idx < 0 || idx >= l.size {
		return zero, errIndex()
	}
	removed := l.items[idx]
	copy(l.items[idx:l.size-1], l.items[idx+1:l.size])
	l.items[l.size-1] = zero
	l.size--
	return removed, nil
}

// Get returns the element at idx.
func (l *ArrayList[T]) Get(idx int) (T, error) {
	if idx < 0 || idx >= l.size {
		var zero T
		return zero, errIndex()
	}
	return l.items[idx], nil
}

// Set replaces the element at idx and returns the previous one.
func (l *ArrayList[T]) Set(idx int, elem T) (T, error) {
	var zero T
	if idx < 0 || idx >= l.size {
		return zero, errIndex()
	}
	if isNil(elem) {
		return zero, errNull()
	}
	if l.Contains(elem) {
		return zero, errDuplicate()
	}
	previous := l.items[idx]
	l.items[idx] = elem
	return previous, nil
}

// Size returns the number of elements.
func (l *ArrayList[T]) Size() int {
	return l.size
}

// IsEmpty reports whether the list has no elements.
func (l *ArrayList[T]) IsEmpty() bool {
	return l.size == 0
}

// Contains reports whether an element equal to elem is present.
func (l *ArrayList[T]) Contains(elem T) bool {
	return l.IndexOf(elem) >= 0
}

// IndexOf returns the index of the first element equal to elem, or -1.
func (l *ArrayList[T]) IndexOf(elem T) int {
	if isNil(elem) {
		return -1
	}
	for i := 0; i < l.size; i++ {
		if l.items[i].Equal(elem) {
			return i
		}
	}
	return -1
}

// Clear removes every element and resets the backing array.
func (l *ArrayList[T]) Clear() {
	l.items = make([]T, initialArraySize)
	l.size = 0
}

// Values returns a copy of the elements in order.
func (l *ArrayList[T]) Values() []T {
	out := make([]T, l.size)
	copy(out, l.items[:l.size])
	return out
}
