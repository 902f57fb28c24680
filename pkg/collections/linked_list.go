package collections

type linkedNode[T any] struct {
	data T
	next *linkedNode[T]
}

// LinkedList is a singly linked list with a fixed upper bound on its size.
type LinkedList[T Equaler[T]] struct {
	front    *linkedNode[T]
	back     *linkedNode[T]
	size     int
	capacity int
}

// NewLinkedList returns an empty LinkedList holding at most capacity elements.
func NewLinkedList[T Equaler[T]](capacity int) (*LinkedList[T], error) {
	l := &LinkedList[T]{}
	if err := l.SetCapacity(capacity); err != nil {
		return nil, err
	}
	return l, nil
}

// Capacity returns the maximum number of elements.
func (l *LinkedList[T]) Capacity() int {
	return l.capacity
}

// SetCapacity changes the bound. It fails when capacity is negative or
// smaller than the current size.
func (l *LinkedList[T]) SetCapacity(capacity int) error {
	if err := validateCapacity(capacity, l.size); err != nil {
		return err
	}
	l.capacity = capacity
	return nil
}

// Add appends elem to the end of the list.
func (l *LinkedList[T]) Add(elem T) error {
	return l.Insert(l.size, elem)
}

// Insert places elem at idx.
func (l *LinkedList[T]) Insert(idx int, elem T) error {
	if idx < 0 || idx > l.size {
		return errIndex()
	}
	if isNil(elem) {
		return errNull()
	}
	if l.size == l.capacity {
		return errCapacity()
	}
	if l.Contains(elem) {
		return errDuplicate()
	}

	switch {
	case idx == 0:
		l.front = &linkedNode[T]{data: elem, next: l.front}
		if l.back == nil {
			l.back = l.front
		}
	case idx == l.size:
		l.back.next = &linkedNode[T]{data: elem}
		l.back = l.back.next
	default:
		prev := l.nodeAt(idx - 1)
		prev.next = &linkedNode[T]{data: elem, next: prev.next}
	}
	l.size++
	return nil
}

// Remove deletes and returns the element at idx.
func (l *LinkedList[T]) Remove(idx int) (T, error) {
	var zero T
	if idx < 0 || idx >= l.size {
		return zero, errIndex()
	}

	var removed T
	if idx == 0 {
		removed = l.front.data
		l.front = l.front.next
		if l.front == nil {
			l.back = nil
		}
	} else {
		prev := l.nodeAt(idx - 1)
		removed = prev.next.data
		prev.next = prev.next.next
		if prev.next == nil {
			l.back = prev
		}
	}
	l.size--
	return removed, nil
}

// Get returns the element at idx.
func (l *LinkedList[T]) Get(idx int) (T, error) {
	if idx < 0 || idx >= l.size {
		var zero T
		return zero, errIndex()
	}
	return l.nodeAt(idx).data, nil
}

// Set replaces the element at idx and returns the previous one.
func (l *LinkedList[T]) Set(idx int, elem T) (T, error) {
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
	node := l.nodeAt(idx)
	previous := node.data
	node.data = elem
	return previous, nil
}

// Size returns the number of elements.
func (l *LinkedList[T]) Size() int {
	return l.size
}

// IsEmpty reports whether the list has no elements.
func (l *LinkedList[T]) IsEmpty() bool {
	return l.size == 0
}

// Contains reports whether an element equal to elem is present.
func (l *LinkedList[T]) Contains(elem T) bool {
	return l.IndexOf(elem) >= 0
}

// IndexOf returns the index of the first element equal to elem, or -1.
func (l *LinkedList[T]) IndexOf(elem T) int {
	if isNil(elem) {
		return -1
	}
	i := 0
	for curr := l.front; curr != nil; curr = curr.next {
		if curr.data.Equal(elem) {
			return i
		}
		i++
	}
	return -1
}

// Values returns a copy of the elements in order.
func (l *LinkedList[T]) Values() []T {
	out := make([]T, 0, l.size)
	for curr := l.front; curr != nil; curr = curr.next {
		out = append(out, curr.data)
	}
	return out
}

func (l *LinkedList[T]) nodeAt(idx int) *linkedNode[T] {
	curr := l.front
	for i := 0; i < idx; i++ {
		curr = curr.next
	}
	return curr
}
