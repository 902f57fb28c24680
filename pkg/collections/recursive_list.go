package collections

// RecursiveList is an unbounded singly linked list whose traversals are
// written recursively on the nodes.
type RecursiveList[T Equaler[T]] struct {
	front *recursiveNode[T]
	size  int
}

type recursiveNode[T Equaler[T]] struct {
	data T
	next *recursiveNode[T]
}

// NewRecursiveList returns an empty RecursiveList.
func NewRecursiveList[T Equaler[T]]() *RecursiveList[T] {
	return &RecursiveList[T]{}
}

// Add appends elem to the end of the list.
func (l *RecursiveList[T]) Add(elem T) error {
	return l.Insert(l.size, elem)
}

// Insert places elem at idx.
func (l *RecursiveList[T]) Insert(idx int, elem T) error {
	if idx < 0 || idx > l.size {
		return errIndex()
	}
	if isNil(elem) {
		return errNull()
	}
	if l.Contains(elem) {
		return errDuplicate()
	}
	if idx == 0 {
		l.front = &recursiveNode[T]{data: elem, next: l.front}
	} else {
		l.front.insert(idx-1, elem)
	}
	l.size++
	return nil
}

func (n *recursiveNode[T]) insert(idx int, elem T) {
	if idx == 0 {
		n.next = &recursiveNode[T]{data: elem, next: n.next}
		return
	}
	n.next.insert(idx-1, elem)
}

// Remove deletes and returns the element at idx.
func (l *RecursiveList[T]) Remove(idx int) (T, error) {
	var zero T
	if idx < 0 || idx >= l.size {
		return zero, errIndex()
	}
	var removed T
	if idx == 0 {
		removed = l.front.data
		l.front = l.front.next
	} else {
		removed = l.front.remove(idx - 1)
	}
	l.size--
	return removed, nil
}

func (n *recursiveNode[T]) remove(idx int) T {
	if idx == 0 {
		removed := n.next.data
		n.next = n.next.next
		return removed
	}
	return n.next.remove(idx - 1)
}

// RemoveElement deletes the first element equal to elem and reports whether
// one was found.
func (l *RecursiveList[T]) RemoveElement(elem T) bool {
	idx := l.IndexOf(elem)
	if idx < 0 {
		return false
	}
	_, err := l.Remove(idx)
	return err == nil
}

// Get returns the element at idx.
func (l *RecursiveList[T]) Get(idx int) (T, error) {
	if idx < 0 || idx >= l.size {
		var zero T
		return zero, errIndex()
	}
	return l.front.get(idx), nil
}

func (n *recursiveNode[T]) get(idx int) T {
	if idx == 0 {
		return n.data
	}
	return n.next.get(idx - 1)
}

// Set replaces the element at idx and returns the previous one.
func (l *RecursiveList[T]) Set(idx int, elem T) (T, error) {
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
	return l.front.set(idx, elem), nil
}

func (n *recursiveNode[T]) set(idx int, elem T) T {
	if idx == 0 {
		previous := n.data
		n.data = elem
		return previous
	}
	return n.next.set(idx-1, elem)
}

// Size returns the number of elements.
func (l *RecursiveList[T]) Size() int {
	return l.size
}

// IsEmpty reports whether the list has no elements.
func (l *RecursiveList[T]) IsEmpty() bool {
	return l.size == 0
}

// Contains reports whether an element equal to elem is present.
func (l *RecursiveList[T]) Contains(elem T) bool {
	return l.IndexOf(elem) >= 0
}

// IndexOf returns the index of the first element equal to elem, or -1.
func (l *RecursiveList[T]) IndexOf(elem T) int {
	if isNil(elem) || l.front == nil {
		return -1
	}
	return l.front.indexOf(elem, 0)
}

func (n *recursiveNode[T]) indexOf(elem T, pos int) int {
	if n.data.Equal(elem) {
		return pos
	}
	if n.next == nil {
		return -1
	}
	return n.next.indexOf(elem, pos+1)
}

// Values returns a copy of the elements in order.
func (l *RecursiveList[T]) Values() []T {
	out := make([]T, 0, l.size)
	if l.front == nil {
		return out
	}
	return l.front.collect(out)
}

func (n *recursiveNode[T]) collect(out []T) []T {
	out = append(out, n.data)
	if n.next == nil {
		return out
	}
	return n.next.collect(out)
}
