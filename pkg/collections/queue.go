package collections

// ArrayQueue is a bounded FIFO queue backed by an ArrayList.
type ArrayQueue[T Equaler[T]] struct {
	list     *ArrayList[T]
	capacity int
}

// NewArrayQueue returns an empty queue holding at most capacity elements.
func NewArrayQueue[T Equaler[T]](capacity int) (*ArrayQueue[T], error) {
	q := &ArrayQueue[T]{list: NewArrayList[T]()}
	if err := q.SetCapacity(capacity); err != nil {
		return nil, err
	}
	return q, nil
}

// Enqueue adds elem at the tail.
func (q *ArrayQueue[T]) Enqueue(elem T) error {
	if q.list.Size() == q.capacity {
		return errCapacity()
	}
	return q.list.Add(elem)
}

// Dequeue removes and returns the head.
func (q *ArrayQueue[T]) Dequeue() (T, error) {
	if q.list.IsEmpty() {
		var zero T
		return zero, errEmpty("Queue")
	}
	return q.list.Remove(0)
}

// Size returns the number of queued elements.
func (q *ArrayQueue[T]) Size() int {
	return q.list.Size()
}

// IsEmpty reports whether the queue has no elements.
func (q *ArrayQueue[T]) IsEmpty() bool {
	return q.list.IsEmpty()
}

// Capacity returns the maximum number of elements.
func (q *ArrayQueue[T]) Capacity() int {
	return q.capacity
}

// SetCapacity changes the bound.
func (q *ArrayQueue[T]) SetCapacity(capacity int) error {
	if err := validateCapacity(capacity, q.list.Size()); err != nil {
		return err
	}
	q.capacity = capacity
	return nil
}

// Contains reports whether an element equal to elem is queued.
func (q *ArrayQueue[T]) Contains(elem T) bool {
	return q.list.Contains(elem)
}

// Values returns the queued elements from head to tail.
func (q *ArrayQueue[T]) Values() []T {
	return q.list.Values()
}

// LinkedQueue is a bounded FIFO queue backed by a LinkedList.
type LinkedQueue[T Equaler[T]] struct {
	list *LinkedList[T]
}

// NewLinkedQueue returns an empty queue holding at most capacity elements.
func NewLinkedQueue[T Equaler[T]](capacity int) (*LinkedQueue[T], error) {
	list, err := NewLinkedList[T](capacity)
	if err != nil {
		return nil, err
	}
	return &LinkedQueue[T]{list: list}, nil
}

// Enqueue adds elem at the tail.
func (q *LinkedQueue[T]) Enqueue(elem T) error {
	return q.list.Add(elem)
}

// Dequeue removes and returns the head.
func (q *LinkedQueue[T]) Dequeue() (T, error) {
	if q.list.IsEmpty() {
		var zero T
		return zero, errEmpty("Queue")
	}
	return q.list.Remove(0)
}

// Size returns the number of queued elements.
func (q *LinkedQueue[T]) Size() int {
	return q.list.Size()
}

// IsEmpty reports whether the queue has no elements.
func (q *LinkedQueue[T]) IsEmpty() bool {
	return q.list.IsEmpty()
}

// Capacity returns the maximum number of elements.
func (q *LinkedQueue[T]) Capacity() int {
	return q.list.Capacity()
}

// SetCapacity changes the bound.
func (q *LinkedQueue[T]) SetCapacity(capacity int) error {
	return q.list.SetCapacity(capacity)
}

// Contains reports whether an element equal to elem is queued.
func (q *LinkedQueue[T]) Contains(elem T) bool {
	return q.list.Contains(elem)
}
