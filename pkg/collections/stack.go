package collections

// ArrayStack is a bounded LIFO stack backed by an ArrayList; the top is the
// end of the list.
type ArrayStack[T Equaler[T]] struct {
	list     *ArrayList[T]
	capacity int
}

// NewArrayStack returns an empty stack holding at most capacity elements.
func NewArrayStack[T Equaler[T]](capacity int) (*ArrayStack[T], error) {
	s := &ArrayStack[T]{list: NewArrayList[T]()}
	if err := s.SetCapacity(capacity); err != nil {
		return nil, err
	}
	return s, nil
}

// Push adds elem on top.
func (s *ArrayStack[T]) Push(elem T) error {
	if s.list.Size() >= s.capacity {
		return errCapacity()
	}
	return s.list.Add(elem)
}

// Pop removes and returns the top element.
func (s *ArrayStack[T]) Pop() (T, error) {
	if s.list.IsEmpty() {
		var zero T
		return zero, errEmpty("Stack")
	}
	return s.list.Remove(s.list.Size() - 1)
}

// Size returns the number of elements.
func (s *ArrayStack[T]) Size() int {
	return s.list.Size()
}

// IsEmpty reports whether the stack has no elements.
func (s *ArrayStack[T]) IsEmpty() bool {
	return s.list.IsEmpty()
}

// SetCapacity changes the bound.
func (s *ArrayStack[T]) SetCapacity(capacity int) error {
	if err := validateCapacity(capacity, s.list.Size()); err != nil {
		return err
	}
	s.capacity = capacity
	return nil
}

// LinkedStack is a bounded LIFO stack backed by a LinkedList; the top is the
// front of the list.
type LinkedStack[T Equaler[T]] struct {
	list *LinkedList[T]
}

// NewLinkedStack returns an empty stack holding at most capacity elements.
func NewLinkedStack[T Equaler[T]](capacity int) (*LinkedStack[T], error) {
	list, err := NewLinkedList[T](capacity)
	if err != nil {
		return nil, err
	}
	return &LinkedStack[T]{list: list}, nil
}

// Push adds elem on top.
func (s *LinkedStack[T]) Push(elem T) error {
	return s.list.Insert(0, elem)
}

// Pop removes and returns the top element.
func (s *LinkedStack[T]) Pop() (T, error) {
	if s.list.IsEmpty() {
		var zero T
		return zero, errEmpty("Stack")
	}
	return s.list.Remove(0)
}

// Size returns the number of elements.
func (s *LinkedStack[T]) Size() int {
	return s.list.Size()
}

// IsEmpty reports whether the stack has no elements.
func (s *LinkedStack[T]) IsEmpty() bool {
	return s.list.IsEmpty()
}

// SetCapacity changes the bound.
func (s *LinkedStack[T]) SetCapacity(capacity int) error {
	return s.list.SetCapacity(capacity)
}
