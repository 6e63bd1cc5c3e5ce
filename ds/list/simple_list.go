package list

// listNode is a single node of a simpleList that holds a value and a reference to the next node.
type listNode[T comparable] struct {
	value T
	next  *listNode[T]
}

// simpleList implements the non-thread safe version of the List interface.
type simpleList[T comparable] struct {
	head *listNode[T]
	tail *listNode[T]
	len  int
}

// newSimpleList returns a new non-thread safe List.
func newSimpleList[T comparable]() *simpleList[T] {
	return new(simpleList[T])
}

// Append inserts the given value at the back of the List.
func (l *simpleList[T]) Append(value T) {
	newNode := &listNode[T]{value: value}

	if l.head == nil {
		l.head = newNode
	} else {
		l.tail.next = newNode
	}
	l.tail = newNode
	l.len++
}

// Prepend inserts the given value at the front of the List.
func (l *simpleList[T]) Prepend(value T) {
	newNode := &listNode[T]{value: value, next: l.head}

	l.head = newNode
	if l.tail == nil {
		l.tail = newNode
	}
	l.len++
}

// Remove removes the first occurrence of the given value from the List and returns whether a value was removed.
func (l *simpleList[T]) Remove(value T) bool {
	var prev *listNode[T]
	for current := l.head; current != nil; current = current.next {
		if current.value != value {
			prev = current

			continue
		}

		if prev == nil {
			l.head = current.next
		} else {
			prev.next = current.next
		}
		if current == l.tail {
			l.tail = prev
		}
		l.len--

		return true
	}

	return false
}

// Front returns the first value of the List and whether the List is non-empty.
func (l *simpleList[T]) Front() (value T, exists bool) {
	if l.head == nil {
		return value, false
	}

	return l.head.value, true
}

// Index returns the position of the first occurrence of the given value or -1 if it is not contained.
func (l *simpleList[T]) Index(value T) int {
	position := 0
	for current := l.head; current != nil; current = current.next {
		if current.value == value {
			return position
		}
		position++
	}

	return -1
}

// Contains checks if the given value is contained in the List.
func (l *simpleList[T]) Contains(value T) bool {
	return l.Index(value) != -1
}

// ForEach executes the given callback for each value in the List from front to back. The iteration is aborted
// if the callback returns an error.
func (l *simpleList[T]) ForEach(callback func(value T) error) error {
	for current := l.head; current != nil; current = current.next {
		if err := callback(current.value); err != nil {
			return err
		}
	}

	return nil
}

// Range executes the given callback for each value in the List from front to back.
func (l *simpleList[T]) Range(callback func(value T)) {
	for current := l.head; current != nil; current = current.next {
		callback(current.value)
	}
}

// Values returns a slice of all values in the List from front to back.
func (l *simpleList[T]) Values() (values []T) {
	values = make([]T, 0, l.len)
	for current := l.head; current != nil; current = current.next {
		values = append(values, current.value)
	}

	return values
}

// Len returns the number of values in the List.
func (l *simpleList[T]) Len() int {
	return l.len
}

// Clear removes all values from the List.
func (l *simpleList[T]) Clear() {
	l.head = nil
	l.tail = nil
	l.len = 0
}

// code contract - make sure the type implements the interface.
var _ List[int] = &simpleList[int]{}
