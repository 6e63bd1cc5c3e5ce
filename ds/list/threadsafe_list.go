package list

import (
	"github.com/fizzkit/fizz.go/syncutils"
)

// threadSafeList implements the thread safe version of the List interface.
type threadSafeList[T comparable] struct {
	list  *simpleList[T]
	mutex syncutils.RWMutex
}

// newThreadSafeList returns a new thread safe List.
func newThreadSafeList[T comparable]() *threadSafeList[T] {
	return &threadSafeList[T]{
		list: newSimpleList[T](),
	}
}

// Append inserts the given value at the back of the List.
func (l *threadSafeList[T]) Append(value T) {
	l.mutex.Lock()
	defer l.mutex.Unlock()

	l.list.Append(value)
}

// Prepend inserts the given value at the front of the List.
func (l *threadSafeList[T]) Prepend(value T) {
	l.mutex.Lock()
	defer l.mutex.Unlock()

	l.list.Prepend(value)
}

// Remove removes the first occurrence of the given value from the List and returns whether a value was removed.
func (l *threadSafeList[T]) Remove(value T) bool {
	l.mutex.Lock()
	defer l.mutex.Unlock()

	return l.list.Remove(value)
}

// Front returns the first value of the List and whether the List is non-empty.
func (l *threadSafeList[T]) Front() (T, bool) {
	l.mutex.RLock()
	defer l.mutex.RUnlock()

	return l.list.Front()
}

// Index returns the position of the first occurrence of the given value or -1 if it is not contained.
func (l *threadSafeList[T]) Index(value T) int {
	l.mutex.RLock()
	defer l.mutex.RUnlock()

	return l.list.Index(value)
}

// Contains checks if the given value is contained in the List.
func (l *threadSafeList[T]) Contains(value T) bool {
	l.mutex.RLock()
	defer l.mutex.RUnlock()

	return l.list.Contains(value)
}

// ForEach executes the given callback for each value in the List from front to back. The iteration is aborted
// if the callback returns an error.
func (l *threadSafeList[T]) ForEach(callback func(value T) error) error {
	l.mutex.RLock()
	defer l.mutex.RUnlock()

	return l.list.ForEach(callback)
}

// Range executes the given callback for each value in the List from front to back.
func (l *threadSafeList[T]) Range(callback func(value T)) {
	l.mutex.RLock()
	defer l.mutex.RUnlock()

	l.list.Range(callback)
}

// Values returns a slice of all values in the List from front to back.
func (l *threadSafeList[T]) Values() []T {
	l.mutex.RLock()
	defer l.mutex.RUnlock()

	return l.list.Values()
}

// Len returns the number of values in the List.
func (l *threadSafeList[T]) Len() int {
	l.mutex.RLock()
	defer l.mutex.RUnlock()

	return l.list.Len()
}

// Clear removes all values from the List.
func (l *threadSafeList[T]) Clear() {
	l.mutex.Lock()
	defer l.mutex.Unlock()

	l.list.Clear()
}

// code contract - make sure the type implements the interface.
var _ List[int] = &threadSafeList[int]{}
