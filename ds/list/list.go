package list

// List represents an interface for a singly linked list.
type List[T comparable] interface {
	// Append inserts the given value at the back of the List.
	Append(value T)

	// Prepend inserts the given value at the front of the List.
	Prepend(value T)

	// Remove removes the first occurrence of the given value from the List and returns whether a value was removed.
	Remove(value T) bool

	// Front returns the first value of the List and whether the List is non-empty.
	Front() (T, bool)

	// Index returns the position of the first occurrence of the given value or -1 if it is not contained.
	Index(value T) int

	// Contains checks if the given value is contained in the List.
	Contains(value T) bool

	// ForEach executes the given callback for each value in the List from front to back. The iteration is aborted
	// if the callback returns an error.
	ForEach(callback func(value T) error) error

	// Range executes the given callback for each value in the List from front to back.
	Range(callback func(value T))

	// Values returns a slice of all values in the List from front to back.
	Values() []T

	// Len returns the number of values in the List.
	Len() int

	// Clear removes all values from the List.
	Clear()
}

// New creates a new List that is thread safe if the optional threadSafe parameter is set to true.
func New[T comparable](threadSafe ...bool) List[T] {
	if len(threadSafe) >= 1 && threadSafe[0] {
		return newThreadSafeList[T]()
	}

	return newSimpleList[T]()
}
