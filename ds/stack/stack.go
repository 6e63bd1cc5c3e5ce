package stack

// Stack is a last-in-first-out collection of elements.
type Stack[T comparable] interface {
	// Push pushes an element onto the top of this Stack.
	Push(element T)

	// Pop removes and returns the top element of this Stack and whether the element exists.
	Pop() (T, bool)

	// Peek returns the top element of this Stack without removing it.
	Peek() (T, bool)

	// Clear removes all elements from this Stack.
	Clear()

	// Size returns the amount of elements in this Stack.
	Size() int

	// IsEmpty checks if this Stack is empty.
	IsEmpty() bool

	// Range executes the given callback for each element of this Stack from top to bottom until the callback
	// returns false.
	Range(callback func(element T) bool)

	// Values returns a slice of all elements of this Stack from top to bottom.
	Values() []T
}

// New returns a new Stack that is thread safe if the optional threadSafe parameter is set to true.
func New[T comparable](threadSafe ...bool) Stack[T] {
	if len(threadSafe) >= 1 && threadSafe[0] {
		return newThreadSafeStack[T]()
	}

	return newSimpleStack[T]()
}

// Depth returns the distance of the first occurrence of the given element from the top of the given Stack
// (0 meaning the top element) or -1 if the element is not contained.
func Depth[T comparable](stack Stack[T], element T) int {
	depth := -1

	currentDepth := 0
	stack.Range(func(currentElement T) bool {
		if currentElement == element {
			depth = currentDepth

			return false
		}
		currentDepth++

		return true
	})

	return depth
}
