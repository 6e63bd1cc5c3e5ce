package fizzbuzz

// Bounds describes the inclusive interval of integers that a walk covers. It is a plain value that is constructed at
// call time and carries no further state. A Bounds with Low > High covers no integers, which is a valid degenerate
// case rather than an error.
type Bounds struct {
	// Low is the inclusive lower bound of the interval.
	Low int

	// High is the inclusive upper bound of the interval.
	High int
}

// NewBounds creates a new Bounds covering the inclusive interval [low, high].
func NewBounds(low int, high int) Bounds {
	return Bounds{
		Low:  low,
		High: high,
	}
}

// IsEmpty checks if the Bounds cover no integers.
func (b Bounds) IsEmpty() bool {
	return b.Low > b.High
}

// Len returns the number of integers covered by the Bounds.
func (b Bounds) Len() int {
	if b.IsEmpty() {
		return 0
	}

	return b.High - b.Low + 1
}

// Contains checks if the given integer is covered by the Bounds.
func (b Bounds) Contains(n int) bool {
	return n >= b.Low && n <= b.High
}

// ForEach executes the given callback for every covered integer in increasing order. The iteration is aborted if the
// callback returns an error.
func (b Bounds) ForEach(callback func(n int) error) error {
	if b.IsEmpty() {
		return nil
	}

	// the upper bound is compared before incrementing so that High == math.MaxInt does not wrap around
	for n := b.Low; ; n++ {
		if err := callback(n); err != nil {
			return err
		}
		if n == b.High {
			return nil
		}
	}
}

// Range executes the given callback for every covered integer in increasing order.
func (b Bounds) Range(callback func(n int)) {
	if b.IsEmpty() {
		return
	}

	for n := b.Low; ; n++ {
		callback(n)
		if n == b.High {
			return
		}
	}
}
