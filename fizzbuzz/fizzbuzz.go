package fizzbuzz

import (
	"strconv"
)

// Label returns the line emitted for the given integer: "FizzBuzz" for multiples of 15, "Fizz" for multiples of 3,
// "Buzz" for multiples of 5 and the decimal representation of the integer otherwise.
func Label(n int) string {
	// multiples of both 3 and 5 take precedence over the individual checks
	switch {
	case n%15 == 0:
		return "FizzBuzz"
	case n%3 == 0:
		return "Fizz"
	case n%5 == 0:
		return "Buzz"
	default:
		return strconv.Itoa(n)
	}
}

// Sequence returns the ordered labels for every integer covered by the given Bounds.
func Sequence(bounds Bounds) (labels []string) {
	labels = make([]string, 0, bounds.Len())
	bounds.Range(func(n int) {
		labels = append(labels, Label(n))
	})

	return labels
}
