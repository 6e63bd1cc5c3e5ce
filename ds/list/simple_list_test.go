package list

import (
	"container/list"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
)

func BenchmarkList(b *testing.B) {
	l := list.New()

	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		l.PushBack(3)
	}
}

func BenchmarkSimpleList(b *testing.B) {
	l := New[int]()

	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		l.Append(3)
	}
}

func TestSimpleList_Append(t *testing.T) {
	l := newSimpleList[int]()

	assert.Equal(t, l.Len(), 0, "list should initially be empty")
	l.Append(10)
	l.Append(20)
	l.Append(30)
	l.Append(40)
	assert.Equal(t, l.Len(), 4, "wrong list length")
	assert.Equal(t, []int{10, 20, 30, 40}, l.Values(), "wrong values order")
}

func TestSimpleList_Prepend(t *testing.T) {
	l := newSimpleList[int]()

	l.Append(10)
	l.Append(20)
	l.Prepend(5)
	assert.Equal(t, l.Len(), 3, "wrong list length")
	assert.Equal(t, []int{5, 10, 20}, l.Values(), "prepended value should be at the front")

	value, exists := l.Front()
	assert.True(t, exists, "list should not be empty")
	assert.Equal(t, value, 5, "wrong front value")
}

func TestSimpleList_Remove(t *testing.T) {
	l := newSimpleList[int]()

	assert.False(t, l.Remove(99), "removing from an empty list should return false")

	l.Append(5)
	l.Append(10)
	l.Append(20)
	l.Append(30)

	assert.True(t, l.Remove(20), "existing value should be removed")
	assert.Equal(t, []int{5, 10, 30}, l.Values(), "wrong values after removal")

	assert.True(t, l.Remove(5), "head value should be removed")
	assert.Equal(t, []int{10, 30}, l.Values(), "wrong values after head removal")

	assert.True(t, l.Remove(30), "tail value should be removed")
	assert.Equal(t, []int{10}, l.Values(), "wrong values after tail removal")

	assert.False(t, l.Remove(99), "missing value should not be removed")
	assert.Equal(t, l.Len(), 1, "wrong list length")
}

func TestSimpleList_RemoveUpdatesTail(t *testing.T) {
	l := newSimpleList[int]()

	l.Append(1)
	l.Append(2)
	assert.True(t, l.Remove(2), "tail value should be removed")
	l.Append(3)
	assert.Equal(t, []int{1, 3}, l.Values(), "append after tail removal should extend the list")
}

func TestSimpleList_Index(t *testing.T) {
	l := newSimpleList[int]()

	assert.Equal(t, -1, l.Index(10), "index in an empty list should be -1")

	l.Append(10)
	l.Append(20)
	l.Append(30)

	assert.Equal(t, 0, l.Index(10), "wrong index")
	assert.Equal(t, 2, l.Index(30), "wrong index")
	assert.Equal(t, -1, l.Index(99), "missing value should have index -1")
	assert.True(t, l.Contains(20), "list should contain the value")
	assert.False(t, l.Contains(99), "list should not contain the value")
}

func TestSimpleList_ForEach(t *testing.T) {
	l := newSimpleList[int]()

	l.Append(1)
	l.Append(2)
	l.Append(3)

	seen := make([]int, 0)
	err := l.ForEach(func(value int) error {
		seen = append(seen, value)

		return nil
	})
	assert.NoError(t, err, "iteration should not fail")
	assert.Equal(t, []int{1, 2, 3}, seen, "iteration should visit values from front to back")

	failure := errors.New("aborted")
	seen = seen[:0]
	err = l.ForEach(func(value int) error {
		seen = append(seen, value)

		return failure
	})
	assert.ErrorIs(t, err, failure, "callback error should abort the iteration")
	assert.Equal(t, []int{1}, seen, "iteration should stop at the first error")
}

func TestSimpleList_Clear(t *testing.T) {
	l := newSimpleList[int]()

	l.Append(1)
	l.Append(2)
	l.Clear()
	assert.Equal(t, l.Len(), 0, "list should be empty after clear")
	_, exists := l.Front()
	assert.False(t, exists, "front of an empty list should not exist")

	l.Append(3)
	assert.Equal(t, []int{3}, l.Values(), "list should be usable after clear")
}
