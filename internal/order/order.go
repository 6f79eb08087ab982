// Package order keeps ordered collections contiguous.
//
// Position is stored as an explicit integer on every element rather than derived
// from slice index alone, because elements move between independent containers
// (tasks between columns) and each container is persisted separately. Every
// function here leaves the collection numbered exactly 0..len-1.
package order

import (
	"errors"
	"fmt"
	"sort"
)

// Ordered is implemented by anything that carries its own position
type Ordered interface {
	GetOrder() int
	SetOrder(int)
}

// ErrOutOfRange is returned when a position does not address an existing element
var ErrOutOfRange = errors.New("position out of range")

// Clamp limits pos to [0, n]
func Clamp(pos, n int) int {
	if pos < 0 {
		return 0
	}
	if pos > n {
		return n
	}
	return pos
}

// InsertAt places item at pos (clamped to [0, len(items)]), shifting the order of
// every existing element at index >= pos up by one. The returned slice must be used
// in place of items.
func InsertAt[T Ordered](items []T, item T, pos int) []T {
	pos = Clamp(pos, len(items))

	var zero T
	items = append(items, zero)
	copy(items[pos+1:], items[pos:])
	items[pos] = item

	item.SetOrder(pos)
	for i := pos + 1; i < len(items); i++ {
		items[i].SetOrder(items[i].GetOrder() + 1)
	}
	return items
}

// RemoveAt removes the element at pos and shifts the order of every element after
// it down by one.
func RemoveAt[T Ordered](items []T, pos int) ([]T, T, error) {
	var zero T
	if pos < 0 || pos >= len(items) {
		return items, zero, fmt.Errorf("%w: %d of %d", ErrOutOfRange, pos, len(items))
	}

	removed := items[pos]
	for i := pos + 1; i < len(items); i++ {
		items[i].SetOrder(items[i].GetOrder() - 1)
	}

	copy(items[pos:], items[pos+1:])
	items[len(items)-1] = zero
	return items[:len(items)-1], removed, nil
}

// Move relocates the element at from to index to within one collection as a single
// renumbering pass. to is clamped to [0, len(items)-1].
func Move[T Ordered](items []T, from, to int) ([]T, error) {
	items, item, err := RemoveAt(items, from)
	if err != nil {
		return items, err
	}
	return InsertAt(items, item, to), nil
}

// Renumber assigns order = index to every element and returns the elements whose
// order value actually changed.
func Renumber[T Ordered](items []T) []T {
	var changed []T
	for i, item := range items {
		if item.GetOrder() != i {
			item.SetOrder(i)
			changed = append(changed, item)
		}
	}
	return changed
}

// Sort orders the collection by its order field, keeping ties stable
func Sort[T Ordered](items []T) {
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].GetOrder() < items[j].GetOrder()
	})
}

// Check verifies that the collection is sorted and numbered exactly 0..len-1
func Check[T Ordered](items []T) error {
	for i, item := range items {
		if item.GetOrder() != i {
			return fmt.Errorf("element at index %d has order %d", i, item.GetOrder())
		}
	}
	return nil
}

// Contiguous reports whether Check passes
func Contiguous[T Ordered](items []T) bool {
	return Check(items) == nil
}
