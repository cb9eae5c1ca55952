// Package reorder implements the list transformations applied when a drag
// ends: [Swap] within one container and [Move] between two containers.
//
// Both functions are pure. They never modify the slices passed in and always
// return freshly allocated slices, so callers can keep the old arrangement
// around (for undo, diffing, or re-rendering) without defensive copies.
//
// Indices are validated, never clamped, except for the insertion index of
// [Move] which may legitimately point one past the end ("append"). Callers
// derive indices from a drag session, so an out-of-range index is a bug and
// is reported as an INDEX_OUT_OF_RANGE error from pkg/errors.
//
//	next, err := reorder.Swap([]string{"A", "B", "C"}, 1, 0)   // [B A C]
//	src, dst, err := reorder.Move(left, right, 0, 1)
package reorder

import (
	"github.com/matzehuels/dropgrid/pkg/errors"
)

// Swap removes the element at source and reinserts it at target, shifting
// the elements in between by one position. Both indices must lie in
// [0, len(items)-1]. When source == target the result equals the input.
func Swap[S ~[]E, E any](items S, source, target int) (S, error) {
	n := len(items)
	if source < 0 || source >= n {
		return nil, errors.OutOfRange("swap source", source, n)
	}
	if target < 0 || target >= n {
		return nil, errors.OutOfRange("swap target", target, n)
	}

	out := make(S, n)
	switch {
	case source < target:
		copy(out, items[:source])
		copy(out[source:], items[source+1:target+1])
		out[target] = items[source]
		copy(out[target+1:], items[target+1:])
	case source > target:
		copy(out, items[:target])
		out[target] = items[source]
		copy(out[target+1:], items[target:source])
		copy(out[source+1:], items[source+1:])
	default:
		copy(out, items)
	}
	return out, nil
}

// Move removes the element at sourceIndex from source and inserts it into
// target at targetIndex, clamped to [0, len(target)]. It returns the new
// source and target slices; neither input is modified.
//
// Move assumes source and target belong to different containers. Reordering
// inside one container must go through [Swap].
func Move[S ~[]E, E any](source, target S, sourceIndex, targetIndex int) (S, S, error) {
	if sourceIndex < 0 || sourceIndex >= len(source) {
		return nil, nil, errors.OutOfRange("move source", sourceIndex, len(source))
	}

	item := source[sourceIndex]
	newSource, _ := Remove(source, sourceIndex)
	newTarget := Insert(target, clampIndex(targetIndex, len(target)), item)
	return newSource, newTarget, nil
}

// Remove returns a copy of items without the element at index.
func Remove[S ~[]E, E any](items S, index int) (S, error) {
	if index < 0 || index >= len(items) {
		return nil, errors.OutOfRange("remove", index, len(items))
	}
	out := make(S, 0, len(items)-1)
	out = append(out, items[:index]...)
	return append(out, items[index+1:]...), nil
}

// Insert returns a copy of items with item inserted at index. The index is
// clamped to [0, len(items)].
func Insert[S ~[]E, E any](items S, index int, item E) S {
	index = clampIndex(index, len(items))
	out := make(S, 0, len(items)+1)
	out = append(out, items[:index]...)
	out = append(out, item)
	return append(out, items[index:]...)
}

func clampIndex(i, n int) int {
	if i < 0 {
		return 0
	}
	if i > n {
		return n
	}
	return i
}
