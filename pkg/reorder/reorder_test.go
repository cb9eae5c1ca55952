package reorder

import (
	"fmt"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matzehuels/dropgrid/pkg/errors"
)

func TestSwap(t *testing.T) {
	tests := []struct {
		name           string
		items          []string
		source, target int
		want           []string
	}{
		{"move first to last", []string{"A", "B", "C", "D"}, 0, 3, []string{"B", "C", "D", "A"}},
		{"move last to first", []string{"A", "B", "C", "D"}, 3, 0, []string{"D", "A", "B", "C"}},
		{"move forward", []string{"A", "B", "C", "D"}, 1, 2, []string{"A", "C", "B", "D"}},
		{"move backward", []string{"A", "B", "C"}, 1, 0, []string{"B", "A", "C"}},
		{"identity", []string{"A", "B", "C"}, 2, 2, []string{"A", "B", "C"}},
		{"single element", []string{"A"}, 0, 0, []string{"A"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			orig := slices.Clone(tt.items)
			got, err := Swap(tt.items, tt.source, tt.target)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, orig, tt.items, "input must not be modified")
		})
	}
}

func TestSwapOutOfRange(t *testing.T) {
	tests := []struct {
		name           string
		items          []int
		source, target int
	}{
		{"negative source", []int{1, 2, 3}, -1, 0},
		{"source past end", []int{1, 2, 3}, 3, 0},
		{"negative target", []int{1, 2, 3}, 0, -1},
		{"target equals length", []int{1, 2, 3}, 0, 3},
		{"empty", nil, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Swap(tt.items, tt.source, tt.target)
			require.Error(t, err)
			assert.True(t, errors.Is(err, errors.ErrCodeIndexOutOfRange), "code = %v", errors.GetCode(err))
			assert.Nil(t, got)
		})
	}
}

func TestSwapInvolution(t *testing.T) {
	items := []string{"A", "B", "C", "D", "E"}
	for i := range items {
		for j := range items {
			t.Run(fmt.Sprintf("%d_%d", i, j), func(t *testing.T) {
				once, err := Swap(items, i, j)
				require.NoError(t, err)
				back, err := Swap(once, j, i)
				require.NoError(t, err)
				assert.Equal(t, items, back)
			})
		}
	}
}

func TestSwapDoesNotAlias(t *testing.T) {
	items := []int{1, 2, 3}
	got, err := Swap(items, 1, 1)
	require.NoError(t, err)
	got[0] = 99
	assert.Equal(t, 1, items[0], "identity swap must return a copy")
}

func TestMove(t *testing.T) {
	tests := []struct {
		name                   string
		source, target         []string
		sourceIndex, targetIdx int
		wantSource, wantTarget []string
	}{
		{
			name:   "into middle",
			source: []string{"A", "B"}, target: []string{"X", "Y"},
			sourceIndex: 0, targetIdx: 1,
			wantSource: []string{"B"}, wantTarget: []string{"X", "A", "Y"},
		},
		{
			name:   "append",
			source: []string{"A", "B"}, target: []string{"X", "Y"},
			sourceIndex: 1, targetIdx: 2,
			wantSource: []string{"A"}, wantTarget: []string{"X", "Y", "B"},
		},
		{
			name:   "into empty",
			source: []string{"A"}, target: nil,
			sourceIndex: 0, targetIdx: 0,
			wantSource: []string{}, wantTarget: []string{"A"},
		},
		{
			name:   "target index clamped high",
			source: []string{"A", "B"}, target: []string{"X"},
			sourceIndex: 0, targetIdx: 10,
			wantSource: []string{"B"}, wantTarget: []string{"X", "A"},
		},
		{
			name:   "target index clamped low",
			source: []string{"A", "B"}, target: []string{"X"},
			sourceIndex: 1, targetIdx: -4,
			wantSource: []string{"A"}, wantTarget: []string{"B", "X"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			origSource, origTarget := slices.Clone(tt.source), slices.Clone(tt.target)

			gotSource, gotTarget, err := Move(tt.source, tt.target, tt.sourceIndex, tt.targetIdx)
			require.NoError(t, err)
			assert.Equal(t, tt.wantSource, gotSource)
			assert.Equal(t, tt.wantTarget, gotTarget)

			assert.Equal(t, origSource, tt.source, "source must not be modified")
			assert.Equal(t, origTarget, tt.target, "target must not be modified")
		})
	}
}

func TestMoveOutOfRange(t *testing.T) {
	for _, idx := range []int{-1, 2, 5} {
		_, _, err := Move([]int{1, 2}, []int{3}, idx, 0)
		if !errors.Is(err, errors.ErrCodeIndexOutOfRange) {
			t.Errorf("Move(sourceIndex=%d) error = %v, want INDEX_OUT_OF_RANGE", idx, err)
		}
	}
}

func TestMoveProperties(t *testing.T) {
	source := []string{"A", "B", "C"}
	target := []string{"X", "Y"}

	for i := range source {
		for j := -1; j <= len(target)+1; j++ {
			t.Run(fmt.Sprintf("%d_%d", i, j), func(t *testing.T) {
				newSource, newTarget, err := Move(source, target, i, j)
				require.NoError(t, err)

				assert.Len(t, newSource, len(source)-1)
				assert.Len(t, newTarget, len(target)+1)

				placed := clampIndex(j, len(target))
				assert.Equal(t, source[i], newTarget[placed])

				// The inverse move restores both sequences.
				backTarget, backSource, err := Move(newTarget, newSource, placed, i)
				require.NoError(t, err)
				assert.Equal(t, source, backSource)
				assert.Equal(t, target, backTarget)
			})
		}
	}
}

func TestInsertRemove(t *testing.T) {
	items := []int{1, 2, 3}

	got := Insert(items, 1, 9)
	assert.Equal(t, []int{1, 9, 2, 3}, got)
	assert.Equal(t, []int{1, 2, 3}, items)

	got, err := Remove(items, 2)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2}, got)

	_, err = Remove(items, 3)
	assert.True(t, errors.Is(err, errors.ErrCodeIndexOutOfRange))
}

type itemID string

func TestNamedSliceTypes(t *testing.T) {
	type order []itemID
	got, err := Swap(order{"a", "b"}, 0, 1)
	require.NoError(t, err)
	assert.IsType(t, order{}, got)
	assert.Equal(t, order{"b", "a"}, got)
}
