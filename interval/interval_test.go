package interval_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/kvistberg/gridpath/interval"
)

func iv(lo, hi float64) interval.Interval { return interval.Interval{Lo: lo, Hi: hi} }

func TestInterval_Empty(t *testing.T) {
	require.False(t, iv(0, 1).Empty())
	require.True(t, iv(1, 1).Empty())
	require.True(t, iv(2, 1).Empty())
}

func TestDiff(t *testing.T) {
	cases := []struct {
		name string
		a, b []interval.Interval
		want []interval.Interval
	}{
		{
			name: "Disjoint",
			a:    []interval.Interval{iv(0, 1)},
			b:    []interval.Interval{iv(2, 3)},
			want: []interval.Interval{iv(0, 1)},
		},
		{
			name: "TouchingIsDisjoint",
			a:    []interval.Interval{iv(0, 1)},
			b:    []interval.Interval{iv(1, 2)},
			want: []interval.Interval{iv(0, 1)},
		},
		{
			name: "SplitAroundContained",
			a:    []interval.Interval{iv(0, 10)},
			b:    []interval.Interval{iv(2, 3)},
			want: []interval.Interval{iv(0, 2), iv(3, 10)},
		},
		{
			name: "SwallowedEntirely",
			a:    []interval.Interval{iv(2, 3)},
			b:    []interval.Interval{iv(0, 10)},
			want: nil,
		},
		{
			name: "OverlapLeft",
			a:    []interval.Interval{iv(0, 5)},
			b:    []interval.Interval{iv(3, 8)},
			want: []interval.Interval{iv(0, 3)},
		},
		{
			name: "OverlapRight",
			a:    []interval.Interval{iv(3, 8)},
			b:    []interval.Interval{iv(0, 5)},
			want: []interval.Interval{iv(5, 8)},
		},
		{
			name: "MultipleSubtrahends",
			a:    []interval.Interval{iv(0, 10)},
			b:    []interval.Interval{iv(2, 3), iv(5, 6)},
			want: []interval.Interval{iv(0, 2), iv(3, 5), iv(6, 10)},
		},
		{
			name: "MultipleMinuends",
			a:    []interval.Interval{iv(0, 2), iv(4, 6)},
			b:    []interval.Interval{iv(1, 5)},
			want: []interval.Interval{iv(0, 1), iv(5, 6)},
		},
		{
			name: "EmptiesDropped",
			a:    []interval.Interval{iv(0, 1), iv(3, 3)},
			b:    nil,
			want: []interval.Interval{iv(0, 1)},
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, interval.Diff(tc.a, tc.b))
		})
	}
}

func TestIntersect(t *testing.T) {
	cases := []struct {
		name string
		a, b []interval.Interval
		want []interval.Interval
	}{
		{
			name: "Disjoint",
			a:    []interval.Interval{iv(0, 1)},
			b:    []interval.Interval{iv(2, 3)},
			want: nil,
		},
		{
			name: "TouchingIsEmpty",
			a:    []interval.Interval{iv(0, 1)},
			b:    []interval.Interval{iv(1, 2)},
			want: nil,
		},
		{
			name: "Contained",
			a:    []interval.Interval{iv(0, 10)},
			b:    []interval.Interval{iv(2, 3)},
			want: []interval.Interval{iv(2, 3)},
		},
		{
			name: "PartialOverlap",
			a:    []interval.Interval{iv(0, 5)},
			b:    []interval.Interval{iv(3, 8)},
			want: []interval.Interval{iv(3, 5)},
		},
		{
			name: "ManyToMany",
			a:    []interval.Interval{iv(0, 3), iv(5, 9)},
			b:    []interval.Interval{iv(2, 6), iv(8, 10)},
			want: []interval.Interval{iv(2, 3), iv(5, 6), iv(8, 9)},
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, interval.Intersect(tc.a, tc.b))
		})
	}
}

// Diff and Intersect must not mutate their arguments.
func TestInputsUntouched(t *testing.T) {
	a := []interval.Interval{iv(0, 10)}
	b := []interval.Interval{iv(2, 3)}
	_ = interval.Diff(a, b)
	_ = interval.Intersect(a, b)
	require.Equal(t, []interval.Interval{iv(0, 10)}, a)
	require.Equal(t, []interval.Interval{iv(2, 3)}, b)
}
