package cmp_test

import (
	"strconv"
	"testing"

	"github.com/zbitech/zbi-db/pkg/utils/cmp"
)

func TestSliceEq(t *testing.T) {
	for name, testcase := range map[string]struct {
		a    []string
		b    []string
		want bool
	}{
		"equal slices": {
			a: []string{"a", "b", "c"}, b: []string{"a", "b", "c"}, want: true,
		},
		"both empty": {
			a: []string{}, b: []string{}, want: true,
		},
		"nil and empty": {
			a: nil, b: []string{}, want: true,
		},
		"same content, different order": {
			a: []string{"a", "b"}, b: []string{"b", "a"}, want: false,
		},
		"different length": {
			a: []string{"a", "b"}, b: []string{"a", "b", "c"}, want: false,
		},
		"different content": {
			a: []string{"a", "b"}, b: []string{"a", "x"}, want: false,
		},
	} {
		t.Run(name, func(t *testing.T) {
			if got := cmp.SliceEq(testcase.a, testcase.b); got != testcase.want {
				t.Errorf("SliceEq(%v, %v) = %v (expected: %v)", testcase.a, testcase.b, got, testcase.want)
			}
		})
	}
}

func TestSliceEqWith(t *testing.T) {
	pred := func(a int, b string) bool { return strconv.Itoa(a) == b }

	for name, testcase := range map[string]struct {
		a    []int
		b    []string
		want bool
	}{
		"matching in order": {
			a: []int{1, 2, 3}, b: []string{"1", "2", "3"}, want: true,
		},
		"matching out of order": {
			a: []int{1, 2, 3}, b: []string{"3", "2", "1"}, want: false,
		},
		"different length": {
			a: []int{1, 2}, b: []string{"1"}, want: false,
		},
		"one mismatch": {
			a: []int{1, 2}, b: []string{"1", "42"}, want: false,
		},
	} {
		t.Run(name, func(t *testing.T) {
			if got := cmp.SliceEqWith(testcase.a, testcase.b, pred); got != testcase.want {
				t.Errorf("SliceEqWith(%v, %v) = %v (expected: %v)", testcase.a, testcase.b, got, testcase.want)
			}
		})
	}
}

func TestSliceContentEq(t *testing.T) {
	for name, testcase := range map[string]struct {
		a    []string
		b    []string
		want bool
	}{
		"same order": {
			a: []string{"a", "b", "c"}, b: []string{"a", "b", "c"}, want: true,
		},
		"shuffled": {
			a: []string{"a", "b", "c"}, b: []string{"c", "a", "b"}, want: true,
		},
		"both empty": {
			a: []string{}, b: nil, want: true,
		},
		"multiplicity differs": {
			a: []string{"x", "x", "y"}, b: []string{"x", "y", "y"}, want: false,
		},
		"extra element": {
			a: []string{"a", "b"}, b: []string{"a", "b", "b"}, want: false,
		},
		"disjoint": {
			a: []string{"a"}, b: []string{"b"}, want: false,
		},
	} {
		t.Run(name, func(t *testing.T) {
			if got := cmp.SliceContentEq(testcase.a, testcase.b); got != testcase.want {
				t.Errorf("SliceContentEq(%v, %v) = %v (expected: %v)", testcase.a, testcase.b, got, testcase.want)
			}
		})
	}
}

func TestSliceContentEqWith(t *testing.T) {
	pred := func(a int, b string) bool { return strconv.Itoa(a) == b }

	for name, testcase := range map[string]struct {
		a    []int
		b    []string
		want bool
	}{
		"shuffled match": {
			a: []int{1, 2, 3}, b: []string{"3", "1", "2"}, want: true,
		},
		"duplicates pair one-to-one": {
			a: []int{1, 1, 2}, b: []string{"1", "2", "1"}, want: true,
		},
		"duplicate counts differ": {
			a: []int{1, 1, 2}, b: []string{"1", "2", "2"}, want: false,
		},
		"different length": {
			a: []int{1}, b: []string{"1", "1"}, want: false,
		},
	} {
		t.Run(name, func(t *testing.T) {
			if got := cmp.SliceContentEqWith(testcase.a, testcase.b, pred); got != testcase.want {
				t.Errorf("SliceContentEqWith(%v, %v) = %v (expected: %v)", testcase.a, testcase.b, got, testcase.want)
			}
		})
	}
}
