package util

import (
	"golang.org/x/exp/constraints"
)

func Max[T constraints.Ordered](args ...T) T {
	if len(args) == 0 {
		return *new(T)
	}

	if isNan(args[0]) {
		return args[0]
	}

	max := args[0]
	for _, arg := range args[1:] {

		if isNan(arg) {
			return arg
		}

		if arg > max {
			max = arg
		}
	}
	return max
}

func Min[T constraints.Ordered](args ...T) T {
	if len(args) == 0 {
		return *new(T)
	}

	if isNan(args[0]) {
		return args[0]
	}

	min := args[0]
	for _, arg := range args[1:] {

		if isNan(arg) {
			return arg
		}

		if arg < min {
			min = arg
		}
	}
	return min
}

// Clamp3 clamps v to the range spanned by a and b, whichever order
// they are given in.
func Clamp3[T constraints.Ordered](v T, a T, b T) T {
	lower := Min(a, b)
	upper := Max(a, b)
	if v < lower {
		return lower
	}
	if v > upper {
		return upper
	}
	return v
}

func isNan[T comparable](arg T) bool {
	return arg != arg
}
