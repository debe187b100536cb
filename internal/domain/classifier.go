package domain

import m "loshu.dev/pkg/loshu/internal/model"

// Supported order range.
const (
	MinOrder = 3
	MaxOrder = 9
)

// Classify returns the parity class of n, or an *InvalidOrderError when n is
// outside [MinOrder, MaxOrder].
func Classify(n int) (m.OrderClass, error) {
	if n < MinOrder || n > MaxOrder {
		return "", &InvalidOrderError{Order: n, Min: MinOrder, Max: MaxOrder}
	}

	return classOf(n), nil
}

// classOf splits any n >= 3 into its class; the range bound lives in Classify.
func classOf(n int) m.OrderClass {
	switch {
	case n%2 == 1:
		return m.ClassOdd
	case n%4 == 0:
		return m.ClassDoublyEven
	default:
		return m.ClassSinglyEven
	}
}
