package lenders

// Number constrains the built-in numeric types.
type Number interface {
	int | int8 | int16 | int32 | int64 |
		uint | uint8 | uint16 | uint32 | uint64 |
		float32 | float64
}

// Sum drains l and returns the total of its elements.
func Sum[T Number](l Lender[T]) T {
	var total T
	ForEach(l, func(v T) { total += v })
	return total
}

// Max drains l and returns its largest element.
func Max[T Number](l Lender[T]) (T, bool) {
	return MaxBy(l, func(a, b T) bool { return a < b })
}

// Min drains l and returns its smallest element.
func Min[T Number](l Lender[T]) (T, bool) {
	return MinBy(l, func(a, b T) bool { return a < b })
}
