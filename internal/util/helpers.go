package util

// Clamp constrains a value to a range.
func Clamp(value, min, max int) int {
	if value < min {
		return min
	}
	if value > max {
		return max
	}
	return value
}

// Wrap moves value into [0, max], wrapping around at both ends.
func Wrap(value, max int) int {
	n := max + 1
	if n <= 0 {
		return 0
	}
	value %= n
	if value < 0 {
		value += n
	}
	return value
}
