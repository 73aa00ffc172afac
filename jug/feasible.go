package jug

// GCD returns the greatest common divisor of a and b by Euclid's algorithm.
// GCD(a, 0) == a.
func GCD(a, b int) int {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

// Feasible reports whether target units can be measured in one of two jugs
// of capacities capX and capY. Capacities must be positive and target
// non-negative; a target of zero is always feasible.
func Feasible(capX, capY, target int) bool {
	if target > max(capX, capY) {
		return false
	}
	return target%GCD(capX, capY) == 0
}
