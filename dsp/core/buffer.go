package core

// EnsureLen returns a slice with the requested length, reusing buf capacity if possible.
func EnsureLen(buf []float64, n int) []float64 {
	if n <= 0 {
		return buf[:0]
	}

	if cap(buf) >= n {
		return buf[:n]
	}

	return make([]float64, n)
}

// At returns buf[i], or 0 when buf is too short. A nil slice reads as silence.
func At(buf []float64, i int) float64 {
	if i < len(buf) {
		return buf[i]
	}

	return 0
}
