//go:build !fastmath

package response

import "math"

func log10(x float64) float64 {
	return math.Log10(x)
}
