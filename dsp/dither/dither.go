// Package dither provides the small random-noise services a real-time filter
// needs: a uniform random Source and a Noise generator that turns uniform
// draws into low-level dither added to an input signal.
//
// Dither keeps recursive filter stages from settling on an exact fixed point
// when the input is digital silence.
package dither

import "fmt"

// DitherType selects the probability distribution used for dither noise.
type DitherType int

const (
	// DitherNone adds no noise.
	DitherNone DitherType = iota
	// DitherRectangular uses a uniform (rectangular) PDF: amplitude*(2U-1).
	DitherRectangular
	// DitherTriangular uses a triangular PDF built from two uniform draws.
	DitherTriangular

	ditherTypeCount // sentinel for validation
)

var ditherTypeNames = [ditherTypeCount]string{
	"None", "Rectangular", "Triangular",
}

// String returns the name of the dither type.
func (dt DitherType) String() string {
	if dt >= 0 && dt < ditherTypeCount {
		return ditherTypeNames[dt]
	}

	return fmt.Sprintf("DitherType(%d)", dt)
}

// Valid reports whether dt is a known dither type.
func (dt DitherType) Valid() bool {
	return dt >= 0 && dt < ditherTypeCount
}
