//go:build fastmath

package response

import "github.com/meko-christian/algo-approx"

const ln10 = 2.302585092994045684017991454684

// log10 computes log10(x) as ln(x)/ln(10) with a fast approximation.
func log10(x float64) float64 {
	return approx.FastLog(x) / ln10
}
