package domain

import "math"

// Round2 rounds to currency precision (2 decimal places).
func Round2(v float64) float64 { return math.Round(v*100) / 100 }

// Round4 rounds to 4 decimal places, used for price perturbation factors
// before they are applied to a catalog price.
func Round4(v float64) float64 { return math.Round(v*10000) / 10000 }
