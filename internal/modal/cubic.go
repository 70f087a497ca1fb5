package modal

import (
	"math"
	"math/cmplx"
)

// cubicRoots returns all three roots of the monic cubic
//
//	x^3 + a*x^2 + b*x + c = 0
//
// using Cardano's formula evaluated in complex arithmetic, so complex
// conjugate pairs come out directly instead of through iteration.
func cubicRoots(a, b, c float64) [3]complex128 {
	d0 := complex(a*a-3*b, 0)
	d1 := complex(2*a*a*a-9*a*b+27*c, 0)

	s := cmplx.Sqrt(d1*d1 - 4*d0*d0*d0)

	// take whichever branch avoids cancellation in d1 +- s
	u := (d1 + s) / 2
	if v := (d1 - s) / 2; cmplx.Abs(v) > cmplx.Abs(u) {
		u = v
	}

	if cmplx.Abs(u) == 0 {
		// d0 == d1 == 0: triple root
		r := complex(-a/3, 0)
		return [3]complex128{r, r, r}
	}

	w := cmplx.Pow(u, 1.0/3.0)
	zeta := complex(-0.5, math.Sqrt(3)/2)

	var roots [3]complex128
	for k := range roots {
		roots[k] = -(complex(a, 0) + w + d0/w) / 3
		w *= zeta
	}
	return roots
}
