package modal

import "math"

// CoreCoefficient returns the non-dimensional frequency coefficient of the
// stator yoke ring for radial mode order m, the positive square root of the
// lower branch of the second-order Donnell-Mushtari characteristic equation
//
//	x^2 - A(m)*x + kappa2*m^6 = 0,  A(m) = 1 + m^2 + kappa2*m^4.
//
// The m == 0 breathing mode is degenerate in that equation and is fixed at
// exactly 1.
func CoreCoefficient(m int, kappa2 float64) float64 {
	if m == 0 {
		return 1
	}
	m2 := float64(m) * float64(m)
	m4 := m2 * m2
	a := 1 + m2 + kappa2*m4
	return math.Sqrt(0.5 * (a - math.Sqrt(a*a-4*kappa2*m4*m2)))
}

// CoreStiffness converts a core coefficient into a lumped radial stiffness
// for the yoke ring. meanDiameter, stackLength and yoke are the ring
// dimensions, modulus and poisson the in-plane lamination properties.
func CoreStiffness(omega, meanDiameter, stackLength, yoke, modulus, poisson float64) float64 {
	return 4 * omega * omega / meanDiameter * math.Pi * stackLength * yoke * modulus / (1 - poisson*poisson)
}
