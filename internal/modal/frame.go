package modal

import (
	"math"
	"math/cmplx"
)

// DefaultTolerance classifies a cubic root as real when its imaginary part
// is below this fraction of the root magnitude.
const DefaultTolerance = 1e-9

// FrameShell models the machine frame as a clamped-clamped cylindrical
// shell. Radius is the mean shell radius.
type FrameShell struct {
	Radius    float64
	Length    float64
	Thickness float64
	Modulus   float64
	Poisson   float64

	// Tolerance for real-root classification; zero means DefaultTolerance.
	Tolerance float64
}

// SquaredCoefficient returns the non-dimensional squared frequency
// coefficient for radial order m and axial order n: the smallest real root
// of the third-order Donnell-Mushtari characteristic equation under
// clamped-clamped boundary conditions. The cubic also admits higher
// membrane-dominated branches; taking the minimum selects the fundamental.
func (f FrameShell) SquaredCoefficient(m, n int) (float64, error) {
	tol := f.Tolerance
	if tol == 0 {
		tol = DefaultTolerance
	}

	// clamped ends shorten the effective axial wavelength
	l0 := 0.3 * f.Length / (float64(n) + 0.3)
	lam := float64(n) * math.Pi * f.Radius / (f.Length - l0)
	k2 := f.Thickness * f.Thickness / (12 * f.Radius * f.Radius)

	nu := f.Poisson
	m2 := float64(m) * float64(m)
	lam2 := lam * lam
	s := m2 + lam2

	c2 := 1 + 0.5*(3-nu)*s + k2*s*s
	c1 := 0.5 * (1 - nu) * ((3+2*nu)*lam2 + m2 + s*s + (3-nu)/(1-nu)*k2*s*s)
	c0 := 0.5 * (1 - nu) * ((1-nu*nu)*lam2*lam2 + k2*s*s*s*s)

	roots := cubicRoots(-c2, c1, -c0)

	best := math.Inf(1)
	found := false
	for _, r := range roots {
		if math.Abs(imag(r)) > tol*math.Max(1, cmplx.Abs(r)) {
			continue
		}
		if re := real(r); !found || re < best {
			best = re
			found = true
		}
	}
	if !found {
		return 0, &ModeError{Mode: Mode{M: m, N: n}, Wrapped: ErrNoRealRoot}
	}
	return best, nil
}

// Stiffness converts a squared coefficient into a lumped radial stiffness
// for the frame shell.
func (f FrameShell) Stiffness(omega2 float64) float64 {
	return 2 * omega2 / f.Radius * math.Pi * f.Length * f.Thickness * f.Modulus / (1 - f.Poisson*f.Poisson)
}
