package modal_test

import (
	"errors"
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/emach-lab/statmodal/internal/machine"
	"github.com/emach-lab/statmodal/internal/modal"
)

func sampleParams() machine.Parameters {
	return machine.Parameters{
		Slots:          36,
		OuterRadius:    0.1,
		InnerRadius:    0.07,
		YokeThickness:  0.01,
		StackLength:    0.2,
		StackingFactor: 0.95,
		SlotDepth:      0.02,
		ToothWidth:     0.005,
		CoreDensity:    7650,
		CoreModulus:    200e9,
		CorePoisson:    0.3,
		WindingDensity: 8900,
		FrameDiameter:  0.25,
		FrameLength:    0.25,
		FrameThickness: 0.01,
		FrameDensity:   7850,
		FrameModulus:   200e9,
		FramePoisson:   0.3,
	}
}

var _ = Describe("CoreCoefficient", func() {
	It("returns exactly 1 for the breathing mode regardless of kappa2", func() {
		Expect(modal.CoreCoefficient(0, 1e-6)).To(Equal(1.0))
		Expect(modal.CoreCoefficient(0, 0.5)).To(Equal(1.0))
	})

	It("satisfies the characteristic equation for m > 0", func() {
		kappa2 := 9.234e-5
		for m := 1; m <= 8; m++ {
			omega := modal.CoreCoefficient(m, kappa2)
			m2 := float64(m * m)
			a := 1 + m2 + kappa2*m2*m2
			x := omega * omega
			residual := x*x - a*x + kappa2*m2*m2*m2
			Expect(residual).To(BeNumerically("~", 0, 1e-9),
				"residual for m=%d", m)
		}
	})

	It("is positive and below 1 for bending modes of a thin ring", func() {
		kappa2 := 1e-4
		for m := 2; m <= 6; m++ {
			omega := modal.CoreCoefficient(m, kappa2)
			Expect(omega).To(BeNumerically(">", 0))
			Expect(omega).To(BeNumerically("<", 1))
		}
	})
})

var _ = Describe("FrameShell", func() {
	var shell modal.FrameShell

	BeforeEach(func() {
		p := sampleParams()
		g := p.Geometry()
		shell = modal.FrameShell{
			Radius:    g.FrameRadius,
			Length:    p.FrameLength,
			Thickness: p.FrameThickness,
			Modulus:   p.FrameModulus,
			Poisson:   p.FramePoisson,
		}
	})

	It("returns a root of the characteristic cubic", func() {
		for m := 0; m <= 5; m++ {
			for n := 1; n <= 3; n++ {
				omega2, err := shell.SquaredCoefficient(m, n)
				Expect(err).NotTo(HaveOccurred())

				c2, c1, c0 := frameCubic(shell, m, n)
				residual := omega2*omega2*omega2 - c2*omega2*omega2 + c1*omega2 - c0
				scale := math.Max(1, math.Abs(c0))
				Expect(residual/scale).To(BeNumerically("~", 0, 1e-9),
					"mode (%d,%d)", m, n)
			}
		}
	})

	It("selects the smallest real root", func() {
		for m := 0; m <= 5; m++ {
			for n := 1; n <= 3; n++ {
				omega2, err := shell.SquaredCoefficient(m, n)
				Expect(err).NotTo(HaveOccurred())

				for _, r := range allRealRoots(shell, m, n) {
					Expect(omega2).To(BeNumerically("<=", r+1e-9),
						"mode (%d,%d)", m, n)
				}
			}
		}
	})

	It("keeps the squared coefficient positive", func() {
		omega2, err := shell.SquaredCoefficient(2, 1)
		Expect(err).NotTo(HaveOccurred())
		Expect(omega2).To(BeNumerically(">", 0))
	})

	It("reports the failing mode when no root classifies as real", func() {
		// a tolerance below Cardano's floating-point residue rejects
		// every root
		shell.Tolerance = 1e-300

		_, err := shell.SquaredCoefficient(2, 1)
		Expect(err).To(HaveOccurred())
		Expect(errors.Is(err, modal.ErrNoRealRoot)).To(BeTrue())

		var modeErr *modal.ModeError
		Expect(errors.As(err, &modeErr)).To(BeTrue())
		Expect(modeErr.Mode).To(Equal(modal.Mode{M: 2, N: 1}))
		Expect(err.Error()).To(ContainSubstring("mode (2,1)"))
	})
})

var _ = Describe("Estimator", func() {
	var est *modal.Estimator

	BeforeEach(func() {
		est = modal.New(sampleParams())
	})

	It("produces one row per (radial, axial) pair in axial blocks", func() {
		radial := []int{0, 1, 2, 3, 4}
		table, err := est.Estimate(radial)
		Expect(err).NotTo(HaveOccurred())
		Expect(table.Rows).To(HaveLen(len(radial) * 3))
		Expect(table.Description).To(Equal("Natural frequencies for mode (m,n) in Hz"))

		i := 0
		for _, n := range []int{1, 2, 3} {
			for _, m := range radial {
				Expect(table.Rows[i].Mode).To(Equal(modal.Mode{M: m, N: n}))
				i++
			}
		}
	})

	It("computes a finite positive breathing-mode frequency", func() {
		table, err := est.Estimate([]int{0})
		Expect(err).NotTo(HaveOccurred())

		row := table.Rows[0]
		Expect(row.Mode.String()).To(Equal("(0,1)"))
		Expect(row.Core).To(BeNumerically(">", 0))
		Expect(math.IsInf(row.Core, 0)).To(BeFalse())

		// m=0 uses the fixed coefficient, so the core frequency is
		// 1/(2pi) * sqrt(Kc(omega=1)/Meff)
		p := sampleParams()
		g := p.Geometry()
		k := modal.CoreStiffness(1, g.MeanDiameter, p.StackLength, p.YokeThickness, p.CoreModulus, p.CorePoisson)
		want := math.Sqrt(k/p.Masses().EffectiveCore()) / (2 * math.Pi)
		Expect(row.Core).To(BeNumerically("~", want, 1e-9*want))
	})

	It("always lowers the assembled frequency below the stiffer sub-system", func() {
		table, err := est.Estimate([]int{0, 1, 2, 3, 4})
		Expect(err).NotTo(HaveOccurred())

		for _, row := range table.Rows {
			upper := math.Max(row.Core, row.Frame)
			Expect(row.System).To(BeNumerically("<", upper),
				"mode %s", row.Mode)
		}
	})

	It("is idempotent", func() {
		first, err := est.Estimate([]int{0, 1, 2, 3, 4})
		Expect(err).NotTo(HaveOccurred())
		second, err := est.Estimate([]int{0, 1, 2, 3, 4})
		Expect(err).NotTo(HaveOccurred())
		Expect(second).To(Equal(first))
	})
})

// frameCubic recomputes the monic cubic coefficients for a mode pair.
func frameCubic(f modal.FrameShell, m, n int) (c2, c1, c0 float64) {
	l0 := 0.3 * f.Length / (float64(n) + 0.3)
	lam := float64(n) * math.Pi * f.Radius / (f.Length - l0)
	k2 := f.Thickness * f.Thickness / (12 * f.Radius * f.Radius)

	nu := f.Poisson
	m2 := float64(m) * float64(m)
	lam2 := lam * lam
	s := m2 + lam2

	c2 = 1 + 0.5*(3-nu)*s + k2*s*s
	c1 = 0.5 * (1 - nu) * ((3+2*nu)*lam2 + m2 + s*s + (3-nu)/(1-nu)*k2*s*s)
	c0 = 0.5 * (1 - nu) * ((1-nu*nu)*lam2*lam2 + k2*s*s*s*s)
	return c2, c1, c0
}

// allRealRoots finds the real roots of the characteristic cubic by scanning
// for sign changes and bisecting, independent of the solver under test.
func allRealRoots(f modal.FrameShell, m, n int) []float64 {
	c2, c1, c0 := frameCubic(f, m, n)
	poly := func(x float64) float64 {
		return x*x*x - c2*x*x + c1*x - c0
	}

	// all roots lie within the Cauchy bound
	bound := 1 + math.Max(math.Abs(c2), math.Max(math.Abs(c1), math.Abs(c0)))

	var roots []float64
	const samples = 200000
	prev := poly(-bound)
	prevX := -bound
	for i := 1; i <= samples; i++ {
		x := -bound + 2*bound*float64(i)/samples
		v := poly(x)
		if prev == 0 {
			roots = append(roots, prevX)
		} else if prev*v < 0 {
			lo, hi := prevX, x
			for j := 0; j < 100; j++ {
				mid := (lo + hi) / 2
				if poly(lo)*poly(mid) <= 0 {
					hi = mid
				} else {
					lo = mid
				}
			}
			roots = append(roots, (lo+hi)/2)
		}
		prev, prevX = v, x
	}
	return roots
}
