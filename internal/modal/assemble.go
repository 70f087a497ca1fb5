package modal

import (
	"fmt"
	"math"

	"github.com/emach-lab/statmodal/internal/machine"
)

// Description attached to every frequency table.
const Description = "Natural frequencies for mode (m,n) in Hz"

// AxialOrders are the axial half-wave counts evaluated for every radial
// order.
var AxialOrders = [3]int{1, 2, 3}

// Mode identifies one vibration mode: circumferential wave number M and
// axial half-wave count N.
type Mode struct {
	M int `json:"m"`
	N int `json:"n"`
}

func (m Mode) String() string {
	return fmt.Sprintf("(%d,%d)", m.M, m.N)
}

// Row carries the three natural frequency estimates for one mode, in Hz.
type Row struct {
	Mode   Mode    `json:"mode"`
	Core   float64 `json:"core_hz"`
	Frame  float64 `json:"frame_hz"`
	System float64 `json:"system_hz"`
}

// Table is the ordered output of one estimate: axial blocks n=1,2,3, with
// the caller's radial-order sequence repeated inside each block.
type Table struct {
	Description string `json:"description"`
	Rows        []Row  `json:"rows"`
}

// Estimator runs the full mass/stiffness model for one machine design. It
// holds no state between calls; Estimate is pure.
type Estimator struct {
	Params machine.Parameters

	// Tolerance for the frame solver's real-root classification; zero
	// means DefaultTolerance.
	Tolerance float64
}

func New(p machine.Parameters) *Estimator {
	return &Estimator{Params: p}
}

// Estimate evaluates every (radial, axial) mode pair and assembles the
// core-alone, frame-alone and coupled-system frequencies. Malformed
// geometry turns up as NaN in the output rather than an error; the only
// failure mode is the frame cubic losing its real root.
func (e *Estimator) Estimate(radial []int) (*Table, error) {
	p := e.Params
	g := p.Geometry()
	masses := p.Masses()

	coreMass := masses.EffectiveCore()
	systemMass := coreMass + masses.Frame + masses.Winding

	frame := FrameShell{
		Radius:    g.FrameRadius,
		Length:    p.FrameLength,
		Thickness: p.FrameThickness,
		Modulus:   p.FrameModulus,
		Poisson:   p.FramePoisson,
		Tolerance: e.Tolerance,
	}

	// core stiffness depends on the radial order only; computed once and
	// broadcast across the axial blocks
	coreK := make([]float64, len(radial))
	for i, m := range radial {
		omega := CoreCoefficient(m, g.Kappa2)
		coreK[i] = CoreStiffness(omega, g.MeanDiameter, p.StackLength, p.YokeThickness, p.CoreModulus, p.CorePoisson)
	}

	table := &Table{
		Description: Description,
		Rows:        make([]Row, 0, len(radial)*len(AxialOrders)),
	}

	for _, n := range AxialOrders {
		for i, m := range radial {
			omega2, err := frame.SquaredCoefficient(m, n)
			if err != nil {
				return nil, err
			}
			frameK := frame.Stiffness(omega2)

			table.Rows = append(table.Rows, Row{
				Mode:   Mode{M: m, N: n},
				Core:   frequency(coreK[i], coreMass),
				Frame:  frequency(frameK, masses.Frame),
				System: frequency(coreK[i]+frameK, systemMass),
			})
		}
	}

	return table, nil
}

func frequency(stiffness, mass float64) float64 {
	return math.Sqrt(stiffness/mass) / (2 * math.Pi)
}
