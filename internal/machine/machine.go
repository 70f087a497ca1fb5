package machine

import (
	"fmt"
	"math"
)

// Parameters describes the stator core, winding and frame of an electric
// machine. All values are SI (meters, kilograms, pascals). Every field is
// required; the model does no validation and propagates whatever the caller
// supplies.
type Parameters struct {
	Slots          int     `yaml:"slots"`
	OuterRadius    float64 `yaml:"outer_radius"`
	InnerRadius    float64 `yaml:"inner_radius"`
	YokeThickness  float64 `yaml:"yoke_thickness"`
	StackLength    float64 `yaml:"stack_length"`
	StackingFactor float64 `yaml:"stacking_factor"`
	SlotDepth      float64 `yaml:"slot_depth"`
	ToothWidth     float64 `yaml:"tooth_width"`
	CoreDensity    float64 `yaml:"core_density"`
	CoreModulus    float64 `yaml:"core_modulus"`
	CorePoisson    float64 `yaml:"core_poisson"`
	WindingDensity float64 `yaml:"winding_density"`
	FrameDiameter  float64 `yaml:"frame_diameter"`
	FrameLength    float64 `yaml:"frame_length"`
	FrameThickness float64 `yaml:"frame_thickness"`
	FrameDensity   float64 `yaml:"frame_density"`
	FrameModulus   float64 `yaml:"frame_modulus"`
	FramePoisson   float64 `yaml:"frame_poisson"`
}

// Geometry holds the derived dimensions the modal solvers work with.
type Geometry struct {
	MeanDiameter float64 // mean diameter of the yoke ring
	SlotWidth    float64 // circumferential slot opening at the bore
	Kappa2       float64 // non-dimensional yoke thickness parameter
	FrameRadius  float64 // mean radius of the frame shell
}

// Masses holds the lumped component masses of the assembly.
type Masses struct {
	Core    float64
	Teeth   float64
	Winding float64
	Frame   float64
}

// EffectiveCore is the core mass with the teeth folded in as added mass
// without added stiffness.
func (m Masses) EffectiveCore() float64 {
	return m.Core * (1 + m.Teeth/m.Core)
}

// Geometry derives the mean yoke diameter, slot width, the thickness
// parameter kappa^2 = h^2/(3 D^2) and the frame mean radius. Slot width can
// come out negative for a tooth wider than the slot pitch; the value is
// passed through unchanged.
func (p Parameters) Geometry() Geometry {
	d := 2*p.OuterRadius - p.YokeThickness
	return Geometry{
		MeanDiameter: d,
		SlotWidth:    2*math.Pi/float64(p.Slots)*p.InnerRadius - p.ToothWidth,
		Kappa2:       p.YokeThickness * p.YokeThickness / (3 * d * d),
		FrameRadius:  0.5 * (p.FrameDiameter - p.FrameThickness),
	}
}

// Masses computes the lumped component masses from the geometry. The winding
// mass combines the in-slot volume with the end-winding overhang.
func (p Parameters) Masses() Masses {
	g := p.Geometry()
	slots := float64(p.Slots)

	core := math.Pi * g.MeanDiameter * p.YokeThickness * p.StackLength * p.CoreDensity * p.StackingFactor
	teeth := slots * p.SlotDepth * p.ToothWidth * p.StackLength * p.CoreDensity * p.StackingFactor

	inSlot := slots * g.SlotWidth * p.SlotDepth * p.StackLength
	overhang := (g.SlotWidth + p.ToothWidth) * g.MeanDiameter * math.Pi * p.SlotDepth
	winding := (inSlot + overhang) * p.WindingDensity

	frame := math.Pi * 2 * g.FrameRadius * p.FrameThickness * p.FrameLength * p.FrameDensity

	return Masses{Core: core, Teeth: teeth, Winding: winding, Frame: frame}
}

func (p Parameters) GetParams() map[string]float64 {
	return map[string]float64{
		"slots":           float64(p.Slots),
		"outer_radius":    p.OuterRadius,
		"inner_radius":    p.InnerRadius,
		"yoke_thickness":  p.YokeThickness,
		"stack_length":    p.StackLength,
		"stacking_factor": p.StackingFactor,
		"slot_depth":      p.SlotDepth,
		"tooth_width":     p.ToothWidth,
		"core_density":    p.CoreDensity,
		"core_modulus":    p.CoreModulus,
		"core_poisson":    p.CorePoisson,
		"winding_density": p.WindingDensity,
		"frame_diameter":  p.FrameDiameter,
		"frame_length":    p.FrameLength,
		"frame_thickness": p.FrameThickness,
		"frame_density":   p.FrameDensity,
		"frame_modulus":   p.FrameModulus,
		"frame_poisson":   p.FramePoisson,
	}
}

func (p *Parameters) SetParam(name string, value float64) error {
	switch name {
	case "slots":
		p.Slots = int(value)
	case "outer_radius":
		p.OuterRadius = value
	case "inner_radius":
		p.InnerRadius = value
	case "yoke_thickness":
		p.YokeThickness = value
	case "stack_length":
		p.StackLength = value
	case "stacking_factor":
		p.StackingFactor = value
	case "slot_depth":
		p.SlotDepth = value
	case "tooth_width":
		p.ToothWidth = value
	case "core_density":
		p.CoreDensity = value
	case "core_modulus":
		p.CoreModulus = value
	case "core_poisson":
		p.CorePoisson = value
	case "winding_density":
		p.WindingDensity = value
	case "frame_diameter":
		p.FrameDiameter = value
	case "frame_length":
		p.FrameLength = value
	case "frame_thickness":
		p.FrameThickness = value
	case "frame_density":
		p.FrameDensity = value
	case "frame_modulus":
		p.FrameModulus = value
	case "frame_poisson":
		p.FramePoisson = value
	default:
		return fmt.Errorf("unknown param: %s", name)
	}
	return nil
}
