package machine

import (
	"math"
	"testing"
)

func sampleParams() Parameters {
	return Parameters{
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

func TestGeometry(t *testing.T) {
	p := sampleParams()
	g := p.Geometry()

	if math.Abs(g.MeanDiameter-0.19) > 1e-12 {
		t.Errorf("expected mean diameter 0.19, got %f", g.MeanDiameter)
	}

	wantSlot := 2*math.Pi/36*0.07 - 0.005
	if math.Abs(g.SlotWidth-wantSlot) > 1e-12 {
		t.Errorf("expected slot width %f, got %f", wantSlot, g.SlotWidth)
	}

	wantKappa2 := 0.01 * 0.01 / (3 * 0.19 * 0.19)
	if math.Abs(g.Kappa2-wantKappa2) > 1e-15 {
		t.Errorf("expected kappa2 %g, got %g", wantKappa2, g.Kappa2)
	}

	if math.Abs(g.FrameRadius-0.12) > 1e-12 {
		t.Errorf("expected frame radius 0.12, got %f", g.FrameRadius)
	}
}

func TestMassesPositive(t *testing.T) {
	m := sampleParams().Masses()

	if m.Core <= 0 {
		t.Errorf("core mass should be positive, got %f", m.Core)
	}
	if m.Teeth <= 0 {
		t.Errorf("teeth mass should be positive, got %f", m.Teeth)
	}
	if m.Winding <= 0 {
		t.Errorf("winding mass should be positive, got %f", m.Winding)
	}
	if m.Frame <= 0 {
		t.Errorf("frame mass should be positive, got %f", m.Frame)
	}
}

func TestCoreMass(t *testing.T) {
	m := sampleParams().Masses()

	want := math.Pi * 0.19 * 0.01 * 0.2 * 7650 * 0.95
	if math.Abs(m.Core-want) > 1e-9 {
		t.Errorf("expected core mass %f, got %f", want, m.Core)
	}
}

func TestEffectiveCore(t *testing.T) {
	m := sampleParams().Masses()

	// teeth act as added mass on the yoke
	want := m.Core + m.Teeth
	if math.Abs(m.EffectiveCore()-want) > 1e-9 {
		t.Errorf("expected effective core %f, got %f", want, m.EffectiveCore())
	}
}

func TestNegativeSlotWidthPropagates(t *testing.T) {
	p := sampleParams()
	p.ToothWidth = 0.05 // wider than the slot pitch

	g := p.Geometry()
	if g.SlotWidth >= 0 {
		t.Fatalf("expected negative slot width, got %f", g.SlotWidth)
	}

	// no clamping anywhere downstream
	if m := p.Masses(); m.Winding >= 0 {
		t.Errorf("expected negative winding mass to propagate, got %f", m.Winding)
	}
}

func TestSetParamRoundTrip(t *testing.T) {
	p := sampleParams()

	for name, val := range p.GetParams() {
		if err := p.SetParam(name, val); err != nil {
			t.Errorf("SetParam(%s): %v", name, err)
		}
	}

	if err := p.SetParam("bogus", 1); err == nil {
		t.Error("expected error for unknown param")
	}
}
