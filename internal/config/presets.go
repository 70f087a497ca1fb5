package config

import (
	"sort"

	"github.com/emach-lab/statmodal/internal/machine"
)

// Presets are ready-made machine designs, keyed by frame size designation.
var Presets = map[string]*Config{
	// 200mm OD induction machine stator in a rolled-steel frame
	"m200": {
		Machine: machine.Parameters{
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
		},
		RadialOrders: []int{0, 1, 2, 3, 4},
		Tolerance:    DefaultTolerance,
	},
	// 315mm OD machine with a longer stack and heavier frame
	"m315": {
		Machine: machine.Parameters{
			Slots:          48,
			OuterRadius:    0.1575,
			InnerRadius:    0.11,
			YokeThickness:  0.018,
			StackLength:    0.32,
			StackingFactor: 0.97,
			SlotDepth:      0.028,
			ToothWidth:     0.007,
			CoreDensity:    7650,
			CoreModulus:    200e9,
			CorePoisson:    0.3,
			WindingDensity: 8900,
			FrameDiameter:  0.38,
			FrameLength:    0.4,
			FrameThickness: 0.012,
			FrameDensity:   7850,
			FrameModulus:   200e9,
			FramePoisson:   0.3,
		},
		RadialOrders: []int{0, 1, 2, 3, 4, 5, 6},
		Tolerance:    DefaultTolerance,
	},
	// aluminum-frame variant of the 200mm machine
	"m200-al": {
		Machine: machine.Parameters{
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
			FrameThickness: 0.012,
			FrameDensity:   2700,
			FrameModulus:   69e9,
			FramePoisson:   0.33,
		},
		RadialOrders: []int{0, 1, 2, 3, 4},
		Tolerance:    DefaultTolerance,
	},
}

func GetPreset(name string) *Config {
	cfg, ok := Presets[name]
	if !ok {
		return nil
	}
	return cfg
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
