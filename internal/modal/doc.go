// Package modal estimates natural vibration frequencies of a stator core,
// its frame and the assembled machine from Donnell-Mushtari thin-shell
// theory.
//
// The yoke ring reduces to a second-order characteristic equation solved in
// closed form by [CoreCoefficient]; the frame shell reduces to a cubic
// solved by [FrameShell.SquaredCoefficient] with Cardano's formula and a
// smallest-real-root selection. [Estimator.Estimate] combines both with the
// lumped masses from the machine package into one frequency table per
// (radial, axial) mode pair.
//
//	est := modal.New(params)
//	table, err := est.Estimate([]int{0, 1, 2, 3, 4})
//
// Everything here is pure and stateless; identical inputs produce
// bit-identical tables.
package modal
