package sweep

import (
	"context"
	"fmt"
	"sync"

	"github.com/emach-lab/statmodal/internal/machine"
	"github.com/emach-lab/statmodal/internal/modal"
)

// Point is the estimate for one sampled parameter value.
type Point struct {
	Value float64
	Table *modal.Table
}

// Sweep varies a single machine parameter across [From, To] and runs the
// full estimate at each sample. The samples are independent, so they run
// concurrently; results come back in sample order regardless.
type Sweep struct {
	Base      machine.Parameters
	Param     string
	From, To  float64
	Steps     int
	Radial    []int
	Tolerance float64
}

func (s *Sweep) Run(ctx context.Context) ([]Point, error) {
	if s.Steps < 1 {
		return nil, fmt.Errorf("sweep needs at least one step, got %d", s.Steps)
	}

	// validate the parameter name up front, before spawning workers
	probe := s.Base
	if err := probe.SetParam(s.Param, s.From); err != nil {
		return nil, err
	}

	points := make([]Point, s.Steps)
	errs := make([]error, s.Steps)

	var wg sync.WaitGroup
	for i := 0; i < s.Steps; i++ {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()

			if ctx.Err() != nil {
				errs[idx] = ctx.Err()
				return
			}

			value := s.From
			if s.Steps > 1 {
				value += float64(idx) * (s.To - s.From) / float64(s.Steps-1)
			}

			params := s.Base
			if err := params.SetParam(s.Param, value); err != nil {
				errs[idx] = err
				return
			}

			est := &modal.Estimator{Params: params, Tolerance: s.Tolerance}
			table, err := est.Estimate(s.Radial)
			if err != nil {
				errs[idx] = fmt.Errorf("%s=%g: %w", s.Param, value, err)
				return
			}

			points[idx] = Point{Value: value, Table: table}
		}(i)
	}

	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}

	return points, nil
}
