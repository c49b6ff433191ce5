package saga

import (
	"context"
	"fmt"

	"tsblog-backend/pkg/logger"
)

// Step is one unit of a multi-store workflow: an action plus an
// optional compensation that undoes its side effect. Compensation is
// best-effort; failures are logged, not surfaced, so earlier
// compensations still run.
type Step struct {
	Name       string
	Run        func(ctx context.Context) error
	Compensate func(ctx context.Context) error
}

// Saga executes steps in order. When a step fails, the compensations
// of every previously completed step run in reverse order and the
// step's error is returned wrapped with its name.
type Saga struct {
	steps []Step
}

func New() *Saga {
	return &Saga{}
}

// AddStep appends a step. Steps run in the order they were added.
func (s *Saga) AddStep(step Step) *Saga {
	s.steps = append(s.steps, step)
	return s
}

// Execute runs the saga. On the first failing step the completed
// steps are unwound in reverse before the error is returned.
func (s *Saga) Execute(ctx context.Context) error {
	var done []Step

	for _, step := range s.steps {
		if err := step.Run(ctx); err != nil {
			s.unwind(ctx, done)
			return fmt.Errorf("%s: %w", step.Name, err)
		}
		done = append(done, step)
	}

	return nil
}

func (s *Saga) unwind(ctx context.Context, done []Step) {
	for i := len(done) - 1; i >= 0; i-- {
		step := done[i]
		if step.Compensate == nil {
			continue
		}
		if err := step.Compensate(ctx); err != nil {
			logger.Error("saga compensation failed: "+step.Name, err)
		}
	}
}
