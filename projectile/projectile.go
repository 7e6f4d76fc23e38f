// SPDX-License-Identifier: MIT

// Package projectile simulates a point mass launched through an environment
// with constant gravity and wind, one unit of time per tick.
//
// Algorithm (per tick):
//
//	position ← position + velocity
//	velocity ← velocity + gravity + wind
//
// Simulate runs ticks until the projectile drops below y = 0.
package projectile

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/rtc/tuple"
)

// DefaultMaxTicks bounds Simulate when no WithMaxTicks option is given.
const DefaultMaxTicks = 100_000

var (
	// ErrRunaway indicates the projectile never landed within the tick budget.
	ErrRunaway = errors.New("projectile: tick limit reached before landing")

	// ErrBadTuple indicates a velocity/gravity/wind tuple with w != 0, or a
	// position with w != 1.
	ErrBadTuple = errors.New("projectile: malformed tuple")
)

// Projectile is a position (point) and a velocity (vector).
type Projectile struct {
	Position tuple.Tuple
	Velocity tuple.Tuple
}

// Environment is the constant acceleration applied each tick.
type Environment struct {
	Gravity tuple.Tuple
	Wind    tuple.Tuple
}

// Tick advances p by one step in env and returns the new state.
func Tick(env Environment, p Projectile) Projectile {
	return Projectile{
		Position: p.Position.Add(p.Velocity),
		Velocity: p.Velocity.Add(env.Gravity).Add(env.Wind),
	}
}

// Option configures Simulate.
type Option func(*options)

type options struct {
	maxTicks int
}

// WithMaxTicks caps the number of ticks. Panics on n <= 0.
func WithMaxTicks(n int) Option {
	if n <= 0 {
		panic("projectile: WithMaxTicks: n must be > 0")
	}

	return func(o *options) { o.maxTicks = n }
}

// Simulate ticks p through env while its y coordinate is non-negative,
// calling visit with each state before it is advanced (the launch state
// included). It returns the number of ticks taken.
//
// Errors:
//   - ErrBadTuple when p or env is not made of the right tuple kinds.
//   - ErrRunaway when the tick budget runs out.
//   - ctx.Err() when ctx is cancelled between ticks.
func Simulate(ctx context.Context, env Environment, p Projectile, visit func(Projectile), opts ...Option) (int, error) {
	if err := validate(env, p); err != nil {
		return 0, err
	}
	o := options{maxTicks: DefaultMaxTicks}
	for _, opt := range opts {
		opt(&o)
	}

	ticks := 0
	for p.Position.Y >= 0 {
		if ticks == o.maxTicks {
			return ticks, fmt.Errorf("after %d ticks at %v: %w", ticks, p.Position, ErrRunaway)
		}
		if err := ctx.Err(); err != nil {
			return ticks, err
		}
		if visit != nil {
			visit(p)
		}
		p = Tick(env, p)
		ticks++
	}

	return ticks, nil
}

func validate(env Environment, p Projectile) error {
	switch {
	case !p.Position.IsPoint():
		return fmt.Errorf("position %v: %w", p.Position, ErrBadTuple)
	case !p.Velocity.IsVector():
		return fmt.Errorf("velocity %v: %w", p.Velocity, ErrBadTuple)
	case !env.Gravity.IsVector():
		return fmt.Errorf("gravity %v: %w", env.Gravity, ErrBadTuple)
	case !env.Wind.IsVector():
		return fmt.Errorf("wind %v: %w", env.Wind, ErrBadTuple)
	}

	return nil
}
