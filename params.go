package propcheck

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Parameters configure a single property check. A Parameters value is
// immutable as far as the engine is concerned, it is read at check start
// and never modified.
type Parameters struct {
	// MinSuccessful is the number of successful evaluations required before
	// the check passes. Must be positive.
	MinSuccessful int `env:"PROPCHECK_MIN_SUCCESSFUL"`

	// MaxDiscardedFactor bounds the tolerated discards as a ratio of
	// MinSuccessful. Must be positive.
	MaxDiscardedFactor float64 `env:"PROPCHECK_MAX_DISCARDED_FACTOR"`

	// MinSize is the smallest size passed to the generators. Must not be
	// negative.
	MinSize int `env:"PROPCHECK_MIN_SIZE"`

	// SizeRange is the span of sizes above MinSize, so sizes are drawn from
	// [MinSize, MinSize+SizeRange]. Must not be negative.
	SizeRange int `env:"PROPCHECK_SIZE_RANGE"`
}

// DefaultParameters returns the parameters used when a check is started
// without explicit configuration.
func DefaultParameters() Parameters {
	return Parameters{
		MinSuccessful:      10,
		MaxDiscardedFactor: 5.0,
		MinSize:            0,
		SizeRange:          100,
	}
}

// ParametersFromEnv returns DefaultParameters overridden by the PROPCHECK_*
// environment variables and validates the result.
func ParametersFromEnv() (Parameters, error) {
	p := DefaultParameters()
	if err := env.Parse(&p); err != nil {
		return Parameters{}, fmt.Errorf("parse env: %w", err)
	}
	if err := p.Validate(); err != nil {
		return Parameters{}, err
	}
	return p, nil
}

// Validate rejects parameter combinations the loop cannot run with. It is
// called eagerly at check start, before any value is generated.
func (p Parameters) Validate() error {
	if p.MinSuccessful <= 0 {
		return fmt.Errorf("propcheck: MinSuccessful must be positive, got %d", p.MinSuccessful)
	}
	if p.MaxDiscardedFactor <= 0 {
		return fmt.Errorf("propcheck: MaxDiscardedFactor must be positive, got %v", p.MaxDiscardedFactor)
	}
	if p.MinSize < 0 {
		return fmt.Errorf("propcheck: MinSize must not be negative, got %d", p.MinSize)
	}
	if p.SizeRange < 0 {
		return fmt.Errorf("propcheck: SizeRange must not be negative, got %d", p.SizeRange)
	}
	if p.MaxSize() < p.MinSize {
		return fmt.Errorf("propcheck: MinSize+SizeRange overflows, got %d", p.MaxSize())
	}
	return nil
}

// MaxSize returns the largest size passed to the generators.
func (p Parameters) MaxSize() int {
	return p.MinSize + p.SizeRange
}

// MaxDiscarded returns the discard budget of a check. The product of
// MinSuccessful and MaxDiscardedFactor is truncated towards zero and
// clamped to at least one, so a check can always discard a single
// evaluation before giving up.
func (p Parameters) MaxDiscarded() int {
	n := int(float64(p.MinSuccessful) * p.MaxDiscardedFactor)
	if n < 1 {
		n = 1
	}
	return n
}

// maxEdges returns the number of edge-case candidates each generator may
// contribute to its pool before the first evaluation.
func (p Parameters) maxEdges() int {
	n := p.MinSuccessful / 5
	if n < 0 {
		n = 0
	}
	return n
}
