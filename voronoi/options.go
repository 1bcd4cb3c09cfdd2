package voronoi

import (
	"runtime"

	"github.com/katalvlaran/voro3d/integrate"
)

// Option configures a Build/BuildPartial call.
type Option func(*buildConfig)

type buildConfig struct {
	workers         int
	toleranceFactor float64
	scalarFactories []integrate.ScalarFactory
	vectorFactories []integrate.VectorFactory
}

func defaultConfig() buildConfig {
	return buildConfig{workers: runtime.GOMAXPROCS(0)}
}

// WithWorkers bounds the number of goroutines used for per-cell
// construction. n=1 forces the deterministic sequential fallback; n<=0 is
// ignored (falls back to runtime.GOMAXPROCS(0)).
func WithWorkers(n int) Option {
	return func(c *buildConfig) {
		if n > 0 {
			c.workers = n
		}
	}
}

// WithToleranceFactor overrides the clipping kernel's on-plane tolerance
// factor; see cell.WithToleranceFactor.
func WithToleranceFactor(factor float64) Option {
	return func(c *buildConfig) {
		if factor > 0 {
			c.toleranceFactor = factor
		}
	}
}

// WithScalarIntegrators registers scalar face-integrator factories,
// invoked once per emitted face in registration order.
func WithScalarIntegrators(factories ...integrate.ScalarFactory) Option {
	return func(c *buildConfig) {
		c.scalarFactories = append(c.scalarFactories, factories...)
	}
}

// WithVectorIntegrators registers vector face-integrator factories.
func WithVectorIntegrators(factories ...integrate.VectorFactory) Option {
	return func(c *buildConfig) {
		c.vectorFactories = append(c.vectorFactories, factories...)
	}
}
