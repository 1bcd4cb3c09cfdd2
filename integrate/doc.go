// Package integrate implements the optional face-integrator capability:
// user-supplied callables invoked once per emitted face, producing either
// a scalar or a 3-vector value that is accumulated alongside the
// tessellation's faces.
//
// Integrators are dynamically dispatched only at the factory boundary:
// ScalarFactory/VectorFactory are instantiated fresh for every face, so
// the resulting ScalarFaceIntegrator/VectorFaceIntegrator value is used
// exactly once and never shared across goroutines.
package integrate
