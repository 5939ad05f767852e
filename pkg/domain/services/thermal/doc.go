// Package thermal implements the multi-layer wall assembly engine: steady-state
// resistance and transmittance, periodic admittance properties, temperature and
// vapor pressure profiles and interstitial condensation analysis.
//
// Every function is a pure computation over its arguments. Derived values are
// recomputed on each call and assemblies are never mutated.
package thermal
