// Package window provides precomputed analysis windows for frame-based
// spectral processing.
//
// Tables are computed once and never mutated afterwards. [Shared] keeps one
// table per (type, size) for the whole process so repeated extractions reuse
// the same coefficients.
package window
