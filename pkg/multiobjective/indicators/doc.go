// Package indicators computes quality indicators that compare an
// approximation front against a reference front in objective space.
//
// All indicators assume minimization. The free functions in this package
// operate on plain point slices and validate their inputs; Evaluate,
// EvaluateAll and Run add optional normalization, default parameters and
// dispatch by textual identifier on top of them.
package indicators
