// SPDX-License-Identifier: EPL-2.0

// Package beat defines the beat-detection contract consumed by the
// mixing pipelines and ships a simple energy-based reference detector.
//
// The mixing core treats detection as a black box: any Detector that
// returns ascending timestamps in seconds will do. Accuracy is
// explicitly not this package's business; swap in a better backend
// when you have one.
package beat
