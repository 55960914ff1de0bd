// SPDX-License-Identifier: EPL-2.0

package mix

import "errors"

var (
	ErrInvalidSampleRate = errors.New("sample rate must be positive")
	ErrInvalidBeats      = errors.New("beat times must be finite and non-decreasing")
	ErrInvalidGain       = errors.New("gain must be finite and non-negative")
	ErrInvalidEnvelope   = errors.New("envelope lengths must be non-negative and duck amount in [0, 1]")
	ErrInvalidDuration   = errors.New("slice duration bounds must satisfy 0 <= min <= max")
	ErrInvalidCount      = errors.New("slice count bounds must satisfy 0 <= min <= max")
	ErrNilRandSource     = errors.New("random source must not be nil")
)
