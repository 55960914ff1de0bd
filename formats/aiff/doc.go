// SPDX-License-Identifier: EPL-2.0

// Package aiff decodes AIFF files into audio.Source streams using
// github.com/go-audio/aiff. Only PCM 16-bit files are supported.
package aiff
