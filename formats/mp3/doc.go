// SPDX-License-Identifier: EPL-2.0

// Package mp3 decodes MP3 files into audio.Source streams using
// github.com/hajimehoshi/go-mp3. Output is always stereo 16-bit PCM
// at the file's native sample rate.
package mp3
