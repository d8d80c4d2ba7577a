// Package pipeline runs one classification cycle per clip: extract the
// spectrogram, gate on activity, hand the matrix to a classifier and an
// optional exporter, release it and reset the noise floor.
//
// A Pipeline serializes its callers, so a single Pipeline may be shared by
// several goroutines. The extractor it wraps must not be used elsewhere.
package pipeline
