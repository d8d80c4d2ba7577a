// Package spectrogram extracts a pooled log-power spectrogram from a
// fixed-length 16-bit mono clip and decides whether the clip is active
// enough to classify.
//
// Each clip is DC-corrected and peak-normalized once, then cut into
// overlapping frames. Every frame is windowed, transformed, pooled and
// log-compressed into one row of a [Matrix]. The same clip statistics feed
// an [activity.Tracker] whose decision is returned with the matrix.
//
// The returned Matrix belongs to the caller, who must call Release once the
// classifier or exporter is done with it.
package spectrogram
