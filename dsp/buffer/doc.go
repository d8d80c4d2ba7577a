// Package buffer provides reusable float64 storage and a pool that tracks
// how many buffers are currently checked out. Spectrogram matrices borrow
// their backing store from a Pool and hand it back on release.
package buffer
