// Package spectrum turns windowed time-domain frames into power spectra and
// pools them into log-compressed bands.
//
// The transform itself is delegated to a [Transformer]. Three backends are
// available: gonum's real FFT (any even size, the default), an algo-fft
// complex plan, and go-dsp's FFTReal as a reference implementation.
package spectrum
