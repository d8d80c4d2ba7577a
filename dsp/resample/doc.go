// Package resample converts 16-bit recordings between integer sample rates
// with a windowed-sinc polyphase FIR, so that captures made at other rates
// can be fed to an extractor configured for a fixed rate.
//
// Quality modes:
//
//	mode            taps/phase   kaiser beta
//	QualityFast     16           5.0
//	QualityBalanced 32           7.5
//	QualityBest     64           9.0
//
// Conversion is one-shot: a whole recording is converted at once and the
// filter delay is compensated so output sample m lines up with input time
// m/outRate.
package resample
