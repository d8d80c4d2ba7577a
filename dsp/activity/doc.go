// Package activity decides whether a clip carries enough acoustic energy to
// be worth classifying.
//
// A [Tracker] keeps a smoothed estimate of the mean absolute sample deviation
// across clips. Samples are counted against the estimate carried over from
// the previous clip, and the estimate is then pulled towards the new clip
// with an asymmetric moving average: it falls fast and rises slowly, so a
// single loud clip cannot permanently raise the baseline.
package activity
