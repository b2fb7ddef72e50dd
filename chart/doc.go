// Package chart lays out a single filled area series for drawing.
//
// A [Chart] reads its samples from a [DataSource] and its bar widths from a
// [Delegate], and produces a [Frame]: the smoothed area outline, the bar
// separators, the horizontal reference lines and the bar slots, all in view
// coordinates. Frames are recomputed for every render and hold no state
// beyond the call that produced them.
//
// Pointer input is resolved with [Chart.BarAt] and [Chart.Touch], which map a
// view-space point to the bar whose slot contains it.
package chart
