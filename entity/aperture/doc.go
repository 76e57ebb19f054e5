// Package aperture builds discretized transmission masks for a double-slit
// aperture.
//
// A mask is an n×n grid of 0/1 values sampled on two symmetric coordinate
// axes. A sample transmits light (value 1) when it lies inside one of two
// vertical slits of width w and height h whose centres sit at x = ±d/2:
//
//	(d-w)/2 < |x| < (d+w)/2  and  |y| < h/2
//
// The half-extent of the x axis is w+d and that of the y axis is h. By
// default both are truncated to whole units, and a square mask stretches both
// axes to the larger one. See Parameters for the knobs.
//
// Every call computes a fresh Mask. A Mask is immutable: its accessors hand
// out copies, so a result may be shared freely between goroutines.
package aperture
