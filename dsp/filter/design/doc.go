// Package design provides coefficient factories for common digital filter
// designs, expressed as configured ARMA filters from dsp/filter/arma.
//
// Every factory maps a user-facing design (moving average, lag/lead, notch,
// Butterworth, polynomial derivative) onto the five ARMA parameters:
// feed-forward taps, feedback taps, start index, direction, and boundary
// policy. Additional arma.Option values may be passed to override the
// design's defaults, for example to filter backward or to evaluate in the
// frequency domain.
//
// The running median is the one design that is not ARMA-representable; it
// implements the arma.Filter capability directly.
package design
