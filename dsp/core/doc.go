// Package core holds the small numeric helpers shared by the peak, ensemble,
// noise and synthesis packages: tolerance comparison, clamping, the logistic
// mask used by skewed peaks, and channel-axis/buffer utilities.
package core
