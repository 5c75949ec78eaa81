package peak

// Reference returns a fixed 20-peak ensemble: ten left-skewed Gaussians in the
// upper channel range and ten right-skewed Lorentzians in the lower range.
// Suitable for a 1340-channel axis.
func Reference() Pipeline {
	p := make(Pipeline, 0, 20)

	gaussians := []struct{ center, amplitude, width, k float64 }{
		{1000, 6.0, 110, 0.18},
		{1050, 6.5, 115, 0.20},
		{1100, 7.0, 120, 0.22},
		{1150, 7.5, 125, 0.24},
		{1200, 8.0, 130, 0.26},
		{1250, 8.5, 135, 0.28},
		{800, 4.0, 90, 0.10},
		{850, 4.5, 95, 0.12},
		{900, 5.0, 100, 0.14},
		{950, 5.5, 105, 0.16},
	}
	for _, g := range gaussians {
		p = append(p, SkewLeft(NewGaussian(g.center, g.amplitude, g.width), g.k))
	}

	for i := range 10 {
		fi := float64(i)
		l := NewLorentzian(200+20*fi, 6+0.5*fi, 50+5*fi)
		p = append(p, SkewRight(l, 1e-2+2e-3*fi))
	}

	return p
}
