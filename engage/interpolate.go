package engage

// Extrapolation controls Interpolate outside its input range.
type Extrapolation uint8

const (
	// Extend continues the nearest segment linearly.
	Extend Extrapolation = iota
	// Clamp holds the nearest output value.
	Clamp
)

// Interpolate maps x from the ascending input points onto the output points
// piecewise linearly. in and out must have the same length, at least two.
// Zero-width segments resolve to their end value.
func Interpolate(x float64, in, out []float64, ex Extrapolation) float64 {
	n := len(in)
	if n < 2 || len(out) != n {
		if len(out) > 0 {
			return out[0]
		}
		return 0
	}
	if ex == Clamp {
		if x <= in[0] {
			return out[0]
		}
		if x >= in[n-1] {
			return out[n-1]
		}
	}
	// Pick the segment containing x, or the outermost one.
	i := 0
	for i < n-2 && x > in[i+1] {
		i++
	}
	lo, hi := in[i], in[i+1]
	if hi == lo {
		if x < lo {
			return out[i]
		}
		return out[i+1]
	}
	t := (x - lo) / (hi - lo)
	return out[i] + t*(out[i+1]-out[i])
}
