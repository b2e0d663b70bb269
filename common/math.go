package common

// Base resolution of the play field; the window scales it.
const (
	BaseWidth  = 800
	BaseHeight = 600
	TPS        = 60
)

func Lerp(a, b, t float64) float64 {
	return a + t*(b-a)
}

// Clamp limits v to [lo, hi]. If hi < lo, lo wins.
func Clamp(v, lo, hi float64) float64 {
	if v > hi {
		v = hi
	}
	if v < lo {
		v = lo
	}
	return v
}
