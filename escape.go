package mandel

import "math"

// EscapeTime iterates z = z*z + c from z = 0 for at most maxIterations
// steps. On the first iteration where |z|^2 exceeds 4 it returns the
// continuous escape count i + shade and true, where shade smooths the
// discrete count into a banding-free gradient based on the escape
// magnitude. Points that stay bounded return 0 and false.
//
// The shade term 1 - ln(log2(|z|^2)/2) turns negative for large escape
// magnitudes and is clamped to 0; propagating it would silently corrupt
// the rendered color.
func EscapeTime(c complex128, maxIterations int) (float64, bool) {
	var z complex128
	for i := 0; i < maxIterations; i++ {
		z = z*z + c
		magSq := real(z)*real(z) + imag(z)*imag(z)
		if magSq > 4 {
			shade := 1 - math.Log(math.Log2(magSq)/2)
			if math.IsNaN(shade) || shade < 0 {
				shade = 0
			}
			return float64(i) + shade, true
		}
	}
	return 0, false
}
