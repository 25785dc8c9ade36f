package filter

// Kernel is a square, non-separable integer convolution kernel.
// The weighted sum is divided by Divisor (rounded) before clamping.
type Kernel struct {
	// Size is the side length (3 or 5).
	Size int

	// Weights holds Size*Size coefficients in row-major order.
	Weights []int

	// Divisor normalises the sum. 1 for gradient kernels.
	Divisor int
}

// Radius returns the number of taps on each side of the centre.
func (k Kernel) Radius() int {
	return k.Size / 2
}

// Sum returns the sum of all weights.
func (k Kernel) Sum() int {
	s := 0
	for _, w := range k.Weights {
		s += w
	}
	return s
}

// Transpose returns the kernel mirrored about its main diagonal.
func (k Kernel) Transpose() Kernel {
	t := Kernel{Size: k.Size, Weights: make([]int, len(k.Weights)), Divisor: k.Divisor}
	for y := range k.Size {
		for x := range k.Size {
			t.Weights[x*k.Size+y] = k.Weights[y*k.Size+x]
		}
	}
	return t
}

// Smoothing kernels, normalised by their weight sum.
var (
	Gaussian3 = Kernel{
		Size: 3,
		Weights: []int{
			1, 2, 1,
			2, 4, 2,
			1, 2, 1,
		},
		Divisor: 16,
	}

	Gaussian5 = Kernel{
		Size: 5,
		Weights: []int{
			1, 4, 6, 4, 1,
			4, 16, 24, 16, 4,
			6, 24, 36, 24, 6,
			4, 16, 24, 16, 4,
			1, 4, 6, 4, 1,
		},
		Divisor: 256,
	}
)

// Horizontal-gradient kernels. The vertical kernels are their transposes.
var (
	SobelX = Kernel{
		Size: 3,
		Weights: []int{
			-1, 0, 1,
			-2, 0, 2,
			-1, 0, 1,
		},
		Divisor: 1,
	}

	PrewittX = Kernel{
		Size: 3,
		Weights: []int{
			-1, 0, 1,
			-1, 0, 1,
			-1, 0, 1,
		},
		Divisor: 1,
	}

	SobelY   = SobelX.Transpose()
	PrewittY = PrewittX.Transpose()
)
