package conv

import (
	"math"
	"strconv"
	"testing"
)

func BenchmarkConvolveSame(b *testing.B) {
	signal := make([]float64, 1<<16)
	for i := range signal {
		signal[i] = math.Sin(2 * math.Pi * float64(i) / 480)
	}

	for _, k := range []int{3, 17, 97} {
		kernel := make([]float64, k)
		for i := range kernel {
			kernel[i] = 1 / float64(k)
		}

		b.Run("k="+strconv.Itoa(k), func(b *testing.B) {
			b.ReportAllocs()
			b.SetBytes(int64(len(signal) * 8))

			for range b.N {
				if _, err := Convolve(signal, kernel, ModeSame); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}
