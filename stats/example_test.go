package stats_test

import (
	"fmt"

	"github.com/cwbudde/algo-shotrate/stats"
)

func ExampleMedian() {
	fmt.Printf("%.1f\n", stats.Median([]float64{4, 1, 3, 2}))

	// Output:
	// 2.5
}

func ExampleDiff() {
	fmt.Println(stats.Diff([]float64{0.0, 0.1, 0.3}))

	// Output:
	// [0.1 0.19999999999999998]
}
