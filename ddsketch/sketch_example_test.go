package ddsketch_test

import (
	"fmt"

	"github.com/alexandre-lecoq/DDSketch/ddsketch"
)

func Example() {
	sketch := ddsketch.NewDefaultSketch()
	for i := 1; i <= 100; i++ {
		sketch.Add(float64(i))
	}

	// An independently built sketch can be folded in afterwards.
	another := ddsketch.NewDefaultSketch()
	for i := 101; i <= 200; i++ {
		another.Add(float64(i))
	}
	if err := sketch.Merge(another); err != nil {
		fmt.Println("merge failed:", err)
		return
	}

	for _, q := range []float64{0, 0.5, 0.95, 1} {
		value, err := sketch.Quantile(q)
		if err != nil {
			fmt.Println("query failed:", err)
			return
		}
		fmt.Printf("q%v: %.0f\n", q, value)
	}
	// Output:
	// q0: 1
	// q0.5: 100
	// q0.95: 190
	// q1: 200
}
