package lines_test

import (
	"fmt"

	"github.com/katalvlaran/spatialhash/lines"
)

////////////////////////////////////////////////////////////////////////////////
// Example: Bresenham
////////////////////////////////////////////////////////////////////////////////

// ExampleBresenham walks the segment (0,0)→(5,2) and prints every crossed
// cell. The path includes both endpoints and never exceeds
// max(|Δx|,|Δy|)+1 cells.
//
// Complexity: O(max(|Δx|,|Δy|)).
func ExampleBresenham() {
	for c := range lines.Bresenham(0, 0, 5, 2) {
		fmt.Printf("(%d,%d) ", c.X, c.Y)
	}
	fmt.Println()

	// Output:
	// (0,0) (1,0) (2,1) (3,1) (4,2) (5,2)
}

////////////////////////////////////////////////////////////////////////////////
// Example: Wu
////////////////////////////////////////////////////////////////////////////////

// ExampleWu rasterises a shallow segment; every step yields the two cells
// bracketing the ideal line, endpoint columns first.
func ExampleWu() {
	count := 0
	for range lines.Wu(0, 0.2, 5, 0.2) {
		count++
	}
	fmt.Println("cells:", count)

	// Output:
	// cells: 12
}
