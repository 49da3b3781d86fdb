package direction_test

import (
	"fmt"

	"github.com/katalvlaran/gridkit/direction"
)

// ExampleDirection_Opposite shows the delta and opposite of a few directions.
func ExampleDirection_Opposite() {
	for _, d := range []direction.Direction{direction.XForward, direction.YBackward, direction.XForwardYForward} {
		fmt.Printf("%s %+v -> %s\n", d, d.Delta(), d.Opposite())
	}
	// Output:
	// XForward {DX:1 DY:0 DZ:0} -> XBackward
	// YBackward {DX:0 DY:-1 DZ:0} -> YForward
	// XForwardYForward {DX:1 DY:1 DZ:0} -> XBackwardYBackward
}
