package mandel

import "sort"

// Classic regions / landmarks in the Mandelbrot set, usable as starting
// viewports for the viewer and the snapshot tool.
var (
	// FullSet shows the whole set, the default starting view.
	FullSet = Viewport{
		TopLeft:     complex(-2.0, 1.25),
		BottomRight: complex(1.0, -1.25),
	}

	// SeahorseValley: dense filaments and repeating "seahorse" curls
	SeahorseValley = Viewport{
		TopLeft:     complex(-0.8, 0.15),
		BottomRight: complex(-0.7, 0.05),
	}

	// ElephantValley: large bulb with trunk-like tendrils
	ElephantValley = Viewport{
		TopLeft:     complex(-1.85, -0.02),
		BottomRight: complex(-1.75, -0.10),
	}

	// SpiralMinibrot: small Mandelbrot copy with tight spiral arms
	SpiralMinibrot = Viewport{
		TopLeft:     complex(-0.7435, 0.1325),
		BottomRight: complex(-0.7420, 0.1310),
	}

	// TripleSpiral: threefold symmetric spiral structure
	TripleSpiral = Viewport{
		TopLeft:     complex(-0.7480, 0.0980),
		BottomRight: complex(-0.7450, 0.0950),
	}

	// ValleyOfTheDragon: deep, highly detailed spiral filaments
	ValleyOfTheDragon = Viewport{
		TopLeft:     complex(-0.7400, 0.1850),
		BottomRight: complex(-0.7350, 0.1800),
	}

	// MinibrotInMiniSpiral: self-similar Mandelbrot copy inside a spiral arm
	MinibrotInMiniSpiral = Viewport{
		TopLeft:     complex(-1.7390, -0.0220),
		BottomRight: complex(-1.7375, -0.0235),
	}
)

var views = map[string]Viewport{
	"full":            FullSet,
	"seahorse":        SeahorseValley,
	"elephant":        ElephantValley,
	"spiral-minibrot": SpiralMinibrot,
	"triple-spiral":   TripleSpiral,
	"dragon":          ValleyOfTheDragon,
	"mini-spiral":     MinibrotInMiniSpiral,
}

// ViewByName looks up a named landmark viewport.
func ViewByName(name string) (Viewport, bool) {
	v, ok := views[name]
	return v, ok
}

// ViewNames lists the recognized landmark names, sorted for usage texts.
func ViewNames() []string {
	names := make([]string, 0, len(views))
	for name := range views {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
