package basis_test

import (
	"fmt"

	"github.com/cwbudde/algo-dvr/dvr/basis"
)

func ExampleNew() {
	b, err := basis.New(basis.GeometrySpherical, 4, 2)
	if err != nil {
		panic(err)
	}
	fmt.Println(b)
	fmt.Println(b.Abscissas())
	fmt.Println(b.Weights())
	// Output:
	// spherical(N=4, R=2, k=6.28319, open)
	// [0.25 0.75 1.25 1.75]
	// [0.5 0.5 0.5 0.5]
}

func ExampleParseGeometry() {
	g, err := basis.ParseGeometry("cylindrical")
	if err != nil {
		panic(err)
	}
	fmt.Println(g, g.Radial())
	// Output: cylindrical true
}
