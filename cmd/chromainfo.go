package main

import (
	"fmt"
	"os"

	"github.com/chromago/chroma/colour"
)

func main() {
	input := "#ff8000"
	if len(os.Args) > 1 {
		input = os.Args[1]
	}

	c, err := colour.ParseHex[colour.Srgb, float64](input)
	if err != nil {
		fmt.Printf("Error parsing %q: %v\n", input, err)
		os.Exit(1)
	}

	lin := colour.Convert[colour.LinSrgb](c)
	p3 := colour.Convert[colour.DisplayP3](c)
	xyz := colour.IntoXYZ(c)

	fmt.Printf("%s\n", colour.Hex(c))
	fmt.Printf("linear:     %.6f %.6f %.6f\n", lin.R, lin.G, lin.B)
	fmt.Printf("display p3: %s\n", colour.Hex(p3))
	fmt.Printf("xyz:        %.6f %.6f %.6f\n", xyz.X, xyz.Y, xyz.Z)
	fmt.Printf("packed:     0x%08X\n", colour.RgbIntoU32(c))
}
