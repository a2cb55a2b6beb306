package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/chromago/chroma/channels"
	"github.com/chromago/chroma/colour"
	log "github.com/sirupsen/logrus"
)

// linRgba is the working representation every conversion passes through.
type linRgba = colour.RGBA[colour.LinSrgb, float64]

func decode(standard string, c colour.RGBA[colour.Srgb, float64]) (linRgba, error) {
	r, g, b, a := c.Components()
	switch standard {
	case "srgb":
		return colour.ConvertAlpha[colour.LinSrgb](colour.NewRGBA[colour.Srgb](r, g, b, a)), nil
	case "linear":
		return colour.NewRGBA[colour.LinSrgb](r, g, b, a), nil
	case "gamma22":
		return colour.ConvertAlpha[colour.LinSrgb](colour.NewRGBA[colour.GammaSrgb](r, g, b, a)), nil
	case "p3":
		return colour.ConvertAlpha[colour.LinSrgb](colour.NewRGBA[colour.DisplayP3](r, g, b, a)), nil
	case "bt2020":
		return colour.ConvertAlpha[colour.LinSrgb](colour.NewRGBA[colour.Bt2020](r, g, b, a)), nil
	case "dcip3":
		return colour.ConvertAlpha[colour.LinSrgb](colour.NewRGBA[colour.DciP3](r, g, b, a)), nil
	}
	return linRgba{}, fmt.Errorf("unknown standard %q", standard)
}

func encode(standard string, order string, lin linRgba) (string, uint32, error) {
	switch standard {
	case "srgb":
		c := colour.ConvertAlpha[colour.Srgb](lin)
		return colour.HexAlpha(c), packWith(order, c), nil
	case "linear":
		return colour.HexAlpha(lin), packWith(order, lin), nil
	case "gamma22":
		c := colour.ConvertAlpha[colour.GammaSrgb](lin)
		return colour.HexAlpha(c), packWith(order, c), nil
	case "p3":
		c := colour.ConvertAlpha[colour.DisplayP3](lin)
		return colour.HexAlpha(c), packWith(order, c), nil
	case "bt2020":
		c := colour.ConvertAlpha[colour.Bt2020](lin)
		return colour.HexAlpha(c), packWith(order, c), nil
	case "dcip3":
		c := colour.ConvertAlpha[colour.DciP3](lin)
		return colour.HexAlpha(c), packWith(order, c), nil
	}
	return "", 0, fmt.Errorf("unknown standard %q", standard)
}

func packWith[S colour.Standard](order string, c colour.RGBA[S, float64]) uint32 {
	switch order {
	case "rgba":
		return colour.PackRgba[channels.Rgba](c).Value
	case "bgra":
		return colour.PackRgba[channels.Bgra](c).Value
	case "abgr":
		return colour.PackRgba[channels.Abgr](c).Value
	default:
		return colour.PackRgba[channels.Argb](c).Value
	}
}

func main() {
	in := flag.String("i", "", "input hex color, eg '#607f00' or '#607f00ff'")
	from := flag.String("from", "srgb", "input standard: srgb, linear, gamma22, p3, bt2020, dcip3")
	to := flag.String("to", "linear", "output standard: srgb, linear, gamma22, p3, bt2020, dcip3")
	order := flag.String("order", "argb", "packed byte order: argb, rgba, bgra, abgr")
	flag.Parse()

	if *in == "" {
		fmt.Printf("an input color must be specified\n")
		flag.Usage()
		os.Exit(1)
	}

	parsed, err := colour.ParseHexAlpha[colour.Srgb, float64](*in)
	if err != nil {
		log.Errorf("Error parsing color: %v", err)
		os.Exit(1)
	}

	lin, err := decode(*from, parsed)
	if err != nil {
		log.Errorf("Error decoding: %v", err)
		os.Exit(1)
	}

	hex, packed, err := encode(*to, *order, lin)
	if err != nil {
		log.Errorf("Error encoding: %v", err)
		os.Exit(1)
	}

	fmt.Printf("%s -> %s (%s)\n", *in, hex, *to)
	fmt.Printf("packed %s: 0x%08X\n", *order, packed)
	fmt.Printf("linear: %.6f %.6f %.6f (alpha %.6f)\n", lin.R, lin.G, lin.B, lin.A)
}
