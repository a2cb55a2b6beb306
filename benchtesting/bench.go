package main

import (
	"fmt"
	"time"

	"github.com/chromago/chroma/colour"
	"github.com/pkg/profile"
	log "github.com/sirupsen/logrus"
)

// Throwaway harness for profiling the conversion pipeline.
func main() {
	p := profile.Start(profile.CPUProfile, profile.ProfilePath("."))
	defer p.Stop()

	const iterations = 2_000_000

	start := time.Now()
	var sink float64
	for i := 0; i < iterations; i++ {
		c := colour.NewRGB[colour.Srgb](
			float64(i%256)/255,
			float64((i>>8)%256)/255,
			float64((i>>16)%256)/255)

		p3 := colour.Convert[colour.DisplayP3](c)
		back := colour.Convert[colour.Srgb](p3)
		sink += back.R + back.G + back.B
	}
	fmt.Printf("%d cross-space round trips took %d ms (sink %f)\n",
		iterations, time.Since(start).Milliseconds(), sink)

	start = time.Now()
	for i := 0; i < iterations; i++ {
		c := colour.NewRGB[colour.Srgb](uint8(i), uint8(i>>8), uint8(i>>16))
		s := colour.Hex(c)
		if _, err := colour.ParseHex[colour.Srgb, uint8](s); err != nil {
			log.Errorf("Error parsing %q: %v", s, err)
			return
		}
	}
	fmt.Printf("%d hex round trips took %d ms\n", iterations, time.Since(start).Milliseconds())
}
