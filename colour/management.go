package colour

import (
	"errors"
	"sync"

	"github.com/chromago/chroma/util"
)

// Bradford chromatic adaptation matrix and its inverse, used to move a
// set of XYZ values between white points.
var (
	bradford = [][]float64{
		{0.8951, 0.2664, -0.1614},
		{-0.7502, 1.7135, 0.0367},
		{0.0389, -0.0685, 1.0296},
	}

	bradfordInverse = util.InvertMatrix3x3(bradford)
)

func validateXY(xy CIEXY) error {
	if xy.X < 0 || xy.X > 1 || xy.Y <= 0 || xy.Y > 1 {
		return errors.New("chromaticity out of range")
	}
	return nil
}

// GetXYZ converts a chromaticity to an XYZ triple with unit luminance.
func GetXYZ(xy CIEXY) ([]float64, error) {
	if err := validateXY(xy); err != nil {
		return nil, err
	}
	invY := 1.0 / xy.Y
	return []float64{xy.X * invY, 1.0, (1.0 - xy.X - xy.Y) * invY}, nil
}

// AdaptWhitePoint computes the Bradford adaptation matrix taking XYZ
// values relative to currentWP to XYZ values relative to targetWP.
func AdaptWhitePoint(targetWP CIEXY, currentWP CIEXY) ([][]float64, error) {
	wTarget, err := GetXYZ(targetWP)
	if err != nil {
		return nil, err
	}
	wCurrent, err := GetXYZ(currentWP)
	if err != nil {
		return nil, err
	}
	lmsTarget, err := util.MatrixVectorMultiply(bradford, wTarget)
	if err != nil {
		return nil, err
	}
	lmsCurrent, err := util.MatrixVectorMultiply(bradford, wCurrent)
	if err != nil {
		return nil, err
	}
	a := [][]float64{
		{lmsTarget[0] / lmsCurrent[0], 0, 0},
		{0, lmsTarget[1] / lmsCurrent[1], 0},
		{0, 0, lmsTarget[2] / lmsCurrent[2]},
	}
	return util.MatrixMultiply(bradfordInverse, a, bradford)
}

// PrimariesToXYZ derives the matrix taking linear RGB in the space
// described by the primaries and white point to XYZ.
func PrimariesToXYZ(primaries CIEPrimaries, wp CIEXY) ([][]float64, error) {
	if err := validateXY(wp); err != nil {
		return nil, err
	}
	r, errR := GetXYZ(primaries.Red)
	g, errG := GetXYZ(primaries.Green)
	b, errB := GetXYZ(primaries.Blue)
	if errR != nil || errG != nil || errB != nil {
		return nil, errors.New("invalid primaries")
	}
	primariesMatrix := util.TransposeMatrix([][]float64{r, g, b})
	inversePrimaries := util.InvertMatrix3x3(primariesMatrix)
	if inversePrimaries == nil {
		return nil, errors.New("degenerate primaries")
	}
	w, err := GetXYZ(wp)
	if err != nil {
		return nil, err
	}
	xyz, err := util.MatrixVectorMultiply(inversePrimaries, w)
	if err != nil {
		return nil, err
	}
	scale := [][]float64{{xyz[0], 0, 0}, {0, xyz[1], 0}, {0, 0, xyz[2]}}
	return util.MatrixMatrixMultiply(primariesMatrix, scale)
}

// GetConversionMatrix computes the linear transform taking RGB values in
// the current space to RGB values in the target space, adapting the
// white point when the two differ.
func GetConversionMatrix(targetPrim CIEPrimaries, targetWP CIEXY, currentPrim CIEPrimaries, currentWP CIEXY) ([][]float64, error) {
	if targetPrim.Matches(currentPrim) && targetWP.Matches(currentWP) {
		return util.MatrixIdentity[float64](3), nil
	}

	var whitePointConv [][]float64
	var err error
	if !targetWP.Matches(currentWP) {
		whitePointConv, err = AdaptWhitePoint(targetWP, currentWP)
		if err != nil {
			return nil, err
		}
	}
	forward, err := PrimariesToXYZ(currentPrim, currentWP)
	if err != nil {
		return nil, err
	}
	target, err := PrimariesToXYZ(targetPrim, targetWP)
	if err != nil {
		return nil, err
	}
	reverse := util.InvertMatrix3x3(target)
	if reverse == nil {
		return nil, errors.New("degenerate target primaries")
	}
	return util.MatrixMultiply(reverse, whitePointConv, forward)
}

type spaceDef struct {
	prim CIEPrimaries
	wp   CIEXY
}

func defOf(sp Space) spaceDef {
	return spaceDef{prim: sp.Primaries(), wp: sp.WhitePoint()}
}

// spaceCache memoizes a per-space derived value, keyed by the space's
// numeric definition.
type spaceCache[V any] struct {
	mu sync.RWMutex
	m  map[spaceDef]V
}

func newSpaceCache[V any]() *spaceCache[V] {
	return &spaceCache[V]{m: map[spaceDef]V{}}
}

func (c *spaceCache[V]) get(sp Space, build func() V) V {
	key := defOf(sp)

	c.mu.RLock()
	v, ok := c.m[key]
	c.mu.RUnlock()
	if ok {
		return v
	}

	v = build()
	c.mu.Lock()
	c.m[key] = v
	c.mu.Unlock()
	return v
}

func invertOrPanic(m [][]float64) [][]float64 {
	inv := util.InvertMatrix3x3(m)
	if inv == nil {
		panic("colour: invalid space definition: degenerate primaries")
	}
	return inv
}

type spacePair struct {
	current spaceDef
	target  spaceDef
}

var (
	conversionMu    sync.RWMutex
	conversionCache = map[spacePair][][]float64{}
)

// conversionMatrix is the cached form of GetConversionMatrix used on the
// Convert path. A space definition is authored in code, so a degenerate
// one is a programming error and panics rather than returning an error.
func conversionMatrix(target Space, current Space) [][]float64 {
	pair := spacePair{current: defOf(current), target: defOf(target)}

	conversionMu.RLock()
	m, ok := conversionCache[pair]
	conversionMu.RUnlock()
	if ok {
		return m
	}

	m, err := GetConversionMatrix(pair.target.prim, pair.target.wp, pair.current.prim, pair.current.wp)
	if err != nil {
		panic("colour: invalid space definition: " + err.Error())
	}

	conversionMu.Lock()
	conversionCache[pair] = m
	conversionMu.Unlock()
	return m
}
