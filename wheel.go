package orbitals

import "math"

const twoPi = 2 * math.Pi

// AngleAt returns the wheel angle of the letter at index in an alphabet of
// n letters. Letters are spread evenly over the circle, index 0 at
// 12 o'clock, proceeding clockwise on screen; rotation shifts every letter
// by that many positions.
//
// Returns false when n is not positive.
func AngleAt(index, n, rotation int) (float64, bool) {
	if n <= 0 {
		return 0, false
	}
	return math.Pi/2 - float64(index+rotation)*twoPi/float64(n), true
}

// AngleOf returns the wheel angle of letter in the alphabet, with index 0
// at 12 o'clock. It reports false if the letter is not in the alphabet;
// callers skip such letters rather than treating them as errors.
func AngleOf(alphabet *Alphabet, letter string) (float64, bool) {
	return angleOf(alphabet, Fold(letter), 0)
}

// angleOf looks up an already folded letter.
func angleOf(alphabet *Alphabet, key string, rotation int) (float64, bool) {
	i, ok := alphabet.indexKey(key)
	if !ok {
		return 0, false
	}
	return AngleAt(i, alphabet.Len(), rotation)
}

// PolarToXY projects a wheel angle onto the canvas. The y axis points down,
// so increasing angles run counter-clockwise on screen:
//
//	x = center + radius·cos(angle)
//	y = center − radius·sin(angle)
func PolarToXY(angle, radius, center float64) Point {
	return Point{
		X: center + radius*math.Cos(angle),
		Y: center - radius*math.Sin(angle),
	}
}

// LabelPositions returns where each letter of the alphabet sits on a wheel
// of the given radius, in wheel order. Renderers draw the letter labels
// there.
func LabelPositions(alphabet *Alphabet, radius, center float64, rotation int) []Point {
	pts := make([]Point, alphabet.Len())
	for i := range pts {
		a, _ := AngleAt(i, alphabet.Len(), rotation)
		pts[i] = PolarToXY(a, radius, center)
	}
	return pts
}
