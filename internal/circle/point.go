// Package circle implements the unit circle group x^2 + y^2 = 1 over the
// M31 field and the cosets that seed circle-FFT twiddle tables.
package circle

import "github.com/cwbudde/circle-fft/internal/m31"

// LogOrder is the base-2 logarithm of the circle group order. The M31
// circle group is cyclic of order 2^31.
const LogOrder = 31

// Point is a point on the unit circle over M31.
type Point struct {
	X, Y m31.Element
}

// Identity is the group identity (1, 0).
func Identity() Point {
	return Point{X: 1, Y: 0}
}

// Generator generates the full circle group of order 2^31.
func Generator() Point {
	return Point{X: 2, Y: 1268011823}
}

// Add applies the circle group law:
// (x1, y1) + (x2, y2) = (x1*x2 - y1*y2, x1*y2 + y1*x2).
func (p Point) Add(q Point) Point {
	return Point{
		X: p.X.Mul(q.X).Sub(p.Y.Mul(q.Y)),
		Y: p.X.Mul(q.Y).Add(p.Y.Mul(q.X)),
	}
}

// Double returns p + p = (2x^2 - 1, 2xy).
func (p Point) Double() Point {
	return Point{
		X: p.X.Square().Double().Sub(1),
		Y: p.X.Mul(p.Y).Double(),
	}
}

// Neg returns the group inverse (x, -y).
func (p Point) Neg() Point {
	return Point{X: p.X, Y: p.Y.Neg()}
}

// Antipode returns the antipodal point (-x, -y), i.e. p plus the
// half-turn (-1, 0).
func (p Point) Antipode() Point {
	return Point{X: p.X.Neg(), Y: p.Y.Neg()}
}

// OnCircle reports whether x^2 + y^2 = 1.
func (p Point) OnCircle() bool {
	return p.X.Square().Add(p.Y.Square()) == 1
}

// PointIndex addresses a point of the full circle group as a multiple of
// the generator, modulo 2^31.
type PointIndex uint32

const indexMask = 1<<LogOrder - 1

// NewPointIndex wraps v into the index group.
func NewPointIndex(v uint32) PointIndex {
	return PointIndex(v & indexMask)
}

// Add returns i + j modulo the group order.
func (i PointIndex) Add(j PointIndex) PointIndex {
	return (i + j) & indexMask
}

// Double returns 2i modulo the group order.
func (i PointIndex) Double() PointIndex {
	return (i << 1) & indexMask
}

// Point resolves the index to its point by double-and-add on the
// generator.
func (i PointIndex) Point() Point {
	acc := Identity()
	g := Generator()

	for v := uint32(i); v != 0; v >>= 1 {
		if v&1 == 1 {
			acc = acc.Add(g)
		}

		g = g.Double()
	}

	return acc
}

// subgroupGen returns the index of a generator of the subgroup of size
// 2^logSize.
func subgroupGen(logSize int) PointIndex {
	return 1 << (LogOrder - logSize)
}
