package circle

// Coset is the set of points {initial + k*step : k in [0, 2^logSize)},
// where step generates the subgroup of size 2^logSize. It is the geometry
// provider for twiddle-table construction.
type Coset struct {
	initial PointIndex
	step    PointIndex
	logSize int
}

// NewCoset returns the coset of size 2^logSize offset by initial.
func NewCoset(initial PointIndex, logSize int) Coset {
	return Coset{
		initial: initial,
		step:    subgroupGen(logSize),
		logSize: logSize,
	}
}

// HalfOdds returns the coset of 2^logSize points with initial offset at a
// quarter of the step, i.e. {g/4 + k*g} for step generator g. For a
// transform over 2^n points, HalfOdds(n-1) is the canonic half coset the
// twiddle tables are built from.
func HalfOdds(logSize int) Coset {
	return NewCoset(subgroupGen(logSize+2), logSize)
}

// CanonicHalfCoset returns the half coset generating the twiddle tables
// of a transform over 2^logN points.
func CanonicHalfCoset(logN int) Coset {
	return HalfOdds(logN - 1)
}

// Size returns the number of points in the coset.
func (c Coset) Size() int {
	return 1 << c.logSize
}

// LogSize returns the base-2 logarithm of the coset size.
func (c Coset) LogSize() int {
	return c.logSize
}

// IndexAt returns the point index of the i-th coset point.
func (c Coset) IndexAt(i int) PointIndex {
	return c.initial.Add(PointIndex(uint32(i)) * c.step & indexMask)
}

// At returns the i-th coset point.
func (c Coset) At(i int) Point {
	return c.IndexAt(i).Point()
}

// Step returns the coset step as a point, for incremental iteration.
func (c Coset) Step() Point {
	return c.step.Point()
}

// Double returns the image of the coset under the doubling map, a coset
// of half the size.
func (c Coset) Double() Coset {
	return Coset{
		initial: c.initial.Double(),
		step:    c.step.Double(),
		logSize: c.logSize - 1,
	}
}
