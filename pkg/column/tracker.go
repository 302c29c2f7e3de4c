package column

// tracker holds the running bottom edge of every column in one section.
// Its length is fixed when the section's pass begins.
type tracker struct {
	bottoms []float64
}

func newTracker(columns int, top float64) *tracker {
	b := make([]float64, columns)
	for i := range b {
		b[i] = top
	}
	return &tracker{bottoms: b}
}

// shortest returns the column with the smallest bottom; ties go to the
// lowest index.
func (t *tracker) shortest() int {
	best := 0
	for i, v := range t.bottoms {
		if v < t.bottoms[best] {
			best = i
		}
	}
	return best
}

// longest returns the column with the largest bottom; ties go to the lowest
// index.
func (t *tracker) longest() int {
	best := 0
	for i, v := range t.bottoms {
		if v > t.bottoms[best] {
			best = i
		}
	}
	return best
}

func (t *tracker) bottom(column int) float64 { return t.bottoms[column] }

// record moves a column's bottom down to newBottom.
func (t *tracker) record(column int, newBottom float64) {
	t.bottoms[column] = newBottom
}

// next picks the column for the item at index item under the given policy.
func (t *tracker) next(dir RenderDirection, item int) int {
	n := len(t.bottoms)
	switch dir {
	case ShortestFirst:
		return t.shortest()
	case RightToLeft:
		return (n - 1) - item%n
	default:
		return item % n
	}
}
