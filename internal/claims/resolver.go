package claims

import (
	"cmp"
	"errors"
	"fmt"
	"slices"
)

// FabricSize is the side length of the dense overlap mask. Overlaps reaching
// past it are measured without allocating cells.
const FabricSize = 1000

var (
	// ErrNoLoneClaim is returned when every claim overlaps another one
	ErrNoLoneClaim = errors.New("no claim is free of overlaps")

	// ErrAmbiguousLoneClaim is returned when more than one claim is free of overlaps
	ErrAmbiguousLoneClaim = errors.New("more than one claim is free of overlaps")
)

// mask records which unit cells inside the fabric are covered by at least
// two claims. Overlaps reaching past the fabric are kept as regions and
// measured separately.
type mask struct {
	cells   []bool
	outside []Region
}

func newMask() *mask {
	return &mask{cells: make([]bool, FabricSize*FabricSize)}
}

// mark records every cell of r. Marking is idempotent.
func (m *mask) mark(r Region) {
	inner := Region{
		MinX: r.MinX,
		MaxX: min(r.MaxX, FabricSize),
		MinY: r.MinY,
		MaxY: min(r.MaxY, FabricSize),
	}
	for y := inner.MinY; y < inner.MaxY; y++ {
		row := y * FabricSize
		for x := inner.MinX; x < inner.MaxX; x++ {
			m.cells[row+x] = true
		}
	}

	if r.MaxX > FabricSize {
		m.outside = append(m.outside, Region{MinX: max(r.MinX, FabricSize), MaxX: r.MaxX, MinY: r.MinY, MaxY: r.MaxY})
	}
	if r.MinX < FabricSize && r.MaxY > FabricSize {
		m.outside = append(m.outside, Region{MinX: r.MinX, MaxX: min(r.MaxX, FabricSize), MinY: max(r.MinY, FabricSize), MaxY: r.MaxY})
	}
}

func (m *mask) count() int {
	n := 0
	for _, covered := range m.cells {
		if covered {
			n++
		}
	}
	return n + unionArea(m.outside)
}

// unionArea returns the number of cells covered by any of regions. It sweeps
// the vertical slabs between distinct x bounds and merges the y spans of the
// regions spanning each slab.
func unionArea(regions []Region) int {
	if len(regions) == 0 {
		return 0
	}

	xs := make([]int, 0, 2*len(regions))
	for _, r := range regions {
		xs = append(xs, r.MinX, r.MaxX)
	}
	slices.Sort(xs)
	xs = slices.Compact(xs)

	area := 0
	spans := make([][2]int, 0, len(regions))
	for i := 0; i+1 < len(xs); i++ {
		x0, x1 := xs[i], xs[i+1]

		spans = spans[:0]
		for _, r := range regions {
			if r.MinX <= x0 && r.MaxX >= x1 {
				spans = append(spans, [2]int{r.MinY, r.MaxY})
			}
		}
		if len(spans) == 0 {
			continue
		}
		slices.SortFunc(spans, func(a, b [2]int) int { return cmp.Compare(a[0], b[0]) })

		covered := 0
		lo, hi := spans[0][0], spans[0][1]
		for _, s := range spans[1:] {
			if s[0] > hi {
				covered += hi - lo
				lo, hi = s[0], s[1]
				continue
			}
			hi = max(hi, s[1])
		}
		covered += hi - lo

		area += (x1 - x0) * covered
	}
	return area
}

// TotalOverlapArea returns the number of unit cells covered by two or more claims.
// Claims are compared pairwise by position, so identical claims listed twice
// still overlap each other.
func TotalOverlapArea(claims []Claim) int {
	m := newMask()
	for i := range claims {
		for j := i + 1; j < len(claims); j++ {
			if r, ok := Overlap(claims[i], claims[j]); ok {
				m.mark(r)
			}
		}
	}
	return m.count()
}

// LoneClaim returns the id of the single claim that overlaps no other claim.
// It fails with ErrNoLoneClaim or ErrAmbiguousLoneClaim when there is not
// exactly one such claim.
func LoneClaim(claims []Claim) (int, error) {
	claimed := make([]bool, len(claims))
	for i := range claims {
		for j := i + 1; j < len(claims); j++ {
			if _, ok := Overlap(claims[i], claims[j]); ok {
				claimed[i] = true
				claimed[j] = true
			}
		}
	}

	var lone []int
	for i, c := range claims {
		if !claimed[i] {
			lone = append(lone, c.ID)
		}
	}

	switch len(lone) {
	case 0:
		return 0, ErrNoLoneClaim
	case 1:
		return lone[0], nil
	default:
		return 0, fmt.Errorf("%w: ids %v", ErrAmbiguousLoneClaim, lone)
	}
}
