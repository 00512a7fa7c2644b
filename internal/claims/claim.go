// Package claims resolves overlapping rectangular fabric claims.
package claims

import (
	"github.com/yildizm/aoc2018/internal/input"
	"github.com/yildizm/aoc2018/internal/parser"
)

// claimPattern matches lines such as "#1318 @ 428,284: 25x21".
var claimPattern = parser.MustCompile("claim",
	`^#(?P<id>\d+)\s@\s(?P<left>\d+),(?P<top>\d+):\s*(?P<width>\d+)x(?P<height>\d+)$`,
	parser.U32("id"), parser.U32("left"), parser.U32("top"), parser.U32("width"), parser.U32("height"),
)

// Claim is a rectangle of fabric anchored at (MinX, MinY). Max bounds are exclusive.
type Claim struct {
	ID   int `json:"id"`
	MinX int `json:"min_x"`
	MaxX int `json:"max_x"`
	MinY int `json:"min_y"`
	MaxY int `json:"max_y"`
}

// New builds a claim from its anchor and size
func New(id, left, top, width, height int) Claim {
	return Claim{
		ID:   id,
		MinX: left,
		MaxX: left + width,
		MinY: top,
		MaxY: top + height,
	}
}

// Region is an axis-aligned rectangle of unit cells, max bounds exclusive
type Region struct {
	MinX int `json:"min_x"`
	MaxX int `json:"max_x"`
	MinY int `json:"min_y"`
	MaxY int `json:"max_y"`
}

// Area returns the number of unit cells in the region
func (r Region) Area() int {
	return (r.MaxX - r.MinX) * (r.MaxY - r.MinY)
}

// Overlap returns the intersection of a and b. The claims overlap only when
// both axis intersections have positive length. A claim always overlaps
// itself, so callers comparing a list against itself must skip that pair.
func Overlap(a, b Claim) (Region, bool) {
	r := Region{
		MinX: max(a.MinX, b.MinX),
		MaxX: min(a.MaxX, b.MaxX),
		MinY: max(a.MinY, b.MinY),
		MaxY: min(a.MaxY, b.MaxY),
	}
	if r.MaxX-r.MinX <= 0 || r.MaxY-r.MinY <= 0 {
		return Region{}, false
	}
	return r, true
}

// Parse converts one input line into a claim
func Parse(line string) (Claim, error) {
	rec, err := claimPattern.Parse(line)
	if err != nil {
		return Claim{}, err
	}
	return New(rec.Int("id"), rec.Int("left"), rec.Int("top"), rec.Int("width"), rec.Int("height")), nil
}

// Load parses every claim in the file at path
func Load(path string) ([]Claim, error) {
	return input.ParseFile(path, Parse)
}
