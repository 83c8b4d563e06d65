package detect

import (
	"image"
	"math"
	"sort"

	clipper "github.com/ctessum/go.clipper"
)

// mergeOverlapping suppresses duplicate cascade hits.  Rectangles are
// ordered by area descending and any rectangle overlapping an already kept
// one by more than minOverlap, measured against the smaller of the two, is
// dropped.  The survivors remain ordered largest first
func mergeOverlapping(rects []image.Rectangle, minOverlap float64) []image.Rectangle {

	if len(rects) <= 1 {
		return rects
	}

	sorted := make([]image.Rectangle, len(rects))
	copy(sorted, rects)

	sort.Slice(sorted, func(i, j int) bool {
		return rectArea(sorted[i]) > rectArea(sorted[j])
	})

	var kept []image.Rectangle

	for _, r := range sorted {

		duplicate := false

		for _, k := range kept {
			smaller := math.Min(rectArea(r), rectArea(k))

			if smaller <= 0 {
				continue
			}

			if overlapArea(r, k)/smaller > minOverlap {
				duplicate = true
				break
			}
		}

		if !duplicate {
			kept = append(kept, r)
		}
	}

	return kept
}

// overlapArea computes the intersection area of two rectangles using a
// polygon clip
func overlapArea(a, b image.Rectangle) float64 {

	c := clipper.NewClipper(clipper.IoNone)
	c.AddPath(rectPath(a), clipper.PtSubject, true)
	c.AddPath(rectPath(b), clipper.PtClip, true)

	solution, ok := c.Execute1(clipper.CtIntersection,
		clipper.PftEvenOdd, clipper.PftEvenOdd)

	if !ok {
		return 0
	}

	area := float64(0)

	for _, path := range solution {
		area += pathArea(path)
	}

	return area
}

// rectPath converts an image rectangle to a closed clipper path
func rectPath(r image.Rectangle) clipper.Path {
	return clipper.Path{
		&clipper.IntPoint{X: clipper.CInt(r.Min.X), Y: clipper.CInt(r.Min.Y)},
		&clipper.IntPoint{X: clipper.CInt(r.Max.X), Y: clipper.CInt(r.Min.Y)},
		&clipper.IntPoint{X: clipper.CInt(r.Max.X), Y: clipper.CInt(r.Max.Y)},
		&clipper.IntPoint{X: clipper.CInt(r.Min.X), Y: clipper.CInt(r.Max.Y)},
	}
}

// pathArea computes the absolute area of a closed path using the shoelace
// formula
func pathArea(path clipper.Path) float64 {

	if len(path) < 3 {
		return 0
	}

	sum := float64(0)

	for i, pt := range path {
		next := path[(i+1)%len(path)]
		sum += float64(pt.X)*float64(next.Y) - float64(next.X)*float64(pt.Y)
	}

	return math.Abs(sum) / 2
}

// rectArea returns the area of an image rectangle
func rectArea(r image.Rectangle) float64 {
	return float64(r.Dx()) * float64(r.Dy())
}
