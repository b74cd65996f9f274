package board

import (
	"iter"

	"github.com/kvistberg/gridpath/dijkstra"
)

// BoundaryNeighbours builds a neighbour function over boundary points, so
// that the search engine can walk (or measure) the boundary of a region.
//
// A boundary point places one coordinate inside the region and one
// immediately outside. Its neighbours are found in two steps. First the
// point is moved orthogonally to its normal vector, an extension of the
// boundary. Second, all folds are explored: either coordinate stays fixed
// while the other rotates 90° around it in both directions. During a
// rotation one coordinate must stay inside the region so the walk never
// leaves the boundary; when a rotation pivots around the outside
// coordinate, the intermediate 45° position must also stay on the boundary,
// otherwise the fold would cut a corner through the region.
//
// inRegion reports whether a coordinate is inside the region; nil means
// unconstrained, in which case every candidate is yielded. A point that is
// not actually on the boundary (both coordinates inside, or both outside)
// has no neighbours. All edge weights are 1.
func BoundaryNeighbours(inRegion func(Coord) bool) dijkstra.NeighbourFunc[BoundaryPoint] {
	return func(b BoundaryPoint) iter.Seq2[BoundaryPoint, float64] {
		return func(yield func(BoundaryPoint, float64) bool) {
			var in1, in2 bool
			if inRegion != nil {
				in1, in2 = inRegion(b.In), inRegion(b.Out)
				if in1 == in2 {
					return
				}
			}

			// A candidate stays on the boundary when its two coordinates
			// keep the same inside/outside membership as b's.
			inBoundary := func(p BoundaryPoint) bool {
				if inRegion == nil {
					return true
				}

				return inRegion(p.In) == in1 && inRegion(p.Out) == in2
			}

			r1, c1 := b.In.Row, b.In.Col
			r2, c2 := b.Out.Row, b.Out.Col
			dr, dc := r2-r1, c2-c1

			// Extend the point orthogonally to its normal vector.
			if dc == 0 {
				// Vertical normal: slide left, then right.
				for _, s := range []int{-1, 1} {
					p := BoundaryPoint{Coord{r1, c1 + s}, Coord{r2, c2 + s}}
					if inBoundary(p) && !yield(p, 1) {
						return
					}
				}
			} else {
				// Horizontal normal: slide up, then down.
				for _, s := range []int{-1, 1} {
					p := BoundaryPoint{Coord{r1 + s, c1}, Coord{r2 + s, c2}}
					if inBoundary(p) && !yield(p, 1) {
						return
					}
				}
			}

			// Fold around In: In stays, Out rotates 90° right then left.
			for _, rot := range rotations(dr, dc) {
				dr2, dc2 := rot[0], rot[1]
				mid := BoundaryPoint{b.In, Coord{r1 + dr2 + dr, c1 + dc2 + dc}}
				p := BoundaryPoint{b.In, Coord{r1 + dr2, c1 + dc2}}
				if !inBoundary(p) {
					continue
				}
				// If the pivot is outside the region, the 45° midpoint must
				// also lie on the boundary.
				if inRegion != nil && !in1 && !inBoundary(mid) {
					continue
				}
				if !yield(p, 1) {
					return
				}
			}

			// Fold around Out: Out stays, In rotates.
			dr, dc = r1-r2, c1-c2
			for _, rot := range rotations(dr, dc) {
				dr2, dc2 := rot[0], rot[1]
				mid := BoundaryPoint{Coord{r2 + dr2 + dr, c2 + dc2 + dc}, b.Out}
				p := BoundaryPoint{Coord{r2 + dr2, c2 + dc2}, b.Out}
				if !inBoundary(p) {
					continue
				}
				if inRegion != nil && !in2 && !inBoundary(mid) {
					continue
				}
				if !yield(p, 1) {
					return
				}
			}
		}
	}
}

// rotations returns the two 90° rotations of (dr, dc), right first.
func rotations(dr, dc int) [2][2]int {
	rr, rc := TurnRight(dr, dc)
	lr, lc := TurnLeft(dr, dc)

	return [2][2]int{{rr, rc}, {lr, lc}}
}
