package dijkstra

import (
	"fmt"
	"slices"
)

// Backtrace reconstructs the shortest path from the search's source to
// target by walking the predecessor map backwards until it runs out —
// which, by construction of ShortestPath, happens exactly at the source.
//
// The returned path runs source→target inclusive. If target never entered
// the distance map the walk has nowhere to start and ErrUnreachableNode is
// returned. A target equal to the source yields the one-element path
// [source].
//
// Complexity: O(len(path)).
func Backtrace[N comparable](target N, dist map[N]float64, prev map[N]N) ([]N, error) {
	if _, ok := dist[target]; !ok {
		return nil, fmt.Errorf("%w: %v", ErrUnreachableNode, target)
	}

	path := []N{target}
	for n := target; ; {
		p, ok := prev[n]
		if !ok {
			break
		}
		path = append(path, p)
		n = p
	}
	slices.Reverse(path)

	return path, nil
}

// BacktraceAll returns every shortest path to target recoverable from the
// predecessor map. A predecessor map stores a single parent per node, so
// the result always holds exactly one path; the slice form exists for API
// symmetry with searches that could retain several optimal parents.
func BacktraceAll[N comparable](target N, dist map[N]float64, prev map[N]N) ([][]N, error) {
	path, err := Backtrace(target, dist, prev)
	if err != nil {
		return nil, err
	}

	return [][]N{path}, nil
}
