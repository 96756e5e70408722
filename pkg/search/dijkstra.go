// Package search provides the single-source shortest-path primitive the
// lair's routing is built on. It is a plain Dijkstra over link weights 1
// and 2, extended with a caller-supplied tie-break: when several frontier
// lands share the minimal tentative distance, the tie-break key decides
// which one is settled first, which in turn decides the predecessor tree
// among equal-length routes.
package search

import (
	"sort"

	"deeplair.ai/pkg/board"
)

// Key is a lexicographically ordered tie-break key. Smaller keys win.
type Key [3]int

// Less reports whether k orders before o.
func (k Key) Less(o Key) bool {
	for i := range k {
		if k[i] != o[i] {
			return k[i] < o[i]
		}
	}
	return false
}

// TiebreakFunc ranks a frontier candidate. It may inspect the tentative
// distance map and the partially built predecessor map; both reflect the
// state of the search at the moment the candidate is considered.
type TiebreakFunc func(land *board.Land, dist map[string]int, prev map[string]string) Key

// DistancesFrom runs the search from src and returns the distance map and
// the predecessor map. Every reachable land appears in the distance map;
// every reachable land except src appears in the predecessor map. A nil
// tiebreak settles equal-distance candidates in key order, which keeps the
// result deterministic.
func DistancesFrom(src *board.Land, tiebreak TiebreakFunc) (map[string]int, map[string]string) {
	dist := map[string]int{src.Key: 0}
	prev := map[string]string{}
	frontier := map[string]*board.Land{src.Key: src}
	settled := map[string]bool{}

	for len(frontier) > 0 {
		land := popNext(frontier, dist, prev, tiebreak)
		delete(frontier, land.Key)
		settled[land.Key] = true

		for _, key := range sortedLinkKeys(land) {
			link := land.Links[key]
			if link.To.Sunken || settled[link.To.Key] {
				continue
			}
			alt := dist[land.Key] + link.Distance
			if cur, seen := dist[link.To.Key]; !seen || alt < cur {
				dist[link.To.Key] = alt
				prev[link.To.Key] = land.Key
				frontier[link.To.Key] = link.To
			}
		}
	}
	return dist, prev
}

// popNext picks the frontier land to settle: minimal tentative distance,
// ties broken by the tie-break key, then by land key.
func popNext(frontier map[string]*board.Land, dist map[string]int, prev map[string]string, tiebreak TiebreakFunc) *board.Land {
	var ties []*board.Land
	best := -1
	for _, land := range frontier {
		d := dist[land.Key]
		switch {
		case best < 0 || d < best:
			best = d
			ties = ties[:0]
			ties = append(ties, land)
		case d == best:
			ties = append(ties, land)
		}
	}
	if len(ties) == 1 {
		return ties[0]
	}
	sort.Slice(ties, func(i, j int) bool { return ties[i].Key < ties[j].Key })
	if tiebreak == nil {
		return ties[0]
	}
	winner := ties[0]
	winnerKey := tiebreak(winner, dist, prev)
	for _, land := range ties[1:] {
		if k := tiebreak(land, dist, prev); k.Less(winnerKey) {
			winner, winnerKey = land, k
		}
	}
	return winner
}

func sortedLinkKeys(land *board.Land) []string {
	keys := make([]string, 0, len(land.Links))
	for key := range land.Links {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
