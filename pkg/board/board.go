// Package board models the island map the lair preys on: hexagonal boards
// of eight numbered lands wired together edge-to-edge, with long-range
// archipelago crossings between coastlines. The package only knows about
// geography; piece pools and the adversary automaton live in pkg/lair.
package board

import "fmt"

// Terrain is the single-letter terrain code of a land.
type Terrain string

const (
	Jungle   Terrain = "J"
	Mountain Terrain = "M"
	Sands    Terrain = "S"
	Wetland  Terrain = "W"
	Ocean    Terrain = "O"
)

// Edge identifies one of the three outward-facing sides of a board,
// named by clock position.
type Edge int

const (
	Clock3 Edge = iota
	Clock6
	Clock9
)

func (e Edge) String() string {
	switch e {
	case Clock3:
		return "clock3"
	case Clock6:
		return "clock6"
	case Clock9:
		return "clock9"
	}
	return fmt.Sprintf("edge(%d)", int(e))
}

// Link is one adjacency leaving a land. Distance is 1 for a shared border
// and 2 for an archipelago crossing.
type Link struct {
	To       *Land
	Distance int
}

// Land is a single numbered land on a board.
type Land struct {
	Key     string // board name + land number, e.g. "🦀P4"
	Number  int
	Terrain Terrain
	Coastal bool
	Sunken  bool
	Links   map[string]Link // keyed by destination land key
}

// link records a symmetric adjacency between two lands. A shorter link
// between the same pair is never overwritten by a longer one.
func (l *Land) link(to *Land, distance int) {
	if l == to || l.Sunken || to.Sunken {
		return
	}
	if cur, ok := l.Links[to.Key]; !ok || distance < cur.Distance {
		l.Links[to.Key] = Link{To: to, Distance: distance}
	}
	if cur, ok := to.Links[l.Key]; !ok || distance < cur.Distance {
		to.Links[l.Key] = Link{To: l, Distance: distance}
	}
}

// Board is one physical board: eight lands with a fixed internal layout.
type Board struct {
	Name   string
	Layout *Layout
	Lands  map[int]*Land
}

// NewBoard instantiates a board's lands and internal adjacencies from a layout.
func NewBoard(name string, layout *Layout) *Board {
	b := &Board{
		Name:   name,
		Layout: layout,
		Lands:  make(map[int]*Land, landsPerBoard),
	}
	for n := 1; n <= landsPerBoard; n++ {
		b.Lands[n] = &Land{
			Key:     fmt.Sprintf("%s%d", name, n),
			Number:  n,
			Terrain: layout.Terrains[n],
			Coastal: layout.Coastal[n],
			Links:   make(map[string]Link),
		}
	}
	for _, pair := range layout.Adjacency {
		b.Lands[pair[0]].link(b.Lands[pair[1]], 1)
	}
	return b
}

// Land returns the numbered land, or nil if it was cast down.
func (b *Board) Land(n int) *Land {
	return b.Lands[n]
}

// edgeLands resolves an edge's land numbers to the lands still in play.
func (b *Board) edgeLands(e Edge) []*Land {
	var lands []*Land
	for _, n := range b.Layout.Edges[e] {
		if land, ok := b.Lands[n]; ok && !land.Sunken {
			lands = append(lands, land)
		}
	}
	return lands
}

// LinkEdges joins one of this board's edges to an edge of another board.
// The lands along the two edges meet head-to-tail, so they are paired
// against the other edge walked in reverse, each pair sharing a border.
func (b *Board) LinkEdges(e Edge, other *Board, oe Edge) {
	mine := b.edgeLands(e)
	theirs := other.edgeLands(oe)
	n := min(len(mine), len(theirs))
	for i := 0; i < n; i++ {
		mine[i].link(theirs[len(theirs)-1-i], 1)
	}
}

// LinkArchipelago joins every coastal land of this board to every coastal
// land of the other at distance 2, modelling a short sea crossing.
func (b *Board) LinkArchipelago(other *Board) {
	for _, land := range b.Lands {
		if !land.Coastal || land.Sunken {
			continue
		}
		for _, far := range other.Lands {
			if far.Coastal && !far.Sunken {
				land.link(far, 2)
			}
		}
	}
}

// Sink removes a land from play, severing all its adjacencies. Deeps lands
// become ocean; cast-down lands vanish from the board entirely.
func (b *Board) Sink(n int, deeps bool) {
	land, ok := b.Lands[n]
	if !ok {
		return
	}
	for key, link := range land.Links {
		delete(link.To.Links, land.Key)
		delete(land.Links, key)
	}
	land.Sunken = true
	if deeps {
		land.Terrain = Ocean
	} else {
		delete(b.Lands, n)
	}
}

// CastDown removes the entire board from play.
func (b *Board) CastDown() {
	for n := 1; n <= landsPerBoard; n++ {
		b.Sink(n, false)
	}
}
