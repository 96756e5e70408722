package board

// landsPerBoard is fixed by the physical boards: eight playable lands each.
const landsPerBoard = 8

// Layout describes the internal geometry of a board: terrain and coastal
// status per land, the land-to-land borders inside the board, and which
// lands run along each of the three outward edges (in clockwise order).
type Layout struct {
	Name      string
	Terrains  [landsPerBoard + 1]Terrain // indexed by land number, [0] unused
	Coastal   [landsPerBoard + 1]bool
	Adjacency [][2]int
	Edges     [3][]int
}

var layouts = map[string]*Layout{
	"A": layoutA(),
	"B": layoutB(),
	"C": layoutC(),
	"D": layoutD(),
}

// LayoutByName returns one of the built-in board layouts (A through D).
func LayoutByName(name string) (*Layout, bool) {
	l, ok := layouts[name]
	return l, ok
}

// layout is a small builder used by the layout tables below.
func layout(name string, terrains string, coastal []int, adjacency [][2]int, clock3, clock6, clock9 []int) *Layout {
	l := &Layout{Name: name, Adjacency: adjacency}
	for i, r := range terrains {
		l.Terrains[i+1] = Terrain(string(r))
	}
	for _, n := range coastal {
		l.Coastal[n] = true
	}
	l.Edges[Clock3] = clock3
	l.Edges[Clock6] = clock6
	l.Edges[Clock9] = clock9
	return l
}

func layoutA() *Layout {
	return layout("A",
		"MWJSWMSJ",
		[]int{1, 2, 3},
		[][2]int{
			{1, 2}, {1, 4}, {1, 5}, {1, 6},
			{2, 3}, {2, 4},
			{3, 4},
			{4, 5},
			{5, 6}, {5, 7}, {5, 8},
			{6, 8},
			{7, 8},
		},
		[]int{1, 2, 3},
		[]int{3, 4, 7},
		[]int{6, 8, 7},
	)
}

func layoutB() *Layout {
	return layout("B",
		"WMSJSWMJ",
		[]int{1, 2, 3},
		[][2]int{
			{1, 2}, {1, 3}, {1, 4},
			{2, 4}, {2, 5},
			{3, 4}, {3, 6},
			{4, 5}, {4, 6},
			{5, 7}, {5, 8},
			{6, 7},
			{7, 8},
		},
		[]int{1, 2, 5},
		[]int{5, 8, 7},
		[]int{3, 6, 7},
	)
}

func layoutC() *Layout {
	return layout("C",
		"JSMWMJWS",
		[]int{1, 2, 3},
		[][2]int{
			{1, 2}, {1, 3}, {1, 5},
			{2, 3}, {2, 4},
			{3, 5}, {3, 6},
			{4, 6}, {4, 7},
			{5, 6}, {5, 8},
			{6, 7}, {6, 8},
			{7, 8},
		},
		[]int{1, 2, 4},
		[]int{4, 7, 8},
		[]int{5, 8, 7},
	)
}

func layoutD() *Layout {
	return layout("D",
		"SJWMJWMS",
		[]int{1, 2, 3},
		[][2]int{
			{1, 2}, {1, 4},
			{2, 3}, {2, 4}, {2, 5},
			{3, 5},
			{4, 6}, {4, 7},
			{5, 6}, {5, 8},
			{6, 7}, {6, 8},
			{7, 8},
		},
		[]int{1, 2, 3},
		[]int{3, 5, 8},
		[]int{4, 7, 8},
	)
}
