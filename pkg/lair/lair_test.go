package lair

import (
	"testing"

	"deeplair.ai/pkg/actionlog"
	"deeplair.ai/pkg/board"
)

// pools is {scouts, camps, forts, wardens}.
type pools [4]int

func testConf() *Conf {
	return &Conf{
		LandPriority:   "WJSMC",
		ReserveGathers: map[Faction]int{FactionIndigo: 1, FactionAmber: 0},
		PieceNames:     DefaultPieceNames(),
	}
}

// newTestEngine builds an engine over a single layout-A board with the
// lair at T5. Ring 1 is {T1, T4, T6, T7, T8}; ring 2 is {T2, T3}.
func newTestEngine(t *testing.T, conf *Conf, seed map[string]pools) *Engine {
	t.Helper()
	if conf == nil {
		conf = testConf()
	}

	m := board.NewMap()
	if _, err := m.AddBoard("T", "A"); err != nil {
		t.Fatal(err)
	}

	lands := map[string]*Land{}
	for _, bl := range m.Lands() {
		lands[bl.Key] = NewLand(bl.Key, bl.Key, bl.Terrain, 0, 0, 0, 0, conf)
	}
	for key, p := range seed {
		land, ok := lands[key]
		if !ok {
			t.Fatalf("seed names unknown land %q", key)
		}
		land.AddPieces(p[0], p[1], p[2], p[3], false)
	}

	e, err := New(lands, nil, "T5", conf, actionlog.New(), m)
	if err != nil {
		t.Fatal(err)
	}
	return e
}

func totalPieces(lands ...*Land) int {
	total := 0
	for _, land := range lands {
		total += land.TotalInvaders() + land.Wardens.Count +
			land.StagedScouts.Count + land.StagedCamps.Count
	}
	return total
}

func allLands(e *Engine) []*Land {
	lands := []*Land{e.state.R0}
	lands = append(lands, e.state.R1...)
	lands = append(lands, e.state.R2...)
	lands = append(lands, e.state.Ignored...)
	return lands
}
