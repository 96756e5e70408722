package board

import (
	"errors"
	"testing"
)

func TestNewBoard_InternalLinks(t *testing.T) {
	b := NewBoard("T", layouts["A"])

	if got := len(b.Lands); got != landsPerBoard {
		t.Fatalf("expected %d lands, got %d", landsPerBoard, got)
	}

	for _, pair := range b.Layout.Adjacency {
		a, c := b.Land(pair[0]), b.Land(pair[1])
		link, ok := a.Links[c.Key]
		if !ok {
			t.Fatalf("missing link %s -> %s", a.Key, c.Key)
		}
		if link.Distance != 1 {
			t.Errorf("internal link %s -> %s distance = %d, want 1", a.Key, c.Key, link.Distance)
		}
		back, ok := c.Links[a.Key]
		if !ok || back.To != a {
			t.Errorf("link %s -> %s is not symmetric", a.Key, c.Key)
		}
	}
}

func TestNewBoard_TerrainAndCoastal(t *testing.T) {
	b := NewBoard("T", layouts["A"])

	if got := b.Land(1).Terrain; got != Mountain {
		t.Errorf("land 1 terrain = %q, want %q", got, Mountain)
	}
	if got := b.Land(2).Terrain; got != Wetland {
		t.Errorf("land 2 terrain = %q, want %q", got, Wetland)
	}
	for n := 1; n <= landsPerBoard; n++ {
		want := n <= 3
		if got := b.Land(n).Coastal; got != want {
			t.Errorf("land %d coastal = %v, want %v", n, got, want)
		}
	}
}

func TestLinkEdges_PairsReversed(t *testing.T) {
	a := NewBoard("A", layouts["A"])
	b := NewBoard("B", layouts["B"])

	// Layout A clock6 = [3 4 7], layout B clock9 = [3 6 7].
	a.LinkEdges(Clock6, b, Clock9)

	wantPairs := [][2]string{{"A3", "B7"}, {"A4", "B6"}, {"A7", "B3"}}
	for _, pair := range wantPairs {
		from := a.Land(int(pair[0][1] - '0'))
		link, ok := from.Links[pair[1]]
		if !ok {
			t.Fatalf("missing cross-board link %s -> %s", pair[0], pair[1])
		}
		if link.Distance != 1 {
			t.Errorf("cross-board link %s -> %s distance = %d, want 1", pair[0], pair[1], link.Distance)
		}
	}
}

func TestLinkArchipelago_CoastalOnly(t *testing.T) {
	a := NewBoard("A", layouts["A"])
	b := NewBoard("B", layouts["B"])

	a.LinkArchipelago(b)

	if link, ok := a.Land(1).Links["B2"]; !ok || link.Distance != 2 {
		t.Errorf("coastal pair A1 -> B2: link = %+v, ok = %v, want distance 2", link, ok)
	}
	if _, ok := a.Land(5).Links["B2"]; ok {
		t.Error("inland land A5 should not join an archipelago")
	}
	if _, ok := a.Land(1).Links["B4"]; ok {
		t.Error("inland land B4 should not join an archipelago")
	}
}

func TestLinkShorterWins(t *testing.T) {
	a := NewBoard("A", layouts["A"])
	b := NewBoard("B", layouts["B"])

	// Edge link at distance 1 first, then an archipelago over the same
	// coastlines; the shorter link must survive.
	a.LinkEdges(Clock3, b, Clock3)
	a.LinkArchipelago(b)

	// Layout A clock3 = [1 2 3], layout B clock3 = [1 2 5]; A1 pairs with B5
	// which is inland, so check A2 -> B2.
	if link := a.Land(2).Links["B2"]; link.Distance != 1 {
		t.Errorf("A2 -> B2 distance = %d, want 1 (edge link beats archipelago)", link.Distance)
	}
}

func TestSink(t *testing.T) {
	b := NewBoard("T", layouts["A"])
	neighbor := b.Land(2)

	b.Sink(1, false)
	if _, ok := b.Lands[1]; ok {
		t.Error("cast-down land should vanish from the board")
	}
	if _, ok := neighbor.Links["T1"]; ok {
		t.Error("sinking should sever the neighbor's link")
	}

	b.Sink(5, true)
	deeps, ok := b.Lands[5]
	if !ok {
		t.Fatal("deeps land should stay on the board")
	}
	if !deeps.Sunken || deeps.Terrain != Ocean {
		t.Errorf("deeps land: sunken = %v terrain = %q, want sunken ocean", deeps.Sunken, deeps.Terrain)
	}
	if len(deeps.Links) != 0 {
		t.Errorf("deeps land should have no links, got %d", len(deeps.Links))
	}
}

func TestMap_Land(t *testing.T) {
	m := NewMap()
	if _, err := m.AddBoard("🦀P", "A"); err != nil {
		t.Fatal(err)
	}

	land, err := m.Land("🦀P4")
	if err != nil {
		t.Fatalf("Land(🦀P4): %v", err)
	}
	if land.Number != 4 {
		t.Errorf("land number = %d, want 4", land.Number)
	}

	for _, key := range []string{"🦀P9", "🦀Q4", "🦀P", "x"} {
		if _, err := m.Land(key); !errors.Is(err, ErrLandNotFound) {
			t.Errorf("Land(%q) error = %v, want ErrLandNotFound", key, err)
		}
	}

	m.Board("🦀P").Sink(4, true)
	if _, err := m.Land("🦀P4"); !errors.Is(err, ErrLandNotFound) {
		t.Errorf("sunken land lookup error = %v, want ErrLandNotFound", err)
	}
}

func TestMap_AddBoard_Errors(t *testing.T) {
	m := NewMap()
	if _, err := m.AddBoard("T", "A"); err != nil {
		t.Fatal(err)
	}
	if _, err := m.AddBoard("T", "B"); err == nil {
		t.Error("duplicate board name should error")
	}
	if _, err := m.AddBoard("U", "Z"); err == nil {
		t.Error("unknown layout should error")
	}
}

func TestMap_LandsSorted(t *testing.T) {
	m := NewMap()
	for _, name := range []string{"B", "A"} {
		if _, err := m.AddBoard(name, "A"); err != nil {
			t.Fatal(err)
		}
	}
	lands := m.Lands()
	if len(lands) != 2*landsPerBoard {
		t.Fatalf("expected %d lands, got %d", 2*landsPerBoard, len(lands))
	}
	for i := 1; i < len(lands); i++ {
		if lands[i-1].Key >= lands[i].Key {
			t.Fatalf("lands not sorted: %s before %s", lands[i-1].Key, lands[i].Key)
		}
	}
}
