package lair

import (
	"fmt"
	"sort"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"deeplair.ai/pkg/actionlog"
	"deeplair.ai/pkg/board"
	"deeplair.ai/pkg/search"
)

// Engine drives one run of the adversary automaton. It is single-threaded:
// one Engine owns one State, and callers must not interleave phase calls
// from multiple goroutines.
type Engine struct {
	m    *board.Map
	conf *Conf

	// routes maps each land one hop along the tree toward the lair.
	// Lands whose route leaves the known land set map to nil.
	routes map[string]*Land

	uncommitted []actionlog.Entry

	state *State
}

// DistanceMap runs the shortest-path search from the lair with the
// domain tie-break: routes through unknown lands sort last, then terrain
// priority, then the warden count at the candidate's ring-1 ancestor.
// The ancestor is found by walking the partially built predecessor chain;
// if it is not yet resolved to distance 1 the count falls back to zero.
func DistanceMap(conf *Conf, lands map[string]*Land, m *board.Map, src string) (map[string]int, map[string]string, error) {
	srcLand, err := m.Land(src)
	if err != nil {
		return nil, nil, fmt.Errorf("lair: lair land: %w", err)
	}

	tiebreak := func(bl *board.Land, dist map[string]int, prev map[string]string) search.Key {
		priority := conf.landTypePriority(string(bl.Terrain), bl.Coastal)

		key := bl.Key
		for dist[key] > 1 {
			p, ok := prev[key]
			if !ok {
				break
			}
			key = p
		}
		r1Wardens := 0
		if dist[key] == 1 {
			if land, ok := lands[key]; ok {
				r1Wardens = land.Wardens.Count
			}
		}

		offMap := 0
		for cur := bl.Key; cur != src; {
			if _, ok := lands[cur]; !ok {
				offMap = 1
				break
			}
			p, ok := prev[cur]
			if !ok {
				break
			}
			cur = p
		}

		return search.Key{offMap, -priority, r1Wardens}
	}

	dist, prev := search.DistancesFrom(srcLand, tiebreak)
	return dist, prev, nil
}

// New builds an engine: validates configuration, computes the routing tree
// from the lair, and partitions the lands into rings. The lands map must
// contain an entry for the lair key; extra lands handed in as ignored are
// carried through to the ignored set untouched.
func New(lands map[string]*Land, ignored []*Land, src string, conf *Conf, alog *actionlog.Log, m *board.Map) (*Engine, error) {
	if err := conf.Validate(); err != nil {
		return nil, err
	}
	r0, ok := lands[src]
	if !ok {
		return nil, fmt.Errorf("lair: no land for lair key %q", src)
	}

	dist, prev, err := DistanceMap(conf, lands, m, src)
	if err != nil {
		return nil, err
	}

	e := &Engine{
		m:      m,
		conf:   conf,
		routes: make(map[string]*Land, len(lands)),
	}
	for key := range lands {
		if p, ok := prev[key]; ok && dist[key] != 0 {
			e.routes[key] = lands[p]
		}
	}

	var r1, r2 []*Land
	for _, key := range sortedKeys(lands) {
		land := lands[key]
		if key == src {
			continue
		}
		d, reached := dist[key]
		if !reached || d == 0 {
			continue
		}
		if conf.ShowRange {
			land.DisplayName += fmt.Sprintf(" (%d)", d)
		}
		switch {
		case d == 1:
			e.routes[key] = r0
			r1 = append(r1, land)
		case e.r1RouteOf(land, dist) != nil:
			r2 = append(r2, land)
		default:
			ignored = append(ignored, land)
		}
	}

	e.state = &State{
		R0:      r0,
		R1:      r1,
		R2:      r2,
		Ignored: ignored,
		Log:     alog,
		Dist:    dist,
		RunID:   uuid.New(),
	}

	log.Debug().
		Stringer("run_id", e.state.RunID).
		Str("lair", src).
		Int("ring1", len(r1)).
		Int("ring2", len(r2)).
		Int("ignored", len(ignored)).
		Msg("lair engine constructed")

	return e, nil
}

// State exposes the run state for the driving caller.
func (e *Engine) State() *State {
	return e.state
}

// RouteOf returns the land one hop toward the lair, or nil.
func (e *Engine) RouteOf(land *Land) *Land {
	return e.routes[land.Key]
}

// r1RouteOf walks the routing tree up from a land until it reaches a
// distance-1 land. Returns nil if the walk falls off the known land set.
func (e *Engine) r1RouteOf(land *Land, dist map[string]int) *Land {
	for dist[land.Key] > 1 {
		next := e.routes[land.Key]
		if next == nil {
			return nil
		}
		land = next
	}
	return land
}

// r1MostWardens returns ring 1 ordered by descending warden count.
func (e *Engine) r1MostWardens() []*Land {
	lands := append([]*Land(nil), e.state.R1...)
	sort.SliceStable(lands, func(i, j int) bool { return lands[i].Wardens.Count > lands[j].Wardens.Count })
	return lands
}

// r1LeastWardens returns ring 1 ordered by ascending warden count.
func (e *Engine) r1LeastWardens() []*Land {
	lands := append([]*Land(nil), e.state.R1...)
	sort.SliceStable(lands, func(i, j int) bool { return lands[i].Wardens.Count < lands[j].Wardens.Count })
	return lands
}

// landPriorityKey orders targeting within a ring: terrain priority first,
// then distance, then the warden count at the land's ring-1 ancestor.
func (e *Engine) landPriorityKey(land *Land) [3]int {
	coastal := false
	if bl, err := e.m.Land(land.Key); err == nil {
		coastal = bl.Coastal
	}
	priority := e.conf.landTypePriority(string(land.Terrain), coastal)

	r1 := e.r1RouteOf(land, e.state.Dist)
	if r1 == nil {
		panic(fmt.Sprintf("lair: no ring-1 ancestor for land %s", land.Key))
	}
	return [3]int{priority, e.state.Dist[land.Key], r1.Wardens.Count}
}

// byPriority returns the lands sorted by landPriorityKey.
func (e *Engine) byPriority(in []*Land) []*Land {
	lands := append([]*Land(nil), in...)
	keys := make(map[string][3]int, len(lands))
	for _, land := range lands {
		keys[land.Key] = e.landPriorityKey(land)
	}
	sort.SliceStable(lands, func(i, j int) bool {
		a, b := keys[lands[i].Key], keys[lands[j].Key]
		for n := range a {
			if a[n] != b[n] {
				return a[n] < b[n]
			}
		}
		return false
	})
	return lands
}

// buffer queues an entry for the current phase; commitLog flushes the
// queue sorted by source land so the trail reads causally per land.
func (e *Engine) buffer(entry actionlog.Entry) {
	e.uncommitted = append(e.uncommitted, entry)
}

func (e *Engine) commitLog() {
	sort.SliceStable(e.uncommitted, func(i, j int) bool {
		return e.uncommitted[i].SrcLand < e.uncommitted[j].SrcLand
	})
	for _, entry := range e.uncommitted {
		e.state.Log.Entry(entry)
	}
	e.uncommitted = nil
}

func sortedKeys(lands map[string]*Land) []string {
	keys := make([]string, 0, len(lands))
	for key := range lands {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
