package lair

import (
	"fmt"
	"strings"

	"deeplair.ai/pkg/board"
)

// Land is one land's piece pools as the automaton sees them. The staged
// pools hold same-phase arrivals (downgrade responses) that must not be
// eligible for further movement until the phase applies them.
type Land struct {
	Key         string
	DisplayName string
	Terrain     board.Terrain

	Scouts  Pool
	Camps   Pool
	Forts   Pool
	Wardens Pool

	StagedScouts Pool
	StagedCamps  Pool

	conf *Conf
}

// NewLand creates a land with the given starting pools.
func NewLand(key, displayName string, terrain board.Terrain, scouts, camps, forts, wardens int, conf *Conf) *Land {
	return &Land{
		Key:          key,
		DisplayName:  displayName,
		Terrain:      terrain,
		Scouts:       Pool{Count: scouts, Kind: Scout},
		Camps:        Pool{Count: camps, Kind: Camp},
		Forts:        Pool{Count: forts, Kind: Fort},
		Wardens:      Pool{Count: wardens, Kind: Warden},
		StagedScouts: Pool{Kind: Scout},
		StagedCamps:  Pool{Kind: Camp},
		conf:         conf,
	}
}

// ApplyStaged folds the staged pools into the live pools.
func (l *Land) ApplyStaged() {
	for _, k := range []Kind{Scout, Camp} {
		staged := k.Staged(l)
		k.Pool(l).Count += staged.Count
		staged.Count = 0
	}
}

// AddPieces adjusts the live pools directly. Unless allowNegative is set,
// driving any pool below zero is a programming error and panics.
func (l *Land) AddPieces(scouts, camps, forts, wardens int, allowNegative bool) {
	pools := []*Pool{&l.Scouts, &l.Camps, &l.Forts, &l.Wardens}
	for i, added := range []int{scouts, camps, forts, wardens} {
		pools[i].Count += added
		if !allowNegative && pools[i].Count < 0 {
			panic(fmt.Sprintf("lair: negative %s pool on land %s", pools[i].Kind.Name(l.conf.PieceNames), l.Key))
		}
	}
}

// TotalInvaders is the combined scout, camp and fort count.
func (l *Land) TotalInvaders() int {
	return l.Scouts.Count + l.Camps.Count + l.Forts.Count
}

func (l *Land) String() string {
	parts := make([]string, 0, 4)
	for _, k := range []Kind{Scout, Camp, Fort, Warden} {
		parts = append(parts, fmt.Sprintf("%s=%d", k.Name(l.conf.PieceNames), k.Pool(l).Count))
	}
	return "(" + strings.Join(parts, ", ") + ")"
}
