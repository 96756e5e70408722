package board

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
)

// ErrLandNotFound is returned when a land key names no land in play.
var ErrLandNotFound = errors.New("board: land not found")

// Map is a set of boards wired together into one navigable island map.
type Map struct {
	Boards map[string]*Board
}

// NewMap returns an empty map.
func NewMap() *Map {
	return &Map{Boards: make(map[string]*Board)}
}

// AddBoard instantiates a board with the named built-in layout.
func (m *Map) AddBoard(name, layoutName string) (*Board, error) {
	if _, ok := m.Boards[name]; ok {
		return nil, fmt.Errorf("board: duplicate board %q", name)
	}
	l, ok := LayoutByName(layoutName)
	if !ok {
		return nil, fmt.Errorf("board: unknown layout %q for board %q", layoutName, name)
	}
	b := NewBoard(name, l)
	m.Boards[name] = b
	return b, nil
}

// Board returns the named board, or nil.
func (m *Map) Board(name string) *Board {
	return m.Boards[name]
}

// SplitKey splits a land key into its board name and land number.
// The land number is the trailing decimal digit.
func SplitKey(key string) (string, int, error) {
	if len(key) < 2 {
		return "", 0, fmt.Errorf("%w: malformed key %q", ErrLandNotFound, key)
	}
	n, err := strconv.Atoi(key[len(key)-1:])
	if err != nil {
		return "", 0, fmt.Errorf("%w: malformed key %q", ErrLandNotFound, key)
	}
	return key[:len(key)-1], n, nil
}

// Land looks up a land by key. Sunken and cast-down lands are not found.
func (m *Map) Land(key string) (*Land, error) {
	name, n, err := SplitKey(key)
	if err != nil {
		return nil, err
	}
	b, ok := m.Boards[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrLandNotFound, key)
	}
	land, ok := b.Lands[n]
	if !ok || land.Sunken {
		return nil, fmt.Errorf("%w: %q", ErrLandNotFound, key)
	}
	return land, nil
}

// Lands returns every land in play, sorted by key.
func (m *Map) Lands() []*Land {
	var lands []*Land
	for _, b := range m.Boards {
		for _, land := range b.Lands {
			if !land.Sunken {
				lands = append(lands, land)
			}
		}
	}
	sort.Slice(lands, func(i, j int) bool { return lands[i].Key < lands[j].Key })
	return lands
}
