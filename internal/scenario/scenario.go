// Package scenario loads and validates scenario files: which boards are in
// play, how their edges and coastlines connect, which lands sank, where
// the lair sits, and the starting piece pools.
package scenario

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v5"

	"deeplair.ai/pkg/board"
	"deeplair.ai/pkg/lair"
)

//go:embed scenario.schema.json
var schemaJSON string

// LinkSpec joins two board edges, written as "<board>:<clockN>".
type LinkSpec struct {
	From string `json:"from"`
	To   string `json:"to"`
}

// SunkenSpec removes a land from play. Deeps lands stay on the board as
// ocean; cast-down lands vanish entirely.
type SunkenSpec struct {
	Key   string `json:"key"`
	Deeps bool   `json:"deeps,omitempty"`
}

// LandSpec seeds a land's starting pools.
type LandSpec struct {
	Key     string `json:"key"`
	Scouts  int    `json:"scouts,omitempty"`
	Camps   int    `json:"camps,omitempty"`
	Forts   int    `json:"forts,omitempty"`
	Wardens int    `json:"wardens,omitempty"`
}

// Scenario is a full map-and-setup description.
type Scenario struct {
	Name         string            `json:"name"`
	Lair         string            `json:"lair"`
	Boards       map[string]string `json:"boards"`
	Links        []LinkSpec        `json:"links,omitempty"`
	Archipelagos [][]string        `json:"archipelagos,omitempty"`
	Sunken       []SunkenSpec      `json:"sunken,omitempty"`
	Ignored      []string          `json:"ignored,omitempty"`
	Lands        []LandSpec        `json:"lands,omitempty"`
}

// Load reads, schema-validates and decodes a scenario file.
func Load(path string) (*Scenario, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("scenario: %w", err)
	}
	return Parse(raw)
}

// Parse schema-validates and decodes scenario JSON.
func Parse(raw []byte) (*Scenario, error) {
	schema, err := jsonschema.CompileString("scenario.schema.json", schemaJSON)
	if err != nil {
		return nil, fmt.Errorf("scenario: compile schema: %w", err)
	}
	var doc any
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("scenario: %w", err)
	}
	if err := schema.Validate(doc); err != nil {
		return nil, fmt.Errorf("scenario: %w", err)
	}
	var s Scenario
	if err := json.Unmarshal(raw, &s); err != nil {
		return nil, fmt.Errorf("scenario: %w", err)
	}
	return &s, nil
}

// BuildMap assembles the board map: boards, edge links, archipelago
// crossings, then sinkings.
func (s *Scenario) BuildMap() (*board.Map, error) {
	m := board.NewMap()
	for name, layout := range s.Boards {
		if _, err := m.AddBoard(name, layout); err != nil {
			return nil, fmt.Errorf("scenario: %w", err)
		}
	}

	for _, link := range s.Links {
		fromBoard, fromEdge, err := s.resolveEdge(m, link.From)
		if err != nil {
			return nil, err
		}
		toBoard, toEdge, err := s.resolveEdge(m, link.To)
		if err != nil {
			return nil, err
		}
		fromBoard.LinkEdges(fromEdge, toBoard, toEdge)
	}

	for _, group := range s.Archipelagos {
		for i, a := range group {
			for _, b := range group[i+1:] {
				ba, bb := m.Board(a), m.Board(b)
				if ba == nil || bb == nil {
					return nil, fmt.Errorf("scenario: archipelago names unknown board in %v", group)
				}
				ba.LinkArchipelago(bb)
			}
		}
	}

	for _, sunk := range s.Sunken {
		name, n, err := board.SplitKey(sunk.Key)
		if err != nil {
			return nil, fmt.Errorf("scenario: sunken: %w", err)
		}
		b := m.Board(name)
		if b == nil {
			return nil, fmt.Errorf("scenario: sunken land %q on unknown board", sunk.Key)
		}
		b.Sink(n, sunk.Deeps)
	}

	return m, nil
}

func (s *Scenario) resolveEdge(m *board.Map, ref string) (*board.Board, board.Edge, error) {
	idx := strings.LastIndex(ref, ":")
	if idx < 1 {
		return nil, 0, fmt.Errorf("scenario: malformed edge ref %q", ref)
	}
	b := m.Board(ref[:idx])
	if b == nil {
		return nil, 0, fmt.Errorf("scenario: edge ref %q names unknown board", ref)
	}
	switch ref[idx+1:] {
	case "clock3":
		return b, board.Clock3, nil
	case "clock6":
		return b, board.Clock6, nil
	case "clock9":
		return b, board.Clock9, nil
	}
	return nil, 0, fmt.Errorf("scenario: malformed edge ref %q", ref)
}

// BuildLands creates the piece-pool lands for every map land, seeds the
// configured starting pools, and splits out the explicitly ignored lands.
// The lair key must name a land in play.
func (s *Scenario) BuildLands(m *board.Map, conf *lair.Conf) (map[string]*lair.Land, []*lair.Land, error) {
	ignoredKeys := map[string]bool{}
	for _, key := range s.Ignored {
		ignoredKeys[key] = true
	}

	all := map[string]*lair.Land{}
	for _, bl := range m.Lands() {
		all[bl.Key] = lair.NewLand(bl.Key, bl.Key, bl.Terrain, 0, 0, 0, 0, conf)
	}

	for _, spec := range s.Lands {
		land, ok := all[spec.Key]
		if !ok {
			return nil, nil, fmt.Errorf("scenario: pools for unknown land %q", spec.Key)
		}
		land.AddPieces(spec.Scouts, spec.Camps, spec.Forts, spec.Wardens, false)
	}

	if _, ok := all[s.Lair]; !ok {
		return nil, nil, fmt.Errorf("scenario: lair land %q not in play", s.Lair)
	}
	if ignoredKeys[s.Lair] {
		return nil, nil, fmt.Errorf("scenario: lair land %q is ignored", s.Lair)
	}

	lands := map[string]*lair.Land{}
	var ignored []*lair.Land
	for key, land := range all {
		if ignoredKeys[key] {
			ignored = append(ignored, land)
		} else {
			lands[key] = land
		}
	}
	return lands, ignored, nil
}
