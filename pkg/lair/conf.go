package lair

import (
	"fmt"
	"strings"
)

// Faction names one of the two continents driving the automaton. Each
// faction runs the same threshold phases but with its own gather reserve.
type Faction string

const (
	FactionIndigo Faction = "indigo"
	FactionAmber  Faction = "amber"
)

// CoastalCode is the synthetic terrain code a coastal land also ranks
// under in the land priority ordering.
const CoastalCode = "C"

// PieceNames are the display names used in the action log.
type PieceNames struct {
	Scout  string
	Camp   string
	Fort   string
	Warden string
}

// DefaultPieceNames returns the plain kind names.
func DefaultPieceNames() PieceNames {
	return PieceNames{Scout: "scout", Camp: "camp", Fort: "fort", Warden: "warden"}
}

// Conf is the immutable per-run configuration of the automaton.
type Conf struct {
	// LandPriority orders terrain codes; earlier codes target first.
	// Codes not listed (and coastal, absent "C") rank last.
	LandPriority string

	// ReserveGathers holds back part of the bulk-gather budget per faction.
	ReserveGathers map[Faction]int

	// RecklessOffensive lists land-key substrings whose camps and wardens
	// may never be drained below two pieces.
	RecklessOffensive []string

	PieceNames PieceNames
	ShowRange  bool
}

// validPriorityCodes are the terrain codes allowed in LandPriority.
const validPriorityCodes = "JMSW" + CoastalCode

// Validate reports malformed configuration. It is called at engine
// construction; a failure is fatal for the run.
func (c *Conf) Validate() error {
	if c.LandPriority == "" {
		return fmt.Errorf("lair: empty land priority")
	}
	seen := map[rune]bool{}
	for _, r := range c.LandPriority {
		if !strings.ContainsRune(validPriorityCodes, r) {
			return fmt.Errorf("lair: unknown land priority code %q", string(r))
		}
		if seen[r] {
			return fmt.Errorf("lair: duplicate land priority code %q", string(r))
		}
		seen[r] = true
	}
	return nil
}

func (c *Conf) codePriority(code string) int {
	if i := strings.Index(c.LandPriority, code); i >= 0 {
		return i
	}
	return len(c.LandPriority)
}

// landTypePriority ranks a land's terrain under the configured ordering.
// A coastal land takes the better of its terrain rank and the "C" rank.
func (c *Conf) landTypePriority(code string, coastal bool) int {
	priority := c.codePriority(code)
	if coastal {
		priority = min(priority, c.codePriority(CoastalCode))
	}
	return priority
}

// recklessOffensive reports whether a land key matches any configured
// reckless-offensive substring.
func (c *Conf) recklessOffensive(key string) bool {
	for _, sub := range c.RecklessOffensive {
		if strings.Contains(key, sub) {
			return true
		}
	}
	return false
}
