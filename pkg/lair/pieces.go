// Package lair implements the autonomous adversary: ring classification of
// lands around the lair, the exchange primitives that move and destroy piece
// pools, and the fixed phase automaton that drives them.
package lair

// Kind is a closed enum of piece kinds. Each kind carries a fixed health
// cost (damage needed to destroy one piece), a fear value per destroyed
// piece, and a downgrade response (the kind one destroyed piece turns into
// at the response target).
type Kind int

const (
	Void Kind = iota
	Scout
	Camp
	Fort
	Warden
)

// Pool is a typed piece counter on a land.
type Pool struct {
	Count int
	Kind  Kind
}

type kindInfo struct {
	health   int
	fear     int
	response Kind
	name     func(PieceNames) string
	pool     func(*Land) *Pool
	staged   func(*Land) *Pool
}

// discard returns a throwaway pool. Anything exchanged into it leaves play.
func discard(k Kind) func(*Land) *Pool {
	return func(*Land) *Pool { return &Pool{Kind: k} }
}

var kindTable = [...]kindInfo{
	Void: {
		health:   0,
		fear:     0,
		response: Void,
		name:     func(PieceNames) string { return "void" },
		pool:     discard(Void),
		staged:   discard(Void),
	},
	Scout: {
		health:   1,
		fear:     0,
		response: Void,
		name:     func(pn PieceNames) string { return pn.Scout },
		pool:     func(l *Land) *Pool { return &l.Scouts },
		staged:   func(l *Land) *Pool { return &l.StagedScouts },
	},
	Camp: {
		health:   2,
		fear:     1,
		response: Scout,
		name:     func(pn PieceNames) string { return pn.Camp },
		pool:     func(l *Land) *Pool { return &l.Camps },
		staged:   func(l *Land) *Pool { return &l.StagedCamps },
	},
	Fort: {
		health:   3,
		fear:     2,
		response: Camp,
		name:     func(pn PieceNames) string { return pn.Fort },
		pool:     func(l *Land) *Pool { return &l.Forts },
		staged:   discard(Camp),
	},
	Warden: {
		health:   2,
		fear:     0,
		response: Void,
		name:     func(pn PieceNames) string { return pn.Warden },
		pool:     func(l *Land) *Pool { return &l.Wardens },
		staged:   discard(Warden),
	},
}

// Health is the damage required to destroy one piece of this kind.
func (k Kind) Health() int { return kindTable[k].health }

// Fear is the fear awarded per destroyed piece of this kind.
func (k Kind) Fear() int { return kindTable[k].fear }

// Response is the kind a destroyed piece downgrades into, or Void.
func (k Kind) Response() Kind { return kindTable[k].response }

// Name returns the configured display name for the kind.
func (k Kind) Name(pn PieceNames) string { return kindTable[k].name(pn) }

// Pool selects the kind's live pool on a land. Void selects a discard.
func (k Kind) Pool(l *Land) *Pool { return kindTable[k].pool(l) }

// Staged selects the kind's pending-arrival pool on a land. Kinds without
// a staged pool select a discard, so pieces routed there leave play.
func (k Kind) Staged(l *Land) *Pool { return kindTable[k].staged(l) }
