package lair

import (
	"fmt"

	"deeplair.ai/pkg/actionlog"
)

// exchange is the one primitive every pool mutation goes through. It moves
// up to cnt pieces of the given kind from the source land into tgt, honors
// the reckless-offensive reserve floor, and returns the amount actually
// moved. Callers spend budgets by the return value, never by the request.
func (e *Engine) exchange(src *Land, kind Kind, tgt *Pool, cnt int) int {
	leave := 0
	if (kind == Camp || kind == Warden) && e.conf.recklessOffensive(src.Key) {
		leave = 2
	}
	pool := kind.Pool(src)
	actual := min(max(pool.Count-leave, 0), cnt)
	pool.Count -= actual
	tgt.Count += actual
	return actual
}

// gather moves pieces one hop along the routing tree toward the lair.
func (e *Engine) gather(kind Kind, land *Land, cnt int) int {
	to := e.routes[land.Key]
	if to == nil {
		panic(fmt.Sprintf("lair: gather from unrouted land %s", land.Key))
	}
	actual := e.exchange(land, kind, kind.Pool(to), cnt)
	e.state.TotalGathers += actual
	if actual > 0 {
		name := kind.Name(e.conf.PieceNames)
		e.buffer(actionlog.Entry{
			Action:   actionlog.ActionGather,
			SrcLand:  land.DisplayName,
			SrcPiece: name,
			TgtLand:  to.DisplayName,
			TgtPiece: name,
			Count:    actual,
		})
	}
	return actual
}

// downgrade converts pieces into their response kind in place.
func (e *Engine) downgrade(kind Kind, land *Land, cnt int) int {
	response := kind.Response()
	if response == Void {
		panic(fmt.Sprintf("lair: %s has no downgrade response", kind.Name(e.conf.PieceNames)))
	}
	actual := e.exchange(land, kind, response.Pool(land), cnt)
	if actual > 0 {
		e.buffer(actionlog.Entry{
			Action:   actionlog.ActionDowngrade,
			SrcLand:  land.DisplayName,
			SrcPiece: kind.Name(e.conf.PieceNames),
			TgtLand:  land.DisplayName,
			TgtPiece: response.Name(e.conf.PieceNames),
			Count:    actual,
		})
	}
	return actual
}

// damage spends dmg destroying pieces of the given kind on a land. Damage
// is consumed at the kind's health cost per destroyed piece; destroyed
// pieces award fear and, for kinds with a response, stage one response
// piece each at the land itself (if it holds wardens) or at the land's
// route target. Returns the damage consumed.
func (e *Engine) damage(land *Land, kind Kind, dmg int) int {
	if e.routes[land.Key] == nil {
		panic(fmt.Sprintf("lair: damage to unrouted land %s", land.Key))
	}

	var respondTo *Land
	var response *Pool
	if resp := kind.Response(); resp != Void {
		if land.Wardens.Count > 0 {
			respondTo = land
		} else {
			respondTo = e.routes[land.Key]
		}
		response = resp.Staged(respondTo)
	} else {
		response = &Pool{Kind: Void}
	}

	kill := e.exchange(land, kind, response, dmg/kind.Health())
	if kill > 0 {
		entry := actionlog.Entry{
			Action:   actionlog.ActionDestroy,
			SrcLand:  land.DisplayName,
			SrcPiece: kind.Name(e.conf.PieceNames),
			Count:    kill,
		}
		if respondTo != nil {
			entry.TgtLand = respondTo.DisplayName
			entry.TgtPiece = kind.Response().Name(e.conf.PieceNames)
		}
		e.buffer(entry)
	}
	e.state.Fear += kill * kind.Fear()
	return kill * kind.Health()
}

// addPieces places new pieces on a land, outside any budget.
func (e *Engine) addPieces(land *Land, kind Kind, cnt int) {
	kind.Pool(land).Count += cnt
	e.state.Log.Entry(actionlog.Entry{
		Action:   actionlog.ActionAdd,
		TgtLand:  land.DisplayName,
		TgtPiece: kind.Name(e.conf.PieceNames),
		Count:    cnt,
	})
}
