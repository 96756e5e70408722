package lair

import (
	"fmt"

	"deeplair.ai/pkg/actionlog"
)

// topLog runs a phase body inside a forked log scope. The scope records
// the ring-0 pools before and after, commits buffered entries sorted by
// source land, and folds the child log back into the parent. The deferred
// close guarantees the entries survive a panicking body, so an aborted
// run still shows every exchange that happened.
func (e *Engine) topLog(what string, fn func()) {
	parent := e.state.Log
	child, done := parent.Fork()
	e.state.Log = child
	before := e.state.R0.String()
	defer func() {
		e.commitLog()
		parent.Entry(actionlog.Entry{
			Text: fmt.Sprintf("%s in %s: %s => %s", what, e.state.R0.Key, before, e.state.R0),
		})
		done()
		e.state.Log = parent
	}()
	fn()
}

// Threshold1 runs the downgrade wave: one downgrade for every three scouts
// and wardens at ring 0, spent on camps first, then forts, both at ring 0.
func (e *Engine) Threshold1() {
	e.topLog("lair-thresh1", e.threshold1)
}

func (e *Engine) threshold1() {
	r0 := e.state.R0
	downgrades := (r0.Scouts.Count + r0.Wardens.Count) / 3
	e.state.Log.Notef("available downgrades: %d", downgrades)
	downgrades -= e.downgrade(Camp, r0, downgrades)
	downgrades -= e.downgrade(Fort, r0, downgrades)
	e.commitLog()
	e.state.Log.Notef("unused downgrades: %d", downgrades)
	e.state.WastedDowngrades += downgrades
}

// Threshold2 runs the priority gather: one invader piece and one warden
// piece pulled from ring 1 into ring 0, warden-rich lands first.
func (e *Engine) Threshold2() {
	e.topLog("lair-thresh2", e.threshold2)
}

func (e *Engine) threshold2() {
	gathers := 1
	for _, kind := range []Kind{Scout, Camp} {
		for _, land := range e.r1MostWardens() {
			gathers -= e.gather(kind, land, gathers)
		}
	}
	e.commitLog()
	e.state.Log.Notef("unused invader gathers: %d", gathers)
	e.state.WastedInvaderGathers += gathers

	gathers = 1
	for _, land := range e.r1MostWardens() {
		gathers -= e.gather(Warden, land, gathers)
	}
	e.commitLog()
	e.state.Log.Notef("unused warden gathers: %d", gathers)
	e.state.WastedWardenGathers += gathers
}

// Threshold3 runs the bulk gather under the faction's reserve.
func (e *Engine) Threshold3(f Faction) {
	e.topLog(fmt.Sprintf("lair-%s-thresh3", f), func() { e.threshold3(e.conf.ReserveGathers[f]) })
}

func (e *Engine) threshold3(reserve int) {
	r0 := e.state.R0
	gathers := (r0.Scouts.Count + r0.Wardens.Count) / 6
	e.state.Log.Notef("available gathers: %d", gathers)
	undo := e.state.Log.Indent()
	gathers -= e.reserveGathers(reserve, "gathers", gathers)
	undo()

	for _, land := range e.byPriority(e.state.R2) {
		gathers -= e.gather(Camp, land, gathers)
		gathers -= e.gather(Fort, land, gathers)
		gathers -= e.gather(Scout, land, gathers)
	}

	// TODO: loop over ring 2 again while gathers remain and lands still
	// hold pieces, without breaking the per-land ordering of the log.

	for _, kind := range []Kind{Scout, Camp, Fort} {
		for _, land := range e.r1MostWardens() {
			gathers -= e.gather(kind, land, gathers)
		}
	}

	e.commitLog()
	e.state.Log.Notef("unused gathers left at end of bulk gather: %d", gathers)
	e.state.WastedInvaderGathers += gathers
}

// reserveGathers holds back up to reserve from a budget of cnt, logging
// what was held. Returns the amount reserved.
func (e *Engine) reserveGathers(reserve int, what string, cnt int) int {
	if reserve == 0 {
		return 0
	}
	held := min(cnt, reserve)
	e.state.Log.Notef("reserved %d %s", held, what)
	return held
}

// Run executes thresholds 1 through 3 for the given faction.
func (e *Engine) Run(f Faction) {
	e.topLog(fmt.Sprintf("lair-%s-thresh1", f), e.threshold1)
	e.topLog(fmt.Sprintf("lair-%s-thresh2", f), e.threshold2)
	e.topLog(fmt.Sprintf("lair-%s-thresh3", f), func() { e.threshold3(e.conf.ReserveGathers[f]) })
}

// Call runs the forced pull: fixed budgets of 5 camps, 15 scouts and 5
// wardens gathered from ring 1 regardless of ring-0 pool sizes. Wardens
// come from warden-poor lands first; invaders from warden-rich lands.
func (e *Engine) Call() {
	e.topLog("call", e.call)
}

func (e *Engine) call() {
	e.state.WastedInvaderGathers += e.callOne(e.r1MostWardens, Camp, 5)
	e.state.WastedInvaderGathers += e.callOne(e.r1MostWardens, Scout, 15)
	e.state.WastedWardenGathers += e.callOne(e.r1LeastWardens, Warden, 5)
}

// callOne spends a gather budget of the given kind across an ordered ring
// and returns the leftover.
func (e *Engine) callOne(order func() []*Land, kind Kind, gathers int) int {
	for _, land := range order() {
		gathers -= e.gather(kind, land, gathers)
	}
	return gathers
}

// Ravage runs the area damage phase.
func (e *Engine) Ravage() {
	e.topLog("ravage", e.ravage)
}

func (e *Engine) ravage() {
	r0 := e.state.R0
	dmg := max(0, r0.Scouts.Count-6) + r0.Camps.Count*2 + r0.Forts.Count*3

	lands := e.byPriority(e.state.R1)
	for _, land := range lands {
		dmg -= e.damage(land, Camp, dmg)
		dmg -= e.damage(land, Fort, dmg)
	}
	for _, land := range lands {
		dmg -= e.damage(land, Scout, dmg)
	}

	e.commitLog()
	e.state.Log.Notef("unused damage left at end of ravage: %d", dmg)
	e.state.WastedDamage += dmg

	r0.ApplyStaged()
	for _, land := range e.state.R1 {
		land.ApplyStaged()
	}
}

// build places one camp or fort at a land that already holds scouts or
// camps, whichever of camp and fort is currently less numerous.
func (e *Engine) build(land *Land) {
	if land.Scouts.Count == 0 && land.Camps.Count == 0 {
		return
	}
	kind := Camp
	if land.Camps.Count > land.Forts.Count {
		kind = Fort
	}
	e.addPieces(land, kind, 1)
}

// Blur runs the rebuild phase: one warden if ring 0 holds any invaders,
// one build at ring 0, then a full ravage.
func (e *Engine) Blur() {
	e.topLog("blur", e.blur)
}

func (e *Engine) blur() {
	if e.state.R0.TotalInvaders() > 0 {
		e.addPieces(e.state.R0, Warden, 1)
	}
	e.build(e.state.R0)
	e.ravage()
}

// Blur2 runs Blur twice, each with its own log scope.
func (e *Engine) Blur2() {
	e.Blur()
	e.Blur()
}
