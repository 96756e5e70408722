package lair

import (
	"github.com/google/uuid"

	"deeplair.ai/pkg/actionlog"
)

// State aggregates everything one run mutates: the ring partition, the
// distance map, the action log, and the running counters. One State per
// run, owned by one Engine; never shared.
type State struct {
	R0      *Land
	R1      []*Land
	R2      []*Land
	Ignored []*Land

	Log  *actionlog.Log
	Dist map[string]int

	RunID uuid.UUID

	TotalGathers         int
	WastedDamage         int
	WastedDowngrades     int
	WastedInvaderGathers int
	WastedWardenGathers  int
	Fear                 int
}
