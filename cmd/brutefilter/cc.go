package main

import (
	"github.com/cwbudde/brutefilter/host"
	"github.com/cwbudde/brutefilter/modules/brutefilter"
)

const midiStatusCC = 0xb0

// ccParams maps MIDI controller numbers to module parameters.
var ccParams = map[int64]int{
	74: brutefilter.CutoffParam,
	71: brutefilter.ResonanceParam,
	1:  brutefilter.CutoffAmountParam,
	2:  brutefilter.ResonanceAmountParam,
	7:  brutefilter.AttAmountParam,
}

// applyCC sets the bound parameter for a control change on any channel.
// It reports whether the message was used.
func applyCC(u *host.Unit, status, data1, data2 int64) bool {
	if status&0xf0 != midiStatusCC {
		return false
	}

	id, ok := ccParams[data1]
	if !ok {
		return false
	}

	u.Param(id).SetNormalized(float64(data2) / 127)
	return true
}
