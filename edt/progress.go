// SPDX-License-Identifier: MIT

package edt

// reporter turns row completion into percentage notifications, emitting only
// when the integer percentage changes.
type reporter struct {
	fn    ProgressFunc
	stage Stage
	last  int
}

func newReporter(fn ProgressFunc) *reporter {
	return &reporter{fn: fn, last: -1}
}

// begin switches to a new stage and resets the change detector.
func (r *reporter) begin(stage Stage) {
	r.stage = stage
	r.last = -1
}

// rowDone reports that done of total rows of the current stage are finished.
func (r *reporter) rowDone(done, total int) {
	if r.fn == nil || total <= 0 {
		return
	}
	pct := 100 * done / total
	if pct != r.last {
		r.last = pct
		r.fn(r.stage, pct)
	}
}
