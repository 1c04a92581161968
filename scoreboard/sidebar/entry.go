package sidebar

import (
	"sync"

	"github.com/geodemc/geode/scoreboard"
	"github.com/geodemc/geode/wire"
)

// Entry is one displayed sidebar line. Entries are owned by the Sidebar and
// reused across render passes as long as their name stays displayed, which is
// what keeps their identity stable while the authoritative scores underneath
// are rewritten every pass.
type Entry struct {
	name string
	id   uint64

	// the fields below are only touched by the render pass.
	value      int64
	order      string
	cached     wire.ScoreInfo
	exists     bool
	valueDirty bool
	orderDirty bool

	// team is the one field a concurrent SetTeamFor may write while a render
	// pass reads it, hence the lock. Everything else is render-thread-only.
	mu        sync.Mutex
	team      Team
	teamDirty bool
}

func newEntry(id uint64, score scoreboard.Score, teams teamSource) *Entry {
	e := &Entry{
		name:  score.Name,
		id:    id,
		value: score.Value,
		// a fresh entry has never been sent, force the initial payload.
		valueDirty: true,
	}
	if teams != nil {
		e.team = teams.TeamFor(score.Name)
	}
	return e
}

func (e *Entry) Name() string {
	return e.name
}

// ID is the wire identity of this entry. It stays stable for as long as the
// entry remains displayed; an evicted and reintroduced name gets a new one.
func (e *Entry) ID() uint64 {
	return e.id
}

// Team returns the current team reference.
func (e *Entry) Team() Team {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.team
}

func (e *Entry) setTeam(team Team) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.team == team {
		return
	}
	e.team = team
	e.teamDirty = true
}

func (e *Entry) setValue(value int64) {
	if e.value != value {
		e.value = value
		e.valueDirty = true
	}
}

func (e *Entry) setOrder(marker string) {
	if e.order != marker {
		e.order = marker
		e.orderDirty = true
	}
}

func (e *Entry) clearOrder() {
	e.setOrder("")
}

// takeDirty consumes the dirty flags. valueOnly reports whether the score
// value was the only thing that changed; those refreshes are exempt from the
// remove-before-add workaround because the client does repaint score text in
// place correctly.
func (e *Entry) takeDirty() (dirty, valueOnly bool) {
	e.mu.Lock()
	team := e.teamDirty
	e.teamDirty = false
	e.mu.Unlock()

	dirty = e.valueDirty || e.orderDirty || team
	valueOnly = e.valueDirty && !e.orderDirty && !team
	e.valueDirty = false
	e.orderDirty = false
	return dirty, valueOnly
}

// refresh rebuilds the cached outbound payload from the current entry state.
func (e *Entry) refresh(builder payloadBuilder, objective string) {
	label := e.name
	if team := e.Team(); team != nil {
		label = team.Decorate(e.name)
	}
	label += e.order
	e.cached = builder.ScoreInfo(e.id, objective, label, e.value)
}
