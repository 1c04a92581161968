package scoreboard

import "sync"

type scoreValue struct {
	value  int64
	hidden bool
}

// Objective is a named scoring category. Scores are mutated from packet
// handlers at any time; display slots read them through ScoreSnapshot, which
// is a consistent copy taken under the objective lock.
type Objective struct {
	name string

	mu          sync.Mutex
	displayName string
	scores      map[string]*scoreValue
	update      UpdateType
}

func newObjective(name, displayName string) *Objective {
	return &Objective{
		name:        name,
		displayName: displayName,
		scores:      map[string]*scoreValue{},
		// the first render after registration has to create the display surface.
		update: UpdateAdd,
	}
}

func (o *Objective) Name() string {
	return o.name
}

func (o *Objective) DisplayName() string {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.displayName
}

// SetDisplayName changes the objective title and schedules a whole-surface
// redraw for the next render pass. A pending add keeps precedence: the
// surface is about to be created with the new title anyway.
func (o *Objective) SetDisplayName(displayName string) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.displayName = displayName
	if o.update == UpdateNothing {
		o.update = UpdateUpdate
	}
}

// SetScore creates or overwrites the score for name.
func (o *Objective) SetScore(name string, value int64) {
	o.mu.Lock()
	defer o.mu.Unlock()
	if sv, exists := o.scores[name]; exists {
		sv.value = value
		return
	}
	o.scores[name] = &scoreValue{value: value}
}

// SetScoreHidden toggles the hidden flag for name. Unknown names are ignored.
func (o *Objective) SetScoreHidden(name string, hidden bool) {
	o.mu.Lock()
	defer o.mu.Unlock()
	if sv, exists := o.scores[name]; exists {
		sv.hidden = hidden
	}
}

// RemoveScore deletes the score for name.
func (o *Objective) RemoveScore(name string) {
	o.mu.Lock()
	defer o.mu.Unlock()
	delete(o.scores, name)
}

// ScoreSnapshot returns a consistent copy of all scores, in no particular
// order. Render passes treat one snapshot as the truth for the whole pass.
func (o *Objective) ScoreSnapshot() []Score {
	o.mu.Lock()
	defer o.mu.Unlock()
	scores := make([]Score, 0, len(o.scores))
	for name, sv := range o.scores {
		scores = append(scores, Score{Name: name, Value: sv.value, Hidden: sv.hidden})
	}
	return scores
}

// TakeUpdate returns the pending lifecycle state and resets it to nothing.
// Each pending state is consumed by exactly one render pass.
func (o *Objective) TakeUpdate() UpdateType {
	o.mu.Lock()
	defer o.mu.Unlock()
	update := o.update
	o.update = UpdateNothing
	return update
}
