package scoreboard

import "sync"

// Team decorates the names of its members on display surfaces. Membership is
// mutated from packet handlers; display entries keep a reference to their team
// and check it for staleness on every render pass.
type Team struct {
	name string

	mu      sync.Mutex
	prefix  string
	suffix  string
	members map[string]struct{}
	removed bool
}

func newTeam(name string) *Team {
	return &Team{
		name:    name,
		members: map[string]struct{}{},
	}
}

func (t *Team) Name() string {
	return t.name
}

// SetDecoration replaces the prefix and suffix wrapped around member names.
func (t *Team) SetDecoration(prefix, suffix string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.prefix = prefix
	t.suffix = suffix
}

// SetMembers replaces the membership set.
func (t *Team) SetMembers(names ...string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.members = make(map[string]struct{}, len(names))
	for _, name := range names {
		t.members[name] = struct{}{}
	}
}

// AddMembers adds names to the membership set.
func (t *Team) AddMembers(names ...string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	for _, name := range names {
		t.members[name] = struct{}{}
	}
}

// RemoveMembers removes names from the membership set. Display entries are
// not notified; they notice on their next render pass.
func (t *Team) RemoveMembers(names ...string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	for _, name := range names {
		delete(t.members, name)
	}
}

// Members returns a copy of the membership set.
func (t *Team) Members() map[string]struct{} {
	t.mu.Lock()
	defer t.mu.Unlock()
	members := make(map[string]struct{}, len(t.members))
	for name := range t.members {
		members[name] = struct{}{}
	}
	return members
}

// MarkRemoved flags the team for removal. Display entries referencing it drop
// the reference on their next render pass.
func (t *Team) MarkRemoved() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.removed = true
}

func (t *Team) FlaggedForRemoval() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.removed
}

func (t *Team) Contains(name string) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	_, exists := t.members[name]
	return exists
}

// Decorate wraps name in the team prefix and suffix.
func (t *Team) Decorate(name string) string {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.prefix + name + t.suffix
}
