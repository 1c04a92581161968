package scoreboard

import (
	"fmt"
	"sync"
	"sync/atomic"
)

// Scoreboard is the registry of objectives and teams for one session, and the
// allocator of display entry identities. Identities are monotonic and never
// handed out twice, so an in-flight outbound payload can never collide with a
// younger entry.
type Scoreboard struct {
	nextID atomic.Uint64

	mu         sync.RWMutex
	objectives map[string]*Objective
	teams      map[string]*Team
}

func New() *Scoreboard {
	return &Scoreboard{
		objectives: map[string]*Objective{},
		teams:      map[string]*Team{},
	}
}

// NextID allocates a fresh display entry identity.
func (b *Scoreboard) NextID() uint64 {
	return b.nextID.Add(1)
}

// RegisterObjective creates a new objective. Registering a name twice is a
// bug in the packet handler and panics.
func (b *Scoreboard) RegisterObjective(name, displayName string) *Objective {
	b.mu.Lock()
	defer b.mu.Unlock()
	if _, exists := b.objectives[name]; exists {
		panic(fmt.Sprintf("scoreboard: objective %q registered twice", name))
	}
	objective := newObjective(name, displayName)
	b.objectives[name] = objective
	return objective
}

// Objective returns the objective with the given name, or nil.
func (b *Scoreboard) Objective(name string) *Objective {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.objectives[name]
}

// RemoveObjective drops the objective from the registry.
func (b *Scoreboard) RemoveObjective(name string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	delete(b.objectives, name)
}

// RegisterTeam creates a new team. Registering a name twice is a bug in the
// packet handler and panics.
func (b *Scoreboard) RegisterTeam(name string) *Team {
	b.mu.Lock()
	defer b.mu.Unlock()
	if _, exists := b.teams[name]; exists {
		panic(fmt.Sprintf("scoreboard: team %q registered twice", name))
	}
	team := newTeam(name)
	b.teams[name] = team
	return team
}

// Team returns the team with the given name, or nil.
func (b *Scoreboard) Team(name string) *Team {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.teams[name]
}

// RemoveTeam flags the team for removal and drops it from the registry.
// Display entries still referencing it notice the flag on their next render.
func (b *Scoreboard) RemoveTeam(name string) {
	b.mu.Lock()
	team := b.teams[name]
	delete(b.teams, name)
	b.mu.Unlock()
	if team != nil {
		team.MarkRemoved()
	}
}

// TeamFor returns the team that lists name as a member, or nil. Display
// entries resolve their team through this when they first become displayed.
func (b *Scoreboard) TeamFor(name string) *Team {
	b.mu.RLock()
	defer b.mu.RUnlock()
	for _, team := range b.teams {
		if team.Contains(name) {
			return team
		}
	}
	return nil
}
