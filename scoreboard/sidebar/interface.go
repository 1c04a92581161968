package sidebar

import (
	"github.com/geodemc/geode/wire"
)

//go:generate mockgen -typed -package=sidebar -destination=./mocks.go -source=./interface.go

// objectiveView is the read side of the displayed objective.
type objectiveView interface {
	Name() string
	DisplayName() string
}

// identitySource allocates display entry identities. An identity is never
// handed out twice, so stale in-flight payloads can not collide with entries
// created later.
type identitySource interface {
	NextID() uint64
}

// teamSource resolves the team of an entry when it first becomes displayed.
// Later membership changes reach displayed entries through SetTeamFor.
type teamSource interface {
	TeamFor(name string) Team
}

// Team is the slice of team state the sidebar consumes. *scoreboard.Team
// satisfies it.
type Team interface {
	FlaggedForRemoval() bool
	Contains(name string) bool
	Decorate(name string) string
}

// payloadBuilder produces the wire-level add/remove record for one entry.
// The sidebar caches the result until the entry changes.
type payloadBuilder interface {
	ScoreInfo(id uint64, objective, label string, value int64) wire.ScoreInfo
}

// directives is the fire-and-forget lifecycle surface of the session.
type directives interface {
	DestroySidebar(objective string)
	ShowSidebar(objective, title string, position wire.DisplaySlot)
}

// palette yields the invisible markers appended to tied lines to force a
// stable client-side order. Markers must be distinct per index and
// deterministic across calls.
type palette interface {
	MarkerForIndex(i int) string
}
