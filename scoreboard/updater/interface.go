package updater

import (
	"github.com/geodemc/geode/scoreboard"
	"github.com/geodemc/geode/scoreboard/sidebar"
	"github.com/geodemc/geode/wire"
)

//go:generate mockgen -typed -package=updater -destination=./mocks.go -source=./interface.go

// objective is the authoritative score source a tracked slot renders from.
type objective interface {
	ScoreSnapshot() []scoreboard.Score
	TakeUpdate() scoreboard.UpdateType
}

// slot is one display surface that reconciles itself against a score
// snapshot.
type slot interface {
	Render(scores []scoreboard.Score, state scoreboard.UpdateType) (add, remove []wire.ScoreInfo)
	SetTeamFor(team sidebar.Team, members map[string]struct{})
}

// sender transmits the computed batches to the client.
type sender interface {
	SendScores(add, remove []wire.ScoreInfo)
}
